// Copyright (c) 2024 poccore contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// github.com:shabal-poc/poccore/shabal/consts.go

package shabal

// Shabal operates on 512-bit message blocks, expressed as 16 little-endian
// 32-bit words.
const (
	BlockBytes = 64
	BlockWords = 16

	// Bank widths are fixed by the algorithm.
	wordsA = 12
	wordsB = 16
	wordsC = 16
)

// Variant identifies one of the five standard Shabal digest sizes. All
// variants share one streaming engine; they differ only in their hardcoded
// initial state (ivTable) and in how many words of bank B are copied out at
// Sum time.
type Variant int

const (
	Shabal192 Variant = iota
	Shabal224
	Shabal256
	Shabal384
	Shabal512
)

// String names the variant the way it is referred to in the published spec
// and in the setup messages used to derive each variant's initial state.
func (v Variant) String() string {
	switch v {
	case Shabal192:
		return "Shabal192"
	case Shabal224:
		return "Shabal224"
	case Shabal256:
		return "Shabal256"
	case Shabal384:
		return "Shabal384"
	case Shabal512:
		return "Shabal512"
	default:
		return "Shabal(invalid)"
	}
}

// BitLen returns the digest length in bits, which is also the value encoded
// into the variant's setup messages.
func (v Variant) BitLen() int {
	switch v {
	case Shabal192:
		return 192
	case Shabal224:
		return 224
	case Shabal256:
		return 256
	case Shabal384:
		return 384
	case Shabal512:
		return 512
	default:
		panic("shabal: invalid variant")
	}
}

// Size returns the digest length in bytes.
func (v Variant) Size() int {
	return v.BitLen() / 8
}

// outputWords is the number of leading words of bank B (B[0], B[1], ...)
// copied into the digest. Shabal512 uses the whole of B; the smaller variants are truncated.
func (v Variant) outputWords() int {
	return v.Size() / 4
}

func (v Variant) valid() bool {
	return v >= Shabal192 && v <= Shabal512
}
