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
// github.com:shabal-poc/poccore/shabal/shabal.go

// Package shabal implements the Shabal family of cryptographic hash
// functions (Shabal192/224/256/384/512), a NIST SHA-3 round-2 candidate.
// It is the leaf cryptographic primitive of a Proof-of-Capacity plotting
// core: the plot generator and deadline hasher are both built from the
// streaming hash.Hash instances this package constructs.
//
// There is a single Shabal algorithm; the five variants differ only in
// their hardcoded initial state (setup.go) and in how much of the internal state
// is copied out as the digest.
//
//	h := shabal.New256()
//	h.Write([]byte("helloworld"))
//	sum := h.Sum(nil)
package shabal

import (
	"encoding/binary"
	"hash"
)

// digest is the shared streaming engine for all five variants. It satisfies
// hash.Hash, so it composes with anything in the standard library that
// accepts one (hmac.New, io.MultiWriter, etc).
type digest struct {
	variant Variant
	s       state

	buf    [BlockBytes]byte
	buflen int
}

// New constructs a streaming hasher for the given variant.
func New(v Variant) hash.Hash {
	if !v.valid() {
		panic("shabal: invalid variant")
	}
	d := &digest{variant: v}
	d.Reset()
	return d
}

func New192() hash.Hash { return New(Shabal192) }
func New224() hash.Hash { return New(Shabal224) }
func New256() hash.Hash { return New(Shabal256) }
func New384() hash.Hash { return New(Shabal384) }
func New512() hash.Hash { return New(Shabal512) }

func (d *digest) Reset() {
	d.s = ivTable[d.variant]
	d.buflen = 0
}

func (d *digest) Size() int      { return d.variant.Size() }
func (d *digest) BlockSize() int { return BlockBytes }

// Write absorbs message to the engine, satisfying io.Writer. It never
// returns an error; Shabal has no notion of a rejected input.
func (d *digest) Write(message []byte) (int, error) {
	n := len(message)
	for len(message) > 0 {
		copied := copy(d.buf[d.buflen:], message)
		d.buflen += copied
		message = message[copied:]
		if d.buflen == BlockBytes {
			var m [BlockWords]uint32
			bytesToWords(&d.buf, &m)
			absorbBlock(&d.s, &m, true)
			d.buflen = 0
		}
	}
	return n, nil
}

// Sum appends the digest of everything absorbed so far to b and returns the
// resulting slice, without modifying the underlying state (the convention
// hash.Hash requires). It does so by finalizing a scratch copy.
func (d *digest) Sum(b []byte) []byte {
	scratch := *d
	digestBytes := scratch.finalize()
	return append(b, digestBytes...)
}

// finalize pads the trailing partial block, absorbs it, then absorbs that
// same final block three more times (full absorbBlock steps) without bumping
// the block counter, per the Shabal specification. It consumes the receiver.
func (d *digest) finalize() []byte {
	var final [BlockBytes]byte
	copy(final[:], d.buf[:d.buflen])
	final[d.buflen] = 0x80
	// The remaining bytes of `final` are already zero.

	var m [BlockWords]uint32
	bytesToWords(&final, &m)

	absorbBlock(&d.s, &m, true)
	for i := 0; i < 3; i++ {
		absorbBlock(&d.s, &m, false)
	}

	n := d.variant.outputWords()
	out := make([]byte, 4*n)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(out[4*i:], d.s.b[i])
	}
	return out
}

func bytesToWords(buf *[BlockBytes]byte, m *[BlockWords]uint32) {
	for i := 0; i < BlockWords; i++ {
		m[i] = binary.LittleEndian.Uint32(buf[4*i:])
	}
}

// Sum is a convenience one-shot hashing function, mirroring the shape of
// the standard library's sha256.Sum256 but returning a slice since the
// digest length is only fixed per-variant, not per-function.
func Sum(v Variant, message []byte) []byte {
	h := New(v)
	h.Write(message)
	return h.Sum(nil)
}
