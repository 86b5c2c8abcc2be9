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
// github.com:shabal-poc/poccore/shabal/perm.go

package shabal

// state is the evolving Shabal state: three register banks and the 64-bit
// block counter, split as two 32-bit little-endian halves.
type state struct {
	a        [wordsA]uint32
	b        [wordsC]uint32
	c        [wordsC]uint32
	wlo, whi uint32
}

func rotl32(x uint32, n uint) uint32 {
	return (x << n) | (x >> (32 - n))
}

// permElt is one application of the Shabal mixing rule described in the
// published specification: a 5x-multiply of a rotated A word, a 3x-multiply
// (U) of the value combined with a bank-C word, folded against three bank-B
// words selected by the round's position, and a one-bit rotation feeding the
// result back into B.
func permElt(aj, ajPrev, b0, b13, b9, b6, c uint32) (newAj, newB0 uint32) {
	newAj = (((aj ^ (5 * rotl32(ajPrev, 15))) ^ c) * 3) ^ b13 ^ (b9 &^ b6)
	newB0 = rotl32(b0, 1) ^ ^newAj
	return
}

// perm runs the three-round Shabal permutation over (a, b, c) mixing in the
// message block m, then applies the six finalization additions into a.
func perm(s *state, m *[BlockWords]uint32) {
	a, b, c := &s.a, &s.b, &s.c
	j := 0
	for round := 0; round < 3; round++ {
		for i := 0; i < BlockWords; i++ {
			jPrev := (j + wordsA - 1) % wordsA
			cIdx := (8 - i + wordsC) % wordsC
			b13 := b[(i+13)%wordsB]
			b9 := b[(i+9)%wordsB]
			b6 := b[(i+6)%wordsB]
			newAj, newBi := permElt(a[j], a[jPrev], b[i], b13, b9, b6, c[cIdx])
			newAj ^= m[i]
			a[j] = newAj
			b[i] = newBi
			j = (j + 1) % wordsA
		}
	}
	// Six finalization additions, folding specific C words back into A.
	a[11] += c[6]
	a[10] += c[5]
	a[9] += c[4]
	a[8] += c[3]
	a[7] += c[2]
	a[6] += c[1]
}

// absorbBlock performs one full block-processing step: add the message into
// B, inject the counter into A, run the permutation, subtract the message
// from C, then swap the roles of B and C for the next block.
func absorbBlock(s *state, m *[BlockWords]uint32, bumpCounter bool) {
	if bumpCounter {
		s.wlo++
		if s.wlo == 0 {
			s.whi++
		}
	}
	for i := 0; i < BlockWords; i++ {
		s.b[i] += m[i]
	}
	s.a[0] ^= s.wlo
	s.a[1] ^= s.whi

	perm(s, m)

	for i := 0; i < BlockWords; i++ {
		s.c[i] -= m[i]
	}
	s.b, s.c = s.c, s.b
}
