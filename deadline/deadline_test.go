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
// github.com:shabal-poc/poccore/deadline/deadline_test.go

package deadline_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shabal-poc/poccore/deadline"
	"github.com/shabal-poc/poccore/internal/corerr"
	"github.com/shabal-poc/poccore/plot"
	"github.com/shabal-poc/poccore/shabal"
)

func fixedInputs() deadline.Inputs {
	return deadline.Inputs{
		PreSignature: []byte("0123456789abcdef0123456789abcde"),
		PreGenerator: []byte("fedcba9876543210fedcba9876543210"),
		BlockHeight:  []byte("123456"),
	}
}

func TestComputeMalformedPlot(t *testing.T) {
	for _, n := range []int{plot.Size - 1, plot.Size + 1, 0} {
		_, err := deadline.Compute(make([]byte, n), fixedInputs(), shabal.Shabal256)
		require.Error(t, err)
		assert.True(t, corerr.IsMalformedPlot(err))
	}
}

func TestComputeReproducible(t *testing.T) {
	pubkey := make([]byte, 32)
	nonce := make([]byte, 8)
	p, err := plot.Generate(pubkey, nonce, shabal.Shabal256)
	require.NoError(t, err)

	in := fixedInputs()
	a, err := deadline.Compute(p, in, shabal.Shabal256)
	require.NoError(t, err)
	b, err := deadline.Compute(p, in, shabal.Shabal256)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, 32)
}

func TestComputeVariantDigestLength(t *testing.T) {
	pubkey := make([]byte, 32)
	nonce := make([]byte, 8)
	p, err := plot.Generate(pubkey, nonce, shabal.Shabal512)
	require.NoError(t, err)

	got, err := deadline.Compute(p, fixedInputs(), shabal.Shabal512)
	require.NoError(t, err)
	assert.Len(t, got, 64)
}

// TestComputePinned checks a deadline computed from literal 32-byte
// PreSignature/PreGenerator strings and a zero-pubkey, zero-nonce plot
// against a pinned digest, per spec.md §8's requirement for a
// deadline-computation known-answer scenario. TestComputeReproducible only
// checks that two runs agree with each other, so a regression that changes
// Compute's scoop selection or final hash wholesale, not just
// non-deterministically, would pass it silently; this test catches that.
func TestComputePinned(t *testing.T) {
	pubkey := make([]byte, 32)
	nonce := make([]byte, 8)
	p, err := plot.Generate(pubkey, nonce, shabal.Shabal256)
	require.NoError(t, err)

	in := deadline.Inputs{
		PreSignature: []byte("11112222333344445555666677778888"),
		PreGenerator: []byte("88887777666655554444333322221111"),
		BlockHeight:  []byte("123456"),
	}
	require.Len(t, in.PreSignature, 32)
	require.Len(t, in.PreGenerator, 32)

	got, err := deadline.Compute(p, in, shabal.Shabal256)
	require.NoError(t, err)

	want, err := hex.DecodeString("cb5af1e8a4e2d4efa8acd42eb1c6aef1d03c0ca6845dee1c39c713a89a195e5c")
	require.NoError(t, err)
	assert.Equal(t, want, got, "deadline digest must match the pinned value")
}
