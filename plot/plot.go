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
// github.com:shabal-poc/poccore/plot/plot.go

// Package plot builds the 256 KiB Proof-of-Capacity plot for a single
// (public-key, nonce) pair, using the chained-hash schedule and final
// XOR-mask pass described in this core's specification. Scoops derived here
// are read back by package deadline at block time.
package plot

import (
	"github.com/shabal-poc/poccore/shabal"
)

const (
	// Size is the total byte length of a plot file.
	Size = ScoopCount * ScoopBytes

	// ScoopCount is the number of 64-byte scoops in a plot.
	ScoopCount = 4096

	// ScoopBytes is the size of a single scoop.
	ScoopBytes = 64

	chainLen   = 8192
	hashBytes  = 32
	windowSpan = 128
	// seedTailStart is the chain index at which the seed is folded into the
	// hashed window in addition to the preceding entries, matching the last
	// windowSpan entries of the chain.
	seedTailStart = chainLen - windowSpan
)

// Option configures a non-default, documented deviation from the canonical
// plot-generation algorithm.
type Option func(*config)

type config struct {
	legacyASCIIFold bool
}

// WithLegacyASCIIFold reproduces a quirk of the original source: every byte
// of the XOR-masked output is passed through an ASCII lowercase mapping
// before being written. This is almost certainly an unintentional bug in the
// original implementation (see DESIGN.md); it exists here only so a caller
// that must bit-for-bit match an existing legacy-generated plot can opt in.
// New plots should never use this option.
func WithLegacyASCIIFold() Option {
	return func(c *config) { c.legacyASCIIFold = true }
}

// Generate derives the 256 KiB plot for (pubkey, nonce) under the given
// Shabal variant. Only Shabal256 and Shabal512 are meaningful plot variants;
// both always mask into 32-byte chain entries, per spec: the 512-bit variant
// is used for diffusion only and its extra 32 bytes are discarded so scoop
// layout stays uniform across variants.
func Generate(pubkey, nonce []byte, variant shabal.Variant, opts ...Option) ([]byte, error) {
	if variant != shabal.Shabal256 && variant != shabal.Shabal512 {
		return nil, errInvalidVariant(variant)
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	seed := make([]byte, 0, len(pubkey)+len(nonce))
	seed = append(seed, pubkey...)
	seed = append(seed, nonce...)

	chain := buildChain(variant, seed)

	final := hashMasked(variant, concatChain(chain, seed))

	out := make([]byte, Size)
	for i, entry := range chain {
		base := i * hashBytes
		for j := 0; j < hashBytes; j++ {
			b := entry[j] ^ final[j]
			if cfg.legacyASCIIFold {
				b = asciiFold(b)
			}
			out[base+j] = b
		}
	}
	return out, nil
}

// buildChain computes H[8191]..H[0] as described in the core spec: H[8191]
// is the hash of the seed alone; each earlier entry is the hash of up to the
// next 128 entries (closer to the end of the chain), with the seed folded
// back in for the last windowSpan entries so the tail of the chain always
// depends on the original input directly, not only transitively.
func buildChain(variant shabal.Variant, seed []byte) [][hashBytes]byte {
	chain := make([][hashBytes]byte, chainLen)
	chain[chainLen-1] = hashMasked(variant, seed)

	for i := chainLen - 2; i >= 0; i-- {
		hi := i + windowSpan
		if hi > chainLen-1 {
			hi = chainLen - 1
		}
		window := make([]byte, 0, (hi-i)*hashBytes+len(seed))
		for k := i + 1; k <= hi; k++ {
			window = append(window, chain[k][:]...)
		}
		if i >= seedTailStart {
			window = append(window, seed...)
		}
		chain[i] = hashMasked(variant, window)
	}
	return chain
}

func concatChain(chain [][hashBytes]byte, seed []byte) []byte {
	out := make([]byte, 0, len(chain)*hashBytes+len(seed))
	for _, entry := range chain {
		out = append(out, entry[:]...)
	}
	return append(out, seed...)
}

// hashMasked always returns exactly 32 bytes: the Shabal256 digest as-is, or
// the low 32 bytes of a Shabal512 digest with the high half discarded.
func hashMasked(variant shabal.Variant, data []byte) [hashBytes]byte {
	var out [hashBytes]byte
	sum := shabal.Sum(variant, data)
	copy(out[:], sum[:hashBytes])
	return out
}

func asciiFold(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
