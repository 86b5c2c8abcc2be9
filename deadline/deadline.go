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
// github.com:shabal-poc/poccore/deadline/deadline.go

// Package deadline selects one scoop from a miner's plot for a given block
// and hashes it against the block's randomness inputs to produce the
// deadline value the outer consensus engine compares against its target.
package deadline

import (
	"github.com/shabal-poc/poccore/internal/corerr"
	"github.com/shabal-poc/poccore/plot"
	"github.com/shabal-poc/poccore/shabal"
)

// Inputs bundles the per-block randomness a deadline is computed from. All
// fields are opaque octet strings; BlockHeight is conventionally the ASCII
// decimal representation of the block height, matching the original
// function surface, but this package never interprets its contents.
type Inputs struct {
	PreSignature []byte
	PreGenerator []byte
	BlockHeight  []byte
}

// Compute selects a scoop from plotData (a full plot, exactly plot.Size
// bytes) and returns the deadline digest, using variant for every Shabal
// call in the computation. Per spec, a plot of the wrong length aborts the
// computation entirely: Compute returns a *corerr.MalformedPlot and no
// digest, so the caller produces no target file.
//
// The scoop selection arithmetic (sum-of-bytes divided by 4096) reproduces
// the original source's behavior exactly, including its narrow range over a
// 32-byte Shabal256 digest (scoop index can only be 0 or 1); see DESIGN.md.
func Compute(plotData []byte, in Inputs, variant shabal.Variant) ([]byte, error) {
	if len(plotData) != plot.Size {
		return nil, corerr.NewMalformedPlot("", len(plotData), plot.Size)
	}

	newGenSig := shabal.Sum(variant, concat(in.PreGenerator, in.PreSignature))

	genHash := shabal.Sum(variant, concat(in.BlockHeight, newGenSig))

	var noncenum int
	for _, b := range genHash {
		noncenum += int(b)
	}
	// The divisor here is the original source's literal constant, 4096,
	// which happens to equal plot.ScoopCount; the modulus guards against
	// any future change to that constant rather than relying on the
	// coincidence.
	scoopIdx := (noncenum / plot.ScoopCount) % plot.ScoopCount

	scoop := plotData[scoopIdx*plot.ScoopBytes : (scoopIdx+1)*plot.ScoopBytes]

	return shabal.Sum(variant, concat(scoop, newGenSig)), nil
}

func concat(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
