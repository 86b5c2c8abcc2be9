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
// github.com:shabal-poc/poccore/cmd/poccore/target.go

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shabal-poc/poccore/deadline"
	"github.com/shabal-poc/poccore/internal/corerr"
	"github.com/shabal-poc/poccore/store"
)

// newTargetCmd builds the target256/target512 commands: read a plot file,
// compute its deadline for the given block inputs, and append the digest to
// {plot_dir}/target{block_height}, per spec.md §6's gen_target_256/512. A
// malformed plot aborts with no target file written, matching §4.3/§7.
func newTargetCmd(bits int) *cobra.Command {
	var presigHex, pregenHex, height, plotDir, plotFile string

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("target%d", bits),
		Short: fmt.Sprintf("Compute a Shabal%d deadline from a plot and append it to the target file", bits),
		RunE: func(cmd *cobra.Command, args []string) error {
			presig, err := decodeHex("presig", presigHex)
			if err != nil {
				return err
			}
			pregen, err := decodeHex("pregenerator", pregenHex)
			if err != nil {
				return err
			}
			if height == "" {
				return fmt.Errorf("--height is required")
			}
			if plotDir == "" {
				plotDir = cfg.PlotDir
			}
			if plotFile == "" {
				return fmt.Errorf("--plot-file is required")
			}

			data, err := store.ReadFile(filepath.Join(plotDir, plotFile))
			if err != nil {
				return err
			}

			in := deadline.Inputs{
				PreSignature: presig,
				PreGenerator: pregen,
				BlockHeight:  []byte(height),
			}
			digest, err := deadline.Compute(data, in, variantFor(bits))
			if err != nil {
				if corerr.IsMalformedPlot(err) {
					log.Warnw("target: malformed plot, no target written", "plot", plotFile)
				}
				return err
			}

			targetPath := filepath.Join(plotDir, "target"+height)
			if err := store.Append(targetPath, digest); err != nil {
				log.Warnw("target: append failed", "error", err, "path", targetPath)
				return err
			}
			log.Infow("target: deadline appended", "path", targetPath, "bits", bits)
			return nil
		},
	}

	cmd.Flags().StringVar(&presigHex, "presig", "", "hex-encoded previous block signature")
	cmd.Flags().StringVar(&pregenHex, "pregenerator", "", "hex-encoded previous generator account")
	cmd.Flags().StringVar(&height, "height", "", "block height, as decimal digits")
	cmd.Flags().StringVar(&plotDir, "plot-dir", "", "directory holding the plot (default: --plot-dir root)")
	cmd.Flags().StringVar(&plotFile, "plot-file", "", "plot file name within plot-dir")
	return cmd
}
