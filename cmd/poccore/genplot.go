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
// github.com:shabal-poc/poccore/cmd/poccore/genplot.go

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shabal-poc/poccore/plot"
	"github.com/shabal-poc/poccore/store"
)

// newPlotCmd builds the plot256/plot512 commands: write a 256 KiB plot to
// {dir}/Cache{nonce_id}, per spec.md §6's gen_nonce_256/gen_nonce_512.
func newPlotCmd(bits int) *cobra.Command {
	var pubkeyHex, nonceHex, dir string
	var legacyFold bool

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("plot%d", bits),
		Short: fmt.Sprintf("Generate a Shabal%d-based plot for (pubkey, nonce)", bits),
		RunE: func(cmd *cobra.Command, args []string) error {
			pubkey, err := decodeHex("pubkey", pubkeyHex)
			if err != nil {
				return err
			}
			nonce, err := decodeHex("nonce", nonceHex)
			if err != nil {
				return err
			}
			if dir == "" {
				dir = cfg.PlotDir
			}

			var opts []plot.Option
			if legacyFold {
				opts = append(opts, plot.WithLegacyASCIIFold())
			}

			data, err := plot.Generate(pubkey, nonce, variantFor(bits), opts...)
			if err != nil {
				return err
			}

			path := filepath.Join(dir, "Cache"+nonceHex)
			if err := store.Append(path, data); err != nil {
				log.Warnw("plot: write failed", "error", err, "path", path)
				return err
			}
			log.Infow("plot: generated", "path", path, "bits", bits, "bytes", len(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&pubkeyHex, "pubkey", "", "hex-encoded public key")
	cmd.Flags().StringVar(&nonceHex, "nonce", "", "hex-encoded nonce identifier")
	cmd.Flags().StringVar(&dir, "dir", "", "directory to write the plot into (default: --plot-dir)")
	cmd.Flags().BoolVar(&legacyFold, "legacy-ascii-fold", false, "reproduce the original source's ASCII-fold quirk (see DESIGN.md)")
	return cmd
}
