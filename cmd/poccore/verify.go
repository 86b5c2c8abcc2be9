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
// github.com:shabal-poc/poccore/cmd/poccore/verify.go

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shabal-poc/poccore/deadline"
	"github.com/shabal-poc/poccore/shabal"
	"github.com/shabal-poc/poccore/store"
)

// newVerifyCmd builds the "verify" command: a read-only convenience not in
// spec.md §6, useful for operators who want to recompute a deadline for an
// existing plot without mutating on-disk state (no target file is written).
func newVerifyCmd() *cobra.Command {
	var plotPath, presigHex, pregenHex, height, variantName string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Recompute a deadline for an existing plot without writing a target file",
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

			var variant shabal.Variant
			switch variantName {
			case "256", "":
				variant = shabal.Shabal256
			case "512":
				variant = shabal.Shabal512
			default:
				return fmt.Errorf("--variant must be 256 or 512")
			}

			data, err := store.ReadFile(plotPath)
			if err != nil {
				return err
			}

			digest, err := deadline.Compute(data, deadline.Inputs{
				PreSignature: presig,
				PreGenerator: pregen,
				BlockHeight:  []byte(height),
			}, variant)
			if err != nil {
				return err
			}

			fmt.Println(hex.EncodeToString(digest))
			return nil
		},
	}

	cmd.Flags().StringVar(&plotPath, "plot-file", "", "path to the plot file")
	cmd.Flags().StringVar(&presigHex, "presig", "", "hex-encoded previous block signature")
	cmd.Flags().StringVar(&pregenHex, "pregenerator", "", "hex-encoded previous generator account")
	cmd.Flags().StringVar(&height, "height", "", "block height, as decimal digits")
	cmd.Flags().StringVar(&variantName, "variant", "256", "Shabal variant: 256 or 512")
	return cmd
}
