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
// github.com:shabal-poc/poccore/cmd/poccore/hash.go

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shabal-poc/poccore/shabal"
	"github.com/shabal-poc/poccore/store"
)

// newHashCmd builds the hash256/hash512 commands: append Shabal(pubkey ||
// nonce_id) to ./Cache/shall{nonce_id}, per spec.md §6.
func newHashCmd(bits int) *cobra.Command {
	var pubkeyHex, nonceHex string

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("hash%d", bits),
		Short: fmt.Sprintf("Append Shabal%d(pubkey || nonce) to the cache file for nonce", bits),
		RunE: func(cmd *cobra.Command, args []string) error {
			pubkey, err := decodeHex("pubkey", pubkeyHex)
			if err != nil {
				return err
			}
			nonce, err := decodeHex("nonce", nonceHex)
			if err != nil {
				return err
			}

			variant := variantFor(bits)
			digest := shabal.Sum(variant, concat(pubkey, nonce))

			path := filepath.Join(cfg.CacheDir, "shall"+nonceHex)
			if err := store.Append(path, digest); err != nil {
				log.Warnw("hash: append failed", "error", err, "path", path)
				return err
			}
			log.Infow("hash: appended digest", "path", path, "bits", bits)
			return nil
		},
	}

	cmd.Flags().StringVar(&pubkeyHex, "pubkey", "", "hex-encoded public key")
	cmd.Flags().StringVar(&nonceHex, "nonce", "", "hex-encoded nonce identifier")
	return cmd
}

func variantFor(bits int) shabal.Variant {
	if bits == 512 {
		return shabal.Shabal512
	}
	return shabal.Shabal256
}

func concat(a, b []byte) []byte {
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
