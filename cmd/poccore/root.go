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
// github.com:shabal-poc/poccore/cmd/poccore/root.go

// Command poccore is an operator-facing CLI over the four core components:
// it exposes the hash256/hash512/gen_nonce_256/gen_nonce_512/gen_target_256/
// gen_target_512 operations of this core's function surface as Cobra
// subcommands, plus a read-only "verify" convenience command.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shabal-poc/poccore/internal/config"
	"github.com/shabal-poc/poccore/internal/corerr"
	"github.com/shabal-poc/poccore/internal/obslog"
)

var (
	logLevel string
	cfg      *config.Config
	log      *zap.SugaredLogger
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "poccore",
		Short:         "Shabal-based Proof-of-Capacity plotting and deadline core",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			cfg = loaded

			logger, err := obslog.New(logLevel)
			if err != nil {
				return err
			}
			log = logger.Sugar()
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if log != nil {
				return log.Sync()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: info or debug")
	root.PersistentFlags().String("cache-dir", "./Cache", "directory holding per-nonce hash cache files")
	root.PersistentFlags().String("plot-dir", ".", "directory holding plot and target files")

	root.AddCommand(newHashCmd(256))
	root.AddCommand(newHashCmd(512))
	root.AddCommand(newPlotCmd(256))
	root.AddCommand(newPlotCmd(512))
	root.AddCommand(newTargetCmd(256))
	root.AddCommand(newTargetCmd(512))
	root.AddCommand(newVerifyCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps the core's typed errors onto the process exit codes
// documented in SPEC_FULL.md §6-FULL, so a script driving many nonces can
// tell a transient filesystem error from a plot that needs regenerating.
func exitCodeFor(err error) int {
	switch {
	case corerr.IsMalformedPlot(err):
		return 2
	case corerr.IsIOFailure(err):
		return 1
	default:
		return 1
	}
}
