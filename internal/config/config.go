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
// github.com:shabal-poc/poccore/internal/config/config.go

// Package config loads operator-level settings for the poccore CLI: cache
// and plot directories, the default Shabal variant, and the legacy
// ASCII-fold compatibility toggle. None of the core packages (shabal, plot,
// deadline, store) import this package or read configuration of any kind;
// configuration exists only at the CLI boundary, per this core's "no
// environment variables, no flags" contract.
package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the merged result of defaults, an optional poccore.yaml file,
// POCCORE_* environment variables, and CLI flags, in ascending priority.
type Config struct {
	CacheDir        string
	PlotDir         string
	DefaultVariant  string
	LegacyASCIIFold bool
}

// Load merges configuration sources and binds them against flags, so that a
// flag the caller registered on fs overrides the file/environment value.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("cache_dir", "./Cache")
	v.SetDefault("plot_dir", ".")
	v.SetDefault("default_variant", "256")
	v.SetDefault("legacy_ascii_fold", false)

	v.SetEnvPrefix("POCCORE")
	v.AutomaticEnv()

	v.SetConfigName("poccore")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, err
		}
		// Flags are registered under hyphenated names; bind them to the
		// underscore keys read below as well, so a set flag takes precedence.
		for key, name := range map[string]string{
			"cache_dir":         "cache-dir",
			"plot_dir":          "plot-dir",
			"legacy_ascii_fold": "legacy-ascii-fold",
		} {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	return &Config{
		CacheDir:        v.GetString("cache_dir"),
		PlotDir:         v.GetString("plot_dir"),
		DefaultVariant:  v.GetString("default_variant"),
		LegacyASCIIFold: v.GetBool("legacy_ascii_fold"),
	}, nil
}
