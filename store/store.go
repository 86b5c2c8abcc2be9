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
// github.com:shabal-poc/poccore/store/store.go

// Package store is the octet I/O surface: it reads whole files into memory
// and appends octet strings to named files, creating them if absent. It
// never interprets file contents; callers pass and receive raw []byte.
package store

import (
	"os"

	"github.com/shabal-poc/poccore/internal/corerr"
)

// ReadFile reads path in its entirety and returns its contents as an octet
// string. A missing or unreadable file is reported as an *corerr.IOFailure.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, corerr.NewIOFailure("read", path, err)
	}
	return data, nil
}

// Append opens path in append mode (creating it if it does not exist) and
// writes data to the end of it. Repeated calls with the same path
// concatenate their output; this is intentional aggregation behavior that
// callers rely on for building up per-nonce or per-block artifacts, and must
// be preserved. Concurrent Append calls against the same path from multiple
// goroutines or processes will interleave; callers are responsible for
// serializing writes to a shared path or using disjoint paths.
func Append(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return corerr.NewIOFailure("open", path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return corerr.NewIOFailure("write", path, err)
	}
	return nil
}
