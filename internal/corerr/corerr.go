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
// github.com:shabal-poc/poccore/internal/corerr/corerr.go

// Package corerr defines the typed error taxonomy the core components use:
// MalformedPlot and IOFailure, per this core's error-handling design. Both
// wrap github.com/pkg/errors so a caller logging at debug verbosity can
// still recover a stack trace, without the core packages depending on a
// logging library themselves.
package corerr

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

// MalformedPlot reports that a plot file's length was not the expected
// ScoopCount*ScoopBytes. Per spec, the caller must treat this as "abort
// silently, no output artifact produced" rather than a fatal condition.
type MalformedPlot struct {
	Path   string
	Length int
	Want   int
}

func (e *MalformedPlot) Error() string {
	return fmt.Sprintf("corerr: malformed plot %q: length %d, want %d", e.Path, e.Length, e.Want)
}

// NewMalformedPlot wraps a MalformedPlot with a stack trace.
func NewMalformedPlot(path string, length, want int) error {
	return errors.WithStack(&MalformedPlot{Path: path, Length: length, Want: want})
}

// IOFailure wraps an underlying filesystem error encountered while reading
// or appending a core artifact (plot, target, or cache file).
type IOFailure struct {
	Op   string
	Path string
	Err  error
}

func (e *IOFailure) Error() string {
	return fmt.Sprintf("corerr: %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *IOFailure) Unwrap() error { return e.Err }

// NewIOFailure wraps an os-package error with the operation and path that
// produced it, and attaches a stack trace via pkg/errors.
func NewIOFailure(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return errors.WithStack(&IOFailure{Op: op, Path: path, Err: err})
}

// IsMalformedPlot reports whether err is (or wraps) a MalformedPlot.
func IsMalformedPlot(err error) bool {
	var target *MalformedPlot
	return stderrors.As(err, &target)
}

// IsIOFailure reports whether err is (or wraps) an IOFailure.
func IsIOFailure(err error) bool {
	var target *IOFailure
	return stderrors.As(err, &target)
}
