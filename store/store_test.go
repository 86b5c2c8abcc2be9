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
// github.com:shabal-poc/poccore/store/store_test.go

package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shabal-poc/poccore/internal/corerr"
	"github.com/shabal-poc/poccore/store"
)

func TestAppendCreatesAndConcatenates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "target123")

	require.NoError(t, store.Append(path, []byte("first-32-byte-deadline-digest...")))
	require.NoError(t, store.Append(path, []byte("second-32-byte-deadline-digest..")))

	data, err := store.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, data, 64)
	assert.Equal(t, []byte("first-32-byte-deadline-digest..."), data[:32])
	assert.Equal(t, []byte("second-32-byte-deadline-digest.."), data[32:])
}

func TestReadFileMissing(t *testing.T) {
	_, err := store.ReadFile(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	assert.True(t, corerr.IsIOFailure(err))
}
