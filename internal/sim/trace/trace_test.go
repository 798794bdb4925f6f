// Copyright (c) 2025 The pmstats Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package trace

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"

	"github.com/gwtelemetry/pmstats/internal/sim/event"
	"github.com/gwtelemetry/pmstats/internal/sim/parser"
)

const content = "1000 00:00:01\n1010 00:00:05\n"

func writeTrace(t *testing.T, name string, compress func(w io.Writer) io.WriteCloser) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	var w io.Writer = f
	var c io.WriteCloser
	if compress != nil {
		c = compress(f)
		w = c
	}
	_, err = io.WriteString(w, content)
	require.NoError(t, err)
	if c != nil {
		require.NoError(t, c.Close())
	}
	return path
}

func TestNewReader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		compress func(w io.Writer) io.WriteCloser
	}{
		{name: "trace.txt"},
		{
			name: "trace.txt.gz",
			compress: func(w io.Writer) io.WriteCloser {
				return gzip.NewWriter(w)
			},
		},
		{
			name: "trace.txt.zst",
			compress: func(w io.Writer) io.WriteCloser {
				zw, err := zstd.NewWriter(w)
				if err != nil {
					panic(err)
				}
				return zw
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := NewReader(writeTrace(t, tt.name, tt.compress))
			require.NoError(t, err)
			defer r.Close()

			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.Equal(t, content, string(got))
		})
	}
}

func TestNewReader_Errors(t *testing.T) {
	t.Parallel()

	_, err := NewReader(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	// not a gzip stream
	path := writeTrace(t, "plain.gz", nil)
	_, err = NewReader(path)
	require.Error(t, err)
}

func TestNewParser(t *testing.T) {
	t.Parallel()

	p, err := NewParser(parser.TextFormat, strings.NewReader(content))
	require.NoError(t, err)

	var reports []event.Report
	for {
		done, err := p.Parse(func(r event.Report) bool {
			reports = append(reports, r)
			return false
		})
		require.NoError(t, err)
		if done {
			break
		}
	}
	require.Len(t, reports, 2)

	_, err = NewParser("csv", strings.NewReader(content))
	require.ErrorIs(t, err, ErrUnknownTraceFormat)
}
