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
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

type zstdReadCloser struct {
	*zstd.Decoder
	file io.Closer
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return z.file.Close()
}

type gzipReadCloser struct {
	*gzip.Reader
	file io.Closer
}

func (g gzipReadCloser) Close() error {
	if err := g.Reader.Close(); err != nil {
		_ = g.file.Close()
		return err
	}
	return g.file.Close()
}

func wrapDecoder(f *os.File, path string) (io.ReadCloser, error) {
	ext := filepath.Ext(path)

	switch ext {
	case ".gz":
		gzipReader, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("not valid .gzip file: %w", err)
		}
		return gzipReadCloser{Reader: gzipReader, file: f}, nil
	case ".zst":
		zstdReader, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("not valid .zst file: %w", err)
		}
		return zstdReadCloser{Decoder: zstdReader, file: f}, nil
	default:
		// without decoding
		return f, nil
	}
}

// NewReader opens a trace file, decompressing it by extension (.gz, .zst).
func NewReader(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	r, err := wrapDecoder(file, path)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	return r, nil
}
