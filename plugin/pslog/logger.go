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

// Package pslog provides a plug-in pmstats.Logger wrapping slog.Logger for usage in
// a pmstats.Monitor.
//
// This can be used like so:
//
//	monitor := pmstats.Must(&pmstats.Options{
//		Logger: pslog.New(slog.Default()),
//		// ...other opts
//	})
package pslog

import (
	"context"
	"log/slog"

	"github.com/gwtelemetry/pmstats"
)

var _ pmstats.Logger = (*Logger)(nil)

// Option applies options to the logger.
type Option func(*options)

type options struct {
	group string
	attrs []any
}

// WithGroup nests every attribute logged by pmstats under name.
func WithGroup(name string) Option {
	return func(o *options) {
		o.group = name
	}
}

// WithAttrs adds attributes to every record, for example the gateway's own address.
func WithAttrs(args ...any) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, args...)
	}
}

// Logger that wraps the slog.Logger.
type Logger struct {
	log *slog.Logger
}

// New returns a new Logger.
func New(log *slog.Logger, opts ...Option) *Logger {
	if log == nil {
		panic("pslog: log is nil")
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if len(o.attrs) > 0 {
		log = log.With(o.attrs...)
	}
	if o.group != "" {
		log = log.WithGroup(o.group)
	}

	return &Logger{
		log: log,
	}
}

// Debug is for the pmstats.Logger interface.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.log.DebugContext(ctx, msg, args...)
}

// Warn is for the pmstats.Logger interface.
func (l *Logger) Warn(ctx context.Context, msg string, err error, args ...any) {
	l.log.WarnContext(ctx, msg, append([]any{slog.Any("err", err)}, args...)...)
}

// Error is for the pmstats.Logger interface.
func (l *Logger) Error(ctx context.Context, msg string, err error, args ...any) {
	l.log.ErrorContext(ctx, msg, append([]any{slog.Any("err", err)}, args...)...)
}
