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

package pmstats

import (
	"context"
	"log/slog"
)

// Logger is the interface used to get log output from pmstats.
//
// Calls are fire-and-forget: a Logger must not block the report path for long and
// has no way to fail an operation.
type Logger interface {
	// Debug logs per-report and per-sweep diagnostics. args are slog-style key/value pairs.
	Debug(ctx context.Context, msg string, args ...any)
	// Warn logs a message at the warn level with an error.
	Warn(ctx context.Context, msg string, err error, args ...any)
	// Error logs a message at the error level with an error.
	Error(ctx context.Context, msg string, err error, args ...any)
}

// NoopLogger discards everything. It is the default Logger.
type NoopLogger struct{}

func (nl *NoopLogger) Debug(ctx context.Context, msg string, args ...any)            {}
func (nl *NoopLogger) Warn(ctx context.Context, msg string, err error, args ...any)  {}
func (nl *NoopLogger) Error(ctx context.Context, msg string, err error, args ...any) {}

type defaultLogger struct {
	log *slog.Logger
}

func newDefaultLogger() *defaultLogger {
	return &defaultLogger{
		log: slog.Default(),
	}
}

func (dl *defaultLogger) Debug(ctx context.Context, msg string, args ...any) {
	dl.log.DebugContext(ctx, msg, args...)
}

func (dl *defaultLogger) Warn(ctx context.Context, msg string, err error, args ...any) {
	dl.log.WarnContext(ctx, msg, append([]any{slog.Any("err", err)}, args...)...)
}

func (dl *defaultLogger) Error(ctx context.Context, msg string, err error, args ...any) {
	dl.log.ErrorContext(ctx, msg, append([]any{slog.Any("err", err)}, args...)...)
}

// DefaultLogger returns a Logger that writes to slog.Default.
func DefaultLogger() Logger {
	return newDefaultLogger()
}
