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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/gwtelemetry/pmstats/internal/sim/config"
	"github.com/gwtelemetry/pmstats/internal/sim/simulator"
	"github.com/gwtelemetry/pmstats/plugin/pslog"
)

type flags struct {
	configPath  string
	logLevel    string
	logFormat   string
	monitorLogs bool
	snapshotDir string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out, errOut io.Writer) int {
	var f flags

	flagSet := flag.NewFlagSet("pmsim", flag.ContinueOnError)
	flagSet.SetOutput(errOut)
	flagSet.StringVarP(&f.configPath, "config", "c", "configs/fleet.toml", "Path to configuration file (.toml, .yaml)")
	flagSet.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flagSet.StringVar(&f.logFormat, "log-format", "text", "Log format: text, json")
	flagSet.BoolVar(&f.monitorLogs, "monitor-logs", false, "Pass the logger to every monitor")
	flagSet.StringVar(&f.snapshotDir, "snapshot-dir", "", "Directory for monitor snapshots taken after the run")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger, err := newLogger(errOut, f.logLevel, f.logFormat)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 2
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := simulate(ctx, f, logger, out); err != nil {
		logger.Error("pmsim failed", "error", err)
		return 1
	}
	return 0
}

func simulate(ctx context.Context, f flags, logger *slog.Logger, out io.Writer) error {
	c, err := config.Load(f.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	opts := simulator.Options{
		SnapshotDir: f.snapshotDir,
		Output:      out,
	}
	if f.monitorLogs {
		opts.Logger = pslog.New(logger, pslog.WithGroup("pm"), pslog.WithAttrs("sim", c.Name))
	}

	app, err := simulator.New(c, opts)
	if err != nil {
		return fmt.Errorf("create simulator: %w", err)
	}

	if err := app.Simulate(ctx); err != nil {
		return fmt.Errorf("simulate trace: %w", err)
	}

	return nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("not valid log level %q", level)
	}

	handlerOpts := &slog.HandlerOptions{Level: l}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("not valid log format %q", format)
	}
}
