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

package simulator

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/gwtelemetry/pmstats"
	"github.com/gwtelemetry/pmstats/internal/sim/config"
	"github.com/gwtelemetry/pmstats/internal/sim/event"
	"github.com/gwtelemetry/pmstats/internal/sim/report"
	"github.com/gwtelemetry/pmstats/internal/sim/report/simulation"
	"github.com/gwtelemetry/pmstats/internal/sim/trace/generator"
	"github.com/gwtelemetry/pmstats/resend"
	"github.com/gwtelemetry/pmstats/stats"
)

// Options configures the parts of a run that do not come from the config file.
type Options struct {
	// Logger is passed to every monitor. Nil disables monitor logging.
	Logger pmstats.Logger
	// SnapshotDir, if set, receives a snapshot of every monitor after its run.
	SnapshotDir string
	// Output receives the report. Defaults to os.Stdout.
	Output io.Writer
}

type Simulator struct {
	cfg  config.Config
	opts Options
}

func New(cfg config.Config, opts Options) (Simulator, error) {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.SnapshotDir != "" {
		if err := os.MkdirAll(opts.SnapshotDir, 0o755); err != nil {
			return Simulator{}, fmt.Errorf("create snapshot dir: %w", err)
		}
	}

	return Simulator{
		cfg:  cfg,
		opts: opts,
	}, nil
}

// Simulate replays the trace against one monitor per capacity and reports the results.
func (s Simulator) Simulate(ctx context.Context) error {
	results, err := s.Run(ctx)
	if err != nil {
		return err
	}

	reporter := report.NewReporter(s.opts.Output, results)
	if err := reporter.Report(); err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	return nil
}

// Run simulates every capacity in parallel and returns the results ordered by capacity.
func (s Simulator) Run(ctx context.Context) ([]simulation.Result, error) {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())

	results := make([]simulation.Result, len(s.cfg.Capacities))
	for i, capacity := range s.cfg.Capacities {
		eg.Go(func() error {
			r, err := s.simulateCapacity(ctx, capacity)
			if err != nil {
				return fmt.Errorf("capacity %d: %w", capacity, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}

	slog.InfoContext(ctx, "all simulations are complete", "name", s.cfg.Name)

	slices.SortFunc(results, func(a, b simulation.Result) int {
		return cmp.Compare(a.Capacity(), b.Capacity())
	})
	return results, nil
}

func (s Simulator) sweepInterval() uint32 {
	if s.cfg.Monitor.SweepInterval > 0 {
		return s.cfg.Monitor.SweepInterval
	}
	return uint32(pmstats.DefaultSweepInterval.Seconds())
}

func (s Simulator) simulateCapacity(ctx context.Context, unsignedCapacity uint) (simulation.Result, error) {
	//nolint:gosec // there will never be an overflow
	capacity := int(unsignedCapacity)

	maxPending := s.cfg.Monitor.MaxPending
	if maxPending <= 0 {
		maxPending = capacity
	}
	queue := resend.New(maxPending)
	counter := stats.NewCounter()

	m, err := pmstats.New(&pmstats.Options{
		Capacity:       capacity,
		DebounceWindow: s.cfg.Monitor.Debounce(),
		ReportInterval: s.cfg.Monitor.Interval(),
		OverdueGrace:   s.cfg.Monitor.Grace(),
		SweepInterval:  s.cfg.Monitor.Sweep(),
		Logger:         s.opts.Logger,
		Resender:       queue,
		StatsRecorder:  counter,
	})
	if err != nil {
		return simulation.Result{}, fmt.Errorf("create monitor: %w", err)
	}

	traceGenerator, err := newGenerator(s.cfg)
	if err != nil {
		return simulation.Result{}, err
	}
	stream := traceGenerator.Generate()

	resends := 0
	sweep := func(now uint32) {
		m.Sweep(ctx, now)
		// the transmitter sends every queued request before the next sweep
		for {
			if _, ok := queue.Next(); !ok {
				break
			}
			resends++
		}
	}

	interval := s.sweepInterval()
	started := false
	var nextSweep uint32
	for {
		e, ok := stream.Next()
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			drain(stream)
			return simulation.Result{}, err
		}

		if !started {
			started = true
			nextSweep = e.Timestamp() + interval
		}
		for int32(e.Timestamp()-nextSweep) >= 0 {
			sweep(nextSweep)
			nextSweep += interval
		}

		if m.RegisterOutcome(e.ID(), e.Timestamp()).Accepted() {
			queue.Ack(e.ID())
		}
	}
	if started {
		sweep(nextSweep)
	}

	if s.opts.SnapshotDir != "" {
		path := filepath.Join(s.opts.SnapshotDir, fmt.Sprintf("%s-%d.snapshot", s.cfg.Name, capacity))
		if err := pmstats.SaveToFile(m, path); err != nil {
			return simulation.Result{}, fmt.Errorf("save snapshot: %w", err)
		}
	}

	r := simulation.NewResult(capacity, m.Len(), resends, m.Stats())

	slog.InfoContext(ctx,
		"simulation completed",
		"capacity", r.Capacity(),
		"units", r.Units(),
		"rejected", fmt.Sprintf("%0.2f%%", 100*r.Stats().RejectionRatio()),
	)

	return r, nil
}

func drain(stream generator.Stream[event.Report]) {
	for {
		if _, ok := stream.Next(); !ok {
			return
		}
	}
}
