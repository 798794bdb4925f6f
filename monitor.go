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

// Package pmstats tracks the last performance-monitoring report of every subordinate
// radio unit seen by a gateway.
//
// Units live in a fixed-capacity open-addressing table. The radio receive path calls
// Register for every PM report and a periodic timer calls Sweep to find units whose
// reports are overdue.
package pmstats

import (
	"context"
	"sync"
	"time"

	"github.com/gwtelemetry/pmstats/internal/spinlock"
	"github.com/gwtelemetry/pmstats/internal/table"
	"github.com/gwtelemetry/pmstats/stats"
)

// Monitor is a fixed-capacity table of units guarded for concurrent use by a
// receive path and a sweeper.
type Monitor struct {
	mu    spinlock.SpinLock
	table *table.Table

	// sweepMu serializes sweeps so that scratch can be reused.
	sweepMu sync.Mutex
	scratch []Entry

	debounce      uint32
	overdueAfter  uint32
	sweepInterval time.Duration
	clock         Clock
	logger        Logger
	resender      Resender
	stats         StatsRecorder
}

// New creates a Monitor. It returns an error if the options are invalid.
// A nil o means all defaults.
func New(o *Options) (*Monitor, error) {
	if o == nil {
		o = &Options{}
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	o.setDefaults()

	var tb *table.Table
	if o.Slots != nil {
		tb = table.New(table.WithSlots(o.Slots))
	} else {
		tb = table.New(table.WithCapacity(o.Capacity))
	}

	return &Monitor{
		table:         tb,
		scratch:       make([]Entry, 0, tb.Capacity()),
		debounce:      seconds(o.DebounceWindow),
		overdueAfter:  seconds(o.ReportInterval + o.OverdueGrace),
		sweepInterval: o.SweepInterval,
		clock:         o.Clock,
		logger:        o.Logger,
		resender:      o.Resender,
		stats:         o.StatsRecorder,
	}, nil
}

// Must creates a Monitor. It panics if the options are invalid.
func Must(o *Options) *Monitor {
	m, err := New(o)
	if err != nil {
		panic(err)
	}
	return m
}

// Register records a PM report from id received at ts (seconds) and reports whether it was accepted.
//
// Debounced duplicates are accepted. The only rejection is a full table, which is logged at the error level.
func (m *Monitor) Register(id Identifier, ts uint32) bool {
	return m.RegisterOutcome(id, ts).Accepted()
}

// RegisterNow is Register with the current time of the Clock.
func (m *Monitor) RegisterNow(id Identifier) bool {
	return m.Register(id, m.clock.Now())
}

// RegisterOutcome is Register returning what happened to the report.
func (m *Monitor) RegisterOutcome(id Identifier, ts uint32) Outcome {
	var (
		reports  uint32
		active   int
		capacity int
	)

	m.mu.Lock()
	i, outcome := m.table.Register(id, ts, m.debounce)
	if i >= 0 {
		reports = m.table.Slot(i).Reports
	}
	active = m.table.Active()
	capacity = m.table.Capacity()
	m.mu.Unlock()

	ctx := context.Background()
	switch outcome {
	case table.Registered:
		m.stats.RecordRegistration()
		m.logger.Debug(ctx, "pmstats: registered unit",
			"unit", id.String(), "index", i, "ts", ts, "active", active)
	case table.Updated:
		m.stats.RecordUpdate()
		m.logger.Debug(ctx, "pmstats: updated unit",
			"unit", id.String(), "index", i, "ts", ts, "reports", reports, "active", active)
	case table.Debounced:
		m.stats.RecordDebounce()
	case table.Rejected:
		m.stats.RecordRejection()
		m.logger.Error(ctx, "pmstats: unit is not registered", ErrTableFull,
			"unit", id.String(), "ts", ts, "capacity", capacity)
	}
	return outcome
}

// Sweep scans every slot and asks the Resender to request a report from every unit whose
// last report is older than ReportInterval+OverdueGrace at now (seconds). It returns the
// number of overdue units whose resend request was handed off.
//
// The scan works on a copy of the table taken at the start of the sweep, so reports that
// arrive during the sweep are seen by the next one. Sweep never fails: refused resend
// requests are logged and not counted.
func (m *Monitor) Sweep(ctx context.Context, now uint32) int {
	m.sweepMu.Lock()
	defer m.sweepMu.Unlock()

	entries := m.scratch[:0]
	m.mu.Lock()
	m.table.Range(func(i int, s Slot) bool {
		entries = append(entries, newEntry(i, s))
		return true
	})
	active := m.table.Active()
	capacity := m.table.Capacity()
	m.mu.Unlock()
	m.scratch = entries

	m.logger.Debug(ctx, "pmstats: sweep started",
		"now", now, "active", active, "free", capacity-active)

	overdue := 0
	for n, e := range entries {
		m.logger.Debug(ctx, "pmstats: unit",
			"index", e.Index, "unit", e.ID.String(), "reports", e.Reports, "entry", n+1, "of", active)

		elapsed := table.Elapsed(now, e.LastSeen)
		if elapsed <= m.overdueAfter {
			continue
		}
		if !m.resender.RequestResend(ctx, e.ID) {
			m.stats.RecordResendFailure()
			m.logger.Warn(ctx, "pmstats: resend request failed", ErrResendFailed,
				"unit", e.ID.String(), "last_seen", e.LastSeen, "elapsed", elapsed)
			continue
		}
		overdue++
		m.logger.Debug(ctx, "pmstats: unit missed a report",
			"unit", e.ID.String(), "last_seen", e.LastSeen, "elapsed", elapsed)
	}

	m.stats.RecordSweep(overdue)
	return overdue
}

// SweepNow is Sweep with the current time of the Clock.
func (m *Monitor) SweepNow(ctx context.Context) int {
	return m.Sweep(ctx, m.clock.Now())
}

// Run sweeps on every tick of the Clock until ctx is done. It blocks the calling goroutine
// and returns ctx.Err().
func (m *Monitor) Run(ctx context.Context) error {
	tick := m.clock.Tick(m.sweepInterval)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
			m.SweepNow(ctx)
		}
	}
}

// Resolve returns the slot that holds id, or the free slot id would take.
// ok is false when the table is full and id is not in it.
func (m *Monitor) Resolve(id Identifier) (index int, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.table.Resolve(id)
}

// Lookup returns the entry of a registered unit.
func (m *Monitor) Lookup(id Identifier) (Entry, bool) {
	m.mu.Lock()
	i, s, ok := m.table.Lookup(id)
	m.mu.Unlock()

	if !ok {
		return Entry{}, false
	}
	return newEntry(i, s), true
}

// Entries returns a copy of all occupied slots in index order.
func (m *Monitor) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := make([]Entry, 0, m.table.Active())
	m.table.Range(func(i int, s Slot) bool {
		entries = append(entries, newEntry(i, s))
		return true
	})
	return entries
}

// Len returns the number of units in the table.
func (m *Monitor) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.table.Active()
}

// Capacity returns the fixed number of slots.
func (m *Monitor) Capacity() int {
	// capacity never changes, no lock needed.
	return m.table.Capacity()
}

// Stats returns the current statistics if the StatsRecorder can take snapshots
// (stats.Counter can). Otherwise it returns zero Stats.
func (m *Monitor) Stats() stats.Stats {
	if s, ok := m.stats.(snapshotter); ok {
		return s.Snapshot()
	}
	return stats.Stats{}
}
