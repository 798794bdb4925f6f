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
	"errors"
	"math"
	"time"

	"github.com/gwtelemetry/pmstats/internal/table"
)

const (
	// DefaultCapacity is the number of units tracked when neither Capacity nor Slots is set.
	DefaultCapacity = table.DefaultCapacity
	// DefaultDebounceWindow is the minimum gap between two accepted reports of a unit.
	DefaultDebounceWindow = time.Minute
	// DefaultReportInterval is how often units send PM reports.
	DefaultReportInterval = 15 * time.Minute
	// DefaultOverdueGrace is how late a report may be before the unit is overdue.
	DefaultOverdueGrace = 2 * time.Minute
	// DefaultSweepInterval is the period of Monitor.Run.
	DefaultSweepInterval = time.Minute
)

// Options should be passed to New to construct a Monitor.
//
// Durations are truncated to whole seconds, the resolution of report timestamps.
type Options struct {
	// Capacity is the fixed number of slots. The table never grows: once every slot holds a
	// unit, reports from new units are rejected.
	//
	// This option cannot be combined with a Slots region of a different length.
	Capacity int
	// Slots is a caller-owned region the Monitor operates on, for example memory shared with
	// another process. Its length is the capacity. Units already present in the region are kept.
	Slots []Slot
	// DebounceWindow is the minimum time between two accepted reports from the same unit.
	// Reports inside the window are relayed duplicates and are ignored.
	//
	// DebounceWindow, ReportInterval and OverdueGrace are truncated to whole seconds and
	// must not be shorter than a second.
	DebounceWindow time.Duration
	// ReportInterval is the period at which units are expected to report.
	ReportInterval time.Duration
	// OverdueGrace is added to ReportInterval before a unit is considered overdue.
	OverdueGrace time.Duration
	// SweepInterval is the period of Monitor.Run.
	SweepInterval time.Duration
	// Clock is the time source of RegisterNow, SweepNow and Run.
	Clock Clock
	// Logger specifies the Logger implementation that will be used for diagnostics.
	//
	// Logging is disabled by default.
	Logger Logger
	// Resender is asked to request a new report from every overdue unit found by Sweep.
	//
	// By default, every request succeeds without sending anything.
	Resender Resender
	// StatsRecorder accumulates statistics during the operation of a Monitor.
	StatsRecorder StatsRecorder
}

func (o *Options) validate() error {
	if o.Capacity < 0 {
		return errors.New("pmstats: capacity should be positive")
	}
	if o.Slots != nil {
		if len(o.Slots) == 0 {
			return errors.New("pmstats: slots region is empty")
		}
		if o.Capacity > 0 && o.Capacity != len(o.Slots) {
			return errors.New("pmstats: capacity does not match the length of the slots region")
		}
	}

	if o.DebounceWindow < 0 {
		return errors.New("pmstats: debounce window should be positive")
	}
	if o.ReportInterval < 0 {
		return errors.New("pmstats: report interval should be positive")
	}
	if o.OverdueGrace < 0 {
		return errors.New("pmstats: overdue grace should be positive")
	}
	if o.SweepInterval < 0 {
		return errors.New("pmstats: sweep interval should be positive")
	}
	for _, d := range []time.Duration{o.DebounceWindow, o.ReportInterval, o.OverdueGrace} {
		if d > 0 && d < time.Second {
			return errors.New("pmstats: report timings should be at least one second")
		}
	}
	if o.DebounceWindow > maxDuration || o.ReportInterval > maxDuration || o.OverdueGrace > maxDuration ||
		o.ReportInterval+o.OverdueGrace > maxDuration {
		return errors.New("pmstats: durations should fit into 32-bit seconds")
	}

	return nil
}

const maxDuration = time.Duration(math.MaxUint32) * time.Second

func (o *Options) setDefaults() {
	if o.Capacity == 0 {
		o.Capacity = DefaultCapacity
		if o.Slots != nil {
			o.Capacity = len(o.Slots)
		}
	}
	if o.DebounceWindow == 0 {
		o.DebounceWindow = DefaultDebounceWindow
	}
	if o.ReportInterval == 0 {
		o.ReportInterval = DefaultReportInterval
	}
	if o.OverdueGrace == 0 {
		o.OverdueGrace = DefaultOverdueGrace
	}
	if o.SweepInterval == 0 {
		o.SweepInterval = DefaultSweepInterval
	}
	if o.Clock == nil {
		o.Clock = realClock{}
	}
	if o.Logger == nil {
		o.Logger = &NoopLogger{}
	}
	if o.Resender == nil {
		o.Resender = noopResender{}
	}
	if o.StatsRecorder == nil {
		o.StatsRecorder = noopStatsRecorder{}
	}
}

func seconds(d time.Duration) uint32 {
	return uint32(d / time.Second)
}
