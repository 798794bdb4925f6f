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

package stats

import (
	"github.com/gwtelemetry/pmstats/internal/xsync"
)

// Counter is a goroutine-safe pmstats.StatsRecorder implementation.
type Counter struct {
	registrations  *xsync.Adder
	updates        *xsync.Adder
	debounced      *xsync.Adder
	rejections     *xsync.Adder
	sweeps         *xsync.Adder
	overdue        *xsync.Adder
	resendFailures *xsync.Adder
}

// NewCounter constructs a Counter instance with all counts initialized to zero.
func NewCounter() *Counter {
	return &Counter{
		registrations:  xsync.NewAdder(),
		updates:        xsync.NewAdder(),
		debounced:      xsync.NewAdder(),
		rejections:     xsync.NewAdder(),
		sweeps:         xsync.NewAdder(),
		overdue:        xsync.NewAdder(),
		resendFailures: xsync.NewAdder(),
	}
}

// Snapshot returns a snapshot of this recorder's values. Note that this may be an inconsistent view, as it
// may be interleaved with update operations.
func (c *Counter) Snapshot() Stats {
	return Stats{
		Registrations:  c.registrations.Value(),
		Updates:        c.updates.Value(),
		Debounced:      c.debounced.Value(),
		Rejections:     c.rejections.Value(),
		Sweeps:         c.sweeps.Value(),
		Overdue:        c.overdue.Value(),
		ResendFailures: c.resendFailures.Value(),
	}
}

// RecordRegistration records a unit taking a free slot.
func (c *Counter) RecordRegistration() {
	c.registrations.Add(1)
}

// RecordUpdate records a report that refreshed a known unit.
func (c *Counter) RecordUpdate() {
	c.updates.Add(1)
}

// RecordDebounce records a report ignored inside the debounce window.
func (c *Counter) RecordDebounce() {
	c.debounced.Add(1)
}

// RecordRejection records a report dropped because the table was full.
func (c *Counter) RecordRejection() {
	c.rejections.Add(1)
}

// RecordSweep records a completed sweep and the number of overdue units it flagged.
func (c *Counter) RecordSweep(overdue int) {
	c.sweeps.Add(1)
	if overdue > 0 {
		//nolint:gosec // checked above
		c.overdue.Add(uint64(overdue))
	}
}

// RecordResendFailure records a resend request that was refused.
func (c *Counter) RecordResendFailure() {
	c.resendFailures.Add(1)
}
