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
	"github.com/gwtelemetry/pmstats/stats"
)

// StatsRecorder accumulates statistics during the operation of a Monitor.
//
// stats.Counter is the goroutine-safe implementation shipped with pmstats.
type StatsRecorder interface {
	// RecordRegistration records a unit seen for the first time.
	RecordRegistration()
	// RecordUpdate records a report that refreshed a known unit.
	RecordUpdate()
	// RecordDebounce records a report ignored inside the debounce window.
	RecordDebounce()
	// RecordRejection records a report dropped because the table was full.
	RecordRejection()
	// RecordSweep records a completed sweep and the number of overdue units it flagged.
	RecordSweep(overdue int)
	// RecordResendFailure records a resend request refused by the Resender.
	RecordResendFailure()
}

type snapshotter interface {
	Snapshot() stats.Stats
}

var _ StatsRecorder = (*stats.Counter)(nil)

type noopStatsRecorder struct{}

func (np noopStatsRecorder) RecordRegistration()     {}
func (np noopStatsRecorder) RecordUpdate()           {}
func (np noopStatsRecorder) RecordDebounce()         {}
func (np noopStatsRecorder) RecordRejection()        {}
func (np noopStatsRecorder) RecordSweep(overdue int) {}
func (np noopStatsRecorder) RecordResendFailure()    {}
