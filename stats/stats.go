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

import "math"

// Stats are statistics about the reports handled by a pmstats.Monitor.
type Stats struct {
	// Registrations is the number of units that took a free slot.
	Registrations uint64
	// Updates is the number of reports that refreshed a known unit.
	Updates uint64
	// Debounced is the number of reports ignored because they arrived inside the debounce window.
	Debounced uint64
	// Rejections is the number of reports dropped because the table was full.
	Rejections uint64
	// Sweeps is the number of completed sweeps.
	Sweeps uint64
	// Overdue is the number of overdue units flagged by sweeps, summed over all sweeps.
	Overdue uint64
	// ResendFailures is the number of resend requests that the resender refused.
	ResendFailures uint64
}

// Reports returns the number of reports that reached the monitor.
//
// NOTE: the values of the metrics are undefined in case of overflow.
func (s Stats) Reports() uint64 {
	return checkedAdd(s.Accepted(), s.Rejections)
}

// Accepted returns the number of reports that were not rejected.
func (s Stats) Accepted() uint64 {
	return checkedAdd(checkedAdd(s.Registrations, s.Updates), s.Debounced)
}

// RejectionRatio returns the share of reports lost to a full table.
func (s Stats) RejectionRatio() float64 {
	reports := s.Reports()
	if reports == 0 {
		return 0.0
	}
	return float64(s.Rejections) / float64(reports)
}

// DebounceRatio returns the share of accepted reports that were duplicates.
func (s Stats) DebounceRatio() float64 {
	accepted := s.Accepted()
	if accepted == 0 {
		return 0.0
	}
	return float64(s.Debounced) / float64(accepted)
}

func checkedAdd(a, b uint64) uint64 {
	s := a + b
	if s < a || s < b {
		return math.MaxUint64
	}
	return s
}
