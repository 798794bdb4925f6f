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

package simulation

import (
	"github.com/gwtelemetry/pmstats/stats"
)

type Result struct {
	capacity int
	units    int
	resends  int
	stats    stats.Stats
}

func NewResult(capacity, units, resends int, s stats.Stats) Result {
	return Result{
		capacity: capacity,
		units:    units,
		resends:  resends,
		stats:    s,
	}
}

func (r Result) Capacity() int {
	return r.capacity
}

// Units is the number of occupied slots at the end of the simulation.
func (r Result) Units() int {
	return r.units
}

// Resends is the number of resend requests handed to the transmitter.
func (r Result) Resends() int {
	return r.resends
}

func (r Result) Stats() stats.Stats {
	return r.stats
}
