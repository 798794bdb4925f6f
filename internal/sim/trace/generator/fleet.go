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

package generator

import (
	"cmp"
	"math/rand/v2"
	"slices"

	"github.com/gwtelemetry/pmstats"
	"github.com/gwtelemetry/pmstats/internal/sim/event"
)

// maxUnits is the number of distinct 3-byte identifiers.
const maxUnits = 1 << 24

// FleetParams describes a synthetic fleet of units reporting periodically.
type FleetParams struct {
	Units     int
	Rounds    uint
	Start     uint32
	Interval  uint32
	Jitter    uint32
	Dropout   float64
	Duplicate float64
	Seed      uint64
}

// Fleet generates rounds of reports. Within a round every unit reports once at its own
// phase of the interval plus jitter, unless it drops out. A report may be followed by a
// relayed duplicate a few seconds later.
type Fleet struct {
	base
}

func NewFleet(p FleetParams, limit *uint) *Fleet {
	r := rand.New(rand.NewPCG(p.Seed, p.Seed^0x9e3779b97f4a7c15))

	ids := fleetIdentifiers(r, p.Units)
	phases := make([]uint32, len(ids))
	for i := range phases {
		phases[i] = r.Uint32N(p.Interval)
	}

	round := uint(0)
	buf := make([]event.Report, 0, 2*len(ids))
	generate := func(sender *sender[event.Report]) (stop bool) {
		if round >= p.Rounds {
			return true
		}

		//nolint:gosec // rounds are bounded by config validation
		roundStart := p.Start + uint32(round)*p.Interval
		buf = buf[:0]
		for i, id := range ids {
			if r.Float64() < p.Dropout {
				continue
			}
			ts := roundStart + phases[i]
			if p.Jitter > 0 {
				ts += r.Uint32N(p.Jitter + 1)
			}
			buf = append(buf, event.NewReport(ts, id))
			if r.Float64() < p.Duplicate {
				buf = append(buf, event.NewReport(ts+1+r.Uint32N(5), id))
			}
		}
		slices.SortStableFunc(buf, func(a, b event.Report) int {
			return cmp.Compare(a.Timestamp(), b.Timestamp())
		})

		for _, e := range buf {
			if sender.Send(e) {
				return true
			}
		}
		round++
		return false
	}

	return &Fleet{
		base: newBase(generate, limit),
	}
}

func fleetIdentifiers(r *rand.Rand, n int) []pmstats.Identifier {
	n = min(n, maxUnits)
	seen := make(map[pmstats.Identifier]struct{}, n)
	ids := make([]pmstats.Identifier, 0, n)
	for len(ids) < n {
		v := r.Uint32N(maxUnits)
		id := pmstats.Identifier{byte(v >> 16), byte(v >> 8), byte(v)}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
