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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gwtelemetry/pmstats"
	"github.com/gwtelemetry/pmstats/internal/sim/event"
	"github.com/gwtelemetry/pmstats/internal/sim/parser"
)

func collect(s Stream[event.Report]) []event.Report {
	var reports []event.Report
	for {
		r, ok := s.Next()
		if !ok {
			return reports
		}
		reports = append(reports, r)
	}
}

func TestFleet(t *testing.T) {
	t.Parallel()

	p := FleetParams{
		Units:    50,
		Rounds:   4,
		Start:    1_000_000,
		Interval: 900,
		Jitter:   30,
		Seed:     7,
	}
	reports := collect(NewFleet(p, nil).Generate())
	require.Len(t, reports, p.Units*int(p.Rounds))

	perUnit := make(map[pmstats.Identifier]int)
	for i, r := range reports {
		perUnit[r.ID()]++
		require.GreaterOrEqual(t, r.Timestamp(), p.Start)
		require.Less(t, r.Timestamp(), p.Start+uint32(p.Rounds)*p.Interval+p.Interval+p.Jitter)
		// every round is sorted
		if i%p.Units != 0 {
			require.LessOrEqual(t, reports[i-1].Timestamp(), r.Timestamp())
		}
	}
	require.Len(t, perUnit, p.Units)
	for _, n := range perUnit {
		require.Equal(t, int(p.Rounds), n)
	}
}

func TestFleet_Deterministic(t *testing.T) {
	t.Parallel()

	p := FleetParams{
		Units:     20,
		Rounds:    3,
		Interval:  60,
		Jitter:    5,
		Dropout:   0.3,
		Duplicate: 0.3,
		Seed:      99,
	}
	a := collect(NewFleet(p, nil).Generate())
	b := collect(NewFleet(p, nil).Generate())
	require.Equal(t, a, b)
}

func TestFleet_DropoutAndDuplicate(t *testing.T) {
	t.Parallel()

	all := collect(NewFleet(FleetParams{Units: 10, Rounds: 5, Interval: 60, Dropout: 1, Seed: 1}, nil).Generate())
	require.Empty(t, all)

	dup := collect(NewFleet(FleetParams{Units: 10, Rounds: 5, Interval: 60, Duplicate: 1, Seed: 1}, nil).Generate())
	require.Len(t, dup, 2*10*5)
}

func TestFleet_Limit(t *testing.T) {
	t.Parallel()

	limit := uint(7)
	reports := collect(NewFleet(FleetParams{Units: 10, Rounds: 5, Interval: 60, Seed: 1}, &limit).Generate())
	require.Len(t, reports, int(limit))
}

func TestFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trace.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(
		`{"ts": 1, "unit": "00:00:01"}`+"\n"+`{"ts": 2, "unit": "00:00:02"}`+"\n",
	), 0o600))

	f, err := NewFile(path, parser.JSONLFormat, nil)
	require.NoError(t, err)
	require.Equal(t, []event.Report{
		event.NewReport(1, pmstats.Identifier{0, 0, 1}),
		event.NewReport(2, pmstats.Identifier{0, 0, 2}),
	}, collect(f.Generate()))

	_, err = NewFile(path, "csv", nil)
	require.Error(t, err)
}
