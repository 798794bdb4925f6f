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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/gwtelemetry/pmstats"
	"github.com/gwtelemetry/pmstats/internal/sim/config"
	"github.com/gwtelemetry/pmstats/internal/sim/parser"
	"github.com/gwtelemetry/pmstats/internal/sim/trace/generator"
	"github.com/gwtelemetry/pmstats/stats"
)

const trace = `1000 00:00:01
1010 00:00:05
1030 00:00:01
1100 00:00:01
1200 aa:bb:cc
3000 00:00:05
`

func fileConfig(t *testing.T, capacities ...uint) config.Config {
	t.Helper()

	path := filepath.Join(t.TempDir(), "trace.txt")
	require.NoError(t, os.WriteFile(path, []byte(trace), 0o600))
	return config.Config{
		Type:       generator.FileType,
		Name:       "test",
		Capacities: capacities,
		Monitor:    config.Monitor{SweepInterval: 60},
		File: &config.File{
			TraceType: parser.TextFormat,
			Path:      path,
		},
	}
}

func TestSimulator_Run(t *testing.T) {
	t.Parallel()

	s, err := New(fileConfig(t, 4, 2), Options{})
	require.NoError(t, err)

	results, err := s.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)

	// sweeps at 1060, 1120, 1180, every minute from 1240 to 2980 and a final one at 3040
	small := results[0]
	require.Equal(t, 2, small.Capacity())
	require.Equal(t, 2, small.Units())
	require.Equal(t, 32, small.Resends())
	if diff := cmp.Diff(stats.Stats{
		Registrations: 2,
		Updates:       2,
		Debounced:     1,
		Rejections:    1,
		Sweeps:        34,
		Overdue:       32,
	}, small.Stats()); diff != "" {
		t.Fatalf("capacity 2 stats mismatch (-want +got):\n%s", diff)
	}

	large := results[1]
	require.Equal(t, 4, large.Capacity())
	require.Equal(t, 3, large.Units())
	if diff := cmp.Diff(stats.Stats{
		Registrations: 3,
		Updates:       2,
		Debounced:     1,
		Sweeps:        34,
		Overdue:       46,
	}, large.Stats()); diff != "" {
		t.Fatalf("capacity 4 stats mismatch (-want +got):\n%s", diff)
	}
}

func TestSimulator_Fleet(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		Type:       generator.FleetType,
		Name:       "fleet",
		Capacities: []uint{50, 150},
		Fleet: &config.Fleet{
			Units:    100,
			Rounds:   8,
			Start:    1_700_000_000,
			Interval: 900,
			Jitter:   30,
			Seed:     5,
		},
	}
	s, err := New(cfg, Options{})
	require.NoError(t, err)

	results, err := s.Run(context.Background())
	require.NoError(t, err)

	full, roomy := results[0].Stats(), results[1].Stats()
	require.Equal(t, 50, results[0].Units())
	require.Equal(t, uint64(50), full.Registrations)
	require.Equal(t, uint64(50*8), full.Rejections)
	require.Equal(t, uint64(800), full.Reports())

	require.Equal(t, 100, results[1].Units())
	require.Zero(t, roomy.Rejections)
	require.Equal(t, uint64(100), roomy.Registrations)
	require.Equal(t, uint64(700), roomy.Updates)
}

func TestSimulator_Snapshot(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "snapshots")
	var out bytes.Buffer
	s, err := New(fileConfig(t, 4), Options{SnapshotDir: dir, Output: &out})
	require.NoError(t, err)
	require.NoError(t, s.Simulate(context.Background()))
	require.Contains(t, strings.ToLower(out.String()), "registered")

	m := pmstats.Must(&pmstats.Options{Capacity: 4})
	require.NoError(t, pmstats.LoadFromFile(m, filepath.Join(dir, "test-4.snapshot")))
	require.Equal(t, 3, m.Len())

	e, ok := m.Lookup(pmstats.Identifier{0, 0, 5})
	require.True(t, ok)
	require.Equal(t, uint32(3000), e.LastSeen)
	require.Equal(t, uint32(2), e.Reports)
}

func TestSimulator_Canceled(t *testing.T) {
	t.Parallel()

	s, err := New(fileConfig(t, 4), Options{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
