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
	"context"
	"strconv"
	"testing"
	"time"
)

type benchCase struct {
	name     string
	capacity int
	units    int
}

var benchCases = []benchCase{
	{"capacity=150,units=100", 150, 100},
	{"capacity=150,units=150", 150, 150},
	{"capacity=150,units=300", 150, 300},
	{"capacity=4096,units=3000", 4096, 3000},
}

func benchUnits(n int) []Identifier {
	ids := make([]Identifier, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, Identifier{byte(i >> 16), byte(i >> 8), byte(i)})
	}
	return ids
}

func runParallelBenchmark(b *testing.B, benchFunc func(pb *testing.PB)) {
	b.Helper()

	b.ResetTimer()
	start := time.Now()
	b.RunParallel(benchFunc)
	opsPerSec := float64(b.N) / time.Since(start).Seconds()
	b.ReportMetric(opsPerSec, "ops/s")
}

func BenchmarkMonitor_Register(b *testing.B) {
	for _, bc := range benchCases {
		b.Run(bc.name, func(b *testing.B) {
			m := Must(&Options{Capacity: bc.capacity})
			ids := benchUnits(bc.units)

			runParallelBenchmark(b, func(pb *testing.PB) {
				i := 0
				ts := uint32(0)
				for pb.Next() {
					m.Register(ids[i], ts)
					i++
					if i == len(ids) {
						i = 0
						ts += testDebounce
					}
				}
			})
		})
	}
}

func BenchmarkMonitor_Sweep(b *testing.B) {
	for _, capacity := range []int{150, 4096} {
		b.Run("capacity="+strconv.Itoa(capacity), func(b *testing.B) {
			m := Must(&Options{Capacity: capacity})
			for _, id := range benchUnits(capacity) {
				m.Register(id, 0)
			}
			ctx := context.Background()

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m.Sweep(ctx, testOverdue+1)
			}
		})
	}
}
