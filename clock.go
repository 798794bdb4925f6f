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
	"time"
)

// Clock is a time source that
//   - Returns the current time as whole seconds, the resolution of report timestamps.
//   - Returns a channel that delivers “ticks” of a clock at intervals.
type Clock interface {
	// Now returns the current time in seconds.
	//
	// By default, time.Now().Unix() truncated to 32 bits is used.
	Now() uint32
	// Tick returns a channel that delivers “ticks” of a clock at intervals.
	//
	// Monitor.Run calls Tick(SweepInterval) once and sweeps on every tick.
	//
	// By default, [time.Tick] is used.
	Tick(duration time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) Now() uint32 {
	//nolint:gosec // timestamps wrap in 2106, elapsed time uses wrapping arithmetic
	return uint32(time.Now().Unix())
}

func (realClock) Tick(duration time.Duration) <-chan time.Time {
	return time.Tick(duration)
}
