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

package spinlock

import (
	"runtime"
	"sync/atomic"
)

const maxSpins = 16

// SpinLock guards short critical sections such as a single table update.
//
// The zero value is an unlocked lock. A SpinLock must not be copied after first use.
type SpinLock struct {
	state atomic.Uint32
}

// Lock acquires the lock, yielding the processor after maxSpins failed polls.
func (sl *SpinLock) Lock() {
	for !sl.TryLock() {
		spins := 0
		for sl.state.Load() == 1 {
			spins++
			if spins > maxSpins {
				spins = 0
				runtime.Gosched()
			}
		}
	}
}

// TryLock acquires the lock if it is free and reports whether it did.
func (sl *SpinLock) TryLock() bool {
	return sl.state.CompareAndSwap(0, 1)
}

// Unlock releases the lock.
func (sl *SpinLock) Unlock() {
	sl.state.Store(0)
}
