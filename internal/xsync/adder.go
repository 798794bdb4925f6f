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

package xsync

import (
	"sync"
	"sync/atomic"

	"github.com/gwtelemetry/pmstats/internal/xmath"
	"github.com/gwtelemetry/pmstats/internal/xruntime"
)

var tokenPool sync.Pool

type token struct {
	idx     uint32
	padding [xruntime.CacheLineSize - 4]byte
}

type cell struct {
	v       atomic.Uint64
	padding [xruntime.CacheLineSize - 8]byte
}

// Adder is a striped uint64 counter.
//
// Writers pick a stripe per goroutine-ish token, so a burst of receive-path
// increments does not bounce one cache line between cores. Value sums all
// stripes and may miss concurrent additions.
type Adder struct {
	cells []cell
	mask  uint32
}

// NewAdder creates an Adder with one stripe per available CPU rounded up to a power of two.
func NewAdder() *Adder {
	n := xmath.RoundUpPowerOf2(xruntime.Parallelism())
	return &Adder{
		cells: make([]cell, n),
		mask:  n - 1,
	}
}

// Add increases the counter by delta.
func (a *Adder) Add(delta uint64) {
	t, ok := tokenPool.Get().(*token)
	if !ok {
		t = &token{}
		t.idx = xruntime.Fastrand()
	}
	for {
		c := &a.cells[t.idx&a.mask]
		v := c.v.Load()
		if c.v.CompareAndSwap(v, v+delta) {
			break
		}
		// contended stripe, move on.
		t.idx = xruntime.Fastrand()
	}
	tokenPool.Put(t)
}

// Value returns the current sum.
func (a *Adder) Value() uint64 {
	var v uint64
	for i := range a.cells {
		v += a.cells[i].v.Load()
	}
	return v
}

// Reset sets every stripe to zero.
func (a *Adder) Reset() {
	for i := range a.cells {
		a.cells[i].v.Store(0)
	}
}
