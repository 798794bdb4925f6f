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

// Package resend provides a pmstats.Resender that hands resend requests for overdue
// units to a radio transmitter through a bounded queue.
package resend

import (
	"context"
	"sync"

	"github.com/dolthub/swiss"
	"github.com/gammazero/deque"

	"github.com/gwtelemetry/pmstats"
)

// DefaultMaxPending is the queue bound used when New is given a non-positive value.
const DefaultMaxPending = 64

var _ pmstats.Resender = (*Queue)(nil)

type state struct {
	attempts uint32
	queued   bool
}

// Queue is a goroutine-safe FIFO of units that should be asked to resend their PM report.
//
// A unit is queued at most once at a time. The transmitter pops units with Next and
// calls Ack when a fresh report has arrived, which forgets the unit's attempt count.
type Queue struct {
	mu      sync.Mutex
	pending *deque.Deque[pmstats.Identifier]
	units   *swiss.Map[pmstats.Identifier, state]
	max     int
	ready   chan struct{}
}

// New creates a Queue holding at most maxPending units.
func New(maxPending int) *Queue {
	if maxPending <= 0 {
		maxPending = DefaultMaxPending
	}
	return &Queue{
		pending: deque.New[pmstats.Identifier](),
		units:   swiss.NewMap[pmstats.Identifier, state](uint32(maxPending)),
		max:     maxPending,
		ready:   make(chan struct{}, 1),
	}
}

// RequestResend queues id for the transmitter. A unit that is already queued counts as
// requested again. It returns false if ctx is done or the queue is full.
func (q *Queue) RequestResend(ctx context.Context, id pmstats.Identifier) bool {
	if ctx.Err() != nil {
		return false
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	st, _ := q.units.Get(id)
	if !st.queued {
		if q.pending.Len() >= q.max {
			return false
		}
		q.pending.PushBack(id)
		st.queued = true
	}
	st.attempts++
	q.units.Put(id, st)

	select {
	case q.ready <- struct{}{}:
	default:
	}
	return true
}

// Next pops the oldest queued unit.
func (q *Queue) Next() (pmstats.Identifier, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.pending.Len() == 0 {
		return pmstats.Identifier{}, false
	}
	id := q.pending.PopFront()
	if st, ok := q.units.Get(id); ok {
		st.queued = false
		q.units.Put(id, st)
	}
	return id, true
}

// Ready returns a channel that receives a value after a unit is queued.
// Transmitters wait on it and then drain the queue with Next.
func (q *Queue) Ready() <-chan struct{} {
	return q.ready
}

// Ack forgets the attempts of id. A queued id stays queued.
func (q *Queue) Ack(id pmstats.Identifier) {
	q.mu.Lock()
	defer q.mu.Unlock()

	st, ok := q.units.Get(id)
	if !ok {
		return
	}
	if st.queued {
		q.units.Put(id, state{queued: true})
		return
	}
	q.units.Delete(id)
}

// Attempts returns how many times id was requested since its last Ack.
func (q *Queue) Attempts(id pmstats.Identifier) uint32 {
	q.mu.Lock()
	defer q.mu.Unlock()

	st, _ := q.units.Get(id)
	return st.attempts
}

// Len returns the number of queued units.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.pending.Len()
}
