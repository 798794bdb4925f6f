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

package table

// Slot is one position of the table. A slot with zero reports is free and its other fields are meaningless.
type Slot struct {
	ID       Identifier
	Reports  uint32
	LastSeen uint32
}

// Occupied reports whether a unit has ever been registered in the slot.
func (s *Slot) Occupied() bool {
	return s.Reports != 0
}

// Outcome describes what Register did with a report.
type Outcome uint8

const (
	// Rejected means the table is full and the report was dropped.
	Rejected Outcome = iota
	// Registered means the unit took a free slot.
	Registered
	// Updated means the unit's report count and timestamp were refreshed.
	Updated
	// Debounced means the report arrived inside the debounce window and was ignored.
	Debounced
)

// Accepted reports whether the caller should treat the report as handled.
func (o Outcome) Accepted() bool {
	return o != Rejected
}

func (o Outcome) String() string {
	switch o {
	case Rejected:
		return "rejected"
	case Registered:
		return "registered"
	case Updated:
		return "updated"
	case Debounced:
		return "debounced"
	default:
		return "unknown"
	}
}

// Table is a fixed-capacity open-addressing table of units keyed by identifier.
//
// Collisions are resolved by linear probing. Slots are never cleared, so the first
// free slot on a probe sequence terminates a lookup.
//
// Table is not safe for concurrent use.
type Table struct {
	slots  []Slot
	active int
	hasher func(Identifier) uint32
}

// New creates a table. It panics if the capacity is not positive.
func New(opts ...Option) *Table {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	slots := o.slots
	if slots == nil {
		if o.capacity <= 0 {
			panic("table: capacity should be positive")
		}
		slots = make([]Slot, o.capacity)
	}
	if len(slots) == 0 {
		panic("table: capacity should be positive")
	}

	t := &Table{
		slots:  slots,
		hasher: o.hasher,
	}
	// an attached region may already hold units.
	for i := range t.slots {
		if t.slots[i].Occupied() {
			t.active++
		}
	}
	return t
}

// Capacity returns the number of slots.
func (t *Table) Capacity() int {
	return len(t.slots)
}

// Active returns the number of occupied slots.
func (t *Table) Active() int {
	return t.active
}

// Home returns the first slot of the identifier's probe sequence.
func (t *Table) Home(id Identifier) int {
	return int(t.hasher(id) % uint32(len(t.slots)))
}

// Resolve returns the slot holding id, or the free slot id would be placed in.
// ok is false when every slot holds some other unit.
func (t *Table) Resolve(id Identifier) (index int, ok bool) {
	start := t.Home(id)
	if t.active == 0 {
		return start, true
	}

	capacity := len(t.slots)
	for offset := 0; offset < capacity; offset++ {
		i := start + offset
		if i >= capacity {
			i -= capacity
		}
		s := &t.slots[i]
		if !s.Occupied() || s.ID == id {
			return i, true
		}
	}
	return -1, false
}

// Lookup returns the slot of a registered unit.
func (t *Table) Lookup(id Identifier) (int, Slot, bool) {
	i, ok := t.Resolve(id)
	if !ok || !t.slots[i].Occupied() {
		return -1, Slot{}, false
	}
	return i, t.slots[i], true
}

// Register records a report from id received at ts.
//
// A report less than window seconds after the previous accepted one is debounced:
// relayed copies of the same report reach the gateway over several hops.
func (t *Table) Register(id Identifier, ts, window uint32) (int, Outcome) {
	i, ok := t.Resolve(id)
	if !ok {
		return -1, Rejected
	}

	s := &t.slots[i]
	if !s.Occupied() {
		t.active++
		s.ID = id
		s.Reports = 1
		s.LastSeen = ts
		return i, Registered
	}

	if Elapsed(ts, s.LastSeen) < window {
		return i, Debounced
	}

	s.Reports++
	s.LastSeen = ts
	return i, Updated
}

// Slot returns a copy of the slot at index i.
func (t *Table) Slot(i int) Slot {
	return t.slots[i]
}

// Range calls f for every occupied slot in index order until f returns false.
func (t *Table) Range(f func(i int, s Slot) bool) {
	for i := range t.slots {
		if !t.slots[i].Occupied() {
			continue
		}
		if !f(i, t.slots[i]) {
			return
		}
	}
}

// RestoreAt puts s into the free slot i. It returns false if the slot is taken or s is empty.
func (t *Table) RestoreAt(i int, s Slot) bool {
	if i < 0 || i >= len(t.slots) || !s.Occupied() || t.slots[i].Occupied() {
		return false
	}
	t.slots[i] = s
	t.active++
	return true
}

// Restore places s on its probe sequence. It returns false if the unit is already
// present, s is empty or the table is full.
func (t *Table) Restore(s Slot) (int, bool) {
	if !s.Occupied() {
		return -1, false
	}
	i, ok := t.Resolve(s.ID)
	if !ok || t.slots[i].Occupied() {
		return -1, false
	}
	t.slots[i] = s
	t.active++
	return i, true
}

// Elapsed returns the seconds between since and now in wrapping uint32 arithmetic.
// A since that lies after now yields zero, unlike a plain unsigned subtraction: a late
// report is debounced instead of moving LastSeen back, and is never overdue. Gaps of
// 2^31 seconds or more are indistinguishable from that and also yield zero.
func Elapsed(now, since uint32) uint32 {
	d := now - since
	if int32(d) < 0 {
		return 0
	}
	return d
}
