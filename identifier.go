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
	"fmt"

	"github.com/gwtelemetry/pmstats/internal/table"
)

// Identifier is the last three bytes of a subordinate unit's MAC address. It prints as aa:bb:cc.
type Identifier = table.Identifier

// Slot is one position of a Monitor's table. Enclosing processes that own the table memory
// pass a []Slot through Options.Slots.
type Slot = table.Slot

// Outcome describes what happened to a report passed to Monitor.RegisterOutcome.
type Outcome = table.Outcome

const (
	// Rejected means the table was full and the report was dropped.
	Rejected = table.Rejected
	// Registered means the unit was seen for the first time.
	Registered = table.Registered
	// Updated means the unit's report count and last-seen time were refreshed.
	Updated = table.Updated
	// Debounced means the report arrived inside the debounce window and was ignored.
	Debounced = table.Debounced
)

// ParseIdentifier parses an identifier written as aa:bb:cc or aabbcc.
func ParseIdentifier(s string) (Identifier, error) {
	id, err := table.ParseIdentifier(s)
	if err != nil {
		return Identifier{}, fmt.Errorf("%w %q: %w", ErrInvalidIdentifier, s, err)
	}
	return id, nil
}

// Entry is a copy of an occupied slot.
type Entry struct {
	// Index is the slot the unit occupies.
	Index int
	// ID identifies the unit.
	ID Identifier
	// Reports is the number of accepted, non-debounced reports.
	Reports uint32
	// LastSeen is the timestamp in seconds of the last accepted report.
	LastSeen uint32
}

func newEntry(i int, s Slot) Entry {
	return Entry{
		Index:    i,
		ID:       s.ID,
		Reports:  s.Reports,
		LastSeen: s.LastSeen,
	}
}
