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
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/zeebo/xxh3"

	"github.com/gwtelemetry/pmstats/internal/table"
)

const (
	snapshotVersion = 1
	checksumSize    = 8
)

type snapshot struct {
	Version  int
	Capacity int
	Entries  []Entry
}

// SaveToFile writes every unit of m to path so that a restarted process can continue
// where it left off.
//
// The file is a gob stream followed by its xxh3 checksum. It is replaced atomically,
// a crash during the write leaves the previous snapshot intact.
func SaveToFile(m *Monitor, path string) error {
	s := snapshot{
		Version:  snapshotVersion,
		Capacity: m.Capacity(),
		Entries:  m.Entries(),
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	var sum [checksumSize]byte
	binary.LittleEndian.PutUint64(sum[:], xxh3.Hash(buf.Bytes()))
	buf.Write(sum[:])

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot directory: %w", err)
		}
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return nil
}

// LoadFromFile restores the units saved by SaveToFile into m, which must be empty.
//
// When the capacities match every unit returns to its saved slot. Otherwise units are
// placed by probing in slot order, and a smaller table may not fit all of them: the units
// that fit are kept and ErrTableFull is returned. A corrupt snapshot leaves m empty.
func LoadFromFile(m *Monitor, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	if len(data) < checksumSize {
		return fmt.Errorf("%w: %s is truncated", ErrCorruptSnapshot, path)
	}
	payload, sum := data[:len(data)-checksumSize], data[len(data)-checksumSize:]
	if xxh3.Hash(payload) != binary.LittleEndian.Uint64(sum) {
		return fmt.Errorf("%w: %s checksum mismatch", ErrCorruptSnapshot, path)
	}

	var s snapshot
	if err := gob.NewDecoder(bytes.NewReader(payload)).Decode(&s); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrCorruptSnapshot, path, err)
	}
	if s.Version != snapshotVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrCorruptSnapshot, s.Version)
	}

	return m.restore(s)
}

func (m *Monitor) restore(s snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.table.Active() != 0 {
		return ErrNotEmpty
	}

	// units are placed into a scratch table first, m is only touched on success.
	scratch := table.New(table.WithCapacity(m.table.Capacity()))
	exact := s.Capacity == scratch.Capacity()
	seen := make(map[Identifier]struct{}, len(s.Entries))
	var full error
	for _, e := range s.Entries {
		slot := Slot{
			ID:       e.ID,
			Reports:  e.Reports,
			LastSeen: e.LastSeen,
		}
		if !slot.Occupied() {
			return fmt.Errorf("%w: unit %s has no reports", ErrCorruptSnapshot, e.ID)
		}
		if _, ok := seen[e.ID]; ok {
			return fmt.Errorf("%w: unit %s is saved twice", ErrCorruptSnapshot, e.ID)
		}
		seen[e.ID] = struct{}{}

		if exact {
			if !scratch.RestoreAt(e.Index, slot) {
				return fmt.Errorf("%w: unit %s has a bad slot %d", ErrCorruptSnapshot, e.ID, e.Index)
			}
			continue
		}
		if full == nil {
			if _, ok := scratch.Restore(slot); !ok {
				full = fmt.Errorf("restore unit %s: %w", e.ID, ErrTableFull)
			}
		}
	}

	if exact {
		// every unit must be reachable from its home slot.
		for _, e := range s.Entries {
			if i, _, ok := scratch.Lookup(e.ID); !ok || i != e.Index {
				return fmt.Errorf("%w: unit %s is off its probe sequence", ErrCorruptSnapshot, e.ID)
			}
		}
	}

	scratch.Range(func(i int, slot Slot) bool {
		m.table.RestoreAt(i, slot)
		return true
	})
	return full
}
