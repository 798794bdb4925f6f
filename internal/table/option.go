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

// DefaultCapacity is the number of units a gateway tracks out of the box.
const DefaultCapacity = 150

type Option func(*options)

type options struct {
	capacity int
	slots    []Slot
	hasher   func(Identifier) uint32
}

func defaultOptions() *options {
	return &options{
		capacity: DefaultCapacity,
		hasher:   djb2,
	}
}

// WithCapacity sets the number of slots allocated by New. It is ignored when WithSlots is used.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.capacity = capacity
	}
}

// WithSlots makes the table operate on a caller-owned region. The capacity is len(slots)
// and the region is never grown or reallocated.
func WithSlots(slots []Slot) Option {
	return func(o *options) {
		o.slots = slots
	}
}

// WithHasher replaces the identifier hash. The result is reduced modulo the capacity.
func WithHasher(hasher func(Identifier) uint32) Option {
	return func(o *options) {
		o.hasher = hasher
	}
}
