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

package generator

type sender[T any] struct {
	s      Stream[T]
	events uint
	limit  *uint
}

func newSender[T any](s Stream[T], limit *uint) *sender[T] {
	return &sender[T]{
		s:     s,
		limit: limit,
	}
}

func (s *sender[T]) Send(event T) bool {
	if s.limit != nil && s.events >= *s.limit {
		return true
	}

	s.s.asSender() <- event

	s.events++
	return false
}
