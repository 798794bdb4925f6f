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

type Stream[T any] struct {
	stream chan T
}

func newStream[T any](capacity int) Stream[T] {
	return Stream[T]{
		stream: make(chan T, capacity),
	}
}

func (s Stream[T]) Next() (T, bool) {
	v, ok := <-s.stream
	return v, ok
}

func (s Stream[T]) close() {
	close(s.stream)
}

func (s Stream[T]) asSender() chan<- T {
	return s.stream
}
