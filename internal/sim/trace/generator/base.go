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

import (
	"runtime"
	"sync"

	"github.com/gwtelemetry/pmstats/internal/sim/event"
)

const (
	FileType  = "file"
	FleetType = "fleet"
)

type genFunc func(sender *sender[event.Report]) (stop bool)

type base struct {
	once     sync.Once
	stream   Stream[event.Report]
	generate genFunc
	limit    *uint
	cleanup  func()
}

func newBase(generate genFunc, limit *uint) base {
	return base{
		stream:   newStream[event.Report](16 * runtime.GOMAXPROCS(0)),
		generate: generate,
		limit:    limit,
	}
}

// Generate starts producing reports on first call. The stream is closed when the trace
// ends or the limit is reached; the stream must be drained.
func (b *base) Generate() Stream[event.Report] {
	b.once.Do(func() {
		go func() {
			sender := newSender(b.stream, b.limit)
			for {
				if stop := b.generate(sender); stop {
					if b.cleanup != nil {
						b.cleanup()
					}
					b.stream.close()
					break
				}
			}
		}()
	})

	return b.stream
}
