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
	"fmt"
	"log"

	"github.com/gwtelemetry/pmstats/internal/sim/event"
	"github.com/gwtelemetry/pmstats/internal/sim/trace"
)

type File struct {
	base
}

func NewFile(path, traceType string, limit *uint) (*File, error) {
	reader, err := trace.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("create file reader: %w", err)
	}

	parser, err := trace.NewParser(traceType, reader)
	if err != nil {
		_ = reader.Close()
		return nil, fmt.Errorf("create trace parser: %w", err)
	}

	generate := func(sender *sender[event.Report]) (stop bool) {
		done, err := parser.Parse(sender.Send)
		if err != nil {
			log.Println(err)
		}

		return done || err != nil
	}

	f := &File{
		base: newBase(generate, limit),
	}
	f.cleanup = func() {
		_ = reader.Close()
	}
	return f, nil
}
