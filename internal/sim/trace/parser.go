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

package trace

import (
	"errors"
	"io"

	"github.com/gwtelemetry/pmstats/internal/sim/event"
	"github.com/gwtelemetry/pmstats/internal/sim/parser"
)

var ErrUnknownTraceFormat = errors.New("unknown trace format")

type parserContract interface {
	Parse(send func(report event.Report) bool) (bool, error)
}

func NewParser(traceType string, reader io.Reader) (parserContract, error) {
	switch traceType {
	case parser.TextFormat:
		return parser.NewText(reader), nil
	case parser.JSONLFormat:
		return parser.NewJSONL(reader), nil
	default:
		return nil, ErrUnknownTraceFormat
	}
}
