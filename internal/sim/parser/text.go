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

package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/gwtelemetry/pmstats"
	"github.com/gwtelemetry/pmstats/internal/sim/event"
)

type Text struct {
	scanner *bufio.Scanner
}

func NewText(reader io.Reader) *Text {
	return &Text{
		scanner: bufio.NewScanner(reader),
	}
}

// Parse reads the next report. Empty lines and lines starting with '#' are skipped.
func (t *Text) Parse(send func(report event.Report) bool) (bool, error) {
	for {
		if !t.scanner.Scan() {
			if err := t.scanner.Err(); err != nil {
				return false, WrapError(err)
			}

			return true, nil
		}

		line := strings.TrimSpace(t.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return false, WrapError(ErrInvalidFormat)
		}

		ts, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return false, WrapError(err)
		}
		id, err := pmstats.ParseIdentifier(fields[1])
		if err != nil {
			return false, WrapError(err)
		}

		return send(event.NewReport(uint32(ts), id)), nil
	}
}
