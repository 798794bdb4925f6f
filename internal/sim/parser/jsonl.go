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
	"bytes"
	"fmt"
	"io"

	"github.com/sugawarayuuta/sonnet"

	"github.com/gwtelemetry/pmstats"
	"github.com/gwtelemetry/pmstats/internal/sim/event"
)

type jsonReport struct {
	TS   *uint32 `json:"ts"`
	Unit string  `json:"unit"`
}

type JSONL struct {
	scanner *bufio.Scanner
}

func NewJSONL(reader io.Reader) *JSONL {
	return &JSONL{
		scanner: bufio.NewScanner(reader),
	}
}

func (j *JSONL) Parse(send func(report event.Report) bool) (bool, error) {
	for {
		if !j.scanner.Scan() {
			if err := j.scanner.Err(); err != nil {
				return false, WrapError(err)
			}

			return true, nil
		}

		line := bytes.TrimSpace(j.scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var r jsonReport
		if err := sonnet.Unmarshal(line, &r); err != nil {
			return false, WrapError(fmt.Errorf("%w: %w", ErrInvalidFormat, err))
		}
		if r.TS == nil || r.Unit == "" {
			return false, WrapError(ErrInvalidFormat)
		}

		id, err := pmstats.ParseIdentifier(r.Unit)
		if err != nil {
			return false, WrapError(err)
		}

		return send(event.NewReport(*r.TS, id)), nil
	}
}
