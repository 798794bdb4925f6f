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

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/gwtelemetry/pmstats/internal/sim/report/simulation"
)

var header = []string{
	"Capacity",
	"Units",
	"Registered",
	"Updated",
	"Debounced",
	"Rejected",
	"Sweeps",
	"Overdue",
	"Resends",
	"Rejected %",
}

type Table struct {
	w       io.Writer
	results []simulation.Result
}

func NewTable(w io.Writer, results []simulation.Result) *Table {
	return &Table{
		w:       w,
		results: results,
	}
}

func (t *Table) Report() error {
	if t == nil {
		return nil
	}

	w := tablewriter.NewWriter(t.w).Options(tablewriter.WithRendition(tw.Rendition{
		Borders: tw.Border{
			Left:   tw.On,
			Top:    tw.Off,
			Right:  tw.On,
			Bottom: tw.Off,
		},
	}), tablewriter.WithHeader(header))
	for _, r := range t.results {
		s := r.Stats()
		row := []any{
			strconv.Itoa(r.Capacity()),
			strconv.Itoa(r.Units()),
			strconv.FormatUint(s.Registrations, 10),
			strconv.FormatUint(s.Updates, 10),
			strconv.FormatUint(s.Debounced, 10),
			strconv.FormatUint(s.Rejections, 10),
			strconv.FormatUint(s.Sweeps, 10),
			strconv.FormatUint(s.Overdue, 10),
			strconv.Itoa(r.Resends()),
			fmt.Sprintf("%0.2f", 100*s.RejectionRatio()),
		}
		if err := w.Append(row...); err != nil {
			return err
		}
	}
	return w.Render()
}
