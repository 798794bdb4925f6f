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

package report

import (
	"io"

	"github.com/gwtelemetry/pmstats/internal/sim/report/simulation"
	"github.com/gwtelemetry/pmstats/internal/sim/report/table"
)

type reporter interface {
	Report() error
}

type Reporter struct {
	reporters []reporter
}

func NewReporter(w io.Writer, results []simulation.Result) *Reporter {
	return &Reporter{
		reporters: []reporter{
			table.NewTable(w, results),
		},
	}
}

func (r *Reporter) Report() error {
	if r == nil {
		return nil
	}

	for _, rep := range r.reporters {
		if err := rep.Report(); err != nil {
			return err
		}
	}
	return nil
}
