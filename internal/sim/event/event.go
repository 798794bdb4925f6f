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

package event

import (
	"github.com/gwtelemetry/pmstats"
)

// Report is a PM report received from a unit at a unix timestamp in seconds.
type Report struct {
	ts uint32
	id pmstats.Identifier
}

func NewReport(ts uint32, id pmstats.Identifier) Report {
	return Report{
		ts: ts,
		id: id,
	}
}

func (r Report) Timestamp() uint32 {
	return r.ts
}

func (r Report) ID() pmstats.Identifier {
	return r.id
}
