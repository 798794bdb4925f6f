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

const (
	// TextFormat is one report per line: "<unix seconds> <aa:bb:cc>".
	TextFormat = "text"
	// JSONLFormat is one JSON object per line: {"ts": <unix seconds>, "unit": "aa:bb:cc"}.
	JSONLFormat = "jsonl"
)

func IsAvailableFormat(format string) bool {
	switch format {
	case TextFormat, JSONLFormat:
		return true
	default:
		return false
	}
}
