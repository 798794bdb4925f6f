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

const djb2Seed uint32 = 5381

// Hash maps an identifier to its home slot in a table of the given capacity.
//
// DJB2 spreads adjacent MAC suffixes well, which is the common case for
// units shipped in the same batch.
func Hash(id Identifier, capacity int) int {
	return int(djb2(id) % uint32(capacity))
}

func djb2(id Identifier) uint32 {
	h := djb2Seed
	for _, b := range id {
		// h * 33 + b
		h = h<<5 + h + uint32(b)
	}
	return h
}
