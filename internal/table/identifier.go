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
	"encoding/hex"
	"errors"
	"strings"
)

// IdentifierSize is the number of address bytes that identify a unit.
const IdentifierSize = 3

var errMalformedIdentifier = errors.New("want three colon separated hex octets")

// Identifier is the last three bytes of a subordinate unit's MAC address.
type Identifier [IdentifierSize]byte

// String formats the identifier as aa:bb:cc.
func (id Identifier) String() string {
	const digits = "0123456789abcdef"

	buf := make([]byte, 0, 3*IdentifierSize-1)
	for i, b := range id {
		if i > 0 {
			buf = append(buf, ':')
		}
		buf = append(buf, digits[b>>4], digits[b&0x0f])
	}
	return string(buf)
}

// ParseIdentifier parses aa:bb:cc (case-insensitive). The unseparated form aabbcc is accepted too.
func ParseIdentifier(s string) (Identifier, error) {
	var id Identifier

	raw := s
	if strings.Contains(s, ":") {
		parts := strings.Split(s, ":")
		if len(parts) != IdentifierSize {
			return id, errMalformedIdentifier
		}
		for _, p := range parts {
			if len(p) != 2 {
				return id, errMalformedIdentifier
			}
		}
		raw = strings.Join(parts, "")
	}
	if len(raw) != 2*IdentifierSize {
		return id, errMalformedIdentifier
	}

	if _, err := hex.Decode(id[:], []byte(raw)); err != nil {
		return Identifier{}, err
	}
	return id, nil
}
