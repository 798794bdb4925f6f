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

package pmstats

import "errors"

var (
	// ErrTableFull means that a report from a new unit was dropped because every slot holds another unit.
	ErrTableFull = errors.New("pmstats: table is at capacity")
	// ErrResendFailed means that the Resender did not accept a resend request for an overdue unit.
	ErrResendFailed = errors.New("pmstats: resend request was not sent")
	// ErrInvalidIdentifier means that a unit identifier could not be parsed.
	ErrInvalidIdentifier = errors.New("pmstats: invalid unit identifier")
	// ErrCorruptSnapshot means that a snapshot file failed its checksum or could not be decoded.
	ErrCorruptSnapshot = errors.New("pmstats: corrupt snapshot")
	// ErrNotEmpty means that a snapshot was loaded into a Monitor that already tracks units.
	ErrNotEmpty = errors.New("pmstats: monitor already tracks units")
)
