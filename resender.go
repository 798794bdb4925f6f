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

import "context"

// Resender asks an overdue unit to send its PM report again.
type Resender interface {
	// RequestResend reports whether the request for id was handed off. Monitor.Sweep counts
	// a unit as overdue only when this returns true; a refused request is logged and the unit
	// is offered again on the next sweep.
	RequestResend(ctx context.Context, id Identifier) bool
}

// ResenderFunc adapts a function to the Resender interface.
type ResenderFunc func(ctx context.Context, id Identifier) bool

// RequestResend calls f(ctx, id).
func (f ResenderFunc) RequestResend(ctx context.Context, id Identifier) bool {
	return f(ctx, id)
}

// noopResender accepts every request without sending anything. Gateways without an
// over-the-air resend command still get overdue units counted.
type noopResender struct{}

func (noopResender) RequestResend(ctx context.Context, id Identifier) bool {
	return true
}
