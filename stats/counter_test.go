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

package stats

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCounter_Basic(t *testing.T) {
	t.Parallel()

	c := NewCounter()
	c.RecordRegistration()
	c.RecordUpdate()
	c.RecordUpdate()
	c.RecordDebounce()
	c.RecordRejection()
	c.RecordSweep(0)
	c.RecordSweep(3)
	c.RecordSweep(-1)
	c.RecordResendFailure()

	want := Stats{
		Registrations:  1,
		Updates:        2,
		Debounced:      1,
		Rejections:     1,
		Sweeps:         3,
		Overdue:        3,
		ResendFailures: 1,
	}
	if diff := cmp.Diff(want, c.Snapshot()); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestCounter_Concurrent(t *testing.T) {
	t.Parallel()

	c := NewCounter()

	goroutines := 50
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()

			c.RecordRegistration()
			c.RecordUpdate()
			c.RecordDebounce()
			c.RecordRejection()
			c.RecordSweep(2)
			c.RecordResendFailure()
		}()
	}

	wg.Wait()

	want := Stats{
		Registrations:  50,
		Updates:        50,
		Debounced:      50,
		Rejections:     50,
		Sweeps:         50,
		Overdue:        100,
		ResendFailures: 50,
	}
	if diff := cmp.Diff(want, c.Snapshot()); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}
