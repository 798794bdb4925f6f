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

package resend

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gwtelemetry/pmstats"
)

func unit(i int) pmstats.Identifier {
	return pmstats.Identifier{byte(i >> 16), byte(i >> 8), byte(i)}
}

func TestQueue_FIFO(t *testing.T) {
	t.Parallel()

	q := New(4)
	ctx := context.Background()

	for k := 1; k <= 3; k++ {
		require.True(t, q.RequestResend(ctx, unit(k)))
	}
	require.Equal(t, 3, q.Len())

	for k := 1; k <= 3; k++ {
		id, ok := q.Next()
		require.True(t, ok)
		require.Equal(t, unit(k), id)
	}
	_, ok := q.Next()
	require.False(t, ok)
}

func TestQueue_Dedupe(t *testing.T) {
	t.Parallel()

	q := New(2)
	ctx := context.Background()

	require.True(t, q.RequestResend(ctx, unit(1)))
	require.True(t, q.RequestResend(ctx, unit(1)))
	require.Equal(t, 1, q.Len())
	require.Equal(t, uint32(2), q.Attempts(unit(1)))

	id, ok := q.Next()
	require.True(t, ok)
	require.Equal(t, unit(1), id)

	// popped but not acknowledged, so it can be queued again and keeps counting.
	require.True(t, q.RequestResend(ctx, unit(1)))
	require.Equal(t, uint32(3), q.Attempts(unit(1)))
	require.Equal(t, 1, q.Len())
}

func TestQueue_Full(t *testing.T) {
	t.Parallel()

	q := New(2)
	ctx := context.Background()

	require.True(t, q.RequestResend(ctx, unit(1)))
	require.True(t, q.RequestResend(ctx, unit(2)))
	require.False(t, q.RequestResend(ctx, unit(3)))
	require.Equal(t, uint32(0), q.Attempts(unit(3)))

	// already queued units are still accepted.
	require.True(t, q.RequestResend(ctx, unit(2)))
}

func TestQueue_Cancelled(t *testing.T) {
	t.Parallel()

	q := New(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.False(t, q.RequestResend(ctx, unit(1)))
	require.Equal(t, 0, q.Len())
}

func TestQueue_Ack(t *testing.T) {
	t.Parallel()

	q := New(4)
	ctx := context.Background()

	require.True(t, q.RequestResend(ctx, unit(1)))
	require.True(t, q.RequestResend(ctx, unit(1)))
	q.Ack(unit(1))
	require.Equal(t, uint32(0), q.Attempts(unit(1)))
	require.Equal(t, 1, q.Len())

	_, ok := q.Next()
	require.True(t, ok)
	require.True(t, q.RequestResend(ctx, unit(1)))
	_, ok = q.Next()
	require.True(t, ok)
	q.Ack(unit(1))
	require.Equal(t, uint32(0), q.Attempts(unit(1)))

	q.Ack(unit(42))
}

func TestQueue_Ready(t *testing.T) {
	t.Parallel()

	q := New(4)
	select {
	case <-q.Ready():
		t.Fatal("ready before anything was queued")
	default:
	}

	require.True(t, q.RequestResend(context.Background(), unit(1)))
	require.True(t, q.RequestResend(context.Background(), unit(2)))
	<-q.Ready()

	select {
	case <-q.Ready():
		t.Fatal("ready signal should coalesce")
	default:
	}
}

func TestQueue_WithMonitor(t *testing.T) {
	t.Parallel()

	q := New(8)
	m := pmstats.Must(&pmstats.Options{Resender: q})

	for k := 1; k <= 3; k++ {
		require.True(t, m.Register(unit(k), 0))
	}
	now := uint32((pmstats.DefaultReportInterval + pmstats.DefaultOverdueGrace).Seconds()) + 1
	require.Equal(t, 3, m.Sweep(context.Background(), now))
	require.Equal(t, 3, q.Len())
	require.Equal(t, 3, m.Sweep(context.Background(), now))
	require.Equal(t, 3, q.Len())
	require.Equal(t, uint32(2), q.Attempts(unit(2)))
}

func TestQueue_Concurrent(t *testing.T) {
	t.Parallel()

	q := New(1000)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(4)
	for w := 0; w < 4; w++ {
		go func() {
			defer wg.Done()
			for k := 0; k < 100; k++ {
				q.RequestResend(ctx, unit(k))
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 100, q.Len())
	for k := 0; k < 100; k++ {
		require.Equal(t, uint32(4), q.Attempts(unit(k)))
	}
}
