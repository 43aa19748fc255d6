// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/wecom-callback/internal/config"
	"github.com/MKhiriev/wecom-callback/internal/logger"
)

func newTestPool(size, queue int, timeout time.Duration) *Pool {
	return NewPool(config.Workers{PoolSize: size, QueueSize: queue, HandlerTimeout: timeout}, logger.Nop())
}

func TestPool_RunsSubmittedJobs(t *testing.T) {
	p := newTestPool(4, 16, time.Second)
	p.Run()

	var count atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		err := p.Submit(context.Background(), "count", func(context.Context) error {
			defer wg.Done()
			count.Add(1)
			return nil
		})
		require.NoError(t, err)
	}

	wg.Wait()
	assert.Equal(t, int32(10), count.Load())
	assert.NoError(t, p.Stop(context.Background()))
}

func TestPool_SubmitNeverBlocksWhenFull(t *testing.T) {
	p := newTestPool(1, 1, time.Second)
	p.Run()

	release := make(chan struct{})
	started := make(chan struct{})

	// occupy the only worker
	require.NoError(t, p.Submit(context.Background(), "busy", func(context.Context) error {
		close(started)
		<-release
		return nil
	}))
	<-started

	// fill the only queue slot
	require.NoError(t, p.Submit(context.Background(), "queued", func(context.Context) error { return nil }))

	done := make(chan error, 1)
	go func() {
		done <- p.Submit(context.Background(), "overflow", func(context.Context) error { return nil })
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrQueueFull)
	case <-time.After(time.Second):
		t.Fatal("Submit blocked on a full queue")
	}

	close(release)
	assert.NoError(t, p.Stop(context.Background()))
}

func TestPool_JobContextIsDetached(t *testing.T) {
	p := newTestPool(1, 1, time.Second)
	p.Run()

	type key struct{}
	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), key{}, "trace"))
	cancel()

	result := make(chan error, 1)
	value := make(chan any, 1)
	require.NoError(t, p.Submit(ctx, "detached", func(jobCtx context.Context) error {
		value <- jobCtx.Value(key{})
		result <- jobCtx.Err()
		return nil
	}))

	assert.Equal(t, "trace", <-value)
	assert.NoError(t, <-result, "cancelling the request must not cancel the job")
	assert.NoError(t, p.Stop(context.Background()))
}

func TestPool_JobTimeout(t *testing.T) {
	p := newTestPool(1, 1, 20*time.Millisecond)
	p.Run()

	result := make(chan error, 1)
	require.NoError(t, p.Submit(context.Background(), "slow", func(ctx context.Context) error {
		<-ctx.Done()
		result <- ctx.Err()
		return ctx.Err()
	}))

	select {
	case err := <-result:
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	case <-time.After(2 * time.Second):
		t.Fatal("job timeout was not applied")
	}
	assert.NoError(t, p.Stop(context.Background()))
}

func TestPool_RecoversPanics(t *testing.T) {
	p := newTestPool(1, 4, time.Second)
	p.Run()

	require.NoError(t, p.Submit(context.Background(), "panics", func(context.Context) error {
		panic("boom")
	}))

	ran := make(chan struct{})
	require.NoError(t, p.Submit(context.Background(), "after", func(context.Context) error {
		close(ran)
		return nil
	}))

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("worker died after a panic")
	}
	assert.NoError(t, p.Stop(context.Background()))
}

func TestPool_StopDrainsQueue(t *testing.T) {
	p := newTestPool(1, 8, time.Second)

	var count atomic.Int32
	for i := 0; i < 5; i++ {
		require.NoError(t, p.Submit(context.Background(), "drain", func(context.Context) error {
			count.Add(1)
			return nil
		}))
	}

	p.Run()
	require.NoError(t, p.Stop(context.Background()))
	assert.Equal(t, int32(5), count.Load())
}

func TestPool_SubmitAfterStop(t *testing.T) {
	p := newTestPool(1, 1, time.Second)
	p.Run()
	require.NoError(t, p.Stop(context.Background()))

	err := p.Submit(context.Background(), "late", func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrPoolClosed)

	// stopping twice is a no-op
	assert.NoError(t, p.Stop(context.Background()))
}

func TestPool_StopHonoursContext(t *testing.T) {
	p := newTestPool(1, 1, time.Minute)
	p.Run()

	release := make(chan struct{})
	defer close(release)
	started := make(chan struct{})
	require.NoError(t, p.Submit(context.Background(), "stuck", func(context.Context) error {
		close(started)
		<-release
		return nil
	}))
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := p.Stop(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPool_StopWithoutRun(t *testing.T) {
	p := newTestPool(2, 2, time.Second)
	assert.NoError(t, p.Stop(context.Background()))

	// Run after Stop must not start goroutines on a closed queue
	p.Run()
	assert.False(t, p.started)
}
