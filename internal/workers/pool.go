// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/MKhiriev/wecom-callback/internal/config"
	"github.com/MKhiriev/wecom-callback/internal/logger"
)

// Job is a unit of deferred work. The context is detached from the
// submitting request and carries the job timeout.
type Job func(ctx context.Context) error

type task struct {
	name string
	ctx  context.Context
	job  Job
}

// Pool runs jobs on a fixed number of goroutines fed by a bounded queue.
// Submit never blocks.
type Pool struct {
	size    int
	timeout time.Duration
	queue   chan task
	logger  *logger.Logger

	mu      sync.RWMutex
	closed  bool
	started bool
	wg      sync.WaitGroup
}

// NewPool creates a pool from cfg. Call Run to start the goroutines; jobs
// submitted before Run wait in the queue.
func NewPool(cfg config.Workers, log *logger.Logger) *Pool {
	size := cfg.PoolSize
	if size < 1 {
		size = 1
	}
	queueSize := cfg.QueueSize
	if queueSize < 0 {
		queueSize = 0
	}

	return &Pool{
		size:    size,
		timeout: cfg.HandlerTimeout,
		queue:   make(chan task, queueSize),
		logger:  log,
	}
}

// Run implements [Worker]. Calling it more than once has no effect.
func (p *Pool) Run() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started || p.closed {
		return
	}
	p.started = true

	p.wg.Add(p.size)
	for i := 0; i < p.size; i++ {
		go p.loop(i)
	}

	p.logger.Info().Int("size", p.size).Int("queue", cap(p.queue)).Msg("worker pool started")
}

// Submit implements [Submitter]. The job runs with a context that keeps the
// values of ctx but not its cancellation.
func (p *Pool) Submit(ctx context.Context, name string, job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPoolClosed
	}

	t := task{name: name, ctx: context.WithoutCancel(ctx), job: job}
	select {
	case p.queue <- t:
		return nil
	default:
		return fmt.Errorf("%w: job %s rejected", ErrQueueFull, name)
	}
}

// Stop implements [Worker]. Queued jobs are drained before the goroutines
// exit. If the pool was never started the queued jobs are discarded.
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.queue)
	started := p.started
	p.mu.Unlock()

	if !started {
		return nil
	}

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Info().Msg("worker pool stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("worker pool stop: %w", ctx.Err())
	}
}

func (p *Pool) loop(id int) {
	defer p.wg.Done()
	for t := range p.queue {
		p.execute(id, t)
	}
}

func (p *Pool) execute(id int, t task) {
	ctx := t.ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	log := logger.FromContextOr(ctx, p.logger)

	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Int("worker", id).
				Str("job", t.name).
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("job panicked")
		}
	}()

	start := time.Now()
	if err := t.job(ctx); err != nil {
		log.Error().Err(err).Int("worker", id).Str("job", t.name).Dur("took", time.Since(start)).Msg("job failed")
		return
	}

	log.Debug().Int("worker", id).Str("job", t.name).Dur("took", time.Since(start)).Msg("job done")
}
