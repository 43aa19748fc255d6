// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs work off the callback acknowledgement path.
//
// It defines the Worker interface, the Workers aggregate that starts and
// stops several workers together, and Pool, a fixed-size worker pool with a
// bounded queue used for event handlers and journal writes.
package workers

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// Worker is the interface implemented by every background worker.
//
// Run starts the worker and returns immediately; goroutines are spawned
// internally. Stop prevents new work, waits for in-flight work to finish and
// returns ctx.Err() if ctx expires first.
type Worker interface {
	Run()
	Stop(ctx context.Context) error
}

// Submitter accepts jobs for deferred execution without blocking.
type Submitter interface {
	Submit(ctx context.Context, name string, job Job) error
}
