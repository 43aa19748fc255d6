// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "errors"

var (
	// ErrQueueFull is returned by Submit when every worker is busy and the
	// queue has no free slot. The job is not run.
	ErrQueueFull = errors.New("worker queue is full")

	// ErrPoolClosed is returned by Submit after Stop has been called.
	ErrPoolClosed = errors.New("worker pool is closed")
)
