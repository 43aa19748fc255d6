// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// invalid.
var (
	// ErrInvalidAppConfigs indicates missing or malformed platform
	// credentials (token, EncodingAESKey, corp id).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidServerConfigs indicates invalid listener settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidWorkerConfigs indicates a non-positive pool or queue size.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")

	// ErrInvalidTracingConfigs indicates an out-of-range sampling rate or a
	// missing collector endpoint.
	ErrInvalidTracingConfigs = errors.New("invalid tracing configuration")
)
