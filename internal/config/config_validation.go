// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults for optional settings.
const (
	DefaultHTTPAddress       = ":8080"
	DefaultRequestTimeout    = 15 * time.Second
	DefaultMaxBodySize int64 = 1 << 20
	DefaultAdapterBaseURL    = "https://qyapi.weixin.qq.com"
	DefaultAdapterTimeout    = 5 * time.Second
	DefaultPoolSize          = 4
	DefaultQueueSize         = 256
	DefaultHandlerTimeout    = 10 * time.Second
	DefaultServiceName       = "wecom-callback"
	DefaultSamplingRate      = 1.0

	encodingAESKeyLength = 43
)

// applyDefaults fills unset optional fields. Required fields are left alone
// so that validate can report them.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.MaxBodySize == 0 {
		cfg.Server.MaxBodySize = DefaultMaxBodySize
	}
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = DefaultAdapterBaseURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultAdapterTimeout
	}
	if cfg.Workers.PoolSize == 0 {
		cfg.Workers.PoolSize = DefaultPoolSize
	}
	if cfg.Workers.QueueSize == 0 {
		cfg.Workers.QueueSize = DefaultQueueSize
	}
	if cfg.Workers.HandlerTimeout == 0 {
		cfg.Workers.HandlerTimeout = DefaultHandlerTimeout
	}
	if cfg.Tracing.ServiceName == "" {
		cfg.Tracing.ServiceName = DefaultServiceName
	}
	if cfg.Tracing.SamplingRate == 0 {
		cfg.Tracing.SamplingRate = DefaultSamplingRate
	}
}

// validate checks that the final merged [StructuredConfig] can be used to
// start the server.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.App.Validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 || cfg.Server.MaxBodySize < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.PoolSize < 1 || cfg.Workers.QueueSize < 1 || cfg.Workers.HandlerTimeout < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Tracing.SamplingRate < 0 || cfg.Tracing.SamplingRate > 1 {
		return fmt.Errorf("%w: sampling rate %v outside [0, 1]", ErrInvalidTracingConfigs, cfg.Tracing.SamplingRate)
	}
	if cfg.Tracing.Enabled && cfg.Tracing.Endpoint == "" {
		return fmt.Errorf("%w: endpoint is required when tracing is enabled", ErrInvalidTracingConfigs)
	}

	return nil
}

// Validate reports whether the credentials needed to verify and decrypt
// callbacks are present. The key is checked for length only; decoding
// errors surface when the codec is constructed.
func (a App) Validate() error {
	switch {
	case a.Token == "":
		return fmt.Errorf("%w: token is required", ErrInvalidAppConfigs)
	case len(a.EncodingAESKey) != encodingAESKeyLength:
		return fmt.Errorf("%w: EncodingAESKey must be %d characters", ErrInvalidAppConfigs, encodingAESKeyLength)
	case a.CorpID == "":
		return fmt.Errorf("%w: corp id is required", ErrInvalidAppConfigs)
	}
	return nil
}
