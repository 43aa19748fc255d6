// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the callback
// server. It is populated by merging values from environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the platform credentials and application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the delivery journal connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the inbound HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the outbound platform REST API settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the deferred execution pool settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Tracing holds the OpenTelemetry exporter settings.
	Tracing Tracing `envPrefix:"TRACING_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the values configured in the platform admin console for the
// callback application. Token and EncodingAESKey are secrets.
type App struct {
	// Token is the callback token used to sign every callback.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// EncodingAESKey is the 43-character key the AES key is derived from.
	// Env: APP_ENCODING_AES_KEY
	EncodingAESKey string `env:"ENCODING_AES_KEY"`

	// CorpID is the tenant id bound into every encrypted message.
	// Env: APP_CORP_ID
	CorpID string `env:"CORP_ID"`

	// ContactSecret is the customer-contact application secret used to
	// obtain access tokens for outbound API calls.
	// Env: APP_CONTACT_SECRET
	ContactSecret string `env:"CONTACT_SECRET"`

	// H5BaseURL is the landing page sent to newly added customers.
	// Env: APP_H5_BASE_URL
	H5BaseURL string `env:"H5_BASE_URL"`

	// LogLevel is one of debug, info, warn, error.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading and writing a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxBodySize is the largest transport document accepted, in bytes.
	// Env: SERVER_MAX_BODY_SIZE
	MaxBodySize int64 `env:"MAX_BODY_SIZE"`
}

// Storage groups the configuration for the persistence backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the delivery journal.
type DB struct {
	// DSN selects the journal backend: a postgres:// or postgresql:// URL
	// opens PostgreSQL, any other value is a SQLite file path or URI, and an
	// empty DSN disables the journal.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds configuration of the outbound platform API client.
type Adapter struct {
	// BaseURL is the platform API root.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single outbound call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration of the deferred execution pool that runs
// event handlers and journal writes off the acknowledgement path.
type Workers struct {
	// PoolSize is the number of worker goroutines.
	// Env: WORKERS_POOL_SIZE
	PoolSize int `env:"POOL_SIZE"`

	// QueueSize is the number of jobs that may wait for a free worker.
	// Env: WORKERS_QUEUE_SIZE
	QueueSize int `env:"QUEUE_SIZE"`

	// HandlerTimeout bounds a single job.
	// Env: WORKERS_HANDLER_TIMEOUT
	HandlerTimeout time.Duration `env:"HANDLER_TIMEOUT"`
}

// Tracing holds the OpenTelemetry OTLP/gRPC exporter settings.
type Tracing struct {
	// Env: TRACING_ENABLED
	Enabled bool `env:"ENABLED"`

	// Endpoint is the collector address in "host:port" format.
	// Env: TRACING_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// Env: TRACING_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME"`

	// SamplingRate is the ratio of traces kept, in (0, 1]. Zero means unset.
	// Env: TRACING_SAMPLING_RATE
	SamplingRate float64 `env:"SAMPLING_RATE"`

	// Insecure disables TLS on the exporter connection.
	// Env: TRACING_INSECURE
	Insecure bool `env:"INSECURE"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (later sources
// override earlier non-zero fields):
//  1. Environment variables (a .env file in the working directory is loaded
//     first without overriding variables already set)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to unset optional fields before validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(DefaultDotEnvFile).
		withEnv().
		withFlags().
		withJSON().
		build()
}
