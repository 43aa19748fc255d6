// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON_Success(t *testing.T) {
	p := writeJSON(t, `{
		"app": {
			"token": "t0k",
			"encoding_aes_key": "`+testEncodingAESKey+`",
			"corp_id": "corp",
			"contact_secret": "secret",
			"h5_base_url": "https://h5.example.com",
			"log_level": "error"
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s",
			"max_body_size": 1024
		},
		"storage": { "db": { "dsn": "journal.db" } },
		"adapter": { "base_url": "http://localhost:1", "request_timeout": "1s" },
		"workers": { "pool_size": 3, "queue_size": 9, "handler_timeout": 2000000000 },
		"tracing": { "enabled": true, "endpoint": "otel:4317", "service_name": "svc", "sampling_rate": 0.1 }
	}`)

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "t0k", cfg.App.Token)
	assert.Equal(t, testEncodingAESKey, cfg.App.EncodingAESKey)
	assert.Equal(t, "corp", cfg.App.CorpID)
	assert.Equal(t, "secret", cfg.App.ContactSecret)
	assert.Equal(t, "https://h5.example.com", cfg.App.H5BaseURL)
	assert.Equal(t, "error", cfg.App.LogLevel)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(1024), cfg.Server.MaxBodySize)

	assert.Equal(t, "journal.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "http://localhost:1", cfg.Adapter.BaseURL)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, 3, cfg.Workers.PoolSize)
	assert.Equal(t, 9, cfg.Workers.QueueSize)
	assert.Equal(t, 2*time.Second, cfg.Workers.HandlerTimeout)

	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, "otel:4317", cfg.Tracing.Endpoint)
	assert.Equal(t, "svc", cfg.Tracing.ServiceName)
	assert.InDelta(t, 0.1, cfg.Tracing.SamplingRate, 1e-9)

	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	cfg, err := parseJSON(writeJSON(t, `{"app": {`))
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	cfg, err := parseJSON(writeJSON(t, `{"workers": {"handler_timeout": "whenever"}}`))
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	cfg, err := parseJSON(writeJSON(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
