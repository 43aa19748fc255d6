// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		Token          string `json:"token"`
		EncodingAESKey string `json:"encoding_aes_key"`
		CorpID         string `json:"corp_id"`
		ContactSecret  string `json:"contact_secret"`
		H5BaseURL      string `json:"h5_base_url"`
		LogLevel       string `json:"log_level"`
	} `json:"app,omitempty"`
	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`
	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxBodySize    int64    `json:"max_body_size"`
	} `json:"server,omitempty"`
	Adapter struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
	Workers struct {
		PoolSize       int      `json:"pool_size"`
		QueueSize      int      `json:"queue_size"`
		HandlerTimeout Duration `json:"handler_timeout"`
	} `json:"workers,omitempty"`
	Tracing struct {
		Enabled      bool    `json:"enabled"`
		Endpoint     string  `json:"endpoint"`
		ServiceName  string  `json:"service_name"`
		SamplingRate float64 `json:"sampling_rate"`
		Insecure     bool    `json:"insecure"`
	} `json:"tracing,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Token:          jsonCfg.App.Token,
			EncodingAESKey: jsonCfg.App.EncodingAESKey,
			CorpID:         jsonCfg.App.CorpID,
			ContactSecret:  jsonCfg.App.ContactSecret,
			H5BaseURL:      jsonCfg.App.H5BaseURL,
			LogLevel:       jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MaxBodySize:    jsonCfg.Server.MaxBodySize,
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			PoolSize:       jsonCfg.Workers.PoolSize,
			QueueSize:      jsonCfg.Workers.QueueSize,
			HandlerTimeout: time.Duration(jsonCfg.Workers.HandlerTimeout),
		},
		Tracing: Tracing{
			Enabled:      jsonCfg.Tracing.Enabled,
			Endpoint:     jsonCfg.Tracing.Endpoint,
			ServiceName:  jsonCfg.Tracing.ServiceName,
			SamplingRate: jsonCfg.Tracing.SamplingRate,
			Insecure:     jsonCfg.Tracing.Insecure,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
