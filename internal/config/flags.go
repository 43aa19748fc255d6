// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags registers the configuration flags on flag.CommandLine and
// parses os.Args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d journal database DSN
//	-c/-config json file path with configs
//	-token callback token
//	-encoding-aes-key 43-character EncodingAESKey
//	-corp-id corp id
//	-contact-secret customer contact secret
//	-h5-base-url landing page for new customers
//	-log-level debug, info, warn or error
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-max-body-size largest accepted request body in bytes
//	-adapter-base-url platform API root
//	-adapter-timeout outbound request timeout
//	-pool-size worker goroutines
//	-queue-size queued jobs
//	-handler-timeout per-job timeout
//	-tracing enable OpenTelemetry export
//	-tracing-endpoint OTLP/gRPC collector host:port
//	-tracing-service-name service.name resource attribute
//	-sampling-rate trace sampling ratio
func ParseFlags() (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var token, encodingAESKey, corpID, contactSecret, h5BaseURL, logLevel string
	var requestTimeout time.Duration
	var maxBodySize int64
	var adapterBaseURL string
	var adapterTimeout time.Duration
	var poolSize, queueSize int
	var handlerTimeout time.Duration
	var tracingEnabled bool
	var tracingEndpoint, tracingServiceName string
	var samplingRate float64

	fs := flag.CommandLine

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Journal database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&token, "token", "", "Callback token")
	fs.StringVar(&encodingAESKey, "encoding-aes-key", "", "43-character EncodingAESKey")
	fs.StringVar(&corpID, "corp-id", "", "Corp id")
	fs.StringVar(&contactSecret, "contact-secret", "", "Customer contact secret")
	fs.StringVar(&h5BaseURL, "h5-base-url", "", "Landing page sent to new customers")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int64Var(&maxBodySize, "max-body-size", 0, "Largest accepted request body in bytes")
	fs.StringVar(&adapterBaseURL, "adapter-base-url", "", "Platform API base URL")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Outbound request timeout")
	fs.IntVar(&poolSize, "pool-size", 0, "Worker goroutines")
	fs.IntVar(&queueSize, "queue-size", 0, "Queued jobs")
	fs.DurationVar(&handlerTimeout, "handler-timeout", 0, "Per-job timeout")
	fs.BoolVar(&tracingEnabled, "tracing", false, "Enable OpenTelemetry export")
	fs.StringVar(&tracingEndpoint, "tracing-endpoint", "", "OTLP/gRPC collector host:port")
	fs.StringVar(&tracingServiceName, "tracing-service-name", "", "Tracing service name")
	fs.Float64Var(&samplingRate, "sampling-rate", 0, "Trace sampling ratio (0, 1]")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Token:          token,
			EncodingAESKey: encodingAESKey,
			CorpID:         corpID,
			ContactSecret:  contactSecret,
			H5BaseURL:      h5BaseURL,
			LogLevel:       logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			MaxBodySize:    maxBodySize,
		},
		Adapter: Adapter{
			BaseURL:        adapterBaseURL,
			RequestTimeout: adapterTimeout,
		},
		Workers: Workers{
			PoolSize:       poolSize,
			QueueSize:      queueSize,
			HandlerTimeout: handlerTimeout,
		},
		Tracing: Tracing{
			Enabled:      tracingEnabled,
			Endpoint:     tracingEndpoint,
			ServiceName:  tracingServiceName,
			SamplingRate: samplingRate,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. Any other host must be "localhost" or
// an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
