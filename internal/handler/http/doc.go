// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the callback HTTP transport.
//
// It wires the chi routes of the callback URL, the health and version
// probes, and the middlewares that attach a trace id and a request logger
// and record an access log line. Every callback reply is a text/plain body
// with status 200; the body alone tells the platform whether the call was
// accepted.
package http
