// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the callback HTTP server.
//
// It owns startup, signal handling and graceful shutdown: on SIGTERM,
// SIGINT or SIGQUIT the HTTP server stops accepting requests, in-flight
// requests finish, and then the background workers drain their queues.
package server
