// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract of the callback server.
//
// RunServer blocks until a stop signal arrives or the listener fails.
// Shutdown stops the HTTP server and then the background workers.
type Server interface {
	RunServer()
	Shutdown()
}
