// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the messaging platform's REST API on behalf of
// the event handlers.
//
// The primary abstraction is [PlatformAdapter], implemented over resty by
// [NewHTTPPlatformAdapter]. Transport failures are mapped to the sentinel
// values in errors.go so callers can use [errors.Is]: [ErrUnexpectedStatus]
// for non-2xx replies, [ErrPlatformRejected] for a non-zero errcode and
// additionally [ErrUnauthorized] when the errcode reports a bad credential.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/platform_adapter_mock.go -package=mock

// PlatformAdapter is the subset of the platform REST API used by the
// callback handlers.
type PlatformAdapter interface {
	// AccessToken fetches a fresh access token for the configured corp id and
	// contact secret. Tokens are not cached.
	AccessToken(ctx context.Context) (string, error)

	// SendWelcomeMessage sends content to the customer identified by the
	// one-time welcomeCode of an add_external_contact event. The code is
	// valid for 20 seconds and only until the customer writes first.
	SendWelcomeMessage(ctx context.Context, welcomeCode, content string) error
}
