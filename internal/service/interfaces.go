// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/wecom-callback/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CallbackService answers the two kinds of platform callback requests.
type CallbackService interface {
	// VerifyURL handles the URL verification handshake. On success it
	// returns the decrypted echo string, which must be written verbatim as
	// the response body. Every failure wraps [ErrVerificationFailed].
	VerifyURL(ctx context.Context, query models.CallbackQuery) (string, error)

	// HandleDelivery handles an event push and returns the acknowledgement
	// body. It always returns [AckSuccess]: authentication, decryption,
	// parsing and handler failures are logged and journaled, never
	// surfaced. Handlers run on the deferred path.
	HandleDelivery(ctx context.Context, query models.CallbackQuery, body []byte) string
}

// EventHandler reacts to one decoded callback event.
type EventHandler interface {
	Handle(ctx context.Context, event *models.CallbackEvent) error
}

// WelcomeSender delivers the welcome text of a newly added customer.
type WelcomeSender interface {
	SendWelcomeMessage(ctx context.Context, welcomeCode, content string) error
}

// EventHandlerFunc adapts an ordinary function to [EventHandler].
type EventHandlerFunc func(ctx context.Context, event *models.CallbackEvent) error

// Handle calls f(ctx, event).
func (f EventHandlerFunc) Handle(ctx context.Context, event *models.CallbackEvent) error {
	return f(ctx, event)
}
