// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrSignatureMismatch  = errors.New("signature mismatch")
	ErrVerificationFailed = errors.New("verification failed")
	ErrIncompleteQuery    = errors.New("incomplete callback query")

	ErrHandlerFailure = errors.New("event handler failed")
	ErrHandlerPanic   = errors.New("event handler panicked")
)
