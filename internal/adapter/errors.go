// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrUnauthorized     = errors.New("platform credentials rejected")
	ErrPlatformRejected = errors.New("platform rejected request")
	ErrUnexpectedStatus = errors.New("unexpected http status")

	ErrEmptyAccessToken = errors.New("empty access token")
)
