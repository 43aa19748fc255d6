// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/wecom-callback/models"
)

// Platform errcodes reporting an invalid or expired credential.
const (
	errCodeInvalidCredential  = 40001
	errCodeInvalidAccessToken = 40014
	errCodeAccessTokenExpired = 42001
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return fmt.Errorf("%w: %w: http %d: %s", ErrUnexpectedStatus, ErrUnauthorized, resp.StatusCode(), body)
	}
	return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), body)
}

func mapPlatformError(r models.PlatformResponse) error {
	switch r.ErrCode {
	case 0:
		return nil
	case errCodeInvalidCredential, errCodeInvalidAccessToken, errCodeAccessTokenExpired:
		return fmt.Errorf("%w: %w: errcode %d: %s", ErrPlatformRejected, ErrUnauthorized, r.ErrCode, r.ErrMsg)
	default:
		return fmt.Errorf("%w: errcode %d: %s", ErrPlatformRejected, r.ErrCode, r.ErrMsg)
	}
}
