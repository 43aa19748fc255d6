// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/wecom-callback/internal/config"
	"github.com/MKhiriev/wecom-callback/internal/logger"
	"github.com/MKhiriev/wecom-callback/internal/service"
	"github.com/MKhiriev/wecom-callback/models"
)

const testMaxBodySize = 1024

func newTestHandler(t *testing.T, svc service.CallbackService) *Handler {
	t.Helper()
	return NewHandler(
		&service.Services{CallbackService: svc},
		config.Server{MaxBodySize: testMaxBodySize},
		models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123"),
		logger.Nop(),
	)
}

func serve(t *testing.T, h *Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func assertPlainText(t *testing.T, rr *httptest.ResponseRecorder, want string) {
	t.Helper()
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/plain; charset=UTF-8" {
		t.Errorf("Content-Type = %q", got)
	}
	if got := rr.Body.String(); got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
}
