// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/wecom-callback/internal/mock"
)

func newRequest(method, target, body string) *http.Request {
	return httptest.NewRequest(method, target, strings.NewReader(body))
}

func record(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t, mock.NewMockCallbackService(gomock.NewController(t)))

	rr := serve(t, h, http.MethodGet, healthPath, nil)
	assertPlainText(t, rr, "OK")

	_, err := uuid.Parse(rr.Header().Get(traceIDHeader))
	require.NoError(t, err, "generated trace id must be a uuid")
}

func TestVersion(t *testing.T) {
	h := newTestHandler(t, mock.NewMockCallbackService(gomock.NewController(t)))
	assertPlainText(t, serve(t, h, http.MethodGet, versionPath, nil), "1.2.3")
}

func TestRoutes_NotFound(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "PUT callback", method: http.MethodPut, path: callbackPath},
		{name: "DELETE callback", method: http.MethodDelete, path: callbackPath},
		{name: "POST health", method: http.MethodPost, path: healthPath},
		{name: "unknown path", method: http.MethodGet, path: "/api/wechat/unknown"},
		{name: "root", method: http.MethodGet, path: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, mock.NewMockCallbackService(gomock.NewController(t)))
			rr := serve(t, h, tt.method, tt.path, nil)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}
