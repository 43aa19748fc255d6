// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWritePlainText_Success(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WritePlainText(w, "success", http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n != len("success") {
		t.Errorf("expected %d bytes written, got %d", len("success"), n)
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/plain; charset=UTF-8" {
		t.Errorf("expected plain text content type, got '%s'", ct)
	}
	if w.Body.String() != "success" {
		t.Errorf("expected body 'success', got '%s'", w.Body.String())
	}
}

func TestWritePlainText_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	if _, err := WritePlainText(w, "not found", http.StatusNotFound); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestWritePlainText_EmptyBody(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WritePlainText(w, "", http.StatusOK)

	if err != nil || n != 0 {
		t.Fatalf("expected (0, nil), got (%d, %v)", n, err)
	}
	if w.Body.Len() != 0 {
		t.Errorf("expected empty body, got '%s'", w.Body.String())
	}
}
