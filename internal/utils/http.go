// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"io"
	"net/http"
)

// PlainTextContentType is the content type of every callback reply.
const PlainTextContentType = "text/plain; charset=UTF-8"

// WritePlainText writes body as a text/plain UTF-8 response with the given
// status code.
//
// Returns the number of body bytes written and any write error.
//
//	WritePlainText(w, "success", http.StatusOK)
func WritePlainText(w http.ResponseWriter, body string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", PlainTextContentType)
	w.WriteHeader(statusCode)

	return io.WriteString(w, body)
}
