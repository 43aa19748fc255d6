// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
	"io"
	"sort"
)

// signatureVerifier is the private implementation of [SignatureVerifier].
type signatureVerifier struct {
	token string
}

// NewSignatureVerifier returns a [SignatureVerifier] bound to the callback
// token configured on the platform.
func NewSignatureVerifier(token string) SignatureVerifier {
	return &signatureVerifier{token: token}
}

// Sign implements [SignatureVerifier].
func (s *signatureVerifier) Sign(timestamp, nonce, content string) string {
	return ComputeSignature(s.token, timestamp, nonce, content)
}

// Verify implements [SignatureVerifier].
func (s *signatureVerifier) Verify(timestamp, nonce, content, signature string) bool {
	return VerifySignature(s.token, timestamp, nonce, content, signature)
}

// ComputeSignature sorts the four strings byte-wise, concatenates them and
// returns the lowercase hex SHA-1 digest of the result.
func ComputeSignature(token, timestamp, nonce, content string) string {
	params := []string{token, timestamp, nonce, content}
	sort.Strings(params)

	h := sha1.New()
	for _, p := range params {
		io.WriteString(h, p)
	}

	return hex.EncodeToString(h.Sum(nil))
}

// VerifySignature recomputes the signature and compares it with signature
// using crypto/subtle so the comparison time does not depend on where the
// first mismatching byte is.
func VerifySignature(token, timestamp, nonce, content, signature string) bool {
	expected := ComputeSignature(token, timestamp, nonce, content)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}
