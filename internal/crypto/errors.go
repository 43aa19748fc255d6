// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Construction errors. They are returned before any encrypt or decrypt call
// can be made.
var (
	// ErrInvalidEncodingAESKey is returned when the configured key is not a
	// 43-character base64 string.
	ErrInvalidEncodingAESKey = errors.New("invalid EncodingAESKey")

	// ErrInvalidKeyLength is returned when the decoded key is not 32 bytes.
	ErrInvalidKeyLength = errors.New("AES key must be exactly 32 bytes")

	// ErrInvalidRandomPrefix is returned by Encrypt when the random prefix is
	// not exactly 16 bytes.
	ErrInvalidRandomPrefix = errors.New("random prefix must be exactly 16 bytes")

	// ErrPayloadTooLarge is returned by Encrypt when the payload length does
	// not fit the 4-byte length field.
	ErrPayloadTooLarge = errors.New("payload too large")
)

// ErrDecryptionFailed is wrapped by every error returned from Decrypt.
// One of the reason sentinels below is always wrapped alongside it.
var ErrDecryptionFailed = errors.New("decryption failed")

// Decryption failure reasons.
var (
	ErrMalformedBase64    = errors.New("malformed base64")
	ErrCipherFault        = errors.New("cipher fault")
	ErrMalformedPlaintext = errors.New("malformed plaintext layout")
	ErrTenantMismatch     = errors.New("corp id mismatch")
)
