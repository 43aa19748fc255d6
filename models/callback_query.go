// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CallbackQuery holds the query parameters the platform attaches to every
// callback request. EchoStr is only present on the URL-verification handshake.
type CallbackQuery struct {
	// MsgSignature is the SHA-1 signature over token, timestamp, nonce and
	// either the echo string or the Encrypt field of the transport document.
	MsgSignature string

	// Timestamp is the unix time (seconds, decimal string) chosen by the platform.
	Timestamp string

	// Nonce is the random string chosen by the platform.
	Nonce string

	// EchoStr is the encrypted echo token sent during the handshake.
	EchoStr string
}

// IsHandshakeComplete reports whether all four handshake parameters are set.
func (q CallbackQuery) IsHandshakeComplete() bool {
	return q.MsgSignature != "" && q.Timestamp != "" && q.Nonce != "" && q.EchoStr != ""
}

// IsDeliveryComplete reports whether all three delivery parameters are set.
func (q CallbackQuery) IsDeliveryComplete() bool {
	return q.MsgSignature != "" && q.Timestamp != "" && q.Nonce != ""
}
