// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// SignatureVerifier signs and verifies callback parameters with the
// configured callback token.
//
// The signature is SHA-1 over the lexicographically sorted concatenation of
// token, timestamp, nonce and content, rendered as 40 lowercase hex chars.
// Content is the echo string during the handshake and the Encrypt field of
// the transport document during delivery.
type SignatureVerifier interface {
	// Sign computes the signature for the given parameters.
	Sign(timestamp, nonce, content string) string

	// Verify recomputes the signature and compares it with signature in
	// constant time.
	Verify(timestamp, nonce, content, signature string) bool
}

// MessageCodec encrypts and decrypts the platform message envelope.
//
// Plaintext layout before padding:
//
//	random(16) ‖ uint32be(len(payload)) ‖ payload ‖ corpID
//
// The plaintext is padded to a multiple of 32 bytes (a full 32-byte block
// when already aligned), encrypted with AES-256-CBC using key[:16] as the IV
// and base64 encoded. Implementations are safe for concurrent use.
type MessageCodec interface {
	// Encrypt builds the envelope around payload using randomPrefix, which
	// must be exactly 16 bytes.
	Encrypt(randomPrefix, payload []byte) (string, error)

	// Decrypt opens ciphertext and returns the payload. Every failure wraps
	// [ErrDecryptionFailed] together with a reason sentinel.
	Decrypt(ciphertext string) ([]byte, error)
}
