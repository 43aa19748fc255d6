// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"math"
)

const (
	// EncodingAESKeyLength is the length of the key string shown in the
	// platform admin console.
	EncodingAESKeyLength = 43

	// KeyLength is the AES-256 key size in bytes.
	KeyLength = 32

	// PadBlockSize is the block size used by the envelope padding rule. It is
	// twice the AES block size.
	PadBlockSize = 32

	// RandomPrefixLength is the size of the random prefix of every plaintext.
	RandomPrefixLength = 16

	lengthFieldSize = 4
	headerSize      = RandomPrefixLength + lengthFieldSize
)

// messageCodec is the private implementation of [MessageCodec].
type messageCodec struct {
	block  cipher.Block
	iv     []byte
	corpID []byte
}

// NewMessageCodec decodes encodingAESKey (43 characters, "=" appended before
// base64 decoding) and returns a [MessageCodec] bound to corpID.
//
// Returns an error wrapping [ErrInvalidEncodingAESKey] or [ErrInvalidKeyLength]
// if the key cannot be used.
func NewMessageCodec(encodingAESKey, corpID string) (MessageCodec, error) {
	key, err := DecodeEncodingAESKey(encodingAESKey)
	if err != nil {
		return nil, err
	}

	return NewMessageCodecWithKey(key, corpID)
}

// NewMessageCodecWithKey returns a [MessageCodec] for a raw AES key. The key
// must be exactly [KeyLength] bytes; the first 16 bytes double as the IV.
func NewMessageCodecWithKey(key []byte, corpID string) (MessageCodec, error) {
	if len(key) != KeyLength {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeyLength, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	iv := make([]byte, aes.BlockSize)
	copy(iv, key[:aes.BlockSize])

	return &messageCodec{
		block:  block,
		iv:     iv,
		corpID: []byte(corpID),
	}, nil
}

// DecodeEncodingAESKey turns the 43-character console key into the raw
// 32-byte AES key.
func DecodeEncodingAESKey(encodingAESKey string) ([]byte, error) {
	if len(encodingAESKey) != EncodingAESKeyLength {
		return nil, fmt.Errorf("%w: expected %d characters, got %d",
			ErrInvalidEncodingAESKey, EncodingAESKeyLength, len(encodingAESKey))
	}

	key, err := base64.StdEncoding.DecodeString(encodingAESKey + "=")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncodingAESKey, err)
	}

	if len(key) != KeyLength {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeyLength, len(key))
	}

	return key, nil
}

// Encrypt implements [MessageCodec].
func (c *messageCodec) Encrypt(randomPrefix, payload []byte) (string, error) {
	if len(randomPrefix) != RandomPrefixLength {
		return "", fmt.Errorf("%w: got %d bytes", ErrInvalidRandomPrefix, len(randomPrefix))
	}
	if uint64(len(payload)) > math.MaxUint32 {
		return "", ErrPayloadTooLarge
	}

	plaintext := make([]byte, 0, headerSize+len(payload)+len(c.corpID)+PadBlockSize)
	plaintext = append(plaintext, randomPrefix...)
	plaintext = binary.BigEndian.AppendUint32(plaintext, uint32(len(payload)))
	plaintext = append(plaintext, payload...)
	plaintext = append(plaintext, c.corpID...)
	plaintext = pad(plaintext)

	ciphertext := make([]byte, len(plaintext))
	cipher.NewCBCEncrypter(c.block, c.iv).CryptBlocks(ciphertext, plaintext)

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Decrypt implements [MessageCodec].
func (c *messageCodec) Decrypt(ciphertext string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrDecryptionFailed, ErrMalformedBase64, err)
	}

	if len(raw) == 0 || len(raw)%PadBlockSize != 0 {
		return nil, fmt.Errorf("%w: %w: length %d is not a positive multiple of %d",
			ErrDecryptionFailed, ErrCipherFault, len(raw), PadBlockSize)
	}

	plaintext := make([]byte, len(raw))
	cipher.NewCBCDecrypter(c.block, c.iv).CryptBlocks(plaintext, raw)
	plaintext = unpad(plaintext)

	if len(plaintext) < headerSize {
		return nil, fmt.Errorf("%w: %w: %d bytes left after unpadding",
			ErrDecryptionFailed, ErrMalformedPlaintext, len(plaintext))
	}

	body := plaintext[headerSize:]
	payloadLen := binary.BigEndian.Uint32(plaintext[RandomPrefixLength:headerSize])
	if uint64(payloadLen) > uint64(len(body)) {
		return nil, fmt.Errorf("%w: %w: declared length %d exceeds %d remaining bytes",
			ErrDecryptionFailed, ErrMalformedPlaintext, payloadLen, len(body))
	}

	payload, suffix := body[:payloadLen], body[payloadLen:]
	if !bytes.Equal(suffix, c.corpID) {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, ErrTenantMismatch)
	}

	return payload, nil
}

// pad appends n bytes of value n so that len(src)+n is a multiple of
// PadBlockSize. Aligned input always receives a full block.
func pad(src []byte) []byte {
	n := PadBlockSize - len(src)%PadBlockSize
	return append(src, bytes.Repeat([]byte{byte(n)}, n)...)
}

// unpad strips the trailing pad. A pad byte outside [1, PadBlockSize] means
// "no padding" and the input is returned untouched.
func unpad(src []byte) []byte {
	if len(src) == 0 {
		return src
	}

	n := int(src[len(src)-1])
	if n < 1 || n > PadBlockSize {
		n = 0
	}

	return src[:len(src)-n]
}
