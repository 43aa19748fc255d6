// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEncodingAESKey = "jWmYm7qr5nMoAUwZRjGtBxmz3KA1tkAj3ykkR6q2B2C"
	testKeyHex         = "8d69989bbaabe67328014c194631ad0719b3dca035b64023df292447aab60760"
	testCorpID         = "wx5823bf96d3bd56c7"
	testPrefix         = "abcdefghijklmnop"
)

func newTestCodec(t *testing.T) MessageCodec {
	t.Helper()
	c, err := NewMessageCodec(testEncodingAESKey, testCorpID)
	require.NoError(t, err)
	return c
}

func testKey(t *testing.T) []byte {
	t.Helper()
	key, err := hex.DecodeString(testKeyHex)
	require.NoError(t, err)
	return key
}

// encryptRaw encrypts an already padded plaintext with the test key so that
// tests can craft layouts Encrypt would never produce.
func encryptRaw(t *testing.T, plaintext []byte) string {
	t.Helper()
	key := testKey(t)
	block, err := aes.NewCipher(key)
	require.NoError(t, err)

	out := make([]byte, len(plaintext))
	cipher.NewCBCEncrypter(block, key[:16]).CryptBlocks(out, plaintext)
	return base64.StdEncoding.EncodeToString(out)
}

// ─── key decoding ─────────────────────────────────────────────────────────────

func TestDecodeEncodingAESKey(t *testing.T) {
	key, err := DecodeEncodingAESKey(testEncodingAESKey)
	require.NoError(t, err)
	assert.Equal(t, testKeyHex, hex.EncodeToString(key))
}

func TestNewMessageCodec_InvalidKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr error
	}{
		{name: "too short", key: testEncodingAESKey[:42], wantErr: ErrInvalidEncodingAESKey},
		{name: "too long", key: testEncodingAESKey + "A", wantErr: ErrInvalidEncodingAESKey},
		{name: "empty", key: "", wantErr: ErrInvalidEncodingAESKey},
		{name: "not base64", key: strings.Repeat("*", 43), wantErr: ErrInvalidEncodingAESKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewMessageCodec(tt.key, testCorpID)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewMessageCodecWithKey_InvalidLength(t *testing.T) {
	for _, n := range []int{0, 16, 24, 31, 33} {
		c, err := NewMessageCodecWithKey(make([]byte, n), testCorpID)
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrInvalidKeyLength, "key length %d", n)
	}
}

// ─── known answers ────────────────────────────────────────────────────────────

func TestEncrypt_KnownAnswers(t *testing.T) {
	c := newTestCodec(t)

	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{
			name:    "hello",
			payload: "hello",
			want:    "7ho9XWI/HTOA1L6oduAxX7qGeeN6XD5/LzX4e2c5YwnCHRcESnzZr+yu2G3JDJASilRJW/gLHIOSMAmh/y2fnQ==",
		},
		{
			name:    "empty payload",
			payload: "",
			want:    "7ho9XWI/HTOA1L6oduAxXz6+TSwI4uq0wdJEgVtfPmS/8aIVkmQV5Eqe3fmC2fiNeCec4aiBh18Z4E2/Vzv9Vg==",
		},
		{
			name:    "aligned plaintext gets a full pad block",
			payload: strings.Repeat("A", 26),
			want:    "7ho9XWI/HTOA1L6oduAxXzNzKEbmTgcbit+i+QvPyLOSCAlR8YAnR+Hx/57ubHfz45c2Wh2bpTA68S2fmBVWA7ArWMegE/lZfhiidLvPdH3/xjR5zJmrFE81d5TjNx55",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Encrypt([]byte(testPrefix), []byte(tt.payload))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			payload, err := c.Decrypt(got)
			require.NoError(t, err)
			assert.Equal(t, tt.payload, string(payload))
		})
	}
}

func TestEncrypt_CiphertextLength(t *testing.T) {
	c := newTestCodec(t)

	// 16 + 4 + 26 + 18 = 64 bytes before padding, so a whole 32-byte block is added.
	ct, err := c.Encrypt([]byte(testPrefix), bytes.Repeat([]byte("A"), 26))
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(ct)
	require.NoError(t, err)
	assert.Len(t, raw, 96)
}

func TestEncrypt_InvalidPrefix(t *testing.T) {
	c := newTestCodec(t)

	for _, p := range [][]byte{nil, []byte("short"), bytes.Repeat([]byte("x"), 17)} {
		_, err := c.Encrypt(p, []byte("hello"))
		assert.ErrorIs(t, err, ErrInvalidRandomPrefix)
	}
}

// ─── round trip ───────────────────────────────────────────────────────────────

func TestRoundTrip_PayloadLengths(t *testing.T) {
	c := newTestCodec(t)

	lengths := []int{0, 1, 2, 10, 11, 12, 13, 31, 32, 33, 63, 64, 65, 255, 256, 1000, 4096, 10000}
	for _, n := range lengths {
		payload := bytes.Repeat([]byte{'x'}, n)

		prefix, err := RandomPrefix()
		require.NoError(t, err)

		ct, err := c.Encrypt(prefix, payload)
		require.NoError(t, err, "length %d", n)

		got, err := c.Decrypt(ct)
		require.NoError(t, err, "length %d", n)
		assert.Equal(t, payload, got, "length %d", n)
	}
}

func TestRoundTrip_BinaryPayload(t *testing.T) {
	c := newTestCodec(t)

	payload := make([]byte, 300)
	for i := range payload {
		payload[i] = byte(i)
	}

	ct, err := c.Encrypt([]byte(testPrefix), payload)
	require.NoError(t, err)

	got, err := c.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

// ─── decryption failures ──────────────────────────────────────────────────────

func TestDecrypt_TenantMismatch(t *testing.T) {
	sender, err := NewMessageCodec(testEncodingAESKey, "wwOTHERCORP")
	require.NoError(t, err)

	ct, err := sender.Encrypt([]byte(testPrefix), []byte("hello"))
	require.NoError(t, err)

	got, err := newTestCodec(t).Decrypt(ct)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
	assert.ErrorIs(t, err, ErrTenantMismatch)
}

func TestDecrypt_WrongKeyNeverReturnsPayload(t *testing.T) {
	ct, err := newTestCodec(t).Encrypt([]byte(testPrefix), []byte("confidential"))
	require.NoError(t, err)

	other, err := NewMessageCodecWithKey(bytes.Repeat([]byte{0x42}, KeyLength), testCorpID)
	require.NoError(t, err)

	got, err := other.Decrypt(ct)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestDecrypt_MalformedInput(t *testing.T) {
	c := newTestCodec(t)

	tests := []struct {
		name       string
		ciphertext string
		wantReason error
	}{
		{name: "not base64", ciphertext: "!!!not-base64!!!", wantReason: ErrMalformedBase64},
		{name: "empty", ciphertext: "", wantReason: ErrCipherFault},
		{name: "one AES block", ciphertext: base64.StdEncoding.EncodeToString(make([]byte, 16)), wantReason: ErrCipherFault},
		{name: "not a multiple of 32", ciphertext: base64.StdEncoding.EncodeToString(make([]byte, 48)), wantReason: ErrCipherFault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Decrypt(tt.ciphertext)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrDecryptionFailed)
			assert.ErrorIs(t, err, tt.wantReason)
		})
	}
}

func TestDecrypt_DeclaredLengthTooLarge(t *testing.T) {
	plaintext := make([]byte, 0, 64)
	plaintext = append(plaintext, testPrefix...)
	plaintext = binary.BigEndian.AppendUint32(plaintext, 1000)
	plaintext = append(plaintext, "hello"...)
	plaintext = append(plaintext, testCorpID...)
	plaintext = pad(plaintext)

	got, err := newTestCodec(t).Decrypt(encryptRaw(t, plaintext))
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
	assert.ErrorIs(t, err, ErrMalformedPlaintext)
}

func TestDecrypt_LenientPadding(t *testing.T) {
	// 16 + 4 + 5 + 18 = 43 bytes, filled out to 64 with zero bytes instead of
	// a proper pad. The zero pad byte is treated as "no padding", so the
	// trailing bytes end up in the suffix and the corp id check fails.
	plaintext := make([]byte, 0, 64)
	plaintext = append(plaintext, testPrefix...)
	plaintext = binary.BigEndian.AppendUint32(plaintext, 5)
	plaintext = append(plaintext, "hello"...)
	plaintext = append(plaintext, testCorpID...)
	plaintext = append(plaintext, make([]byte, 64-len(plaintext))...)

	_, err := newTestCodec(t).Decrypt(encryptRaw(t, plaintext))
	assert.ErrorIs(t, err, ErrTenantMismatch)
}

func TestDecrypt_PadByteAbove32IsIgnored(t *testing.T) {
	// 21-byte payload gives 16 + 4 + 21 + 18 = 59 bytes; five bytes of 0x21
	// complete the block. 0x21 is outside [1, 32] and must not be stripped.
	payload := []byte(strings.Repeat("p", 21))
	plaintext := make([]byte, 0, 64)
	plaintext = append(plaintext, testPrefix...)
	plaintext = binary.BigEndian.AppendUint32(plaintext, uint32(len(payload)))
	plaintext = append(plaintext, payload...)
	plaintext = append(plaintext, testCorpID...)
	plaintext = append(plaintext, bytes.Repeat([]byte{0x21}, 64-len(plaintext))...)

	_, err := newTestCodec(t).Decrypt(encryptRaw(t, plaintext))
	assert.ErrorIs(t, err, ErrTenantMismatch)
}

// ─── padding helpers ──────────────────────────────────────────────────────────

func TestPad(t *testing.T) {
	for n := 0; n <= 96; n++ {
		out := pad(make([]byte, n))
		assert.Zero(t, len(out)%PadBlockSize, "input %d", n)

		added := len(out) - n
		assert.GreaterOrEqual(t, added, 1)
		assert.LessOrEqual(t, added, PadBlockSize)
		assert.Equal(t, bytes.Repeat([]byte{byte(added)}, added), out[n:])
		assert.Len(t, unpad(out), n)
	}
}

func TestUnpad_Empty(t *testing.T) {
	assert.Empty(t, unpad(nil))
}
