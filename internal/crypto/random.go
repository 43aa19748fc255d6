// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RandomString returns n characters drawn uniformly from [A-Za-z0-9] using
// the OS CSPRNG. It is used for random prefixes and nonces.
func RandomString(n int) (string, error) {
	max := big.NewInt(int64(len(alphanumeric)))

	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		buf[i] = alphanumeric[idx.Int64()]
	}

	return string(buf), nil
}

// RandomPrefix returns a fresh 16-byte alphanumeric prefix for Encrypt.
func RandomPrefix() ([]byte, error) {
	s, err := RandomString(RandomPrefixLength)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}
