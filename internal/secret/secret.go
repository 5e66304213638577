// Package secret seals bot tokens at rest with NaCl secretbox.
package secret

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/nacl/secretbox"
)

const prefix = "sb1:"

// ErrDecrypt is returned when a sealed value cannot be opened with the configured key.
var ErrDecrypt = errors.New("failed to open sealed value")

// Box seals and opens strings. A Box without a key stores values in plaintext.
type Box struct {
	key *[32]byte
}

// NewBox creates a Box from a 64-character hex key. An empty key disables sealing.
func NewBox(hexKey string) (*Box, error) {
	if hexKey == "" {
		return &Box{}, nil
	}
	raw, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode encryption key: %w", err)
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("encryption key must be 32 bytes, got %d", len(raw))
	}
	var key [32]byte
	copy(key[:], raw)
	return &Box{key: &key}, nil
}

// Enabled reports whether values are encrypted.
func (b *Box) Enabled() bool {
	return b != nil && b.key != nil
}

// Seal encrypts plaintext. Empty strings stay empty.
func (b *Box) Seal(plaintext string) (string, error) {
	if plaintext == "" || !b.Enabled() {
		return plaintext, nil
	}
	var nonce [24]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, b.key)
	return prefix + base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Open decrypts a value produced by Seal. Unsealed values are returned as is.
func (b *Box) Open(value string) (string, error) {
	if !strings.HasPrefix(value, prefix) {
		return value, nil
	}
	if !b.Enabled() {
		return "", fmt.Errorf("%w: no encryption key configured", ErrDecrypt)
	}
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimPrefix(value, prefix))
	if err != nil || len(raw) < 24+secretbox.Overhead {
		return "", ErrDecrypt
	}
	var nonce [24]byte
	copy(nonce[:], raw[:24])
	plain, ok := secretbox.Open(nil, raw[24:], &nonce, b.key)
	if !ok {
		return "", ErrDecrypt
	}
	return string(plain), nil
}
