// Package cryptox wraps the AES-GCM primitives used for keeping secrets
// encrypted while they sit in process memory.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
)

const nonceSize = 12

// NewKey returns a fresh random 256-bit AES key.
func NewKey() ([]byte, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("key generation error: %w", err)
	}
	return key, nil
}

// EncryptString encrypts plaintext with AES-GCM under key. A new random
// 12-byte nonce is generated per call; the ciphertext and nonce are
// returned separately.
//
// The key must be a valid AES key length (16, 24, or 32 bytes).
func EncryptString(plaintext string, key []byte) (ciphertext, nonce []byte, err error) {
	nonce = make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, err
	}

	ciphertext = aesgcm.Seal(nil, nonce, []byte(plaintext), nil)
	return ciphertext, nonce, nil
}

// DecryptString reverses EncryptString. The key and nonce must be the same
// values used during encryption; any mismatch fails authentication.
func DecryptString(ciphertext, nonce, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. Useful for passwords and keys that should not linger in memory.
// A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
