package cryptox

import (
	"bytes"
	"testing"
)

func TestEncryptDecryptString_RoundTrip(t *testing.T) {
	t.Parallel()

	key, err := NewKey()
	if err != nil {
		t.Fatalf("NewKey error: %v", err)
	}

	ciphertext, nonce, err := EncryptString("header.payload.signature", key)
	if err != nil {
		t.Fatalf("EncryptString error: %v", err)
	}
	if bytes.Contains(ciphertext, []byte("payload")) {
		t.Fatalf("ciphertext leaks plaintext")
	}

	got, err := DecryptString(ciphertext, nonce, key)
	if err != nil {
		t.Fatalf("DecryptString error: %v", err)
	}
	if got != "header.payload.signature" {
		t.Fatalf("round trip mismatch: got %q", got)
	}
}

func TestDecryptString_WrongKey(t *testing.T) {
	t.Parallel()

	key, _ := NewKey()
	other, _ := NewKey()

	ciphertext, nonce, err := EncryptString("secret", key)
	if err != nil {
		t.Fatalf("EncryptString error: %v", err)
	}

	if _, err := DecryptString(ciphertext, nonce, other); err == nil {
		t.Fatalf("expected authentication failure with wrong key")
	}
}

func TestDecryptString_TamperedCiphertext(t *testing.T) {
	t.Parallel()

	key, _ := NewKey()
	ciphertext, nonce, err := EncryptString("secret", key)
	if err != nil {
		t.Fatalf("EncryptString error: %v", err)
	}
	ciphertext[0] ^= 0xff

	if _, err := DecryptString(ciphertext, nonce, key); err == nil {
		t.Fatalf("expected authentication failure for tampered ciphertext")
	}
}

func TestEncryptString_InvalidKeyLength(t *testing.T) {
	t.Parallel()

	if _, _, err := EncryptString("x", []byte("short")); err == nil {
		t.Fatalf("expected error for invalid key length")
	}
}

func TestWipeByteArray(t *testing.T) {
	t.Parallel()

	b := []byte("password")
	WipeByteArray(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d not wiped", i)
		}
	}
	WipeByteArray(nil)
}
