package wfcrypto

import (
	"bytes"
	"testing"
)

func TestAESCTRRoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{0x2b}, AES256KeySize)
	iv := bytes.Repeat([]byte{0x00}, AES256IVSize)

	cipher, err := NewAESCTR(key)
	if err != nil {
		t.Fatalf("NewAESCTR() error = %v", err)
	}

	plaintext := []byte("this is a whiteflag message body")
	ciphertext, err := cipher.Encrypt(iv, plaintext)
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	if bytes.Equal(ciphertext, plaintext) {
		t.Fatal("ciphertext must not equal plaintext")
	}

	decrypted, err := cipher.Decrypt(iv, ciphertext)
	if err != nil {
		t.Fatalf("Decrypt() error = %v", err)
	}
	if !bytes.Equal(decrypted, plaintext) {
		t.Errorf("Decrypt(Encrypt(P)) = %q, want %q", decrypted, plaintext)
	}
}

func TestNewAESCTRRejectsBadKeySize(t *testing.T) {
	if _, err := NewAESCTR(make([]byte, 16)); err != ErrInvalidKeySize {
		t.Errorf("NewAESCTR() error = %v, want ErrInvalidKeySize", err)
	}
}

func TestAESCTRRejectsBadIVSize(t *testing.T) {
	cipher, err := NewAESCTR(make([]byte, AES256KeySize))
	if err != nil {
		t.Fatalf("NewAESCTR() error = %v", err)
	}
	if _, err := cipher.Encrypt(make([]byte, 4), []byte("x")); err != ErrInvalidIVSize {
		t.Errorf("Encrypt() error = %v, want ErrInvalidIVSize", err)
	}
}
