package wfcrypto

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// TestHKDFRFC5869Case1 is RFC 5869 Appendix A Test Case 1, reused by the
// Whiteflag specification (§8 scenario 6) to pin the HKDF implementation.
func TestHKDFRFC5869Case1(t *testing.T) {
	ikm, _ := hex.DecodeString("0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b")
	salt, _ := hex.DecodeString("000102030405060708090a0b0c")
	info, _ := hex.DecodeString("f0f1f2f3f4f5f6f7f8f9")

	wantPRK, _ := hex.DecodeString("077709362c2e32df0ddc3f0dc47bba6390b6c73bb50f9c3122ec844ad7c2b3e5")
	wantOKM, _ := hex.DecodeString("3cb25f25faacd57a90434f64d0362f2a2d2d0a90cf1a5a4c5db02d56ecc4c5bf34007208d5b887185865")

	prk := Extract(ikm, salt)
	if !bytes.Equal(prk, wantPRK) {
		t.Errorf("Extract() = %x, want %x", prk, wantPRK)
	}

	okm, err := Expand(prk, info, 42)
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	if !bytes.Equal(okm, wantOKM) {
		t.Errorf("Expand() = %x, want %x", okm, wantOKM)
	}

	full, err := HKDF(ikm, salt, info, 42)
	if err != nil {
		t.Fatalf("HKDF() error = %v", err)
	}
	if !bytes.Equal(full, wantOKM) {
		t.Errorf("HKDF() = %x, want %x", full, wantOKM)
	}
}

func TestExpandRejectsShortPRK(t *testing.T) {
	_, err := Expand([]byte{0x01, 0x02}, nil, 16)
	if err != ErrHKDFInput {
		t.Errorf("Expand() error = %v, want ErrHKDFInput", err)
	}
}

func TestExpandRejectsOversizedOutput(t *testing.T) {
	prk := make([]byte, HashLen)
	_, err := Expand(prk, nil, maxOutputLen+1)
	if err != ErrHKDFOutput {
		t.Errorf("Expand() error = %v, want ErrHKDFOutput", err)
	}
}
