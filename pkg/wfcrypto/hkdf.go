package wfcrypto

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// HashLen is the output length of SHA-256 in bytes, used as HKDF's HashLen
// throughout RFC 5869 bound checks.
const HashLen = sha256.Size

// maxOutputLen is RFC 5869's HKDF-Expand bound: L <= 255*HashLen.
const maxOutputLen = 255 * HashLen

// Extract performs RFC 5869 HKDF-Extract: PRK = HMAC-SHA256(salt, IKM).
//
// Whiteflag Specification 4.7 Crypto ("HKDF-SHA256").
func Extract(ikm, salt []byte) []byte {
	return hkdf.Extract(sha256.New, ikm, salt)
}

// Expand performs RFC 5869 HKDF-Expand: OKM = T(1) || T(2) || ... truncated to length bytes.
//
// Whiteflag Specification 4.7 Crypto ("HKDF-SHA256").
func Expand(prk, info []byte, length int) ([]byte, error) {
	if len(prk) < HashLen {
		return nil, ErrHKDFInput
	}
	if length > maxOutputLen {
		return nil, ErrHKDFOutput
	}

	reader := hkdf.Expand(sha256.New, prk, info)
	okm := make([]byte, length)
	if _, err := io.ReadFull(reader, okm); err != nil {
		return nil, err
	}
	return okm, nil
}

// HKDF composes Extract and Expand in one call: HKDF(IKM, salt, info, L) = Expand(Extract(IKM, salt), info, L).
//
// This is the WhiteflagHkdf function referenced throughout the encryption
// envelope (§4.7) and the authentication token derivation (§4.8).
func HKDF(ikm, salt, info []byte, length int) ([]byte, error) {
	prk := Extract(ikm, salt)
	return Expand(prk, info, length)
}
