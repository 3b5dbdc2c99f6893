// Package wfcrypto implements the Whiteflag encryption envelope: HKDF-SHA256
// key and token derivation, X25519 ECDH negotiation, and AES-256-CTR
// encryption of a message's encrypted tail.
//
// Whiteflag Specification 4.7 Crypto.
package wfcrypto

import "errors"

// Crypto layer errors.
var (
	// ErrUnknownMethod is returned for an encryption indicator value outside 0-4.
	ErrUnknownMethod = errors.New("wfcrypto: unknown encryption method")

	// ErrNotImplemented denotes the AES-512-IEG methods (3, 4), which
	// reference a non-standard "x16" padding scheme that is not implemented.
	// No EncryptionKey constructor builds a key for those methods, and no
	// function of this package returns this error.
	ErrNotImplemented = errors.New("wfcrypto: encryption method not implemented")

	// ErrHKDFInput is returned when HKDF-Expand receives a PRK shorter than the hash length.
	ErrHKDFInput = errors.New("wfcrypto: hkdf input keying material too short")

	// ErrHKDFOutput is returned when the requested HKDF output length exceeds 255*HashLen.
	ErrHKDFOutput = errors.New("wfcrypto: hkdf requested output length too large")

	// ErrInvalidKeySize is returned when a raw key does not match the expected AES-256 key size.
	ErrInvalidKeySize = errors.New("wfcrypto: invalid key size, must be 32 bytes")

	// ErrInvalidIVSize is returned when a CTR initialization vector does not match the AES block size.
	ErrInvalidIVSize = errors.New("wfcrypto: invalid initialization vector size, must be 16 bytes")

	// ErrNoContext is returned when attempting to use an encryption key before set_context has derived it.
	ErrNoContext = errors.New("wfcrypto: encryption key context has not been set")

	// ErrInvalidPrivateKeySize is returned when an X25519 private key scalar is not 32 bytes.
	ErrInvalidPrivateKeySize = errors.New("wfcrypto: invalid X25519 private key size, must be 32 bytes")

	// ErrInvalidPublicKeySize is returned when an X25519 public key is not 32 bytes.
	ErrInvalidPublicKeySize = errors.New("wfcrypto: invalid X25519 public key size, must be 32 bytes")
)
