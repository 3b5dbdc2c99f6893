package wfcrypto

import (
	"crypto/ecdh"
	"crypto/rand"
	"fmt"
)

// X25519KeySize is the size in bytes of an X25519 scalar (private key) or
// Montgomery-form public key.
//
// Whiteflag Specification §4.7 references brainpoolP256r1 for ECDH key
// negotiation. This implementation substitutes X25519 for that role — see
// spec.md §9 open question 2 — since the two curves are not wire-compatible
// and the specification text itself is ambiguous on this point.
const X25519KeySize = 32

// ECDHKeyPair is a Whiteflag ECDH key pair used for key negotiation.
//
// Whiteflag Specification 4.7 Crypto ("ECDH").
type ECDHKeyPair struct {
	private *ecdh.PrivateKey
}

// GenerateECDHKeyPair generates a new random X25519 key pair.
func GenerateECDHKeyPair() (*ECDHKeyPair, error) {
	priv, err := ecdh.X25519().GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("wfcrypto: failed to generate X25519 key: %w", err)
	}
	return &ECDHKeyPair{private: priv}, nil
}

// ECDHKeyPairFromPrivateKey builds a key pair from a 32-byte private scalar.
func ECDHKeyPairFromPrivateKey(privateKey []byte) (*ECDHKeyPair, error) {
	if len(privateKey) != X25519KeySize {
		return nil, ErrInvalidPrivateKeySize
	}
	priv, err := ecdh.X25519().NewPrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("wfcrypto: invalid X25519 private key: %w", err)
	}
	return &ECDHKeyPair{private: priv}, nil
}

// PublicKey returns the 32-byte raw X25519 public key of this key pair.
func (kp *ECDHKeyPair) PublicKey() []byte {
	return kp.private.PublicKey().Bytes()
}

// PrivateKey returns the 32-byte raw X25519 private scalar of this key pair.
func (kp *ECDHKeyPair) PrivateKey() []byte {
	return kp.private.Bytes()
}

// Negotiate performs X25519 Diffie-Hellman with another party's raw public
// key, returning the 32-byte shared secret.
//
// Whiteflag Specification 4.7 Crypto: shared = DH(own_secret, other_public).
func (kp *ECDHKeyPair) Negotiate(otherPublicKey []byte) ([]byte, error) {
	if len(otherPublicKey) != X25519KeySize {
		return nil, ErrInvalidPublicKeySize
	}
	pub, err := ecdh.X25519().NewPublicKey(otherPublicKey)
	if err != nil {
		return nil, fmt.Errorf("wfcrypto: invalid X25519 public key: %w", err)
	}
	shared, err := kp.private.ECDH(pub)
	if err != nil {
		return nil, fmt.Errorf("wfcrypto: X25519 key agreement failed: %w", err)
	}
	return shared, nil
}
