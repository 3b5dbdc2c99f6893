package wfcrypto

// EncryptionKey represents a Whiteflag encryption key: either a pre-shared
// key or the output of an ECDH negotiation, from which the actual AES-256
// key material is derived once the message context (the originator's
// address) is known.
//
// Whiteflag Specification 4.7 Crypto ("Key-derivation flow", "Envelope").
type EncryptionKey struct {
	method  Method
	secret  []byte // pre-shared key bytes, or the raw ECDH shared secret
	derived []byte // HKDF(secret, method.Salt(), originatorAddress, 32), set by SetContext
}

// NewPresharedEncryptionKey builds an encryption key from a raw pre-shared secret.
func NewPresharedEncryptionKey(psk []byte) *EncryptionKey {
	return &EncryptionKey{method: Aes256CtrPsk, secret: psk}
}

// NewECDHEncryptionKey builds an encryption key by negotiating a shared
// secret over X25519 between own and the other party's public key.
func NewECDHEncryptionKey(own *ECDHKeyPair, otherPublicKey []byte) (*EncryptionKey, error) {
	shared, err := own.Negotiate(otherPublicKey)
	if err != nil {
		return nil, err
	}
	return &EncryptionKey{method: Aes256CtrEcdh, secret: shared}, nil
}

// Method returns the encryption method this key was constructed for.
func (k *EncryptionKey) Method() Method {
	return k.method
}

// SetContext derives the final 32-byte AES-256 key material via HKDF, using
// the method's fixed salt and the originator's address as HKDF info. This
// must be called before Cipher.
//
// Whiteflag Specification 4.7 Crypto: secret <- HKDF(secret, salt=method.salt, info=originatorAddress, L=32).
func (k *EncryptionKey) SetContext(originatorAddress []byte) error {
	derived, err := HKDF(k.secret, k.method.Salt(), originatorAddress, AES256KeySize)
	if err != nil {
		return err
	}
	k.derived = derived
	return nil
}

// Cipher builds the AES-256-CTR cipher driven by this key's derived
// material. SetContext must have been called first.
func (k *EncryptionKey) Cipher() (*AESCTR, error) {
	if k.derived == nil {
		return nil, ErrNoContext
	}
	return NewAESCTR(k.derived)
}
