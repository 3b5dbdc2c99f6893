package wfcrypto

import (
	"crypto/aes"
	"crypto/cipher"
)

// AES256KeySize is the AES-256 key size in bytes.
const AES256KeySize = 32

// AES256IVSize is the AES block size, and therefore the CTR initialization
// vector size, in bytes.
const AES256IVSize = aes.BlockSize

// AESCTR represents an AES-256-CTR cipher instance for Whiteflag message
// encryption. Unlike Matter's privacy encryption (which derives its own
// counter block internally, see the teacher's AES-CTR implementation),
// Whiteflag's encryption envelope takes the initialization vector from the
// caller on every message (§4.7 "the IV is supplied externally").
//
// Whiteflag Specification 4.7 Crypto ("Envelope").
type AESCTR struct {
	block cipher.Block
}

// NewAESCTR creates an AES-256-CTR cipher for the given 32-byte key.
func NewAESCTR(key []byte) (*AESCTR, error) {
	if len(key) != AES256KeySize {
		return nil, ErrInvalidKeySize
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &AESCTR{block: block}, nil
}

// Encrypt and Decrypt are the same operation in CTR mode; both XOR the
// input against the keystream generated from iv.
func (c *AESCTR) crypt(iv, data []byte) ([]byte, error) {
	if len(iv) != AES256IVSize {
		return nil, ErrInvalidIVSize
	}
	out := make([]byte, len(data))
	stream := cipher.NewCTR(c.block, iv)
	stream.XORKeyStream(out, data)
	return out, nil
}

// Encrypt encrypts plaintext with the given initialization vector.
func (c *AESCTR) Encrypt(iv, plaintext []byte) ([]byte, error) {
	return c.crypt(iv, plaintext)
}

// Decrypt decrypts ciphertext with the given initialization vector. AES-CTR
// is symmetric, so this is identical to Encrypt.
func (c *AESCTR) Decrypt(iv, ciphertext []byte) ([]byte, error) {
	return c.crypt(iv, ciphertext)
}
