package wfcrypto

import "github.com/fennelLabs/whiteflag-go/pkg/bitstring"

// plaintextBits is the number of leading bits of an encoded message that
// stay in cleartext when encryption is applied: Prefix (16), Version (8),
// EncryptionIndicator (8), and DuressIndicator (1), for a total split point
// of bit 33.
//
// Whiteflag Specification §4.7 Message Encryption, §9 open question 1: the
// stated rationale is "cleartext up to the end of EncryptionIndicator" (bit
// 32), but the worked example in §6.1 splits one bit later, at bit 33,
// leaving DuressIndicator itself unencrypted too. This implementation
// follows the literal §6.1 behavior.
const plaintextBits = 33

// EncryptMessage returns a newly allocated copy of an encoded Whiteflag
// message with its body encrypted: the first 33 bits (Prefix, Version, EncryptionIndicator and
// DuressIndicator) stay in cleartext, everything from bit 33 onward is
// AES-256-CTR encrypted under key and iv. bitLength is the total length of
// the encoded message in bits.
func EncryptMessage(key *AESCTR, iv, encoded []byte, bitLength int) ([]byte, error) {
	if bitLength <= plaintextBits {
		out := make([]byte, len(encoded))
		copy(out, encoded)
		return out, nil
	}

	head := bitstring.ExtractBits(encoded, bitLength, 0, plaintextBits)
	tail := bitstring.ExtractBits(encoded, bitLength, plaintextBits, bitLength-plaintextBits)

	cipherTail, err := key.Encrypt(iv, tail)
	if err != nil {
		return nil, err
	}

	out, _ := bitstring.AppendBits(head, plaintextBits, cipherTail, bitLength-plaintextBits)
	return out, nil
}

// DecryptMessage reverses EncryptMessage: AES-CTR is involutory, so
// decryption is the same split-and-crypt operation as encryption.
func DecryptMessage(key *AESCTR, iv, encoded []byte, bitLength int) ([]byte, error) {
	return EncryptMessage(key, iv, encoded, bitLength)
}
