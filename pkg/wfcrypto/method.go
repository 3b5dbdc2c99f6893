package wfcrypto

import "encoding/hex"

// Method identifies one of the five Whiteflag encryption methods.
//
// Whiteflag Specification 4.7 Crypto ("Encryption methods").
type Method int

const (
	// NoEncryption is method 0: the message is sent in cleartext.
	NoEncryption Method = iota
	// Aes256CtrEcdh is method 1: AES-256-CTR keyed from an ECDH-negotiated secret.
	Aes256CtrEcdh
	// Aes256CtrPsk is method 2: AES-256-CTR keyed from a pre-shared secret.
	Aes256CtrPsk
	// Aes512IegEcdh is method 3: unimplemented placeholder, see ErrNotImplemented.
	Aes512IegEcdh
	// Aes512IegPsk is method 4: unimplemented placeholder, see ErrNotImplemented.
	Aes512IegPsk
)

// hkdfSalt is the fixed HKDF salt associated with each AES-256-CTR method,
// hex-decoded once at init from the constants in the Whiteflag specification table (§4.7).
var hkdfSalt = map[Method][]byte{
	Aes256CtrEcdh: mustHexDecode("8ddb03085a2c15e69c35c224bce2952dca7878770724741cbce5a135328be0c0"),
	Aes256CtrPsk:  mustHexDecode("c4d028bd45c876135e80ef7889835822a6f19a31835557d5854d1334e8497b56"),
}

func mustHexDecode(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// MethodFromIndicator parses a Whiteflag EncryptionIndicator field value ("0"-"4")
// into a Method.
func MethodFromIndicator(indicator string) (Method, error) {
	switch indicator {
	case "0":
		return NoEncryption, nil
	case "1":
		return Aes256CtrEcdh, nil
	case "2":
		return Aes256CtrPsk, nil
	case "3":
		return Aes512IegEcdh, nil
	case "4":
		return Aes512IegPsk, nil
	default:
		return 0, ErrUnknownMethod
	}
}

// Indicator returns the EncryptionIndicator field value for this method.
func (m Method) Indicator() string {
	return string(rune('0' + int(m)))
}

// Salt returns the HKDF salt associated with this method, or nil if the
// method has none (NoEncryption, and the unimplemented IEG methods).
func (m Method) Salt() []byte {
	return hkdfSalt[m]
}

// usesECDH reports whether this method's key material comes from ECDH negotiation.
func (m Method) usesECDH() bool {
	return m == Aes256CtrEcdh || m == Aes512IegEcdh
}
