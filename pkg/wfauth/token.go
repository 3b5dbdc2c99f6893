package wfauth

import (
	"encoding/hex"

	"github.com/fennelLabs/whiteflag-go/pkg/wfcrypto"
)

// presharedSalt is the fixed HKDF salt for the pre-shared-token
// authentication method.
//
// Whiteflag Specification 3. Data Model, "Auth token": the salt for the
// pre-shared-token method is the fixed constant 420abc48…c14081.
var presharedSalt = mustHexDecode("420abc48f5d69328c457d61725d3fd7af2883cad8460976167e375b9f2c14081")

func mustHexDecode(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// verificationLength is the byte length of the HKDF output used to build
// VerificationData: 32 bytes, hex-encoded to a 64-character string.
const verificationLength = 32

// Token is a Whiteflag pre-shared authentication token.
//
// Whiteflag Specification 4.8 Auth token.
type Token struct {
	secret []byte
	method Method
}

// NewToken builds a pre-shared authentication token from a raw secret.
func NewToken(secret []byte) *Token {
	return &Token{secret: secret, method: PresharedToken}
}

// Method returns the authentication method this token was built for.
func (t *Token) Method() Method {
	return t.method
}

// VerificationData derives the hex-encoded VerificationData field value for
// the given context (typically the originator's blockchain address),
// following hex(HKDF(token, PRESHARED_SALT, context, 32)).
func (t *Token) VerificationData(context []byte) (string, error) {
	okm, err := wfcrypto.HKDF(t.secret, presharedSalt, context, verificationLength)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(okm), nil
}
