package wfmessage

import (
	"github.com/pion/logging"

	"github.com/fennelLabs/whiteflag-go/pkg/wfbuffer"
	"github.com/fennelLabs/whiteflag-go/pkg/wfcrypto"
)

// Config configures a Codec.
type Config struct {
	// LoggerFactory builds the Codec's logger. Defaults to
	// logging.NewDefaultLoggerFactory() if nil.
	LoggerFactory logging.LoggerFactory
}

// Codec is the caller-facing entry point of the message codec: it wraps
// the pure builder and bit-buffer machinery with the logging the rest of
// the stack carries, reporting decode failures and encryption-method
// fallbacks the way the teacher's Engine logs dispatch failures.
type Codec struct {
	log logging.LeveledLogger
}

// NewCodec builds a Codec from config.
func NewCodec(config Config) *Codec {
	factory := config.LoggerFactory
	if factory == nil {
		factory = logging.NewDefaultLoggerFactory()
	}
	return &Codec{log: factory.NewLogger("wfmessage")}
}

// DecodeHex parses a hex-encoded Whiteflag message into a Message.
//
// Whiteflag Specification 6.1 Wire format.
func (c *Codec) DecodeHex(message string) (*Message, error) {
	buffer, err := wfbuffer.FromHex(message)
	if err != nil {
		c.log.Warnf("wfmessage: invalid hex message: %v", err)
		return nil, err
	}
	msg, err := CompileEncoded(buffer)
	if err != nil {
		c.log.Warnf("wfmessage: decode failed: %v", err)
		return nil, err
	}
	c.log.Tracef("wfmessage: decoded %s message", msg.Code)
	return msg, nil
}

// EncodeHex encodes a Message to its hexadecimal wire form.
func (c *Codec) EncodeHex(msg *Message) string {
	return msg.EncodeHex()
}

// DecryptAndDecode removes the method-2/method-1 encryption envelope from
// an encoded message before decoding it. cipher must already have its
// context set (wfcrypto.EncryptionKey.SetContext) for the originator this
// message came from.
//
// Whiteflag Specification 4.7 Crypto, "Envelope".
func (c *Codec) DecryptAndDecode(encoded []byte, bitLength int, cipher *wfcrypto.AESCTR, iv []byte) (*Message, error) {
	plaintext, err := wfcrypto.DecryptMessage(cipher, iv, encoded, bitLength)
	if err != nil {
		c.log.Warnf("wfmessage: decryption failed: %v", err)
		return nil, err
	}
	buffer := wfbuffer.New(plaintext, bitLength)
	msg, err := CompileEncoded(buffer)
	if err != nil {
		c.log.Warnf("wfmessage: decode after decryption failed: %v", err)
		return nil, err
	}
	return msg, nil
}

// EncodeAndEncrypt encodes msg and applies the method-1/method-2 encryption
// envelope: the first 33 bits (through DuressIndicator) stay in the clear,
// the remainder is AES-256-CTR-encrypted under cipher/iv. cipher must
// already have its context set for the intended recipient.
//
// If msg's EncryptionIndicator selects method 0, the envelope is the
// identity and this returns the unencrypted bytes of msg.Encode(); callers
// that expect encryption to actually occur should check the indicator and
// treat that case as ErrNotEncrypted instead.
func (c *Codec) EncodeAndEncrypt(msg *Message, cipher *wfcrypto.AESCTR, iv []byte) ([]byte, error) {
	buffer := msg.Encode()
	if indicator, _ := msg.Get("EncryptionIndicator"); indicator == wfcrypto.NoEncryption.Indicator() {
		c.log.Tracef("wfmessage: encryption indicator is 0, message left unencrypted")
		return buffer.Bytes(), nil
	}
	encrypted, err := wfcrypto.EncryptMessage(cipher, iv, buffer.Bytes(), buffer.BitLength())
	if err != nil {
		c.log.Warnf("wfmessage: encryption failed: %v", err)
		return nil, err
	}
	return encrypted, nil
}
