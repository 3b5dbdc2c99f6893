package wfmessage

import (
	"testing"

	"github.com/pion/logging"

	"github.com/fennelLabs/whiteflag-go/pkg/wfcrypto"
)

func TestCodecDecodeHexRoundTrip(t *testing.T) {
	values := []string{"WF", "1", "0", "0", "A", "0", zeros(64), "1", "https://organisation.int/whiteflag"}
	msg, err := CompileValues(values)
	if err != nil {
		t.Fatalf("CompileValues() error = %v", err)
	}

	c := NewCodec(Config{LoggerFactory: logging.NewDefaultLoggerFactory()})
	hexMsg := c.EncodeHex(msg)

	decoded, err := c.DecodeHex(hexMsg)
	if err != nil {
		t.Fatalf("DecodeHex() error = %v", err)
	}
	if decoded.Serialize() != msg.Serialize() {
		t.Errorf("round trip mismatch: got %q, want %q", decoded.Serialize(), msg.Serialize())
	}
}

func TestCodecDecodeHexInvalidInput(t *testing.T) {
	c := NewCodec(Config{})
	if _, err := c.DecodeHex("not-hex"); err == nil {
		t.Fatal("expected error for malformed hex")
	}
}

func TestCodecEncodeAndEncryptRoundTrip(t *testing.T) {
	values := []string{"WF", "1", "2", "0", "A", "0", zeros(64), "2", "x"}
	msg, err := CompileValues(values)
	if err != nil {
		t.Fatalf("CompileValues() error = %v", err)
	}

	key := wfcrypto.NewPresharedEncryptionKey([]byte("a pre-shared secret, 32+ bytes!!"))
	if err := key.SetContext([]byte("originator-address")); err != nil {
		t.Fatalf("SetContext() error = %v", err)
	}
	cipher, err := key.Cipher()
	if err != nil {
		t.Fatalf("Cipher() error = %v", err)
	}
	iv := make([]byte, wfcrypto.AES256IVSize)

	c := NewCodec(Config{})
	encrypted, err := c.EncodeAndEncrypt(msg, cipher, iv)
	if err != nil {
		t.Fatalf("EncodeAndEncrypt() error = %v", err)
	}

	bitLength := msg.Encode().BitLength()
	decoded, err := c.DecryptAndDecode(encrypted, bitLength, cipher, iv)
	if err != nil {
		t.Fatalf("DecryptAndDecode() error = %v", err)
	}
	if decoded.Serialize() != msg.Serialize() {
		t.Errorf("round trip mismatch: got %q, want %q", decoded.Serialize(), msg.Serialize())
	}
}
