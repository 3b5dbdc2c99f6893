package wfbuffer

import (
	"testing"

	"github.com/fennelLabs/whiteflag-go/pkg/wffield"
)

func TestAppendExtractIdentity(t *testing.T) {
	b1 := FromBytes([]byte{0xAB})
	b2 := []byte{0xCD, 0xE0}

	b1.Append(b2, 12)
	if b1.BitLength() != 20 {
		t.Fatalf("BitLength() = %d, want 20", b1.BitLength())
	}

	extracted := b1.Crop()
	if len(extracted) != 3 {
		t.Fatalf("Crop() length = %d, want 3", len(extracted))
	}
}

func TestDecodeHeaderRejectsCursorMismatch(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("Decode() should panic on cursor mismatch")
		}
	}()

	badDefs := []wffield.Definition{
		wffield.Header.Prefix,              // ends at byte 2
		wffield.Header.EncryptionIndicator, // starts at byte 3, not 2 — should mismatch the cursor
	}
	buf := FromBytes(make([]byte, 10))
	_, _, _ = buf.Decode(badDefs, 0)
}

func TestDecodeHeaderRoundTrip(t *testing.T) {
	buf := &Buffer{}
	for _, f := range []wffield.Field{
		wffield.New(wffield.Header.Prefix, "WF"),
		wffield.New(wffield.Header.Version, "1"),
		wffield.New(wffield.Header.EncryptionIndicator, "0"),
		wffield.New(wffield.Header.DuressIndicator, "0"),
		wffield.New(wffield.Header.MessageCode, "A"),
		wffield.New(wffield.Header.ReferenceIndicator, "0"),
		wffield.New(wffield.Header.ReferencedMessage, "0000000000000000000000000000000000000000000000000000000000000000"),
	} {
		buf.AppendField(f)
	}

	// 16 + 8 + 8 + 1 + 8 + 4 + 256 encoded header bits.
	if buf.BitLength() != 301 {
		t.Fatalf("header BitLength() = %d, want 301", buf.BitLength())
	}

	cursor, fields, err := buf.Decode(wffield.Header.Definitions, 0)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if cursor != 301 {
		t.Errorf("cursor after header = %d, want 301", cursor)
	}
	if len(fields) != 7 {
		t.Fatalf("len(fields) = %d, want 7", len(fields))
	}
	if fields[4].Value != "A" {
		t.Errorf("MessageCode decoded = %q, want %q", fields[4].Value, "A")
	}
}

func TestExtractMessageValueUnboundedField(t *testing.T) {
	buf := &Buffer{}
	buf.AppendField(wffield.New(wffield.FreeTextFields.Text, "hi"))

	value, err := buf.ExtractMessageValue(wffield.FreeTextFields.Text, 0)
	if err != nil {
		t.Fatalf("ExtractMessageValue() error = %v", err)
	}
	if value != "hi" {
		t.Errorf("ExtractMessageValue() = %q, want %q", value, "hi")
	}
}
