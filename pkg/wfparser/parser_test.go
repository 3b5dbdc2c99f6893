package wfparser

import (
	"testing"

	"github.com/fennelLabs/whiteflag-go/pkg/wffield"
)

func TestValuesParserRemaining(t *testing.T) {
	p := NewValuesParser([]string{"a", "b", "c", "d", "e"})
	p.index = 1
	if got := p.Remaining(); got != 2 {
		t.Errorf("Remaining() = %d, want 2", got)
	}
}

func TestValuesParserParseAdvancesAndValidates(t *testing.T) {
	p := NewValuesParser([]string{"WF", "1"})
	v, err := p.Parse(wffield.Header.Prefix)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v != "WF" {
		t.Errorf("Parse() = %q, want WF", v)
	}
	if p.index != 1 {
		t.Errorf("index = %d, want 1", p.index)
	}
}

func TestValuesParserOutOfValues(t *testing.T) {
	p := NewValuesParser(nil)
	if _, err := p.Parse(wffield.Header.Prefix); err != ErrOutOfValues {
		t.Errorf("error = %v, want ErrOutOfValues", err)
	}
}

func TestSerializedParserParsesByteRange(t *testing.T) {
	p := NewSerializedParser("WF100A0000000000000000000000000000000000000000000000000000000000000000001https://organisation.int/whiteflag")
	v, err := p.Parse(wffield.Header.Prefix)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v != "WF" {
		t.Errorf("Parse() = %q, want WF", v)
	}
}

func TestSerializedParserUnboundedField(t *testing.T) {
	msg := "71https://organisation.int/whiteflag"
	unbounded := wffield.AuthenticationFields.VerificationData
	unbounded.StartByte = 2
	unbounded.EndByte = 0

	p := &SerializedParser{message: msg}
	v, err := p.Parse(unbounded)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v != "https://organisation.int/whiteflag" {
		t.Errorf("Parse() = %q", v)
	}
}

func TestSerializedParserRemaining(t *testing.T) {
	p := &SerializedParser{message: "0123456789", lastByte: 2}
	if got := p.Remaining(); got != 2 {
		t.Errorf("Remaining() = %d, want 2", got)
	}
}
