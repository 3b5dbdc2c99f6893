package wfmessage

import (
	"strings"

	"github.com/fennelLabs/whiteflag-go/pkg/wfbuffer"
	"github.com/fennelLabs/whiteflag-go/pkg/wffield"
)

// Message is a fully assembled Whiteflag message: a seven-field header
// segment and a body segment, the latter possibly extended with a pseudo
// body (Test messages) or repeating request pairs (Request messages).
//
// Whiteflag Specification 3. Data Model, "Message".
type Message struct {
	Code   wffield.MessageType
	Header []wffield.Field
	Body   []wffield.Field
}

// Get returns the value of the named field, searching the header before
// the body, or false if no field of that name exists.
func (m *Message) Get(name string) (string, bool) {
	for _, f := range m.Header {
		if f.Name() == name {
			return f.Value, true
		}
	}
	for _, f := range m.Body {
		if f.Name() == name {
			return f.Value, true
		}
	}
	return "", false
}

// Fields returns the header fields followed by the body fields, in wire order.
func (m *Message) Fields() []wffield.Field {
	fields := make([]wffield.Field, 0, len(m.Header)+len(m.Body))
	fields = append(fields, m.Header...)
	fields = append(fields, m.Body...)
	return fields
}

// Serialize concatenates every field's unencoded value, header then body.
//
// Whiteflag Specification 6.2 Textual serialisation.
func (m *Message) Serialize() string {
	var b strings.Builder
	for _, f := range m.Fields() {
		b.WriteString(f.Value)
	}
	return b.String()
}

// Encode builds the bit-buffer produced by appending every field in wire
// order, then crops it to the exact message bit length.
//
// Whiteflag Specification 4.6 Message builder, "Encoding emits the bit-buffer
// produced by §4.4's append loop, then crops to the exact message bit length".
func (m *Message) Encode() *wfbuffer.Buffer {
	buffer := wfbuffer.New(nil, 0)
	for _, f := range m.Fields() {
		buffer.AppendField(f)
	}
	buffer.Crop()
	return buffer
}

// EncodeHex encodes the message and hex-encodes the resulting bit-buffer.
func (m *Message) EncodeHex() string {
	return m.Encode().Hex()
}
