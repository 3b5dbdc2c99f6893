package wfparser

import (
	"github.com/fennelLabs/whiteflag-go/pkg/wfbuffer"
	"github.com/fennelLabs/whiteflag-go/pkg/wffield"
)

// EncodedParser reads decoded field values out of an encoded
// wfbuffer.Buffer, advancing a bit cursor as it goes.
type EncodedParser struct {
	buffer *wfbuffer.Buffer
	cursor int
}

// NewEncodedParser builds an EncodedParser over buffer.
func NewEncodedParser(buffer *wfbuffer.Buffer) *EncodedParser {
	return &EncodedParser{buffer: buffer}
}

// Parse extracts and decodes the next field starting at the current bit cursor.
func (p *EncodedParser) Parse(def wffield.Definition) (string, error) {
	value, err := p.buffer.ExtractMessageValue(def, p.cursor)
	if err != nil {
		return "", err
	}

	bitLength := def.BitLength()
	if bitLength < 1 {
		bitLength = p.buffer.BitLength() - p.cursor
		if unit := def.Encoding.BitLength; unit > 0 {
			bitLength -= bitLength % unit
		}
	}
	p.cursor += bitLength

	return value, nil
}

// Remaining returns how many object-request pairs are left in the buffer,
// two 8-bit fields (ObjectType, ObjectTypeQuant) per pair.
func (p *EncodedParser) Remaining() int {
	return (p.buffer.BitLength() - p.cursor) / 16
}
