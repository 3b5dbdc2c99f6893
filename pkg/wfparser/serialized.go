package wfparser

import "github.com/fennelLabs/whiteflag-go/pkg/wffield"

// SerializedParser reads field values as substrings of a single serialized
// message string, using each definition's [StartByte, EndByte) byte range.
// An unbounded terminal field consumes the remainder of the string.
type SerializedParser struct {
	message  string
	lastByte int
}

// NewSerializedParser builds a SerializedParser over message.
func NewSerializedParser(message string) *SerializedParser {
	return &SerializedParser{message: message}
}

// Parse returns the substring of message for def's byte range.
func (p *SerializedParser) Parse(def wffield.Definition) (string, error) {
	if n, ok := def.ExpectedByteLength(); ok {
		end := def.StartByte + n
		if end > len(p.message) {
			return "", ErrShortMessage
		}
		p.lastByte = end
		return p.message[def.StartByte:end], nil
	}

	if def.StartByte > len(p.message) {
		return "", ErrShortMessage
	}
	p.lastByte = len(p.message)
	return p.message[def.StartByte:], nil
}

// Remaining returns how many object-request pairs are left in the message,
// two 2-character fields (ObjectType, ObjectTypeQuant) per pair.
func (p *SerializedParser) Remaining() int {
	return (len(p.message) - p.lastByte) / 4
}
