package wffield

import "github.com/fennelLabs/whiteflag-go/pkg/wfcodec"

// Definition is a static field definition: its name, encoding, and byte
// range within the message's textual serialisation. EndByte of 0 denotes
// "to end of message" — only the terminal field of a message body may be
// unbounded.
//
// Whiteflag Specification 3. Data Model, "Field definition".
type Definition struct {
	Name      string
	Encoding  wfcodec.Encoding
	StartByte int
	EndByte   int
}

// ExpectedByteLength returns the fixed unencoded byte length of this
// field, if bounded.
func (d Definition) ExpectedByteLength() (int, bool) {
	if d.EndByte > 0 && d.EndByte > d.StartByte {
		return d.EndByte - d.StartByte, true
	}
	return 0, false
}

// BitLength returns the bit length of the compressed encoded field, given
// its fixed byte length (0 for unbounded fields, a sentinel meaning
// "consume the rest of the buffer").
func (d Definition) BitLength() int {
	n, _ := d.ExpectedByteLength()
	return d.Encoding.BitLengthOf(n)
}

// Validate checks an unencoded value against this field's byte length (if
// fixed) and encoding charset.
//
// Whiteflag Specification 7. Error Handling Design, "InvalidLength", "InvalidCharset".
func (d Definition) Validate(value string) error {
	if n, ok := d.ExpectedByteLength(); ok && len(value) != n {
		return wfcodec.ErrInvalidLength
	}
	return d.Encoding.Validate(value)
}

// Encode converts an unencoded value to its compressed binary form.
func (d Definition) Encode(value string) []byte {
	return d.Encoding.Encode(value)
}

// Decode converts a compressed binary buffer of this field's bit length
// back to its unencoded value.
func (d Definition) Decode(data []byte) (string, error) {
	return d.Encoding.Decode(data, d.BitLength())
}

// withRange returns a copy of d positioned at a new byte range, used to
// synthesize the repeating request-pair field definitions (§4.3, "Request").
func (d Definition) withRange(name string, start, end int) Definition {
	d.Name = name
	d.StartByte = start
	d.EndByte = end
	return d
}
