package wfbuffer

import (
	"encoding/hex"
	"strings"

	"github.com/fennelLabs/whiteflag-go/pkg/bitstring"
	"github.com/fennelLabs/whiteflag-go/pkg/wffield"
)

// Buffer is a bit-length-aware byte buffer: a pair (data, bitLength) where
// data holds a left-aligned bit string of exactly bitLength bits.
//
// Whiteflag Specification 3. Data Model, "Bit-buffer".
type Buffer struct {
	data      []byte
	bitLength int
}

// New wraps an existing byte slice with an explicit bit length.
func New(data []byte, bitLength int) *Buffer {
	return &Buffer{data: data, bitLength: bitLength}
}

// FromBytes wraps a byte-aligned buffer, treating every bit as significant.
func FromBytes(data []byte) *Buffer {
	return New(data, len(data)*8)
}

// FromHex decodes a hexadecimal (optionally "0x"-prefixed) string into a
// byte-aligned Buffer.
//
// Whiteflag Specification 6.2 Textual serialisation.
func FromHex(value string) (*Buffer, error) {
	value = strings.TrimPrefix(strings.TrimPrefix(value, "0x"), "0X")
	data, err := hex.DecodeString(value)
	if err != nil {
		return nil, err
	}
	return FromBytes(data), nil
}

// BitLength returns the number of significant bits in the buffer.
func (b *Buffer) BitLength() int {
	return b.bitLength
}

// Bytes returns the underlying byte slice.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Hex hex-encodes the underlying byte slice.
func (b *Buffer) Hex() string {
	return hex.EncodeToString(b.data)
}

// Crop truncates the buffer to its declared bit length, zeroing the unused
// low bits of the last byte.
func (b *Buffer) Crop() []byte {
	b.data = bitstring.CropBits(b.data, b.bitLength)
	return b.data
}

// AppendField encodes a field's value according to its definition and
// appends the result.
//
// Whiteflag Specification 4.4 Whiteflag buffer, "append_field".
func (b *Buffer) AppendField(field wffield.Field) {
	encoded := field.Encode()
	b.Append(encoded, field.BitLength())
}

// Append concatenates bits bits of other onto the buffer.
func (b *Buffer) Append(other []byte, bits int) {
	data, length := bitstring.AppendBits(b.data, b.bitLength, other, bits)
	b.data = data
	b.bitLength = length
}

// ExtractMessageValue extracts the bits of a single field starting at
// startBit and decodes them per the field's encoding. For an unbounded
// field (bit_length == 0), it consumes every remaining bit of the buffer,
// rounded down to a whole number of the encoding's per-character bits.
//
// Whiteflag Specification 4.4 Whiteflag buffer, "extract_message_value".
func (b *Buffer) ExtractMessageValue(def wffield.Definition, startBit int) (string, error) {
	bitLength := def.BitLength()
	if bitLength < 1 {
		bitLength = b.bitLength - startBit
		if unit := def.Encoding.BitLength; unit > 0 {
			bitLength -= bitLength % unit
		}
	}

	fieldBuffer := bitstring.ExtractBits(b.data, b.bitLength, startBit, bitLength)
	return def.Encoding.Decode(fieldBuffer, bitLength)
}

// Decode walks field definitions sequentially from startBit, extracting
// and decoding each field and asserting that each definition's start byte
// matches the running byte cursor. It returns the bit cursor after the
// last field and the decoded fields.
//
// A start-byte/cursor mismatch is a programming error in the field
// catalogue, not a data error, and panics rather than returning an error.
//
// Whiteflag Specification 4.4 Whiteflag buffer, "decode"; 7. Error Handling
// Design, "Field-cursor mismatches during decode ... must fault loudly".
func (b *Buffer) Decode(defs []wffield.Definition, startBit int) (int, []wffield.Field, error) {
	if len(defs) < 1 {
		return 0, nil, ErrEmptyFieldDefinitions
	}

	bitCursor := startBit
	byteCursor := defs[0].StartByte

	fields := make([]wffield.Field, 0, len(defs))
	for _, def := range defs {
		if def.StartByte != byteCursor {
			panic("wfbuffer: field definition start byte does not match decode cursor")
		}

		value, err := b.ExtractMessageValue(def, bitCursor)
		if err != nil {
			return 0, nil, err
		}
		field := wffield.New(def, value)

		fields = append(fields, field)
		bitCursor += field.BitLength()
		byteCursor = def.EndByte
	}

	return bitCursor, fields, nil
}
