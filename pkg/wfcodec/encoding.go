package wfcodec

// Kind discriminates the eight Whiteflag field encodings.
type Kind int

const (
	Bin Kind = iota
	Dec
	Hex
	UTF8
	Datetime
	Duration
	Lat
	Long
)

const (
	bitBit     = 1
	quadBit    = 4
	octetBit   = 8
	datetimeBit = 56
	durationBit = 24
	latBit      = 29
	longBit     = 33
)

// Encoding describes one Whiteflag field encoding: its charset, the number
// of bits it packs per unencoded character (or, for fixed encodings, the
// whole field), and its fixed byte length, if any.
//
// Whiteflag Specification 3. Data Model, "Encoding descriptor".
type Encoding struct {
	Kind       Kind
	BitLength  int
	ByteLength int // 0 means variable-length
}

var encodings = map[Kind]Encoding{
	Bin:      {Kind: Bin, BitLength: bitBit},
	Dec:      {Kind: Dec, BitLength: quadBit},
	Hex:      {Kind: Hex, BitLength: quadBit},
	UTF8:     {Kind: UTF8, BitLength: octetBit},
	Datetime: {Kind: Datetime, BitLength: datetimeBit, ByteLength: 20},
	Duration: {Kind: Duration, BitLength: durationBit, ByteLength: 10},
	Lat:      {Kind: Lat, BitLength: latBit, ByteLength: 9},
	Long:     {Kind: Long, BitLength: longBit, ByteLength: 10},
}

// Of returns the Encoding descriptor for the given kind.
func Of(kind Kind) Encoding {
	return encodings[kind]
}

// IsFixedLength reports whether this encoding has a fixed byte length.
func (e Encoding) IsFixedLength() bool {
	return e.ByteLength != 0
}

// BitLengthOf returns the bit length of a field using this encoding, given
// the number of bytes (characters) in its unencoded value.
func (e Encoding) BitLengthOf(unencodedByteLength int) int {
	if e.IsFixedLength() {
		return e.BitLength
	}
	return unencodedByteLength * e.BitLength
}

// Validate checks value against this encoding's fixed length (if any) and charset.
func (e Encoding) Validate(value string) error {
	if e.IsFixedLength() && len(value) != e.ByteLength {
		return ErrInvalidLength
	}
	if !matchesCharset(e.Kind, value) {
		return ErrInvalidCharset
	}
	return nil
}

// Encode converts an unencoded field value to its compressed binary form.
//
// Whiteflag Specification 4.2 Field encodings.
func (e Encoding) Encode(value string) []byte {
	switch e.Kind {
	case UTF8:
		return []byte(value)
	case Bin:
		return encodeBinary(value)
	case Dec, Hex:
		return encodeBDX(value)
	case Datetime, Duration:
		return encodeBDX(stripPunctuation(value))
	case Lat, Long:
		return encodeLatLong(value)
	default:
		return nil
	}
}

// Decode converts a compressed binary buffer back to its unencoded field
// value, given the field's bit length.
func (e Encoding) Decode(buffer []byte, bitLength int) (string, error) {
	switch e.Kind {
	case UTF8:
		return decodeUTF8(buffer)
	case Bin:
		return decodeBinary(buffer, bitLength), nil
	case Dec, Hex:
		return decodeBDX(buffer, bitLength)
	case Datetime:
		digits, err := decodeBDX(buffer, bitLength)
		if err != nil {
			return "", err
		}
		return insertDatetimePunctuation(digits), nil
	case Duration:
		digits, err := decodeBDX(buffer, bitLength)
		if err != nil {
			return "", err
		}
		return insertDurationPunctuation(digits), nil
	case Lat, Long:
		return decodeLatLong(buffer, bitLength)
	default:
		return "", nil
	}
}
