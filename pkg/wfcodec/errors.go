// Package wfcodec implements the Whiteflag field encodings: the eight
// primitive bit-packings (UTF8, BIN, DEC, HEX, DATETIME, DURATION, LAT,
// LONG) that every field definition in pkg/wffield is built from.
//
// Whiteflag Specification 4.2 Field encodings.
package wfcodec

import "errors"

// Field encoding errors.
var (
	// ErrInvalidLength is returned when a fixed-length encoding's unencoded
	// value does not match the expected byte length.
	ErrInvalidLength = errors.New("wfcodec: value length does not match fixed encoding length")

	// ErrInvalidCharset is returned when a value contains characters outside
	// its encoding's charset.
	ErrInvalidCharset = errors.New("wfcodec: value does not match encoding charset")

	// ErrHexDecode is returned when a hexadecimal buffer contains a non-hex nibble.
	ErrHexDecode = errors.New("wfcodec: invalid hexadecimal digit")

	// ErrUTF8Decode is returned when a buffer does not decode as valid UTF-8
	// for a UTF8-encoded field.
	ErrUTF8Decode = errors.New("wfcodec: invalid utf-8 data")
)
