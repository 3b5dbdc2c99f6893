// Package wfparser implements the three Whiteflag field parsers — reading
// field values from a values array, a serialized string, or an encoded
// buffer — behind one common interface consumed by the message builder.
//
// Whiteflag Specification 4.5 Parser trio; 9. Design Notes, "Uniform
// abstract reader with three backends".
package wfparser

import "errors"

// Parser errors.
var (
	// ErrOutOfValues is returned when a ValuesParser is asked to parse past the end of its input array.
	ErrOutOfValues = errors.New("wfparser: no more values to parse")

	// ErrShortMessage is returned when a SerializedParser's input string is shorter than a field definition requires.
	ErrShortMessage = errors.New("wfparser: serialized message is shorter than the field definition requires")
)
