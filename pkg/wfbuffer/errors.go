// Package wfbuffer implements the Whiteflag bit-length-aware message
// buffer: a thin wrapper over pkg/bitstring that knows how to append
// encoded fields and extract+decode them back out by field definition.
//
// Whiteflag Specification 4.4 Whiteflag buffer.
package wfbuffer

import "errors"

// ErrEmptyFieldDefinitions is returned when Decode is called with no field
// definitions to walk.
var ErrEmptyFieldDefinitions = errors.New("wfbuffer: field definition list must not be empty")
