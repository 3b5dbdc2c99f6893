// Package wffield implements the Whiteflag field-definition catalogue and
// the Field value type: the static, per-message-code table of named fields
// (byte ranges, encodings, charsets) that the message parser walks.
//
// Whiteflag Specification 4.3 Field-definition catalogue.
package wffield

import "errors"

// ErrUnknownMessageCode is returned when a message code is not one of the
// twelve defined Whiteflag message types.
var ErrUnknownMessageCode = errors.New("wffield: unknown message code")
