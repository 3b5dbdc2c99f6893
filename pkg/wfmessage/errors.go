// Package wfmessage assembles a Whiteflag message's header and body fields
// from any of the three parser backends in pkg/wfparser, and serializes or
// encodes the result back out. It is the single caller-facing entry point
// of the codec: pkg/wfmessage.Codec wraps the pure builder with the
// optional logging the rest of the stack carries.
//
// Whiteflag Specification 4.6 Message builder.
package wfmessage

import "errors"

// Builder errors.
var (
	// ErrShortHeader is returned when a message has fewer than the seven
	// fixed header fields.
	ErrShortHeader = errors.New("wfmessage: header shorter than seven fields")

	// ErrNotEncrypted denotes a message whose EncryptionIndicator selects
	// method 0. Codec.EncodeAndEncrypt does not return it: it passes such a
	// message through unencrypted.
	ErrNotEncrypted = errors.New("wfmessage: message is not encrypted")
)
