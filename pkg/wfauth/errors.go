// Package wfauth implements the Whiteflag authentication token: the
// pre-shared-secret construction used to produce the VerificationData field
// of an A2 authentication message.
//
// Whiteflag Specification 4.8 Auth token.
package wfauth

import "errors"

// ErrUnknownMethod is returned for an authentication method code outside {1, 2}.
var ErrUnknownMethod = errors.New("wfauth: unknown authentication method")
