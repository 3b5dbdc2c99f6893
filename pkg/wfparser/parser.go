package wfparser

import "github.com/fennelLabs/whiteflag-go/pkg/wffield"

// Parser is the abstract reader the message builder is polymorphic over:
// one method to extract a field's unencoded value given its definition,
// one to report how many object-request pairs remain in the input.
//
// Whiteflag Specification 4.5 Parser trio.
type Parser interface {
	Parse(def wffield.Definition) (string, error)
	Remaining() int
}
