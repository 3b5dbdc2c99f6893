package wfparser

import "github.com/fennelLabs/whiteflag-go/pkg/wffield"

// ValuesParser reads field values from a flat array of unencoded strings,
// consuming one value per Parse call, positional to the field-definition
// order the builder drives it with.
type ValuesParser struct {
	values []string
	index  int
}

// NewValuesParser builds a ValuesParser over values.
func NewValuesParser(values []string) *ValuesParser {
	return &ValuesParser{values: values}
}

// Parse returns the next value, validating it against def.
func (p *ValuesParser) Parse(def wffield.Definition) (string, error) {
	if p.index >= len(p.values) {
		return "", ErrOutOfValues
	}
	value := p.values[p.index]
	if err := def.Validate(value); err != nil {
		return "", err
	}
	p.index++
	return value, nil
}

// Remaining returns how many object-request pairs are left in the input,
// two values (ObjectType, ObjectTypeQuant) per pair.
func (p *ValuesParser) Remaining() int {
	return (len(p.values) - p.index) / 2
}
