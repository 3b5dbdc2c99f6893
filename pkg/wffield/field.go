package wffield

// Field pairs a definition with its unencoded textual value.
//
// Whiteflag Specification 3. Data Model, "Field".
type Field struct {
	Definition Definition
	Value      string
}

// New builds a field from a definition and its unencoded value.
func New(def Definition, value string) Field {
	return Field{Definition: def, Value: value}
}

// Name returns the field's name.
func (f Field) Name() string {
	return f.Definition.Name
}

// ByteLength returns the unencoded byte length of this field's value: the
// definition's fixed length if bounded, else the literal value length.
//
// Whiteflag Specification 3. Data Model, "Field".
func (f Field) ByteLength() int {
	if n, ok := f.Definition.ExpectedByteLength(); ok {
		return n
	}
	return len(f.Value)
}

// BitLength returns the bit length of this field's compressed encoded form.
func (f Field) BitLength() int {
	return f.Definition.Encoding.BitLengthOf(f.ByteLength())
}

// Encode converts this field's value to its compressed binary form.
func (f Field) Encode() []byte {
	return f.Definition.Encode(f.Value)
}
