package wfmessage

import (
	"fmt"

	"github.com/fennelLabs/whiteflag-go/pkg/wfbuffer"
	"github.com/fennelLabs/whiteflag-go/pkg/wffield"
	"github.com/fennelLabs/whiteflag-go/pkg/wfparser"
)

// Compile drives p through the header, body, and any message-type-specific
// extension, yielding an assembled Message. It is polymorphic over the
// parser backend: the same steps apply whether p reads from a field-value
// array, a serialized string, or an encoded bit-buffer.
//
// State machine: Start -> HeaderParsed -> (T? PseudoParsed) -> BodyParsed ->
// (Q? RequestsParsed) -> Complete.
//
// Whiteflag Specification 4.6 Message builder.
func Compile(p wfparser.Parser) (*Message, error) {
	header, err := parseFields(p, wffield.Header.Definitions)
	if err != nil {
		return nil, fmt.Errorf("wfmessage: header: %w", err)
	}

	codeValue := header[4].Value // MessageCode is the fifth header field
	code, err := wffield.MessageTypeFromCode(codeValue)
	if err != nil {
		return nil, fmt.Errorf("wfmessage: %w", err)
	}

	body, err := parseFields(p, wffield.BodyDefinitions(code))
	if err != nil {
		return nil, fmt.Errorf("wfmessage: body: %w", err)
	}

	if code == wffield.Test {
		pseudoCode, err := wffield.MessageTypeFromCode(body[0].Value)
		if err != nil {
			return nil, fmt.Errorf("wfmessage: pseudo message code: %w", err)
		}
		pseudoBody, err := parseFields(p, wffield.BodyDefinitions(pseudoCode))
		if err != nil {
			return nil, fmt.Errorf("wfmessage: pseudo body: %w", err)
		}
		body = append(body, pseudoBody...)
	}

	if code == wffield.Request {
		pairs := p.Remaining()
		requestFields, err := parseFields(p, wffield.RequestPairDefinitions(pairs))
		if err != nil {
			return nil, fmt.Errorf("wfmessage: request pairs: %w", err)
		}
		body = append(body, requestFields...)
	}

	return &Message{Code: code, Header: header, Body: body}, nil
}

// parseFields drives p over defs in order, turning each into a Field.
func parseFields(p wfparser.Parser, defs []wffield.Definition) ([]wffield.Field, error) {
	fields := make([]wffield.Field, 0, len(defs))
	for _, def := range defs {
		value, err := p.Parse(def)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", def.Name, err)
		}
		fields = append(fields, wffield.New(def, value))
	}
	return fields, nil
}

// CompileValues compiles a Message from a flat array of unencoded field
// values, positional to the header and body definitions.
func CompileValues(values []string) (*Message, error) {
	if len(values) < len(wffield.Header.Definitions) {
		return nil, ErrShortHeader
	}
	return Compile(wfparser.NewValuesParser(values))
}

// CompileSerialized compiles a Message from its textual serialisation.
//
// Whiteflag Specification 6.2 Textual serialisation.
func CompileSerialized(message string) (*Message, error) {
	return Compile(wfparser.NewSerializedParser(message))
}

// CompileEncoded compiles a Message from an encoded bit-buffer.
func CompileEncoded(buffer *wfbuffer.Buffer) (*Message, error) {
	return Compile(wfparser.NewEncodedParser(buffer))
}
