package wffield

// MessageType is the single uppercase letter identifying the functional
// type of a Whiteflag message.
//
// Whiteflag Specification 3. Data Model, "Message type".
type MessageType byte

const (
	Authentication   MessageType = 'A'
	Cryptographic    MessageType = 'K'
	Test             MessageType = 'T'
	Resource         MessageType = 'R'
	FreeText         MessageType = 'F'
	Protective       MessageType = 'P'
	Emergency        MessageType = 'E'
	Danger           MessageType = 'D'
	Status           MessageType = 'S'
	Infrastructure   MessageType = 'I'
	Mission          MessageType = 'M'
	Request          MessageType = 'Q'
)

// signSignalCodes are the message codes that share the Sign/Signal body layout.
var signSignalCodes = map[MessageType]bool{
	Protective: true, Emergency: true, Danger: true, Status: true,
	Infrastructure: true, Mission: true, Request: true,
}

// MessageTypeFromCode parses a single-character MessageCode field value
// into a MessageType, validating that it is one of the twelve defined codes.
func MessageTypeFromCode(code string) (MessageType, error) {
	if len(code) != 1 {
		return 0, ErrUnknownMessageCode
	}
	mt := MessageType(code[0])
	switch mt {
	case Authentication, Cryptographic, Test, Resource, FreeText,
		Protective, Emergency, Danger, Status, Infrastructure, Mission, Request:
		return mt, nil
	default:
		return 0, ErrUnknownMessageCode
	}
}

// String returns the single-character MessageCode field value.
func (mt MessageType) String() string {
	return string(rune(mt))
}

// IsSignSignal reports whether this message type uses the nine-field
// Sign/Signal body layout (P, E, D, S, I, M, Q).
func (mt MessageType) IsSignSignal() bool {
	return signSignalCodes[mt]
}
