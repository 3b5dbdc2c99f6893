package wffield

import (
	"strconv"

	"github.com/fennelLabs/whiteflag-go/pkg/wfcodec"
)

func utf8(name string, start, end int) Definition {
	return Definition{Name: name, Encoding: wfcodec.Of(wfcodec.UTF8), StartByte: start, EndByte: end}
}
func bin(name string, start, end int) Definition {
	return Definition{Name: name, Encoding: wfcodec.Of(wfcodec.Bin), StartByte: start, EndByte: end}
}
func hexField(name string, start, end int) Definition {
	return Definition{Name: name, Encoding: wfcodec.Of(wfcodec.Hex), StartByte: start, EndByte: end}
}
func dec(name string, start, end int) Definition {
	return Definition{Name: name, Encoding: wfcodec.Of(wfcodec.Dec), StartByte: start, EndByte: end}
}
func datetime(name string, start, end int) Definition {
	return Definition{Name: name, Encoding: wfcodec.Of(wfcodec.Datetime), StartByte: start, EndByte: end}
}
func duration(name string, start, end int) Definition {
	return Definition{Name: name, Encoding: wfcodec.Of(wfcodec.Duration), StartByte: start, EndByte: end}
}
func lat(name string, start, end int) Definition {
	return Definition{Name: name, Encoding: wfcodec.Of(wfcodec.Lat), StartByte: start, EndByte: end}
}
func long(name string, start, end int) Definition {
	return Definition{Name: name, Encoding: wfcodec.Of(wfcodec.Long), StartByte: start, EndByte: end}
}

// Header holds the seven fixed, positional header fields common to every
// Whiteflag message.
//
// Whiteflag Specification 6.1 Wire format.
var Header = struct {
	Prefix              Definition
	Version             Definition
	EncryptionIndicator Definition
	DuressIndicator     Definition
	MessageCode         Definition
	ReferenceIndicator  Definition
	ReferencedMessage   Definition
	Definitions         []Definition
}{
	Prefix:              utf8("Prefix", 0, 2),
	Version:             utf8("Version", 2, 3),
	EncryptionIndicator: utf8("EncryptionIndicator", 3, 4),
	DuressIndicator:     bin("DuressIndicator", 4, 5),
	MessageCode:         utf8("MessageCode", 5, 6),
	ReferenceIndicator:  hexField("ReferenceIndicator", 6, 7),
	ReferencedMessage:   hexField("ReferencedMessage", 7, 71),
}

func init() {
	Header.Definitions = []Definition{
		Header.Prefix, Header.Version, Header.EncryptionIndicator, Header.DuressIndicator,
		Header.MessageCode, Header.ReferenceIndicator, Header.ReferencedMessage,
	}
}

// AuthenticationFields holds the body fields of an A message.
var AuthenticationFields = struct {
	VerificationMethod Definition
	VerificationData   Definition
}{
	VerificationMethod: hexField("VerificationMethod", 71, 72),
	VerificationData:   utf8("VerificationData", 72, 0),
}

// CryptoFields holds the body fields of a K message.
var CryptoFields = struct {
	CryptoDataType Definition
	CryptoData     Definition
}{
	CryptoDataType: hexField("CryptoDataType", 71, 73),
	CryptoData:     hexField("CryptoData", 73, 0),
}

// FreeTextFields holds the body field of an F message.
var FreeTextFields = struct {
	Text Definition
}{
	Text: utf8("Text", 71, 0),
}

// ResourceFields holds the body fields of an R message.
var ResourceFields = struct {
	ResourceMethod Definition
	ResourceData   Definition
}{
	ResourceMethod: hexField("ResourceMethod", 71, 72),
	ResourceData:   utf8("ResourceData", 72, 0),
}

// TestFields holds the single pseudo-code field prefixing a T message body.
var TestFields = struct {
	PseudoMessageCode Definition
}{
	PseudoMessageCode: utf8("PseudoMessageCode", 71, 72),
}

// Sign holds the nine Sign/Signal body fields shared by P, E, D, S, I, M and Q.
var Sign = struct {
	SubjectCode       Definition
	DateTime          Definition
	Duration          Definition
	ObjectType        Definition
	ObjectLatitude    Definition
	ObjectLongitude   Definition
	ObjectSizeDim1    Definition
	ObjectSizeDim2    Definition
	ObjectOrientation Definition
}{
	SubjectCode:       hexField("SubjectCode", 71, 73),
	DateTime:          datetime("DateTime", 73, 93),
	Duration:          duration("Duration", 93, 103),
	ObjectType:        hexField("ObjectType", 103, 105),
	ObjectLatitude:    lat("ObjectLatitude", 105, 114),
	ObjectLongitude:   long("ObjectLongitude", 114, 124),
	ObjectSizeDim1:    dec("ObjectSizeDim1", 124, 128),
	ObjectSizeDim2:    dec("ObjectSizeDim2", 128, 132),
	ObjectOrientation: dec("ObjectOrientation", 132, 135),
}

// requestObjectType and requestObjectTypeQuant are the templates the
// request-pair fields of a Q message are derived from.
//
// Whiteflag Specification 4.3 Field-definition catalogue, "Request".
var requestObjectType = hexField("ObjectType", 135, 137)
var requestObjectTypeQuant = dec("ObjectTypeQuant", 137, 139)

// BodyDefinitions returns the static body field definitions for a message
// of the given type (excluding, for Q, the variable-count request pairs —
// see RequestPairDefinitions).
//
// Whiteflag Specification 4.3 Field-definition catalogue.
func BodyDefinitions(mt MessageType) []Definition {
	switch mt {
	case Authentication:
		return []Definition{AuthenticationFields.VerificationMethod, AuthenticationFields.VerificationData}
	case Cryptographic:
		return []Definition{CryptoFields.CryptoDataType, CryptoFields.CryptoData}
	case FreeText:
		return []Definition{FreeTextFields.Text}
	case Resource:
		return []Definition{ResourceFields.ResourceMethod, ResourceFields.ResourceData}
	case Test:
		return []Definition{TestFields.PseudoMessageCode}
	default:
		if mt.IsSignSignal() {
			return []Definition{
				Sign.SubjectCode, Sign.DateTime, Sign.Duration, Sign.ObjectType,
				Sign.ObjectLatitude, Sign.ObjectLongitude, Sign.ObjectSizeDim1,
				Sign.ObjectSizeDim2, Sign.ObjectOrientation,
			}
		}
		return nil
	}
}

// RequestPairDefinitions synthesizes n request-pair field definitions
// ({ObjectType1, ObjectType1Quant}, {ObjectType2, ObjectType2Quant}, ...)
// starting at the byte offset following the Sign/Signal body.
func RequestPairDefinitions(n int) []Definition {
	defs := make([]Definition, 0, n*2)
	start := requestObjectType.StartByte
	otSize, _ := requestObjectType.ExpectedByteLength()
	oqSize, _ := requestObjectTypeQuant.ExpectedByteLength()

	for i := 1; i <= n; i++ {
		split := start + otSize
		end := split + oqSize
		defs = append(defs,
			requestObjectType.withRange(objectTypeName(i), start, split),
			requestObjectTypeQuant.withRange(objectTypeQuantName(i), split, end),
		)
		start = end
	}
	return defs
}

func objectTypeName(n int) string {
	return "ObjectType" + strconv.Itoa(n)
}

func objectTypeQuantName(n int) string {
	return "ObjectType" + strconv.Itoa(n) + "Quant"
}
