package wfcodec

import (
	"strings"
	"unicode/utf8"
)

// stripPunctuation removes every character other than the decimal digits,
// leaving only the digits of a DATETIME, DURATION, LAT, or LONG value to be
// nibble-packed.
func stripPunctuation(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// insertDatetimePunctuation reinserts the ISO-8601 separators of a DATETIME
// value at their fixed offsets.
//
// Whiteflag Specification 4.2 Field encodings, "DATETIME".
func insertDatetimePunctuation(digits string) string {
	return insertAt(digits, []punctAt{
		{4, '-'}, {7, '-'}, {10, 'T'}, {13, ':'}, {16, ':'}, {19, 'Z'},
	})
}

// insertDurationPunctuation reinserts the ISO-8601 duration markers of a
// DURATION value at their fixed offsets.
//
// Whiteflag Specification 4.2 Field encodings, "DURATION".
func insertDurationPunctuation(digits string) string {
	return insertAt(digits, []punctAt{
		{0, 'P'}, {3, 'D'}, {6, 'H'}, {9, 'M'},
	})
}

type punctAt struct {
	offset int
	char   byte
}

// insertAt inserts each marker at its offset in the final, resulting
// string, mirroring successive String::insert calls in the original
// implementation (each offset already accounts for the markers inserted
// before it).
func insertAt(digits string, marks []punctAt) string {
	var b strings.Builder
	b.Grow(len(digits) + len(marks))

	digitIdx := 0
	inserted := 0
	for _, m := range marks {
		digitsBeforeMark := m.offset - inserted
		b.WriteString(digits[digitIdx:digitsBeforeMark])
		digitIdx = digitsBeforeMark
		b.WriteByte(m.char)
		inserted++
	}
	b.WriteString(digits[digitIdx:])
	return b.String()
}

func decodeUTF8(buffer []byte) (string, error) {
	if !utf8.Valid(buffer) {
		return "", ErrUTF8Decode
	}
	return string(buffer), nil
}
