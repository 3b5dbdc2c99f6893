package wfcodec

import "regexp"

// Charsets accept one unencoded character (or, for DATETIME/DURATION/LAT/LONG,
// the whole fixed-length value) of a given encoding.
//
// Whiteflag Specification 4.2 Field encodings, 4.3 Field-definition catalogue.
var charsets = map[Kind]*regexp.Regexp{
	Bin:      regexp.MustCompile(`^[01]$`),
	Dec:      regexp.MustCompile(`^[0-9]$`),
	Hex:      regexp.MustCompile(`^[a-fA-F0-9]$`),
	UTF8:     regexp.MustCompile(`^[\x00-\x7F]$`),
	Datetime: regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}T[0-9]{2}:[0-9]{2}:[0-9]{2}Z$`),
	Duration: regexp.MustCompile(`^P[0-9]{2}D[0-9]{2}H[0-9]{2}M$`),
	Lat:      regexp.MustCompile(`^[+-][0-9]{2}\.[0-9]{5}$`),
	Long:     regexp.MustCompile(`^[+-][0-9]{3}\.[0-9]{5}$`),
}

// matchesCharset reports whether value is valid for the given kind. For the
// per-character charsets (BIN, DEC, HEX, UTF8) every character of value
// must match individually; the fixed-form charsets (DATETIME, DURATION,
// LAT, LONG) match the value as a whole.
func matchesCharset(kind Kind, value string) bool {
	rx := charsets[kind]
	switch kind {
	case Bin, Dec, Hex, UTF8:
		for _, r := range value {
			if !rx.MatchString(string(r)) {
				return false
			}
		}
		return true
	default:
		return rx.MatchString(value)
	}
}
