package wfcodec

import "github.com/fennelLabs/whiteflag-go/pkg/bitstring"

// encodeLatLong packs a signed decimal coordinate ("+30.79658") into a
// sign bit followed by the hex-encoded digits.
//
// Whiteflag Specification 4.2 Field encodings, "LAT / LONG".
func encodeLatLong(value string) []byte {
	digits := stripPunctuation(value)
	bitLength := 1 + len(digits)*4
	buf := encodeBDX(digits)

	switch value[0:1] {
	case "-":
		buf = bitstring.ShiftRight(buf, 1)
	case "+":
		buf = bitstring.ShiftRight(buf, 1)
		buf[0] |= 0x80
	}

	return bitstring.CropBits(buf, bitLength)
}

// decodeLatLong reverses encodeLatLong: the top bit of buffer gives the
// sign, the remainder decodes as HEX digits with a decimal point inserted
// five characters from the right.
func decodeLatLong(buffer []byte, bitLength int) (string, error) {
	sign := byte('-')
	if (buffer[0]>>7)&1 == 1 {
		sign = '+'
	}

	digits, err := decodeBDX(bitstring.ShiftLeft(buffer, 1), bitLength-1)
	if err != nil {
		return "", err
	}

	point := len(digits) - 5
	return string(sign) + digits[:point] + "." + digits[point:], nil
}
