package wfcodec

import "github.com/fennelLabs/whiteflag-go/pkg/bitstring"

// encodeBinary packs a string of '0'/'1' characters one bit per character,
// left-aligned into bytes.
func encodeBinary(value string) []byte {
	buf := make([]byte, bitstring.ByteLength(len(value)))
	for i, r := range value {
		if r != '1' {
			continue
		}
		buf[i/8] |= 0x80 >> (i % 8)
	}
	return buf
}

// decodeBinary unpacks bitLength bits of buffer into a string of '0'/'1' characters.
func decodeBinary(buffer []byte, bitLength int) string {
	out := make([]byte, bitLength)
	for i := 0; i < bitLength; i++ {
		if (buffer[i/8]>>(7-i%8))&1 == 1 {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}
