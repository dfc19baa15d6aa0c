package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// HexIV renders an IV as 32 lowercase hex characters, two per byte.
func HexIV(iv [IVBytes]byte) string { return hex.EncodeToString(iv[:]) }

// ParseIV is the inverse of HexIV. Upper-case hex is rejected since the wire
// format is lowercase only.
func ParseIV(s string) (iv [IVBytes]byte, err error) {
	if len(s) != 2*IVBytes {
		return iv, fmt.Errorf("%w: iv must be %d hex chars, got %d", ErrMalformedEnvelope, 2*IVBytes, len(s))
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return iv, fmt.Errorf("%w: iv is not lowercase hex", ErrMalformedEnvelope)
		}
	}
	if _, err := hex.Decode(iv[:], []byte(s)); err != nil {
		return iv, fmt.Errorf("%w: iv: %v", ErrMalformedEnvelope, err)
	}
	return iv, nil
}
