package vbios

import (
	"encoding/hex"
	"fmt"
)

// HexView is the lowercase hexadecimal rendering of a ROM image. Every image
// byte maps to exactly two digits, so the view is twice the image length and
// byte boundaries sit at even digit indices. All offsets reported by the
// detector are HexView coordinates.
type HexView string

// Encode renders raw image bytes as a HexView.
func Encode(image []byte) HexView {
	return HexView(hex.EncodeToString(image))
}

// Decode converts the whole view back into raw bytes.
// Decode(Encode(x)) == x for every x.
func (v HexView) Decode() ([]byte, error) {
	return decodeDigits(string(v))
}

// DecodeRange converts the half-open digit range [start, end) back into raw
// bytes. The result is freshly allocated and shares no storage with the view.
func (v HexView) DecodeRange(start, end int) ([]byte, error) {
	if start < 0 || end > len(v) || start > end {
		return nil, fmt.Errorf("%w: range [%d, %d) outside view of %d digits", ErrMalformedHex, start, end, len(v))
	}
	return decodeDigits(string(v)[start:end])
}

func decodeDigits(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd digit count %d", ErrMalformedHex, len(s))
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return nil, fmt.Errorf("%w: %q at digit %d", ErrMalformedHex, s[i], i)
		}
	}
	out, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHex, err)
	}
	return out, nil
}

// isHexDigit accepts the lowercase digit alphabet the view is built from.
func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f'
}
