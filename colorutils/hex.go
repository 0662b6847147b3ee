package colorutils

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// HexToRgb parses "#rrggbb" or "rrggbb". Digits are case-insensitive.
func HexToRgb(hex string) (RGB, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return RGB{}, errors.Wrapf(ErrFormat, "hex color %q: want 6 digits, got %d", hex, len(s))
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return RGB{}, errors.Wrapf(ErrFormat, "hex color %q: invalid digit %q", hex, s[i])
		}
	}
	parsed, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, errors.Wrapf(ErrFormat, "hex color %q: %v", hex, err)
	}
	return RGB{
		R: uint8(parsed >> 16 & 0xff),
		G: uint8(parsed >> 8 & 0xff),
		B: uint8(parsed & 0xff),
	}, nil
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// RgbToHex renders rgb as "#rrggbb" with lowercase digits.
func RgbToHex(rgb RGB) string {
	return toColorful(rgb).Hex()
}

func toColorful(rgb RGB) colorful.Color {
	return colorful.Color{
		R: float64(rgb.R) / 255,
		G: float64(rgb.G) / 255,
		B: float64(rgb.B) / 255,
	}
}

// DeltaE is the CIEDE2000 difference between two colors.
func DeltaE(a, b RGB) float64 {
	return toColorful(a).DistanceCIEDE2000(toColorful(b))
}
