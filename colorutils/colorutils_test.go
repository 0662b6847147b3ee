package colorutils

import (
	"fmt"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToRgb(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"#000000", RGB{0, 0, 0}},
		{"#ffffff", RGB{255, 255, 255}},
		{"ff8000", RGB{255, 128, 0}},
		{"#FFE8E4", RGB{255, 232, 228}},
		{"#0a0B0c", RGB{10, 11, 12}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := HexToRgb(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHexToRgbMalformed(t *testing.T) {
	for _, in := range []string{"", "#", "#fff", "#12345", "#1234567", "#gg0000", "12 456", "#-12345", "##123456", "0x1234"} {
		t.Run(in, func(t *testing.T) {
			_, err := HexToRgb(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrFormat), "got %v", err)
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for v := 0; v < 1<<24; v += 0x010307 {
		h := fmt.Sprintf("#%06x", v)
		assert.Equal(t, h, RgbToHex(must.M1(HexToRgb(h))))
	}
}

func TestRgbToHex(t *testing.T) {
	assert.Equal(t, "#000000", RgbToHex(RGB{}))
	assert.Equal(t, "#ff7f01", RgbToHex(RGB{255, 127, 1}))
}

func TestCmyRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 51 {
				rgb := RGB{uint8(r), uint8(g), uint8(b)}
				require.Equal(t, rgb, CmyToRgb(RgbToCmy(rgb)))
			}
		}
	}
}

func TestRgbToCmy(t *testing.T) {
	cmy := RgbToCmy(RGB{255, 0, 51})
	assert.InDelta(t, 0.0, cmy.C, 1e-12)
	assert.InDelta(t, 1.0, cmy.M, 1e-12)
	assert.InDelta(t, 0.8, cmy.Y, 1e-12)
}

func TestCmyToRgbClamps(t *testing.T) {
	assert.Equal(t, RGB{255, 0, 128}, CmyToRgb(CMY{C: -0.5, M: 1.5, Y: 0.498}))
}

func TestCmykToRgb(t *testing.T) {
	assert.Equal(t, RGB{255, 255, 255}, CmykToRgb(CMYK{}))
	assert.Equal(t, RGB{0, 0, 0}, CmykToRgb(CMYK{K: 100}))
	assert.Equal(t, RGB{0, 255, 255}, CmykToRgb(CMYK{C: 100}))
	assert.Equal(t, RGB{64, 128, 128}, CmykToRgb(CMYK{C: 50, K: 50}))
}

func TestXyzToRgb(t *testing.T) {
	assert.Equal(t, RGB{0, 0, 0}, XyzToRgb(XYZ{}))
	assert.Equal(t, RGB{255, 255, 255}, XyzToRgb(D65))
	// Strongly out of gamut values clamp instead of wrapping.
	assert.Equal(t, RGB{255, 0, 255}, XyzToRgb(XYZ{X: 5, Y: 0, Z: 5}))
}

func TestRgbToXyz(t *testing.T) {
	white := RgbToXyz(RGB{255, 255, 255})
	assert.InDelta(t, 0.95047, white.X, 1e-6)
	assert.InDelta(t, 1.0, white.Y, 1e-6)
	assert.InDelta(t, 1.08883, white.Z, 1e-6)

	red := RgbToXyz(RGB{255, 0, 0})
	assert.InDelta(t, 0.4124564, red.X, 1e-9)
	assert.InDelta(t, 0.2126729, red.Y, 1e-9)
	assert.InDelta(t, 0.0193339, red.Z, 1e-9)
}

func TestXyzRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				rgb := RGB{uint8(r), uint8(g), uint8(b)}
				got := XyzToRgb(RgbToXyz(rgb))
				assert.InDelta(t, float64(rgb.R), float64(got.R), 1)
				assert.InDelta(t, float64(rgb.G), float64(got.G), 1)
				assert.InDelta(t, float64(rgb.B), float64(got.B), 1)
			}
		}
	}
}

func TestGamma(t *testing.T) {
	for _, v := range []float64{0, 0.001, 0.003, 0.04, 0.2, 0.5, 0.9, 1} {
		assert.InDelta(t, v, SRGBInverseGamma(SRGBGamma(v)), 1e-9)
	}
}

func TestLabToRgb(t *testing.T) {
	assert.Equal(t, RGB{255, 255, 255}, LabToRgb(Lab{L: 100}))
	assert.Equal(t, RGB{0, 0, 0}, LabToRgb(Lab{}))
	gray := LabToRgb(Lab{L: 53.585})
	assert.InDelta(t, 128, float64(gray.R), 1)
	assert.Equal(t, gray.R, gray.G)
	assert.Equal(t, gray.G, gray.B)
}

func TestDeltaE(t *testing.T) {
	red := RGB{255, 0, 0}
	assert.Zero(t, DeltaE(red, red))
	near := DeltaE(red, RGB{250, 5, 5})
	far := DeltaE(red, RGB{0, 0, 255})
	assert.Less(t, near, far)
	assert.InDelta(t, DeltaE(red, RGB{0, 255, 0}), DeltaE(RGB{0, 255, 0}, red), 1e-9)
}
