// Package colorutils holds the numeric conversions between hex strings, sRGB,
// CMY(K), CIELAB and CIE XYZ.
package colorutils

import "math"

// RGB is an 8-bit sRGB color.
type RGB struct {
	R, G, B uint8
}

// CMY channels are in [0,1].
type CMY struct {
	C, M, Y float64
}

// CMYK channels are percentages in [0,100].
type CMYK struct {
	C, M, Y, K float64
}

// XYZ is a CIE 1931 tristimulus value with Y of the reference white near 1.
type XYZ struct {
	X, Y, Z float64
}

// Lab is a CIELAB value relative to D65.
type Lab struct {
	L, A, B float64
}

// D65 reference white.
var D65 = XYZ{X: 0.95047, Y: 1.00000, Z: 1.08883}

// clamp255 rounds v to the nearest integer and clamps it to [0,255].
func clamp255(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}

// RgbToCmy converts an RGB color value to CMY
func RgbToCmy(rgb RGB) CMY {
	return CMY{
		C: 1 - float64(rgb.R)/255,
		M: 1 - float64(rgb.G)/255,
		Y: 1 - float64(rgb.B)/255,
	}
}

// CmyToRgb converts a CMY color value to RGB
func CmyToRgb(cmy CMY) RGB {
	return RGB{
		R: clamp255((1 - cmy.C) * 255),
		G: clamp255((1 - cmy.M) * 255),
		B: clamp255((1 - cmy.Y) * 255),
	}
}

// CmykToRgb converts a CMYK color value to RGB
func CmykToRgb(cmyk CMYK) RGB {
	k := 1 - cmyk.K/100
	return RGB{
		R: clamp255(255.0 * (1 - cmyk.C/100) * k),
		G: clamp255(255.0 * (1 - cmyk.M/100) * k),
		B: clamp255(255.0 * (1 - cmyk.Y/100) * k),
	}
}

// LabToXyz converts a LAB color value to XYZ
func LabToXyz(lab Lab) XYZ {
	var y = (lab.L + 16) / 116
	var x = lab.A/500 + y
	var z = y - lab.B/200

	return XYZ{
		X: D65.X * labInverse(x),
		Y: D65.Y * labInverse(y),
		Z: D65.Z * labInverse(z),
	}
}

func labInverse(t float64) float64 {
	if t*t*t > 0.008856 {
		return t * t * t
	}
	return (t - 16.0/116) / 7.787
}

// LabToRgb converts a LAB color value to RGB
func LabToRgb(lab Lab) RGB {
	return XyzToRgb(LabToXyz(lab))
}
