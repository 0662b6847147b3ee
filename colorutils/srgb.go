package colorutils

import "math"

// XYZ -> linear sRGB, D65.
var xyzToLinear = [3][3]float64{
	{3.2406, -1.5372, -0.4986},
	{-0.9689, 1.8758, 0.0415},
	{0.0557, -0.2040, 1.0570},
}

// linear sRGB -> XYZ, D65.
var linearToXyz = [3][3]float64{
	{0.4124564, 0.3575761, 0.1804375},
	{0.2126729, 0.7151522, 0.0721750},
	{0.0193339, 0.1191920, 0.9503041},
}

// SRGBGamma applies the sRGB transfer curve to a linear value.
func SRGBGamma(linear float64) float64 {
	if linear <= 0.0031308 {
		return 12.92 * linear
	}
	return 1.055*math.Pow(linear, 1.0/2.4) - 0.055
}

// SRGBInverseGamma linearizes a companded value in [0,1].
func SRGBInverseGamma(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func apply(m [3][3]float64, a, b, c float64) (float64, float64, float64) {
	return m[0][0]*a + m[0][1]*b + m[0][2]*c,
		m[1][0]*a + m[1][1]*b + m[1][2]*c,
		m[2][0]*a + m[2][1]*b + m[2][2]*c
}

// XyzToRgb converts an XYZ value to companded 8-bit sRGB. Out of gamut
// channels are clamped.
func XyzToRgb(xyz XYZ) RGB {
	r, g, b := apply(xyzToLinear, xyz.X, xyz.Y, xyz.Z)
	return RGB{
		R: clamp255(SRGBGamma(r) * 255),
		G: clamp255(SRGBGamma(g) * 255),
		B: clamp255(SRGBGamma(b) * 255),
	}
}

// RgbToXyz converts 8-bit sRGB to XYZ.
func RgbToXyz(rgb RGB) XYZ {
	x, y, z := apply(linearToXyz,
		SRGBInverseGamma(float64(rgb.R)/255),
		SRGBInverseGamma(float64(rgb.G)/255),
		SRGBInverseGamma(float64(rgb.B)/255))
	return XYZ{X: x, Y: y, Z: z}
}
