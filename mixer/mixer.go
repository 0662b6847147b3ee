// Package mixer combines weighted paints, either by averaging sRGB channels or
// with the Kubelka-Munk subtractive model on reflectance spectra.
package mixer

import (
	"math"

	"github.com/brandquad/pigment/colorutils"
	"github.com/pkg/errors"
)

// ReflectanceFloor is the smallest reflectance used for K/S. Zero would make
// the ratio infinite.
const ReflectanceFloor = 1e-6

// Paint is a color with a mixing ratio. Only ratios relative to the other
// paints in a mix are meaningful.
type Paint[T any] struct {
	Color T       `json:"color"`
	Ratio float64 `json:"ratio"`
}

func checkRatios[T any](paints []Paint[T]) (float64, error) {
	if len(paints) == 0 {
		return 0, colorutils.ErrEmptyInput
	}
	var total float64
	for i, p := range paints {
		if p.Ratio < 0 || math.IsNaN(p.Ratio) {
			return 0, errors.Wrapf(colorutils.ErrInvalidWeight, "paint %d has ratio %v", i, p.Ratio)
		}
		total += p.Ratio
	}
	if total == 0 || math.IsInf(total, 0) {
		return 0, errors.Wrapf(colorutils.ErrInvalidWeight, "ratios sum to %v", total)
	}
	return total, nil
}

// Normalize returns a copy of paints with ratios scaled to sum to 1.
func Normalize[T any](paints []Paint[T]) ([]Paint[T], error) {
	total, err := checkRatios(paints)
	if err != nil {
		return nil, err
	}
	out := make([]Paint[T], len(paints))
	for i, p := range paints {
		out[i] = Paint[T]{Color: p.Color, Ratio: p.Ratio / total}
	}
	return out, nil
}

// InterpolateMix averages the channels weighted by ratio and rounds half away
// from zero, so black and white 1:1 give #808080.
func InterpolateMix(paints ...Paint[colorutils.RGB]) (colorutils.RGB, error) {
	total, err := checkRatios(paints)
	if err != nil {
		return colorutils.RGB{}, err
	}
	var r, g, b float64
	for _, p := range paints {
		r += float64(p.Color.R) * p.Ratio
		g += float64(p.Color.G) * p.Ratio
		b += float64(p.Color.B) * p.Ratio
	}
	return colorutils.RGB{
		R: channel(r / total),
		G: channel(g / total),
		B: channel(b / total),
	}, nil
}

func channel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}

// ReflectanceToKS converts a reflectance sample to the absorption/scattering
// ratio K/S = (1-R)^2 / 2R. R is clamped to [ReflectanceFloor, 1].
func ReflectanceToKS(r float64) float64 {
	r = math.Max(ReflectanceFloor, math.Min(1, r))
	return (1 - r) * (1 - r) / (2 * r)
}

// KSToReflectance is the inverse of ReflectanceToKS.
func KSToReflectance(ks float64) float64 {
	if ks <= 0 {
		return 1
	}
	// 1 + ks - sqrt(ks^2 + 2ks), rationalized to avoid cancellation at large ks.
	return 1 / (1 + ks + math.Sqrt(ks*ks+2*ks))
}

// KubelkaMunkMix mixes n-sample spectra by summing ratio weighted K/S per
// sample. Ratios are used as given; pass ratios summing to 1 (see Normalize)
// for a physical mix.
func KubelkaMunkMix[S ~[]float64](paints []Paint[S], n int) (S, error) {
	if len(paints) == 0 {
		return nil, colorutils.ErrEmptyInput
	}
	if n <= 0 {
		return nil, errors.Wrapf(colorutils.ErrDimension, "wavelength count %d", n)
	}
	for i, p := range paints {
		if len(p.Color) != n {
			return nil, errors.Wrapf(colorutils.ErrDimension, "paint %d has %d samples, want %d", i, len(p.Color), n)
		}
		if p.Ratio < 0 || math.IsNaN(p.Ratio) {
			return nil, errors.Wrapf(colorutils.ErrInvalidWeight, "paint %d has ratio %v", i, p.Ratio)
		}
	}

	mixed := make(S, n)
	for i := range mixed {
		var ks float64
		for _, p := range paints {
			ks += ReflectanceToKS(p.Color[i]) * p.Ratio
		}
		mixed[i] = KSToReflectance(ks)
	}
	return mixed, nil
}
