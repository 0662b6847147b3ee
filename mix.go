package pigment

import (
	"github.com/brandquad/pigment/colorutils"
	"github.com/brandquad/pigment/mixer"
	"github.com/brandquad/pigment/spectral"
	"github.com/pkg/errors"
)

// LinearMix averages sRGB channels by ratio.
func LinearMix(paints ...mixer.Paint[RGB]) (RGB, error) {
	return mixer.InterpolateMix(paints...)
}

// RealisticMix mixes sRGB colors as pigments: every color is reconstructed to
// a spectrum, the spectra are mixed with Kubelka-Munk using normalized ratios
// and the result is integrated back to sRGB.
func RealisticMix(paints ...mixer.Paint[RGB]) (RGB, error) {
	normalized, err := mixer.Normalize(paints)
	if err != nil {
		return RGB{}, err
	}
	spectra := make([]mixer.Paint[Spectrum], len(normalized))
	for i, p := range normalized {
		s, err := spectral.RgbToSpectrum(p.Color)
		if err != nil {
			return RGB{}, err
		}
		spectra[i] = mixer.Paint[Spectrum]{Color: s, Ratio: p.Ratio}
	}
	mixed, err := mixer.KubelkaMunkMix(spectra, spectral.Samples)
	if err != nil {
		return RGB{}, err
	}
	return spectral.SpectrumToRgb(mixed)
}

// MixHex is RealisticMix for hex strings with parallel ratios.
func MixHex(hexes []string, ratios []float64) (RGB, error) {
	if len(hexes) != len(ratios) {
		return RGB{}, errors.Wrapf(ErrDimension, "%d colors, %d ratios", len(hexes), len(ratios))
	}
	paints := make([]mixer.Paint[RGB], len(hexes))
	for i, h := range hexes {
		rgb, err := colorutils.HexToRgb(h)
		if err != nil {
			return RGB{}, err
		}
		paints[i] = mixer.Paint[RGB]{Color: rgb, Ratio: ratios[i]}
	}
	return RealisticMix(paints...)
}
