package pigment

import (
	"github.com/brandquad/pigment/spectral"
)

// SpectraToRgb converts stored spectra to sRGB on a worker pool. The result
// keeps the input order.
func SpectraToRgb(spectra []Spectrum, c *Config) ([]RGB, error) {
	out := make([]RGB, len(spectra))
	err := runBatch("Spectra to RGB", len(spectra), c, func(i int) (err error) {
		out[i], err = spectral.SpectrumToRgb(spectra[i])
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RgbToSpectra reconstructs a spectrum for every color on a worker pool.
func RgbToSpectra(colors []RGB, c *Config) ([]Spectrum, error) {
	out := make([]Spectrum, len(colors))
	err := runBatch("RGB to spectra", len(colors), c, func(i int) (err error) {
		out[i], err = spectral.RgbToSpectrum(colors[i])
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
