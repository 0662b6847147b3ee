// Package spectral integrates 31-sample reflectance spectra into CIE XYZ and
// recovers spectra from XYZ through the reconstruction network.
package spectral

import (
	"database/sql/driver"
	"encoding/json"
	"math"
	"sync/atomic"

	"github.com/brandquad/pigment/colorutils"
	"github.com/brandquad/pigment/jsonscan"
	"github.com/brandquad/pigment/network"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

const (
	// Samples is the number of reflectance samples in a spectrum.
	Samples = 31
	// FirstWavelength is the wavelength of sample 0, in nm.
	FirstWavelength = 400
	// Step is the spacing between samples, in nm.
	Step = 10
)

const deltaLambda = float64(Step)

// k scales the integrals so that a perfect reflector has Y = 1.
var k = 1 / (floats.Sum(cieY[:]) * deltaLambda)

// Wavelength returns the wavelength in nm of sample i.
func Wavelength(i int) int {
	return FirstWavelength + Step*i
}

// Spectrum is a reflectance curve; sample i is the fraction of light
// reflected at Wavelength(i).
type Spectrum []float64

// Validate checks the sample count.
func (s Spectrum) Validate() error {
	if len(s) != Samples {
		return errors.Wrapf(colorutils.ErrDimension, "spectrum has %d samples, want %d", len(s), Samples)
	}
	return nil
}

// Scan implements sql.Scanner for JSON columns.
func (s *Spectrum) Scan(src interface{}) error {
	if err := jsonscan.JsonScan(src, (*[]float64)(s)); err != nil {
		return err
	}
	if *s == nil {
		return nil
	}
	return s.Validate()
}

// Value implements driver.Valuer.
func (s Spectrum) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal([]float64(s))
}

// SpectrumToXyz integrates s against the CIE 1931 matching functions.
// Samples are clamped to [0,1] first.
func SpectrumToXyz(s Spectrum) (colorutils.XYZ, error) {
	if err := s.Validate(); err != nil {
		return colorutils.XYZ{}, err
	}
	r := make([]float64, Samples)
	for i, v := range s {
		r[i] = math.Max(0, math.Min(1, v))
	}
	return colorutils.XYZ{
		X: k * floats.Dot(r, cieX[:]) * deltaLambda,
		Y: k * floats.Dot(r, cieY[:]) * deltaLambda,
		Z: k * floats.Dot(r, cieZ[:]) * deltaLambda,
	}, nil
}

// Reconstructor inverts the integration: it maps XYZ to a spectrum.
// *network.Model implements it.
type Reconstructor interface {
	Reconstruct(xyz colorutils.XYZ) []float64
}

type reconstructorHolder struct {
	r Reconstructor
}

var installed atomic.Pointer[reconstructorHolder]

// SetReconstructor replaces the embedded model for XyzToSpectrum. Passing
// nil restores the embedded model.
func SetReconstructor(r Reconstructor) {
	if r == nil {
		installed.Store(nil)
		return
	}
	installed.Store(&reconstructorHolder{r: r})
}

func reconstructor() (Reconstructor, error) {
	if h := installed.Load(); h != nil {
		return h.r, nil
	}
	return network.Default()
}

// XyzToSpectrum reconstructs a spectrum with the model network. The result
// is always Samples long with every value in [0,1].
func XyzToSpectrum(xyz colorutils.XYZ) (Spectrum, error) {
	r, err := reconstructor()
	if err != nil {
		return nil, err
	}
	s := Spectrum(r.Reconstruct(xyz))
	if err = s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// SpectrumToRgb converts s to 8-bit sRGB through XYZ.
func SpectrumToRgb(s Spectrum) (colorutils.RGB, error) {
	xyz, err := SpectrumToXyz(s)
	if err != nil {
		return colorutils.RGB{}, err
	}
	return colorutils.XyzToRgb(xyz), nil
}

const (
	// RoundTripMin and RoundTripMax bound the channels of InRoundTripGamut.
	RoundTripMin = 51
	RoundTripMax = 204
	// RoundTripTolerance is the per-channel error of a round trip inside
	// InRoundTripGamut.
	RoundTripTolerance = 10
)

// InRoundTripGamut reports whether SpectrumToRgb(RgbToSpectrum(rgb)) is
// expected within RoundTripTolerance of rgb on every channel. Saturated and
// near-white colors need reflectances above 1 and fall outside.
func InRoundTripGamut(rgb colorutils.RGB) bool {
	for _, c := range []uint8{rgb.R, rgb.G, rgb.B} {
		if c < RoundTripMin || c > RoundTripMax {
			return false
		}
	}
	return true
}

// RgbToSpectrum reconstructs a spectrum for an sRGB color through XYZ.
func RgbToSpectrum(rgb colorutils.RGB) (Spectrum, error) {
	return XyzToSpectrum(colorutils.RgbToXyz(rgb))
}
