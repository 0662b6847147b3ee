package pigment

import (
	"math"
	"strings"

	"github.com/brandquad/pigment/assets"
	"github.com/brandquad/pigment/colorutils"
	"github.com/brandquad/pigment/spectral"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDuplicateName reports two catalog paints that resolve to the same
// lookup key.
var ErrDuplicateName = errors.New("duplicate swatch name")

var swatchNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("pigment.swatch"))

type Catalog struct {
	swatches []*Swatch
	index    map[string]*Swatch
}

// LoadCatalog resolves the embedded paint catalog.
func LoadCatalog(c *Config) (*Catalog, error) {
	return NewCatalog(assets.Paints, c)
}

// NewCatalog resolves paints on a worker pool. Swatches keep the order of
// paints; names, base names and pigment codes must be unique after case
// folding.
func NewCatalog(paints []assets.Paint, c *Config) (*Catalog, error) {
	swatches := make([]*Swatch, len(paints))
	err := runBatch("Load catalog", len(paints), c, func(i int) (err error) {
		swatches[i], err = resolveSwatch(paints[i])
		return err
	})
	if err != nil {
		return nil, err
	}

	cat := &Catalog{
		swatches: swatches,
		index:    make(map[string]*Swatch, len(swatches)*2),
	}
	for _, s := range swatches {
		base, code := splitName(s.Name)
		keys := []string{foldName(s.Name)}
		if code != "" {
			keys = append(keys, foldName(base), foldName(code))
		}
		for _, key := range keys {
			if prev, ok := cat.index[key]; ok && prev != s {
				return nil, errors.Wrapf(ErrDuplicateName, "%q and %q share %q", prev.Name, s.Name, key)
			}
			cat.index[key] = s
		}
	}
	return cat, nil
}

func resolveSwatch(p assets.Paint) (*Swatch, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, errors.Wrap(ErrFormat, "paint without a name")
	}

	sources := 0
	for _, set := range []bool{len(p.Spectrum) > 0, len(p.Lab) > 0, len(p.Cmyk) > 0, p.Hex != ""} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return nil, errors.Wrapf(ErrFormat, "paint %q defines %d color sources, want 1", name, sources)
	}

	_, code := splitName(name)
	s := &Swatch{
		ID:   uuid.NewSHA1(swatchNamespace, []byte(foldName(name))).String(),
		Name: name,
		Code: code,
	}

	var err error
	switch {
	case len(p.Spectrum) > 0:
		s.Source = SourceSpectrum
		s.Spectrum = Spectrum(p.Spectrum)
		if s.XYZ, err = spectral.SpectrumToXyz(s.Spectrum); err != nil {
			return nil, errors.WithMessagef(err, "paint %q", name)
		}
		s.RGB = colorutils.XyzToRgb(s.XYZ)
	case len(p.Lab) > 0:
		lab, ok := p.LabComponents()
		if !ok {
			return nil, errors.Wrapf(ErrDimension, "paint %q has %d lab components", name, len(p.Lab))
		}
		s.Source = SourceLab
		s.XYZ = colorutils.LabToXyz(lab)
		s.RGB = colorutils.XyzToRgb(s.XYZ)
	case len(p.Cmyk) > 0:
		cmyk, ok := p.CmykComponents()
		if !ok {
			return nil, errors.Wrapf(ErrDimension, "paint %q has %d cmyk components", name, len(p.Cmyk))
		}
		s.Source = SourceCmyk
		s.RGB = colorutils.CmykToRgb(cmyk)
		s.XYZ = colorutils.RgbToXyz(s.RGB)
	default:
		if s.RGB, err = colorutils.HexToRgb(p.Hex); err != nil {
			return nil, errors.WithMessagef(err, "paint %q", name)
		}
		s.Source = SourceHex
		s.XYZ = colorutils.RgbToXyz(s.RGB)
	}
	s.Hex = colorutils.RgbToHex(s.RGB)

	if s.Spectrum == nil {
		if s.Spectrum, err = spectral.XyzToSpectrum(s.XYZ); err != nil {
			return nil, errors.WithMessagef(err, "paint %q", name)
		}
	}
	return s, nil
}

// Swatches returns the swatches in catalog order.
func (c *Catalog) Swatches() []*Swatch {
	return append([]*Swatch(nil), c.swatches...)
}

func (c *Catalog) Len() int {
	return len(c.swatches)
}

// Lookup finds a swatch by full name, by name without the pigment code or by
// the code alone, ignoring case.
func (c *Catalog) Lookup(name string) (*Swatch, bool) {
	if s, ok := c.index[foldName(name)]; ok {
		return s, true
	}
	if _, code := splitName(name); code != "" {
		s, ok := c.index[foldName(code)]
		return s, ok
	}
	return nil, false
}

// Nearest returns the swatch with the smallest CIEDE2000 distance to rgb, or
// nil for an empty catalog.
func (c *Catalog) Nearest(rgb RGB) (*Swatch, float64) {
	var best *Swatch
	bestDist := math.Inf(1)
	for _, s := range c.swatches {
		if d := colorutils.DeltaE(rgb, s.RGB); d < bestDist {
			best, bestDist = s, d
		}
	}
	return best, bestDist
}
