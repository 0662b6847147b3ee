package pigment

import (
	"image/color"

	"github.com/brandquad/pigment/spectral"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotSeries is one curve of a spectrum plot, drawn in Color.
type PlotSeries struct {
	Name     string
	Spectrum Spectrum
	Color    RGB
}

// SeriesOf plots a swatch in its own color.
func SeriesOf(s *Swatch) PlotSeries {
	return PlotSeries{Name: s.Name, Spectrum: s.Spectrum, Color: s.RGB}
}

// PlotSpectra draws reflectance over wavelength and saves the plot to
// filename. The image format follows the extension (png, svg, pdf, ...).
func PlotSpectra(filename, title string, series ...PlotSeries) error {
	if len(series) == 0 {
		return ErrEmptyInput
	}

	p := plot.New()
	p.Title.Text = title

	p.X.Label.Text = "wavelength, nm"
	p.X.Min = float64(spectral.Wavelength(0))
	p.X.Max = float64(spectral.Wavelength(spectral.Samples - 1))

	p.Y.Label.Text = "reflectance"
	p.Y.Min = 0
	p.Y.Max = 1.05

	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for _, s := range series {
		if err := s.Spectrum.Validate(); err != nil {
			return errors.WithMessagef(err, "series %q", s.Name)
		}
		pts := make(plotter.XYs, len(s.Spectrum))
		for i, v := range s.Spectrum {
			pts[i].X = float64(spectral.Wavelength(i))
			pts[i].Y = v
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return errors.Wrapf(err, "series %q", s.Name)
		}
		line.Color = color.NRGBA{R: s.Color.R, G: s.Color.G, B: s.Color.B, A: 255}
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}

	if err := p.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
		return errors.Wrapf(err, "save %s", filename)
	}
	return nil
}
