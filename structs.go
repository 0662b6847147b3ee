package pigment

type SwatchSource string

const (
	SourceSpectrum SwatchSource = "spectrum"
	SourceLab      SwatchSource = "lab"
	SourceCmyk     SwatchSource = "cmyk"
	SourceHex      SwatchSource = "hex"
)

// Swatch is a resolved catalog paint. Spectrum is measured for
// SourceSpectrum and reconstructed otherwise.
type Swatch struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Code     string       `json:"code,omitempty"`
	Source   SwatchSource `json:"source"`
	Hex      string       `json:"hex"`
	RGB      RGB          `json:"rgb"`
	XYZ      XYZ          `json:"xyz"`
	Spectrum Spectrum     `json:"spectrum"`
}

// Measured reports whether the spectrum came from the catalog data.
func (s Swatch) Measured() bool {
	return s.Source == SourceSpectrum
}
