// Package assets embeds the static data shipped with pigment: the frozen
// spectrum reconstruction model and the paint catalog.
package assets

import (
	_ "embed"
	"encoding/json"

	"github.com/brandquad/pigment/colorutils"
	"k8s.io/klog/v2"
)

// ModelTable is the color-spectrum-v5 weight table. Layer order and
// activations are pinned by network.DefaultTopology.
//
//go:embed color-spectrum-v5.json
var ModelTable []byte

// Paint is one catalog entry. Exactly one of Spectrum, Lab, Cmyk or Hex is
// expected to be set.
type Paint struct {
	Name     string    `json:"name"`
	Spectrum []float64 `json:"spectrum,omitempty"`
	Lab      []float64 `json:"lab,omitempty"`
	Cmyk     []float64 `json:"cmyk,omitempty"`
	Hex      string    `json:"hex,omitempty"`
}

// LabComponents returns the Lab value of the entry, if it has one.
func (p Paint) LabComponents() (colorutils.Lab, bool) {
	if len(p.Lab) != 3 {
		return colorutils.Lab{}, false
	}
	return colorutils.Lab{L: p.Lab[0], A: p.Lab[1], B: p.Lab[2]}, true
}

// CmykComponents returns the CMYK value of the entry, if it has one.
func (p Paint) CmykComponents() (colorutils.CMYK, bool) {
	if len(p.Cmyk) != 4 {
		return colorutils.CMYK{}, false
	}
	return colorutils.CMYK{C: p.Cmyk[0], M: p.Cmyk[1], Y: p.Cmyk[2], K: p.Cmyk[3]}, true
}

type paintData struct {
	Paints []Paint `json:"paints"`
}

//go:embed paints.json
var paintsData []byte

// Paints is the decoded catalog, in file order.
var Paints []Paint

func init() {
	var j paintData
	if err := json.Unmarshal(paintsData, &j); err != nil {
		klog.Fatal(err)
	}
	Paints = j.Paints
}
