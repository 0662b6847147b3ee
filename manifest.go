package pigment

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/brandquad/pigment/jsonscan"
)

const ManifestVersion = "1"

const embeddedModel = "embedded"

type Manifest struct {
	Version   string    `json:"version"`
	ID        string    `json:"id"`
	Timestamp string    `json:"timestamp"`
	Model     string    `json:"model"`
	Samples   int       `json:"samples"`
	Swatches  []*Swatch `json:"swatches"`
}

func (b *Manifest) GetSwatchByIndex(index int) *Swatch {
	return b.Swatches[index]
}

func (b *Manifest) GetSwatchByName(name string) *Swatch {
	key := foldName(name)
	for _, s := range b.Swatches {
		if foldName(s.Name) == key {
			return s
		}
	}
	return nil
}

func (b *Manifest) Scan(src interface{}) error {
	return jsonscan.JsonScan(src, b)
}

func (b Manifest) Value() (driver.Value, error) {
	return json.Marshal(b)
}
