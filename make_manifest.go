package pigment

import (
	"time"

	"github.com/brandquad/pigment/spectral"
	"github.com/google/uuid"
	"k8s.io/klog/v2"
)

// MakeManifest describes the catalog for storage or export.
func MakeManifest(cat *Catalog, c *Config) *Manifest {
	st := time.Now()
	klog.Info("[>] Make manifest")
	defer func() {
		klog.Infof("[<] Make manifest, at %s", time.Since(st))
	}()

	model := embeddedModel
	if c != nil && c.ModelPath != "" {
		model = c.ModelPath
	}

	return &Manifest{
		Version:   ManifestVersion,
		ID:        uuid.New().String(),
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
		Model:     model,
		Samples:   spectral.Samples,
		Swatches:  cat.Swatches(),
	}
}
