// Package pigment converts between hex colors, reflectance spectra and CIE XYZ,
// mixes paints the way pigments mix and keeps a catalog of named paints.
package pigment

import (
	"time"

	"github.com/alitto/pond"
	"github.com/brandquad/pigment/colorutils"
	"github.com/brandquad/pigment/network"
	"github.com/brandquad/pigment/spectral"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const defaultCpuCount = 4

type (
	RGB      = colorutils.RGB
	XYZ      = colorutils.XYZ
	Spectrum = spectral.Spectrum
)

var (
	ErrFormat        = colorutils.ErrFormat
	ErrDimension     = colorutils.ErrDimension
	ErrInvalidWeight = colorutils.ErrInvalidWeight
	ErrEmptyInput    = colorutils.ErrEmptyInput
	ErrModelLoad     = colorutils.ErrModelLoad
)

type Config struct {
	MaxCpuCount int
	ModelPath   string
	DebugMode   bool
}

func (c *Config) cpuCount() int {
	if c == nil || c.MaxCpuCount < 1 {
		return defaultCpuCount
	}
	return c.MaxCpuCount
}

// Setup installs the model table from c.ModelPath for every spectrum
// reconstruction in the process. With an empty path the embedded table is
// used.
func Setup(c *Config) error {
	if c == nil || c.ModelPath == "" {
		spectral.SetReconstructor(nil)
		return nil
	}
	if c.DebugMode {
		klog.Infof("[D] model path %s", c.ModelPath)
	}
	model, err := network.LoadFile(c.ModelPath, network.DefaultTopology)
	if err != nil {
		return err
	}
	spectral.SetReconstructor(model)
	return nil
}

func newPool(c *Config, tasks int) *pond.WorkerPool {
	panicHandler := func(p interface{}) {
		klog.Errorf("Task panicked: %v", p)
	}
	n := c.cpuCount()
	return pond.New(n, max(tasks, 1), pond.MinWorkers(n), pond.PanicHandler(panicHandler))
}

// runBatch calls fn for every index on a worker pool and returns the error of
// the lowest failing index.
func runBatch(name string, n int, c *Config, fn func(i int) error) error {
	st := time.Now()
	klog.Infof("[>] %s, %d items", name, n)
	defer func() {
		klog.Infof("[<] %s, at %s", name, time.Since(st))
	}()

	errs := make([]error, n)
	pool := newPool(c, n)
	for i := 0; i < n; i++ {
		pool.Submit(func() {
			errs[i] = fn(i)
			if errs[i] != nil {
				klog.V(2).Infof("[-] %s item %d: %v", name, i, errs[i])
			}
		})
	}
	pool.StopAndWait()

	for i, err := range errs {
		if err != nil {
			return errors.Wrapf(err, "%s item %d", name, i)
		}
	}
	if pool.FailedTasks() > 0 {
		return errors.Errorf("%s: %d tasks failed", name, pool.FailedTasks())
	}
	return nil
}
