package network

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/brandquad/pigment/assets"
	"github.com/brandquad/pigment/colorutils"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"k8s.io/klog/v2"
)

// LoadError is returned for every model table that fails validation. It
// matches colorutils.ErrModelLoad and whatever cause it wraps.
type LoadError struct {
	Layer string
	Err   error
}

func (e *LoadError) Error() string {
	if e.Layer == "" {
		return fmt.Sprintf("%v: %v", colorutils.ErrModelLoad, e.Err)
	}
	return fmt.Sprintf("%v: layer %s: %v", colorutils.ErrModelLoad, e.Layer, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == colorutils.ErrModelLoad }

func errorf(sentinel error, format string, args ...interface{}) error {
	return errors.Wrapf(sentinel, format, args...)
}

type layerData struct {
	Weights [][]float64 `json:"weights"`
	Biases  []float64   `json:"biases"`
}

func (d layerData) layer(spec LayerSpec) (*Layer, error) {
	rows := len(d.Weights)
	if rows == 0 || len(d.Weights[0]) == 0 {
		return nil, errors.New("empty weight matrix")
	}
	cols := len(d.Weights[0])
	flat := make([]float64, 0, rows*cols)
	for i, row := range d.Weights {
		if len(row) != cols {
			return nil, errorf(colorutils.ErrDimension, "weight row %d has %d values, want %d", i, len(row), cols)
		}
		flat = append(flat, row...)
	}
	if len(d.Biases) != cols {
		return nil, errorf(colorutils.ErrDimension, "%d biases for %d outputs", len(d.Biases), cols)
	}
	switch spec.Activation {
	case ActivationNone, ActivationReLU, ActivationSigmoid:
	default:
		return nil, errors.Errorf("unknown activation %v", spec.Activation)
	}
	return &Layer{
		Name:       spec.Name,
		Activation: spec.Activation,
		Weights:    mat.NewDense(rows, cols, flat),
		Biases:     mat.NewVecDense(cols, append([]float64(nil), d.Biases...)),
	}, nil
}

// Parse decodes and validates a model table. Every layer named by topology
// must be present, chained dimensions must agree, the first layer must take
// InputDim values and the last must produce OutputDim values.
func Parse(data []byte, topology Topology) (*Model, error) {
	if len(topology) == 0 {
		return nil, &LoadError{Err: errors.New("empty topology")}
	}
	var raw map[string]layerData
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Err: errors.Wrap(err, "decode")}
	}

	m := &Model{layers: make([]*Layer, 0, len(topology))}
	known := make(map[string]bool, len(topology))
	prevOut := InputDim
	for _, spec := range topology {
		if known[spec.Name] {
			return nil, &LoadError{Layer: spec.Name, Err: errors.New("listed twice in topology")}
		}
		known[spec.Name] = true

		d, ok := raw[spec.Name]
		if !ok {
			return nil, &LoadError{Layer: spec.Name, Err: errors.New("missing from table")}
		}
		l, err := d.layer(spec)
		if err != nil {
			return nil, &LoadError{Layer: spec.Name, Err: err}
		}
		in, out := l.Dims()
		if in != prevOut {
			return nil, &LoadError{Layer: spec.Name, Err: errorf(colorutils.ErrDimension, "takes %d inputs, previous stage produces %d", in, prevOut)}
		}
		prevOut = out
		m.layers = append(m.layers, l)
	}
	if prevOut != OutputDim {
		last := topology[len(topology)-1].Name
		return nil, &LoadError{Layer: last, Err: errorf(colorutils.ErrDimension, "produces %d outputs, want %d", prevOut, OutputDim)}
	}
	for name := range raw {
		if !known[name] {
			return nil, &LoadError{Layer: name, Err: errors.New("not part of the topology")}
		}
	}
	return m, nil
}

// LoadFile reads a model table from disk.
func LoadFile(filename string, topology Topology) (*Model, error) {
	st := time.Now()
	klog.Infof("[>] Load model table %s", filename)
	defer func() {
		klog.Infof("[<] Load model table %s, at %s", filename, time.Since(st))
	}()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	return Parse(data, topology)
}

var defaultModel = sync.OnceValues(func() (*Model, error) {
	st := time.Now()
	m, err := Parse(assets.ModelTable, DefaultTopology)
	if err != nil {
		klog.Errorf("[!] Embedded model table: %v", err)
		return nil, err
	}
	klog.V(1).Infof("Embedded model table loaded, at %s", time.Since(st))
	return m, nil
})

// Default returns the embedded model. It is parsed once; later calls share
// the same *Model.
func Default() (*Model, error) {
	return defaultModel()
}
