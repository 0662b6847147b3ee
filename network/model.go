// Package network evaluates the fixed dense network that reconstructs a
// reflectance spectrum from a CIE XYZ value.
//
// The weights are frozen constants read from a model table. The table is a
// JSON object keyed by layer name:
//
//	{"dense_13": {"weights": [[...], ...], "biases": [...]}, ...}
//
// where weights is an input-dim x output-dim matrix. Layer order and
// activations never come from the table itself; they are pinned by a
// Topology.
package network

import (
	"math"

	"github.com/brandquad/pigment/colorutils"
	"gonum.org/v1/gonum/mat"
)

const (
	// InputDim is the width of the first layer: X, Y, Z.
	InputDim = 3
	// OutputDim is the width of the last layer: one unit per spectrum sample.
	OutputDim = 31
	// InputLimit bounds each XYZ component passed to Reconstruct.
	InputLimit = 1e6
)

// LayerSpec pins the name and activation of one layer.
type LayerSpec struct {
	Name       string
	Activation Activation
}

// Topology is the ordered list of layers a model table must provide.
type Topology []LayerSpec

// DefaultTopology is the layout of the embedded color-spectrum-v5 table.
var DefaultTopology = Topology{
	{Name: "dense_13", Activation: ActivationReLU},
	{Name: "dense_14", Activation: ActivationReLU},
	{Name: "dense_15", Activation: ActivationReLU},
	{Name: "dense_16", Activation: ActivationReLU},
	{Name: "dense_17", Activation: ActivationSigmoid},
}

// Layer is a dense layer: out_j = act(b_j + sum_i in_i*W[i][j]).
type Layer struct {
	Name       string
	Activation Activation
	Weights    *mat.Dense
	Biases     *mat.VecDense
}

// Dims returns the input and output width of the layer.
func (l *Layer) Dims() (in, out int) {
	return l.Weights.Dims()
}

func (l *Layer) forward(in mat.Vector) *mat.VecDense {
	_, n := l.Dims()
	out := mat.NewVecDense(n, nil)
	out.MulVec(l.Weights.T(), in)
	out.AddVec(out, l.Biases)
	data := out.RawVector().Data
	for j := range data {
		data[j] = l.Activation.Apply(data[j])
	}
	return out
}

// Model is a validated, immutable stack of layers. It is safe for
// concurrent use.
type Model struct {
	layers []*Layer
}

// Layers returns the layers in evaluation order.
func (m *Model) Layers() []*Layer {
	return append([]*Layer(nil), m.layers...)
}

// Forward evaluates the network on in.
func (m *Model) Forward(in []float64) ([]float64, error) {
	if len(m.layers) == 0 {
		return nil, errorf(colorutils.ErrModelLoad, "model has no layers")
	}
	if want, _ := m.layers[0].Dims(); len(in) != want {
		return nil, errorf(colorutils.ErrDimension, "input has %d values, want %d", len(in), want)
	}
	var cur mat.Vector = mat.NewVecDense(len(in), append([]float64(nil), in...))
	for _, l := range m.layers {
		cur = l.forward(cur)
	}
	return cur.(*mat.VecDense).RawVector().Data, nil
}

// Reconstruct maps xyz to a 31-sample reflectance spectrum. Every sample is
// a sigmoid output and therefore lies in [0,1]. Components are clamped to
// [-InputLimit, InputLimit] and NaN is read as 0, so the forward pass never
// overflows. A model that was not built by Parse returns nil.
func (m *Model) Reconstruct(xyz colorutils.XYZ) []float64 {
	out, err := m.Forward([]float64{boundInput(xyz.X), boundInput(xyz.Y), boundInput(xyz.Z)})
	if err != nil {
		return nil
	}
	return out
}

func boundInput(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-InputLimit, math.Min(InputLimit, v))
}
