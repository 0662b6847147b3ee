package network

import (
	"fmt"
	"math"
)

// Activation is the nonlinearity applied to every output unit of a layer.
type Activation int

const (
	ActivationNone Activation = iota
	ActivationReLU
	ActivationSigmoid
)

func (a Activation) String() string {
	switch a {
	case ActivationNone:
		return "none"
	case ActivationReLU:
		return "relu"
	case ActivationSigmoid:
		return "sigmoid"
	}
	return fmt.Sprintf("Activation(%d)", int(a))
}

// Apply evaluates the activation at v.
func (a Activation) Apply(v float64) float64 {
	switch a {
	case ActivationReLU:
		return Relu(v)
	case ActivationSigmoid:
		return Sigmoid(v)
	}
	return v
}

// Relu returns max(0, v).
func Relu(v float64) float64 {
	return math.Max(0, v)
}

// Sigmoid is the logistic function 1/(1+e^-v).
func Sigmoid(v float64) float64 {
	return 1 / (1 + math.Exp(-v))
}
