package colorutils

import "github.com/pkg/errors"

var (
	// ErrFormat reports a malformed hex color string.
	ErrFormat = errors.New("malformed color string")
	// ErrDimension reports a spectrum or layer with the wrong number of values.
	ErrDimension = errors.New("dimension mismatch")
	// ErrInvalidWeight reports mixing ratios that are negative or sum to zero.
	ErrInvalidWeight = errors.New("invalid mixing weight")
	// ErrEmptyInput reports a mix with no paints.
	ErrEmptyInput = errors.New("no paints to mix")
	// ErrModelLoad reports a model table that failed validation.
	ErrModelLoad = errors.New("model table load failed")
)
