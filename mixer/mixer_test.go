package mixer

import (
	"math"
	"testing"

	"github.com/brandquad/pigment/colorutils"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spectrum []float64

func rgb(hex string) colorutils.RGB {
	return must.M1(colorutils.HexToRgb(hex))
}

func TestInterpolateMix(t *testing.T) {
	tests := []struct {
		name   string
		paints []Paint[colorutils.RGB]
		want   string
	}{
		{"black and white", []Paint[colorutils.RGB]{
			{Color: rgb("#000000"), Ratio: 1},
			{Color: rgb("#ffffff"), Ratio: 1},
		}, "#808080"},
		{"single paint", []Paint[colorutils.RGB]{
			{Color: rgb("#123456"), Ratio: 3},
		}, "#123456"},
		{"weighted", []Paint[colorutils.RGB]{
			{Color: rgb("#ff0000"), Ratio: 3},
			{Color: rgb("#0000ff"), Ratio: 1},
		}, "#bf0040"},
		{"zero ratio ignored", []Paint[colorutils.RGB]{
			{Color: rgb("#00ff00"), Ratio: 0},
			{Color: rgb("#102030"), Ratio: 0.5},
		}, "#102030"},
		{"three paints", []Paint[colorutils.RGB]{
			{Color: rgb("#300000"), Ratio: 1},
			{Color: rgb("#003000"), Ratio: 1},
			{Color: rgb("#000030"), Ratio: 1},
		}, "#101010"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InterpolateMix(tt.paints...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, colorutils.RgbToHex(got))
		})
	}
}

func TestInterpolateMixErrors(t *testing.T) {
	_, err := InterpolateMix(
		Paint[colorutils.RGB]{Color: rgb("#000000")},
		Paint[colorutils.RGB]{Color: rgb("#ffffff")},
	)
	assert.ErrorIs(t, err, colorutils.ErrInvalidWeight)

	_, err = InterpolateMix(
		Paint[colorutils.RGB]{Color: rgb("#000000"), Ratio: 2},
		Paint[colorutils.RGB]{Color: rgb("#ffffff"), Ratio: -1},
	)
	assert.ErrorIs(t, err, colorutils.ErrInvalidWeight)

	_, err = InterpolateMix()
	assert.ErrorIs(t, err, colorutils.ErrEmptyInput)
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]Paint[string]{{Color: "a", Ratio: 1}, {Color: "b", Ratio: 3}})
	require.NoError(t, err)
	assert.Equal(t, []Paint[string]{{Color: "a", Ratio: 0.25}, {Color: "b", Ratio: 0.75}}, out)

	_, err = Normalize([]Paint[string]{{Color: "a"}})
	assert.ErrorIs(t, err, colorutils.ErrInvalidWeight)
}

func TestKS(t *testing.T) {
	assert.Equal(t, 0.0, ReflectanceToKS(1))
	assert.Equal(t, 0.0, ReflectanceToKS(1.5))
	assert.InDelta(t, 0.25, ReflectanceToKS(0.5), 1e-15)
	assert.False(t, math.IsInf(ReflectanceToKS(0), 0))
	assert.Equal(t, ReflectanceToKS(ReflectanceFloor), ReflectanceToKS(-1))

	for _, r := range []float64{ReflectanceFloor, 1e-5, 1e-4, 1e-3, 0.01, 0.1, 0.33, 0.5, 0.9, 1} {
		assert.InEpsilon(t, r, KSToReflectance(ReflectanceToKS(r)), 1e-12, "r=%v", r)
	}
	assert.Equal(t, 1.0, KSToReflectance(0))
}

func TestKubelkaMunkSelfMix(t *testing.T) {
	s := spectrum{0.05, 0.2, 0.45, 0.7, 0.95}
	got, err := KubelkaMunkMix([]Paint[spectrum]{
		{Color: s, Ratio: 0.5},
		{Color: s, Ratio: 0.5},
	}, len(s))
	require.NoError(t, err)
	require.Len(t, got, len(s))
	assert.InDeltaSlice(t, []float64(s), []float64(got), 1e-12)
}

func TestKubelkaMunkMix(t *testing.T) {
	white := spectrum{1, 1, 1}
	black := spectrum{0, 0, 0}
	grey := spectrum{0.5, 0.5, 0.5}

	// Pure white has K/S 0 and adds nothing.
	got, err := KubelkaMunkMix([]Paint[spectrum]{{Color: white, Ratio: 0.5}, {Color: grey, Ratio: 0.5}}, 3)
	require.NoError(t, err)
	want := 1.125 - math.Sqrt(0.125*0.125+0.25)
	for _, v := range got {
		assert.InDelta(t, want, v, 1e-12)
		assert.Greater(t, v, 0.5)
	}

	got, err = KubelkaMunkMix([]Paint[spectrum]{{Color: black, Ratio: 1}, {Color: black, Ratio: 1}}, 3)
	require.NoError(t, err)
	for _, v := range got {
		assert.False(t, math.IsNaN(v))
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1e-6)
	}

	// Ratios are not normalized.
	got, err = KubelkaMunkMix([]Paint[spectrum]{{Color: grey, Ratio: 2}}, 3)
	require.NoError(t, err)
	for _, v := range got {
		assert.InDelta(t, 1.5-math.Sqrt(1.25), v, 1e-12)
	}
}

func TestKubelkaMunkMixErrors(t *testing.T) {
	s := spectrum{0.5, 0.5}
	_, err := KubelkaMunkMix([]Paint[spectrum]{}, 2)
	assert.ErrorIs(t, err, colorutils.ErrEmptyInput)

	_, err = KubelkaMunkMix([]Paint[spectrum]{{Color: s, Ratio: 1}}, 3)
	assert.ErrorIs(t, err, colorutils.ErrDimension)

	_, err = KubelkaMunkMix([]Paint[spectrum]{{Color: s, Ratio: 1}}, 0)
	assert.ErrorIs(t, err, colorutils.ErrDimension)

	_, err = KubelkaMunkMix([]Paint[spectrum]{{Color: s, Ratio: -0.5}}, 2)
	assert.ErrorIs(t, err, colorutils.ErrInvalidWeight)
}
