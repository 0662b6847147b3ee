package jsonscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Name  string    `json:"name"`
	Value []float64 `json:"value"`
}

func TestJsonScan(t *testing.T) {
	var r row
	require.NoError(t, JsonScan([]byte(`{"name":"a","value":[1,2]}`), &r))
	assert.Equal(t, row{Name: "a", Value: []float64{1, 2}}, r)

	var s row
	require.NoError(t, JsonScan(`{"name":"b"}`, &s))
	assert.Equal(t, "b", s.Name)

	keep := row{Name: "keep"}
	require.NoError(t, JsonScan(nil, &keep))
	require.NoError(t, JsonScan([]byte("null"), &keep))
	assert.Equal(t, "keep", keep.Name)

	assert.Error(t, JsonScan(42, &r))
	assert.Error(t, JsonScan([]byte(`{"name":`), &r))
}
