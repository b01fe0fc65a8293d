package expplot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatMean(t *testing.T) {
	df := NewDataFrame("runs", nil)
	require.NoError(t, df.AddInt("x", []int64{5, 5, 10, 5, 10}))
	require.NoError(t, df.AddFloat("y", []float64{1, 3, 10, 7, 20}))
	require.NoError(t, df.AddString("color", []string{"a", "a", "a", "b", "a"}))

	got, err := StatMean{}.Apply(df)
	require.NoError(t, err)

	require.Equal(t, 3, got.N)
	assert.Equal(t, []float64{5, 10, 5}, got.Columns["x"].Data)
	assert.Equal(t, []float64{2, 15, 7}, got.Columns["y"].Data)
	assert.Equal(t, Float, got.Columns["y"].Type)
	assert.Equal(t, "b", got.Columns["color"].Value(2))
}

func TestStatMeanMissing(t *testing.T) {
	nan := math.NaN()
	df := NewDataFrame("runs", nil)
	require.NoError(t, df.AddFloat("x", []float64{5, 5, 5, 5, 10}))
	require.NoError(t, df.AddFloat("y", []float64{1, nan, 4, 6, nan}))
	require.NoError(t, df.AddFloat("color", []float64{1, 1, nan, nan, nan}))

	got, err := StatMean{}.Apply(df)
	require.NoError(t, err)

	// One group per level, missing colors form a single level.
	require.Equal(t, 3, got.N)
	ys := got.Columns["y"].Data
	assert.Equal(t, 1.0, ys[0])
	assert.Equal(t, 5.0, ys[1])
	assert.True(t, math.IsNaN(ys[2]), "group without y")
	assert.True(t, math.IsNaN(got.Columns["color"].Data[1]))
}

func TestStatByName(t *testing.T) {
	for _, name := range []string{"", "none", "identity"} {
		s, err := StatByName(name)
		require.NoError(t, err)
		assert.Nil(t, s, name)
	}

	s, err := StatByName("mean")
	require.NoError(t, err)
	assert.Equal(t, "StatMean", s.Name())

	_, err = StatByName("median")
	assert.Error(t, err)
}
