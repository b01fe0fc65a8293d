package expplot

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// costs has 2 mechanisms and 3 algorithms where the pair
// (smt, C) has no rows.
func costs(t *testing.T) *DataFrame {
	t.Helper()
	df := NewDataFrame("costs", nil)
	require.NoError(t, df.AddString("Mechanism", []string{
		"BSL", "BSL", "SMT", "SMT", "BSL", "BSL", "SMT", "SMT", "BSL", "BSL"}))
	require.NoError(t, df.AddString("Algorithm", []string{
		"A", "A", "A", "A", "B", "B", "B", "B", "C", "C"}))
	require.NoError(t, df.AddInt("num_states", []int64{5, 10, 5, 10, 5, 10, 5, 10, 5, 10}))
	require.NoError(t, df.AddFloat("cost", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}))
	return df
}

func TestPlotGrouping(t *testing.T) {
	p := &Plot{
		Data: costs(t),
		Aes: AesMapping{
			"x":        "num_states",
			"y":        "cost",
			"color":    "Mechanism",
			"linetype": "Algorithm",
		},
	}
	require.NoError(t, p.Prepare())

	// 2*3 pairs minus the empty (SMT, C).
	require.Len(t, p.Grobs, 5)
	keys := make([]string, len(p.Grobs))
	for i, g := range p.Grobs {
		path := g.(GrobPath)
		keys[i] = path.Key.String()
		assert.Len(t, path.Points, 2)
		assert.True(t, path.Points[0].X < path.Points[1].X)
	}
	assert.Equal(t, []string{"BSL/A", "BSL/B", "BSL/C", "SMT/A", "SMT/B"}, keys)

	// Same marker and color per Mechanism, same dash per Algorithm.
	bslA, bslB, smtA := p.Grobs[0].(GrobPath), p.Grobs[1].(GrobPath), p.Grobs[3].(GrobPath)
	assert.Equal(t, bslA.Color, bslB.Color)
	assert.Equal(t, bslA.Shape, bslB.Shape)
	assert.NotEqual(t, bslA.Shape, smtA.Shape)
	assert.NotEqual(t, bslA.Color, smtA.Color)
	assert.Equal(t, bslA.LineType, smtA.LineType)
	assert.NotEqual(t, bslA.LineType, bslB.LineType)

	// Two headers plus 2 colors and 3 styles.
	require.Len(t, p.Legend, 2+2+3)
	assert.True(t, p.Legend[0].Header)
	assert.Equal(t, "Mechanism", p.Legend[0].Label)
	assert.Equal(t, "BSL", p.Legend[1].Label)
	assert.True(t, p.Legend[3].Header)
	assert.Equal(t, "Algorithm", p.Legend[3].Label)
	for _, e := range p.Legend[4:] {
		assert.Equal(t, BlankPoint, e.Shape)
	}

	xticks := p.Scales["x"].Ticks()
	require.Len(t, xticks, 2)
	assert.Equal(t, "5", xticks[0].Label)
	assert.Equal(t, "10", xticks[1].Label)
}

func TestPlotMergedLegend(t *testing.T) {
	p := &Plot{
		Data: costs(t),
		Aes: AesMapping{
			"x":        "num_states",
			"y":        "cost",
			"color":    "Algorithm",
			"linetype": "Algorithm",
		},
		Title: func(s string) string { return "The " + s },
	}
	require.NoError(t, p.Prepare())

	require.Len(t, p.Grobs, 3)
	require.Len(t, p.Legend, 1+3)
	assert.Equal(t, "The Algorithm", p.Legend[0].Label)
	colors, err := p.Theme.PaletteColors(3)
	require.NoError(t, err)
	for i, e := range p.Legend[1:] {
		assert.Equal(t, p.Theme.Shapes[i], e.Shape)
		assert.Equal(t, p.Theme.LineTypes[i], e.LineType)
		assert.Equal(t, colors[i], e.Color)
		path := p.Grobs[i].(GrobPath)
		assert.Equal(t, path.Color, e.Color)
		assert.Equal(t, path.Shape, e.Shape)
		assert.Equal(t, path.LineType, e.LineType)
	}
}

func TestPlotWarnings(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	df := NewDataFrame("many", nil)
	names := []string{"a", "b", "c", "d", "e", "f", "g"}
	require.NoError(t, df.AddString("s", names))
	require.NoError(t, df.AddInt("x", []int64{1, 2, 3, 4, 5, 6, 7}))
	require.NoError(t, df.AddInt("y", []int64{1, 2, 3, 4, 5, 6, 7}))

	p := &Plot{
		Data:   df,
		Aes:    AesMapping{"x": "x", "y": "y", "color": "s", "linetype": "s"},
		Logger: zap.New(core),
	}
	require.NoError(t, p.Prepare())
	assert.Equal(t, 2, logs.Len(), "one warning for shapes, one for line types")
	assert.Equal(t, p.Grobs[0].(GrobPath).Shape, p.Grobs[6].(GrobPath).Shape)

	core, logs = observer.New(zapcore.WarnLevel)
	empty, err := Select(df, In("s", "nosuch"))
	require.NoError(t, err)
	p = &Plot{Data: empty, Aes: AesMapping{"x": "x", "y": "y", "color": "s"}, Logger: zap.New(core)}
	require.NoError(t, p.Prepare())
	assert.Empty(t, p.Grobs)
	assert.Equal(t, 1, logs.FilterMessageSnippet("No data").Len())
}

func TestPlotErrors(t *testing.T) {
	p := &Plot{Data: costs(t), Aes: AesMapping{"x": "num_states"}}
	assert.Error(t, p.Prepare())

	p = &Plot{Data: costs(t), Aes: AesMapping{"x": "num_states", "y": "nosuch"}}
	assert.ErrorIs(t, p.Prepare(), ErrUnknownColumn)

	p = &Plot{Data: costs(t), Aes: AesMapping{"x": "Mechanism", "y": "cost"}}
	assert.ErrorIs(t, p.Prepare(), ErrNotNumeric)

	p = &Plot{Data: costs(t), Aes: AesMapping{"x": "num_states", "y": "cost"}}
	_, err := p.Save(t.TempDir(), "costs", "bmp")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestPlotSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	for _, format := range []string{"pdf", "svg", "png"} {
		p := &Plot{
			Data: costs(t),
			Aes: AesMapping{
				"x":        "num_states",
				"y":        "cost",
				"color":    "Mechanism",
				"linetype": "Algorithm",
			},
			Options: Options{FontSize: 13, LegendSize: 11, MarkerSize: 8, LineWidth: 1},
		}
		path, err := p.Save(dir, "costs", format)
		require.NoError(t, err, format)
		assert.Equal(t, filepath.Join(dir, "costs."+format), path)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.True(t, info.Size() > 0)
	}
}

func TestPlotMean(t *testing.T) {
	p := &Plot{
		Data:    costs(t),
		Aes:     AesMapping{"x": "num_states", "y": "cost", "color": "Mechanism"},
		Options: Options{Aggregate: "mean"},
	}
	require.NoError(t, p.Prepare())
	require.Len(t, p.Grobs, 2)
	bsl := p.Grobs[0].(GrobPath)
	// BSL at 5: mean of 1, 5, 9.
	assert.Equal(t, 5.0, bsl.Points[0].Y)
	assert.Equal(t, 6.0, bsl.Points[1].Y)
}

const gapsCSV = `mechanism,num_states,num_oracles,proving_time (s)
cbsl,5,1,1.5
cbsl,5,2,
cbsl,,1,2.0
cbsl,,2,2.5
smt,5,1,3
smt,,3,
`

func TestPlotMissingValues(t *testing.T) {
	df, err := ReadCSV(strings.NewReader(gapsCSV), "gaps")
	require.NoError(t, err)
	require.Equal(t, Float, df.Columns["num_states"].Type)

	p := &Plot{
		Data: df,
		Aes: AesMapping{
			"x":        "num_oracles",
			"y":        "proving_time (s)",
			"color":    "num_states",
			"linetype": "mechanism",
		},
	}
	require.NoError(t, p.Prepare())

	// Missing states form a single level after 5.
	color := p.Scales["color"]
	require.Len(t, color.Levels, 2)
	assert.Equal(t, 5.0, color.Levels[0])
	assert.True(t, math.IsNaN(color.Levels[1]))

	// (5, cbsl) keeps the point with y, (NaN, smt) has no y at all.
	require.Len(t, p.Grobs, 3)
	keys := make([]string, len(p.Grobs))
	for i, g := range p.Grobs {
		keys[i] = g.(GrobPath).Key.String()
	}
	assert.Equal(t, []string{"5/cbsl", "5/smt", "NaN/cbsl"}, keys)
	assert.Len(t, p.Grobs[0].(GrobPath).Points, 1)
	assert.Len(t, p.Grobs[2].(GrobPath).Points, 2)
	assert.Len(t, p.Legend, 2+2+2)

	path, err := p.Save(t.TempDir(), "gaps", "pdf")
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestPlotMeanMissingValues(t *testing.T) {
	df, err := ReadCSV(strings.NewReader(gapsCSV), "gaps")
	require.NoError(t, err)

	p := &Plot{
		Data:    df,
		Aes:     AesMapping{"x": "num_oracles", "y": "proving_time (s)", "color": "num_states"},
		Options: Options{Aggregate: "mean"},
	}
	require.NoError(t, p.Prepare())
	require.Len(t, p.Scales["color"].Levels, 2)
	require.Len(t, p.Grobs, 2)
	// Missing states at oracle 1 and 2, the row at oracle 3 has no y.
	assert.Equal(t, 2, len(p.Grobs[1].(GrobPath).Points))
}
