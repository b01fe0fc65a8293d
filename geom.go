package expplot

import (
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/plot/plotter"
)

// Geom is a geometrical object, a type of visual for the plot.
type Geom interface {
	Name() string            // The name of the geom.
	NeededSlots() []string   // The aesthetics which must be mapped.
	OptionalSlots() []string // The optional aesthetics this geom understands.

	// Render interpretes the (already aesthetic-named) data as the
	// specific geom and produces Grobs using the trained scales of p.
	Render(p *Plot, data *DataFrame) ([]Grob, error)
}

// -------------------------------------------------------------------------
// Geom Line

// GeomLine draws one line with markers for each combination of color
// and linetype level. Points of a line are connected in order of x.
// Rows with a missing x or y are skipped.
type GeomLine struct{}

var _ Geom = GeomLine{}

func (GeomLine) Name() string            { return "GeomLine" }
func (GeomLine) NeededSlots() []string   { return []string{"x", "y"} }
func (GeomLine) OptionalSlots() []string { return []string{"color", "linetype"} }

func (g GeomLine) Render(p *Plot, data *DataFrame) ([]Grob, error) {
	colors, err := p.colors()
	if err != nil {
		return nil, err
	}
	colorScale, styleScale := p.Scales["color"], p.Scales["linetype"]
	colorLevels, styleLevels := discreteLevels(colorScale), discreteLevels(styleScale)

	x, y := data.Columns["x"].Data, data.Columns["y"].Data
	colorData, styleData := levelData(data, "color"), levelData(data, "linetype")

	grobs := make([]Grob, 0, len(colorLevels)*len(styleLevels))
	for ci, cl := range colorLevels {
		for si, sl := range styleLevels {
			path := GrobPath{
				Key:      SeriesKey{Color: scaleLabel(colorScale, cl), Style: scaleLabel(styleScale, sl)},
				Color:    colors[ci],
				Shape:    p.Theme.Shapes[ci%len(p.Theme.Shapes)],
				LineType: p.Theme.LineTypes[si%len(p.Theme.LineTypes)],
			}
			for i := 0; i < data.N; i++ {
				if !sameLevel(colorData[i], cl) || !sameLevel(styleData[i], sl) {
					continue
				}
				if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
					continue
				}
				path.Points = append(path.Points, plotter.XY{X: x[i], Y: y[i]})
			}
			if len(path.Points) == 0 {
				p.Logger.Debug("no data for series", zap.Stringer("series", path.Key))
				continue
			}
			path.sortByX()
			p.Logger.Debug("plotting series", zap.Stringer("series", path.Key), zap.Int("points", len(path.Points)))
			grobs = append(grobs, path)
		}
	}
	return grobs, nil
}

// discreteLevels returns the levels of s. An unmapped aesthetic has the
// single level 0 so that all rows form one group.
func discreteLevels(s *Scale) []float64 {
	if s == nil {
		return []float64{0}
	}
	return s.Levels
}

func scaleLabel(s *Scale, x float64) string {
	if s == nil {
		return ""
	}
	return s.Label(x)
}

// levelData returns the column aes of data or all zeros if aes is unmapped.
func levelData(data *DataFrame, aes string) []float64 {
	if f, ok := data.Columns[aes]; ok {
		return f.Data
	}
	return make([]float64, data.N)
}
