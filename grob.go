package expplot

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Grob is a graphical object ready to be drawn.
type Grob interface {
	Draw(vp Viewport) error
}

// Viewport is the target of drawing grobs.
type Viewport struct {
	Plot    *plot.Plot
	Options Options
}

// SeriesKey identifies one drawn line by the formatted levels of its
// color and linetype aesthetic.
type SeriesKey struct {
	Color, Style string
}

func (k SeriesKey) String() string {
	return k.Color + "/" + k.Style
}

// -------------------------------------------------------------------------
// Grob Path

// GrobPath is a connected line through Points with a marker at each point.
type GrobPath struct {
	Key      SeriesKey
	Points   plotter.XYs
	Color    color.Color
	LineType LineType
	Shape    PointShape
}

// sortByX orders the points of path by increasing x. Points with equal x
// keep their data order.
func (path *GrobPath) sortByX() {
	sort.SliceStable(path.Points, func(i, j int) bool {
		return path.Points[i].X < path.Points[j].X
	})
}

func (path GrobPath) Draw(vp Viewport) error {
	line, points, err := plotter.NewLinePoints(path.Points)
	if err != nil {
		return fmt.Errorf("series %s: %w", path.Key, err)
	}

	line.LineStyle.Color = path.Color
	line.LineStyle.Dashes = path.LineType.Dashes()
	if vp.Options.LineWidth > 0 {
		line.LineStyle.Width = vg.Points(vp.Options.LineWidth)
	}
	if path.LineType != BlankLine {
		vp.Plot.Add(line)
	}

	if glyph := path.Shape.Glyph(); glyph != nil {
		points.GlyphStyle.Color = path.Color
		points.GlyphStyle.Shape = glyph
		if vp.Options.MarkerSize > 0 {
			points.GlyphStyle.Radius = vg.Points(vp.Options.MarkerSize / 2)
		}
		vp.Plot.Add(points)
	}
	return nil
}

// -------------------------------------------------------------------------
// Grob Grid

// GrobHGrid draws horizontal grid lines at the major y ticks.
type GrobHGrid struct {
	Theme Theme
}

func (g GrobHGrid) Draw(vp Viewport) error {
	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal = g.Theme.Grid
	vp.Plot.Add(grid)
	return nil
}
