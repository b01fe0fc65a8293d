package expplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Theme collects the visual encodings of a plot.
type Theme struct {
	// Shapes are assigned to the levels of the color aesthetic,
	// LineTypes to the levels of the linetype aesthetic. Both are
	// cycled if there are more levels.
	Shapes    []PointShape
	LineTypes []LineType

	// Palette is the name of a qualitative ColorBrewer palette. It is
	// used unless Colors is non-empty.
	Palette string
	Colors  []color.Color

	Width, Height vg.Length

	// Grid is the style of the horizontal grid lines.
	Grid draw.LineStyle
}

var DefaultTheme = Theme{
	Shapes: []PointShape{
		SolidCirclePoint, SolidSquarePoint, SolidDiamondPoint,
		SolidDeltaPoint, SolidNablaPoint, SolidPentagonPoint,
	},
	LineTypes: []LineType{SolidLine, DottedLine, DashedLine, DotDashLine},
	Palette:   "Set1",
	Width:     6.4 * vg.Inch,
	Height:    4.8 * vg.Inch,
	Grid: draw.LineStyle{
		Color:  color.Gray{0x80},
		Width:  vg.Points(0.5),
		Dashes: []vg.Length{vg.Points(3), vg.Points(2)},
	},
}

// PaletteColors returns n colors for the levels of the color aesthetic.
func (t Theme) PaletteColors(n int) ([]color.Color, error) {
	if n == 0 {
		return nil, nil
	}
	base := t.Colors
	if len(base) == 0 {
		name := t.Palette
		if name == "" {
			name = DefaultTheme.Palette
		}
		// ColorBrewer palettes come in sizes from 3 up to a palette
		// dependent maximum.
		size := n
		if size < 3 {
			size = 3
		}
		var err error
		for ; size >= 3; size-- {
			var p palette.Palette
			p, err = brewer.GetPalette(brewer.TypeQualitative, name, size)
			if err == nil {
				base = p.Colors()
				break
			}
		}
		if base == nil {
			return nil, fmt.Errorf("palette %q: %w", name, err)
		}
	}
	colors := make([]color.Color, n)
	for i := range colors {
		colors[i] = base[i%len(base)]
	}
	return colors, nil
}

// Options are the size settings of a single chart. A zero value keeps
// the default of the plotting library.
type Options struct {
	FontSize   float64 `yaml:"fontsize"`   // axis and tick labels, in points
	LegendSize float64 `yaml:"legendsize"` // legend text, in points
	MarkerSize float64 `yaml:"markersize"` // marker diameter, in points
	LineWidth  float64 `yaml:"linewidth"`  // line width, in points

	// Aggregate selects a statistic applied before drawing: "" draws
	// the raw rows, "mean" averages y per x and group.
	Aggregate string `yaml:"aggregate"`
}

// Merge returns o with all non-zero fields of override applied.
func (o Options) Merge(override Options) Options {
	if override.FontSize != 0 {
		o.FontSize = override.FontSize
	}
	if override.LegendSize != 0 {
		o.LegendSize = override.LegendSize
	}
	if override.MarkerSize != 0 {
		o.MarkerSize = override.MarkerSize
	}
	if override.LineWidth != 0 {
		o.LineWidth = override.LineWidth
	}
	if override.Aggregate != "" {
		o.Aggregate = override.Aggregate
	}
	return o
}
