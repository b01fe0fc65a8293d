package expplot

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// LegendEntry is one line of the legend. Header entries carry only
// their label.
type LegendEntry struct {
	Label    string
	Header   bool
	Color    color.Color
	Shape    PointShape
	LineType LineType
}

// BuildLegend returns the legend entries for the color and linetype
// scales: a header titled after the mapped column followed by one entry
// per level. If both aesthetics map the same column one merged section
// shows marker, dash and color of each level.
func (p *Plot) BuildLegend() ([]LegendEntry, error) {
	colorScale, styleScale := p.Scales["color"], p.Scales["linetype"]
	colors, err := p.colors()
	if err != nil {
		return nil, err
	}
	shape := func(i int) PointShape { return p.Theme.Shapes[i%len(p.Theme.Shapes)] }
	dash := func(i int) LineType { return p.Theme.LineTypes[i%len(p.Theme.LineTypes)] }

	var legend []LegendEntry
	if colorScale != nil && styleScale != nil && p.Aes["color"] == p.Aes["linetype"] {
		legend = append(legend, LegendEntry{Label: p.title(p.Aes["color"]), Header: true})
		for i, label := range colorScale.Labels() {
			legend = append(legend, LegendEntry{
				Label:    label,
				Color:    colors[i],
				Shape:    shape(i),
				LineType: dash(i),
			})
		}
		return legend, nil
	}

	if colorScale != nil {
		legend = append(legend, LegendEntry{Label: p.title(p.Aes["color"]), Header: true})
		for i, label := range colorScale.Labels() {
			legend = append(legend, LegendEntry{
				Label:    label,
				Color:    colors[i],
				Shape:    shape(i),
				LineType: SolidLine,
			})
		}
	}
	if styleScale != nil {
		legend = append(legend, LegendEntry{Label: p.title(p.Aes["linetype"]), Header: true})
		first := color.Color(color.Black)
		if len(colors) > 0 {
			first = colors[0]
		}
		for i, label := range styleScale.Labels() {
			legend = append(legend, LegendEntry{
				Label:    label,
				Color:    first,
				Shape:    BlankPoint,
				LineType: dash(i),
			})
		}
	}
	return legend, nil
}

// thumbnail implements plot.Thumbnailer for a legend entry.
type thumbnail struct {
	line  draw.LineStyle
	glyph draw.GlyphStyle
}

func (t thumbnail) Thumbnail(c *draw.Canvas) {
	if t.line.Width > 0 {
		y := c.Center().Y
		c.StrokeLine2(t.line, c.Min.X, y, c.Max.X, y)
	}
	if t.glyph.Shape != nil {
		c.DrawGlyph(t.glyph, c.Center())
	}
}

// addLegend adds the entries to the legend of pp.
func addLegend(pp *plot.Plot, entries []LegendEntry, opts Options) {
	for _, e := range entries {
		if e.Header {
			pp.Legend.Add(e.Label)
			continue
		}
		t := thumbnail{}
		if e.LineType != BlankLine {
			t.line = draw.LineStyle{
				Color:  e.Color,
				Width:  vg.Points(1),
				Dashes: e.LineType.Dashes(),
			}
			if opts.LineWidth > 0 {
				t.line.Width = vg.Points(opts.LineWidth)
			}
		}
		if glyph := e.Shape.Glyph(); glyph != nil {
			t.glyph = draw.GlyphStyle{Color: e.Color, Shape: glyph, Radius: vg.Points(2.5)}
			if opts.MarkerSize > 0 {
				t.glyph.Radius = vg.Points(opts.MarkerSize / 2)
			}
		}
		pp.Legend.Add(e.Label, t)
	}
}
