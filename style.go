package expplot

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// -------------------------------------------------------------------------
// Points

type PointShape int

const (
	BlankPoint PointShape = iota
	CirclePoint
	SquarePoint
	DiamondPoint
	DeltaPoint
	NablaPoint
	PentagonPoint
	SolidCirclePoint
	SolidSquarePoint
	SolidDiamondPoint
	SolidDeltaPoint
	SolidNablaPoint
	SolidPentagonPoint
	CrossPoint
	PlusPoint
	StarPoint
)

var pointShapeNames = []string{
	"blank", "circle", "square", "diamond", "delta", "nabla", "pentagon",
	"solid-circle", "solid-square", "solid-diamond", "solid-delta",
	"solid-nabla", "solid-pentagon", "cross", "plus", "star",
}

func (s PointShape) String() string {
	if s < 0 || int(s) >= len(pointShapeNames) {
		return "blank"
	}
	return pointShapeNames[s]
}

// String2PointShape converts a name or a number to a PointShape.
// Unknown names yield BlankPoint.
func String2PointShape(s string) PointShape {
	n, err := strconv.Atoi(s)
	if err == nil {
		return PointShape(n % (int(StarPoint) + 1))
	}
	for i, name := range pointShapeNames {
		if s == name {
			return PointShape(i)
		}
	}
	return BlankPoint
}

// Glyph returns the glyph drawer for s, nil for BlankPoint.
func (s PointShape) Glyph() draw.GlyphDrawer {
	switch s {
	case CirclePoint:
		return draw.RingGlyph{}
	case SquarePoint:
		return draw.SquareGlyph{}
	case DiamondPoint:
		return polygonGlyph{corners: 4, rotate: 0}
	case DeltaPoint:
		return draw.TriangleGlyph{}
	case NablaPoint:
		return polygonGlyph{corners: 3, rotate: math.Pi}
	case PentagonPoint:
		return polygonGlyph{corners: 5}
	case SolidCirclePoint:
		return draw.CircleGlyph{}
	case SolidSquarePoint:
		return draw.BoxGlyph{}
	case SolidDiamondPoint:
		return polygonGlyph{corners: 4, solid: true}
	case SolidDeltaPoint:
		return draw.PyramidGlyph{}
	case SolidNablaPoint:
		return polygonGlyph{corners: 3, rotate: math.Pi, solid: true}
	case SolidPentagonPoint:
		return polygonGlyph{corners: 5, solid: true}
	case CrossPoint:
		return draw.CrossGlyph{}
	case PlusPoint:
		return draw.PlusGlyph{}
	case StarPoint:
		return starGlyph{}
	}
	return nil
}

// polygonGlyph draws a regular polygon with one corner pointing up
// (before rotation).
type polygonGlyph struct {
	corners int
	rotate  float64
	solid   bool
}

func (g polygonGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	var p vg.Path
	r := float64(sty.Radius)
	for i := 0; i < g.corners; i++ {
		phi := math.Pi/2 + g.rotate + 2*math.Pi*float64(i)/float64(g.corners)
		corner := vg.Point{
			X: pt.X + vg.Length(r*math.Cos(phi)),
			Y: pt.Y + vg.Length(r*math.Sin(phi)),
		}
		if i == 0 {
			p.Move(corner)
		} else {
			p.Line(corner)
		}
	}
	p.Close()
	if g.solid {
		c.SetColor(sty.Color)
		c.Fill(p)
		return
	}
	c.SetLineStyle(draw.LineStyle{Color: sty.Color, Width: vg.Points(0.5)})
	c.Stroke(p)
}

type starGlyph struct{}

func (starGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	draw.CrossGlyph{}.DrawGlyph(c, sty, pt)
	draw.PlusGlyph{}.DrawGlyph(c, sty, pt)
}

// -------------------------------------------------------------------------
// Lines

type LineType int

const (
	BlankLine LineType = iota
	SolidLine
	DashedLine
	DottedLine
	DotDashLine
	LongdashLine
	TwodashLine
)

var lineTypeNames = []string{"blank", "solid", "dashed", "dotted", "dotdash", "longdash", "twodash"}

func (t LineType) String() string {
	if t < 0 || int(t) >= len(lineTypeNames) {
		return "blank"
	}
	return lineTypeNames[t]
}

// String2LineType converts a name, a number or one of the short forms
// "-", "--", ":" and "-." to a LineType.
func String2LineType(s string) LineType {
	n, err := strconv.Atoi(s)
	if err == nil {
		return LineType(n % (int(TwodashLine) + 1))
	}
	switch s {
	case "-":
		return SolidLine
	case "--":
		return DashedLine
	case ":":
		return DottedLine
	case "-.":
		return DotDashLine
	}
	for i, name := range lineTypeNames {
		if s == name {
			return LineType(i)
		}
	}
	return BlankLine
}

// Dashes returns the dash pattern of t. Solid and blank lines have none.
func (t LineType) Dashes() []vg.Length {
	switch t {
	case DashedLine:
		return []vg.Length{vg.Points(4), vg.Points(2)}
	case DottedLine:
		return []vg.Length{vg.Points(1), vg.Points(2)}
	case DotDashLine:
		return []vg.Length{vg.Points(5), vg.Points(2), vg.Points(1), vg.Points(2)}
	case LongdashLine:
		return []vg.Length{vg.Points(8), vg.Points(3)}
	case TwodashLine:
		return []vg.Length{vg.Points(6), vg.Points(2), vg.Points(3), vg.Points(2)}
	}
	return nil
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.RGBA{
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0xff, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"gray20":  {0x33, 0x33, 0x33, 0xff},
	"gray40":  {0x66, 0x66, 0x66, 0xff},
	"gray":    {0x80, 0x80, 0x80, 0xff},
	"grey":    {0x80, 0x80, 0x80, 0xff},
	"gray60":  {0x99, 0x99, 0x99, 0xff},
	"gray80":  {0xcc, 0xcc, 0xcc, 0xff},
	"black":   {0x00, 0x00, 0x00, 0xff},
}

// String2Color parses "#rrggbb", "#rrggbbaa" or one of the BuiltinColors.
func String2Color(s string) (color.Color, error) {
	if strings.HasPrefix(s, "#") && (len(s) == 7 || len(s) == 9) {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("bad color %q: %w", s, err)
		}
		if len(s) == 7 {
			v = v<<8 | 0xff
		}
		return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
	}
	if col, ok := BuiltinColors[s]; ok {
		return col, nil
	}
	return nil, fmt.Errorf("unknown color %q", s)
}
