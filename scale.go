package expplot

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
)

// Scale maps the values of one aesthetic to its visual representation.
//
// Discrete scales (color, linetype) enumerate their levels in the order
// in which they are first seen during training; the position of a level
// selects its color, shape or dash pattern. Position scales (x, y) keep
// the domain and, for x, the distinct data values as breaks.
type Scale struct {
	Aesthetic string
	Discrete  bool

	// Field is the data frame column the scale was trained on.
	Field Field

	DomainMin, DomainMax float64

	// Levels of a discrete scale in training order.
	Levels []float64

	// Breaks are the tick positions of a position scale.
	Breaks []float64
	seen   FloatSet
}

// NewScale sets up a new, untrained scale for aesthetic.
func NewScale(aesthetic string, field Field, discrete bool) *Scale {
	return &Scale{
		Aesthetic: aesthetic,
		Discrete:  discrete,
		Field:     field,
		DomainMin: math.Inf(+1),
		DomainMax: math.Inf(-1),
		seen:      NewFloatSet(),
	}
}

// Train updates the domain of s with the values in data. Missing values
// (NaN) are one level of a discrete scale and ignored by position scales.
func (s *Scale) Train(data []float64) {
	if s.Discrete {
		for _, x := range data {
			if s.Index(x) == -1 {
				s.Levels = append(s.Levels, x)
			}
		}
		return
	}

	min, max, mini, _ := Field{Type: s.Field.Type, Data: data}.MinMax()
	if mini == -1 {
		return
	}
	s.DomainMin = math.Min(s.DomainMin, min)
	s.DomainMax = math.Max(s.DomainMax, max)
	if s.Aesthetic != "x" {
		return
	}
	for _, x := range data {
		if !math.IsNaN(x) && !s.seen.Contains(x) {
			s.seen.Add(x)
			s.Breaks = append(s.Breaks, x)
		}
	}
}

// Index returns the position of level x in a discrete scale or -1.
func (s *Scale) Index(x float64) int {
	for i, l := range s.Levels {
		if sameLevel(l, x) {
			return i
		}
	}
	return -1
}

// Label formats the value x.
func (s *Scale) Label(x float64) string {
	return s.Field.String(x)
}

// Labels returns the formatted levels of a discrete scale.
func (s *Scale) Labels() []string {
	labels := make([]string, len(s.Levels))
	for i, l := range s.Levels {
		labels[i] = s.Label(l)
	}
	return labels
}

// Ticks returns one labeled tick per break.
func (s *Scale) Ticks() []plot.Tick {
	ticks := make([]plot.Tick, len(s.Breaks))
	for i, b := range s.Breaks {
		ticks[i] = plot.Tick{Value: b, Label: s.Label(b)}
	}
	return ticks
}

func (s *Scale) String() string {
	if s.Discrete {
		return fmt.Sprintf("Scale %s: discrete %v", s.Aesthetic, s.Labels())
	}
	return fmt.Sprintf("Scale %s: [%g,%g] breaks=%v", s.Aesthetic, s.DomainMin, s.DomainMax, s.Breaks)
}
