package expplot

import (
	"math"
	"strings"
	"testing"
)

func TestDiscreteScale(t *testing.T) {
	df := results(t)
	f := df.Columns["mechanism"]
	s := NewScale("color", f, true)
	s.Train(f.Data)

	if got := strings.Join(s.Labels(), " "); got != "cbsl smt rsa" {
		t.Errorf("Got %q", got)
	}
	if i := s.Index(f.Data[6]); i != 2 {
		t.Errorf("Got index %d for rsa, want 2", i)
	}
	if i := s.Index(12345); i != -1 {
		t.Errorf("Got index %d for unknown level", i)
	}
}

func TestPositionScale(t *testing.T) {
	f := Field{Type: Int, Data: []float64{15, 5, 10, 5, 20}}
	s := NewScale("x", f, false)
	s.Train(f.Data)

	if s.DomainMin != 5 || s.DomainMax != 20 {
		t.Errorf("Got domain [%g,%g]", s.DomainMin, s.DomainMax)
	}
	ticks := s.Ticks()
	if len(ticks) != 4 {
		t.Fatalf("Got %d ticks, want 4", len(ticks))
	}
	if ticks[0].Value != 15 || ticks[0].Label != "15" || ticks[1].Label != "5" {
		t.Errorf("Got ticks %v", ticks)
	}

	y := NewScale("y", f, false)
	y.Train(f.Data)
	if len(y.Breaks) != 0 {
		t.Errorf("y scale has breaks %v", y.Breaks)
	}
}

func TestScaleMissingValues(t *testing.T) {
	nan := math.NaN()
	f := Field{Type: Float, Data: []float64{nan, 4, nan, 2, nan}}

	d := NewScale("color", f, true)
	d.Train(f.Data)
	if len(d.Levels) != 3 || !math.IsNaN(d.Levels[0]) {
		t.Errorf("Got levels %v, want [NaN 4 2]", d.Levels)
	}
	if i := d.Index(nan); i != 0 {
		t.Errorf("Got index %d for NaN, want 0", i)
	}

	x := NewScale("x", f, false)
	x.Train(f.Data)
	if x.DomainMin != 2 || x.DomainMax != 4 || len(x.Breaks) != 2 {
		t.Errorf("Got %s", x)
	}

	x.Train([]float64{nan})
	if x.DomainMin != 2 || x.DomainMax != 4 {
		t.Errorf("Missing values changed domain: %s", x)
	}
	x.Train([]float64{7})
	if x.DomainMax != 7 || len(x.Breaks) != 3 {
		t.Errorf("Got %s", x)
	}
}
