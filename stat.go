package expplot

import (
	"fmt"
	"math"
)

// Stat is the interface of statistical transform.
//
// Statistical transform take a data frame and produce an other data frame.
// The data frame passed to Apply has its columns named after the
// aesthetics (x, y, color, linetype).
type Stat interface {
	// Name returns the name of this statistic.
	Name() string

	// NeededAes are the aestetics which must be present in the
	// data frame.
	NeededAes() []string

	// Apply this statistic to data.
	Apply(data *DataFrame) (*DataFrame, error)
}

// StatByName returns the statistic registered under name. The empty
// name is the identity and yields nil.
func StatByName(name string) (Stat, error) {
	switch name {
	case "", "none", "identity":
		return nil, nil
	case "mean":
		return StatMean{}, nil
	}
	return nil, fmt.Errorf("unknown statistic %q", name)
}

// -------------------------------------------------------------------------
// StatMean

// StatMean replaces all rows sharing the same x and group (color and
// linetype) by one row with the mean of their y values. Groups appear
// in the order of their first row. Missing y values are ignored; a group
// without any y value gets NaN.
type StatMean struct{}

var _ Stat = StatMean{}

func (StatMean) Name() string        { return "StatMean" }
func (StatMean) NeededAes() []string { return []string{"x", "y"} }

func (StatMean) Apply(data *DataFrame) (*DataFrame, error) {
	// Missing values are stored as 0 with their bit set in nan, so
	// that all of them fall into one group.
	type key struct {
		x, color, linetype float64
		nan                uint8
	}
	makeKey := func(vals ...float64) key {
		var k key
		for i, v := range vals {
			if math.IsNaN(v) {
				vals[i] = 0
				k.nan |= 1 << i
			}
		}
		k.x, k.color, k.linetype = vals[0], vals[1], vals[2]
		return k
	}
	type acc struct {
		first int
		sum   float64
		n     int
	}

	x, y := data.Columns["x"].Data, data.Columns["y"].Data
	colorData, styleData := levelData(data, "color"), levelData(data, "linetype")

	groups := make(map[key]*acc)
	var order []key
	for i := 0; i < data.N; i++ {
		k := makeKey(x[i], colorData[i], styleData[i])
		a, ok := groups[k]
		if !ok {
			a = &acc{first: i}
			groups[k] = a
			order = append(order, k)
		}
		if !math.IsNaN(y[i]) {
			a.sum += y[i]
			a.n++
		}
	}

	rows := make([]int, len(order))
	for i, k := range order {
		rows[i] = groups[k].first
	}
	result := data.take(rows)
	ry := result.Columns["y"]
	ry.Type = Float
	for i, k := range order {
		a := groups[k]
		ry.Data[i] = a.sum / float64(a.n)
	}
	result.Columns["y"] = ry
	return result, nil
}
