package experiment

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vdobler/expplot"
)

// ErrUnknownExperiment is returned for experiment names without a recipe.
var ErrUnknownExperiment = errors.New("unknown experiment")

// Recipe describes one chart: the rows of the results table it shows and
// the columns mapped to the axes and groupings.
type Recipe struct {
	Name  string
	Chart string // file name of the chart without extension

	Filter []expplot.Predicate

	X, Y  string
	Color string // rows with the same value share color and marker
	Style string // rows with the same value share the dash pattern

	Options expplot.Options
}

var (
	mechanisms  = expplot.In("mechanism", "cbsl", "smt")
	allStates   = expplot.In("num_states", 5, 10, 15, 20)
	credentials = expplot.In("num_credentials", 16384)
)

var recipes = map[string]Recipe{
	"states_cost": {
		Name:    "states_cost",
		Chart:   "mechanism_states_cost",
		Filter:  []expplot.Predicate{mechanisms, allStates, credentials},
		X:       "num_states",
		Y:       "update_cost (kgas)",
		Color:   "Mechanism",
		Style:   "Algorithm",
		Options: expplot.Options{FontSize: 13, LegendSize: 11},
	},
	"oracles_cost": {
		Name:  "oracles_cost",
		Chart: "mechanism_oracles_cost",
		Filter: []expplot.Predicate{
			mechanisms,
			expplot.In("num_states", 5),
			credentials,
			expplot.NotEqual("num_oracles", 0),
		},
		X:       "num_oracles",
		Y:       "update_cost (kgas)",
		Color:   "Mechanism",
		Style:   "Algorithm",
		Options: expplot.Options{FontSize: 13, LegendSize: 11, MarkerSize: 8, LineWidth: 1},
	},
	"states_proving_time": {
		Name:  "states_proving_time",
		Chart: "transition_proving_time",
		Filter: []expplot.Predicate{
			mechanisms,
			allStates,
			credentials,
			expplot.In("algorithm", "zkCrossChainSSI"),
		},
		X:       "Number of Oracles",
		Y:       "proving_time (s)",
		Color:   "Number of States",
		Style:   "Mechanism",
		Options: expplot.Options{FontSize: 13, LegendSize: 11, MarkerSize: 8, LineWidth: 1},
	},
}

// Lookup returns the recipe registered as name.
func Lookup(name string) (Recipe, error) {
	r, ok := recipes[name]
	if !ok {
		return Recipe{}, fmt.Errorf("%w %q", ErrUnknownExperiment, name)
	}
	return r, nil
}

// Names returns the names of all recipes in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(recipes))
	for n := range recipes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Aes is the aesthetic mapping of the chart.
func (r Recipe) Aes() expplot.AesMapping {
	return expplot.AesMapping{
		"x":        r.X,
		"y":        r.Y,
		"color":    r.Color,
		"linetype": r.Style,
	}
}

// Prepare selects the rows of the recipe from df and orders them by
// style descending, then by x and color ascending. df is not modified.
func (r Recipe) Prepare(df *expplot.DataFrame) (*expplot.DataFrame, error) {
	data, err := expplot.Select(df, r.Filter...)
	if err != nil {
		return nil, fmt.Errorf("experiment %s: %w", r.Name, err)
	}
	if err := data.Sort(expplot.Asc(r.X), expplot.Asc(r.Color)); err != nil {
		return nil, fmt.Errorf("experiment %s: %w", r.Name, err)
	}
	if err := data.Sort(expplot.Desc(r.Style)); err != nil {
		return nil, fmt.Errorf("experiment %s: %w", r.Name, err)
	}
	return data, nil
}
