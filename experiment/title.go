package experiment

var titles = map[string]string{
	"num_states":         "Number of States",
	"num_credentials":    "Number of Credentials",
	"mechanism":          "Mechanism",
	"algorithm":          "Algorithm",
	"update_cost (gas)":  "Update Cost (gas)",
	"update_cost (kgas)": "Update Cost (kGas)",
	"mechanism_visual":   "Mechanism",
	"num_oracles":        "Number of Oracles",
}

// Title returns the axis or legend title of column name. Names without
// a known title are returned unchanged.
func Title(name string) string {
	if t, ok := titles[name]; ok {
		return t
	}
	return name
}
