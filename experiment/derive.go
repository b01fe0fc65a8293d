package experiment

import (
	"fmt"

	"github.com/vdobler/expplot"
)

// aliases are copied columns with a display friendly name.
var aliases = []struct{ src, dst string }{
	{"algorithm", "Algorithm"},
	{"num_oracles", "Number of Oracles"},
	{"num_states", "Number of States"},
}

// AddDerivedColumns adds the display columns used by the recipes to df.
// Existing columns are left untouched.
func AddDerivedColumns(df *expplot.DataFrame) error {
	if err := df.Scale("update_cost (gas)", "update_cost (kgas)", 1000); err != nil {
		return fmt.Errorf("derive update cost in kgas: %w", err)
	}
	if err := df.MapStrings("mechanism", "Mechanism", MechanismLabel); err != nil {
		return fmt.Errorf("derive mechanism label: %w", err)
	}
	for _, a := range aliases {
		if err := df.Alias(a.src, a.dst); err != nil {
			return fmt.Errorf("derive %s: %w", a.dst, err)
		}
	}
	return nil
}

// MechanismLabel is the label of a credential status mechanism:
// BSL for cbsl, SMT for everything else.
func MechanismLabel(mechanism string) string {
	if mechanism == "cbsl" {
		return "BSL"
	}
	return "SMT"
}
