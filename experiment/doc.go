// Package experiment holds the fixed chart recipes of the credential
// status benchmark: which rows of the results table go into a chart,
// which columns are mapped to x, y, color and line style, and how the
// chart is sized.
//
// A typical run loads the results, adds the display columns and runs a
// recipe:
//
//	df, err := expplot.ReadFile("data/alldata.csv")
//	...
//	err = experiment.AddDerivedColumns(df)
//	...
//	runner := &experiment.Runner{ImageDir: "images", Format: "pdf"}
//	path, err := runner.Run("states_cost", df)
package experiment
