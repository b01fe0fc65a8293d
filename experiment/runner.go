package experiment

import (
	"fmt"

	"github.com/vdobler/expplot"
	"go.uber.org/zap"
)

// Runner draws the charts of experiments.
type Runner struct {
	Logger   *zap.Logger
	ImageDir string
	Format   string
	Theme    expplot.Theme

	// Overrides are merged into the options of the recipe with the
	// same name.
	Overrides map[string]expplot.Options

	// Viewer shows the saved chart. A nil Viewer shows nothing.
	Viewer expplot.Viewer
}

// NewRunner sets up a runner from cfg.
func NewRunner(cfg *Config, logger *zap.Logger, viewer expplot.Viewer) (*Runner, error) {
	theme, err := cfg.Theme()
	if err != nil {
		return nil, err
	}
	return &Runner{
		Logger:    logger,
		ImageDir:  cfg.Images,
		Format:    cfg.Format,
		Theme:     theme,
		Overrides: cfg.Recipes,
		Viewer:    viewer,
	}, nil
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// Plot returns the prepared chart of experiment name on df.
func (r *Runner) Plot(name string, df *expplot.DataFrame) (*expplot.Plot, error) {
	log := r.logger()
	recipe, err := Lookup(name)
	if err != nil {
		log.Error("Unknown experiment", zap.String("experiment", name), zap.Strings("known", Names()))
		return nil, err
	}

	data, err := recipe.Prepare(df)
	if err != nil {
		return nil, err
	}
	log.Debug("Selected rows",
		zap.String("experiment", name),
		zap.Int("rows", data.N),
		zap.Int("of", df.N))

	p := &expplot.Plot{
		Data:    data,
		Aes:     recipe.Aes(),
		Theme:   r.Theme,
		Options: recipe.Options.Merge(r.Overrides[name]),
		Title:   Title,
		Logger:  log.With(zap.String("experiment", name)),
	}
	if err := p.Prepare(); err != nil {
		return nil, fmt.Errorf("experiment %s: %w", name, err)
	}
	return p, nil
}

// Run draws experiment name on df, saves the chart and hands it to the
// viewer. It returns the path of the chart file.
func (r *Runner) Run(name string, df *expplot.DataFrame) (string, error) {
	p, err := r.Plot(name, df)
	if err != nil {
		return "", err
	}
	recipe, _ := Lookup(name)

	path, err := p.Save(r.ImageDir, recipe.Chart, r.Format)
	if err != nil {
		return "", fmt.Errorf("experiment %s: %w", name, err)
	}
	r.logger().Info("Chart written", zap.String("experiment", name), zap.String("path", path))

	if r.Viewer != nil {
		if err := r.Viewer.Show(path); err != nil {
			r.logger().Warn("Cannot display chart", zap.String("path", path), zap.Error(err))
		}
	}
	return path, nil
}
