package experiment

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/vdobler/expplot"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of a plotting run.
type Config struct {
	Data   string `yaml:"data"`   // results table
	Images string `yaml:"images"` // output directory
	Format string `yaml:"format"` // image format, e.g. pdf or png

	// Chart size in inches.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Palette is a qualitative ColorBrewer palette. Colors, if given,
	// take precedence.
	Palette string   `yaml:"palette"`
	Colors  []string `yaml:"colors"`

	// Shapes are the markers of the color groups, LineTypes the dash
	// patterns of the style groups, e.g. [solid-circle, square] and
	// [solid, "--", ":"].
	Shapes    []string `yaml:"shapes"`
	LineTypes []string `yaml:"linetypes"`

	// Recipes overrides the chart options of individual experiments.
	Recipes map[string]expplot.Options `yaml:"recipes"`
}

// DefaultConfig returns the settings used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Data:    "./data/alldata.csv",
		Images:  "./images",
		Format:  "pdf",
		Width:   6.4,
		Height:  4.8,
		Palette: "Set1",
	}
}

// LoadConfig reads a YAML config file. Values not set in the file keep
// their default.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the recipe names, the image format and the styles.
// The format is normalised to lower case.
func (c *Config) Validate() error {
	for name := range c.Recipes {
		if _, err := Lookup(name); err != nil {
			return err
		}
	}
	c.Format = strings.ToLower(strings.TrimPrefix(c.Format, "."))
	if !expplot.NewStringSetFrom(expplot.Formats).Contains(c.Format) {
		return fmt.Errorf("%w %q", expplot.ErrUnknownFormat, c.Format)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("bad chart size %gx%g", c.Width, c.Height)
	}
	_, err := c.Theme()
	return err
}

// Theme returns the chart theme configured by c.
func (c *Config) Theme() (expplot.Theme, error) {
	theme := expplot.DefaultTheme
	if c.Width > 0 && c.Height > 0 {
		theme.Width = vg.Length(c.Width) * vg.Inch
		theme.Height = vg.Length(c.Height) * vg.Inch
	}
	if c.Palette != "" {
		theme.Palette = c.Palette
	}
	if len(c.Colors) > 0 {
		theme.Colors = make([]color.Color, len(c.Colors))
		for i, s := range c.Colors {
			col, err := expplot.String2Color(s)
			if err != nil {
				return expplot.Theme{}, err
			}
			theme.Colors[i] = col
		}
	}
	if len(c.Shapes) > 0 {
		theme.Shapes = make([]expplot.PointShape, len(c.Shapes))
		for i, s := range c.Shapes {
			shape := expplot.String2PointShape(s)
			if shape == expplot.BlankPoint && s != shape.String() {
				return expplot.Theme{}, fmt.Errorf("unknown point shape %q", s)
			}
			theme.Shapes[i] = shape
		}
	}
	if len(c.LineTypes) > 0 {
		theme.LineTypes = make([]expplot.LineType, len(c.LineTypes))
		for i, s := range c.LineTypes {
			lt := expplot.String2LineType(s)
			if lt == expplot.BlankLine && s != lt.String() {
				return expplot.Theme{}, fmt.Errorf("unknown line type %q", s)
			}
			theme.LineTypes[i] = lt
		}
	}
	return theme, nil
}
