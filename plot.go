package expplot

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// ErrUnknownFormat is returned for unsupported image or data file formats.
var ErrUnknownFormat = errors.New("unknown file format")

// Formats lists the file formats a plot can be saved as.
var Formats = []string{"pdf", "svg", "png", "eps", "jpg", "jpeg", "tif", "tiff"}

// Plot is a line chart of Data. The columns mapped to the color and
// linetype aesthetics group the rows into the drawn lines.
type Plot struct {
	// Data is the data to draw.
	Data *DataFrame

	// Aes describes how columns in Data are mapped to the aesthetics
	// x, y, color and linetype.
	Aes AesMapping

	// Geom to draw, defaults to GeomLine.
	Geom Geom

	// Stat is the statistical transformation applied before drawing.
	// A nil Stat is the identity unless Options.Aggregate names one.
	Stat Stat

	// Scales are set up during Prepare, keyed by aesthetic.
	Scales map[string]*Scale

	Theme   Theme
	Options Options

	// Title maps column names to axis and legend titles. A nil Title
	// uses the column names.
	Title func(string) string

	Logger *zap.Logger

	// Grobs and Legend are the result of Prepare.
	Grobs  []Grob
	Legend []LegendEntry

	palette []color.Color
}

// AesMapping controlls the mapping of fields of a data frame to aesthetics.
type AesMapping map[string]string

// Used returns the mapped aesthetics and the distinct field names, both sorted.
func (m AesMapping) Used() (aes, names []string) {
	fields := NewStringSet()
	for a, n := range m {
		aes = append(aes, a)
		fields.Add(n)
	}
	sort.Strings(aes)
	return aes, fields.Elements()
}

func (p *Plot) Warnf(f string, args ...interface{}) {
	p.Logger.Sugar().Warnf(f, args...)
}

func (p *Plot) title(name string) string {
	if p.Title == nil {
		return name
	}
	return p.Title(name)
}

func (p *Plot) colors() ([]color.Color, error) {
	if p.palette != nil {
		return p.palette, nil
	}
	colors, err := p.Theme.PaletteColors(len(discreteLevels(p.Scales["color"])))
	if err != nil {
		return nil, err
	}
	p.palette = colors
	return colors, nil
}

func (p *Plot) setDefaults() {
	if p.Logger == nil {
		p.Logger = zap.NewNop()
	}
	if p.Geom == nil {
		p.Geom = GeomLine{}
	}
	if len(p.Theme.Shapes) == 0 {
		p.Theme.Shapes = DefaultTheme.Shapes
	}
	if len(p.Theme.LineTypes) == 0 {
		p.Theme.LineTypes = DefaultTheme.LineTypes
	}
	if p.Theme.Width == 0 || p.Theme.Height == 0 {
		p.Theme.Width, p.Theme.Height = DefaultTheme.Width, DefaultTheme.Height
	}
	if p.Theme.Grid.Color == nil {
		p.Theme.Grid = DefaultTheme.Grid
	}
	p.Scales = make(map[string]*Scale)
	p.palette = nil
}

// PrepareData returns a data frame with the mapped columns of p.Data
// renamed to their aesthetic. Unmapped columns are dropped.
func (p *Plot) PrepareData() (*DataFrame, error) {
	if p.Data == nil {
		return nil, errors.New("plot has no data")
	}
	slots := NewStringSetFrom(p.Geom.NeededSlots())
	aes, _ := p.Aes.Used()
	slots.Remove(NewStringSetFrom(aes))
	if len(slots) > 0 {
		return nil, fmt.Errorf("geom %s: unmapped aesthetics %v", p.Geom.Name(), slots.Elements())
	}

	known := NewStringSetFrom(append(p.Geom.NeededSlots(), p.Geom.OptionalSlots()...))
	data := NewDataFrame(p.Data.Name, p.Data.Pool)
	data.N = p.Data.N
	for _, a := range aes {
		if !known.Contains(a) {
			p.Warnf("Geom %s ignores aesthetic %s", p.Geom.Name(), a)
			continue
		}
		f, err := p.Data.Column(p.Aes[a])
		if err != nil {
			return nil, err
		}
		if (a == "x" || a == "y") && !f.Numeric() {
			return nil, fmt.Errorf("%w: %s mapped to %q of type %s", ErrNotNumeric, a, p.Aes[a], f.Type)
		}
		data.Columns[a] = f
	}
	return data, nil
}

// ComputeStatistics applies the statistical transform to data.
func (p *Plot) ComputeStatistics(data *DataFrame) (*DataFrame, error) {
	stat := p.Stat
	if stat == nil {
		var err error
		if stat, err = StatByName(p.Options.Aggregate); err != nil {
			return nil, err
		}
	}
	if stat == nil {
		return data, nil
	}
	for _, a := range stat.NeededAes() {
		if !data.Has(a) {
			return nil, fmt.Errorf("stat %s needs aesthetic %s", stat.Name(), a)
		}
	}
	return stat.Apply(data)
}

// TrainScales sets up one scale per mapped aesthetic. Discrete scales
// get the levels of their column in encounter order.
func (p *Plot) TrainScales(data *DataFrame) {
	for _, a := range []string{"x", "y", "color", "linetype"} {
		f, ok := data.Columns[a]
		if !ok {
			continue
		}
		discrete := a == "color" || a == "linetype"
		values := f.Data
		if discrete {
			values, _ = data.Uniques(a)
		}
		scale := NewScale(a, f, discrete)
		scale.Train(values)
		p.Scales[a] = scale
	}

	if s := p.Scales["color"]; s != nil && len(s.Levels) > len(p.Theme.Shapes) {
		p.Warnf("%d levels of %s but only %d point shapes: shapes repeat",
			len(s.Levels), p.Aes["color"], len(p.Theme.Shapes))
	}
	if s := p.Scales["linetype"]; s != nil && len(s.Levels) > len(p.Theme.LineTypes) {
		p.Warnf("%d levels of %s but only %d line types: line types repeat",
			len(s.Levels), p.Aes["linetype"], len(p.Theme.LineTypes))
	}
}

// Prepare runs all steps up to drawing: map the aesthetics, compute
// statistics, train the scales, render the geom to grobs and build the
// legend.
func (p *Plot) Prepare() error {
	p.setDefaults()

	data, err := p.PrepareData()
	if err != nil {
		return err
	}
	if data.N == 0 {
		p.Warnf("No data to plot in %q", data.Name)
	}

	if data, err = p.ComputeStatistics(data); err != nil {
		return err
	}

	p.TrainScales(data)

	if p.Grobs, err = p.Geom.Render(p, data); err != nil {
		return err
	}
	if p.Legend, err = p.BuildLegend(); err != nil {
		return err
	}
	return nil
}

// Draw renders the prepared plot to a gonum plot.
func (p *Plot) Draw() (*plot.Plot, error) {
	if p.Scales == nil {
		if err := p.Prepare(); err != nil {
			return nil, err
		}
	}

	pp := plot.New()
	pp.X.Label.Text = p.title(p.Aes["x"])
	pp.Y.Label.Text = p.title(p.Aes["y"])
	if fs := p.Options.FontSize; fs > 0 {
		pp.X.Label.TextStyle.Font.Size = vg.Points(fs)
		pp.Y.Label.TextStyle.Font.Size = vg.Points(fs)
		pp.X.Tick.Label.Font.Size = vg.Points(fs)
		pp.Y.Tick.Label.Font.Size = vg.Points(fs)
	}
	if ls := p.Options.LegendSize; ls > 0 {
		pp.Legend.TextStyle.Font.Size = vg.Points(ls)
	}
	pp.Legend.Top = true

	if xs := p.Scales["x"]; xs != nil && len(xs.Breaks) > 0 {
		pp.X.Tick.Marker = plot.ConstantTicks(xs.Ticks())
	}

	vp := Viewport{Plot: pp, Options: p.Options}
	grobs := append([]Grob{GrobHGrid{Theme: p.Theme}}, p.Grobs...)
	for _, g := range grobs {
		if err := g.Draw(vp); err != nil {
			return nil, err
		}
	}
	addLegend(pp, p.Legend, p.Options)

	return pp, nil
}

// Save draws p and writes it to dir/name.format, creating dir if
// needed. It returns the path of the written file.
func (p *Plot) Save(dir, name, format string) (string, error) {
	if format == "" {
		format = "pdf"
	}
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	if !NewStringSetFrom(Formats).Contains(format) {
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}

	pp, err := p.Draw()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating image directory: %w", err)
	}
	path := filepath.Join(dir, name+"."+format)
	p.Logger.Info("saving figure", zap.String("path", path))
	if err := pp.Save(p.Theme.Width, p.Theme.Height, path); err != nil {
		return "", fmt.Errorf("saving %s: %w", path, err)
	}
	return path, nil
}
