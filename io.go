package expplot

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// ReadFile loads the table in path. The format is determined by the
// file extension: .csv, .parquet or .arrow (also .ipc and .feather).
// The data frame is named after the file without extension.
func ReadFile(path string) (*DataFrame, error) {
	ext := strings.ToLower(filepath.Ext(path))
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var read func(*os.File, string) (*DataFrame, error)
	switch ext {
	case ".csv":
		read = func(f *os.File, name string) (*DataFrame, error) { return ReadCSV(f, name) }
	case ".parquet":
		read = func(f *os.File, name string) (*DataFrame, error) {
			stat, err := f.Stat()
			if err != nil {
				return nil, err
			}
			return ReadParquet(f, stat.Size(), name)
		}
	case ".arrow", ".ipc", ".feather":
		read = func(f *os.File, name string) (*DataFrame, error) { return ReadArrow(f, name) }
	default:
		return nil, fmt.Errorf("%w %q for data file %s", ErrUnknownFormat, ext, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer f.Close()

	df, err := read(f, name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return df, nil
}

// columnBuilder collects the values of one column while reading a file.
// Missing numbers are NaN, which turns an Int column into a Float column.
type columnBuilder struct {
	name    string
	typ     FieldType
	nums    []float64
	strs    []string
	missing bool
}

func (b *columnBuilder) addNum(x float64) { b.nums = append(b.nums, x) }
func (b *columnBuilder) addStr(s string)  { b.strs = append(b.strs, s) }

func (b *columnBuilder) addNull() {
	if b.typ == String {
		b.strs = append(b.strs, "")
		return
	}
	b.missing = true
	b.nums = append(b.nums, math.NaN())
}

func (b *columnBuilder) addTo(df *DataFrame) error {
	switch {
	case b.typ == String:
		return df.AddString(b.name, b.strs)
	case b.typ == Float || b.missing:
		return df.AddFloat(b.name, b.nums)
	}
	ints := make([]int64, len(b.nums))
	for i, x := range b.nums {
		ints[i] = int64(x)
	}
	return df.AddInt(b.name, ints)
}

func buildFrame(name string, builders []*columnBuilder) (*DataFrame, error) {
	df := NewDataFrame(name, nil)
	for _, b := range builders {
		if df.Has(b.name) {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrColumnExists, b.name)
		}
		if err := b.addTo(df); err != nil {
			return nil, err
		}
	}
	return df, nil
}
