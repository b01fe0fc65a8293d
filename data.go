package expplot

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"text/tabwriter"
)

var (
	// ErrUnknownColumn is returned when a column is accessed which is
	// not part of the data frame.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrColumnExists is returned when deriving into a column name
	// which is already in use.
	ErrColumnExists = errors.New("column already exists")

	// ErrTypeMismatch is returned if a value or a column has the wrong type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrNotNumeric is returned if a numeric column was expected.
	ErrNotNumeric = errors.New("column is not numeric")
)

// DataFrame is a table of N rows organised as named columns.
type DataFrame struct {
	Name    string
	N       int
	Columns map[string]Field
	Pool    *StringPool
}

// NewDataFrame sets up an empty data frame. A nil pool will create a
// fresh pool.
func NewDataFrame(name string, pool *StringPool) *DataFrame {
	if pool == nil {
		pool = NewStringPool()
	}
	return &DataFrame{
		Name:    name,
		Columns: make(map[string]Field),
		Pool:    pool,
	}
}

// Field is one column of a data frame.
type Field struct {
	Type FieldType
	Data []float64
	Pool *StringPool
}

// FieldType represents the basic type of a field.
type FieldType uint

const (
	Int FieldType = iota
	Float
	String
)

func (t FieldType) String() string {
	return []string{"Int", "Float", "String"}[t]
}

func NewField(n int, t FieldType, pool *StringPool) Field {
	return Field{
		Type: t,
		Data: make([]float64, n),
		Pool: pool,
	}
}

// Discrete reports whether f holds discrete values.
func (f Field) Discrete() bool {
	return f.Type == Int || f.Type == String
}

// Numeric reports whether the values of f are numbers.
func (f Field) Numeric() bool {
	return f.Type == Int || f.Type == Float
}

// String formats the internal value x of f.
func (f Field) String(x float64) string {
	switch f.Type {
	case Int:
		return strconv.FormatInt(int64(x), 10)
	case Float:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case String:
		return f.Pool.Get(int(x))
	}
	return "???"
}

// Value returns the i'th element of f as int64, float64 or string.
func (f Field) Value(i int) interface{} {
	switch f.Type {
	case Int:
		return int64(f.Data[i])
	case String:
		return f.Pool.Get(int(f.Data[i]))
	}
	return f.Data[i]
}

// Copy returns a deep copy of f. The pool is shared.
func (f Field) Copy() Field {
	c := Field{Type: f.Type, Pool: f.Pool, Data: make([]float64, len(f.Data))}
	copy(c.Data, f.Data)
	return c
}

// Levels returns the set of distinct values in f.
func (f Field) Levels() FloatSet {
	levels := NewFloatSet()
	for _, x := range f.Data {
		levels.Add(x)
	}
	return levels
}

// MinMax returns the minimum and maximum of the non-NaN values in f
// together with their index. The indices are -1 if f has no such values.
func (f Field) MinMax() (min, max float64, mini, maxi int) {
	min, max = math.Inf(+1), math.Inf(-1)
	mini, maxi = -1, -1
	for i, x := range f.Data {
		if math.IsNaN(x) {
			continue
		}
		if x < min {
			min, mini = x, i
		}
		if x > max {
			max, maxi = x, i
		}
	}
	return min, max, mini, maxi
}

// Less compares two internal values of f: strings by their text,
// numbers by value.
func (f Field) Less(a, b float64) bool {
	if f.Type == String {
		return f.Pool.Get(int(a)) < f.Pool.Get(int(b))
	}
	return a < b
}

// -------------------------------------------------------------------------
// Column access

// Has reports whether df has a column with the given name.
func (df *DataFrame) Has(name string) bool {
	_, ok := df.Columns[name]
	return ok
}

// Column returns the column name. Unknown columns yield an error wrapping
// ErrUnknownColumn.
func (df *DataFrame) Column(name string) (Field, error) {
	f, ok := df.Columns[name]
	if !ok {
		return Field{}, fmt.Errorf("%w %q in data frame %q", ErrUnknownColumn, name, df.Name)
	}
	return f, nil
}

// FieldNames returns the sorted column names of df.
func (df *DataFrame) FieldNames() []string {
	names := make([]string, 0, len(df.Columns))
	for n := range df.Columns {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (df *DataFrame) addField(name string, f Field) error {
	if len(df.Columns) == 0 {
		df.N = len(f.Data)
	} else if len(f.Data) != df.N {
		return fmt.Errorf("column %q has %d rows, data frame %q has %d",
			name, len(f.Data), df.Name, df.N)
	}
	df.Columns[name] = f
	return nil
}

// AddFloat adds a Float column.
func (df *DataFrame) AddFloat(name string, data []float64) error {
	f := NewField(len(data), Float, df.Pool)
	copy(f.Data, data)
	return df.addField(name, f)
}

// AddInt adds an Int column.
func (df *DataFrame) AddInt(name string, data []int64) error {
	f := NewField(len(data), Int, df.Pool)
	for i, x := range data {
		f.Data[i] = float64(x)
	}
	return df.addField(name, f)
}

// AddString adds a String column.
func (df *DataFrame) AddString(name string, data []string) error {
	f := NewField(len(data), String, df.Pool)
	for i, s := range data {
		f.Data[i] = float64(df.Pool.Add(s))
	}
	return df.addField(name, f)
}

// Copy makes a deep copy of df.
func (df *DataFrame) Copy() *DataFrame {
	c := NewDataFrame(df.Name, df.Pool)
	c.N = df.N
	for name, f := range df.Columns {
		c.Columns[name] = f.Copy()
	}
	return c
}

// Rename the field oldname to newname.
func (df *DataFrame) Rename(oldname, newname string) {
	if oldname == newname {
		return
	}
	f, ok := df.Columns[oldname]
	if !ok {
		return
	}
	df.Columns[newname] = f
	delete(df.Columns, oldname)
}

// Delete removes field from df.
func (df *DataFrame) Delete(field string) {
	delete(df.Columns, field)
}

// Uniques returns the distinct values of column name in the order in
// which they are first encountered in df. Missing values are returned
// once as NaN.
func (df *DataFrame) Uniques(name string) ([]float64, error) {
	f, err := df.Column(name)
	if err != nil {
		return nil, err
	}
	seen := NewFloatSet()
	var uniq []float64
	missing := false
	for _, x := range f.Data {
		if math.IsNaN(x) {
			if !missing {
				missing = true
				uniq = append(uniq, x)
			}
			continue
		}
		if seen.Contains(x) {
			continue
		}
		seen.Add(x)
		uniq = append(uniq, x)
	}
	return uniq, nil
}

// sameLevel reports whether a and b are the same level. All missing
// values (NaN) form one level.
func sameLevel(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// Levels returns the levels of field.
func Levels(df *DataFrame, field string) FloatSet {
	if f, ok := df.Columns[field]; ok {
		return f.Levels()
	}
	return NewFloatSet()
}

// take returns a new data frame containing the given rows of df.
func (df *DataFrame) take(rows []int) *DataFrame {
	result := NewDataFrame(df.Name, df.Pool)
	result.N = len(rows)
	for name, f := range df.Columns {
		nf := NewField(len(rows), f.Type, f.Pool)
		for i, r := range rows {
			nf.Data[i] = f.Data[r]
		}
		result.Columns[name] = nf
	}
	return result
}

// Filter extracts all rows from df where field==value.
func Filter(df *DataFrame, field string, value float64) *DataFrame {
	f, ok := df.Columns[field]
	if !ok {
		return df.take(nil)
	}
	rows := make([]int, 0, df.N)
	for i, x := range f.Data {
		if x == value {
			rows = append(rows, i)
		}
	}
	return df.take(rows)
}

// Partition splits df into one data frame per level of field.
func Partition(df *DataFrame, field string, levels []float64) []*DataFrame {
	parts := make([]*DataFrame, len(levels))
	for i, level := range levels {
		parts[i] = Filter(df, field, level)
	}
	return parts
}

// Print writes df as a table to out.
func (df *DataFrame) Print(out io.Writer) {
	names := df.FieldNames()
	w := tabwriter.NewWriter(out, 2, 8, 2, ' ', 0)
	fmt.Fprintf(w, "Data frame %q: %d rows\n", df.Name, df.N)
	for _, n := range names {
		fmt.Fprintf(w, "%s\t", n)
	}
	fmt.Fprintln(w)
	for i := 0; i < df.N; i++ {
		for _, n := range names {
			f := df.Columns[n]
			fmt.Fprintf(w, "%s\t", f.String(f.Data[i]))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}

// -------------------------------------------------------------------------
// Derived columns

func (df *DataFrame) derive(src, dst string) (Field, error) {
	f, err := df.Column(src)
	if err != nil {
		return Field{}, err
	}
	if df.Has(dst) {
		return Field{}, fmt.Errorf("%w: %q", ErrColumnExists, dst)
	}
	return f, nil
}

// Scale adds the Float column dst with the values of src divided by divisor.
func (df *DataFrame) Scale(src, dst string, divisor float64) error {
	f, err := df.derive(src, dst)
	if err != nil {
		return err
	}
	if !f.Numeric() {
		return fmt.Errorf("%w: cannot scale %q (type %s)", ErrNotNumeric, src, f.Type)
	}
	scaled := NewField(df.N, Float, df.Pool)
	for i, x := range f.Data {
		scaled.Data[i] = x / divisor
	}
	df.Columns[dst] = scaled
	return nil
}

// MapStrings adds the String column dst with values fn(v) for each value v
// of the String column src.
func (df *DataFrame) MapStrings(src, dst string, fn func(string) string) error {
	f, err := df.derive(src, dst)
	if err != nil {
		return err
	}
	if f.Type != String {
		return fmt.Errorf("%w: cannot relabel %q (type %s)", ErrTypeMismatch, src, f.Type)
	}
	mapped := NewField(df.N, String, df.Pool)
	for i, x := range f.Data {
		mapped.Data[i] = float64(df.Pool.Add(fn(df.Pool.Get(int(x)))))
	}
	df.Columns[dst] = mapped
	return nil
}

// Alias adds the column dst as a copy of src.
func (df *DataFrame) Alias(src, dst string) error {
	f, err := df.derive(src, dst)
	if err != nil {
		return err
	}
	df.Columns[dst] = f.Copy()
	return nil
}
