package expplot

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Predicate restricts the rows of a data frame by the value of one column.
type Predicate struct {
	Column string
	Values []interface{}
	Negate bool // keep rows whose value is not in Values
}

// In keeps rows whose value in column is one of values.
func In(column string, values ...interface{}) Predicate {
	return Predicate{Column: column, Values: values}
}

// NotEqual keeps rows whose value in column differs from value.
func NotEqual(column string, value interface{}) Predicate {
	return Predicate{Column: column, Values: []interface{}{value}, Negate: true}
}

func (p Predicate) String() string {
	vals := make([]string, len(p.Values))
	for i, v := range p.Values {
		vals[i] = fmt.Sprintf("%v", v)
	}
	if p.Negate {
		return fmt.Sprintf("%s not in {%s}", p.Column, strings.Join(vals, ", "))
	}
	return fmt.Sprintf("%s in {%s}", p.Column, strings.Join(vals, ", "))
}

// encode converts v to the internal representation used by f.
// Strings not present in the pool cannot match and report ok==false.
func encode(f Field, v interface{}) (x float64, ok bool, err error) {
	switch val := v.(type) {
	case string:
		if f.Type != String {
			return 0, false, fmt.Errorf("%w: string %q for %s column", ErrTypeMismatch, val, f.Type)
		}
		i := f.Pool.Find(val)
		return float64(i), i != -1, nil
	case int:
		x = float64(val)
	case int32:
		x = float64(val)
	case int64:
		x = float64(val)
	case float32:
		x = float64(val)
	case float64:
		x = val
	default:
		return 0, false, fmt.Errorf("%w: unsupported value %v (%T)", ErrTypeMismatch, v, v)
	}
	if f.Type == String {
		return 0, false, fmt.Errorf("%w: number %v for String column", ErrTypeMismatch, v)
	}
	return x, true, nil
}

// matcher returns a function reporting whether the internal value x
// satisfies p.
func (p Predicate) matcher(f Field) (func(x float64) bool, error) {
	allowed := NewFloatSet()
	for _, v := range p.Values {
		x, ok, err := encode(f, v)
		if err != nil {
			return nil, fmt.Errorf("predicate %s: %w", p, err)
		}
		if ok {
			allowed.Add(x)
		}
	}
	if p.Negate {
		return func(x float64) bool { return !allowed.Contains(x) }, nil
	}
	return allowed.Contains, nil
}

// Select returns a new data frame with all rows of df which satisfy
// every predicate. Row order is preserved.
func Select(df *DataFrame, preds ...Predicate) (*DataFrame, error) {
	type test struct {
		data  []float64
		match func(float64) bool
	}
	tests := make([]test, len(preds))
	for i, p := range preds {
		f, err := df.Column(p.Column)
		if err != nil {
			return nil, err
		}
		m, err := p.matcher(f)
		if err != nil {
			return nil, err
		}
		tests[i] = test{data: f.Data, match: m}
	}

	rows := make([]int, 0, df.N)
rowLoop:
	for r := 0; r < df.N; r++ {
		for _, t := range tests {
			if !t.match(t.data[r]) {
				continue rowLoop
			}
		}
		rows = append(rows, r)
	}
	return df.take(rows), nil
}

// -------------------------------------------------------------------------
// Sorting

// SortKey names a column to sort by.
type SortKey struct {
	Column     string
	Descending bool
}

func Asc(column string) SortKey  { return SortKey{Column: column} }
func Desc(column string) SortKey { return SortKey{Column: column, Descending: true} }

// Sort reorders the rows of df by keys. The first key is the primary
// one. Sorting is stable: rows equal in all keys keep their order.
// Missing values sort last.
func (df *DataFrame) Sort(keys ...SortKey) error {
	fields := make([]Field, len(keys))
	for i, k := range keys {
		f, err := df.Column(k.Column)
		if err != nil {
			return err
		}
		fields[i] = f
	}

	perm := make([]int, df.N)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		ra, rb := perm[a], perm[b]
		for i, f := range fields {
			xa, xb := f.Data[ra], f.Data[rb]
			if sameLevel(xa, xb) {
				continue
			}
			// Missing values go last in either direction.
			if math.IsNaN(xa) {
				return false
			}
			if math.IsNaN(xb) {
				return true
			}
			if keys[i].Descending {
				return f.Less(xb, xa)
			}
			return f.Less(xa, xb)
		}
		return false
	})

	sorted := df.take(perm)
	df.Columns = sorted.Columns
	return nil
}
