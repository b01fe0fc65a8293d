package expplot

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

func column(df *DataFrame, name string) string {
	f := df.Columns[name]
	s := make([]string, df.N)
	for i := range s {
		s[i] = fmt.Sprint(f.Value(i))
	}
	return strings.Join(s, " ")
}

func TestSelect(t *testing.T) {
	df := results(t)

	tests := []struct {
		preds []Predicate
		want  string // resulting cost column
	}{
		{nil, "20 40 10 30 12 33 99"},
		{[]Predicate{In("mechanism", "cbsl", "smt")}, "20 40 10 30 12 33"},
		{[]Predicate{In("num_states", 5)}, "10 30 12 33 99"},
		{[]Predicate{In("num_states", int64(5), 10.0)}, "20 40 10 30 12 33 99"},
		{[]Predicate{NotEqual("algorithm", "A")}, "10 30"},
		{[]Predicate{In("mechanism", "cbsl", "smt"), In("num_states", 5), NotEqual("algorithm", "B")}, "12 33"},
		{[]Predicate{In("mechanism", "unknown")}, ""},
		{[]Predicate{NotEqual("mechanism", "unknown")}, "20 40 10 30 12 33 99"},
	}

	for i, tc := range tests {
		got, err := Select(df, tc.preds...)
		if err != nil {
			t.Errorf("%d: Unexpected error %s", i, err)
			continue
		}
		if c := column(got, "cost"); c != tc.want {
			t.Errorf("%d: Got %q, want %q", i, c, tc.want)
		}
		if len(got.Columns) != len(df.Columns) {
			t.Errorf("%d: Lost columns: %v", i, got.FieldNames())
		}
	}
	if df.N != 7 {
		t.Errorf("Select modified input")
	}
}

func TestSelectIdempotent(t *testing.T) {
	df := results(t)
	preds := []Predicate{In("mechanism", "cbsl", "smt"), NotEqual("num_states", 10)}
	once, err := Select(df, preds...)
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	twice, err := Select(once, preds...)
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	for _, name := range df.FieldNames() {
		if column(once, name) != column(twice, name) {
			t.Errorf("Column %s differs: %q != %q", name, column(once, name), column(twice, name))
		}
	}
}

func TestSelectErrors(t *testing.T) {
	df := results(t)
	if _, err := Select(df, In("nosuch", 1)); !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("Got %v, want ErrUnknownColumn", err)
	}
	if _, err := Select(df, In("num_states", "five")); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Got %v, want ErrTypeMismatch", err)
	}
	if _, err := Select(df, In("mechanism", 3)); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Got %v, want ErrTypeMismatch", err)
	}
	if _, err := Select(df, In("cost", []int{1})); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Got %v, want ErrTypeMismatch", err)
	}
}

func TestPredicateString(t *testing.T) {
	if s := In("num_states", 5, 10).String(); s != "num_states in {5, 10}" {
		t.Errorf("Got %q", s)
	}
	if s := NotEqual("num_oracles", 0).String(); s != "num_oracles not in {0}" {
		t.Errorf("Got %q", s)
	}
}

func TestSort(t *testing.T) {
	df := results(t)
	if err := df.Sort(Asc("num_states"), Asc("mechanism")); err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	// Rows equal in both keys keep their relative order.
	if got := column(df, "cost"); got != "10 12 99 30 33 20 40" {
		t.Errorf("Got %q", got)
	}

	if err := df.Sort(Desc("algorithm")); err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if got := column(df, "cost"); got != "10 30 12 99 33 20 40" {
		t.Errorf("Got %q", got)
	}
	if got := column(df, "algorithm"); got != "B B A A A A A" {
		t.Errorf("Got %q", got)
	}

	if err := df.Sort(Asc("nosuch")); !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("Got %v, want ErrUnknownColumn", err)
	}
}

func TestSortMissingLast(t *testing.T) {
	nan := math.NaN()
	df := NewDataFrame("gaps", nil)
	if err := df.AddFloat("k", []float64{3, nan, 1, nan, 2, 1}); err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if err := df.AddInt("row", []int64{0, 1, 2, 3, 4, 5}); err != nil {
		t.Fatalf("Unexpected error %s", err)
	}

	if err := df.Sort(Asc("k")); err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if got := column(df, "row"); got != "2 5 4 0 1 3" {
		t.Errorf("Ascending: got %q", got)
	}

	if err := df.Sort(Desc("k")); err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if got := column(df, "row"); got != "0 4 2 5 1 3" {
		t.Errorf("Descending: got %q", got)
	}
}
