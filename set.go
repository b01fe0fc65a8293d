package expplot

import (
	"sort"
	"strconv"
	"strings"
)

// -------------------------------------------------------------------------
// Float Set

// FloatSet is a set of float64 values. Data frames store all values
// (including interned strings) as float64, so FloatSet doubles as the
// set of levels of any column.
type FloatSet map[float64]struct{}

func NewFloatSet() FloatSet {
	return make(FloatSet)
}

func (s FloatSet) String() string {
	elems := s.Elements()
	t := make([]string, len(elems))
	for i, x := range elems {
		t[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return "[" + strings.Join(t, " ") + "]"
}

// Add adds x to s.
func (s FloatSet) Add(x float64) {
	s[x] = struct{}{}
}

// Del removes x from s.
func (s FloatSet) Del(x float64) {
	delete(s, x)
}

// Contains reports membership of x in s.
func (s FloatSet) Contains(x float64) bool {
	_, ok := s[x]
	return ok
}

// Join adds all elements of t to s.
func (s FloatSet) Join(t FloatSet) {
	for x := range t {
		s[x] = struct{}{}
	}
}

// Equals compares s to a slice t.
func (s FloatSet) Equals(t []float64) bool {
	if len(s) != len(t) {
		return false
	}
	for _, x := range t {
		if _, ok := s[x]; !ok {
			return false
		}
	}
	return true
}

// Elements returns the elements of s in increasing order.
func (s FloatSet) Elements() []float64 {
	elems := make([]float64, 0, len(s))
	for x := range s {
		elems = append(elems, x)
	}
	sort.Float64s(elems)
	return elems
}

// -------------------------------------------------------------------------
// String Set

// StringSet is a set of string values.
type StringSet map[string]struct{}

func NewStringSet() StringSet {
	return make(StringSet)
}

func NewStringSetFrom(init []string) StringSet {
	s := NewStringSet()
	for _, v := range init {
		s.Add(v)
	}
	return s
}

// Add adds x to s.
func (s StringSet) Add(x string) {
	s[x] = struct{}{}
}

// Contains reports membership of x in s.
func (s StringSet) Contains(x string) bool {
	_, ok := s[x]
	return ok
}

// Remove removes all elements of t from s. (Set difference)
func (s StringSet) Remove(t StringSet) {
	for x := range t {
		delete(s, x)
	}
}

// Elements returns the elements of s in lexical order.
func (s StringSet) Elements() []string {
	elems := make([]string, 0, len(s))
	for x := range s {
		elems = append(elems, x)
	}
	sort.Strings(elems)
	return elems
}
