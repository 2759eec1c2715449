package algoplatform

import (
	"sort"
	"strings"
)

// Symbols is a set of toolchain-predefined identifiers, each carrying an
// integer value. Defining a symbol without an explicit value gives it the
// value 1, matching the C preprocessor's -DNAME behavior. Reading the value
// of an undefined symbol yields 0, matching how #if arithmetic treats
// undefined identifiers.
type Symbols map[string]int

// NewSymbols returns a symbol set with each named symbol defined to 1.
func NewSymbols(names ...string) Symbols {
	s := make(Symbols, len(names))
	for _, name := range names {
		s[name] = 1
	}

	return s
}

// Define adds name to the set with value 1.
func (s Symbols) Define(name string) {
	s[name] = 1
}

// DefineValue adds name to the set with an explicit value.
func (s Symbols) DefineValue(name string, value int) {
	s[name] = value
}

// Defined reports whether name is present in the set, regardless of value.
func (s Symbols) Defined(name string) bool {
	_, ok := s[name]

	return ok
}

// Value returns the value of name, or 0 when name is undefined.
func (s Symbols) Value(name string) int {
	return s[name]
}

// anyDefined reports whether at least one of the names is defined.
func (s Symbols) anyDefined(names ...string) bool {
	for _, name := range names {
		if s.Defined(name) {
			return true
		}
	}

	return false
}

// Merge copies every symbol from other into s, overwriting existing values.
func (s Symbols) Merge(other Symbols) {
	for name, value := range other {
		s[name] = value
	}
}

// Clone returns an independent copy of the set.
func (s Symbols) Clone() Symbols {
	out := make(Symbols, len(s))
	for name, value := range s {
		out[name] = value
	}

	return out
}

// String renders the set in a stable, sorted form for diagnostics.
func (s Symbols) String() string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}

	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(name)
	}

	return b.String()
}
