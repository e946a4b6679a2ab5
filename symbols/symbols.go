// Package symbols manages the ordered sets of symbol names over which
// monomials are defined. A symbol set establishes the positional meaning of
// each exponent in a monomial: position i in every monomial of a series
// refers to the i-th symbol of the owning set. Two series can be multiplied
// only when their symbol sets are equal.
package symbols

import (
	"fmt"
	"strings"
)

// Set is an ordered collection of distinct symbol names. Positions are
// stable: once a name is inserted its index never changes. Set values are
// immutable after construction, which makes them safe to share between
// concurrent multiplications without synchronization.
type Set struct {
	names []string
	index map[string]int
}

// New constructs a Set from the given names, preserving their order.
// It returns an error if a name is empty or appears more than once.
//
// Parameters:
//   - names: The symbol names, in positional order.
//
// Returns:
//   - *Set: The constructed symbol set.
//   - error: An error if the name list is invalid.
func New(names ...string) (*Set, error) {
	s := &Set{
		names: make([]string, 0, len(names)),
		index: make(map[string]int, len(names)),
	}
	for _, name := range names {
		if name == "" {
			return nil, fmt.Errorf("symbols: empty symbol name at position %d", len(s.names))
		}
		if _, dup := s.index[name]; dup {
			return nil, fmt.Errorf("symbols: duplicate symbol name %q", name)
		}
		s.index[name] = len(s.names)
		s.names = append(s.names, name)
	}
	return s, nil
}

// MustNew is like New but panics on an invalid name list. It is intended for
// tests and for static sets known to be well-formed.
//
// Parameters:
//   - names: The symbol names, in positional order.
//
// Returns:
//   - *Set: The constructed symbol set.
func MustNew(names ...string) *Set {
	s, err := New(names...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of symbols in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Name returns the symbol name at position i.
// It panics if i is out of range, mirroring slice indexing semantics.
func (s *Set) Name(i int) string {
	return s.names[i]
}

// Names returns a copy of the symbol names in positional order. The copy can
// be mutated freely by the caller without affecting the set.
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// PositionOf returns the position of the given name and whether the name is
// a member of the set.
//
// Parameters:
//   - name: The symbol name to look up.
//
// Returns:
//   - int: The position of the symbol, or 0 if absent.
//   - bool: Whether the symbol is a member.
func (s *Set) PositionOf(name string) (int, bool) {
	if s == nil {
		return 0, false
	}
	i, ok := s.index[name]
	return i, ok
}

// Contains reports whether name is a member of the set.
func (s *Set) Contains(name string) bool {
	_, ok := s.PositionOf(name)
	return ok
}

// Equal reports whether two sets contain the same names in the same order.
// Positional equality is what the multiplier requires: exponent i must mean
// the same symbol on both sides.
//
// Parameters:
//   - o: The set to compare against.
//
// Returns:
//   - bool: true if the sets are positionally identical.
func (s *Set) Equal(o *Set) bool {
	if s == o {
		return true
	}
	if s.Len() != o.Len() {
		return false
	}
	for i, name := range s.names {
		if o.names[i] != name {
			return false
		}
	}
	return true
}

// Merge returns the union of s and o: the names of s in their original
// order, followed by the names of o that are not in s, in o's order.
// Merge never mutates either operand. Callers use the merged set to align
// two series before multiplication; the multiplier itself only checks
// equality.
//
// Parameters:
//   - o: The set to merge with.
//
// Returns:
//   - *Set: A new set containing the union.
func (s *Set) Merge(o *Set) *Set {
	merged := &Set{
		names: make([]string, 0, s.Len()+o.Len()),
		index: make(map[string]int, s.Len()+o.Len()),
	}
	for _, name := range s.names {
		merged.index[name] = len(merged.names)
		merged.names = append(merged.names, name)
	}
	for _, name := range o.names {
		if _, dup := merged.index[name]; dup {
			continue
		}
		merged.index[name] = len(merged.names)
		merged.names = append(merged.names, name)
	}
	return merged
}

// String returns the set in a compact "{x, y, z}" form.
func (s *Set) String() string {
	return "{" + strings.Join(s.names, ", ") + "}"
}
