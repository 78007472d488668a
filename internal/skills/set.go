// Package skills extracts canonical skill names from free text (resumes and
// job descriptions) by matching against the skill taxonomy and alias table.
package skills

import "sort"

// Set is a set of canonical skill names.
type Set map[string]struct{}

// NewSet builds a Set from the given skill names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

// Add inserts a skill name into the set.
func (s Set) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether the set contains name.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the set's members sorted lexicographically. Ordering is a
// presentation convenience, but it keeps downstream comparisons stable.
func (s Set) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
