package glsl

import (
	"iter"
	"slices"
	"sort"
)

// NameSet is a set of identifiers.
type NameSet map[string]struct{}

// Add inserts name into the set.
func (s NameSet) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether name is in the set.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the members in ascending byte order.
func (s NameSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// RenameTable maps an original identifier to its short name.
type RenameTable map[string]string

// ShortNames enumerates "a" … "z", "aa", "ab", … : every length-1 label, then
// every length-2 label, each length in lexicographic order. The sequence is
// infinite and every call starts again from "a".
func ShortNames() iter.Seq[string] {
	return func(yield func(string) bool) {
		for length := 1; ; length++ {
			label := make([]byte, length)
			for i := range label {
				label[i] = 'a'
			}

			for {
				if !yield(string(label)) {
					return
				}

				k := length - 1
				for k >= 0 && label[k] == 'z' {
					label[k] = 'a'
					k--
				}

				if k < 0 {
					break
				}

				label[k]++
			}
		}
	}
}

// Assign gives every name the next label of ShortNames, walking the names in
// ascending order so identical input always yields the identical table.
// Labels for which skip returns true are passed over; a nil skip accepts
// every label.
func Assign(names []string, skip func(label string) bool) RenameTable {
	table := make(RenameTable, len(names))
	if len(names) == 0 {
		return table
	}

	next, stop := iter.Pull(ShortNames())
	defer stop()

	for _, name := range slices.Sorted(slices.Values(names)) {
		if _, done := table[name]; done {
			continue
		}

		for {
			label, _ := next()
			if skip != nil && skip(label) {
				continue
			}

			table[name] = label

			break
		}
	}

	return table
}
