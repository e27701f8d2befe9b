package model

import "sort"

// ResultSet is the ordered collection of entries kept by a scan
type ResultSet struct {
	entries []Entry
}

// NewResultSet creates an empty result set
func NewResultSet() *ResultSet {
	return &ResultSet{}
}

// Append adds an entry at the end
func (r *ResultSet) Append(e Entry) {
	r.entries = append(r.entries, e)
}

// Len returns the number of entries
func (r *ResultSet) Len() int {
	return len(r.entries)
}

// Entries returns the entries in their current order.
// The slice is shared with the result set and must not be modified.
func (r *ResultSet) Entries() []Entry {
	return r.entries
}

// Paths returns the entry paths in their current order
func (r *ResultSet) Paths() []string {
	paths := make([]string, len(r.entries))
	for i, e := range r.entries {
		paths[i] = e.Path
	}
	return paths
}

// SortByPath reorders entries in place using cmp on their paths.
// cmp returns a negative number when a sorts before b.
func (r *ResultSet) SortByPath(cmp func(a, b string) int) {
	sort.SliceStable(r.entries, func(i, j int) bool {
		return cmp(r.entries[i].Path, r.entries[j].Path) < 0
	})
}
