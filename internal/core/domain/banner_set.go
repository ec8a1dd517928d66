package domain

import "slices"

// BannerSet is a set of banner ids. A nil set is empty and read-only; use
// NewBannerSet before calling Add. An empty set excludes nothing.
type BannerSet map[int64]struct{}

// NewBannerSet returns a set holding a copy of ids.
func NewBannerSet(ids ...int64) BannerSet {
	s := make(BannerSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts ids into the set.
func (s BannerSet) Add(ids ...int64) {
	for _, id := range ids {
		s[id] = struct{}{}
	}
}

// Has reports whether id is in the set.
func (s BannerSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the members in ascending order. The result is never nil so it
// can be bound directly as an empty SQL array.
func (s BannerSet) IDs() []int64 {
	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
