package lr1

import "sort"

// ItemSet is an unordered collection of Items, deduplicated by Item.Key.
type ItemSet struct {
	items map[string]Item
}

// NewItemSet builds an ItemSet from the given items, discarding duplicates.
func NewItemSet(items ...Item) ItemSet {
	s := ItemSet{items: map[string]Item{}}
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add inserts it into s, returning whether s grew as a result.
func (s *ItemSet) Add(it Item) bool {
	k := it.Key()
	if _, ok := s.items[k]; ok {
		return false
	}
	s.items[k] = it
	return true
}

// Has reports whether it is already a member of s.
func (s ItemSet) Has(it Item) bool {
	_, ok := s.items[it.Key()]
	return ok
}

// Len returns the number of items in s.
func (s ItemSet) Len() int { return len(s.items) }

// Elements returns the items of s sorted by Item.Less, giving a
// deterministic, reproducible ordering (spec.md §4.4's requirement that
// item-set construction be order-independent of iteration).
func (s ItemSet) Elements() []Item {
	out := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Key returns a canonical string identity for s, built from its members'
// own canonical keys in sorted order. Two ItemSets with the same members,
// regardless of insertion order, have equal Keys: this is what lets
// Build recognize a goto result as a state the Collection has
// already registered, the same role BTreeSet<LR1Item> equality plays in
// original_source/src/canonical_collection.rs.
func (s ItemSet) Key() string {
	elems := s.Elements()
	keys := make([]string, len(elems))
	for i, it := range elems {
		keys[i] = it.Key()
	}
	var total int
	for _, k := range keys {
		total += len(k) + 1
	}
	out := make([]byte, 0, total)
	for _, k := range keys {
		out = append(out, k...)
		out = append(out, ';')
	}
	return string(out)
}
