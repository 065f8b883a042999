package inventory

import (
	"strconv"
	"strings"
)

// Ingredient is one (Type, count) entry of a canonical multiset
type Ingredient struct {
	Type  Type
	Count int
}

// Multiset is an ingredient list sorted by descending Type with Empty excluded
type Multiset []Ingredient

// Canonicalize folds items into a Multiset
func Canonicalize(items ...Type) Multiset {
	var counts [typeCount]int
	for _, t := range items {
		if t.Valid() {
			counts[t]++
		}
	}
	return fromCounts(counts)
}

// NewMultiset builds a canonical multiset from possibly unsorted, repeated entries
// Non-positive counts and Empty entries are dropped
func NewMultiset(entries ...Ingredient) Multiset {
	var counts [typeCount]int
	for _, e := range entries {
		if e.Type.Valid() && e.Count > 0 {
			counts[e.Type] += e.Count
		}
	}
	return fromCounts(counts)
}

func fromCounts(counts [typeCount]int) Multiset {
	m := make(Multiset, 0, 4)
	for t := typeCount - 1; t > int(Empty); t-- {
		if counts[t] > 0 {
			m = append(m, Ingredient{Type: Type(t), Count: counts[t]})
		}
	}
	return m
}

// Key renders the multiset as a stable map key, e.g. "3x1,2x2"
func (m Multiset) Key() string {
	var b strings.Builder
	for i, ing := range m {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(ing.Type)))
		b.WriteByte('x')
		b.WriteString(strconv.Itoa(ing.Count))
	}
	return b.String()
}

// Empty reports whether the multiset has no ingredients
func (m Multiset) Empty() bool {
	return len(m) == 0
}

// Total returns the sum of all counts
func (m Multiset) Total() int {
	n := 0
	for _, ing := range m {
		n += ing.Count
	}
	return n
}

func (m Multiset) String() string {
	parts := make([]string, len(m))
	for i, ing := range m {
		parts[i] = ing.Type.String() + "x" + strconv.Itoa(ing.Count)
	}
	return strings.Join(parts, " + ")
}
