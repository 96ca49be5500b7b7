// Package sliceset treats slices as sets for comparison purposes.
package sliceset

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b hold the same elements, ignoring order.
// Multiplicity counts: [a a b] is not equal to [a b b].
// Nil and empty slices are equal.
func Equal[T cmp.Ordered](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	as := slices.Clone(a)
	bs := slices.Clone(b)
	slices.Sort(as)
	slices.Sort(bs)
	return slices.Equal(as, bs)
}
