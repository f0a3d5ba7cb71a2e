package resolve

import "github.com/logbob0401/libyang/schema"

// SortRevisions places the lexicographically (equivalently,
// chronologically, since dates are YYYY-MM-DD) largest date at index 0.
// The remainder of the slice is left in whatever order it arrived in;
// downstream code only ever consults index 0. A single pass finds the
// max index, then one swap moves it to position 0.
func SortRevisions(revs []schema.Revision) {
	if len(revs) < 2 {
		return
	}
	max := 0
	for i := 1; i < len(revs); i++ {
		if revs[i].Date > revs[max].Date {
			max = i
		}
	}
	if max != 0 {
		revs[0], revs[max] = revs[max], revs[0]
	}
}
