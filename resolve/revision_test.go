package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logbob0401/libyang/schema"
)

func TestSortRevisions(t *testing.T) {
	for _, tc := range []struct {
		name  string
		dates []string
		want0 string
	}{
		{name: "already sorted", dates: []string{"2020-01-01", "2019-01-01"}, want0: "2020-01-01"},
		{name: "needs swap", dates: []string{"2019-01-01", "2020-01-01"}, want0: "2020-01-01"},
		{name: "three entries, max in middle", dates: []string{"2018-01-01", "2021-06-01", "2020-01-01"}, want0: "2021-06-01"},
		{name: "single entry", dates: []string{"2020-01-01"}, want0: "2020-01-01"},
		{name: "empty", dates: []string{}, want0: ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			revs := make([]schema.Revision, len(tc.dates))
			for i, d := range tc.dates {
				revs[i] = schema.Revision{Date: d}
			}
			SortRevisions(revs)
			if len(revs) == 0 {
				return
			}
			assert.Equal(t, tc.want0, revs[0].Date)
		})
	}
}
