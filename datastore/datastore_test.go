package datastore

import "testing"

func TestParseListOptions(t *testing.T) {
	cases := []struct {
		limit, offset int
		want          ListOptions
	}{
		{0, 0, ListOptions{Limit: DefaultLimit, Offset: 0}},
		{10, 5, ListOptions{Limit: 10, Offset: 5}},
		{-1, 5, ListOptions{Limit: -1, Offset: 0}},
		{10, -3, ListOptions{Limit: 10, Offset: 0}},
	}

	for _, c := range cases {
		if got := ParseListOptions(c.limit, c.offset); got != c.want {
			t.Errorf("ParseListOptions(%d, %d): expected %+v, got %+v", c.limit, c.offset, c.want, got)
		}
	}
}
