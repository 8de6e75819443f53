package rectpack

import "testing"

func TestIsContainedIn(t *testing.T) {
	cases := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"equal", Rect{0, 0, 10, 10}, Rect{0, 0, 10, 10}, true},
		{"inside", Rect{2, 2, 4, 4}, Rect{0, 0, 10, 10}, true},
		{"outside", Rect{0, 0, 10, 10}, Rect{2, 2, 4, 4}, false},
		{"overlap", Rect{5, 5, 10, 10}, Rect{0, 0, 10, 10}, false},
		{"disjoint", Rect{20, 20, 5, 5}, Rect{0, 0, 10, 10}, false},
		{"shared edge", Rect{0, 5, 10, 5}, Rect{0, 0, 10, 10}, true},
	}
	for _, c := range cases {
		if got := c.a.IsContainedIn(c.b); got != c.want {
			t.Errorf("%s: IsContainedIn(%v, %v) = %v, want %v", c.name, c.a, c.b, got, c.want)
		}
	}
}

func TestCompareShortSide(t *testing.T) {
	cases := []struct {
		a, b Rect
		want int
	}{
		{Rect{0, 0, 3, 8}, Rect{0, 0, 5, 6}, -1},
		{Rect{0, 0, 8, 3}, Rect{0, 0, 3, 8}, 0},
		{Rect{0, 0, 4, 9}, Rect{0, 0, 4, 7}, 1},
		{Rect{0, 0, 6, 5}, Rect{0, 0, 5, 6}, 0},
	}
	for _, c := range cases {
		if got := CompareShortSide(c.a, c.b); got != c.want {
			t.Errorf("CompareShortSide(%v, %v) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestComparePosition(t *testing.T) {
	cases := []struct {
		a, b Rect
		want int
	}{
		{Rect{1, 0, 0, 0}, Rect{2, 0, 0, 0}, -1},
		{Rect{1, 5, 0, 0}, Rect{1, 2, 0, 0}, 1},
		{Rect{1, 2, 3, 0}, Rect{1, 2, 4, 0}, -1},
		{Rect{1, 2, 3, 9}, Rect{1, 2, 3, 4}, 1},
		{Rect{1, 2, 3, 4}, Rect{1, 2, 3, 4}, 0},
	}
	for _, c := range cases {
		if got := ComparePosition(c.a, c.b); got != c.want {
			t.Errorf("ComparePosition(%v, %v) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestDisjointRectCollection(t *testing.T) {
	var c DisjointRectCollection
	if !c.Add(Rect{0, 0, 10, 10}) {
		t.Error("could not add to empty collection")
	}
	if !c.Add(Rect{10, 0, 10, 10}) {
		t.Error("could not add edge-adjacent rect")
	}
	if c.Add(Rect{5, 5, 10, 10}) {
		t.Error("added overlapping rect")
	}
	// A rejected add must leave the collection unchanged.
	if !c.Disjoint(Rect{30, 30, 5, 5}) {
		t.Error("collection changed by rejected add")
	}
	if !c.Add(Rect{5, 5, 0, 10}) {
		t.Error("rejected degenerate rect")
	}
	if !c.Add(Rect{5, 5, 10, 0}) {
		t.Error("rejected degenerate rect")
	}
	c.Clear()
	if !c.Add(Rect{5, 5, 10, 10}) {
		t.Error("could not add after Clear")
	}
}
