// Package rectpack packs rectangles into fixed-size bins.
package rectpack

// A Rect is an axis-aligned rectangle with integer coordinates. The zero
// value, which has zero height, doubles as the "no placement" sentinel
// returned by the packer, since a real placement always has positive height.
type Rect struct {
	X      int32
	Y      int32
	Width  int32
	Height int32
}

// Area returns the area of the rectangle.
func (r Rect) Area() int32 {
	return r.Width * r.Height
}

// IsContainedIn returns true if r lies entirely within b.
func (r Rect) IsContainedIn(b Rect) bool {
	return r.X >= b.X && r.Y >= b.Y &&
		r.X+r.Width <= b.X+b.Width &&
		r.Y+r.Height <= b.Y+b.Height
}

// CompareShortSide compares rectangles lexicographically on (shorter side,
// longer side), ascending. Returns -1, 0, or +1.
func CompareShortSide(a, b Rect) int {
	as, al := minmax(a.Width, a.Height)
	bs, bl := minmax(b.Width, b.Height)
	if as != bs {
		return cmp(as, bs)
	}
	return cmp(al, bl)
}

// ComparePosition compares rectangles on (x, y, width, height), ascending.
// It is a total order, used for deterministic enumeration.
func ComparePosition(a, b Rect) int {
	if a.X != b.X {
		return cmp(a.X, b.X)
	}
	if a.Y != b.Y {
		return cmp(a.Y, b.Y)
	}
	if a.Width != b.Width {
		return cmp(a.Width, b.Width)
	}
	return cmp(a.Height, b.Height)
}

func minmax(a, b int32) (int32, int32) {
	if a > b {
		return b, a
	}
	return a, b
}

func cmp(a, b int32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func disjoint(a, b Rect) bool {
	return a.X+a.Width <= b.X ||
		b.X+b.Width <= a.X ||
		a.Y+a.Height <= b.Y ||
		b.Y+b.Height <= a.Y
}

// A DisjointRectCollection is a set of rectangles guaranteed to be pairwise
// non-overlapping. It verifies packing results; it is not part of the packing
// algorithm itself.
type DisjointRectCollection struct {
	rects []Rect
}

// Add adds a rectangle to the collection. Returns false and leaves the
// collection unchanged if the rectangle overlaps an existing member.
// Degenerate rectangles are accepted without being stored.
func (c *DisjointRectCollection) Add(r Rect) bool {
	if r.Width == 0 || r.Height == 0 {
		return true
	}
	if !c.Disjoint(r) {
		return false
	}
	c.rects = append(c.rects, r)
	return true
}

// Disjoint returns true if r overlaps no rectangle in the collection.
func (c *DisjointRectCollection) Disjoint(r Rect) bool {
	if r.Width == 0 || r.Height == 0 {
		return true
	}
	for _, a := range c.rects {
		if !disjoint(a, r) {
			return false
		}
	}
	return true
}

// Clear removes all rectangles from the collection.
func (c *DisjointRectCollection) Clear() {
	c.rects = c.rects[:0]
}
