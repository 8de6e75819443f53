package rectpack

import (
	"fmt"
	"strconv"
	"strings"
)

// A Heuristic selects how free space is scored when choosing where to place
// a rectangle.
type Heuristic uint32

const (
	// BestShortSideFit places the rectangle against the short side of the
	// free rectangle into which it fits best.
	BestShortSideFit Heuristic = iota
	// BestLongSideFit places the rectangle against the long side of the free
	// rectangle into which it fits best.
	BestLongSideFit
	// BestAreaFit places the rectangle into the smallest free rectangle into
	// which it fits.
	BestAreaFit
	// BottomLeft settles the rectangle as low, then as far left, as possible.
	BottomLeft
	// ContactPoint chooses the placement where the rectangle touches the bin
	// edges and other placed rectangles as much as possible.
	ContactPoint
	// Lowest and highest heuristic.
	minHeuristic = BestShortSideFit
	maxHeuristic = ContactPoint
)

var heuristicNames = [...]string{
	BestShortSideFit: "BestShortSideFit",
	BestLongSideFit:  "BestLongSideFit",
	BestAreaFit:      "BestAreaFit",
	BottomLeft:       "BottomLeft",
	ContactPoint:     "ContactPoint",
}

// String implements the Stringer interface.
func (h Heuristic) String() (s string) {
	i := uint32(h)
	if i < uint32(len(heuristicNames)) {
		s = heuristicNames[i]
	}
	if s == "" {
		s = strconv.FormatUint(uint64(i), 10)
	}
	return
}

// ParseHeuristic parses a heuristic by name, case-insensitively.
func ParseHeuristic(s string) (Heuristic, error) {
	for h := minHeuristic; h <= maxHeuristic; h++ {
		if strings.EqualFold(s, heuristicNames[h]) {
			return h, nil
		}
	}
	return 0, fmt.Errorf("unknown heuristic: %q (valid: %s)",
		s, strings.Join(heuristicNames[:], ", "))
}
