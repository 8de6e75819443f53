package rectpack

import "math"

// A MaxRectsBinPack packs rectangles into a single fixed-size bin. It keeps a
// set of maximal free rectangles covering the unoccupied bin area; free
// rectangles may partially overlap each other, but none is ever fully
// contained in another.
type MaxRectsBinPack struct {
	binWidth       int32
	binHeight      int32
	usedRectangles []Rect
	freeRectangles []Rect
}

// New creates a packer for an empty bin with the given bounds. Both
// dimensions must be positive.
func New(width, height int32) *MaxRectsBinPack {
	return &MaxRectsBinPack{
		binWidth:  width,
		binHeight: height,
		freeRectangles: []Rect{
			{X: 0, Y: 0, Width: width, Height: height},
		},
	}
}

// Insert finds the best position for a single width x height rectangle under
// the given heuristic and commits it. If rotate is true, the rectangle may be
// placed rotated by 90 degrees; the returned rectangle carries the final
// orientation. Returns the zero Rect (height 0) if the rectangle does not fit
// in either orientation, in which case the bin is unchanged.
func (p *MaxRectsBinPack) Insert(width, height int32, rotate bool, method Heuristic) Rect {
	node, _, _ := p.findPosition(method, rotate, width, height)
	if node.Height == 0 {
		return node
	}
	p.placeRect(node)
	return node
}

// InsertList packs as many of the given rectangle sizes as fit, committing
// one rectangle per round: every remaining size is scored and the globally
// best-scoring placement wins the round. Returns the committed placements in
// placement order. Use Insert instead when consumption order is fixed by the
// caller.
func (p *MaxRectsBinPack) InsertList(rects []Rect, rotate bool, method Heuristic) []Rect {
	remaining := make([]Rect, len(rects))
	copy(remaining, rects)
	var dst []Rect
	for len(remaining) > 0 {
		bestScore1 := int32(math.MaxInt32)
		bestScore2 := int32(math.MaxInt32)
		bestIndex := -1
		var bestNode Rect
		for i, r := range remaining {
			node, score1, score2 := p.scoreRect(r.Width, r.Height, rotate, method)
			if score1 < bestScore1 || (score1 == bestScore1 && score2 < bestScore2) {
				bestScore1 = score1
				bestScore2 = score2
				bestNode = node
				bestIndex = i
			}
		}
		if bestIndex == -1 {
			break
		}
		p.placeRect(bestNode)
		remaining = append(remaining[:bestIndex], remaining[bestIndex+1:]...)
		dst = append(dst, bestNode)
	}
	return dst
}

// Occupancy returns the fraction of the bin area covered by placed
// rectangles, in [0, 1].
func (p *MaxRectsBinPack) Occupancy() float64 {
	var used int64
	for _, r := range p.usedRectangles {
		used += int64(r.Width) * int64(r.Height)
	}
	return float64(used) / (float64(p.binWidth) * float64(p.binHeight))
}

// FreeRects returns a copy of the current free rectangle set.
func (p *MaxRectsBinPack) FreeRects() []Rect {
	r := make([]Rect, len(p.freeRectangles))
	copy(r, p.freeRectangles)
	return r
}

// UsedRects returns a copy of the placed rectangles, in placement order.
func (p *MaxRectsBinPack) UsedRects() []Rect {
	r := make([]Rect, len(p.usedRectangles))
	copy(r, p.usedRectangles)
	return r
}

// scoreRect scores the best placement for a width x height rectangle under
// the given heuristic. Lower scores are better. Returns math.MaxInt32 scores
// if the rectangle does not fit.
func (p *MaxRectsBinPack) scoreRect(width, height int32, rotate bool, method Heuristic) (node Rect, score1, score2 int32) {
	node, score1, score2 = p.findPosition(method, rotate, width, height)
	if node.Height == 0 {
		score1 = math.MaxInt32
		score2 = math.MaxInt32
	}
	return
}

// findPosition dispatches to the position finder for the heuristic. The
// finders report (primary, secondary) scores where lower is better; the
// contact point score grows with quality, so it is negated into the primary
// slot.
func (p *MaxRectsBinPack) findPosition(method Heuristic, rotate bool, width, height int32) (node Rect, score1, score2 int32) {
	switch method {
	case BestShortSideFit:
		return p.findBestShortSideFit(rotate, width, height)
	case BestLongSideFit:
		return p.findBestLongSideFit(rotate, width, height)
	case BestAreaFit:
		return p.findBestAreaFit(rotate, width, height)
	case BottomLeft:
		return p.findBottomLeft(rotate, width, height)
	case ContactPoint:
		node, contact := p.findContactPoint(rotate, width, height)
		return node, -contact, math.MaxInt32
	}
	panic("rectpack: unknown heuristic")
}

// placeRect commits a placement: every free rectangle intersecting node is
// replaced by its residuals outside node, the free list is pruned, and node
// is appended to the used list.
func (p *MaxRectsBinPack) placeRect(node Rect) {
	// Only the rectangles present before splitting are candidates; splits are
	// appended past n and never intersect node.
	n := len(p.freeRectangles)
	for i := 0; i < n; {
		if p.splitFreeNode(p.freeRectangles[i], node) {
			p.freeRectangles = append(p.freeRectangles[:i], p.freeRectangles[i+1:]...)
			n--
		} else {
			i++
		}
	}
	p.pruneFreeList()
	p.usedRectangles = append(p.usedRectangles, node)
}

// splitFreeNode splits free around used, appending up to four residual
// rectangles to the free list. Returns false if the rectangles do not
// intersect, in which case nothing is appended.
func (p *MaxRectsBinPack) splitFreeNode(free, used Rect) bool {
	if used.X >= free.X+free.Width || used.X+used.Width <= free.X ||
		used.Y >= free.Y+free.Height || used.Y+used.Height <= free.Y {
		return false
	}

	if used.X < free.X+free.Width && used.X+used.Width > free.X {
		// Residual above the used rectangle.
		if used.Y > free.Y && used.Y < free.Y+free.Height {
			r := free
			r.Height = used.Y - r.Y
			p.freeRectangles = append(p.freeRectangles, r)
		}
		// Residual below the used rectangle.
		if used.Y+used.Height < free.Y+free.Height {
			r := free
			r.Y = used.Y + used.Height
			r.Height = free.Y + free.Height - (used.Y + used.Height)
			p.freeRectangles = append(p.freeRectangles, r)
		}
	}

	if used.Y < free.Y+free.Height && used.Y+used.Height > free.Y {
		// Residual left of the used rectangle.
		if used.X > free.X && used.X < free.X+free.Width {
			r := free
			r.Width = used.X - r.X
			p.freeRectangles = append(p.freeRectangles, r)
		}
		// Residual right of the used rectangle.
		if used.X+used.Width < free.X+free.Width {
			r := free
			r.X = used.X + used.Width
			r.Width = free.X + free.Width - (used.X + used.Width)
			p.freeRectangles = append(p.freeRectangles, r)
		}
	}

	return true
}

// pruneFreeList removes free rectangles fully contained in another free
// rectangle.
func (p *MaxRectsBinPack) pruneFreeList() {
	free := p.freeRectangles
	for i := 0; i < len(free); i++ {
		for j := i + 1; j < len(free); j++ {
			if free[i].IsContainedIn(free[j]) {
				free = append(free[:i], free[i+1:]...)
				i--
				break
			}
			if free[j].IsContainedIn(free[i]) {
				free = append(free[:j], free[j+1:]...)
				j--
			}
		}
	}
	p.freeRectangles = free
}

func (p *MaxRectsBinPack) findBottomLeft(rotate bool, width, height int32) (node Rect, bestY, bestX int32) {
	bestY = math.MaxInt32
	bestX = math.MaxInt32
	for _, f := range p.freeRectangles {
		if f.Width >= width && f.Height >= height {
			topSideY := f.Y + height
			if topSideY < bestY || (topSideY == bestY && f.X < bestX) {
				node = Rect{X: f.X, Y: f.Y, Width: width, Height: height}
				bestY = topSideY
				bestX = f.X
			}
		}
		if rotate && f.Width >= height && f.Height >= width {
			topSideY := f.Y + width
			if topSideY < bestY || (topSideY == bestY && f.X < bestX) {
				node = Rect{X: f.X, Y: f.Y, Width: height, Height: width}
				bestY = topSideY
				bestX = f.X
			}
		}
	}
	return
}

func (p *MaxRectsBinPack) findBestShortSideFit(rotate bool, width, height int32) (node Rect, bestShort, bestLong int32) {
	bestShort = math.MaxInt32
	bestLong = math.MaxInt32
	for _, f := range p.freeRectangles {
		if f.Width >= width && f.Height >= height {
			short, long := leftoverFit(f, width, height)
			if short < bestShort || (short == bestShort && long < bestLong) {
				node = Rect{X: f.X, Y: f.Y, Width: width, Height: height}
				bestShort = short
				bestLong = long
			}
		}
		if rotate && f.Width >= height && f.Height >= width {
			short, long := leftoverFit(f, height, width)
			if short < bestShort || (short == bestShort && long < bestLong) {
				node = Rect{X: f.X, Y: f.Y, Width: height, Height: width}
				bestShort = short
				bestLong = long
			}
		}
	}
	return
}

func (p *MaxRectsBinPack) findBestLongSideFit(rotate bool, width, height int32) (node Rect, bestLong, bestShort int32) {
	bestShort = math.MaxInt32
	bestLong = math.MaxInt32
	for _, f := range p.freeRectangles {
		if f.Width >= width && f.Height >= height {
			short, long := leftoverFit(f, width, height)
			if long < bestLong || (long == bestLong && short < bestShort) {
				node = Rect{X: f.X, Y: f.Y, Width: width, Height: height}
				bestShort = short
				bestLong = long
			}
		}
		if rotate && f.Width >= height && f.Height >= width {
			short, long := leftoverFit(f, height, width)
			if long < bestLong || (long == bestLong && short < bestShort) {
				node = Rect{X: f.X, Y: f.Y, Width: height, Height: width}
				bestShort = short
				bestLong = long
			}
		}
	}
	return
}

func (p *MaxRectsBinPack) findBestAreaFit(rotate bool, width, height int32) (node Rect, bestArea, bestShort int32) {
	bestArea = math.MaxInt32
	bestShort = math.MaxInt32
	for _, f := range p.freeRectangles {
		areaFit := f.Width*f.Height - width*height
		if f.Width >= width && f.Height >= height {
			short, _ := leftoverFit(f, width, height)
			if areaFit < bestArea || (areaFit == bestArea && short < bestShort) {
				node = Rect{X: f.X, Y: f.Y, Width: width, Height: height}
				bestArea = areaFit
				bestShort = short
			}
		}
		if rotate && f.Width >= height && f.Height >= width {
			short, _ := leftoverFit(f, height, width)
			if areaFit < bestArea || (areaFit == bestArea && short < bestShort) {
				node = Rect{X: f.X, Y: f.Y, Width: height, Height: width}
				bestArea = areaFit
				bestShort = short
			}
		}
	}
	return
}

func (p *MaxRectsBinPack) findContactPoint(rotate bool, width, height int32) (node Rect, bestContact int32) {
	bestContact = -1
	for _, f := range p.freeRectangles {
		if f.Width >= width && f.Height >= height {
			score := p.contactPointScore(f.X, f.Y, width, height)
			if score > bestContact {
				node = Rect{X: f.X, Y: f.Y, Width: width, Height: height}
				bestContact = score
			}
		}
		if rotate && f.Width >= height && f.Height >= width {
			score := p.contactPointScore(f.X, f.Y, height, width)
			if score > bestContact {
				node = Rect{X: f.X, Y: f.Y, Width: height, Height: width}
				bestContact = score
			}
		}
	}
	return
}

// contactPointScore sums the edge lengths along which a rectangle placed at
// (x, y) would touch the bin boundary or an already placed rectangle.
func (p *MaxRectsBinPack) contactPointScore(x, y, width, height int32) int32 {
	var score int32
	if x == 0 || x+width == p.binWidth {
		score += height
	}
	if y == 0 || y+height == p.binHeight {
		score += width
	}
	for _, r := range p.usedRectangles {
		if r.X == x+width || r.X+r.Width == x {
			score += commonIntervalLength(r.Y, r.Y+r.Height, y, y+height)
		}
		if r.Y == y+height || r.Y+r.Height == y {
			score += commonIntervalLength(r.X, r.X+r.Width, x, x+width)
		}
	}
	return score
}

// leftoverFit returns the smaller and larger leftover of placing a width x
// height rectangle in the corner of f.
func leftoverFit(f Rect, width, height int32) (short, long int32) {
	h := f.Width - width
	if h < 0 {
		h = -h
	}
	v := f.Height - height
	if v < 0 {
		v = -v
	}
	return minmax(h, v)
}

func commonIntervalLength(start1, end1, start2, end2 int32) int32 {
	if end1 < start2 || end2 < start1 {
		return 0
	}
	end := end1
	if end2 < end {
		end = end2
	}
	start := start1
	if start2 > start {
		start = start2
	}
	return end - start
}
