// Package atlas arranges bitmaps into fixed-size texture atlas bins.
package atlas

import (
	"github.com/depp/atlaspack/lib/bitmap"
	"github.com/depp/atlaspack/lib/rectpack"
)

// A Point records where an input bitmap landed within a bin.
type Point struct {
	X int32
	Y int32
	// Rot is true if the bitmap was placed rotated 90 degrees clockwise.
	Rot bool
	// DupID is the index of the earlier placement in the same bin that this
	// bitmap aliases, or -1 if the bitmap occupies its own area.
	DupID int
}

// A Packer fills a single bin. Images and Points are parallel, in the order
// the bitmaps were consumed from the queue.
type Packer struct {
	Width  int32
	Height int32
	Pad    int32

	Images []*bitmap.Bitmap
	Points []Point

	dupLookup map[uint64]int
}

// NewPacker creates a packer for an empty width x height bin. Pad is the
// spacing added to each bitmap's dimensions before placement.
func NewPacker(width, height, pad int32) *Packer {
	return &Packer{
		Width:     width,
		Height:    height,
		Pad:       pad,
		dupLookup: make(map[uint64]int),
	}
}

// Pack consumes bitmaps from the end of the queue (largest first when the
// queue is sorted ascending by area) and places them in the bin until one
// does not fit. The unfitting bitmap is returned to the queue, and the
// leftover queue is returned for the next bin. Afterwards the reported bin
// size is shrunk to the tightest power-of-two step that still covers every
// placement.
//
// With unique set, a bitmap whose contents match an earlier placement in
// this bin is recorded as an alias of that placement and consumes no area.
func (p *Packer) Pack(queue []*bitmap.Bitmap, unique, rotate bool, method rectpack.Heuristic) []*bitmap.Bitmap {
	engine := rectpack.New(p.Width, p.Height)
	var ww, hh int32

	for len(queue) > 0 {
		img := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		if unique {
			if idx, ok := p.dupLookup[img.Hash]; ok && img.Equal(p.Images[idx]) {
				pt := p.Points[idx]
				pt.DupID = idx
				p.Points = append(p.Points, pt)
				p.Images = append(p.Images, img)
				continue
			}
		}

		r := engine.Insert(img.Width+p.Pad, img.Height+p.Pad, rotate, method)
		if r.Height == 0 {
			// Does not fit; leave it for the next bin.
			queue = append(queue, img)
			break
		}

		if unique {
			p.dupLookup[img.Hash] = len(p.Points)
		}
		p.Points = append(p.Points, Point{
			X:     r.X,
			Y:     r.Y,
			Rot:   rotate && img.Width != r.Width-p.Pad,
			DupID: -1,
		})
		p.Images = append(p.Images, img)

		if x := r.X + r.Width; x > ww {
			ww = x
		}
		if y := r.Y + r.Height; y > hh {
			hh = y
		}
	}

	for ww > 0 && p.Width/2 >= ww {
		p.Width /= 2
	}
	for hh > 0 && p.Height/2 >= hh {
		p.Height /= 2
	}
	return queue
}

// Render composites the bin into a single bitmap. Duplicates are skipped;
// they alias the pixels of the placement they refer to.
func (p *Packer) Render() *bitmap.Bitmap {
	out := bitmap.NewEmpty(p.Width, p.Height)
	for i, img := range p.Images {
		pt := p.Points[i]
		if pt.DupID >= 0 {
			continue
		}
		if pt.Rot {
			out.BlitRotated(img, pt.X, pt.Y)
		} else {
			out.Blit(img, pt.X, pt.Y)
		}
	}
	return out
}
