package atlas

import (
	"errors"
	"fmt"
	"sort"

	"github.com/depp/atlaspack/lib/bitmap"
	"github.com/depp/atlaspack/lib/rectpack"
)

// Options configure a packing session.
type Options struct {
	// Size is the bin width and height, normally a power of two.
	Size int32
	// Pad is the spacing added between bitmaps.
	Pad int32
	// Unique aliases bitmaps with identical contents within a bin.
	Unique bool
	// Rotate allows placing bitmaps rotated 90 degrees clockwise.
	Rotate bool
	// Method selects the placement heuristic.
	Method rectpack.Heuristic
}

// ErrCannotFit means a bitmap does not fit in an empty bin, so no number of
// additional bins can place it.
var ErrCannotFit = errors.New("image does not fit in an empty bin")

// SortByArea sorts bitmaps ascending by area, the order Pack expects so that
// consuming from the end of the queue processes the largest bitmap first.
// The sort is stable to keep runs deterministic.
func SortByArea(images []*bitmap.Bitmap) {
	sort.SliceStable(images, func(i, j int) bool {
		return images[i].Width*images[i].Height < images[j].Width*images[j].Height
	})
}

// PackAll packs the queue into as many bins as necessary, creating a fresh
// Packer per bin. The queue must be sorted ascending by area (see
// SortByArea). A bin that places zero bitmaps while input remains is fatal:
// the offending bitmap exceeds the bin size.
func PackAll(queue []*bitmap.Bitmap, opts Options) ([]*Packer, error) {
	var bins []*Packer
	for len(queue) > 0 {
		p := NewPacker(opts.Size, opts.Size, opts.Pad)
		queue = p.Pack(queue, opts.Unique, opts.Rotate, opts.Method)
		if len(p.Images) == 0 {
			return nil, fmt.Errorf("%q: %w", queue[len(queue)-1].Name, ErrCannotFit)
		}
		bins = append(bins, p)
	}
	return bins, nil
}
