// Package bitmap provides the RGBA pixel buffers that get packed into
// texture atlases.
package bitmap

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/draw"

	"github.com/cespare/xxhash/v2"
)

// A Bitmap is a tightly packed 32-bit RGBA pixel buffer. The stride is always
// 4*Width. Bitmaps are immutable once loaded, except as a composition target
// for Blit.
type Bitmap struct {
	Name   string
	Width  int32
	Height int32

	// Frame records the bounds before trimming: FrameX and FrameY are the
	// offsets of the original top-left corner relative to the trimmed region
	// (zero or negative), FrameW and FrameH the original size.
	FrameX int32
	FrameY int32
	FrameW int32
	FrameH int32

	Pix []byte

	// Hash fingerprints the trimmed contents (dimensions and pixels). Equal
	// bitmaps always have equal hashes; a hash collision alone does not
	// imply equality.
	Hash uint64
}

// New converts an image to a Bitmap. If premultiply is set, color channels
// are multiplied by their alpha. If trim is set, fully transparent borders
// are removed and the frame fields record the original bounds; an image with
// no opaque pixels is kept untrimmed.
func New(im image.Image, name string, premultiply, trim bool) *Bitmap {
	ri := toRGBA(im)
	xsz := int32(ri.Rect.Dx())
	ysz := int32(ri.Rect.Dy())
	pix := packRGBA(ri)
	if premultiply {
		premultiplyAlpha(pix)
	}

	b := &Bitmap{
		Name:   name,
		Width:  xsz,
		Height: ysz,
		FrameW: xsz,
		FrameH: ysz,
		Pix:    pix,
	}
	if trim {
		b.trim()
	}
	b.Hash = fingerprint(b.Width, b.Height, b.Pix)
	return b
}

// NewEmpty returns a transparent bitmap with the given bounds, for use as a
// composition target.
func NewEmpty(width, height int32) *Bitmap {
	return &Bitmap{
		Width:  width,
		Height: height,
		FrameW: width,
		FrameH: height,
		Pix:    make([]byte, int(width)*int(height)*4),
	}
}

// Equal reports whether two bitmaps have identical dimensions and pixel
// contents. Use this to confirm a fingerprint match.
func (b *Bitmap) Equal(o *Bitmap) bool {
	return b.Width == o.Width && b.Height == o.Height && bytes.Equal(b.Pix, o.Pix)
}

// Image returns the bitmap as an image sharing the same pixel buffer.
func (b *Bitmap) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    b.Pix,
		Stride: int(b.Width) * 4,
		Rect:   image.Rect(0, 0, int(b.Width), int(b.Height)),
	}
}

func toRGBA(im image.Image) *image.RGBA {
	if ri, ok := im.(*image.RGBA); ok {
		return ri
	}
	b := im.Bounds()
	ri := image.NewRGBA(b)
	draw.Draw(ri, b, im, b.Min, draw.Src)
	return ri
}

// packRGBA copies the image into a buffer with no row padding.
func packRGBA(im *image.RGBA) []byte {
	xsz := im.Rect.Dx()
	ysz := im.Rect.Dy()
	orow := xsz * 4
	out := make([]byte, ysz*orow)
	for y := 0; y < ysz; y++ {
		copy(out[y*orow:(y+1)*orow], im.Pix[y*im.Stride:])
	}
	return out
}

func premultiplyAlpha(pix []byte) {
	for i := 0; i < len(pix); i += 4 {
		p := pix[i : i+4 : i+4]
		a := uint32(p[3])
		if a == 255 {
			continue
		}
		p[0] = byte(uint32(p[0]) * a / 255)
		p[1] = byte(uint32(p[1]) * a / 255)
		p[2] = byte(uint32(p[2]) * a / 255)
	}
}

// trim shrinks the bitmap to the smallest rect containing all pixels with
// nonzero alpha, recording the original bounds in the frame fields. A fully
// transparent bitmap is left untouched.
func (b *Bitmap) trim() {
	xsz := int(b.Width)
	ysz := int(b.Height)
	xmin := xsz
	xmax := 0
	ymin := ysz
	ymax := 0
	for y := 0; y < ysz; y++ {
		row := b.Pix[y*xsz*4 : (y+1)*xsz*4 : (y+1)*xsz*4]
		x0 := 0
		x1 := xsz
		for x0 < xsz && row[x0*4+3] == 0 {
			x0++
		}
		for x1 > 0 && row[x1*4-1] == 0 {
			x1--
		}
		if x0 < x1 {
			if x0 < xmin {
				xmin = x0
			}
			if xmax < x1 {
				xmax = x1
			}
			if y < ymin {
				ymin = y
			}
			if ymax < y+1 {
				ymax = y + 1
			}
		}
	}
	if xmin >= xmax || ymin >= ymax {
		return
	}
	if xmin == 0 && ymin == 0 && xmax == xsz && ymax == ysz {
		return
	}
	width := xmax - xmin
	height := ymax - ymin
	out := make([]byte, width*height*4)
	for y := ymin; y < ymax; y++ {
		src := b.Pix[(y*xsz+xmin)*4 : (y*xsz+xmax)*4]
		copy(out[(y-ymin)*width*4:], src)
	}
	b.FrameX = int32(-xmin)
	b.FrameY = int32(-ymin)
	b.Width = int32(width)
	b.Height = int32(height)
	b.Pix = out
}

func fingerprint(width, height int32, pix []byte) uint64 {
	var d xxhash.Digest
	var hdr [8]byte
	binary.LittleEndian.PutUint32(hdr[0:4], uint32(width))
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(height))
	d.Write(hdr[:])
	d.Write(pix)
	return d.Sum64()
}
