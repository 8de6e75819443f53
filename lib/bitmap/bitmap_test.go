package bitmap

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rgba(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func TestNew(t *testing.T) {
	im := rgba(2, 2)
	im.SetRGBA(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	im.SetRGBA(1, 1, color.RGBA{R: 40, G: 50, B: 60, A: 255})
	b := New(im, "test", false, false)
	assert.Equal(t, int32(2), b.Width)
	assert.Equal(t, int32(2), b.Height)
	assert.Equal(t, int32(2), b.FrameW)
	assert.Equal(t, int32(2), b.FrameH)
	assert.Equal(t, "test", b.Name)
	assert.Equal(t, []byte{10, 20, 30, 255}, b.Pix[0:4])
	assert.Equal(t, []byte{40, 50, 60, 255}, b.Pix[12:16])
	assert.NotZero(t, b.Hash)
}

func TestPremultiply(t *testing.T) {
	im := rgba(1, 1)
	im.SetRGBA(0, 0, color.RGBA{R: 200, G: 100, B: 50, A: 128})
	b := New(im, "", true, false)
	assert.Equal(t, []byte{100, 50, 25, 128}, b.Pix[0:4])

	// Opaque pixels are unchanged.
	im.SetRGBA(0, 0, color.RGBA{R: 200, G: 100, B: 50, A: 255})
	b = New(im, "", true, false)
	assert.Equal(t, []byte{200, 100, 50, 255}, b.Pix[0:4])
}

func TestTrim(t *testing.T) {
	im := rgba(4, 4)
	for y := 1; y < 3; y++ {
		for x := 1; x < 3; x++ {
			im.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	b := New(im, "", false, true)
	assert.Equal(t, int32(2), b.Width)
	assert.Equal(t, int32(2), b.Height)
	assert.Equal(t, int32(-1), b.FrameX)
	assert.Equal(t, int32(-1), b.FrameY)
	assert.Equal(t, int32(4), b.FrameW)
	assert.Equal(t, int32(4), b.FrameH)
	for i := 0; i < 4; i++ {
		assert.Equal(t, []byte{255, 0, 0, 255}, b.Pix[i*4:i*4+4])
	}
}

func TestTrimTransparent(t *testing.T) {
	b := New(rgba(4, 4), "", false, true)
	assert.Equal(t, int32(4), b.Width)
	assert.Equal(t, int32(4), b.Height)
	assert.Equal(t, int32(0), b.FrameX)
	assert.Equal(t, int32(0), b.FrameY)
}

func TestEqualAndHash(t *testing.T) {
	im := rgba(2, 2)
	im.SetRGBA(0, 1, color.RGBA{R: 9, A: 255})
	a := New(im, "a", false, false)
	b := New(im, "b", false, false)
	assert.True(t, a.Equal(b), "same pixels from different names")
	assert.Equal(t, a.Hash, b.Hash)

	im.SetRGBA(1, 1, color.RGBA{G: 7, A: 255})
	c := New(im, "c", false, false)
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.Hash, c.Hash)

	// Same byte count, different shape.
	d := New(rgba(4, 1), "d", false, false)
	e := New(rgba(1, 4), "e", false, false)
	assert.False(t, d.Equal(e))
	assert.NotEqual(t, d.Hash, e.Hash)
}

func TestBlit(t *testing.T) {
	src := New(rgba(2, 1), "", false, false)
	copy(src.Pix, []byte{1, 1, 1, 255, 2, 2, 2, 255})
	dst := NewEmpty(4, 4)
	dst.Blit(src, 1, 2)
	im := dst.Image()
	assert.Equal(t, color.RGBA{1, 1, 1, 255}, im.RGBAAt(1, 2))
	assert.Equal(t, color.RGBA{2, 2, 2, 255}, im.RGBAAt(2, 2))
	assert.Equal(t, color.RGBA{}, im.RGBAAt(3, 2))
}

func TestBlitRotated(t *testing.T) {
	// Pixels 1..4 in reading order; rotated 90 degrees clockwise the left
	// column ends up as the top row.
	src := New(rgba(2, 2), "", false, false)
	copy(src.Pix, []byte{
		1, 0, 0, 255, 2, 0, 0, 255,
		3, 0, 0, 255, 4, 0, 0, 255,
	})
	dst := NewEmpty(2, 2)
	dst.BlitRotated(src, 0, 0)
	im := dst.Image()
	assert.Equal(t, color.RGBA{3, 0, 0, 255}, im.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{1, 0, 0, 255}, im.RGBAAt(1, 0))
	assert.Equal(t, color.RGBA{4, 0, 0, 255}, im.RGBAAt(0, 1))
	assert.Equal(t, color.RGBA{2, 0, 0, 255}, im.RGBAAt(1, 1))
}

func TestWriteRead(t *testing.T) {
	im := rgba(3, 2)
	im.SetRGBA(2, 1, color.RGBA{R: 11, G: 22, B: 33, A: 255})
	b := New(im, "roundtrip", false, false)
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, b.Write(path))

	require.True(t, IsImageFile(path))
	decoded, err := Read(path)
	require.NoError(t, err)
	got := New(decoded, "roundtrip", false, false)
	assert.True(t, b.Equal(got))
}

func TestIsImageFile(t *testing.T) {
	assert.True(t, IsImageFile("a/b/sprite.PNG"))
	assert.True(t, IsImageFile("tile.bmp"))
	assert.False(t, IsImageFile("notes.txt"))
	assert.False(t, IsImageFile("archive"))
}
