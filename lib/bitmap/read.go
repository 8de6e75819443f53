package bitmap

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// IsImageFile returns true if the filename has an extension of a supported
// image format.
func IsImageFile(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff":
		return true
	}
	return false
}

// Read decodes an image file in any supported format.
func Read(filename string) (image.Image, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	im, _, err := image.Decode(fp)
	if err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", filename, err)
	}
	return im, nil
}

// Write encodes the bitmap to a file; the format is chosen by the file
// extension. JPEG output discards the alpha channel.
func (b *Bitmap) Write(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	im := b.Image()
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png":
		err = png.Encode(fp, im)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(fp, im, nil)
	case ".gif":
		err = gif.Encode(fp, im, nil)
	case ".bmp":
		err = bmp.Encode(fp, im)
	case ".tif", ".tiff":
		err = tiff.Encode(fp, im, nil)
	default:
		err = fmt.Errorf("unsupported image extension: %q", ext)
	}
	if err != nil {
		fp.Close()
		return fmt.Errorf("could not encode %q: %w", filename, err)
	}
	return fp.Close()
}
