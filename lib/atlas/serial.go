package atlas

import (
	"encoding/binary"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
)

// An ImageEntry describes one image's placement within a texture, including
// the frame rect recorded when transparent borders were trimmed.
type ImageEntry struct {
	Name    string `json:"n" xml:"n,attr"`
	X       int32  `json:"x" xml:"x,attr"`
	Y       int32  `json:"y" xml:"y,attr"`
	Width   int32  `json:"w" xml:"w,attr"`
	Height  int32  `json:"h" xml:"h,attr"`
	FrameX  int32  `json:"fx" xml:"fx,attr"`
	FrameY  int32  `json:"fy" xml:"fy,attr"`
	FrameW  int32  `json:"fw" xml:"fw,attr"`
	FrameH  int32  `json:"fh" xml:"fh,attr"`
	Rotated bool   `json:"r" xml:"r,attr"`
}

// A TextureEntry is one output bin and the images placed in it.
type TextureEntry struct {
	Name   string       `json:"n" xml:"n,attr"`
	Images []ImageEntry `json:"imgs" xml:"Image"`
}

// An Atlas is the serializable metadata for a packing session.
type Atlas struct {
	XMLName  xml.Name       `json:"-" xml:"Atlas"`
	Textures []TextureEntry `json:"t" xml:"Texture"`
}

// Build assembles atlas metadata from finished bins. Texture names are the
// base name followed by the bin index.
func Build(name string, bins []*Packer) *Atlas {
	a := &Atlas{}
	for idx, p := range bins {
		tex := TextureEntry{Name: fmt.Sprintf("%s%d", name, idx)}
		for i, img := range p.Images {
			pt := p.Points[i]
			tex.Images = append(tex.Images, ImageEntry{
				Name:    img.Name,
				X:       pt.X,
				Y:       pt.Y,
				Width:   img.Width,
				Height:  img.Height,
				FrameX:  img.FrameX,
				FrameY:  img.FrameY,
				FrameW:  img.FrameW,
				FrameH:  img.FrameH,
				Rotated: pt.Rot,
			})
		}
		a.Textures = append(a.Textures, tex)
	}
	return a
}

// WriteJSON writes the atlas as indented JSON.
func (a *Atlas) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(a)
}

// WriteXML writes the atlas as indented XML.
func (a *Atlas) WriteXML(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(a); err != nil {
		return err
	}
	return enc.Close()
}

// binaryMagic identifies the binary atlas format.
const binaryMagic = "ATLS"

type binPlacement struct {
	X       int32
	Y       int32
	Width   int32
	Height  int32
	FrameX  int32
	FrameY  int32
	FrameW  int32
	FrameH  int32
	Rotated uint8
}

// WriteBinary writes the atlas in a little-endian binary format: the magic,
// a texture count, then per texture its name, image count, and per image its
// name followed by the placement fields.
func (a *Atlas) WriteBinary(w io.Writer) error {
	if _, err := io.WriteString(w, binaryMagic); err != nil {
		return err
	}
	if err := putU32(w, uint32(len(a.Textures))); err != nil {
		return err
	}
	for _, tex := range a.Textures {
		if err := putString(w, tex.Name); err != nil {
			return err
		}
		if err := putU32(w, uint32(len(tex.Images))); err != nil {
			return err
		}
		for _, img := range tex.Images {
			if err := putString(w, img.Name); err != nil {
				return err
			}
			p := binPlacement{
				X:      img.X,
				Y:      img.Y,
				Width:  img.Width,
				Height: img.Height,
				FrameX: img.FrameX,
				FrameY: img.FrameY,
				FrameW: img.FrameW,
				FrameH: img.FrameH,
			}
			if img.Rotated {
				p.Rotated = 1
			}
			if err := binary.Write(w, binary.LittleEndian, &p); err != nil {
				return err
			}
		}
	}
	return nil
}

func putU32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func putString(w io.Writer, s string) error {
	if err := putU32(w, uint32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}
