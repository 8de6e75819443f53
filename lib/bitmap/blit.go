package bitmap

// Blit copies src into b with its top-left corner at (tx, ty). The source
// must fit within the destination bounds.
func (b *Bitmap) Blit(src *Bitmap, tx, ty int32) {
	srow := int(src.Width) * 4
	drow := int(b.Width) * 4
	for y := 0; y < int(src.Height); y++ {
		doff := (int(ty)+y)*drow + int(tx)*4
		copy(b.Pix[doff:doff+srow], src.Pix[y*srow:(y+1)*srow])
	}
}

// BlitRotated copies src into b rotated 90 degrees clockwise, with the
// rotated image's top-left corner at (tx, ty). The destination region is
// src.Height wide and src.Width tall.
func (b *Bitmap) BlitRotated(src *Bitmap, tx, ty int32) {
	srow := int(src.Width) * 4
	drow := int(b.Width) * 4
	r := int(src.Height) - 1
	for y := 0; y < int(src.Width); y++ {
		doff := (int(ty)+y)*drow + int(tx)*4
		for x := 0; x < int(src.Height); x++ {
			soff := y*4 + (r-x)*srow
			copy(b.Pix[doff+x*4:doff+x*4+4], src.Pix[soff:soff+4])
		}
	}
}
