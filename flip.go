package surf

import "encoding/binary"

// Flip returns a copy of the surface mirrored across the vertical axis
// (horizontal), the horizontal axis (vertical), or both. The source is
// never modified, and flipping the result with the same flags
// reconstructs the original pixel for pixel.
//
// The destination inherits the source's format, palette, color key and
// flags. Fails with ErrUnsupportedDepth for pixel depths outside 1-4
// bytes, ErrAllocationFailed when the destination buffer cannot be
// obtained, and ErrLockFailed when it cannot be locked for writing.
func (s *Surface) Flip(horizontal, vertical bool) (*Surface, error) {
	if err := checkDepth(s); err != nil {
		return nil, err
	}
	dst, err := NewCompatible(s, s.width, s.height)
	if err != nil {
		return nil, err
	}
	if err := dst.Lock(); err != nil {
		return nil, err
	}
	defer dst.Unlock()

	if !horizontal {
		copyRows(dst, s, vertical)
		return dst, nil
	}
	switch s.format.BytesPerPixel {
	case 1:
		flipRows8(dst, s, vertical)
	case 2:
		flipRows16(dst, s, vertical)
	case 3:
		flipRows24(dst, s, vertical)
	case 4:
		flipRows32(dst, s, vertical)
	}
	return dst, nil
}

// srcRow returns the source row feeding destination row y, bottom-up
// when the flip is vertical.
func srcRow(src *Surface, y int, vertical bool) []byte {
	if vertical {
		y = src.height - 1 - y
	}
	return src.pix[y*src.pitch:]
}

// copyRows handles the two cases that need no per-pixel work: whole
// rows are copied forward, in order or bottom-up.
func copyRows(dst, src *Surface, vertical bool) {
	n := src.width * src.format.BytesPerPixel
	for y := 0; y < src.height; y++ {
		s := srcRow(src, y, vertical)
		copy(dst.pix[y*dst.pitch:y*dst.pitch+n], s[:n])
	}
}

func flipRows8(dst, src *Surface, vertical bool) {
	w := src.width
	for y := 0; y < src.height; y++ {
		d := dst.pix[y*dst.pitch:]
		s := srcRow(src, y, vertical)
		for x := 0; x < w; x++ {
			d[x] = s[w-1-x]
		}
	}
}

func flipRows16(dst, src *Surface, vertical bool) {
	w := src.width
	for y := 0; y < src.height; y++ {
		d := dst.pix[y*dst.pitch:]
		s := srcRow(src, y, vertical)
		si := (w - 1) * 2
		for x := 0; x < w; x++ {
			binary.NativeEndian.PutUint16(d[x*2:], binary.NativeEndian.Uint16(s[si:]))
			si -= 2
		}
	}
}

// flipRows24 moves the three component bytes of each pixel in their
// source order, so the channel layout survives regardless of
// endianness.
func flipRows24(dst, src *Surface, vertical bool) {
	w := src.width
	for y := 0; y < src.height; y++ {
		d := dst.pix[y*dst.pitch:]
		s := srcRow(src, y, vertical)
		si := (w - 1) * 3
		di := 0
		for x := 0; x < w; x++ {
			d[di] = s[si]
			d[di+1] = s[si+1]
			d[di+2] = s[si+2]
			di += 3
			si -= 3
		}
	}
}

func flipRows32(dst, src *Surface, vertical bool) {
	w := src.width
	for y := 0; y < src.height; y++ {
		d := dst.pix[y*dst.pitch:]
		s := srcRow(src, y, vertical)
		si := (w - 1) * 4
		for x := 0; x < w; x++ {
			binary.NativeEndian.PutUint32(d[x*4:], binary.NativeEndian.Uint32(s[si:]))
			si -= 4
		}
	}
}
