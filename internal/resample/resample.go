// Package resample implements pitch-aware nearest-neighbor sampling
// kernels on raw pixel buffers. The kernels move whole pixels of 1-4
// bytes without decoding them, so any channel layout or palette
// survives untouched.
package resample

import "math"

// Buffer describes a raw row-major pixel buffer. Rows are Pitch bytes
// apart; only the first Width*BytesPerPixel bytes of each row hold
// pixels.
type Buffer struct {
	Pix           []byte
	Width, Height int
	Pitch         int
	BytesPerPixel int
}

// ScaleNearest fills dst with src scaled to dst's dimensions. flipX and
// flipY mirror the sampling along the corresponding axis.
func ScaleNearest(dst, src Buffer, flipX, flipY bool) {
	bpp := src.BytesPerPixel

	// Precompute the source byte offset for every destination column.
	xmap := make([]int, dst.Width)
	for x := range xmap {
		sx := x * src.Width / dst.Width
		if flipX {
			sx = src.Width - 1 - sx
		}
		xmap[x] = sx * bpp
	}

	for y := 0; y < dst.Height; y++ {
		sy := y * src.Height / dst.Height
		if flipY {
			sy = src.Height - 1 - sy
		}
		srow := src.Pix[sy*src.Pitch:]
		drow := dst.Pix[y*dst.Pitch:]
		di := 0
		for _, si := range xmap {
			copy(drow[di:di+bpp], srow[si:si+bpp])
			di += bpp
		}
	}
}

// RotateNearest fills dst with src rotated counter-clockwise by angle
// radians and scaled by (zoomX, zoomY), both about the buffer centers.
// Negative factors mirror along their axis. Destination pixels that map
// outside src are left untouched.
func RotateNearest(dst, src Buffer, angle, zoomX, zoomY float64) {
	bpp := src.BytesPerPixel
	sin, cos := math.Sincos(angle)
	srcCX := float64(src.Width) / 2
	srcCY := float64(src.Height) / 2
	dstCX := float64(dst.Width) / 2
	dstCY := float64(dst.Height) / 2

	for y := 0; y < dst.Height; y++ {
		dy := float64(y) + 0.5 - dstCY
		drow := dst.Pix[y*dst.Pitch:]
		for x := 0; x < dst.Width; x++ {
			dx := float64(x) + 0.5 - dstCX
			sx := (cos*dx-sin*dy)/zoomX + srcCX
			sy := (sin*dx+cos*dy)/zoomY + srcCY
			ix := int(math.Floor(sx))
			iy := int(math.Floor(sy))
			if ix < 0 || ix >= src.Width || iy < 0 || iy >= src.Height {
				continue
			}
			copy(drow[x*bpp:(x+1)*bpp], src.Pix[iy*src.Pitch+ix*bpp:][:bpp])
		}
	}
}
