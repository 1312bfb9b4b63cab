package surf

import "image/color"

// PixelFormat describes how raw pixel words map to colors.
//
// BytesPerPixel selects the storage width; the supported transforms
// accept 1, 2, 3 and 4 bytes per pixel. Channel masks locate each
// component inside the pixel word. Palette is consulted instead of the
// masks when BytesPerPixel is 1 and a palette is present.
type PixelFormat struct {
	// BitsPerPixel is informational; it is carried over when deriving
	// a compatible surface.
	BitsPerPixel int

	// BytesPerPixel is the storage width of one pixel.
	BytesPerPixel int

	// Channel masks within the native-endian pixel word.
	Rmask, Gmask, Bmask, Amask uint32

	// Palette maps pixel values to colors for 8-bit surfaces.
	Palette *Palette
}

// Palette is an indexed color table for 8-bit surfaces.
type Palette struct {
	Colors []color.RGBA
}

// clone returns an independent copy of the palette.
func (p *Palette) clone() *Palette {
	if p == nil {
		return nil
	}
	colors := make([]color.RGBA, len(p.Colors))
	copy(colors, p.Colors)
	return &Palette{Colors: colors}
}

// FormatRGBA32 returns the canonical 32-bit RGBA format with component
// bytes in R, G, B, A memory order.
func FormatRGBA32() PixelFormat {
	return PixelFormat{
		BitsPerPixel:  32,
		BytesPerPixel: 4,
		Rmask:         0x000000ff,
		Gmask:         0x0000ff00,
		Bmask:         0x00ff0000,
		Amask:         0xff000000,
	}
}

// FormatIndexed8 returns an 8-bit paletted format using the given
// palette. The palette is not copied.
func FormatIndexed8(p *Palette) PixelFormat {
	return PixelFormat{
		BitsPerPixel:  8,
		BytesPerPixel: 1,
		Palette:       p,
	}
}

// maskShiftLoss derives the bit position and precision loss of a
// channel mask. A zero mask yields loss 8, so the expanded channel
// collapses to zero.
func maskShiftLoss(mask uint32) (shift, loss uint) {
	if mask == 0 {
		return 0, 8
	}
	for mask&1 == 0 {
		shift++
		mask >>= 1
	}
	var bits uint
	for mask&1 == 1 {
		bits++
		mask >>= 1
	}
	return shift, 8 - bits
}

// component expands one masked channel of a pixel word to 8 bits.
func component(pixel, mask uint32) uint8 {
	shift, loss := maskShiftLoss(mask)
	return uint8((pixel & mask) >> shift << loss)
}

// RGBA decodes a raw pixel word. Paletted formats resolve the word as
// a palette index; out-of-range indices decode to zero. Formats without
// an alpha mask decode as fully opaque.
func (f *PixelFormat) RGBA(pixel uint32) color.RGBA {
	if f.BytesPerPixel == 1 && f.Palette != nil {
		i := int(pixel)
		if i >= len(f.Palette.Colors) {
			return color.RGBA{}
		}
		return f.Palette.Colors[i]
	}
	c := color.RGBA{
		R: component(pixel, f.Rmask),
		G: component(pixel, f.Gmask),
		B: component(pixel, f.Bmask),
		A: 0xff,
	}
	if f.Amask != 0 {
		c.A = component(pixel, f.Amask)
	}
	return c
}

// Pixel encodes an 8-bit color into a raw pixel word. Paletted formats
// encode the index of the nearest palette entry.
func (f *PixelFormat) Pixel(c color.RGBA) uint32 {
	if f.BytesPerPixel == 1 && f.Palette != nil {
		return uint32(f.Palette.index(c))
	}
	return packComponent(c.R, f.Rmask) |
		packComponent(c.G, f.Gmask) |
		packComponent(c.B, f.Bmask) |
		packComponent(c.A, f.Amask)
}

func packComponent(v uint8, mask uint32) uint32 {
	if mask == 0 {
		return 0
	}
	shift, loss := maskShiftLoss(mask)
	return uint32(v) >> loss << shift
}

// index returns the palette entry closest to c by squared RGB distance.
func (p *Palette) index(c color.RGBA) int {
	best, bestDist := 0, int(^uint(0)>>1)
	for i, e := range p.Colors {
		dr := int(e.R) - int(c.R)
		dg := int(e.G) - int(c.G)
		db := int(e.B) - int(c.B)
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
