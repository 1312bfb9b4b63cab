package surf

import (
	"encoding/binary"
	"image"
	"image/color"
	stddraw "image/draw"
	"math"
)

// Flags carries surface metadata bits that derived surfaces inherit.
type Flags uint32

const (
	// FlagColorKey marks the surface color key as active: pixels equal
	// to the key are treated as transparent when blitted.
	FlagColorKey Flags = 1 << iota

	// FlagRLEAccel hints that color-keyed spans should be run-length
	// encoded.
	FlagRLEAccel
)

// Surface is a rectangular raster image with an owned pixel buffer.
//
// Rows are pitch bytes apart and may carry trailing padding; only the
// first width*BytesPerPixel bytes of each row hold pixels. 1-, 2- and
// 4-byte pixels are native-endian words; 3-byte pixels keep their
// component byte order in memory.
//
// Surfaces are NOT thread-safe. Writers of the same surface must be
// serialized externally, and a concurrent write and read of the same
// surface is undefined.
type Surface struct {
	width  int
	height int
	pitch  int
	pix    []byte

	format   PixelFormat
	flags    Flags
	colorKey uint32

	locked bool
}

// NewSurface allocates a zeroed surface. The pitch is chosen by the
// allocator; rows are padded to a 4-byte boundary.
func NewSurface(width, height int, format PixelFormat) (*Surface, error) {
	bpp := format.BytesPerPixel
	if bpp < 1 || bpp > 4 {
		return nil, ErrUnsupportedDepth
	}
	if width <= 0 || height <= 0 || width > (math.MaxInt-3)/bpp {
		return nil, ErrAllocationFailed
	}
	pitch := (width*bpp + 3) &^ 3
	if height > math.MaxInt/pitch {
		return nil, ErrAllocationFailed
	}
	if format.BitsPerPixel == 0 {
		format.BitsPerPixel = bpp * 8
	}
	return &Surface{
		width:  width,
		height: height,
		pitch:  pitch,
		pix:    make([]byte, pitch*height),
		format: format,
	}, nil
}

// NewSurfaceFrom wraps an existing pixel buffer. Unlike NewSurface it
// places no restriction on the pixel depth; transforms reject depths
// they cannot handle when they are invoked. The buffer is not copied.
func NewSurfaceFrom(pix []byte, width, height, pitch int, format PixelFormat) (*Surface, error) {
	if width <= 0 || height <= 0 || format.BytesPerPixel < 1 {
		return nil, ErrInvalidGeometry
	}
	if pitch < width*format.BytesPerPixel || len(pix) < pitch*height {
		return nil, ErrInvalidGeometry
	}
	if format.BitsPerPixel == 0 {
		format.BitsPerPixel = format.BytesPerPixel * 8
	}
	return &Surface{
		width:  width,
		height: height,
		pitch:  pitch,
		pix:    pix,
		format: format,
	}, nil
}

// NewCompatible allocates a destination surface that can receive
// transformed pixels of src: same flags, depth and channel masks. An
// 8-bit source's palette is copied in full starting at index 0, and an
// active color key is carried over together with the RLE hint.
func NewCompatible(src *Surface, width, height int) (*Surface, error) {
	format := PixelFormat{
		BitsPerPixel:  src.format.BitsPerPixel,
		BytesPerPixel: src.format.BytesPerPixel,
		Rmask:         src.format.Rmask,
		Gmask:         src.format.Gmask,
		Bmask:         src.format.Bmask,
		Amask:         src.format.Amask,
	}
	if src.format.BytesPerPixel == 1 && src.format.Palette != nil {
		format.Palette = src.format.Palette.clone()
	}
	dst, err := NewSurface(width, height, format)
	if err != nil {
		return nil, err
	}
	dst.flags = src.flags
	if src.flags&FlagColorKey != 0 {
		dst.colorKey = src.colorKey
	}
	return dst, nil
}

// checkDepth rejects surfaces the transform kernels cannot handle.
func checkDepth(s *Surface) error {
	if bpp := s.format.BytesPerPixel; bpp < 1 || bpp > 4 {
		return ErrUnsupportedDepth
	}
	return nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Pitch returns the byte distance between the start of consecutive rows.
func (s *Surface) Pitch() int { return s.pitch }

// Pix returns the backing pixel buffer. Callers that write through it
// must hold the surface lock.
func (s *Surface) Pix() []byte { return s.pix }

// Format returns the pixel format descriptor.
func (s *Surface) Format() PixelFormat { return s.format }

// Flags returns the surface metadata bits.
func (s *Surface) Flags() Flags { return s.flags }

// SetColorKey designates key as the transparent pixel value and enables
// the color key. rle additionally requests run-length acceleration.
func (s *Surface) SetColorKey(key uint32, rle bool) {
	s.colorKey = key
	s.flags |= FlagColorKey
	if rle {
		s.flags |= FlagRLEAccel
	}
}

// ColorKey returns the color key value and whether it is enabled.
func (s *Surface) ColorKey() (uint32, bool) {
	return s.colorKey, s.flags&FlagColorKey != 0
}

// Lock acquires the write lock on the pixel buffer. It fails with
// ErrLockFailed if the surface is already locked.
func (s *Surface) Lock() error {
	if s.locked {
		return ErrLockFailed
	}
	s.locked = true
	return nil
}

// Unlock releases the write lock.
func (s *Surface) Unlock() { s.locked = false }

// Locked reports whether the write lock is held.
func (s *Surface) Locked() bool { return s.locked }

// PixelAt returns the raw pixel word at (x, y), or 0 outside the
// surface. 1-, 2- and 4-byte pixels are read as native-endian words.
func (s *Surface) PixelAt(x, y int) uint32 {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0
	}
	i := y*s.pitch + x*s.format.BytesPerPixel
	switch s.format.BytesPerPixel {
	case 1:
		return uint32(s.pix[i])
	case 2:
		return uint32(binary.NativeEndian.Uint16(s.pix[i:]))
	case 3:
		return uint32(s.pix[i]) | uint32(s.pix[i+1])<<8 | uint32(s.pix[i+2])<<16
	default:
		return binary.NativeEndian.Uint32(s.pix[i:])
	}
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return color.RGBA{}
	}
	return s.format.RGBA(s.PixelAt(x, y))
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.RGBAModel
}

// isCanonicalRGBA reports whether pixels are stored as R, G, B, A bytes.
func (s *Surface) isCanonicalRGBA() bool {
	return s.format.BytesPerPixel == 4 &&
		s.format.Rmask == 0x000000ff &&
		s.format.Gmask == 0x0000ff00 &&
		s.format.Bmask == 0x00ff0000 &&
		s.format.Amask == 0xff000000
}

// RGBA returns a copy of the surface as an *image.RGBA, decoding
// through the pixel format when the layout is not already canonical
// 32-bit RGBA.
func (s *Surface) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	if s.isCanonicalRGBA() {
		n := s.width * 4
		for y := 0; y < s.height; y++ {
			copy(img.Pix[y*img.Stride:y*img.Stride+n], s.pix[y*s.pitch:y*s.pitch+n])
		}
		return img
	}
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			img.SetRGBA(x, y, s.format.RGBA(s.PixelAt(x, y)))
		}
	}
	return img
}

// FromImage copies img into a fresh 32-bit RGBA surface.
func FromImage(img image.Image) (*Surface, error) {
	b := img.Bounds()
	s, err := NewSurface(b.Dx(), b.Dy(), FormatRGBA32())
	if err != nil {
		return nil, err
	}
	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		stddraw.Draw(rgba, rgba.Bounds(), img, b.Min, stddraw.Src)
		b = rgba.Bounds()
	}
	n := s.width * 4
	for y := 0; y < s.height; y++ {
		o := rgba.PixOffset(b.Min.X, b.Min.Y+y)
		copy(s.pix[y*s.pitch:y*s.pitch+n], rgba.Pix[o:o+n])
	}
	return s, nil
}
