package surf

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewSurfacePitchAlignment(t *testing.T) {
	tests := []struct {
		w, h, bpp int
		wantPitch int
	}{
		{5, 3, 1, 8},
		{5, 3, 2, 12},
		{5, 3, 3, 16},
		{5, 3, 4, 20},
		{4, 1, 1, 4},
	}
	for _, tt := range tests {
		s, err := NewSurface(tt.w, tt.h, PixelFormat{BytesPerPixel: tt.bpp})
		if err != nil {
			t.Fatalf("NewSurface(%d, %d, bpp=%d): %v", tt.w, tt.h, tt.bpp, err)
		}
		if s.Pitch() != tt.wantPitch {
			t.Errorf("NewSurface(%d, %d, bpp=%d).Pitch() = %d, want %d",
				tt.w, tt.h, tt.bpp, s.Pitch(), tt.wantPitch)
		}
		if len(s.Pix()) != tt.wantPitch*tt.h {
			t.Errorf("buffer length %d, want %d", len(s.Pix()), tt.wantPitch*tt.h)
		}
	}
}

func TestNewSurfaceErrors(t *testing.T) {
	if _, err := NewSurface(4, 4, PixelFormat{BytesPerPixel: 8}); !errors.Is(err, ErrUnsupportedDepth) {
		t.Errorf("bpp=8 error = %v, want ErrUnsupportedDepth", err)
	}
	if _, err := NewSurface(4, 4, PixelFormat{}); !errors.Is(err, ErrUnsupportedDepth) {
		t.Errorf("bpp=0 error = %v, want ErrUnsupportedDepth", err)
	}
	for _, dims := range [][2]int{{0, 4}, {4, 0}, {-1, 4}, {4, -1}} {
		_, err := NewSurface(dims[0], dims[1], FormatRGBA32())
		if !errors.Is(err, ErrAllocationFailed) {
			t.Errorf("NewSurface(%d, %d) error = %v, want ErrAllocationFailed", dims[0], dims[1], err)
		}
	}
	// Depth is checked before dimensions.
	if _, err := NewSurface(0, 0, PixelFormat{BytesPerPixel: 9}); !errors.Is(err, ErrUnsupportedDepth) {
		t.Errorf("depth+dims error = %v, want ErrUnsupportedDepth first", err)
	}
}

func TestNewSurfaceFromGeometry(t *testing.T) {
	buf := make([]byte, 64)
	if _, err := NewSurfaceFrom(buf, 4, 4, 4, FormatRGBA32()); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("pitch < row bytes: error = %v, want ErrInvalidGeometry", err)
	}
	if _, err := NewSurfaceFrom(buf[:10], 4, 4, 16, FormatRGBA32()); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("short buffer: error = %v, want ErrInvalidGeometry", err)
	}
	if _, err := NewSurfaceFrom(buf, 0, 4, 16, FormatRGBA32()); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("zero width: error = %v, want ErrInvalidGeometry", err)
	}

	s, err := NewSurfaceFrom(buf, 2, 2, 16, FormatRGBA32())
	if err != nil {
		t.Fatalf("NewSurfaceFrom: %v", err)
	}
	// The buffer is wrapped, not copied.
	buf[0] = 0x7F
	if s.Pix()[0] != 0x7F {
		t.Error("NewSurfaceFrom copied the buffer instead of wrapping it")
	}
}

func TestNewCompatibleMetadata(t *testing.T) {
	pal := &Palette{Colors: []color.RGBA{{R: 1, A: 255}, {G: 2, A: 255}}}
	src, err := NewSurface(4, 4, FormatIndexed8(pal))
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	src.SetColorKey(1, true)

	dst, err := NewCompatible(src, 8, 2)
	if err != nil {
		t.Fatalf("NewCompatible: %v", err)
	}
	if dst.Width() != 8 || dst.Height() != 2 {
		t.Errorf("dimensions %dx%d, want 8x2", dst.Width(), dst.Height())
	}
	if dst.Format().Palette == src.Format().Palette {
		t.Error("palette was shared instead of copied")
	}
	if key, on := dst.ColorKey(); !on || key != 1 {
		t.Errorf("ColorKey() = (%d, %v), want (1, true)", key, on)
	}
	if dst.Flags() != src.Flags() {
		t.Errorf("flags %v, want %v", dst.Flags(), src.Flags())
	}

	// Without an active key, the key value must not leak over.
	plain, err := NewSurface(2, 2, FormatRGBA32())
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	dst, err = NewCompatible(plain, 2, 2)
	if err != nil {
		t.Fatalf("NewCompatible: %v", err)
	}
	if _, on := dst.ColorKey(); on {
		t.Error("color key enabled on a keyless derivation")
	}
}

func TestLockUnlock(t *testing.T) {
	s, err := NewSurface(2, 2, FormatRGBA32())
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	if s.Locked() {
		t.Error("fresh surface reports locked")
	}
	if err := s.Lock(); err != nil {
		t.Fatalf("Lock: %v", err)
	}
	if !s.Locked() {
		t.Error("Locked() = false after Lock")
	}
	if err := s.Lock(); !errors.Is(err, ErrLockFailed) {
		t.Errorf("second Lock error = %v, want ErrLockFailed", err)
	}
	s.Unlock()
	if s.Locked() {
		t.Error("Locked() = true after Unlock")
	}
	if err := s.Lock(); err != nil {
		t.Errorf("relock after Unlock: %v", err)
	}
}

func TestPixelAt(t *testing.T) {
	for _, bpp := range []int{1, 2, 3, 4} {
		want := []uint32{0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F}
		s := newWordSurface(t, 3, 2, bpp, 5, want)
		wantWords(t, s, want)
		if got := s.PixelAt(-1, 0); got != 0 {
			t.Errorf("bpp=%d: PixelAt(-1, 0) = %#x, want 0", bpp, got)
		}
		if got := s.PixelAt(0, 2); got != 0 {
			t.Errorf("bpp=%d: PixelAt(0, 2) = %#x, want 0", bpp, got)
		}
	}
}

func TestImageRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for i := range img.Pix {
		img.Pix[i] = byte(i * 7)
	}
	s, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	if s.Width() != 3 || s.Height() != 2 {
		t.Fatalf("dimensions %dx%d, want 3x2", s.Width(), s.Height())
	}
	back := s.RGBA()
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if back.RGBAAt(x, y) != img.RGBAAt(x, y) {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, back.RGBAAt(x, y), img.RGBAAt(x, y))
			}
		}
	}
}

func TestFromImageNonZeroOrigin(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 13, 22))
	img.SetRGBA(10, 20, color.RGBA{R: 200, A: 255})
	img.SetRGBA(12, 21, color.RGBA{B: 100, A: 255})

	s, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	if s.Width() != 3 || s.Height() != 2 {
		t.Fatalf("dimensions %dx%d, want 3x2", s.Width(), s.Height())
	}
	if got := s.At(0, 0); got != (color.RGBA{R: 200, A: 255}) {
		t.Errorf("At(0, 0) = %v, want translated origin pixel", got)
	}
	if got := s.At(2, 1); got != (color.RGBA{B: 100, A: 255}) {
		t.Errorf("At(2, 1) = %v, want translated corner pixel", got)
	}
}

func TestSurfaceImplementsImage(t *testing.T) {
	s, err := NewSurface(2, 2, FormatRGBA32())
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	var img image.Image = s
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("Bounds() = %v, want (0,0)-(2,2)", img.Bounds())
	}
	if img.ColorModel() != color.RGBAModel {
		t.Error("ColorModel() is not RGBAModel")
	}
	if img.At(5, 5) != (color.RGBA{}) {
		t.Error("At outside bounds is not the zero color")
	}
}

func TestRGBADecodesNonCanonicalLayout(t *testing.T) {
	// BGRA byte order: B at the low byte of the native word.
	f := PixelFormat{
		BytesPerPixel: 4,
		Rmask:         0x00ff0000,
		Gmask:         0x0000ff00,
		Bmask:         0x000000ff,
		Amask:         0xff000000,
	}
	s, err := NewSurface(1, 1, f)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	if err := s.Lock(); err != nil {
		t.Fatalf("Lock: %v", err)
	}
	putWord(s.Pix(), 4, 0xFF102030)
	s.Unlock()

	img := s.RGBA()
	want := color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}
	if got := img.RGBAAt(0, 0); got != want {
		t.Errorf("decoded pixel = %v, want %v", got, want)
	}
}

func TestSetColorKey(t *testing.T) {
	s, err := NewSurface(2, 2, FormatRGBA32())
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	if _, on := s.ColorKey(); on {
		t.Error("fresh surface has an active color key")
	}
	s.SetColorKey(0xCAFE, false)
	key, on := s.ColorKey()
	if !on || key != 0xCAFE {
		t.Errorf("ColorKey() = (%#x, %v), want (0xcafe, true)", key, on)
	}
	if s.Flags()&FlagRLEAccel != 0 {
		t.Error("RLE flag set without being requested")
	}
	s.SetColorKey(0xCAFE, true)
	if s.Flags()&FlagRLEAccel == 0 {
		t.Error("RLE flag not set when requested")
	}
}

func TestRGBAFastPathMatchesDecode(t *testing.T) {
	s := rgbaSurface(t, 5, 3)
	img := s.RGBA()
	n := s.Width() * 4
	for y := 0; y < s.Height(); y++ {
		got := img.Pix[y*img.Stride : y*img.Stride+n]
		want := s.Pix()[y*s.Pitch() : y*s.Pitch()+n]
		if !bytes.Equal(got, want) {
			t.Errorf("row %d differs from the raw buffer", y)
		}
	}
}
