package surf

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/surf/internal/resample"
)

// xdrawBackend is the built-in resampler. Non-smooth transforms use
// nearest-neighbor sampling on the raw pixel buffer, so every supported
// depth keeps its format, palette and color key. Smooth transforms
// resample through golang.org/x/image/draw with a bilinear kernel and
// always produce a 32-bit RGBA surface.
type xdrawBackend struct{}

func init() {
	Register("xdraw", 10, func() (Backend, error) {
		return xdrawBackend{}, nil
	}, nil)
}

func (xdrawBackend) Capabilities() Capabilities {
	return Capabilities{
		IndependentXYZoom: true,
		NegativeZoom:      true,
		Version:           Version{Major: VersionMajor, Minor: VersionMinor, Micro: VersionPatch},
	}
}

// scaleDim applies a zoom factor to one dimension, rounding to nearest
// and clamping to a minimum of one pixel.
func scaleDim(n int, zoom float64) int {
	d := int(math.Floor(float64(n)*math.Abs(zoom) + 0.5))
	if d < 1 {
		d = 1
	}
	return d
}

// quarterTurns reports whether angle is an exact multiple of 90 degrees
// and, if so, how many quarter turns it represents in [0, 3].
func quarterTurns(angle float64) (int, bool) {
	q := angle / 90
	if q != math.Trunc(q) {
		return 0, false
	}
	turns := int(math.Mod(q, 4))
	if turns < 0 {
		turns += 4
	}
	return turns, true
}

func (xdrawBackend) ZoomSize(width, height int, zoomX, zoomY float64) (int, int) {
	return scaleDim(width, zoomX), scaleDim(height, zoomY)
}

// RotozoomSize returns the bounding box of the scaled source rectangle
// rotated by angle. Multiples of 90 degrees are resolved without
// trigonometry so the 90-degree family is exact.
func (b xdrawBackend) RotozoomSize(width, height int, angle, zoomX, zoomY float64) (int, int) {
	w := scaleDim(width, zoomX)
	h := scaleDim(height, zoomY)
	if turns, exact := quarterTurns(angle); exact {
		if turns%2 == 1 {
			return h, w
		}
		return w, h
	}
	rad := angle * math.Pi / 180
	sin, cos := math.Sincos(rad)
	sin, cos = math.Abs(sin), math.Abs(cos)
	sw := float64(width) * math.Abs(zoomX)
	sh := float64(height) * math.Abs(zoomY)
	// The epsilon keeps floating-point overshoot from adding a pixel.
	dw := int(math.Ceil(sw*cos + sh*sin - 1e-9))
	dh := int(math.Ceil(sw*sin + sh*cos - 1e-9))
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}
	return dw, dh
}

func (b xdrawBackend) Zoom(src *Surface, zoomX, zoomY float64, smooth bool) (*Surface, error) {
	if err := checkDepth(src); err != nil {
		return nil, err
	}
	dw, dh := b.ZoomSize(src.Width(), src.Height(), zoomX, zoomY)
	if smooth {
		return zoomSmooth(src, dw, dh, zoomX < 0, zoomY < 0)
	}
	dst, err := NewCompatible(src, dw, dh)
	if err != nil {
		return nil, err
	}
	if err := dst.Lock(); err != nil {
		return nil, err
	}
	defer dst.Unlock()
	resample.ScaleNearest(rawBuffer(dst), rawBuffer(src), zoomX < 0, zoomY < 0)
	return dst, nil
}

func (b xdrawBackend) Rotozoom(src *Surface, angle, zoomX, zoomY float64, smooth bool) (*Surface, error) {
	if err := checkDepth(src); err != nil {
		return nil, err
	}
	if turns, exact := quarterTurns(angle); exact && turns == 0 {
		return b.Zoom(src, zoomX, zoomY, smooth)
	}
	dw, dh := b.RotozoomSize(src.Width(), src.Height(), angle, zoomX, zoomY)
	rad := angle * math.Pi / 180
	if smooth {
		return rotozoomSmooth(src, dw, dh, rad, zoomX, zoomY)
	}
	dst, err := NewCompatible(src, dw, dh)
	if err != nil {
		return nil, err
	}
	if err := dst.Lock(); err != nil {
		return nil, err
	}
	defer dst.Unlock()
	resample.RotateNearest(rawBuffer(dst), rawBuffer(src), rad, zoomX, zoomY)
	return dst, nil
}

// rawBuffer exposes a surface's pixel memory to the resample kernels.
func rawBuffer(s *Surface) resample.Buffer {
	return resample.Buffer{
		Pix:           s.Pix(),
		Width:         s.Width(),
		Height:        s.Height(),
		Pitch:         s.Pitch(),
		BytesPerPixel: s.Format().BytesPerPixel,
	}
}

// zoomSmooth scales through a bilinear kernel. The result is 32-bit
// RGBA regardless of the source format; mirroring for negative factors
// reuses the flip kernel on the scaled result.
func zoomSmooth(src *Surface, dw, dh int, flipX, flipY bool) (*Surface, error) {
	img := src.RGBA()
	out := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.BiLinear.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	dst, err := FromImage(out)
	if err != nil {
		return nil, err
	}
	if flipX || flipY {
		return dst.Flip(flipX, flipY)
	}
	return dst, nil
}

// rotozoomSmooth resamples through an affine bilinear transform. The
// matrix maps source to destination in y-down image coordinates; a
// positive angle rotates counter-clockwise on screen.
func rotozoomSmooth(src *Surface, dw, dh int, rad, zoomX, zoomY float64) (*Surface, error) {
	img := src.RGBA()
	out := image.NewRGBA(image.Rect(0, 0, dw, dh))

	sin, cos := math.Sincos(rad)
	m00 := cos * zoomX
	m01 := sin * zoomY
	m10 := -sin * zoomX
	m11 := cos * zoomY
	cx := float64(src.Width()) / 2
	cy := float64(src.Height()) / 2
	m := f64.Aff3{
		m00, m01, float64(dw)/2 - m00*cx - m01*cy,
		m10, m11, float64(dh)/2 - m10*cx - m11*cy,
	}
	draw.BiLinear.Transform(out, m, img, img.Bounds(), draw.Src, nil)
	return FromImage(out)
}
