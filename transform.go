package surf

// Zoom specifies the scale factor of a zoom or rotozoom transform.
// The zero value is invalid; construct one with Uniform or PerAxis.
type Zoom struct {
	x, y    float64
	perAxis bool
	valid   bool
}

// Uniform returns a Zoom that scales both axes by z.
func Uniform(z float64) Zoom {
	return Zoom{x: z, y: z, valid: true}
}

// PerAxis returns a Zoom with independent X and Y factors. A negative
// factor mirrors the output along that axis.
func PerAxis(zoomX, zoomY float64) Zoom {
	return Zoom{x: zoomX, y: zoomY, perAxis: true, valid: true}
}

// Factors returns the X and Y scale factors.
func (z Zoom) Factors() (zoomX, zoomY float64) { return z.x, z.y }

// IsPerAxis reports whether the zoom carries independent X/Y factors.
func (z Zoom) IsPerAxis() bool { return z.perAxis }

// TransformerOption configures a Transformer during creation.
type TransformerOption func(*Transformer)

// WithBackend selects the resampler backend instead of the registry's
// best available one. Tests use this to substitute a recording fake.
func WithBackend(b Backend) TransformerOption {
	return func(t *Transformer) {
		t.backend = b
	}
}

// Transformer dispatches zoom and rotozoom requests to a resampler
// backend. It validates and normalizes the arguments, gates them on
// the backend's capabilities, and reports failures uniformly; the
// resampling itself happens in the backend.
type Transformer struct {
	backend Backend
}

// NewTransformer creates a Transformer. Without options it uses the
// best available backend from the global registry.
func NewTransformer(opts ...TransformerOption) (*Transformer, error) {
	t := &Transformer{}
	for _, opt := range opts {
		opt(t)
	}
	if t.backend == nil {
		b, err := DefaultBackend()
		if err != nil {
			return nil, err
		}
		t.backend = b
	}
	return t, nil
}

// Backend returns the backend the transformer dispatches to.
func (t *Transformer) Backend() Backend { return t.backend }

// resolve normalizes a Zoom into per-axis factors, gating on the
// backend's capabilities. Per-axis factors require IndependentXYZoom;
// a negative uniform factor requires NegativeZoom.
func (t *Transformer) resolve(z Zoom) (zoomX, zoomY float64, err error) {
	if !z.valid || z.x == 0 || z.y == 0 {
		return 0, 0, ErrInvalidZoom
	}
	caps := t.backend.Capabilities()
	if z.perAxis {
		if !caps.IndependentXYZoom {
			return 0, 0, &CapabilityError{
				Feature: "independent X/Y zoom factors",
				Version: caps.Version,
			}
		}
		return z.x, z.y, nil
	}
	if z.x < 0 && !caps.NegativeZoom {
		return 0, 0, &CapabilityError{
			Feature: "negative zoom factors",
			Version: caps.Version,
		}
	}
	return z.x, z.y, nil
}

// Zoom returns a scaled copy of src. When smooth is true the output is
// anti-aliased and always a 32-bit RGBA surface.
func (t *Transformer) Zoom(src *Surface, zoom Zoom, smooth bool) (*Surface, error) {
	zx, zy, err := t.resolve(zoom)
	if err != nil {
		return nil, err
	}
	Logger().Debug("surf: zoom",
		"width", src.Width(), "height", src.Height(),
		"zoomX", zx, "zoomY", zy, "smooth", smooth)
	dst, err := t.backend.Zoom(src, zx, zy, smooth)
	if err != nil {
		return nil, &BackendError{Op: "zoom", Err: err}
	}
	if dst == nil {
		return nil, &BackendError{Op: "zoom"}
	}
	return dst, nil
}

// Rotozoom returns a copy of src rotated by angle degrees
// (counter-clockwise positive) and scaled by zoom in a single pass.
// Rotation by anything other than a multiple of 90 degrees produces a
// surface strictly larger than the source, sized to the rotated
// bounding box. When smooth is true the output is anti-aliased and
// always a 32-bit RGBA surface.
func (t *Transformer) Rotozoom(src *Surface, angle float64, zoom Zoom, smooth bool) (*Surface, error) {
	zx, zy, err := t.resolve(zoom)
	if err != nil {
		return nil, err
	}
	Logger().Debug("surf: rotozoom",
		"width", src.Width(), "height", src.Height(),
		"angle", angle, "zoomX", zx, "zoomY", zy, "smooth", smooth)
	dst, err := t.backend.Rotozoom(src, angle, zx, zy, smooth)
	if err != nil {
		return nil, &BackendError{Op: "rotozoom", Err: err}
	}
	if dst == nil {
		return nil, &BackendError{Op: "rotozoom"}
	}
	return dst, nil
}

// Zoom returns a scaled copy of the surface using the default backend.
// See Transformer.Zoom.
func (s *Surface) Zoom(zoom Zoom, smooth bool) (*Surface, error) {
	t, err := NewTransformer()
	if err != nil {
		return nil, err
	}
	return t.Zoom(s, zoom, smooth)
}

// Rotozoom returns a rotated and scaled copy of the surface using the
// default backend. See Transformer.Rotozoom.
func (s *Surface) Rotozoom(angle float64, zoom Zoom, smooth bool) (*Surface, error) {
	t, err := NewTransformer()
	if err != nil {
		return nil, err
	}
	return t.Rotozoom(s, angle, zoom, smooth)
}
