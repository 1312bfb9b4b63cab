package surf

// Size is a width and height pair in pixels.
type Size struct {
	W, H int
}

// ZoomSize returns the dimensions Zoom would produce for a surface of
// the given size, without allocating anything. ok is false when the
// backend lacks a capability the zoom argument requires, or when the
// zoom argument is invalid.
func (t *Transformer) ZoomSize(size Size, zoom Zoom) (_ Size, ok bool) {
	zx, zy, err := t.resolve(zoom)
	if err != nil {
		return Size{}, false
	}
	w, h := t.backend.ZoomSize(size.W, size.H, zx, zy)
	return Size{W: w, H: h}, true
}

// RotozoomSize returns the dimensions Rotozoom would produce for a
// surface of the given size, without allocating anything. ok is false
// when the backend lacks a capability the zoom argument requires, or
// when the zoom argument is invalid.
func (t *Transformer) RotozoomSize(size Size, angle float64, zoom Zoom) (_ Size, ok bool) {
	zx, zy, err := t.resolve(zoom)
	if err != nil {
		return Size{}, false
	}
	w, h := t.backend.RotozoomSize(size.W, size.H, angle, zx, zy)
	return Size{W: w, H: h}, true
}

// ZoomSize predicts zoom dimensions using the default backend.
func ZoomSize(size Size, zoom Zoom) (Size, bool) {
	t, err := NewTransformer()
	if err != nil {
		return Size{}, false
	}
	return t.ZoomSize(size, zoom)
}

// RotozoomSize predicts rotozoom dimensions using the default backend.
func RotozoomSize(size Size, angle float64, zoom Zoom) (Size, bool) {
	t, err := NewTransformer()
	if err != nil {
		return Size{}, false
	}
	return t.RotozoomSize(size, angle, zoom)
}
