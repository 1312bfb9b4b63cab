package surf

import (
	"errors"
	"fmt"
)

// Errors shared by the transform entry points.
var (
	// ErrUnsupportedDepth is returned when a surface has a pixel depth
	// outside the supported 1-4 bytes per pixel.
	ErrUnsupportedDepth = errors.New("surf: unsupported surface bit depth for transform")

	// ErrAllocationFailed is returned when a destination pixel buffer
	// cannot be obtained.
	ErrAllocationFailed = errors.New("surf: could not allocate destination surface")

	// ErrLockFailed is returned when a destination surface cannot be
	// locked for writing.
	ErrLockFailed = errors.New("surf: could not lock destination surface for writing")

	// ErrInvalidZoom is returned when a zoom argument is the zero value
	// or carries a zero factor.
	ErrInvalidZoom = errors.New("surf: zoom factor must be a uniform number or a per-axis pair")

	// ErrInvalidGeometry is returned when an externally supplied pixel
	// buffer does not match its declared dimensions and pitch.
	ErrInvalidGeometry = errors.New("surf: pixel buffer geometry is inconsistent")

	// ErrNoBackendAvailable is returned when no resampler backends are
	// registered or available.
	ErrNoBackendAvailable = errors.New("surf: no resampler backend available")
)

// CapabilityError reports that a transform requires a backend feature
// the current backend does not provide. Version identifies the backend
// build that lacked the feature.
type CapabilityError struct {
	Feature string
	Version Version
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("surf: %s is not supported by resampler backend version %s",
		e.Feature, e.Version)
}

// BackendError reports that the resampler backend failed to produce a
// surface. Err carries the backend's diagnostic and may be nil when the
// backend returned no surface and no error.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("surf: %s: backend returned no surface", e.Op)
	}
	return fmt.Sprintf("surf: %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surf: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but is not
// available on this system.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surf: backend unavailable: " + e.Name
}
