// Package surf provides geometric transforms for in-memory raster
// surfaces: axis-aligned flipping, uniform and per-axis zooming, and
// combined rotation plus zoom (rotozoom).
//
// # Overview
//
// A Surface is a rectangular pixel buffer of 1, 2, 3 or 4 bytes per
// pixel with an explicit row pitch, channel masks, an optional palette
// and an optional color key. Transforms never modify their source;
// each returns a freshly allocated Surface.
//
// Flipping is implemented in this package. Zooming and rotozooming are
// dispatched to a resampler Backend selected from a registry; the
// built-in "xdraw" backend resamples smooth transforms through
// golang.org/x/image/draw and keeps non-smooth transforms on raw
// pixel memory so that depth, palette and color key survive.
//
// # Quick Start
//
//	s, _ := surf.NewSurface(64, 64, surf.FormatRGBA32())
//	// ... fill s.Pix() ...
//
//	mirrored, err := s.Flip(true, false)
//	bigger, err := s.Zoom(surf.Uniform(2), false)
//	turned, err := s.Rotozoom(45, surf.PerAxis(1, 0.5), true)
//
// # Coordinate System
//
// Pixel memory is row-major with the origin at the top-left. Rotation
// angles are degrees, counter-clockwise positive. Rotating by anything
// other than a multiple of 90 degrees produces a surface larger than
// the source so the rotated bounding box fits.
//
// # Concurrency
//
// Surfaces are NOT thread-safe. Each surface should be used from a
// single goroutine, or external synchronization must be used.
package surf

// Version information
const (
	// VersionString is the current version of the library
	VersionString = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
