package surf

import (
	"fmt"
	"sort"
	"sync"
)

// Version is a resampler backend version triple. It appears verbatim in
// CapabilityError messages.
type Version struct {
	Major, Minor, Micro int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Micro)
}

// Capabilities advertises the optional features of a resampler backend.
type Capabilities struct {
	// IndependentXYZoom reports whether the backend accepts separate
	// X and Y zoom factors.
	IndependentXYZoom bool

	// NegativeZoom reports whether the backend accepts negative
	// (mirroring) zoom factors.
	NegativeZoom bool

	// Version identifies the backend build.
	Version Version
}

// Backend is the external resampler behind Zoom and Rotozoom.
//
// Angles are degrees, counter-clockwise positive. When smooth is true
// the backend must return a 32-bit RGBA surface even if the input was
// paletted. The size methods are pure: they must not touch pixel
// memory, and they must return exactly the dimensions the matching
// transform produces.
type Backend interface {
	Capabilities() Capabilities

	Zoom(src *Surface, zoomX, zoomY float64, smooth bool) (*Surface, error)
	ZoomSize(width, height int, zoomX, zoomY float64) (int, int)

	Rotozoom(src *Surface, angle, zoomX, zoomY float64, smooth bool) (*Surface, error)
	RotozoomSize(width, height int, angle, zoomX, zoomY float64) (int, int)
}

// BackendFactory creates a backend instance.
type BackendFactory func() (Backend, error)

// RegistryEntry represents a registered resampler backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	Priority int

	// Factory creates backend instances.
	Factory BackendFactory

	// Available reports if the backend is available on this system.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered resampler backends, so alternative
// resamplers can plug in without changes to the core library.
//
// Example registration:
//
//	func init() {
//	    surf.Register("gpu", 100, gpuFactory, gpuAvailable)
//	}
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry. Most code should use the
// global registry via Register and DefaultBackend.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a backend to the global registry.
//
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory BackendFactory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered backend names sorted by priority
// (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available backends sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// Get returns information about a specific backend.
func Get(name string) (*RegistryEntry, bool) {
	return globalRegistry.Get(name)
}

// DefaultBackend returns an instance of the best available backend from
// the global registry.
func DefaultBackend() (Backend, error) {
	return globalRegistry.DefaultBackend()
}

// NewBackend creates an instance of a specific named backend from the
// global registry.
func NewBackend(name string) (Backend, error) {
	return globalRegistry.NewBackend(name)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory BackendFactory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}

	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered backend names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available backends sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns information about a specific backend.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}

	// Return a copy to prevent modification
	entryCopy := *entry
	return &entryCopy, true
}

// DefaultBackend returns an instance of the highest-priority available
// backend. Returns ErrNoBackendAvailable when nothing is registered or
// every factory fails.
func (r *Registry) DefaultBackend() (Backend, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	var lastErr error
	for _, name := range available {
		b, err := r.NewBackend(name)
		if err == nil {
			return b, nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrNoBackendAvailable
}

// NewBackend creates an instance of a specific named backend.
func (r *Registry) NewBackend(name string) (Backend, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}

	if !entry.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}

	return entry.Factory()
}

// sortedNames returns backend names sorted by priority (highest first).
// If onlyAvailable is true, filters to available backends only.
// Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}

	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].priority > entries[j].priority
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}
