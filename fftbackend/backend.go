// Package fftbackend selects an FFT implementation from resolved platform
// capabilities.
//
// Backends register themselves (or are registered by the embedding
// application) and Select picks one for a Capabilities value: targets whose
// capabilities prefer the embedded portable implementation get it directly,
// others get the first available alternative and fall back to the embedded
// implementation when no alternative is usable.
package fftbackend

import (
	"sync"

	algoplatform "github.com/cwbudde/algo-platform"
)

// Backend is implemented by FFT providers (the embedded portable transform,
// vendor libraries, accelerator offload, etc.).
type Backend interface {
	// Name identifies the backend, e.g. "embedded".
	Name() string
	// Available reports whether the backend can run on this system.
	Available() bool
	// Transform computes dst = FFT(src), or the inverse transform when
	// inverse is true. len(dst) must equal len(src).
	Transform(dst, src []complex128, inverse bool) error
}

var (
	registryMu sync.RWMutex
	registry   []Backend
)

// Register adds a backend to the registry. Backends are considered in
// registration order during selection.
func Register(b Backend) {
	registryMu.Lock()
	registry = append(registry, b)
	registryMu.Unlock()
}

// Backends returns a snapshot of the registered backends.
func Backends() []Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]Backend, len(registry))
	copy(out, registry)

	return out
}

// clearRegistry empties the registry. Tests only.
func clearRegistry() {
	registryMu.Lock()
	registry = nil
	registryMu.Unlock()
}

// Select returns the backend to use for the given capabilities.
//
// When caps.EmbeddedFFT is set the embedded backend is chosen if registered.
// Otherwise the first available backend other than the embedded one wins,
// with the embedded backend as last resort. ErrNoBackend is returned when
// nothing registered is usable.
func Select(caps algoplatform.Capabilities) (Backend, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	var embedded Backend

	for _, b := range registry {
		if b.Name() == EmbeddedName && b.Available() {
			embedded = b

			break
		}
	}

	if caps.EmbeddedFFT && embedded != nil {
		return embedded, nil
	}

	for _, b := range registry {
		if b.Name() != EmbeddedName && b.Available() {
			return b, nil
		}
	}

	if embedded != nil {
		return embedded, nil
	}

	return nil, ErrNoBackend
}
