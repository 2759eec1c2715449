package algoplatform

import (
	"runtime"
	"sync"

	"github.com/cwbudde/algo-platform/internal/cpu"
)

var (
	hostOnce sync.Once
	hostCaps Capabilities
)

// Host returns the capabilities of the running process, resolved once and
// cached for the lifetime of the process.
//
// The symbol set is synthesized from runtime.GOOS/GOARCH and runtime CPU
// feature detection. No C compiler is involved in a Go process, so the
// Compiler facet is always CompilerUnknown.
func Host() Capabilities {
	hostOnce.Do(func() {
		hostCaps = Resolve(hostSymbols(cpu.DetectFeatures()))
	})

	return hostCaps
}

// HostSymbols returns the synthesized symbol set for the running process.
// Unlike Host, the result is not cached; it reflects the current (possibly
// test-forced) CPU feature state.
func HostSymbols() Symbols {
	return hostSymbols(cpu.DetectFeatures())
}

// hostSymbols maps GOOS/GOARCH and detected CPU features to the predefined
// symbols a native toolchain on this host would carry.
func hostSymbols(features cpu.Features) Symbols {
	s := SymbolsForPlatform(runtime.GOOS, runtime.GOARCH, "")

	if features.ForceGeneric {
		delete(s, "__SSE2__")
		delete(s, "__ARM_NEON__")

		return s
	}

	if features.HasSSE2 {
		s.Define("__SSE2__")
	}

	if features.HasNEON {
		s.Define("__ARM_NEON__")
	}

	return s
}
