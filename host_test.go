package algoplatform

import (
	"runtime"
	"testing"

	"github.com/cwbudde/algo-platform/internal/cpu"
)

// TestHost checks the cached host resolution against GOOS.
func TestHost(t *testing.T) {
	first := Host()
	second := Host()

	if first.String() != second.String() {
		t.Errorf("Host not stable: %v vs %v", first, second)
	}

	var wantOS OSFamily

	switch runtime.GOOS {
	case "linux":
		wantOS = OSLinux
	case "windows":
		wantOS = OSWindows
	case "darwin":
		wantOS = OSX
	default:
		wantOS = OSUnknown
	}

	if first.OS != wantOS {
		t.Errorf("Host().OS = %v, want %v for GOOS %s", first.OS, wantOS, runtime.GOOS)
	}

	// A Go process has no C compiler identity.
	if first.Compiler != CompilerUnknown {
		t.Errorf("Host().Compiler = %v, want unknown", first.Compiler)
	}
}

// TestHostSymbolsForcedFeatures checks that HostSymbols follows the
// (test-forced) CPU feature state.
func TestHostSymbolsForcedFeatures(t *testing.T) {
	defer cpu.ResetDetection()

	cpu.SetForcedFeatures(cpu.Features{
		HasNEON:      true,
		Architecture: runtime.GOARCH,
	})

	if !HostSymbols().Defined("__ARM_NEON__") {
		t.Error("__ARM_NEON__ missing with forced NEON features")
	}

	cpu.SetForcedFeatures(cpu.Features{
		ForceGeneric: true,
		Architecture: runtime.GOARCH,
	})

	s := HostSymbols()
	if s.Defined("__SSE2__") || s.Defined("__ARM_NEON__") {
		t.Errorf("SIMD symbols present with ForceGeneric: %v", s)
	}
}
