package cpu

import (
	"runtime"
	"testing"
)

// TestDetectFeatures checks basic detection invariants on the host.
func TestDetectFeatures(t *testing.T) {
	ResetDetection()

	features := DetectFeatures()

	if features.Architecture != runtime.GOARCH {
		t.Errorf("Architecture = %q, want %q", features.Architecture, runtime.GOARCH)
	}

	// amd64 guarantees SSE2 as part of the x86-64 baseline.
	if runtime.GOARCH == "amd64" && !features.HasSSE2 {
		t.Error("HasSSE2 = false on amd64")
	}
}

// TestDetectFeaturesDeterministic verifies repeated detection returns
// identical results.
func TestDetectFeaturesDeterministic(t *testing.T) {
	ResetDetection()

	first := DetectFeatures()
	second := DetectFeatures()

	if first != second {
		t.Errorf("DetectFeatures not deterministic: %+v vs %+v", first, second)
	}
}

// TestSetForcedFeatures verifies forced features override detection and
// ResetDetection clears them.
func TestSetForcedFeatures(t *testing.T) {
	defer ResetDetection()

	forced := Features{
		HasNEON:      true,
		Architecture: "arm64",
	}
	SetForcedFeatures(forced)

	got := DetectFeatures()
	if got != forced {
		t.Errorf("DetectFeatures = %+v, want forced %+v", got, forced)
	}

	if !HasNEON() {
		t.Error("HasNEON = false with forced NEON features")
	}

	ResetDetection()

	if got := DetectFeatures(); got.Architecture != runtime.GOARCH {
		t.Errorf("after reset, Architecture = %q, want %q", got.Architecture, runtime.GOARCH)
	}
}
