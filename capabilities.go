package algoplatform

import (
	"fmt"
	"strings"
)

// OSFamily identifies the operating system family of a target.
type OSFamily int

// Operating system families, in resolution order.
const (
	OSUnknown OSFamily = iota
	OSLinux
	OSWindows
	OSX
)

// String returns the family name.
func (f OSFamily) String() string {
	switch f {
	case OSLinux:
		return "linux"
	case OSWindows:
		return "windows"
	case OSX:
		return "osx"
	default:
		return "unknown"
	}
}

// ArchWidth identifies the CPU word width of a target.
type ArchWidth int

// CPU word widths, in resolution order.
const (
	ArchUnknown ArchWidth = iota
	Arch32
	Arch64
)

// String returns the width name.
func (w ArchWidth) String() string {
	switch w {
	case Arch32:
		return "32-bit"
	case Arch64:
		return "64-bit"
	default:
		return "unknown"
	}
}

// Compiler identifies the compiler toolchain of a target.
type Compiler int

// Compiler identities, in resolution order.
const (
	CompilerUnknown Compiler = iota
	CompilerClang
	CompilerGCC
	CompilerVisualStudio
)

// String returns the compiler name.
func (c Compiler) String() string {
	switch c {
	case CompilerClang:
		return "clang"
	case CompilerGCC:
		return "gcc"
	case CompilerVisualStudio:
		return "visual-studio"
	default:
		return "unknown"
	}
}

// Capabilities is the normalized output of platform resolution: the facets
// downstream DSP code keys kernel and backend selection on.
//
// A zero Capabilities means nothing was detected. That is not an error;
// every facet degrades to "feature unavailable" and callers are expected to
// fall back to portable code paths.
type Capabilities struct {
	// OS is the detected operating system family.
	OS OSFamily
	// Arch is the detected CPU word width.
	Arch ArchWidth
	// Compiler is the detected compiler identity.
	Compiler Compiler

	// SSE2 reports that SSE2-class SIMD instructions may be assumed.
	SSE2 bool
	// NEON reports that ARM NEON intrinsics may be assumed.
	NEON bool
	// EmbeddedFFT reports that the embedded portable FFT backend is
	// preferred. When false, downstream code selects an alternative.
	EmbeddedFFT bool
	// CoreAudio reports the macOS CoreAudio marker.
	CoreAudio bool

	// Defines lists extra symbols the resolution itself introduces for
	// downstream consumption.
	Defines []string
	// Includes lists the capability-gated headers a C translation unit on
	// this target would pull in. Kept as data so build tooling can emit it.
	Includes []string
}

// String renders a one-line summary suitable for logs and CLI output.
func (c Capabilities) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "os=%s arch=%s compiler=%s", c.OS, c.Arch, c.Compiler)
	fmt.Fprintf(&b, " sse2=%t neon=%t embedded-fft=%t", c.SSE2, c.NEON, c.EmbeddedFFT)

	if c.CoreAudio {
		b.WriteString(" coreaudio=true")
	}

	return b.String()
}
