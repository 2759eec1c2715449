// Package algoplatform resolves toolchain and platform capability flags for
// DSP and audio-processing code.
//
// The core of the package is Resolve, a pure decision table that maps a set
// of compiler-predefined symbols (the identifiers a C/C++ toolchain defines
// to describe itself, the target OS, and the target CPU) to a normalized
// Capabilities value: operating system family, CPU word width, compiler
// identity, SIMD availability, and the preferred FFT backend.
//
// Symbols can come from three places:
//
//   - built explicitly with NewSymbols / Define,
//   - synthesized from an "os/arch[/variant]" specifier via FromSpecifier,
//   - synthesized from the running process via Host, which combines
//     runtime.GOOS/GOARCH with runtime CPU feature detection.
//
// Resolution is deterministic and side-effect free: the same symbol set
// always yields the same Capabilities. Unrecognized or absent symbols leave
// the corresponding facet at its zero value rather than failing, so callers
// depending on a flag must supply their own fallback.
package algoplatform
