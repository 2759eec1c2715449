package algoplatform

import (
	"fmt"

	"github.com/containerd/platforms"
)

// FromSpecifier resolves capabilities for an "os/arch[/variant]" platform
// specifier such as "linux/amd64" or "linux/arm/v7". The specifier is parsed
// and normalized (aliases like "x86_64" and "aarch64" are accepted), mapped
// to the symbol set a toolchain targeting that platform would predefine, and
// resolved through the same decision table as explicit symbols.
//
// Malformed specifiers return ErrInvalidSpecifier. Well-formed specifiers
// naming an OS or architecture with no known symbol mapping resolve to a
// zero Capabilities, matching the resolver's permissive policy.
func FromSpecifier(specifier string) (Capabilities, error) {
	symbols, err := SymbolsForSpecifier(specifier)
	if err != nil {
		return Capabilities{}, err
	}

	return Resolve(symbols), nil
}

// SymbolsForSpecifier parses and normalizes a specifier into the symbol set
// a toolchain targeting it would predefine, without resolving.
func SymbolsForSpecifier(specifier string) (Symbols, error) {
	p, err := platforms.Parse(specifier)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSpecifier, specifier, err)
	}

	return SymbolsForPlatform(p.OS, p.Architecture, p.Variant), nil
}

// SymbolsForPlatform returns the predefined symbols a toolchain targeting
// the given normalized OS, architecture, and variant would carry. Unknown
// values contribute nothing.
func SymbolsForPlatform(os, arch, variant string) Symbols {
	s := make(Symbols)

	switch os {
	case "linux":
		s.Define("__linux__")
	case "windows":
		s.Define("_WIN32")
		if arch == "amd64" || arch == "arm64" {
			s.Define("_WIN64")
		}
	case "darwin":
		s.Define("__APPLE__")
	}

	switch arch {
	case "386":
		s.Define("__i386__")
	case "amd64":
		s.Define("__x86_64__")
		s.Define("__SSE2__")
		if os == "windows" {
			s.Define("_M_X64")
		}
	case "arm":
		// NEON is guaranteed from ARMv7 on; earlier variants may lack it.
		if variant == "" || variant == "v7" || variant == "v8" {
			s.Define("__ARM_NEON__")
		}
	case "arm64":
		s.Define("__ARM_NEON__")
	}

	return s
}
