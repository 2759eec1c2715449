package algoplatform

// Symbol spellings recognized by the resolver. The groups mirror the
// identifiers C/C++ toolchains predefine for each platform facet.
var (
	linuxSymbols   = []string{"__linux", "__unix", "__posix", "__LINUX__", "__linux__"}
	windowsSymbols = []string{"_WIN64", "_WIN32", "__CYGWIN32__", "__MINGW32__"}
	osxSymbols     = []string{"MACOSX", "__DARWIN__", "__APPLE__"}

	// WIN_32 (not _WIN32) is the historical spelling in the 32-bit group.
	arch32Symbols = []string{"WIN_32", "__i386__", "i386", "__x86__"}
	arch64Symbols = []string{
		"__amd64", "__amd64__", "__x86_64", "__x86_64__",
		"_M_X64", "__ia64__", "_M_IA64",
	}
)

// familyRule pairs a symbol group with the facet value it selects.
// Rules are evaluated in order; the first group with a defined symbol wins
// and no later rule is considered.
type familyRule[T any] struct {
	symbols []string
	result  T
}

func firstMatch[T any](s Symbols, rules []familyRule[T], fallback T) T {
	for _, rule := range rules {
		if s.anyDefined(rule.symbols...) {
			return rule.result
		}
	}

	return fallback
}

var osRules = []familyRule[OSFamily]{
	{linuxSymbols, OSLinux},
	{windowsSymbols, OSWindows},
	{osxSymbols, OSX},
}

var archRules = []familyRule[ArchWidth]{
	{arch32Symbols, Arch32},
	{arch64Symbols, Arch64},
}

var compilerRules = []familyRule[Compiler]{
	{[]string{"__clang__"}, CompilerClang},
	{[]string{"__GNUC__"}, CompilerGCC},
	{[]string{"_MSC_VER"}, CompilerVisualStudio},
}

// Resolve maps a predefined symbol set to normalized capabilities.
//
// The mapping is a pure function: no ambient state is consulted and the same
// input always produces the same output. Facets with no matching symbol stay
// at their zero value; that is "feature unavailable", not a failure.
func Resolve(symbols Symbols) Capabilities {
	var caps Capabilities

	caps.OS = firstMatch(symbols, osRules, OSUnknown)
	caps.Arch = firstMatch(symbols, archRules, ArchUnknown)
	caps.Compiler = firstMatch(symbols, compilerRules, CompilerUnknown)

	// SSE2 holds when the toolchain predefines __SSE2__ itself, or under a
	// logical OR over three MSVC conditions (not a precedence chain): an
	// x86 floating-point level of at least 2, a nonzero AMD64 marker, or
	// the 64-bit MSVC target symbol.
	caps.SSE2 = symbols.Defined("__SSE2__") ||
		symbols.Value("_M_IX86_FP") >= 2 ||
		symbols.Value("_M_AMD64") != 0 ||
		symbols.Defined("_M_X64")

	caps.NEON = symbols.Defined("__ARM_NEON__")

	if caps.OS == OSX {
		caps.CoreAudio = true
		caps.Defines = append(caps.Defines, "__MACOSX_CORE__")
	}

	if caps.Compiler == CompilerVisualStudio {
		caps.Defines = append(caps.Defines, "_USE_MATH_DEFINES")
		caps.Includes = append(caps.Includes, "stdint.h", "math.h", "cmath")
	}

	if caps.OS == OSX || caps.OS == OSLinux {
		caps.Includes = append(caps.Includes, "math.h")
		caps.EmbeddedFFT = true
	}

	return caps
}
