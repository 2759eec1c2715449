package algoplatform

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// targetFile is the on-disk shape of a target descriptor.
//
//	[target]
//	specifier = "linux/amd64"
//	symbols   = ["__ARM_NEON__"]
//
//	[target.values]
//	_M_IX86_FP = 2
type targetFile struct {
	Target struct {
		Specifier string         `toml:"specifier"`
		Symbols   []string       `toml:"symbols"`
		Values    map[string]int `toml:"values"`
	} `toml:"target"`
}

// LoadTargetFile reads a TOML target descriptor from path and resolves it.
func LoadTargetFile(path string) (Capabilities, error) {
	f, err := os.Open(path)
	if err != nil {
		return Capabilities{}, fmt.Errorf("failed to open target file: %w", err)
	}

	defer f.Close()

	caps, err := ParseTargetFile(f)
	if err != nil {
		return Capabilities{}, fmt.Errorf("%s: %w", path, err)
	}

	return caps, nil
}

// ParseTargetFile decodes a TOML target descriptor and resolves it.
//
// The descriptor may name a platform specifier, list explicit symbols, or
// both; explicit symbols and values are merged over the specifier-derived
// set before resolution, so they win on conflict.
func ParseTargetFile(r io.Reader) (Capabilities, error) {
	var tf targetFile
	if err := toml.NewDecoder(r).Decode(&tf); err != nil {
		return Capabilities{}, fmt.Errorf("%w: %v", ErrInvalidTargetFile, err)
	}

	symbols, err := targetSymbols(tf)
	if err != nil {
		return Capabilities{}, err
	}

	return Resolve(symbols), nil
}

func targetSymbols(tf targetFile) (Symbols, error) {
	symbols := make(Symbols)

	if tf.Target.Specifier != "" {
		fromSpec, err := SymbolsForSpecifier(tf.Target.Specifier)
		if err != nil {
			return nil, err
		}

		symbols.Merge(fromSpec)
	}

	for _, name := range tf.Target.Symbols {
		symbols.Define(name)
	}

	for name, value := range tf.Target.Values {
		symbols.DefineValue(name, value)
	}

	return symbols, nil
}
