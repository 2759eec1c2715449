// Platinfo resolves platform capability flags for DSP code.
//
// Usage:
//
//	platinfo                       # capabilities of the running host
//	platinfo resolve linux/arm/v7  # capabilities of a platform specifier
//	platinfo file target.toml      # capabilities of a target descriptor
//	platinfo resolve windows/amd64 -D _M_IX86_FP=2
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	algoplatform "github.com/cwbudde/algo-platform"
)

type options struct {
	jsonOut bool
	verbose bool
	symbols []string
}

func main() {
	var opts options

	root := &cobra.Command{
		Use:   "platinfo",
		Short: "Resolve platform capability flags for DSP code",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHost(&opts)
		},
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&opts.jsonOut, "json", false, "emit capabilities as JSON")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log resolution details")
	pf.StringArrayVarP(&opts.symbols, "symbol", "D", nil,
		"extra predefined symbol, name or name=value (repeatable)")

	resolve := &cobra.Command{
		Use:   "resolve <os/arch[/variant]>",
		Short: "Resolve an os/arch platform specifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpecifier(&opts, args[0])
		},
	}

	file := &cobra.Command{
		Use:   "file <path>",
		Short: "Resolve a TOML target descriptor file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(&opts, args[0])
		},
	}

	root.AddCommand(resolve, file)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(opts *options) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	if opts.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	return logger
}

func runHost(opts *options) error {
	logger := newLogger(opts)

	symbols := algoplatform.HostSymbols()
	if err := mergeExtraSymbols(symbols, opts.symbols); err != nil {
		return err
	}

	logger.Debug("resolving host", "symbols", symbols.String())

	return emit(opts, logger, algoplatform.Resolve(symbols))
}

func runSpecifier(opts *options, specifier string) error {
	logger := newLogger(opts)

	caps, err := algoplatform.FromSpecifier(specifier)
	if err != nil {
		logger.Error("resolution failed", "err", err)

		return err
	}

	if len(opts.symbols) > 0 {
		symbols, err := algoplatform.SymbolsForSpecifier(specifier)
		if err != nil {
			return err
		}

		if err := mergeExtraSymbols(symbols, opts.symbols); err != nil {
			return err
		}

		logger.Debug("resolving specifier with extra symbols",
			"specifier", specifier, "symbols", symbols.String())

		caps = algoplatform.Resolve(symbols)
	}

	return emit(opts, logger, caps)
}

func runFile(opts *options, path string) error {
	logger := newLogger(opts)

	caps, err := algoplatform.LoadTargetFile(path)
	if err != nil {
		logger.Error("resolution failed", "err", err)

		return err
	}

	return emit(opts, logger, caps)
}

// mergeExtraSymbols parses repeated -D flags (name or name=value) into the set.
func mergeExtraSymbols(symbols algoplatform.Symbols, extra []string) error {
	for _, raw := range extra {
		name, valueText, hasValue := strings.Cut(raw, "=")
		if name == "" {
			return fmt.Errorf("empty symbol name in %q", raw)
		}

		if !hasValue {
			symbols.Define(name)

			continue
		}

		value, err := strconv.Atoi(valueText)
		if err != nil {
			return fmt.Errorf("invalid symbol value in %q: %w", raw, err)
		}

		symbols.DefineValue(name, value)
	}

	return nil
}

func emit(opts *options, logger *log.Logger, caps algoplatform.Capabilities) error {
	if caps.OS == algoplatform.OSUnknown {
		logger.Warn("no operating system family detected; flags degrade to unavailable")
	}

	if opts.jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(capsJSON(caps))
	}

	fmt.Printf("os:            %s\n", caps.OS)
	fmt.Printf("arch:          %s\n", caps.Arch)
	fmt.Printf("compiler:      %s\n", caps.Compiler)
	fmt.Printf("sse2:          %t\n", caps.SSE2)
	fmt.Printf("neon:          %t\n", caps.NEON)
	fmt.Printf("embedded-fft:  %t\n", caps.EmbeddedFFT)
	fmt.Printf("coreaudio:     %t\n", caps.CoreAudio)

	if len(caps.Defines) > 0 {
		fmt.Printf("defines:       %s\n", strings.Join(caps.Defines, " "))
	}

	if len(caps.Includes) > 0 {
		fmt.Printf("includes:      %s\n", strings.Join(caps.Includes, " "))
	}

	return nil
}

// capsJSON gives the JSON output stable lowercase field names.
func capsJSON(caps algoplatform.Capabilities) map[string]any {
	return map[string]any{
		"os":           caps.OS.String(),
		"arch":         caps.Arch.String(),
		"compiler":     caps.Compiler.String(),
		"sse2":         caps.SSE2,
		"neon":         caps.NEON,
		"embedded_fft": caps.EmbeddedFFT,
		"coreaudio":    caps.CoreAudio,
		"defines":      caps.Defines,
		"includes":     caps.Includes,
	}
}
