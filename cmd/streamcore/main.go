// Package main is the CLI entry point for streamcore, a demonstration
// harness over the normalization core: provider-event parsing, tag
// extraction, and secret redaction. It is explicitly not part of the
// core — it carries no provider or session state between invocations,
// and exists only to exercise the library end to end from a terminal.
//
// CLI commands (cobra):
//
//	streamcore parse   - parse newline-delimited provider events into StreamDelta JSON
//	streamcore redact  - redact secrets from text
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lucidgate/streamcore/internal/config"
	"github.com/lucidgate/streamcore/internal/providers"
	"github.com/lucidgate/streamcore/internal/redact"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "streamcore",
	Short:   "streamcore — normalize LLM provider streaming events",
	Version: fmt.Sprintf("%s (commit: %s)", version, commit),
}

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(redactCmd)
}

// ============================================================================
// streamcore parse — normalize provider events read from stdin
// ============================================================================

var (
	parseProvider    string
	parseAliasConfig string
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse newline-delimited provider events from stdin into StreamDelta JSON",
	Long: `Reads one raw provider event payload per line from stdin, resolves
an adapter for --provider through the default ParserRegistry (plus any
alias overrides from --alias-config), and writes one normalized
StreamDelta JSON object per line to stdout for every event that yields
one. Events that collapse to nil (pings, unknown types, empty deltas)
produce no output line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParse(cmd.OutOrStdout())
	},
}

func init() {
	parseCmd.Flags().StringVar(&parseProvider, "provider", "", "provider name or alias (required)")
	parseCmd.Flags().StringVar(&parseAliasConfig, "alias-config", "", "optional YAML file of alias overrides")
	parseCmd.MarkFlagRequired("provider")
}

func runParse(out io.Writer) error {
	registry := providers.Default()

	if parseAliasConfig != "" {
		overrides, err := config.LoadAliasOverrides(parseAliasConfig)
		if err != nil {
			return fmt.Errorf("loading alias overrides: %w", err)
		}
		// The CLI runs once per process, so extending the shared default
		// registry in place is safe: nothing else observes it concurrently.
		for alias, target := range overrides.Aliases {
			registry.RegisterAlias(alias, target)
		}
	}

	if !registry.Has(parseProvider) {
		return fmt.Errorf("no adapter registered for provider %q", parseProvider)
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	enc := json.NewEncoder(out)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		delta := registry.Parse(parseProvider, line)
		if delta == nil {
			continue
		}
		if err := enc.Encode(delta); err != nil {
			return fmt.Errorf("encoding delta at line %d: %w", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	slog.Info("parse complete", "provider", parseProvider, "lines", lineNum)
	return nil
}

// ============================================================================
// streamcore redact — redact secrets from text
// ============================================================================

var redactFile string

var redactCmd = &cobra.Command{
	Use:   "redact [text]",
	Short: "Redact secrets from text",
	Long: `Applies the default ordered battery of secret-redaction rules to
text given as an argument, read from --file, or read from stdin if
neither is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readRedactInput(args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), redact.Redact(text))
		return nil
	},
}

func init() {
	redactCmd.Flags().StringVar(&redactFile, "file", "", "path to a file to redact instead of stdin")
}

func readRedactInput(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if redactFile != "" {
		data, err := os.ReadFile(redactFile)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", redactFile, err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
