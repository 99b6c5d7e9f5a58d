// Package cmd implements the ts2luau command-line harness: config
// loading, diagnostic rendering, and wiring into pkg/transpiler.
// File discovery and module-path resolution beyond a trivial
// same-directory default, and the language parser itself, are external
// collaborators this binary does not implement (see Frontend in
// translate.go).
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var (
	configPath string
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "ts2luau",
	Short: "Translates a statically-typed scripting language to Luau",
	Long: `ts2luau is a syntax-directed source-to-source translator from a
TypeScript-family statically-typed language to Luau, targeting the
Roblox engine runtime.

It does not parse or type-check source itself: it consumes an already
type-checked AST from an external provider and a project file
describing per-file script context, and emits Luau source text.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("ts2luau version {{.Version}}\nCommit: %s\n", GitCommit))
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the project config file (internal/config.Project, YAML)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colorized diagnostic output")
}
