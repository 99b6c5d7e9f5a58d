package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/ts2luau/internal/ast"
	"github.com/cwbudde/ts2luau/internal/config"
	terrors "github.com/cwbudde/ts2luau/internal/errors"
	"github.com/cwbudde/ts2luau/pkg/transpiler"
)

// Frontend produces a type-checked AST from source text. This binary
// does not parse or type-check the input language itself (spec §1 scopes
// the typed-AST provider out as an external collaborator); an embedding
// application registers Frontend before translate/batch can run.
var Frontend func(file, source string) (*ast.SourceFile, error)

var outPath string

var translateCmd = &cobra.Command{
	Use:   "translate <file>",
	Short: "Translate a single file to Luau",
	Args:  cobra.ExactArgs(1),
	RunE:  runTranslate,
}

func init() {
	translateCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	if Frontend == nil {
		return fmt.Errorf("ts2luau: no frontend registered; this binary only drives translation, not parsing")
	}

	file := args[0]
	source, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", file, err)
	}

	project, err := loadProject(configPath)
	if err != nil {
		return err
	}

	sf, err := Frontend(file, string(source))
	if err != nil {
		return fmt.Errorf("frontend failed on %s: %w", file, err)
	}

	host := &projectHost{project: project}
	env := &projectEnv{project: project}
	tp := transpiler.New(host, env)

	out, err := tp.TranslateSourceFile(sf, string(source))
	if err != nil {
		if te, ok := err.(*terrors.TranslateError); ok {
			return fmt.Errorf("%s", te.Format(!noColor))
		}
		return err
	}

	if outPath == "" {
		fmt.Print(out)
		return nil
	}
	return os.WriteFile(outPath, []byte(out), 0o644)
}

// loadProject loads the project file at path, or returns a nil *config.Project
// (every file then resolves to ast.ScriptContextNone) when path is empty.
func loadProject(path string) (*config.Project, error) {
	if path == "" {
		return nil, nil
	}
	return config.Load(path)
}
