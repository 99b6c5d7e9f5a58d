package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	terrors "github.com/cwbudde/ts2luau/internal/errors"
	"github.com/cwbudde/ts2luau/pkg/transpiler"
)

var checkMode bool

var batchCmd = &cobra.Command{
	Use:   "batch <file>...",
	Short: "Translate a list of already-resolved files to Luau",
	Long: `batch runs Frontend and the translator over each file named on
the command line, and either writes the translated output next to each
source file or, with --check, diffs it against what's already on disk
and reports drift without writing anything. It does not discover files
itself (directory walking and module-specifier resolution are external
collaborators per spec.md §1) — the caller (a build tool, a file watcher)
supplies the file list.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().BoolVar(&checkMode, "check", false, "diff against existing output instead of writing")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	if Frontend == nil {
		return fmt.Errorf("ts2luau: no frontend registered; this binary only drives translation, not parsing")
	}

	runID := uuid.New().String()

	project, err := loadProject(configPath)
	if err != nil {
		return err
	}
	host := &projectHost{project: project}
	env := &projectEnv{project: project}

	diag := terrors.NewDiagnostics()
	var translated int

	for _, path := range args {
		source, readErr := os.ReadFile(path)
		if readErr != nil {
			return fmt.Errorf("reading %s: %w", path, readErr)
		}

		sf, feErr := Frontend(path, string(source))
		if feErr != nil {
			return fmt.Errorf("frontend failed on %s: %w", path, feErr)
		}

		tp := transpiler.New(host, env)
		out, terr := tp.TranslateSourceFile(sf, string(source))
		if terr != nil {
			if te, ok := terr.(*terrors.TranslateError); ok {
				diag.Record(path, te)
			}
			continue
		}
		translated++

		outPath := outputPathFor(path)
		if checkMode {
			if checkErr := checkAgainstDisk(path, outPath, out); checkErr != nil {
				return checkErr
			}
			continue
		}
		if writeErr := os.WriteFile(outPath, []byte(out), 0o644); writeErr != nil {
			return writeErr
		}
	}

	if !diag.OK() {
		for _, e := range diag.All() {
			fmt.Fprintln(os.Stderr, e.Format(!noColor))
		}
		return fmt.Errorf("batch %s: %d file(s) failed to translate", runID, len(diag.All()))
	}

	fmt.Printf("batch %s: translated %d file(s)\n", runID, translated)
	return nil
}

func outputPathFor(sourcePath string) string {
	ext := filepath.Ext(sourcePath)
	return sourcePath[:len(sourcePath)-len(ext)] + ".lua"
}

func checkAgainstDisk(sourcePath, outPath, want string) error {
	existing, err := os.ReadFile(outPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("%s: missing output %s\n", sourcePath, outPath)
			return fmt.Errorf("drift detected for %s", sourcePath)
		}
		return err
	}
	if string(existing) == want {
		return nil
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(existing)),
		B:        difflib.SplitLines(want),
		FromFile: outPath,
		ToFile:   "translated",
		Context:  3,
	}
	text, _ := difflib.GetUnifiedDiffString(diff)
	if noColor {
		fmt.Print(text)
	} else {
		color.Yellow("%s", text)
	}
	return fmt.Errorf("drift detected for %s", sourcePath)
}
