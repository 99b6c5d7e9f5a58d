package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/ts2luau/internal/ast"
)

func writeProjectFile(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, "ts2luau.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_DefaultsRootDirToConfigDir(t *testing.T) {
	dir := t.TempDir()
	path := writeProjectFile(t, dir, "files: {}\n")

	p, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, dir, p.RootDir)
	require.False(t, p.NoHeuristics)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeProjectFile(t, dir, "files: [this is not a map\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestScriptContextFor(t *testing.T) {
	dir := t.TempDir()
	p := &Project{
		RootDir: dir,
		Files: map[string]string{
			"src/server/**": "server",
			"src/client/**": "client",
			"src/shared/**": "none",
		},
	}

	require.Equal(t, ast.ScriptContextServer, p.ScriptContextFor(filepath.Join(dir, "src/server/Main.ts")))
	require.Equal(t, ast.ScriptContextClient, p.ScriptContextFor(filepath.Join(dir, "src/client/App.ts")))
	require.Equal(t, ast.ScriptContextNone, p.ScriptContextFor(filepath.Join(dir, "src/shared/Util.ts")))
	require.Equal(t, ast.ScriptContextNone, p.ScriptContextFor(filepath.Join(dir, "src/other/Thing.ts")))
}

func TestScriptContextFor_NoHeuristicsField(t *testing.T) {
	dir := t.TempDir()
	path := writeProjectFile(t, dir, "noHeuristics: true\nfiles:\n  \"**\": server\n")

	p, err := Load(path)
	require.NoError(t, err)
	require.True(t, p.NoHeuristics)
	require.Equal(t, ast.ScriptContextServer, p.ScriptContextFor(filepath.Join(dir, "anything.ts")))
}
