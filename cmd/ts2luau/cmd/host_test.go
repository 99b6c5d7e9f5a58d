package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/ts2luau/internal/ast"
	"github.com/cwbudde/ts2luau/internal/config"
)

func TestProjectHost_GetRelativeImportPath(t *testing.T) {
	h := &projectHost{}
	got := h.GetRelativeImportPath("Main.ts", "", "./Utils")
	require.Equal(t, `script.Parent:WaitForChild("Utils")`, got)
}

func TestProjectHost_NoHeuristics(t *testing.T) {
	h := &projectHost{}
	require.False(t, h.NoHeuristics())

	h.project = &config.Project{NoHeuristics: true}
	require.True(t, h.NoHeuristics())
}

func TestProjectEnv_GetScriptContext_NilProject(t *testing.T) {
	e := &projectEnv{}
	require.Equal(t, ast.ScriptContextNone, e.GetScriptContext("Main.ts"))
}

func TestProjectEnv_GetScriptContext_FromProject(t *testing.T) {
	dir := t.TempDir()
	e := &projectEnv{project: &config.Project{
		RootDir: dir,
		Files:   map[string]string{"server/**": "server"},
	}}
	require.Equal(t, ast.ScriptContextServer, e.GetScriptContext(filepath.Join(dir, "server/Main.ts")))
}

func TestProjectEnv_IsValidIdentifier(t *testing.T) {
	e := &projectEnv{}
	require.True(t, e.IsValidIdentifier("foo"))
	require.True(t, e.IsValidIdentifier("_foo123"))
	require.False(t, e.IsValidIdentifier(""))
	require.False(t, e.IsValidIdentifier("1foo"))
	require.False(t, e.IsValidIdentifier("foo-bar"))
	require.False(t, e.IsValidIdentifier("end"))
}

func TestProjectEnv_SafeIndex(t *testing.T) {
	e := &projectEnv{}
	require.Equal(t, "obj.foo", e.SafeIndex("obj", "foo"))
	require.Equal(t, `obj["end"]`, e.SafeIndex("obj", "end"))
	require.Equal(t, `obj["foo-bar"]`, e.SafeIndex("obj", "foo-bar"))
}
