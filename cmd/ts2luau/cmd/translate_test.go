package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/ts2luau/internal/ast"
)

func withFrontend(t *testing.T, fn func(file, source string) (*ast.SourceFile, error)) {
	t.Helper()
	prev := Frontend
	Frontend = fn
	t.Cleanup(func() { Frontend = prev })
}

func exportedGreetFile(file, source string) (*ast.SourceFile, error) {
	fn := ast.NewFunctionDeclaration(ast.Position{Line: 1, Column: 1}, ast.KindFunctionDeclaration,
		ast.NewIdentifier(ast.Position{Line: 1, Column: 1}, "greet", nil, nil), nil,
		ast.NewBlock(ast.Position{Line: 1, Column: 1}, nil), nil)
	fn.IsExported = true
	return ast.NewSourceFile(file, []ast.Statement{fn}, ast.ScriptContextNone, ast.ScriptTypeModule), nil
}

func TestRunTranslate_NoFrontendRegistered(t *testing.T) {
	withFrontend(t, nil)

	dir := t.TempDir()
	src := filepath.Join(dir, "Main.ts")
	require.NoError(t, os.WriteFile(src, []byte("export function greet() {}\n"), 0o644))

	err := runTranslate(translateCmd, []string{src})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no frontend registered")
}

func TestRunTranslate_WritesOutputFile(t *testing.T) {
	withFrontend(t, exportedGreetFile)

	dir := t.TempDir()
	src := filepath.Join(dir, "Main.ts")
	require.NoError(t, os.WriteFile(src, []byte("export function greet() {}\n"), 0o644))

	out := filepath.Join(dir, "Main.lua")
	prevOut := outPath
	outPath = out
	t.Cleanup(func() { outPath = prevOut })

	require.NoError(t, runTranslate(translateCmd, []string{src}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), "local function greet()")
	require.Contains(t, string(data), "return _exports;")
}

func TestRunTranslate_MissingSourceFile(t *testing.T) {
	withFrontend(t, exportedGreetFile)

	err := runTranslate(translateCmd, []string{filepath.Join(t.TempDir(), "missing.ts")})
	require.Error(t, err)
}
