package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunBatch_WritesEachFile(t *testing.T) {
	withFrontend(t, exportedGreetFile)

	dir := t.TempDir()
	a := filepath.Join(dir, "A.ts")
	b := filepath.Join(dir, "B.ts")
	require.NoError(t, os.WriteFile(a, []byte("export function greet() {}\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("export function greet() {}\n"), 0o644))

	prevCheck := checkMode
	checkMode = false
	t.Cleanup(func() { checkMode = prevCheck })

	require.NoError(t, runBatch(batchCmd, []string{a, b}))

	for _, src := range []string{a, b} {
		out := src[:len(src)-len(filepath.Ext(src))] + ".lua"
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		require.Contains(t, string(data), "local function greet()")
	}
}

func TestRunBatch_CheckDetectsDrift(t *testing.T) {
	withFrontend(t, exportedGreetFile)

	dir := t.TempDir()
	src := filepath.Join(dir, "A.ts")
	require.NoError(t, os.WriteFile(src, []byte("export function greet() {}\n"), 0o644))

	out := filepath.Join(dir, "A.lua")
	require.NoError(t, os.WriteFile(out, []byte("-- stale\n"), 0o644))

	prevCheck := checkMode
	checkMode = true
	t.Cleanup(func() { checkMode = prevCheck })

	err := runBatch(batchCmd, []string{src})
	require.Error(t, err)
}

func TestRunBatch_NoFrontendRegistered(t *testing.T) {
	withFrontend(t, nil)
	err := runBatch(batchCmd, []string{"whatever.ts"})
	require.Error(t, err)
}
