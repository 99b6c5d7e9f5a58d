// Package transpiler is the public facade over the internal translator,
// mirroring the teacher's pkg/dwscript facade: callers depend on this
// package and the internal/ast + internal/collaborators types, never on
// internal/emitter directly.
package transpiler

import (
	"github.com/cwbudde/ts2luau/internal/ast"
	"github.com/cwbudde/ts2luau/internal/collaborators"
	"github.com/cwbudde/ts2luau/internal/emitter"
)

// Transpiler translates one compilation unit at a time to target-
// language source text. A Transpiler is not safe for concurrent use;
// callers translating multiple files concurrently should use one
// Transpiler per goroutine, as New is cheap to call repeatedly.
type Transpiler struct {
	inner *emitter.Transpiler
}

// New builds a Transpiler bound to the given host and environment
// collaborators (internal/collaborators.CompilerHost and
// ScriptEnvironment), which answer the module-resolution and ambient
// environment questions the translator itself does not know how to
// resolve.
func New(host collaborators.CompilerHost, env collaborators.ScriptEnvironment) *Transpiler {
	return &Transpiler{inner: emitter.New(host, env)}
}

// TranslateSourceFile translates file to target-language source text.
// source is the original text, used only for caret-style error
// rendering; it is never re-parsed.
func (t *Transpiler) TranslateSourceFile(file *ast.SourceFile, source string) (string, error) {
	return t.inner.TranslateSourceFile(file, source)
}
