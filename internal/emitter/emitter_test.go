package emitter

import (
	"fmt"

	"github.com/cwbudde/ts2luau/internal/ast"
)

// fakeHost is a minimal collaborators.CompilerHost for tests: every
// import resolves to a quoted literal built from the specifier alone, no
// filesystem or path resolution involved.
type fakeHost struct {
	noHeuristics bool
}

func (h *fakeHost) GetRelativeImportPath(fromFile, toFile, specifier string) string {
	return fmt.Sprintf("script.Parent:WaitForChild(%q)", specifier)
}

func (h *fakeHost) GetImportPathFromFile(fromFile, toFile string) string {
	return fmt.Sprintf("script.Parent:WaitForChild(%q)", toFile)
}

func (h *fakeHost) NoHeuristics() bool { return h.noHeuristics }

// fakeEnv is a minimal collaborators.ScriptEnvironment for tests.
type fakeEnv struct {
	context ast.ScriptContext
}

func (e *fakeEnv) GetScriptContext(file string) ast.ScriptContext { return e.context }
func (e *fakeEnv) GetScriptType(file string) ast.ScriptType       { return ast.ScriptTypeModule }

func (e *fakeEnv) IsValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
		isDigit := r >= '0' && r <= '9'
		if i == 0 && !isLetter {
			return false
		}
		if i > 0 && !isLetter && !isDigit {
			return false
		}
	}
	return !luauReservedWords[s]
}

func (e *fakeEnv) SafeIndex(obj, key string) string {
	if e.IsValidIdentifier(key) {
		return obj + "." + key
	}
	return fmt.Sprintf("%s[%q]", obj, key)
}

func newTestTranspiler() *Transpiler {
	t := New(&fakeHost{}, &fakeEnv{})
	t.ctx = NewContext()
	t.file = "Test.ts"
	t.source = ""
	return t
}

func pos() ast.Position { return ast.Position{Line: 1, Column: 1} }
