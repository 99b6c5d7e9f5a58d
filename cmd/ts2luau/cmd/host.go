package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cwbudde/ts2luau/internal/ast"
	"github.com/cwbudde/ts2luau/internal/config"
)

// projectHost is the CompilerHost implementation the CLI wires from a
// loaded config.Project. Module-path resolution beyond a trivial
// same-directory WaitForChild is out of scope (spec §1); every import
// resolves to a sibling-instance lookup named after the specifier's
// base file name.
type projectHost struct {
	project *config.Project
}

func (h *projectHost) GetRelativeImportPath(fromFile, toFile, specifier string) string {
	return waitForChild(specifier)
}

func (h *projectHost) GetImportPathFromFile(fromFile, toFile string) string {
	return waitForChild(toFile)
}

func (h *projectHost) NoHeuristics() bool {
	return h.project != nil && h.project.NoHeuristics
}

func waitForChild(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return fmt.Sprintf("script.Parent:WaitForChild(%q)", name)
}

// projectEnv is the ScriptEnvironment implementation the CLI wires from
// a loaded config.Project.
type projectEnv struct {
	project *config.Project
}

func (e *projectEnv) GetScriptContext(file string) ast.ScriptContext {
	if e.project == nil {
		return ast.ScriptContextNone
	}
	return e.project.ScriptContextFor(file)
}

func (e *projectEnv) GetScriptType(file string) ast.ScriptType {
	return ast.ScriptTypeModule
}

func (e *projectEnv) IsValidIdentifier(s string) bool {
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

func (e *projectEnv) SafeIndex(obj, key string) string {
	if e.IsValidIdentifier(key) {
		return obj + "." + key
	}
	return fmt.Sprintf("%s[%q]", obj, key)
}

var luauReservedWords = map[string]bool{
	"and": true, "break": true, "do": true, "else": true, "elseif": true,
	"end": true, "false": true, "for": true, "function": true, "if": true,
	"in": true, "local": true, "nil": true, "not": true, "or": true,
	"repeat": true, "return": true, "then": true, "true": true,
	"until": true, "while": true, "continue": true,
}
