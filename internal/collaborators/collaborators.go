// Package collaborators defines the external interfaces the transpiler
// consumes but does not implement: module-path resolution and ambient
// environment queries (spec.md §6). Production wiring supplies real
// implementations; tests supply fakes.
package collaborators

import "github.com/cwbudde/ts2luau/internal/ast"

// CompilerHost resolves module specifiers to already-quoted target-
// language expressions that the translator places as the argument of
// `require(...)`. Both methods return a string ready to be spliced
// directly into emitted source.
type CompilerHost interface {
	// GetRelativeImportPath resolves an import relative to fromFile.
	GetRelativeImportPath(fromFile, toFile, specifier string) string

	// GetImportPathFromFile resolves toFile as imported from fromFile
	// without an explicit specifier (e.g. a re-export target).
	GetImportPathFromFile(fromFile, toFile string) string

	// NoHeuristics disables the cross-context (@rbx-client/@rbx-server)
	// access checks in spec.md §6.
	NoHeuristics() bool
}

// ScriptEnvironment answers ambient questions about a compilation unit
// and about identifier shape in the target language.
type ScriptEnvironment interface {
	GetScriptContext(file string) ast.ScriptContext
	GetScriptType(file string) ast.ScriptType

	// IsValidIdentifier reports whether s can be used as a bare
	// identifier in the target language without index syntax.
	IsValidIdentifier(s string) bool

	// SafeIndex renders `obj.key` when key is a valid identifier, or
	// `obj["key"]` otherwise.
	SafeIndex(obj, key string) string
}
