package emitter

import (
	"fmt"

	"github.com/cwbudde/ts2luau/internal/ast"
	"github.com/cwbudde/ts2luau/internal/collaborators"
	terrors "github.com/cwbudde/ts2luau/internal/errors"
)

// Transpiler is a single stateful translator instance bound to one
// compilation unit at a time (spec §1, §5). It is not safe for
// concurrent use by multiple goroutines translating different files; run
// one Transpiler per file, as the batch command in cmd/ts2luau does.
type Transpiler struct {
	ctx  *Context
	host collaborators.CompilerHost
	env  collaborators.ScriptEnvironment

	file   string
	source string

	// inConstructor is true while lowering a class constructor body; an
	// explicit `return` there is rejected since the constructor function
	// returns into `Cls.new`, not the object itself (spec §4.8 step 3).
	inConstructor bool
}

// New builds a Transpiler bound to the given external collaborators.
func New(host collaborators.CompilerHost, env collaborators.ScriptEnvironment) *Transpiler {
	return &Transpiler{host: host, env: env}
}

// translatePanic carries a *terrors.TranslateError up the recursive
// descent to the single recover point in TranslateSourceFile. This
// mirrors go/printer's own internal panic/recover use for the same
// reason: threading an error return through every one of dozens of
// mutually-recursive translator methods would obscure the syntax-
// directed structure the spec describes in terms of plain recursive
// string building.
type translatePanic struct{ err *terrors.TranslateError }

func (t *Transpiler) fail(kind terrors.Kind, node ast.Node, format string, args ...any) string {
	err := terrors.New(kind, node, t.file, t.source, format, args...)
	panic(translatePanic{err})
}

// TranslateSourceFile translates one compilation unit to a Luau source
// string. On success, the Context's stacks are left exactly as they
// started (spec §8 invariant 1). On failure, the partial output is
// discarded and a *terrors.TranslateError is returned; the AST is never
// mutated either way.
func (t *Transpiler) TranslateSourceFile(file *ast.SourceFile, source string) (out string, err error) {
	t.ctx = NewContext()
	t.file = file.FileName
	t.source = source

	defer func() {
		if r := recover(); r != nil {
			tp, ok := r.(translatePanic)
			if !ok {
				panic(r)
			}
			out, err = "", tp.err
		}
	}()

	return t.translateSourceFile(file), nil
}

func (t *Transpiler) translateSourceFile(file *ast.SourceFile) string {
	t.ctx.PushScope()

	body := t.translateStatementList(file.Statements)

	hoistLine, exportLines := t.ctx.PopScope()

	var out string
	out += "-- luacheck: ignore\n"
	out += `local TS = require(game:GetService("ReplicatedStorage"):WaitForChild("rbxts_include"):WaitForChild("RuntimeLib"))` + "\n"
	out += "local _exports = {};\n"

	if hoistLine != "" {
		out += hoistLine + "\n"
	}
	out += body
	for _, line := range exportLines {
		out += line + "\n"
	}

	if t.ctx.IsModule() {
		if file.ScriptType != ast.ScriptTypeModule {
			t.fail(terrors.KindExportInScript, file, "file %q emitted an export but is not a module script", file.FileName)
		}
		out += "return _exports;\n"
	} else if file.ScriptType == ast.ScriptTypeModule {
		t.fail(terrors.KindModuleWithNoExports, file, "module script %q declares no exports", file.FileName)
	}

	return out
}

// checkScriptContext enforces the @rbx-client/@rbx-server directive
// (spec §6) unless the compiler host has heuristics disabled. No
// translation path calls it and the AST carries no JSDoc tags, so the
// directive is not checked while translating.
func (t *Transpiler) checkScriptContext(node ast.Node, tag string) {
	if t.host.NoHeuristics() {
		return
	}
	switch tag {
	case "@rbx-client":
		if t.scriptContext() == ast.ScriptContextServer {
			t.fail(terrors.KindServerAccessingClientAPI, node, "server script cannot access a @rbx-client symbol")
		}
	case "@rbx-server":
		if t.scriptContext() == ast.ScriptContextClient {
			t.fail(terrors.KindClientAccessingServerAPI, node, "client script cannot access a @rbx-server symbol")
		}
	}
}

func (t *Transpiler) scriptContext() ast.ScriptContext {
	if t.env == nil {
		return ast.ScriptContextNone
	}
	return t.env.GetScriptContext(t.file)
}

func (t *Transpiler) safeIndex(obj, key string) string {
	if t.env != nil {
		return t.env.SafeIndex(obj, key)
	}
	if isValidLuauIdentifierFallback(key) {
		return obj + "." + key
	}
	return fmt.Sprintf("%s[%q]", obj, key)
}

func (t *Transpiler) isValidIdentifier(s string) bool {
	if t.env != nil {
		return t.env.IsValidIdentifier(s)
	}
	return isValidLuauIdentifierFallback(s)
}

func isValidLuauIdentifierFallback(s string) bool {
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

var luauReservedWords = map[string]bool{
	"and": true, "break": true, "do": true, "else": true, "elseif": true,
	"end": true, "false": true, "for": true, "function": true, "if": true,
	"in": true, "local": true, "nil": true, "not": true, "or": true,
	"repeat": true, "return": true, "then": true, "true": true,
	"until": true, "while": true, "continue": true,
}
