package emitter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/ts2luau/internal/ast"
)

func param(name string) *ast.Parameter {
	return ast.NewParameter(pos(), ast.NewIdentifier(pos(), name, nil, nil), nil, false, false, nil)
}

func TestLowerParameterList_DefaultAndRest(t *testing.T) {
	tr := newTestTranspiler()
	tr.ctx.PushScope()

	withDefault := ast.NewParameter(pos(), ast.NewIdentifier(pos(), "x", nil, nil), numLit(1), false, false, nil)
	rest := ast.NewParameter(pos(), ast.NewIdentifier(pos(), "rest", nil, nil), nil, true, false, nil)

	names, prologue := tr.lowerParameterList([]*ast.Parameter{withDefault, rest}, false)

	require.Equal(t, []string{"x", "..."}, names)
	require.Contains(t, prologue, "if x == nil then x = 1 end")
	require.Contains(t, prologue, "local rest = { ... };")
}

func TestLowerParameterList_LeadingSelf(t *testing.T) {
	tr := newTestTranspiler()
	tr.ctx.PushScope()

	names, _ := tr.lowerParameterList([]*ast.Parameter{param("a")}, true)
	require.Equal(t, []string{"self", "a"}, names)
}

func TestLowerParameterList_CapturedIntoThis(t *testing.T) {
	tr := newTestTranspiler()
	tr.ctx.PushScope()

	p := ast.NewParameter(pos(), ast.NewIdentifier(pos(), "x", nil, nil), nil, false, true, nil)
	_, prologue := tr.lowerParameterList([]*ast.Parameter{p}, false)
	require.Contains(t, prologue, "self.x = x;")
}

func TestTranslateFunctionDeclaration_Exported(t *testing.T) {
	tr := newTestTranspiler()
	tr.ctx.PushScope()

	fn := ast.NewFunctionDeclaration(pos(), ast.KindFunctionDeclaration, ast.NewIdentifier(pos(), "greet", nil, nil), nil, emptyBody(), nil)
	fn.IsExported = true

	out := tr.translateFunctionDeclaration(fn)
	require.Contains(t, out, "local function greet()")

	_, exportLines := tr.ctx.PopScope()
	require.Len(t, exportLines, 1)
	require.Contains(t, exportLines[0], "_exports.greet = greet;")
}

func TestExportTarget_InsideNamespace(t *testing.T) {
	tr := newTestTranspiler()
	tr.ctx.PushNamespace("N")
	require.Equal(t, "N.foo", tr.exportTarget("foo"))
	tr.ctx.PopNamespace()
	require.Equal(t, "_exports.foo", tr.exportTarget("foo"))
}
