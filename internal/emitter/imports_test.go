package emitter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/ts2luau/internal/ast"
)

func TestTranslateImportDeclaration_SideEffectOnly(t *testing.T) {
	tr := newTestTranspiler()
	imp := ast.NewImportDeclaration(pos(), nil, "./Setup")

	out := tr.translateImportDeclaration(imp)
	require.Contains(t, out, `require(script.Parent:WaitForChild("./Setup"));`)
}

func TestTranslateImportDeclaration_DefaultAndNamed(t *testing.T) {
	tr := newTestTranspiler()
	tr.ctx.PushScope()
	clause := ast.NewImportClause(pos(),
		ast.NewIdentifier(pos(), "Default", nil, nil),
		nil,
		[]*ast.ImportSpecifier{ast.NewImportSpecifier(pos(), "foo", "foo")},
	)
	imp := ast.NewImportDeclaration(pos(), clause, "./Mod")

	out := tr.translateImportDeclaration(imp)

	require.Contains(t, out, "local Default = _0._default;")
	require.Contains(t, out, "local foo = _0.foo;")
}

func TestTranslateImportDeclaration_NamespaceAlias(t *testing.T) {
	tr := newTestTranspiler()
	tr.ctx.PushScope()
	clause := ast.NewImportClause(pos(), nil, ast.NewIdentifier(pos(), "NS", nil, nil), nil)
	imp := ast.NewImportDeclaration(pos(), clause, "./Mod")

	out := tr.translateImportDeclaration(imp)
	require.Contains(t, out, "local NS = _0;")
}

func TestTranslateExportDeclaration_StarMarksModule(t *testing.T) {
	tr := newTestTranspiler()
	tr.ctx.PushScope()
	exp := ast.NewExportDeclaration(pos(), nil, true, "./Mod")

	out := tr.translateExportDeclaration(exp)
	require.Contains(t, out, "TS.exportNamespace(_exports, require(")
	require.True(t, tr.ctx.IsModule())
}

func TestTranslateExportDeclaration_NamedNoSpecifier(t *testing.T) {
	tr := newTestTranspiler()
	tr.ctx.PushScope()
	exp := ast.NewExportDeclaration(pos(), []*ast.ExportSpecifier{ast.NewExportSpecifier(pos(), "foo", "bar")}, false, "")

	out := tr.translateExportDeclaration(exp)
	require.Equal(t, "", out)

	_, exportLines := tr.ctx.PopScope()
	require.Len(t, exportLines, 1)
	require.Contains(t, exportLines[0], "_exports.bar = foo;")
}

func TestTranslateExportAssignment(t *testing.T) {
	tr := newTestTranspiler()
	exp := ast.NewExportAssignment(pos(), ast.NewIdentifier(pos(), "api", nil, nil))

	out := tr.translateExportAssignment(exp)
	require.Contains(t, out, "_exports = api;")
	require.True(t, tr.ctx.IsModule())
}
