package emitter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/ts2luau/internal/ast"
)

func TestTranslatePropertyAccess_Plain(t *testing.T) {
	tr := newTestTranspiler()
	n := ast.NewPropertyAccessExpression(pos(), ident("obj"), "foo", nil, nil)

	require.Equal(t, "obj.foo", tr.translatePropertyAccess(n))
}

func TestTranslatePropertyAccess_ReservedWordUsesBracket(t *testing.T) {
	tr := newTestTranspiler()
	n := ast.NewPropertyAccessExpression(pos(), ident("obj"), "end", nil, nil)

	require.Equal(t, `obj["end"]`, tr.translatePropertyAccess(n))
}

func TestTranslatePropertyAccess_PrototypeRejected(t *testing.T) {
	tr := newTestTranspiler()
	n := ast.NewPropertyAccessExpression(pos(), ident("obj"), "prototype", nil, nil)

	require.Panics(t, func() { tr.translatePropertyAccess(n) })
}

func TestTranslatePropertyAccess_Super(t *testing.T) {
	tr := newTestTranspiler()
	super := ast.NewSuperExpression(pos(), "Animal")
	n := ast.NewPropertyAccessExpression(pos(), super, "name", nil, nil)

	out := tr.translatePropertyAccess(n)
	require.Contains(t, out, "Animal._getters")
	require.Contains(t, out, `"name"`)
}

func TestTranslatePropertyAccess_LengthOnArray(t *testing.T) {
	tr := newTestTranspiler()
	arrType := ast.NewArrayType(ast.NewType("string", ast.TypeFlagString))
	obj := ast.NewIdentifier(pos(), "arr", arrType, nil)
	n := ast.NewPropertyAccessExpression(pos(), obj, "length", nil, nil)

	require.Equal(t, "#(arr)", tr.translatePropertyAccess(n))
}

func TestTranslateElementIndex_ArrayOffsetByOne(t *testing.T) {
	tr := newTestTranspiler()
	arrType := ast.NewArrayType(ast.NewType("string", ast.TypeFlagString))
	n := ast.NewElementAccessExpression(pos(), ident("arr"), numLit(0), arrType, nil)

	require.Equal(t, "0 + 1", tr.translateElementIndex(n))
}

func TestTranslateElementIndex_NonArrayNoOffset(t *testing.T) {
	tr := newTestTranspiler()
	n := ast.NewElementAccessExpression(pos(), ident("obj"), strLit("key"), nil, nil)

	require.Equal(t, `"key"`, tr.translateElementIndex(n))
}

func TestTranslateElementAccess_ArrayLiteralParenthesized(t *testing.T) {
	tr := newTestTranspiler()
	arr := ast.NewArrayLiteralExpression(pos(), []ast.Expression{numLit(1)}, nil)
	n := ast.NewElementAccessExpression(pos(), arr, numLit(0), nil, nil)

	out := tr.translateElementAccess(n)
	require.Contains(t, out, "(")
}

func TestTranslateElementAccess_Plain(t *testing.T) {
	tr := newTestTranspiler()
	n := ast.NewElementAccessExpression(pos(), ident("obj"), strLit("key"), nil, nil)

	require.Equal(t, `obj["key"]`, tr.translateElementAccess(n))
}
