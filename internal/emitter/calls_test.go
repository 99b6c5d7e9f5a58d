package emitter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/ts2luau/internal/ast"
)

func TestTranslateMethodCall_SuperCallsBaseDirectly(t *testing.T) {
	tr := newTestTranspiler()
	super := ast.NewSuperExpression(pos(), "Animal")
	member := ast.NewPropertyAccessExpression(pos(), super, "speak", nil, nil)

	out := tr.translateMethodCall(member, nil)
	require.Equal(t, "Animal.speak(self)", out)
}

func TestTranslateMethodCall_SuperCallWithArgs(t *testing.T) {
	tr := newTestTranspiler()
	super := ast.NewSuperExpression(pos(), "Animal")
	member := ast.NewPropertyAccessExpression(pos(), super, "move", nil, nil)

	out := tr.translateMethodCall(member, []ast.Expression{numLit(5)})
	require.Equal(t, "Animal.move(self, 5)", out)
}

func TestTranslateMethodCall_ArrayRoutesThroughRuntime(t *testing.T) {
	tr := newTestTranspiler()
	arrType := ast.NewArrayType(ast.NewType("string", ast.TypeFlagString))
	recv := ast.NewIdentifier(pos(), "items", arrType, nil)
	member := ast.NewPropertyAccessExpression(pos(), recv, "push", nil, nil)

	out := tr.translateMethodCall(member, []ast.Expression{numLit(1)})
	require.Equal(t, "TS.array_push(items, 1)", out)
}

func TestTranslateMethodCall_StringMacroMethod(t *testing.T) {
	tr := newTestTranspiler()
	recv := ast.NewIdentifier(pos(), "s", ast.NewType("string", ast.TypeFlagString), nil)
	member := ast.NewPropertyAccessExpression(pos(), recv, "upper", nil, nil)

	out := tr.translateMethodCall(member, nil)
	require.Equal(t, "string.upper(s)", out)
}

func TestTranslateMethodCall_StringNonMacroMethod(t *testing.T) {
	tr := newTestTranspiler()
	recv := ast.NewIdentifier(pos(), "s", ast.NewType("string", ast.TypeFlagString), nil)
	member := ast.NewPropertyAccessExpression(pos(), recv, "includes", nil, nil)

	out := tr.translateMethodCall(member, []ast.Expression{strLit("x")})
	require.Equal(t, `TS.string_includes(s, "x")`, out)
}

func TestTranslateMethodCall_MathLikeOperatorMethod(t *testing.T) {
	tr := newTestTranspiler()
	recv := ast.NewIdentifier(pos(), "v", ast.NewType("Vector3", 0), nil)
	member := ast.NewPropertyAccessExpression(pos(), recv, "add", nil, nil)

	out := tr.translateMethodCall(member, []ast.Expression{ident("w")})
	require.Equal(t, "(v + w)", out)
}

func TestTranslateMethodCall_MathLikeOperatorWrongArity(t *testing.T) {
	tr := newTestTranspiler()
	recv := ast.NewIdentifier(pos(), "v", ast.NewType("Vector3", 0), nil)
	member := ast.NewPropertyAccessExpression(pos(), recv, "add", nil, nil)

	require.Panics(t, func() { tr.translateMethodCall(member, nil) })
}

func TestTranslateMethodCall_DefaultFallsThroughToDotCall(t *testing.T) {
	tr := newTestTranspiler()
	member := ast.NewPropertyAccessExpression(pos(), ident("obj"), "doThing", nil, nil)

	out := tr.translateMethodCall(member, nil)
	require.Equal(t, "obj.doThing()", out)
}

func TestIsMathMacroCall_TrueForOperatorMethod(t *testing.T) {
	recv := ast.NewIdentifier(pos(), "v", ast.NewType("Vector3", 0), nil)
	member := ast.NewPropertyAccessExpression(pos(), recv, "add", nil, nil)
	call := ast.NewCallExpression(pos(), member, []ast.Expression{ident("w")}, nil)

	require.True(t, isMathMacroCall(call))
}

func TestIsMathMacroCall_FalseForPlainCall(t *testing.T) {
	call := ast.NewCallExpression(pos(), ident("f"), nil, nil)
	require.False(t, isMathMacroCall(call))
}
