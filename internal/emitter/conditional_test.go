package emitter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/ts2luau/internal/ast"
)

func TestTranslateConditionalExpression_PlainAndOr(t *testing.T) {
	tr := newTestTranspiler()
	n := ast.NewConditionalExpression(pos(), ident("cond"), numLit(1), numLit(2))

	require.Equal(t, "(cond and 1 or 2)", tr.translateConditionalExpression(n))
}

func TestTranslateConditionalExpression_NullableTrueBranchUsesThunks(t *testing.T) {
	tr := newTestTranspiler()
	nullableType := ast.NewType("string", ast.TypeFlagNullable)
	whenTrue := ast.NewIdentifier(pos(), "maybe", nullableType, nil)
	n := ast.NewConditionalExpression(pos(), ident("cond"), whenTrue, numLit(2))

	out := tr.translateConditionalExpression(n)
	require.Contains(t, out, "function() return maybe end")
	require.Contains(t, out, "function() return 2 end")
}

func TestTranslateConditionalExpression_BooleanTrueBranchUsesThunks(t *testing.T) {
	tr := newTestTranspiler()
	boolType := ast.NewType("boolean", ast.TypeFlagBoolean)
	whenTrue := ast.NewIdentifier(pos(), "flag", boolType, nil)
	n := ast.NewConditionalExpression(pos(), ident("cond"), whenTrue, ident("other"))

	out := tr.translateConditionalExpression(n)
	require.Contains(t, out, "(cond and function() return flag end or function() return other end)()")
}
