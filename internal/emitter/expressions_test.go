package emitter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/ts2luau/internal/ast"
)

func TestTranslateIdentifier(t *testing.T) {
	tr := newTestTranspiler()

	require.Equal(t, "nil", tr.translateIdentifier(ast.NewIdentifier(pos(), "undefined", nil, nil)))
	require.Equal(t, "TS.Promise", tr.translateIdentifier(ast.NewIdentifier(pos(), "Promise", nil, nil)))
	require.Equal(t, "foo", tr.translateIdentifier(ast.NewIdentifier(pos(), "foo", nil, nil)))
}

func TestTranslateIdentifier_ReservedWordFails(t *testing.T) {
	tr := newTestTranspiler()
	require.Panics(t, func() {
		tr.translateIdentifier(ast.NewIdentifier(pos(), "local", nil, nil))
	})
}

func TestTranslateNumericLiteral(t *testing.T) {
	tr := newTestTranspiler()

	tests := []struct {
		text string
		val  float64
		want string
	}{
		{"1e10", 1e10, "1e10"},
		{"3.14", 3.14, "3.14"},
		{"42", 42, "42"},
		{"0x1A", 26, "26"},
	}
	for _, tt := range tests {
		n := ast.NewNumericLiteral(pos(), tt.text, tt.val)
		require.Equal(t, tt.want, tr.translateNumericLiteral(n))
	}
}

func TestQuoteLuauString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`hello`, `"hello"`},
		{`say "hi"`, `"say \"hi\""`},
		{"line\nbreak", `"line\nbreak"`},
		{"a\\b", `"a\\b"`},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, quoteLuauString(tt.in))
	}
}

func TestTranslateExpression_StringAndBoolean(t *testing.T) {
	tr := newTestTranspiler()

	require.Equal(t, `"hi"`, tr.translateExpression(ast.NewStringLiteral(pos(), "hi")))
	require.Equal(t, "true", tr.translateExpression(ast.NewBooleanLiteral(pos(), true)))
	require.Equal(t, "false", tr.translateExpression(ast.NewBooleanLiteral(pos(), false)))
}

func TestTranslateExpression_NullLiteralFails(t *testing.T) {
	tr := newTestTranspiler()
	require.Panics(t, func() {
		tr.translateExpression(ast.NewNullLiteral(pos()))
	})
}

func TestTranslateExpression_ThisAndSuper(t *testing.T) {
	tr := newTestTranspiler()
	require.Equal(t, "self", tr.translateExpression(ast.NewThisExpression(pos(), nil)))
	require.Panics(t, func() {
		tr.translateExpression(ast.NewSuperExpression(pos(), "Base"))
	})
}
