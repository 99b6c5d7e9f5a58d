package emitter

import (
	"fmt"

	"github.com/cwbudde/ts2luau/internal/ast"
	terrors "github.com/cwbudde/ts2luau/internal/errors"
)

// translatePropertyAccess lowers `expr.name` (spec §4.4). Access on
// `super` and access whose declaration denotes a method are both
// special-cased before call-expression dispatch ever sees them, because
// a bare (non-called) reference to either is syntactically valid too
// (e.g. passing a method as a callback is rejected, `super.x` as a
// plain read is not).
func (t *Transpiler) translatePropertyAccess(n *ast.PropertyAccessExpression) string {
	if super, ok := n.Expression.(*ast.SuperExpression); ok {
		return fmt.Sprintf(
			"(%s._getters and %s._getters[%q] and %s._getters[%q](self) or self[%q])",
			super.BaseName, super.BaseName, n.Name, super.BaseName, n.Name, n.Name,
		)
	}

	if n.Name == "prototype" {
		t.fail(terrors.KindAccessPrototype, n, "accessing .prototype is not supported")
	}

	if n.NameSymbol != nil {
		if decl := n.NameSymbol.GetValueDeclaration(); decl != nil {
			if isMethodLikeDeclaration(decl) {
				t.fail(terrors.KindIndexFunctionValue, n, "cannot reference method %q as a value", n.Name)
			}
			if member, ok := decl.(*ast.EnumMember); ok {
				return constEnumValueLiteral(member)
			}
		}
	}

	recvType := exprType(n.Expression)
	if n.Name == "length" && (recvType.IsString() || recvType.IsArray()) {
		return fmt.Sprintf("#(%s)", t.translateExpression(n.Expression))
	}

	return t.safeIndex(t.translateExpression(n.Expression), n.Name)
}

func isMethodLikeDeclaration(decl ast.Node) bool {
	fn, ok := decl.(*ast.FunctionDeclaration)
	if !ok {
		return false
	}
	switch fn.Kind() {
	case ast.KindMethodDeclaration, ast.KindGetAccessor, ast.KindSetAccessor, ast.KindConstructor:
		return true
	default:
		return false
	}
}

// constEnumValueLiteral inlines a const-enum member access to its
// compile-time value (spec §4.4, §4.10). The AST provider is expected to
// leave NameSymbol's value declaration nil for non-const enum members,
// so ordinary table-lookup lowering applies to those.
func constEnumValueLiteral(member *ast.EnumMember) string {
	switch v := member.ResolvedValue.(type) {
	case string:
		return quoteLuauString(v)
	case int64:
		return fmt.Sprintf("%d", v)
	case int:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return "nil"
	}
}

// translateElementIndex renders the bracketed index expression of an
// element access, applying the 1-based offset for array/tuple receivers
// (spec §4.4, example E5) and routing a tuple-typed call receiver
// through `select`.
func (t *Transpiler) translateElementIndex(n *ast.ElementAccessExpression) string {
	if n.ExpressionType.IsArray() || n.ExpressionType.IsTuple() {
		return t.translateExpression(n.ArgumentExpr) + " + 1"
	}
	return t.translateExpression(n.ArgumentExpr)
}

// translateElementAccess lowers `expr[index]` (spec §4.4). A call
// returning a tuple is indexed with `select`; an array literal or array-
// constructor-call receiver is parenthesized so indexing binds to the
// value rather than being re-parsed as a call argument list.
func (t *Transpiler) translateElementAccess(n *ast.ElementAccessExpression) string {
	if call, ok := n.Expression.(*ast.CallExpression); ok && n.ExpressionType.IsTuple() {
		return fmt.Sprintf("select(%s, %s)", t.translateElementIndex(n), t.translateExpression(call))
	}

	recv := t.translateExpression(n.Expression)
	switch n.Expression.(type) {
	case *ast.ArrayLiteralExpression, *ast.NewExpression:
		recv = "(" + recv + ")"
	}

	return fmt.Sprintf("%s[%s]", recv, t.translateElementIndex(n))
}
