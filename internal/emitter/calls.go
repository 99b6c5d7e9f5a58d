package emitter

import (
	"fmt"
	"strings"

	"github.com/cwbudde/ts2luau/internal/ast"
	terrors "github.com/cwbudde/ts2luau/internal/errors"
)

// stringMacroMethods is the fixed set of String.prototype methods that
// lower directly to the target stdlib's string library rather than
// through a runtime wrapper (spec §4.5).
var stringMacroMethods = map[string]bool{
	"byte": true, "find": true, "format": true, "gmatch": true, "gsub": true,
	"len": true, "lower": true, "match": true, "rep": true, "reverse": true,
	"sub": true, "upper": true,
}

var mathLikeOperatorMethods = map[string]string{
	"add": "+", "sub": "-", "mul": "*", "div": "/",
}

// translateCallExpression classifies the callee and lowers accordingly
// (spec §4.5). A call whose callee is `super` is the base-class
// constructor call; a call whose callee is a property access is routed
// through the method-call classification table; anything else is a
// plain call.
func (t *Transpiler) translateCallExpression(n *ast.CallExpression) string {
	if _, ok := n.Callee.(*ast.SuperExpression); ok {
		// handled by translateConstructorSuperCall in classes.go; a bare
		// super(...) call only appears there syntactically.
		t.fail(terrors.KindInternalUnreachable, n, "super(...) is only valid as the first statement of a constructor")
		return ""
	}

	if member, ok := n.Callee.(*ast.PropertyAccessExpression); ok {
		return t.translateMethodCall(member, n.Arguments)
	}

	args := t.translateArguments(n.Arguments)
	return fmt.Sprintf("%s(%s)", t.translateExpression(n.Callee), args)
}

func (t *Transpiler) translateArguments(args []ast.Expression) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = t.translateExpression(a)
	}
	return strings.Join(parts, ", ")
}

// translateMethodCall implements the receiver-type classification table
// of spec §4.5.
func (t *Transpiler) translateMethodCall(member *ast.PropertyAccessExpression, rawArgs []ast.Expression) string {
	args := t.translateArguments(rawArgs)
	method := member.Name
	recvType := exprType(member.Expression)
	recvName := recvType.Name()

	if super, ok := member.Expression.(*ast.SuperExpression); ok {
		return fmt.Sprintf("%s.%s(self%s)", super.BaseName, method, prefixComma(args))
	}

	switch {
	case recvType.IsArray():
		return fmt.Sprintf("TS.array_%s(%s%s)", method, t.translateExpression(member.Expression), prefixComma(args))

	case recvType.IsString():
		if stringMacroMethods[method] {
			return fmt.Sprintf("string.%s(%s%s)", method, t.translateExpression(member.Expression), prefixComma(args))
		}
		return fmt.Sprintf("TS.string_%s(%s%s)", method, t.translateExpression(member.Expression), prefixComma(args))

	case recvName == "Promise" && method == "then":
		return fmt.Sprintf("%s:andThen(%s)", t.translateExpression(member.Expression), args)

	case isSymbolConstructor(member.Expression) && method == "for":
		return fmt.Sprintf("%s.getFor(%s)", t.translateExpression(member.Expression), args)

	case recvName == "Map" || recvName == "ReadonlyMap" || recvName == "WeakMap":
		return fmt.Sprintf("TS.map_%s(%s%s)", method, t.translateExpression(member.Expression), prefixComma(args))

	case recvName == "Set" || recvName == "ReadonlySet" || recvName == "WeakSet":
		return fmt.Sprintf("TS.set_%s(%s%s)", method, t.translateExpression(member.Expression), prefixComma(args))

	case isObjectConstructor(member.Expression):
		return fmt.Sprintf("TS.Object_%s(%s)", method, args)

	case mathLikeValueTypes[recvName] && mathLikeOperatorMethods[method] != "":
		op := mathLikeOperatorMethods[method]
		if len(rawArgs) != 1 {
			t.fail(terrors.KindBadOperator, member, "math-like operator method %q takes exactly one argument", method)
		}
		return fmt.Sprintf("(%s %s %s)", t.translateExpression(member.Expression), op, args)

	case member.NameSymbol != nil && isMethodLikeDeclaration(member.NameSymbol.GetValueDeclaration()):
		return fmt.Sprintf("%s:%s(%s)", t.translateExpression(member.Expression), method, args)

	default:
		return fmt.Sprintf("%s.%s(%s)", t.translateExpression(member.Expression), method, args)
	}
}

// isMathMacroCall reports whether expr is a call to a math-like value
// type's operator method (`v.add(w)` etc.), which is rejected when used
// as a bare expression statement (spec §7) since the lowering is a pure
// expression with no side effect to perform as a statement.
func isMathMacroCall(expr ast.Expression) bool {
	call, ok := expr.(*ast.CallExpression)
	if !ok {
		return false
	}
	member, ok := call.Callee.(*ast.PropertyAccessExpression)
	if !ok {
		return false
	}
	return mathLikeValueTypes[exprType(member.Expression).Name()] && mathLikeOperatorMethods[member.Name] != ""
}

func isSymbolConstructor(e ast.Expression) bool {
	id, ok := e.(*ast.Identifier)
	return ok && id.Text == "Symbol"
}

func isObjectConstructor(e ast.Expression) bool {
	id, ok := e.(*ast.Identifier)
	return ok && id.Text == "Object"
}

func prefixComma(args string) string {
	if args == "" {
		return ""
	}
	return ", " + args
}

// translateNewExpression lowers `new Callee(args)` to the class's `.new`
// factory call (spec §4.5, §4.8). `new Foo` without parentheses is
// rejected.
func (t *Transpiler) translateNewExpression(n *ast.NewExpression) string {
	if !n.HasParens {
		t.fail(terrors.KindNewWithoutParens, n, "new expression must have parentheses")
	}
	return fmt.Sprintf("%s.new(%s)", t.translateExpression(n.Callee), t.translateArguments(n.Arguments))
}
