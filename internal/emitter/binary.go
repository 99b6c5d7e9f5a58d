package emitter

import (
	"fmt"

	"github.com/cwbudde/ts2luau/internal/ast"
	terrors "github.com/cwbudde/ts2luau/internal/errors"
)

// mathLikeValueTypes is the glossary's set of types with operator-
// overloaded arithmetic, used by both `+` dispatch and method-call
// classification (spec §4.3, §4.5).
var mathLikeValueTypes = map[string]bool{
	"CFrame": true, "UDim": true, "UDim2": true,
	"Vector2": true, "Vector2int16": true,
	"Vector3": true, "Vector3int16": true,
}

// engineBaseInstanceType is the glossary's `Rbx_Instance`.
const engineBaseInstanceType = "Rbx_Instance"

var bitwiseRuntimeHelper = map[string]string{
	"|": "bor", "&": "band", "^": "bxor", "<<": "blsh", ">>": "brsh",
}

// translateBinaryExpression lowers a binary expression. The second
// (asStatement) parameter is unused; every caller passes false.
func (t *Transpiler) translateBinaryExpression(n *ast.BinaryExpression, _ bool) string {
	switch n.Operator {
	case "==", "!=":
		t.fail(terrors.KindLooseEquality, n, "loose equality (%s) is not supported; use strict equality", n.Operator)
		return ""
	case "===":
		return t.paren(n.Left) + " == " + t.paren(n.Right)
	case "!==":
		return t.paren(n.Left) + " ~= " + t.paren(n.Right)
	case "+":
		return t.translateAddition(n)
	case "|", "&", "^", "<<", ">>":
		return t.translateBitwise(n)
	case "&&":
		return t.paren(n.Left) + " and " + t.paren(n.Right)
	case "||":
		return t.paren(n.Left) + " or " + t.paren(n.Right)
	case "instanceof":
		return t.translateInstanceOf(n)
	case "in":
		return fmt.Sprintf("%s[%s] ~= nil", t.translateExpression(n.Right), t.translateExpression(n.Left))
	case "<", ">", "<=", ">=":
		return t.paren(n.Left) + " " + n.Operator + " " + t.paren(n.Right)
	case "-", "*", "/", "%", "**":
		return t.translateArithmetic(n)
	default:
		if isAssignmentOperator(n.Operator) {
			// Assignment used in value position: wrap in an IIFE
			// (spec §4.3's "assignment-is-an-expression" note).
			return t.translateAssignmentAsValue(n)
		}
		t.fail(terrors.KindBadOperator, n, "unrecognized binary operator %q", n.Operator)
		return ""
	}
}

func (t *Transpiler) paren(e ast.Expression) string {
	return t.translateExpression(e)
}

// translateAddition dispatches `+` on operand types (spec §4.3): string
// on either side concatenates (left parenthesized); number on both sides
// uses native `+`; otherwise the runtime `add` helper is used so
// user-defined operator-overload semantics on domain types still apply.
func (t *Transpiler) translateAddition(n *ast.BinaryExpression) string {
	leftType := exprType(n.Left)
	rightType := exprType(n.Right)

	if leftType.IsString() || rightType.IsString() {
		return "(" + t.translateExpression(n.Left) + ") .. " + t.translateExpression(n.Right)
	}
	if leftType.IsNumber() && rightType.IsNumber() {
		return t.translateExpression(n.Left) + " + " + t.translateExpression(n.Right)
	}
	return fmt.Sprintf("TS.add(%s, %s)", t.translateExpression(n.Left), t.translateExpression(n.Right))
}

func (t *Transpiler) translateArithmetic(n *ast.BinaryExpression) string {
	op := n.Operator
	if op == "**" {
		return fmt.Sprintf("%s ^ %s", t.translateExpression(n.Left), t.translateExpression(n.Right))
	}
	return t.translateExpression(n.Left) + " " + op + " " + t.translateExpression(n.Right)
}

// translateBitwise lowers bitwise operators to runtime helpers, with the
// `x | 0` integer-truncation idiom special-cased to TS.round (spec
// §4.3).
func (t *Transpiler) translateBitwise(n *ast.BinaryExpression) string {
	if n.Operator == "|" {
		if num, ok := n.Right.(*ast.NumericLiteral); ok && num.Value == 0 {
			return fmt.Sprintf("TS.round(%s)", t.translateExpression(n.Left))
		}
	}
	helper := bitwiseRuntimeHelper[n.Operator]
	return fmt.Sprintf("TS.%s(%s, %s)", helper, t.translateExpression(n.Left), t.translateExpression(n.Right))
}

// translateInstanceOf is type-directed (spec §4.3): inheriting from the
// engine base instance type uses a tag-string isA check; a known
// built-in value type uses a tag-equality check via runtime typeof;
// otherwise the generic runtime instanceof helper applies.
func (t *Transpiler) translateInstanceOf(n *ast.BinaryExpression) string {
	rightIdent, ok := n.Right.(*ast.Identifier)
	if !ok {
		return fmt.Sprintf("TS.instanceof(%s, %s)", t.translateExpression(n.Left), t.translateExpression(n.Right))
	}

	rightType := exprType(n.Right)
	if rightType.InheritsFrom(engineBaseInstanceType) || rightIdent.Text == engineBaseInstanceType {
		return fmt.Sprintf("TS.isA(%s, %q)", t.translateExpression(n.Left), rightIdent.Text)
	}
	if mathLikeValueTypes[rightIdent.Text] {
		return fmt.Sprintf("TS.typeof(%s) == %q", t.translateExpression(n.Left), rightIdent.Text)
	}
	return fmt.Sprintf("TS.instanceof(%s, %s)", t.translateExpression(n.Left), t.translateExpression(n.Right))
}

func exprType(e ast.Expression) *ast.Type {
	if typed, ok := e.(ast.Typed); ok {
		return typed.ExprType()
	}
	return nil
}
