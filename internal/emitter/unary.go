package emitter

import (
	"fmt"

	"github.com/cwbudde/ts2luau/internal/ast"
	terrors "github.com/cwbudde/ts2luau/internal/errors"
)

// translatePrefixUnary lowers `!x`, `-x`, `+x`, and prefix `++x`/`--x`
// used in value position (spec §4.3). `typeof`/`await`/spread have their
// own dedicated node kinds and do not reach this translator. `~` has no
// runtime helper in the glossary and is rejected.
func (t *Transpiler) translatePrefixUnary(n *ast.PrefixUnaryExpression) string {
	switch n.Operator {
	case "!":
		return "not " + t.translateExpression(n.Operand)
	case "-":
		return "-" + t.translateExpression(n.Operand)
	case "+":
		return t.translateExpression(n.Operand)
	case "++", "--":
		return t.translateIncDecValue(n.Operand, n.Operator, true)
	default:
		t.fail(terrors.KindBadOperator, n, "unrecognized prefix operator %q", n.Operator)
		return ""
	}
}

// translatePostfixUnaryValue lowers `x++`/`x--` used in value position:
// it captures the pre-value into a fresh identifier before mutating, so
// the expression evaluates to the old value (spec §4.3, example E3).
func (t *Transpiler) translatePostfixUnaryValue(n *ast.PostfixUnaryExpression) string {
	return t.translateIncDecValue(n.Operand, n.Operator, false)
}

func incDecOp(op string) string {
	if op == "++" {
		return "+"
	}
	return "-"
}

// translateIncDecStatement lowers `x++;`/`--x;` used as a statement to a
// plain assignment statement, single-evaluating a property-access
// receiver (spec §4.3).
func (t *Transpiler) translateIncDecStatement(operand ast.Expression, op string) string {
	if member, ok := operand.(*ast.PropertyAccessExpression); ok {
		recvID := t.ctx.NewID()
		out := t.line(fmt.Sprintf("local %s = %s;", recvID, t.translateExpression(member.Expression)))
		target := t.safeIndex(recvID, member.Name)
		out += t.line(fmt.Sprintf("%s = %s %s 1;", target, target, incDecOp(op)))
		return out
	}
	target := t.translateExpression(operand)
	return t.line(fmt.Sprintf("%s = %s %s 1;", target, target, incDecOp(op)))
}

// translateIncDecValue lowers `++x`/`x++`/`--x`/`x--` used in an
// expression (value) context by wrapping the mutation in an
// immediately-invoked anonymous function, since the target language has
// no assignment-as-expression construct (spec §4.3, example E3).
// prefix selects whether the new value (prefix) or the pre-value
// (postfix) is returned.
func (t *Transpiler) translateIncDecValue(operand ast.Expression, op string, prefix bool) string {
	if member, ok := operand.(*ast.PropertyAccessExpression); ok {
		recvID := t.ctx.NewID()
		target := t.safeIndex(recvID, member.Name)
		if prefix {
			return fmt.Sprintf(
				"(function() local %s = %s; %s = %s %s 1; return %s; end)()",
				recvID, t.translateExpression(member.Expression), target, target, incDecOp(op), target,
			)
		}
		preID := t.ctx.NewID()
		return fmt.Sprintf(
			"(function() local %s = %s; local %s = %s; %s = %s %s 1; return %s; end)()",
			recvID, t.translateExpression(member.Expression), preID, target, target, target, incDecOp(op), preID,
		)
	}

	target := t.translateExpression(operand)
	if prefix {
		return fmt.Sprintf("(function() %s = %s %s 1; return %s; end)()", target, target, incDecOp(op), target)
	}
	preID := t.ctx.NewID()
	return fmt.Sprintf("(function() local %s = %s; %s = %s %s 1; return %s; end)()", preID, target, target, target, incDecOp(op), preID)
}
