package emitter

import (
	"fmt"

	"github.com/cwbudde/ts2luau/internal/ast"
)

// translateConditionalExpression lowers `c ? t : f` (spec §4.3). When
// the true branch's type admits false-like values (nullable or
// boolean), the classic `and/or` idiom would silently fall through to
// the false branch whenever the true branch evaluates to a falsy value,
// so the two-thunk form is used instead.
func (t *Transpiler) translateConditionalExpression(n *ast.ConditionalExpression) string {
	cond := t.translateExpression(n.Condition)
	trueExpr := t.translateExpression(n.WhenTrue)
	falseExpr := t.translateExpression(n.WhenFalse)

	trueType := exprType(n.WhenTrue)
	if trueType.IsNullable() || trueType.IsBoolean() {
		return fmt.Sprintf(
			"(%s and function() return %s end or function() return %s end)()",
			cond, trueExpr, falseExpr,
		)
	}
	return fmt.Sprintf("(%s and %s or %s)", cond, trueExpr, falseExpr)
}
