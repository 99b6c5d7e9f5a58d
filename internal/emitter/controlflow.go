package emitter

import (
	"fmt"
	"strings"

	"github.com/cwbudde/ts2luau/internal/ast"
	terrors "github.com/cwbudde/ts2luau/internal/errors"
)

// bodyStatements normalizes a statement body that may be a block or a
// single bare statement (as in `if (c) foo();`) into a flat list.
func bodyStatements(s ast.Statement) []ast.Statement {
	if b, ok := s.(*ast.Block); ok {
		return b.Statements
	}
	return []ast.Statement{s}
}

// translateBranch renders one indented, statemented branch of an if/else
// chain.
func (t *Transpiler) translateBranch(s ast.Statement) string {
	t.ctx.IndentIn()
	body := t.translateScopedBlock(bodyStatements(s))
	t.ctx.IndentOut()
	return body
}

// translateIfStatement lowers `if (c) then else alt`, flattening a
// chained `else if` into Luau `elseif`.
func (t *Transpiler) translateIfStatement(n *ast.IfStatement) string {
	out := t.line(fmt.Sprintf("if %s then", t.translateExpression(n.Condition)))
	out += t.translateBranch(n.Then)

	cur := n.Else
	for cur != nil {
		elseIf, ok := cur.(*ast.IfStatement)
		if !ok {
			out += t.line("else")
			out += t.translateBranch(cur)
			cur = nil
			break
		}
		out += t.line(fmt.Sprintf("elseif %s then", t.translateExpression(elseIf.Condition)))
		out += t.translateBranch(elseIf.Then)
		cur = elseIf.Else
	}

	out += t.line("end")
	return out
}

// wrapLoopBody renders body as a single-pass `repeat ... until true`
// block followed by the break-propagation check, so a plain Lua `break`
// inside the repeat block (emitted by a bare `continue;`) advances to the
// next outer-loop iteration instead of leaving the loop, while a real
// `break;` sets the per-loop flag before breaking so the code right after
// the repeat block can propagate it to the actual loop construct.
// wrapLoopBody assumes the caller has already indented one level in from
// the enclosing loop header (matching how the *ast.Block case in
// translateStatement brackets translateScopedBlock around its own
// do/end), so repeat/until/the break check land one level deeper than
// the loop header and one level shallower than the body statements.
func (t *Transpiler) wrapLoopBody(id int, prologue string, body ast.Statement) string {
	out := t.line("repeat")

	t.ctx.IndentIn()
	t.ctx.PushScope()
	inner := t.line(fmt.Sprintf("_continueFlag_%d = false;", id)) + prologue + t.translateStatementList(bodyStatements(body))
	hoistLine, exportLines := t.ctx.PopScope()
	if hoistLine != "" {
		out += t.line(hoistLine)
	}
	out += inner
	for _, e := range exportLines {
		out += t.line(e)
	}
	t.ctx.IndentOut()

	out += t.line("until true")
	out += t.line(fmt.Sprintf("if _break_%d then", id))
	t.ctx.IndentIn()
	out += t.line("break")
	t.ctx.IndentOut()
	out += t.line("end")
	return out
}

func loopFlagPreamble(id int) string {
	return fmt.Sprintf("local _break_%d, _continueFlag_%d = false, false;", id, id)
}

// translateWhileStatement lowers `while (cond) body`.
func (t *Transpiler) translateWhileStatement(n *ast.WhileStatement) string {
	id := t.ctx.EnterLoop()
	out := t.line(loopFlagPreamble(id))
	out += t.line(fmt.Sprintf("while %s do", t.translateExpression(n.Condition)))
	t.ctx.IndentIn()
	out += t.wrapLoopBody(id, "", n.Body)
	t.ctx.IndentOut()
	out += t.line("end")
	t.ctx.ExitBreakable()
	return out
}

// translateDoStatement lowers `do body while (cond)` as `while true do
// ... if not cond then break end end`, keeping the loop-body wrapping
// uniform with every other loop kind.
func (t *Transpiler) translateDoStatement(n *ast.DoStatement) string {
	id := t.ctx.EnterLoop()
	out := t.line(loopFlagPreamble(id))
	out += t.line("while true do")
	t.ctx.IndentIn()
	out += t.wrapLoopBody(id, "", n.Body)
	out += t.line(fmt.Sprintf("if not (%s) then", t.translateExpression(n.Condition)))
	t.ctx.IndentIn()
	out += t.line("break")
	t.ctx.IndentOut()
	out += t.line("end")
	t.ctx.IndentOut()
	out += t.line("end")
	t.ctx.ExitBreakable()
	return out
}

func (t *Transpiler) translateForIncrementor(e ast.Expression) string {
	switch n := e.(type) {
	case *ast.BinaryExpression:
		if isAssignmentOperator(n.Operator) {
			return t.translateAssignmentStatement(n)
		}
	case *ast.PrefixUnaryExpression:
		if n.Operator == "++" || n.Operator == "--" {
			return t.translateIncDecStatement(n.Operand, n.Operator)
		}
	case *ast.PostfixUnaryExpression:
		return t.translateIncDecStatement(n.Operand, n.Operator)
	}
	return t.line(t.translateExpression(e) + ";")
}

// translateForStatement lowers the classic `for (init; cond; inc) body`
// as a scoped `do` block holding the initializer, wrapping a `while`
// loop whose body runs the incrementor after the translated body.
func (t *Transpiler) translateForStatement(n *ast.ForStatement) string {
	out := t.line("do")
	t.ctx.IndentIn()
	t.ctx.PushScope()

	switch init := n.Initializer.(type) {
	case nil:
	case *ast.VariableStatement:
		out += t.translateStatement(init)
	case ast.Expression:
		out += t.translateExpressionStatement(ast.NewExpressionStatement(init.Pos(), init))
	}

	cond := "true"
	if n.Condition != nil {
		cond = t.translateExpression(n.Condition)
	}

	id := t.ctx.EnterLoop()
	out += t.line(loopFlagPreamble(id))
	out += t.line(fmt.Sprintf("while %s do", cond))

	t.ctx.IndentIn()
	out += t.wrapLoopBody(id, "", n.Body)
	if n.Incrementor != nil {
		out += t.translateForIncrementor(n.Incrementor)
	}
	t.ctx.IndentOut()
	out += t.line("end")
	t.ctx.ExitBreakable()

	hoistLine, exportLines := t.ctx.PopScope()
	if hoistLine != "" {
		out += t.line(hoistLine)
	}
	for _, e := range exportLines {
		out += t.line(e)
	}
	t.ctx.IndentOut()
	out += t.line("end")
	return out
}

// forBindingSetup resolves the Luau for-loop iteration variable and any
// prologue statements needed to bind the user's loop variable from it:
// a freshly-declared plain identifier is used directly as the Lua
// for-loop variable, while a destructuring pattern or a pre-existing
// (non-declared) variable goes through a synthetic variable plus a
// prologue statement run on every iteration.
func (t *Transpiler) forBindingSetup(name ast.BindingName, declared bool) (loopVar, prologue string) {
	if id, ok := name.(*ast.Identifier); ok {
		if declared {
			return id.Text, ""
		}
		loopVar = t.ctx.NewID()
		return loopVar, t.line(fmt.Sprintf("%s = %s;", id.Text, loopVar))
	}

	loopVar = t.ctx.NewID()
	if declared {
		return loopVar, t.emitBindingDeclaration(name, loopVar)
	}
	return loopVar, t.assignBindingPattern(name, loopVar)
}

// translateForInStatement lowers `for (const k in expr) body` over the
// enumerable keys of expr. A destructuring key is rejected: there is no
// TS-level meaning for destructuring a bare key.
func (t *Transpiler) translateForInStatement(n *ast.ForInStatement) string {
	if ast.IsBindingPattern(n.Name) {
		t.fail(terrors.KindUnexpectedForInBinding, n, "for-in loop variable cannot be a destructuring pattern")
	}

	loopVar, prologue := t.forBindingSetup(n.Name, n.Declared)
	id := t.ctx.EnterLoop()

	out := t.line(loopFlagPreamble(id))
	out += t.line(fmt.Sprintf("for %s in pairs(%s) do", loopVar, t.translateExpression(n.Expression)))
	t.ctx.IndentIn()
	out += t.wrapLoopBody(id, prologue, n.Body)
	t.ctx.IndentOut()
	out += t.line("end")
	t.ctx.ExitBreakable()
	return out
}

// translateForOfStatement lowers `for (const v of expr) body` over the
// iterated values of expr, expanding a destructuring loop variable in
// the body prologue.
func (t *Transpiler) translateForOfStatement(n *ast.ForOfStatement) string {
	loopVar, prologue := t.forBindingSetup(n.Name, n.Declared)
	id := t.ctx.EnterLoop()

	out := t.line(loopFlagPreamble(id))
	out += t.line(fmt.Sprintf("for _, %s in pairs(%s) do", loopVar, t.translateExpression(n.Expression)))
	t.ctx.IndentIn()
	out += t.wrapLoopBody(id, prologue, n.Body)
	t.ctx.IndentOut()
	out += t.line("end")
	t.ctx.ExitBreakable()
	return out
}

// translateBreakStatement lowers `break;`/`break label;` (spec §7 rejects
// a label). Inside a switch a plain Lua break suffices since the switch's
// own single-pass repeat/until is exactly what it needs to exit; inside a
// loop the per-loop flag propagates the break past the continue-
// simulation wrapper.
func (t *Transpiler) translateBreakStatement(n *ast.BreakStatement) string {
	if n.Label != "" {
		t.fail(terrors.KindLabeledBreakContinue, n, "labeled break is not supported")
	}
	id, kind, ok := t.ctx.CurrentBreakable()
	if !ok {
		t.fail(terrors.KindInternalUnreachable, n, "break outside of a loop or switch")
	}
	if kind == breakableSwitch {
		return t.line("break")
	}
	return t.line(fmt.Sprintf("_break_%d = true;", id)) + t.line("break")
}

// translateContinueStatement lowers `continue;` (spec §7 rejects a
// label). `continue` always targets the nearest enclosing loop even when
// the statement is lexically inside an intervening switch, so a switch
// frame between the continue and its loop sets the loop's continue flag
// and propagates outward; a continue directly inside the loop body needs
// nothing but the plain break that ends its single-pass repeat/until.
func (t *Transpiler) translateContinueStatement(n *ast.ContinueStatement) string {
	if n.Label != "" {
		t.fail(terrors.KindLabeledBreakContinue, n, "labeled continue is not supported")
	}
	loopID, ok := t.ctx.NearestLoop()
	if !ok {
		t.fail(terrors.KindInternalUnreachable, n, "continue outside of a loop")
	}
	if _, kind, _ := t.ctx.CurrentBreakable(); kind == breakableLoop {
		return t.line("break")
	}
	return t.line(fmt.Sprintf("_continueFlag_%d = true;", loopID)) + t.line("break")
}

// translateSwitchStatement lowers a switch as a single-pass repeat/until
// true block (spec §4.11): each case becomes an `if fall or disc ==
// value then` test that sets the fallthrough flag before running its
// statements, and default runs when fallthrough is active or no case
// matched.
func (t *Transpiler) translateSwitchStatement(n *ast.SwitchStatement) string {
	id := t.ctx.EnterSwitch()
	disc := t.ctx.NewID()
	fall := fmt.Sprintf("_fallthrough_%d", id)
	matched := fmt.Sprintf("_matched_%d", id)

	out := t.line(fmt.Sprintf("local %s = %s;", disc, t.translateExpression(n.Expression)))
	out += t.line(fmt.Sprintf("local %s, %s = false, false;", fall, matched))
	out += t.line("repeat")
	t.ctx.IndentIn()

	for _, c := range n.Cases {
		out += t.line(fmt.Sprintf("if %s or %s == %s then", fall, disc, t.translateExpression(c.Expression)))
		t.ctx.IndentIn()
		out += t.line(fmt.Sprintf("%s, %s = true, true;", fall, matched))
		out += t.translateScopedBlock(c.Statements)
		t.ctx.IndentOut()
		out += t.line("end")
	}

	if n.Default != nil {
		out += t.line(fmt.Sprintf("if %s or not %s then", fall, matched))
		t.ctx.IndentIn()
		out += t.translateScopedBlock(n.Default.Statements)
		t.ctx.IndentOut()
		out += t.line("end")
	}

	t.ctx.IndentOut()
	out += t.line("until true")

	if loopID, ok := t.ctx.NearestLoop(); ok {
		out += t.line(fmt.Sprintf("if _continueFlag_%d then break end", loopID))
	}

	t.ctx.ExitBreakable()
	return out
}

// translateTryStatement lowers try/catch/finally through the target
// language's protected-call idiom. A return inside the try block only
// returns from the anonymous pcall closure, not the enclosing function;
// the catch block is emitted inline after the pcall, so a return there
// leaves the enclosing function. finally always runs immediately after, regardless
// of whether the protected call succeeded.
func (t *Transpiler) translateTryStatement(n *ast.TryStatement) string {
	okID := t.ctx.NewID()
	errID := t.ctx.NewID()

	t.ctx.IndentIn()
	tryBody := t.translateScopedBlock(n.TryBlock.Statements)
	t.ctx.IndentOut()

	out := t.line(fmt.Sprintf("local %s, %s = pcall(function()", okID, errID))
	out += tryBody
	out += t.line("end)")

	if n.CatchClause != nil {
		out += t.line(fmt.Sprintf("if not %s then", okID))
		t.ctx.IndentIn()
		paramName := "_"
		if n.CatchClause.Parameter != nil {
			paramName = n.CatchClause.Parameter.Text
		}
		out += t.line(fmt.Sprintf("local %s = TS.decodeError(%s);", paramName, errID))
		out += t.translateScopedBlock(n.CatchClause.Block.Statements)
		t.ctx.IndentOut()
		out += t.line("end")
	}

	if n.FinallyBlock != nil {
		out += t.translateScopedBlock(n.FinallyBlock.Statements)
	}

	return out
}

// translateReturnStatement lowers `return;`/`return expr;`. A function
// whose declared return type is a tuple unpacks an array-literal operand
// into multiple return values directly, or defers to `unpack` for any
// other tuple-typed expression (spec §4.1).
func (t *Transpiler) translateReturnStatement(n *ast.ReturnStatement) string {
	if t.inConstructor {
		t.fail(terrors.KindReturnInConstructor, n, "constructor cannot contain an explicit return statement")
	}

	if n.Expression == nil {
		return t.line("return;")
	}

	if n.ReturnType != nil && n.ReturnType.IsTuple() {
		if arr, ok := n.Expression.(*ast.ArrayLiteralExpression); ok {
			parts := make([]string, len(arr.Elements))
			for i, el := range arr.Elements {
				parts[i] = t.translateExpression(el)
			}
			return t.line(fmt.Sprintf("return %s;", strings.Join(parts, ", ")))
		}
		return t.line(fmt.Sprintf("return unpack(%s);", t.translateExpression(n.Expression)))
	}

	return t.line(fmt.Sprintf("return %s;", t.translateExpression(n.Expression)))
}
