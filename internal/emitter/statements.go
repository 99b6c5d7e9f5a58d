package emitter

import (
	"fmt"

	"github.com/cwbudde/ts2luau/internal/ast"
	terrors "github.com/cwbudde/ts2luau/internal/errors"
)

func (t *Transpiler) line(s string) string {
	return t.ctx.Indent() + s + "\n"
}

// translateStatementList translates a flat sequence of statements,
// concatenating their output in order. It does not push/pop a scope —
// callers that own a statemented block do that around the call.
func (t *Transpiler) translateStatementList(stmts []ast.Statement) string {
	var out string
	for _, s := range stmts {
		out += t.translateStatement(s)
	}
	return out
}

// translateScopedBlock translates a { ... } as its own statemented scope,
// returning only the inner body text (without surrounding do/end —
// callers that need Luau block delimiters add them).
func (t *Transpiler) translateScopedBlock(stmts []ast.Statement) string {
	t.ctx.PushScope()
	body := t.translateStatementList(stmts)
	hoistLine, exportLines := t.ctx.PopScope()

	out := ""
	if hoistLine != "" {
		out += t.line(hoistLine)
	}
	out += body
	for _, e := range exportLines {
		out += t.line(e)
	}
	return out
}

// translateStatement dispatches on node kind to the matching
// specialized translator (spec §2). Implementers should treat this
// switch as the single exhaustiveness point for new statement kinds.
func (t *Transpiler) translateStatement(s ast.Statement) string {
	switch n := s.(type) {
	case *ast.Block:
		t.ctx.IndentIn()
		body := t.translateScopedBlock(n.Statements)
		t.ctx.IndentOut()
		return t.line("do") + body + t.line("end")
	case *ast.EmptyStatement:
		return ""
	case *ast.VariableStatement:
		return t.translateVariableStatement(n)
	case *ast.ExpressionStatement:
		return t.translateExpressionStatement(n)
	case *ast.IfStatement:
		return t.translateIfStatement(n)
	case *ast.WhileStatement:
		return t.translateWhileStatement(n)
	case *ast.DoStatement:
		return t.translateDoStatement(n)
	case *ast.ForStatement:
		return t.translateForStatement(n)
	case *ast.ForInStatement:
		return t.translateForInStatement(n)
	case *ast.ForOfStatement:
		return t.translateForOfStatement(n)
	case *ast.BreakStatement:
		return t.translateBreakStatement(n)
	case *ast.ContinueStatement:
		return t.translateContinueStatement(n)
	case *ast.LabeledStatement:
		t.fail(terrors.KindLabeledStatement, n, "labeled statements are not supported")
		return ""
	case *ast.ReturnStatement:
		return t.translateReturnStatement(n)
	case *ast.ThrowStatement:
		return t.line(fmt.Sprintf("TS.error(%s);", t.translateExpression(n.Expression)))
	case *ast.TryStatement:
		return t.translateTryStatement(n)
	case *ast.SwitchStatement:
		return t.translateSwitchStatement(n)
	case *ast.FunctionDeclaration:
		return t.translateFunctionDeclaration(n)
	case *ast.ClassDeclaration:
		return t.translateClassDeclaration(n)
	case *ast.ModuleDeclaration:
		return t.translateModuleDeclaration(n)
	case *ast.EnumDeclaration:
		return t.translateEnumDeclaration(n)
	case *ast.ImportDeclaration:
		return t.translateImportDeclaration(n)
	case *ast.ExportDeclaration:
		return t.translateExportDeclaration(n)
	case *ast.ExportAssignment:
		return t.translateExportAssignment(n)
	default:
		t.fail(terrors.KindInternalUnreachable, s, "unrecognized statement kind %T", s)
		return ""
	}
}

// translateExpressionStatement enforces that an expression used as a
// statement is one of the forms the target language can express without
// assigning the result anywhere (spec §7 semantic rejection).
func (t *Transpiler) translateExpressionStatement(n *ast.ExpressionStatement) string {
	switch e := n.Expression.(type) {
	case *ast.CallExpression:
		if isMathMacroCall(e) {
			t.fail(terrors.KindMathMacroInExpressionStatement, n, "math-like operator call has no effect as a statement")
		}
		return t.line(t.translateExpression(e) + ";")
	case *ast.NewExpression, *ast.AwaitExpression:
		return t.line(t.translateExpression(e) + ";")
	case *ast.PrefixUnaryExpression:
		if e.Operator == "++" || e.Operator == "--" {
			return t.translateIncDecStatement(e.Operand, e.Operator)
		}
	case *ast.PostfixUnaryExpression:
		return t.translateIncDecStatement(e.Operand, e.Operator)
	case *ast.BinaryExpression:
		if isAssignmentOperator(e.Operator) {
			return t.translateAssignmentStatement(e)
		}
	case *ast.ParenthesizedExpression:
		return t.translateExpressionStatement(&ast.ExpressionStatement{Expression: e.Expression})
	}

	t.fail(terrors.KindInvalidExpressionStatement, n, "expression statement must be a call, new, await, assignment, or increment/decrement")
	return ""
}

func isAssignmentOperator(op string) bool {
	switch op {
	case "=", "+=", "-=", "*=", "/=", "**=", "%=", "|=", "&=", "^=", "<<=", ">>=":
		return true
	default:
		return false
	}
}
