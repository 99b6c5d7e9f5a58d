package emitter

import (
	"fmt"
	"strings"

	"github.com/cwbudde/ts2luau/internal/ast"
)

var compoundOperator = map[string]string{
	"+=": "+", "-=": "-", "*=": "*", "/=": "/", "**=": "^", "%=": "%",
	"|=": "|", "&=": "&", "^=": "^", "<<=": "<<", ">>=": ">>",
}

// assignmentParts describes the flattened statement-sequence form of a
// simple or compound assignment: zero or more setup statements
// (receiver caching) followed by the single write statement itself, and
// the expression that reads back the written value (for value-position
// use).
type assignmentParts struct {
	setup     []string // raw statements, no trailing newline, no indent
	write     string   // raw statement, no trailing newline, no indent
	readValue string   // expression yielding the assigned value
}

func (t *Transpiler) buildAssignmentParts(n *ast.BinaryExpression) assignmentParts {
	rhs := t.translateExpression(n.Right)

	if member, ok := n.Left.(*ast.PropertyAccessExpression); ok {
		recvID := t.ctx.NewID()
		target := t.safeIndex(recvID, member.Name)
		parts := assignmentParts{
			setup:     []string{fmt.Sprintf("local %s = %s;", recvID, t.translateExpression(member.Expression))},
			readValue: target,
		}
		parts.write = t.buildWriteStatement(target, n.Operator, rhs)
		return parts
	}

	if index, ok := n.Left.(*ast.ElementAccessExpression); ok {
		recvID := t.ctx.NewID()
		target := fmt.Sprintf("%s[%s]", recvID, t.translateElementIndex(index))
		parts := assignmentParts{
			setup:     []string{fmt.Sprintf("local %s = %s;", recvID, t.translateExpression(index.Expression))},
			readValue: target,
		}
		parts.write = t.buildWriteStatement(target, n.Operator, rhs)
		return parts
	}

	target := t.translateExpression(n.Left)
	return assignmentParts{
		write:     t.buildWriteStatement(target, n.Operator, rhs),
		readValue: target,
	}
}

func (t *Transpiler) buildWriteStatement(target, operator, rhs string) string {
	if operator == "=" {
		return fmt.Sprintf("%s = %s;", target, rhs)
	}
	if operator == "**=" {
		return fmt.Sprintf("%s = %s ^ %s;", target, target, rhs)
	}
	op := compoundOperator[operator]
	switch op {
	case "|", "&", "^", "<<", ">>":
		return fmt.Sprintf("%s = TS.%s(%s, %s);", target, bitwiseRuntimeHelper[op], target, rhs)
	case "+":
		return fmt.Sprintf("%s = TS.add(%s, %s);", target, target, rhs)
	default:
		return fmt.Sprintf("%s = %s %s %s;", target, target, op, rhs)
	}
}

// translateAssignmentStatement lowers `lhs op= rhs;` used as a statement
// (the for-loop header reaches the same code via
// translateAssignmentInline). A plain `=` single-evaluates the same way
// compound operators do, which is harmless and keeps one code path.
func (t *Transpiler) translateAssignmentStatement(n *ast.BinaryExpression) string {
	parts := t.buildAssignmentParts(n)
	var out string
	for _, s := range parts.setup {
		out += t.line(s)
	}
	out += t.line(parts.write)
	return out
}

// translateAssignmentInline renders the same statement sequence as
// translateAssignmentStatement but as a single `;`-joined string with no
// indentation, for splicing into a for-loop header's generated body.
func (t *Transpiler) translateAssignmentInline(n *ast.BinaryExpression) string {
	parts := t.buildAssignmentParts(n)
	stmts := append(append([]string{}, parts.setup...), parts.write)
	return strings.Join(stmts, " ")
}

// translateAssignmentAsValue wraps a compound/simple assignment in an
// IIFE so it can be used where the input language treats assignment as
// an expression (spec §4.3).
func (t *Transpiler) translateAssignmentAsValue(n *ast.BinaryExpression) string {
	parts := t.buildAssignmentParts(n)
	var sb strings.Builder
	sb.WriteString("(function() ")
	for _, s := range parts.setup {
		sb.WriteString(s)
		sb.WriteString(" ")
	}
	sb.WriteString(parts.write)
	sb.WriteString(" return ")
	sb.WriteString(parts.readValue)
	sb.WriteString("; end)()")
	return sb.String()
}
