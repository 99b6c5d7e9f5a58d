// Package errors defines the closed taxonomy of translation errors the
// transpiler raises, plus formatting for CLI diagnostics output.
package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/cwbudde/ts2luau/internal/ast"
)

// Kind discriminates the translation-error taxonomy of spec.md §7.
type Kind int

const (
	KindUnknown Kind = iota

	// Unsupported construct
	KindNullLiteral
	KindVarDeclaration
	KindLabeledStatement
	KindLabeledBreakContinue
	KindNewWithoutParens
	KindBindingSpread
	KindLooseEquality

	// Semantic rejection
	KindIndexFunctionValue
	KindAccessPrototype
	KindReservedMetamethod
	KindReturnInConstructor
	KindInvalidExpressionStatement
	KindMathMacroInExpressionStatement
	KindReservedIdentifier

	// Cross-context
	KindServerAccessingClientAPI
	KindClientAccessingServerAPI

	// Module shape
	KindExportInScript
	KindModuleWithNoExports

	// Structural
	KindMissingParameterChild
	KindMissingModuleFile
	KindBadOperator
	KindEmptyForVariableName
	KindUnexpectedForInBinding

	// Internal
	KindInternalUnreachable
)

// String names the discriminant for diagnostics and test assertions.
func (k Kind) String() string {
	switch k {
	case KindNullLiteral:
		return "null-literal"
	case KindVarDeclaration:
		return "var-declaration"
	case KindLabeledStatement:
		return "labeled-statement"
	case KindLabeledBreakContinue:
		return "labeled-break-continue"
	case KindNewWithoutParens:
		return "new-without-parens"
	case KindBindingSpread:
		return "binding-spread"
	case KindLooseEquality:
		return "loose-equality"
	case KindIndexFunctionValue:
		return "index-function-value"
	case KindAccessPrototype:
		return "access-prototype"
	case KindReservedMetamethod:
		return "reserved-metamethod"
	case KindReturnInConstructor:
		return "return-in-constructor"
	case KindInvalidExpressionStatement:
		return "invalid-expression-statement"
	case KindMathMacroInExpressionStatement:
		return "math-macro-in-expression-statement"
	case KindReservedIdentifier:
		return "reserved-identifier"
	case KindServerAccessingClientAPI:
		return "server-accessing-client-api"
	case KindClientAccessingServerAPI:
		return "client-accessing-server-api"
	case KindExportInScript:
		return "export-in-script"
	case KindModuleWithNoExports:
		return "module-with-no-exports"
	case KindMissingParameterChild:
		return "missing-parameter-child"
	case KindMissingModuleFile:
		return "missing-module-file"
	case KindBadOperator:
		return "bad-operator"
	case KindEmptyForVariableName:
		return "empty-for-variable-name"
	case KindUnexpectedForInBinding:
		return "unexpected-for-in-binding"
	case KindInternalUnreachable:
		return "internal-unreachable"
	default:
		return "unknown"
	}
}

// TranslateError is a single fatal translation error, tied to the
// offending source node. Every error is fatal for the current file
// (spec §7): none are caught and recovered internally.
type TranslateError struct {
	Kind    Kind
	Message string
	Node    ast.Node
	File    string
	Source  string
}

// New builds a TranslateError positioned at node.
func New(kind Kind, node ast.Node, file, source, format string, args ...any) *TranslateError {
	return &TranslateError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Node:    node,
		File:    file,
		Source:  source,
	}
}

func (e *TranslateError) Error() string { return e.Format(false) }

// Format renders the error with source context and a caret indicator,
// matching the teacher's CompilerError.Format shape, with colorization
// delegated to fatih/color instead of hand-rolled ANSI escapes.
func (e *TranslateError) Format(colorize bool) string {
	var sb strings.Builder

	pos := e.Node.Pos()
	if e.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d [%s]\n", e.File, pos.Line, pos.Column, e.Kind)
	} else {
		fmt.Fprintf(&sb, "Error at line %d:%d [%s]\n", pos.Line, pos.Column, e.Kind)
	}

	if line := e.sourceLine(pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+pos.Column-1))
		caret := "^"
		if colorize {
			caret = color.New(color.FgRed, color.Bold).Sprint("^")
		}
		sb.WriteString(caret)
		sb.WriteString("\n")
	}

	msg := e.Message
	if colorize {
		msg = color.New(color.Bold).Sprint(msg)
	}
	sb.WriteString(msg)

	return sb.String()
}

func (e *TranslateError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatErrors renders a batch of errors, one per line-group, separated
// by blank lines.
func FormatErrors(errs []*TranslateError, colorize bool) string {
	var sb strings.Builder
	for i, e := range errs {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(e.Format(colorize))
	}
	return sb.String()
}
