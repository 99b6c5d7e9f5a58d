package emitter

import (
	"fmt"
	"strings"

	"github.com/cwbudde/ts2luau/internal/ast"
	terrors "github.com/cwbudde/ts2luau/internal/errors"
)

// translateVariableStatement lowers `let`/`const a = 1, b = 2;` (spec
// §4.1, §4.7). `var` is always rejected.
func (t *Transpiler) translateVariableStatement(n *ast.VariableStatement) string {
	if n.Kind == ast.VariableKindVar {
		t.fail(terrors.KindVarDeclaration, n, "var declarations are not supported")
	}

	var out string
	for _, decl := range n.Declarations {
		out += t.translateVariableDeclaration(decl, n.IsExported)
	}
	return out
}

func (t *Transpiler) translateVariableDeclaration(decl *ast.VariableDeclaration, exported bool) string {
	if arr, ok := decl.Name.(*ast.ArrayBindingPattern); ok {
		if call, ok := decl.Initializer.(*ast.CallExpression); ok && isFlatIdentifierArrayPattern(arr) && exprType(call).IsTuple() {
			names := make([]string, len(arr.Elements))
			for i, el := range arr.Elements {
				names[i] = el.Name.(*ast.Identifier).Text
			}
			out := t.line(fmt.Sprintf("local %s = %s;", strings.Join(names, ", "), t.translateExpression(call)))
			t.exportDeclaredNames(decl.Name, exported)
			return out
		}
	}

	if ast.IsBindingPattern(decl.Name) {
		rootExpr := t.translateExpression(decl.Initializer)
		out := t.emitBindingDeclaration(decl.Name, rootExpr)
		t.exportDeclaredNames(decl.Name, exported)
		return out
	}

	ident := decl.Name.(*ast.Identifier)
	var out string
	switch {
	case decl.Initializer == nil:
		out = t.line(fmt.Sprintf("local %s;", ident.Text))
	case exprType(decl.Initializer).IsTuple():
		out = t.line(fmt.Sprintf("local %s = { %s };", ident.Text, t.translateExpression(decl.Initializer)))
	default:
		out = t.line(fmt.Sprintf("local %s = %s;", ident.Text, t.translateExpression(decl.Initializer)))
	}
	t.exportDeclaredNames(decl.Name, exported)
	return out
}

// isFlatIdentifierArrayPattern reports whether p destructures into plain
// identifiers only, with no elision, spread, nested pattern, or default —
// the shape that can bind directly off a tuple-returning call's multiple
// return values instead of indexing a materialized array.
func isFlatIdentifierArrayPattern(p *ast.ArrayBindingPattern) bool {
	for _, el := range p.Elements {
		if el == nil || el.DotDotDot || el.Initializer != nil {
			return false
		}
		if _, ok := el.Name.(*ast.Identifier); !ok {
			return false
		}
	}
	return len(p.Elements) > 0
}

// exportDeclaredNames records every leaf identifier bound by name as an
// export-binding statement when exported, recursing through nested
// binding patterns.
func (t *Transpiler) exportDeclaredNames(name ast.BindingName, exported bool) {
	if !exported {
		return
	}
	switch n := name.(type) {
	case *ast.Identifier:
		t.ctx.Export(fmt.Sprintf("%s = %s;", t.exportTarget(n.Text), n.Text))
	case *ast.ArrayBindingPattern:
		for _, el := range n.Elements {
			if el != nil {
				t.exportDeclaredNames(el.Name, true)
			}
		}
	case *ast.ObjectBindingPattern:
		for _, el := range n.Elements {
			t.exportDeclaredNames(el.Name, true)
		}
	}
}
