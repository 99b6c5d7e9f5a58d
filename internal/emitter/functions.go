package emitter

import (
	"fmt"
	"strings"

	"github.com/cwbudde/ts2luau/internal/ast"
)

// loweredParam is the per-parameter output of spec §4.6's parameter
// lowering, split into the pieces a plain function and a constructor
// assemble in different orders.
type loweredParam struct {
	luauName     string
	defaultStmt  string // "" if no default
	capturedStmt string // "" unless CapturedIntoThis
	bindingDecl  string // "" unless Name is a destructuring pattern
}

func (t *Transpiler) lowerParameter(p *ast.Parameter) loweredParam {
	var lp loweredParam

	switch name := p.Name.(type) {
	case *ast.Identifier:
		lp.luauName = name.Text
	default:
		lp.luauName = t.ctx.NewID()
		lp.bindingDecl = t.emitBindingDeclaration(p.Name, lp.luauName)
	}

	if p.Initializer != nil {
		lp.defaultStmt = t.line(fmt.Sprintf("if %s == nil then %s = %s end", lp.luauName, lp.luauName, t.translateExpression(p.Initializer)))
	}
	if p.CapturedIntoThis {
		lp.capturedStmt = t.line(fmt.Sprintf("self.%s = %s;", lp.luauName, lp.luauName))
	}
	return lp
}

// lowerParameterList lowers an ordinary (non-constructor) parameter
// list: the Luau parameter names (with leadingSelf prepended for
// methods, and a trailing "..." for a rest parameter) plus the body
// prologue, in per-parameter order (defaults, then captured-into-this,
// then binding-pattern expansion).
func (t *Transpiler) lowerParameterList(params []*ast.Parameter, leadingSelf bool) (names []string, prologue string) {
	if leadingSelf {
		names = append(names, "self")
	}

	var restParam *ast.Parameter
	for _, p := range params {
		if p.DotDotDot {
			restParam = p
			continue
		}
		lp := t.lowerParameter(p)
		names = append(names, lp.luauName)
		prologue += lp.defaultStmt
		prologue += lp.capturedStmt
		prologue += lp.bindingDecl
	}

	if restParam != nil {
		names = append(names, "...")
		restName := "_args"
		if id, ok := restParam.Name.(*ast.Identifier); ok {
			restName = id.Text
		}
		prologue += t.line(fmt.Sprintf("local %s = { ... };", restName))
	}

	return names, prologue
}

// translateFunctionDeclaration lowers `function name(...) {}` declared
// at statement level.
func (t *Transpiler) translateFunctionDeclaration(n *ast.FunctionDeclaration) string {
	names, prologue := t.lowerParameterList(n.Parameters, false)

	t.ctx.IndentIn()
	t.ctx.PushScope()
	body := prologue + t.translateScopedBlock(n.Body.Statements)
	hoistLine, exportLines := t.ctx.PopScope()
	t.ctx.IndentOut()

	out := t.line(fmt.Sprintf("local function %s(%s)", n.Name.Text, strings.Join(names, ", ")))
	t.ctx.IndentIn()
	if hoistLine != "" {
		out += t.line(hoistLine)
	}
	t.ctx.IndentOut()
	out += body
	out += t.line("end")

	if n.IsExported {
		t.ctx.Export(fmt.Sprintf("%s = %s;", t.exportTarget(n.Name.Text), n.Name.Text))
	}
	for _, e := range exportLines {
		out += t.line(e)
	}
	return out
}

// exportTarget builds the assignment target for an exported binding
// named name: `_exports.name` at file level, or `NS.name` when exporting
// from inside a namespace body, writing directly into the namespace
// table instead of a nested exports object.
func (t *Transpiler) exportTarget(name string) string {
	if ns := t.ctx.CurrentNamespace(); ns != "" {
		return ns + "." + name
	}
	return "_exports." + name
}

// renderFunctionLiteral renders a `function(...) ... end` expression
// fragment (no trailing newline, for embedding inline) for params/body,
// optionally prefixed with a `self` parameter for an instance method.
func (t *Transpiler) renderFunctionLiteral(params []*ast.Parameter, body *ast.Block, leadingSelf bool) string {
	names, prologue := t.lowerParameterList(params, leadingSelf)
	t.ctx.IndentIn()
	t.ctx.PushScope()
	rendered := prologue + t.translateScopedBlock(body.Statements)
	hoistLine, _ := t.ctx.PopScope()
	t.ctx.IndentOut()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("function(%s)\n", strings.Join(names, ", ")))
	t.ctx.IndentIn()
	if hoistLine != "" {
		sb.WriteString(t.line(hoistLine))
	}
	t.ctx.IndentOut()
	sb.WriteString(rendered)
	sb.WriteString(t.ctx.Indent())
	sb.WriteString("end")
	return sb.String()
}

// translateFunctionExpression lowers an anonymous `function(...) {}`
// used in expression position.
func (t *Transpiler) translateFunctionExpression(n *ast.FunctionDeclaration) string {
	return t.renderFunctionLiteral(n.Parameters, n.Body, false)
}

// translateArrowFunction lowers `(params) => body`. A concise (single-
// expression) body is wrapped to return its value.
func (t *Transpiler) translateArrowFunction(n *ast.ArrowFunction) string {
	names, prologue := t.lowerParameterList(n.Parameters, false)

	var bodyStatements []ast.Statement
	switch b := n.Body.(type) {
	case *ast.Block:
		bodyStatements = b.Statements
	default:
		bodyStatements = []ast.Statement{ast.NewReturnStatement(n.Pos(), b.(ast.Expression), nil)}
	}

	t.ctx.IndentIn()
	t.ctx.PushScope()
	body := prologue + t.translateScopedBlock(bodyStatements)
	hoistLine, _ := t.ctx.PopScope()
	t.ctx.IndentOut()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("function(%s)\n", strings.Join(names, ", ")))
	t.ctx.IndentIn()
	if hoistLine != "" {
		sb.WriteString(t.line(hoistLine))
	}
	t.ctx.IndentOut()
	sb.WriteString(body)
	sb.WriteString(t.ctx.Indent())
	sb.WriteString("end")
	return sb.String()
}
