package emitter

import (
	"fmt"
	"strings"

	"github.com/cwbudde/ts2luau/internal/ast"
	terrors "github.com/cwbudde/ts2luau/internal/errors"
)

// reservedMetamethods names the metatable fields the prototype machinery
// itself relies on; a class cannot declare a method under one of these
// names without corrupting getter/setter dispatch or the class's own
// static inheritance chain.
var reservedMetamethods = map[string]bool{
	"__index": true, "__newindex": true, "__mode": true,
}

// translateClassDeclaration lowers `class Name extends Base { ... }`
// declared at statement level (spec §4.8).
func (t *Transpiler) translateClassDeclaration(n *ast.ClassDeclaration) string {
	out := t.buildClassBody(n, n.Name.Text)
	if n.IsExported {
		t.ctx.Export(fmt.Sprintf("%s = %s;", t.exportTarget(n.Name.Text), n.Name.Text))
	}
	return out
}

// translateClassExpression lowers a class used in expression position as
// an immediately invoked function that builds the class table and
// returns it.
func (t *Transpiler) translateClassExpression(n *ast.ClassDeclaration) string {
	name := t.ctx.NewID()

	t.ctx.IndentIn()
	body := t.buildClassBody(n, name)
	body += t.line(fmt.Sprintf("return %s;", name))
	t.ctx.IndentOut()

	var sb strings.Builder
	sb.WriteString("(function()\n")
	sb.WriteString(body)
	sb.WriteString(t.ctx.Indent())
	sb.WriteString("end)()")
	return sb.String()
}

// hasInitializedInstanceProps reports whether any non-static field
// carries an initializer, which needs a constructor body to run even
// when the class declares none of its own.
func hasInitializedInstanceProps(n *ast.ClassDeclaration) bool {
	for _, p := range n.Properties() {
		if !p.IsStatic && p.Initializer != nil {
			return true
		}
	}
	return false
}

// buildClassBody renders the full class scaffold under the local name
// className: table allocation, static inheritance chain, prototype
// dispatch (plain identity, or getter/setter-aware functions), method
// and static-field assignment, constructor, and the `.new` factory.
func (t *Transpiler) buildClassBody(n *ast.ClassDeclaration, className string) string {
	out := t.line(fmt.Sprintf("local %s = {};", className))
	if n.BaseClass != nil {
		out += t.line(fmt.Sprintf("setmetatable(%s, { __index = %s });", className, n.BaseClass.Text))
	}

	getters := n.Getters()
	setters := n.Setters()
	if len(getters) > 0 || len(setters) > 0 {
		out += t.line(fmt.Sprintf("%s._getters = {};", className))
		out += t.line(fmt.Sprintf("%s._setters = {};", className))
		for _, g := range getters {
			out += t.line(fmt.Sprintf("%s._getters.%s = %s;", className, g.Name.Text, t.renderFunctionLiteral(g.Parameters, g.Body, true)))
		}
		for _, s := range setters {
			out += t.line(fmt.Sprintf("%s._setters.%s = %s;", className, s.Name.Text, t.renderFunctionLiteral(s.Parameters, s.Body, true)))
		}
		out += t.line(fmt.Sprintf("%s.__index = function(self, key)", className))
		t.ctx.IndentIn()
		out += t.line(fmt.Sprintf("local getter = %s._getters[key];", className))
		out += t.line("if getter then return getter(self) end")
		out += t.line(fmt.Sprintf("return %s[key];", className))
		t.ctx.IndentOut()
		out += t.line("end")
		out += t.line(fmt.Sprintf("%s.__newindex = function(self, key, value)", className))
		t.ctx.IndentIn()
		out += t.line(fmt.Sprintf("local setter = %s._setters[key];", className))
		out += t.line("if setter then setter(self, value) return end")
		out += t.line("rawset(self, key, value);")
		t.ctx.IndentOut()
		out += t.line("end")
	} else {
		out += t.line(fmt.Sprintf("%s.__index = %s;", className, className))
	}

	for _, m := range n.Methods() {
		if m.Kind() == ast.KindGetAccessor || m.Kind() == ast.KindSetAccessor {
			continue
		}
		if m.IsAbstract {
			continue
		}
		if reservedMetamethods[m.Name.Text] {
			t.fail(terrors.KindReservedMetamethod, m, "cannot declare a method named %q", m.Name.Text)
		}
		out += t.line(fmt.Sprintf("%s.%s = %s;", className, m.Name.Text, t.renderFunctionLiteral(m.Parameters, m.Body, !m.IsStatic)))
	}

	for _, p := range n.Properties() {
		if !p.IsStatic {
			continue
		}
		init := "nil"
		if p.Initializer != nil {
			init = t.translateExpression(p.Initializer)
		}
		out += t.line(fmt.Sprintf("%s.%s = %s;", className, p.Name, init))
	}

	ctor := n.Constructor()
	needsCtor := ctor != nil || n.BaseClass != nil || hasInitializedInstanceProps(n)
	if needsCtor {
		paramNames, body := t.buildConstructorBody(n, ctor)
		out += t.line(fmt.Sprintf("function %s.constructor(%s)", className, strings.Join(paramNames, ", ")))
		t.ctx.IndentIn()
		out += body
		t.ctx.IndentOut()
		out += t.line("end")
	}

	if !n.IsAbstract {
		out += t.line(fmt.Sprintf("function %s.new(...)", className))
		t.ctx.IndentIn()
		out += t.line(fmt.Sprintf("local self = setmetatable({}, %s);", className))
		if needsCtor {
			out += t.line(fmt.Sprintf("%s.constructor(self, ...);", className))
		}
		out += t.line("return self;")
		t.ctx.IndentOut()
		out += t.line("end")
	}

	return out
}

// buildConstructorBody lowers a class's constructor into the Luau
// parameter list and body used by `Cls.constructor`, following spec
// §4.8 step 3's ordering: parameter defaults, then a leading super(...)
// call if present, then parameter initializers (captured-into-this and
// binding-pattern expansion), then field initializers in declaration
// order, then the rest of the original body. ctor is nil when the class
// has no explicit constructor of its own; a forwarding constructor is
// synthesized when a base class exists.
func (t *Transpiler) buildConstructorBody(n *ast.ClassDeclaration, ctor *ast.FunctionDeclaration) (paramNames []string, body string) {
	if ctor == nil {
		paramNames = []string{"self", "..."}
		if n.BaseClass != nil {
			body = t.line(fmt.Sprintf("%s.constructor(self, ...);", n.BaseClass.Text))
		}
		for _, p := range n.Properties() {
			if !p.IsStatic && p.Initializer != nil {
				body += t.line(fmt.Sprintf("self.%s = %s;", p.Name, t.translateExpression(p.Initializer)))
			}
		}
		return paramNames, body
	}

	paramNames = append(paramNames, "self")
	var defaultStmts, capturedStmts, bindingStmts []string
	var restLine string

	var restParam *ast.Parameter
	for _, p := range ctor.Parameters {
		if p.DotDotDot {
			restParam = p
			continue
		}
		lp := t.lowerParameter(p)
		paramNames = append(paramNames, lp.luauName)
		if lp.defaultStmt != "" {
			defaultStmts = append(defaultStmts, lp.defaultStmt)
		}
		if lp.capturedStmt != "" {
			capturedStmts = append(capturedStmts, lp.capturedStmt)
		}
		if lp.bindingDecl != "" {
			bindingStmts = append(bindingStmts, lp.bindingDecl)
		}
	}
	if restParam != nil {
		paramNames = append(paramNames, "...")
		restName := "_args"
		if id, ok := restParam.Name.(*ast.Identifier); ok {
			restName = id.Text
		}
		restLine = t.line(fmt.Sprintf("local %s = { ... };", restName))
	}

	bodyStmts := ctor.Body.Statements
	var superCallLine string
	if len(bodyStmts) > 0 {
		if es, ok := bodyStmts[0].(*ast.ExpressionStatement); ok {
			if call, ok := es.Expression.(*ast.CallExpression); ok {
				if _, ok := call.Callee.(*ast.SuperExpression); ok {
					superCallLine = t.translateConstructorSuperCall(n, call)
					bodyStmts = bodyStmts[1:]
				}
			}
		}
	}

	for _, s := range defaultStmts {
		body += s
	}
	body += restLine
	body += superCallLine
	for _, s := range capturedStmts {
		body += s
	}
	for _, s := range bindingStmts {
		body += s
	}
	for _, p := range n.Properties() {
		if !p.IsStatic && p.Initializer != nil {
			body += t.line(fmt.Sprintf("self.%s = %s;", p.Name, t.translateExpression(p.Initializer)))
		}
	}

	prevInConstructor := t.inConstructor
	t.inConstructor = true
	t.ctx.PushScope()
	rest := t.translateStatementList(bodyStmts)
	hoistLine, exportLines := t.ctx.PopScope()
	t.inConstructor = prevInConstructor

	if hoistLine != "" {
		body += t.line(hoistLine)
	}
	body += rest
	for _, e := range exportLines {
		body += t.line(e)
	}

	return paramNames, body
}

// translateConstructorSuperCall lowers a leading `super(...)` statement
// in a constructor to a direct call into the base class's constructor
// function on the same self table, rather than allocating a second
// object the way `Base.new(...)` would.
func (t *Transpiler) translateConstructorSuperCall(n *ast.ClassDeclaration, call *ast.CallExpression) string {
	if n.BaseClass == nil {
		t.fail(terrors.KindInternalUnreachable, call, "super(...) used in a class with no base class")
	}
	args := t.translateArguments(call.Arguments)
	return t.line(fmt.Sprintf("%s.constructor(self%s);", n.BaseClass.Text, prefixComma(args)))
}
