package emitter

import (
	"fmt"
	"strings"

	"github.com/cwbudde/ts2luau/internal/ast"
	terrors "github.com/cwbudde/ts2luau/internal/errors"
)

// leafBinding is one resolved `name = rootExpr[index]` pair discovered
// while walking a binding pattern.
type leafBinding struct {
	name      string
	indexExpr string
}

// bindingLowering is the three-fragment accumulator of spec §4.6: a
// binding pattern is walked by a recursive helper that gathers
// pre-statements (temporaries for nested patterns), a flat declaration
// of every leaf identifier paired with its index expression against the
// root, and post-statements (default-value application).
type bindingLowering struct {
	pre    []string
	leaves []leafBinding
	post   []string
}

// lowerBindingPattern walks name, rooted at the expression rootExpr,
// accumulating into l. An array pattern uses 1-based numeric keys and an
// object pattern uses string keys at this level (spec §4.6).
func (t *Transpiler) lowerBindingPattern(l *bindingLowering, name ast.BindingName, rootExpr string) {
	switch p := name.(type) {
	case *ast.Identifier:
		l.leaves = append(l.leaves, leafBinding{name: p.Text, indexExpr: rootExpr})

	case *ast.ArrayBindingPattern:
		for i, el := range p.Elements {
			if el == nil {
				continue // elided slot
			}
			if el.DotDotDot {
				t.fail(terrors.KindBindingSpread, el, "spread is not supported inside a binding pattern")
				continue
			}
			index := fmt.Sprintf("%s[%d]", rootExpr, i+1)
			t.lowerBindingElement(l, el, index)
		}

	case *ast.ObjectBindingPattern:
		for _, el := range p.Elements {
			if el.DotDotDot {
				t.fail(terrors.KindBindingSpread, el, "spread is not supported inside a binding pattern")
				continue
			}
			key := el.PropertyName
			var keyName string
			if key != nil {
				keyName = key.Text
			} else if id, ok := el.Name.(*ast.Identifier); ok {
				keyName = id.Text
			}
			index := t.safeIndex(rootExpr, keyName)
			t.lowerBindingElement(l, el, index)
		}

	default:
		t.fail(terrors.KindInternalUnreachable, name, "unrecognized binding name kind %T", name)
	}
}

func (t *Transpiler) lowerBindingElement(l *bindingLowering, el *ast.BindingElement, index string) {
	if ast.IsBindingPattern(el.Name) {
		// Nested pattern: introduce a temporary so the nested walk
		// doesn't repeat the (possibly expensive) index expression.
		tmp := t.ctx.NewID()
		l.pre = append(l.pre, fmt.Sprintf("local %s = %s;", tmp, index))
		t.lowerBindingPattern(l, el.Name, tmp)
		if el.Initializer != nil {
			l.post = append(l.post, fmt.Sprintf("if %s == nil then %s = %s end", tmp, tmp, t.translateExpression(el.Initializer)))
		}
		return
	}

	ident := el.Name.(*ast.Identifier)
	l.leaves = append(l.leaves, leafBinding{name: ident.Text, indexExpr: index})
	if el.Initializer != nil {
		l.post = append(l.post, fmt.Sprintf("if %s == nil then %s = %s end", ident.Text, ident.Text, t.translateExpression(el.Initializer)))
	}
}

// emitBindingDeclaration renders a fully-walked binding pattern as
// `local`-declaration statement lines (pre-statements, the flat
// declaration, post-statements), already indented.
func (t *Transpiler) emitBindingDeclaration(name ast.BindingName, rootExpr string) string {
	var l bindingLowering
	t.lowerBindingPattern(&l, name, rootExpr)

	var out string
	for _, s := range l.pre {
		out += t.line(s)
	}
	if len(l.leaves) > 0 {
		names := make([]string, len(l.leaves))
		exprs := make([]string, len(l.leaves))
		for i, leaf := range l.leaves {
			names[i] = leaf.name
			exprs[i] = leaf.indexExpr
		}
		out += t.line(fmt.Sprintf("local %s = %s;", strings.Join(names, ", "), strings.Join(exprs, ", ")))
	}
	for _, s := range l.post {
		out += t.line(s)
	}
	return out
}

// assignBindingPattern renders a binding pattern walk as plain
// assignment statements against already-declared names, used by for-of
// loops whose loop variable is a destructuring pattern (spec §4.11).
func (t *Transpiler) assignBindingPattern(name ast.BindingName, rootExpr string) string {
	var l bindingLowering
	t.lowerBindingPattern(&l, name, rootExpr)

	var out string
	for _, s := range l.pre {
		out += t.line(s)
	}
	for _, leaf := range l.leaves {
		out += t.line(fmt.Sprintf("%s = %s;", leaf.name, leaf.indexExpr))
	}
	for _, s := range l.post {
		out += t.line(s)
	}
	return out
}
