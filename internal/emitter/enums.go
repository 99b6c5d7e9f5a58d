package emitter

import (
	"fmt"

	"github.com/cwbudde/ts2luau/internal/ast"
)

// translateEnumDeclaration lowers `enum N { ... }` (spec §4.10). A const
// enum emits nothing — every read of one of its members is inlined to the
// literal value at the property-access site (constEnumValueLiteral). A
// regular enum emits an idempotent table (`N = N or {}`) populated member
// by member inside a `do ... end` block; a
// numeric member also gets a reverse mapping from value back to name, a
// string member does not.
func (t *Transpiler) translateEnumDeclaration(n *ast.EnumDeclaration) string {
	if n.IsConst {
		return ""
	}

	name := n.Name.Text
	nested := t.ctx.CurrentNamespace() != ""
	target := name
	if nested {
		target = t.ctx.CurrentNamespace() + "." + name
	}

	var out string
	if nested {
		out = t.line(fmt.Sprintf("%s = %s or {};", target, target))
	} else {
		out = t.line(fmt.Sprintf("local %s = %s or {};", target, target))
	}

	out += t.line("do")
	t.ctx.IndentIn()
	for _, m := range n.Members {
		var valueExpr string
		if m.Initializer != nil {
			valueExpr = t.translateExpression(m.Initializer)
		} else {
			valueExpr = enumLiteral(m.ResolvedValue)
		}
		out += t.line(fmt.Sprintf("%s.%s = %s;", target, m.Name, valueExpr))
		if _, isString := m.ResolvedValue.(string); !isString {
			out += t.line(fmt.Sprintf("%s[%s] = %q;", target, valueExpr, m.Name))
		}
	}
	t.ctx.IndentOut()
	out += t.line("end")

	if !nested && n.IsExported {
		t.ctx.Export(fmt.Sprintf("%s = %s;", t.exportTarget(target), target))
	}

	return out
}

func enumLiteral(v any) string {
	switch val := v.(type) {
	case int64:
		return fmt.Sprintf("%d", val)
	case string:
		return fmt.Sprintf("%q", val)
	default:
		return "0"
	}
}
