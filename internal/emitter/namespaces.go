package emitter

import (
	"fmt"

	"github.com/cwbudde/ts2luau/internal/ast"
)

// translateModuleDeclaration lowers `namespace N { ... }` (spec §4.9):
// it lowers to `local N = {} do ... end`, with a fresh synthetic
// identifier bound to N pushed on namespaceStack to receive nested
// exports. A namespace that only contains type-level or nested
// ambient-only members emits nothing.
func (t *Transpiler) translateModuleDeclaration(n *ast.ModuleDeclaration) string {
	if n.IsAmbientOnly() {
		return ""
	}

	fullPath := n.Name.Text
	nested := t.ctx.CurrentNamespace() != ""
	if nested {
		fullPath = t.ctx.CurrentNamespace() + "." + n.Name.Text
	}

	var out string
	if nested {
		out = t.line(fmt.Sprintf("%s = {};", fullPath))
	} else {
		out = t.line(fmt.Sprintf("local %s = {};", fullPath))
	}

	alias := t.ctx.NewID()
	out += t.line(fmt.Sprintf("local %s = %s;", alias, fullPath))

	t.ctx.PushNamespace(alias)
	t.ctx.IndentIn()
	body := t.translateScopedBlock(n.Body.Statements)
	t.ctx.IndentOut()
	t.ctx.PopNamespace()

	out += t.line("do")
	out += body
	out += t.line("end")

	if !nested && n.IsExported {
		t.ctx.Export(fmt.Sprintf("%s = %s;", t.exportTarget(n.Name.Text), n.Name.Text))
	}

	return out
}
