package emitter

import (
	"fmt"

	"github.com/cwbudde/ts2luau/internal/ast"
)

// translateImportDeclaration lowers `import Clause from "specifier"`
// (spec §4.9). A side-effect-only import (no clause) just requires the
// module for its side effects; otherwise the module's export table is
// bound to a synthetic local and the clause's bindings are read off it:
// a default binding reads its `_default` field, a namespace binding
// takes the whole table, and named bindings read one field each.
func (t *Transpiler) translateImportDeclaration(n *ast.ImportDeclaration) string {
	path := t.host.GetRelativeImportPath(t.file, "", n.Specifier)

	if n.Clause == nil {
		return t.line(fmt.Sprintf("require(%s);", path))
	}

	modID := t.ctx.NewID()
	out := t.line(fmt.Sprintf("local %s = require(%s);", modID, path))

	if n.Clause.Default != nil {
		out += t.line(fmt.Sprintf("local %s = %s;", n.Clause.Default.Text, t.safeIndex(modID, "_default")))
	}
	if n.Clause.NamespaceAlias != nil {
		out += t.line(fmt.Sprintf("local %s = %s;", n.Clause.NamespaceAlias.Text, modID))
	}
	for _, spec := range n.Clause.Named {
		out += t.line(fmt.Sprintf("local %s = %s;", spec.Alias, t.safeIndex(modID, spec.Name)))
	}

	return out
}

// translateExportDeclaration lowers `export { a, b as c }`, `export { a
// } from "mod"`, and `export * from "mod"` (spec §4.9). A star export
// merges every field of the re-exported module's table into this file's
// own export table via the runtime `exportNamespace` helper; a named
// re-export with a specifier reads each name off a freshly required
// module; a named export with no specifier just records an
// export-binding line for an already-declared local.
func (t *Transpiler) translateExportDeclaration(n *ast.ExportDeclaration) string {
	if n.IsStar {
		path := t.host.GetRelativeImportPath(t.file, "", n.Specifier)
		t.ctx.MarkModule()
		return t.line(fmt.Sprintf("TS.exportNamespace(_exports, require(%s));", path))
	}

	if n.Specifier != "" {
		modID := t.ctx.NewID()
		out := t.line(fmt.Sprintf("local %s = require(%s);", modID, t.host.GetRelativeImportPath(t.file, "", n.Specifier)))
		for _, spec := range n.Named {
			t.ctx.Export(fmt.Sprintf("%s = %s;", t.exportTarget(spec.Alias), t.safeIndex(modID, spec.Name)))
		}
		return out
	}

	for _, spec := range n.Named {
		t.ctx.Export(fmt.Sprintf("%s = %s;", t.exportTarget(spec.Alias), spec.Name))
	}
	return ""
}

// translateExportAssignment lowers `export = expr;`, replacing the
// file's entire export table with expr's value (spec §4.9).
func (t *Transpiler) translateExportAssignment(n *ast.ExportAssignment) string {
	t.ctx.MarkModule()
	return t.line(fmt.Sprintf("_exports = %s;", t.translateExpression(n.Expression)))
}
