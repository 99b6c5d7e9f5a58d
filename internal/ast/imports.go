package ast

// ImportSpecifier is one `name` or `name as alias` entry of a named
// import/export list.
type ImportSpecifier struct {
	base
	Name  string
	Alias string // equals Name when there is no `as` clause
}

func NewImportSpecifier(pos Position, name, alias string) *ImportSpecifier {
	return &ImportSpecifier{base: newBase(KindImportSpecifier, pos), Name: name, Alias: alias}
}
func (i *ImportSpecifier) statementNode() {}

// ImportClause is the binding part of an import declaration: any
// combination of a default binding, a namespace binding, and a named
// import list.
type ImportClause struct {
	base
	Default        *Identifier // `import Default from "..."`
	NamespaceAlias *Identifier // `import * as NS from "..."`
	Named          []*ImportSpecifier
}

func NewImportClause(pos Position, def, ns *Identifier, named []*ImportSpecifier) *ImportClause {
	return &ImportClause{base: newBase(KindImportClause, pos), Default: def, NamespaceAlias: ns, Named: named}
}
func (i *ImportClause) statementNode() {}

// ImportDeclaration is `import Clause from "specifier";` or a bare
// `import "specifier";`.
type ImportDeclaration struct {
	base
	Clause    *ImportClause // nil for a side-effect-only import
	Specifier string
}

func NewImportDeclaration(pos Position, clause *ImportClause, specifier string) *ImportDeclaration {
	return &ImportDeclaration{base: newBase(KindImportDeclaration, pos), Clause: clause, Specifier: specifier}
}
func (i *ImportDeclaration) statementNode() {}

// ExportSpecifier is one `name` or `name as alias` entry of
// `export { ... }`.
type ExportSpecifier struct {
	base
	Name  string
	Alias string
}

func NewExportSpecifier(pos Position, name, alias string) *ExportSpecifier {
	return &ExportSpecifier{base: newBase(KindExportSpecifier, pos), Name: name, Alias: alias}
}
func (e *ExportSpecifier) statementNode() {}

// ExportDeclaration covers `export { a, b as c }`, `export { a } from
// "mod"`, and `export * from "mod"`.
type ExportDeclaration struct {
	base
	Named     []*ExportSpecifier // nil for a star export
	IsStar    bool
	Specifier string // module specifier, empty when re-exporting nothing
}

func NewExportDeclaration(pos Position, named []*ExportSpecifier, isStar bool, specifier string) *ExportDeclaration {
	return &ExportDeclaration{base: newBase(KindExportDeclaration, pos), Named: named, IsStar: isStar, Specifier: specifier}
}
func (e *ExportDeclaration) statementNode() {}

// ExportAssignment is `export = expr;`.
type ExportAssignment struct {
	base
	Expression Expression
}

func NewExportAssignment(pos Position, expr Expression) *ExportAssignment {
	return &ExportAssignment{base: newBase(KindExportAssignment, pos), Expression: expr}
}
func (e *ExportAssignment) statementNode() {}
