package ast

// ModuleBlock is the `{ ... }` body of a namespace declaration.
type ModuleBlock struct {
	base
	Statements []Statement
}

func NewModuleBlock(pos Position, statements []Statement) *ModuleBlock {
	return &ModuleBlock{base: newBase(KindModuleBlock, pos), Statements: statements}
}
func (m *ModuleBlock) statementNode() {}

// ModuleDeclaration is `namespace N { ... }` (possibly nested, via a
// dotted name already split by the external parser into nested nodes).
type ModuleDeclaration struct {
	base
	Name       *Identifier
	Body       *ModuleBlock
	IsExported bool
}

func NewModuleDeclaration(pos Position, name *Identifier, body *ModuleBlock, exported bool) *ModuleDeclaration {
	return &ModuleDeclaration{base: newBase(KindModuleDeclaration, pos), Name: name, Body: body, IsExported: exported}
}
func (m *ModuleDeclaration) statementNode() {}

// IsAmbientOnly reports whether a namespace body contains only
// type-level or empty constructs, so its lowering emits nothing
// (spec §4.9). Nested namespaces that are themselves ambient-only do not
// disqualify the check.
func (m *ModuleDeclaration) IsAmbientOnly() bool {
	for _, stmt := range m.Body.Statements {
		switch v := stmt.(type) {
		case *EmptyStatement:
			continue
		case *ModuleDeclaration:
			if !v.IsAmbientOnly() {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// EnumMember is one `Name` or `Name = value` entry of an enum.
type EnumMember struct {
	base
	Name        string
	Initializer Expression
	// ResolvedValue is the constant value computed by the checker
	// (auto-incrementing from the previous numeric member when
	// Initializer is nil); required for const-enum inlining and for the
	// non-const enum's reverse-mapping decision (spec §4.10).
	ResolvedValue any // int64 or string
}

func NewEnumMember(pos Position, name string, initializer Expression, resolved any) *EnumMember {
	return &EnumMember{base: newBase(KindEnumMember, pos), Name: name, Initializer: initializer, ResolvedValue: resolved}
}
func (e *EnumMember) statementNode() {}

// EnumDeclaration is `[const] enum N { ... }`.
type EnumDeclaration struct {
	base
	Name       *Identifier
	Members    []*EnumMember
	IsConst    bool
	IsExported bool
}

func NewEnumDeclaration(pos Position, name *Identifier, members []*EnumMember, isConst, exported bool) *EnumDeclaration {
	return &EnumDeclaration{base: newBase(KindEnumDeclaration, pos), Name: name, Members: members, IsConst: isConst, IsExported: exported}
}
func (e *EnumDeclaration) statementNode() {}
