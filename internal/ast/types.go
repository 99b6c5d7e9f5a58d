package ast

// Symbol describes the declaration site(s) of a named entity, as exposed
// by the external type checker.
type Symbol struct {
	Name             string
	Declarations     []Node
	ValueDeclaration Node
}

// GetName returns the symbol's escaped name.
func (s *Symbol) GetName() string {
	if s == nil {
		return ""
	}
	return s.Name
}

// GetDeclarations returns every declaration site of the symbol.
func (s *Symbol) GetDeclarations() []Node {
	if s == nil {
		return nil
	}
	return s.Declarations
}

// GetValueDeclaration returns the declaration that introduces the symbol's
// runtime value, as opposed to a purely type-level declaration.
func (s *Symbol) GetValueDeclaration() Node {
	if s == nil {
		return nil
	}
	return s.ValueDeclaration
}

// Type is the static type of an expression, as exposed by the external
// type checker. Every predicate defaults to false on the zero value so
// untyped nodes degrade gracefully rather than panicking.
type Type struct {
	Symbol      *Symbol
	BaseTypes   []*Type
	flags       TypeFlags
	tupleArity  int
	elementType *Type
	typeName    string
}

// TypeFlags is a bitset of the type predicates the transpiler consults.
type TypeFlags uint32

const (
	TypeFlagString TypeFlags = 1 << iota
	TypeFlagNumber
	TypeFlagBoolean
	TypeFlagArray
	TypeFlagTuple
	TypeFlagNullable
	TypeFlagStringLiteral
	TypeFlagNumberLiteral
	TypeFlagBooleanLiteral
)

// NewType builds a Type with the given flags.
func NewType(name string, flags TypeFlags) *Type {
	return &Type{typeName: name, flags: flags}
}

// NewArrayType builds an array type over elementType.
func NewArrayType(elementType *Type) *Type {
	return &Type{typeName: "array", flags: TypeFlagArray, elementType: elementType}
}

// NewTupleType builds a tuple type of the given arity.
func NewTupleType(arity int) *Type {
	return &Type{typeName: "tuple", flags: TypeFlagTuple, tupleArity: arity}
}

func (t *Type) has(f TypeFlags) bool {
	if t == nil {
		return false
	}
	return t.flags&f != 0
}

func (t *Type) IsString() bool        { return t.has(TypeFlagString) || t.has(TypeFlagStringLiteral) }
func (t *Type) IsNumber() bool        { return t.has(TypeFlagNumber) || t.has(TypeFlagNumberLiteral) }
func (t *Type) IsBoolean() bool       { return t.has(TypeFlagBoolean) || t.has(TypeFlagBooleanLiteral) }
func (t *Type) IsArray() bool         { return t.has(TypeFlagArray) }
func (t *Type) IsTuple() bool         { return t.has(TypeFlagTuple) }
func (t *Type) IsNullable() bool      { return t.has(TypeFlagNullable) }
func (t *Type) IsStringLiteral() bool { return t.has(TypeFlagStringLiteral) }
func (t *Type) IsNumberLiteral() bool { return t.has(TypeFlagNumberLiteral) }

// ElementType returns the element type of an array/tuple type, or nil.
func (t *Type) ElementType() *Type {
	if t == nil {
		return nil
	}
	return t.elementType
}

// TupleArity returns the number of positions in a tuple type.
func (t *Type) TupleArity() int {
	if t == nil {
		return 0
	}
	return t.tupleArity
}

// Name returns the type's declared/checker-assigned name, used to classify
// receivers in method-call dispatch (Promise, Map, Set, Object, the
// math-like value types, and the engine base instance type).
func (t *Type) Name() string {
	if t == nil {
		return ""
	}
	return t.typeName
}

// InheritsFrom reports whether name appears anywhere in t's base-type
// chain (including t itself), matched by Type.Name().
func (t *Type) InheritsFrom(name string) bool {
	if t == nil {
		return false
	}
	if t.typeName == name {
		return true
	}
	for _, b := range t.BaseTypes {
		if b.InheritsFrom(name) {
			return true
		}
	}
	return false
}

// Typed is implemented by every node the checker can assign a static type
// to: expressions, but also declarations whose name carries a type.
type Typed interface {
	ExprType() *Type
}
