package ast

// BindingElement is one element of an array or object binding pattern:
// `{ a: renamed = default }` or `[a, ...rest]`.
type BindingElement struct {
	base
	// PropertyName is set for object patterns when the bound name differs
	// from the source key (`{ key: bound }`); nil otherwise.
	PropertyName *Identifier
	Name         BindingName
	Initializer  Expression
	DotDotDot    bool
}

func NewBindingElement(pos Position, propName *Identifier, name BindingName, initializer Expression, dotDotDot bool) *BindingElement {
	return &BindingElement{base: newBase(KindBindingElement, pos), PropertyName: propName, Name: name, Initializer: initializer, DotDotDot: dotDotDot}
}
func (b *BindingElement) bindingNameNode() {}

// ObjectBindingPattern is `{ a, b: c, ...rest }` on the left of a
// declaration, parameter, or for-of binding.
type ObjectBindingPattern struct {
	base
	Elements []*BindingElement
}

func NewObjectBindingPattern(pos Position, elements []*BindingElement) *ObjectBindingPattern {
	return &ObjectBindingPattern{base: newBase(KindObjectBindingPattern, pos), Elements: elements}
}
func (o *ObjectBindingPattern) bindingNameNode() {}

// ArrayBindingPattern is `[a, , c, ...rest]`.
type ArrayBindingPattern struct {
	base
	Elements []*BindingElement // nil entries represent elided slots
}

func NewArrayBindingPattern(pos Position, elements []*BindingElement) *ArrayBindingPattern {
	return &ArrayBindingPattern{base: newBase(KindArrayBindingPattern, pos), Elements: elements}
}
func (a *ArrayBindingPattern) bindingNameNode() {}

// IsBindingPattern reports whether name is a destructuring pattern rather
// than a plain identifier.
func IsBindingPattern(name BindingName) bool {
	switch name.(type) {
	case *ObjectBindingPattern, *ArrayBindingPattern:
		return true
	default:
		return false
	}
}
