package ast

// Parameter is one entry of a function/method/constructor parameter list.
type Parameter struct {
	base
	Name        BindingName
	Initializer Expression
	DotDotDot   bool // rest parameter
	// CapturedIntoThis marks a constructor parameter property
	// (`constructor(private x: number)`), which additionally emits
	// `self.x = x` after defaults (spec §4.6).
	CapturedIntoThis bool
	Type             *Type
}

func NewParameter(pos Position, name BindingName, initializer Expression, dotDotDot, capturedIntoThis bool, typ *Type) *Parameter {
	return &Parameter{base: newBase(KindParameter, pos), Name: name, Initializer: initializer, DotDotDot: dotDotDot, CapturedIntoThis: capturedIntoThis, Type: typ}
}
func (p *Parameter) statementNode()  {}
func (p *Parameter) ExprType() *Type { return p.Type }

// FunctionDeclaration covers `function f(...) {}`, class methods,
// getters/setters, and constructors; Kind on the embedded base
// distinguishes which.
type FunctionDeclaration struct {
	base
	Name       *Identifier // nil for anonymous function expressions
	Parameters []*Parameter
	Body       *Block
	ReturnType *Type
	IsAsync    bool
	IsStatic   bool
	IsAbstract bool
	IsExported bool
}

func NewFunctionDeclaration(pos Position, kind Kind, name *Identifier, params []*Parameter, body *Block, returnType *Type) *FunctionDeclaration {
	return &FunctionDeclaration{base: newBase(kind, pos), Name: name, Parameters: params, Body: body, ReturnType: returnType}
}
func (f *FunctionDeclaration) statementNode()  {}
func (f *FunctionDeclaration) expressionNode() {}

// ArrowFunction is `(params) => body`, where Body is either a *Block or a
// single Expression (concise body).
type ArrowFunction struct {
	base
	Parameters []*Parameter
	Body       Node // *Block or Expression
	IsAsync    bool
}

func NewArrowFunction(pos Position, params []*Parameter, body Node, isAsync bool) *ArrowFunction {
	return &ArrowFunction{base: newBase(KindArrowFunction, pos), Parameters: params, Body: body, IsAsync: isAsync}
}
func (a *ArrowFunction) expressionNode() {}
