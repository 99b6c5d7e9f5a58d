package emitter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/ts2luau/internal/ast"
)

func emptyBody() *ast.Block {
	return ast.NewBlock(pos(), nil)
}

func method(name string, kind ast.Kind, isStatic bool) *ast.FunctionDeclaration {
	fn := ast.NewFunctionDeclaration(pos(), kind, ast.NewIdentifier(pos(), name, nil, nil), nil, emptyBody(), nil)
	fn.IsStatic = isStatic
	return fn
}

func TestBuildClassBody_NoBase_PlainIndexIdentity(t *testing.T) {
	tr := newTestTranspiler()
	cls := ast.NewClassDeclaration(pos(), ast.NewIdentifier(pos(), "Animal", nil, nil), nil, nil, nil, false, nil)

	out := tr.buildClassBody(cls, "Animal")

	require.Contains(t, out, "local Animal = {};")
	require.Contains(t, out, "Animal.__index = Animal;")
	require.NotContains(t, out, "setmetatable(Animal")
	require.Contains(t, out, "function Animal.new(...)")
}

func TestBuildClassBody_WithBase_SetsMetatable(t *testing.T) {
	tr := newTestTranspiler()
	cls := ast.NewClassDeclaration(pos(), ast.NewIdentifier(pos(), "Dog", nil, nil), ast.NewIdentifier(pos(), "Animal", nil, nil), nil, nil, false, nil)

	out := tr.buildClassBody(cls, "Dog")

	require.Contains(t, out, "setmetatable(Dog, { __index = Animal });")
	require.Contains(t, out, "function Dog.constructor(self, ...)")
	require.Contains(t, out, "Animal.constructor(self, ...);")
}

func TestBuildClassBody_GetterSetter_FunctionIndex(t *testing.T) {
	tr := newTestTranspiler()
	getter := method("value", ast.KindGetAccessor, false)
	setter := method("value", ast.KindSetAccessor, false)
	setter.Parameters = []*ast.Parameter{ast.NewParameter(pos(), ast.NewIdentifier(pos(), "v", nil, nil), nil, false, false, nil)}

	cls := ast.NewClassDeclaration(pos(), ast.NewIdentifier(pos(), "Box", nil, nil), nil, nil,
		[]ast.ClassMember{getter, setter}, false, nil)

	out := tr.buildClassBody(cls, "Box")

	require.Contains(t, out, "Box._getters = {};")
	require.Contains(t, out, "Box._setters = {};")
	require.Contains(t, out, "Box.__index = function(self, key)")
	require.Contains(t, out, "Box.__newindex = function(self, key, value)")
	require.NotContains(t, out, "Box.__index = Box;")
}

func TestBuildClassBody_ReservedMetamethodRejected(t *testing.T) {
	tr := newTestTranspiler()
	bad := method("__index", ast.KindMethodDeclaration, false)
	cls := ast.NewClassDeclaration(pos(), ast.NewIdentifier(pos(), "Bad", nil, nil), nil, nil,
		[]ast.ClassMember{bad}, false, nil)

	require.Panics(t, func() { tr.buildClassBody(cls, "Bad") })
}

func TestBuildClassBody_AbstractClassHasNoFactory(t *testing.T) {
	tr := newTestTranspiler()
	cls := ast.NewClassDeclaration(pos(), ast.NewIdentifier(pos(), "Shape", nil, nil), nil, nil, nil, true, nil)

	out := tr.buildClassBody(cls, "Shape")

	require.NotContains(t, out, "Shape.new")
}

func TestBuildConstructorBody_SuperCallIsFirstStatement(t *testing.T) {
	tr := newTestTranspiler()
	superCall := ast.NewExpressionStatement(pos(), ast.NewCallExpression(pos(), ast.NewSuperExpression(pos(), "Animal"), nil, nil))
	ctorBody := ast.NewBlock(pos(), []ast.Statement{superCall})
	ctor := ast.NewFunctionDeclaration(pos(), ast.KindConstructor, nil, nil, ctorBody, nil)

	cls := ast.NewClassDeclaration(pos(), ast.NewIdentifier(pos(), "Dog", nil, nil), ast.NewIdentifier(pos(), "Animal", nil, nil), nil,
		[]ast.ClassMember{ctor}, false, nil)

	_, body := tr.buildConstructorBody(cls, ctor)
	require.Contains(t, body, "Animal.constructor(self);")
}

func TestBuildConstructorBody_ExplicitReturnRejected(t *testing.T) {
	tr := newTestTranspiler()
	ret := ast.NewReturnStatement(pos(), nil, nil)
	ctorBody := ast.NewBlock(pos(), []ast.Statement{ret})
	ctor := ast.NewFunctionDeclaration(pos(), ast.KindConstructor, nil, nil, ctorBody, nil)
	cls := ast.NewClassDeclaration(pos(), ast.NewIdentifier(pos(), "Dog", nil, nil), nil, nil,
		[]ast.ClassMember{ctor}, false, nil)

	require.Panics(t, func() { tr.buildConstructorBody(cls, ctor) })
}
