// Package emitter implements the recursive, type-aware syntax-directed
// translator: it walks a typed input-language AST (internal/ast) and
// emits Luau source text. See SPEC_FULL.md for the full component map.
package emitter

import "strings"

// scope is one entry of the hoist/export/id stacks, acquired on entry to
// a statemented scope (source file, block, namespace body, switch body,
// function body) and released on exit (spec §3, §4.1).
type scope struct {
	hoisted  []string
	exports  []string
	idCursor int
}

// Context owns every piece of mutable emission state for one
// compilation unit (spec §3). It is reset per file by
// Transpiler.TranslateSourceFile and never shared between concurrent
// translations.
type Context struct {
	indent string

	scopes []scope

	namespaceStack []string

	continueID int
	breakables []breakFrame

	isModule bool
}

// breakableKind distinguishes a loop frame (where `continue` applies and
// `break` needs propagation past the repeat/until wrapper) from a switch
// frame (where `break` exits the switch directly and `continue` skips
// past it to the nearest enclosing loop).
type breakableKind int

const (
	breakableLoop breakableKind = iota
	breakableSwitch
)

type breakFrame struct {
	id   int
	kind breakableKind
}

// NewContext returns a freshly initialized context for one file.
func NewContext() *Context {
	return &Context{continueID: -1}
}

// Indent returns the current indentation prefix.
func (c *Context) Indent() string { return c.indent }

// IndentIn pushes one more indentation level.
func (c *Context) IndentIn() { c.indent += "\t" }

// IndentOut pops one indentation level. It is a caller error to call this
// more times than IndentIn; callers always pair the two within the same
// lowering function.
func (c *Context) IndentOut() {
	if len(c.indent) > 0 {
		c.indent = c.indent[:len(c.indent)-1]
	}
}

// PushScope enters a new statemented scope, pushing a fresh id/hoist/
// export frame (spec §4.1).
func (c *Context) PushScope() {
	c.scopes = append(c.scopes, scope{})
}

// PopScope exits the current statemented scope, returning the hoist
// declaration line (empty if nothing was hoisted) and the export lines
// accumulated in this scope, for the caller to splice into the emitted
// body (spec §4.1).
func (c *Context) PopScope() (hoistLine string, exportLines []string) {
	n := len(c.scopes)
	top := c.scopes[n-1]
	c.scopes = c.scopes[:n-1]

	if len(top.hoisted) > 0 {
		hoistLine = "local " + strings.Join(top.hoisted, ", ") + ";"
	}
	return hoistLine, top.exports
}

// Hoist records name as needing a forward declaration at the head of the
// current scope.
func (c *Context) Hoist(name string) {
	n := len(c.scopes)
	c.scopes[n-1].hoisted = append(c.scopes[n-1].hoisted, name)
}

// Export records line as an export-binding statement to flush at the end
// of the current scope, and marks the file as a module.
func (c *Context) Export(line string) {
	n := len(c.scopes)
	c.scopes[n-1].exports = append(c.scopes[n-1].exports, line)
	c.isModule = true
}

// IsModule reports whether any export has been emitted so far.
func (c *Context) IsModule() bool { return c.isModule }

// MarkModule flags the file as a module without queuing a deferred
// export line, for constructs (`export =`, `export *`) that write
// directly into _exports inline rather than through the Export queue.
func (c *Context) MarkModule() { c.isModule = true }

// NewID allocates a fresh synthetic identifier, unique among the scopes
// currently on the stack; sibling scopes that never coexist may be handed
// the same name. The sum-of-counters scheme (spec §4.1) guarantees
// uniqueness across nesting depth without per-scope prefixes: the
// top-of-stack counter increments on every allocation, and the emitted
// name combines the sum of all counters currently on the stack.
func (c *Context) NewID() string {
	n := len(c.scopes)
	sum := 0
	for _, s := range c.scopes {
		sum += s.idCursor
	}
	c.scopes[n-1].idCursor++
	return syntheticID(sum)
}

func syntheticID(n int) string {
	return "_" + itoa(n)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := [20]byte{}
	i := len(digits)
	for n > 0 {
		i--
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return string(digits[i:])
}

// PushNamespace pushes the synthetic identifier naming the current
// namespace object.
func (c *Context) PushNamespace(id string) { c.namespaceStack = append(c.namespaceStack, id) }

// PopNamespace pops the innermost namespace identifier.
func (c *Context) PopNamespace() {
	c.namespaceStack = c.namespaceStack[:len(c.namespaceStack)-1]
}

// CurrentNamespace returns the innermost namespace identifier, or ""
// when at file level.
func (c *Context) CurrentNamespace() string {
	if len(c.namespaceStack) == 0 {
		return ""
	}
	return c.namespaceStack[len(c.namespaceStack)-1]
}

// EnterLoop allocates a fresh continue/break-simulation cursor for a loop
// and returns it; 0 for the outermost loop, incrementing with nesting
// depth.
func (c *Context) EnterLoop() int {
	c.continueID++
	id := c.continueID
	c.breakables = append(c.breakables, breakFrame{id: id, kind: breakableLoop})
	return id
}

// EnterSwitch allocates a fresh fallthrough/break-simulation cursor for a
// switch statement and returns it.
func (c *Context) EnterSwitch() int {
	c.continueID++
	id := c.continueID
	c.breakables = append(c.breakables, breakFrame{id: id, kind: breakableSwitch})
	return id
}

// ExitBreakable releases the innermost loop or switch frame.
func (c *Context) ExitBreakable() {
	c.breakables = c.breakables[:len(c.breakables)-1]
	c.continueID--
}

// CurrentLoopID returns the cursor of the innermost loop or switch frame,
// or -1 when there is none. Switch frames count here; NearestLoop is the
// lookup that skips them.
func (c *Context) CurrentLoopID() int { return c.continueID }

// CurrentBreakable returns the innermost loop-or-switch frame, or ok ==
// false at the top level.
func (c *Context) CurrentBreakable() (id int, kind breakableKind, ok bool) {
	if len(c.breakables) == 0 {
		return 0, 0, false
	}
	top := c.breakables[len(c.breakables)-1]
	return top.id, top.kind, true
}

// NearestLoop returns the id of the nearest enclosing loop frame,
// skipping past any switch frames, since `continue` always targets a
// loop and ignores an intervening switch.
func (c *Context) NearestLoop() (id int, ok bool) {
	for i := len(c.breakables) - 1; i >= 0; i-- {
		if c.breakables[i].kind == breakableLoop {
			return c.breakables[i].id, true
		}
	}
	return 0, false
}
