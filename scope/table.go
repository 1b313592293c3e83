/*
 * OSLC
 *
 * OSL front-end compiler.
 */

// Package scope implements the parser's declaration table: a stack of
// lexical scopes plus a persistent list of builtin type declarations.
package scope

import "github.com/krotik/oslc/ast"

/*
Scope is an ordered collection of declarations visible over a lexical
region. Declarations are stored in insertion order and also indexed by
name for lookup; a scope never owns the declaration nodes it holds.
*/
type Scope struct {
	name   string
	order  []*ast.Node
	byName map[string]*ast.Node
}

/*
newScope creates an empty scope.
*/
func newScope(name string) *Scope {
	return &Scope{name: name, byName: make(map[string]*ast.Node)}
}

/*
Declare records a declaration node in this scope. Later declarations
with the same name shadow earlier ones for lookup purposes, matching
ordinary lexical shadowing; both remain in Declarations().
*/
func (s *Scope) Declare(decl *ast.Node) {
	s.order = append(s.order, decl)
	s.byName[decl.Name] = decl
}

/*
lookupLocal returns the declaration bound to name in this scope alone.
*/
func (s *Scope) lookupLocal(name string) (*ast.Node, bool) {
	n, ok := s.byName[name]
	return n, ok
}

/*
Declarations returns this scope's declarations in insertion order.
*/
func (s *Scope) Declarations() []*ast.Node {
	return s.order
}

/*
Table is the stack of active scopes plus the persistent builtin list
used during parsing. A Table always has at least the translation-unit
scope at its bottom.
*/
type Table struct {
	stack    []*Scope
	builtins *Scope
}

/*
BuiltinTypeNames are the eleven primitive type names recognized without
user definition.
*/
var BuiltinTypeNames = []string{
	"void", "bool", "int", "uint", "float", "double",
	"vec2", "vec3", "vec4", "mat3", "mat4",
}

/*
NewTable creates a table with one bottom scope (the translation unit)
and the persistent builtin declarations populated.
*/
func NewTable() *Table {
	t := &Table{builtins: newScope("builtins")}

	for _, name := range BuiltinTypeNames {
		decl := ast.New(ast.DeclarationVariable, 0, 0)
		decl.Name = name
		decl.TypeName = name
		t.builtins.Declare(decl)
	}

	t.Push("translation-unit")
	return t
}

/*
Push enters a new scope, e.g. on entry to a compound statement.
*/
func (t *Table) Push(name string) *Scope {
	s := newScope(name)
	t.stack = append(t.stack, s)
	return s
}

/*
Pop leaves the current scope, e.g. on exit from a compound statement.
*/
func (t *Table) Pop() {
	if len(t.stack) == 0 {
		return
	}
	t.stack = t.stack[:len(t.stack)-1]
}

/*
Depth returns the number of active scopes.
*/
func (t *Table) Depth() int {
	return len(t.stack)
}

/*
Current returns the innermost active scope.
*/
func (t *Table) Current() *Scope {
	if len(t.stack) == 0 {
		return nil
	}
	return t.stack[len(t.stack)-1]
}

/*
Declare records a declaration in the innermost active scope.
*/
func (t *Table) Declare(decl *ast.Node) {
	if c := t.Current(); c != nil {
		c.Declare(decl)
	}
}

/*
Lookup searches the scope stack top-to-bottom, then the builtin list.
Returns the matching declaration and true, or nil and false if no scope
or the builtin list binds name.
*/
func (t *Table) Lookup(name string) (*ast.Node, bool) {
	for i := len(t.stack) - 1; i >= 0; i-- {
		if n, ok := t.stack[i].lookupLocal(name); ok {
			return n, true
		}
	}
	return t.builtins.lookupLocal(name)
}

/*
Builtins returns the persistent builtin declarations, in definition
order.
*/
func (t *Table) Builtins() []*ast.Node {
	return t.builtins.Declarations()
}
