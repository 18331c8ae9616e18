// Package scope models the module-level binding table a frontend may attach to
// a syntax tree. Rules treat the table as an optional fast path: when it is
// absent, identifier usage is recovered by scanning the tree instead.
package scope

import (
	"github.com/leapstack-labs/shapelint/pkg/token"
)

// Kind classifies how a binding was introduced.
type Kind string

// Binding kinds.
const (
	KindVariable  Kind = "variable"
	KindFunction  Kind = "function"
	KindClass     Kind = "class"
	KindImport    Kind = "import"
	KindParameter Kind = "parameter"
	KindType      Kind = "type"
)

// Reference is one resolved occurrence of a binding's name.
type Reference struct {
	Span token.Span
	// Init marks the write performed by the declaration itself.
	Init bool
	// TypeOnly marks occurrences in type positions.
	TypeOnly bool
}

// Variable is a named binding in module scope.
type Variable struct {
	Name       string
	Kind       Kind
	References []Reference
}

// Table answers lookups against a host-provided binding table.
type Table interface {
	// Lookup returns the module-scope variables bound to name, or nil.
	Lookup(name string) []*Variable
}

// Module is the in-memory Table implementation.
type Module struct {
	byName map[string][]*Variable
	all    []*Variable
}

// NewModule builds a table from the given variables. Names may repeat.
func NewModule(vars ...*Variable) *Module {
	m := &Module{byName: make(map[string][]*Variable, len(vars))}
	for _, v := range vars {
		m.Add(v)
	}
	return m
}

// Add registers v.
func (m *Module) Add(v *Variable) {
	if v == nil {
		return
	}
	m.byName[v.Name] = append(m.byName[v.Name], v)
	m.all = append(m.all, v)
}

// Lookup implements Table.
func (m *Module) Lookup(name string) []*Variable {
	if m == nil {
		return nil
	}
	return m.byName[name]
}

// Variables returns every variable in insertion order.
func (m *Module) Variables() []*Variable {
	if m == nil {
		return nil
	}
	return m.all
}

// Len returns the number of variables in the table.
func (m *Module) Len() int {
	if m == nil {
		return 0
	}
	return len(m.all)
}
