package estree

import (
	"github.com/leapstack-labs/shapelint/pkg/token"
)

// Field is one named slot of a node. Value holds one of:
// *Node, []*Node (entries may be nil for array holes), string, float64, bool,
// nil, []any or map[string]any for non-node structured data.
type Field struct {
	Name  string
	Value any
}

// Node is an immutable syntax element.
type Node struct {
	Type string
	Span token.Span

	fields []Field
	parent *Node // lookup only; never traversed
}

// New creates a node and adopts every node-valued field as a child.
func New(typ string, span token.Span, fields ...Field) *Node {
	n := &Node{Type: typ, Span: span}
	for _, f := range fields {
		if f.Name == "parent" {
			continue
		}
		n.fields = append(n.fields, f)
		switch v := f.Value.(type) {
		case *Node:
			if v != nil {
				v.parent = n
			}
		case []*Node:
			for _, c := range v {
				if c != nil {
					c.parent = n
				}
			}
		}
	}
	return n
}

// Parent returns the enclosing node, or nil for the root.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// Fields returns the node's fields in document order.
func (n *Node) Fields() []Field {
	if n == nil {
		return nil
	}
	return n.fields
}

// Value returns the raw value of a field and whether it is present.
func (n *Node) Value(name string) (any, bool) {
	if n == nil {
		return nil, false
	}
	for _, f := range n.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Has returns true if the field is present, even when its value is null.
func (n *Node) Has(name string) bool {
	_, ok := n.Value(name)
	return ok
}

// Child returns a single node-valued field, or nil.
func (n *Node) Child(name string) *Node {
	v, _ := n.Value(name)
	c, _ := v.(*Node)
	return c
}

// List returns a node-array field, or nil.
func (n *Node) List(name string) []*Node {
	v, _ := n.Value(name)
	l, _ := v.([]*Node)
	return l
}

// String returns a string field, or "".
func (n *Node) String(name string) string {
	v, _ := n.Value(name)
	s, _ := v.(string)
	return s
}

// Bool returns a boolean field, or false.
func (n *Node) Bool(name string) bool {
	v, _ := n.Value(name)
	b, _ := v.(bool)
	return b
}

// Is reports whether n is non-nil and of one of the given kinds.
func (n *Node) Is(kinds ...string) bool {
	if n == nil {
		return false
	}
	for _, k := range kinds {
		if n.Type == k {
			return true
		}
	}
	return false
}

// Name returns the identifier name of an Identifier node (or JSX/private
// identifier), or "".
func (n *Node) Name() string {
	if !n.Is(KindIdentifier, KindPrivateIdentifier, KindJSXIdentifier) {
		return ""
	}
	return n.String("name")
}

// Body returns the statement list of a Program or BlockStatement.
func (n *Node) Body() []*Node {
	if !n.Is(KindProgram, KindBlockStatement, KindStaticBlock) {
		return nil
	}
	return n.List("body")
}
