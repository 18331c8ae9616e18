package estree

import "slices"

// Edge is one child reference: the field it was found in and the child itself.
type Edge struct {
	Key  string
	Node *Node
}

// Edges returns the ordered child references of n. Declared kinds list the
// KindFields entries first, then any other node-valued field in document
// order; undeclared kinds enumerate all node-valued fields in document order.
// Token and comment lists that some frontends attach are not children.
func Edges(n *Node) []Edge {
	if n == nil {
		return nil
	}
	var edges []Edge
	keys := KindFields[n.Type]
	for _, key := range keys {
		v, _ := n.Value(key)
		edges = appendEdges(edges, key, v)
	}
	for _, f := range n.fields {
		if auxiliaryFields[f.Name] || slices.Contains(keys, f.Name) {
			continue
		}
		edges = appendEdges(edges, f.Name, f.Value)
	}
	return edges
}

// auxiliaryFields hold producer side data rather than syntax.
var auxiliaryFields = map[string]bool{"tokens": true, "comments": true}

func appendEdges(edges []Edge, key string, v any) []Edge {
	switch c := v.(type) {
	case *Node:
		if c != nil {
			edges = append(edges, Edge{Key: key, Node: c})
		}
	case []*Node:
		for _, item := range c {
			if item != nil {
				edges = append(edges, Edge{Key: key, Node: item})
			}
		}
	}
	return edges
}

// Children returns the ordered child nodes of n.
func Children(n *Node) []*Node {
	edges := Edges(n)
	if len(edges) == 0 {
		return nil
	}
	children := make([]*Node, len(edges))
	for i, e := range edges {
		children[i] = e.Node
	}
	return children
}

// Walk traverses a tree depth-first and calls fn for each node.
// If fn returns false, the children of that node are skipped.
func Walk(node *Node, fn func(node *Node) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	for _, child := range Children(node) {
		Walk(child, fn)
	}
}

// Cursor describes a node together with where it was reached from.
type Cursor struct {
	Node   *Node
	Parent *Node  // nil for the root
	Key    string // field of Parent holding Node
	Depth  int
}

// WalkCursor is Walk with positional context: the callback learns the parent
// and the field through which each node was reached.
func WalkCursor(root *Node, fn func(c Cursor) bool) {
	walkCursor(Cursor{Node: root}, fn)
}

func walkCursor(c Cursor, fn func(c Cursor) bool) {
	if c.Node == nil {
		return
	}
	if !fn(c) {
		return
	}
	for _, e := range Edges(c.Node) {
		walkCursor(Cursor{Node: e.Node, Parent: c.Node, Key: e.Key, Depth: c.Depth + 1}, fn)
	}
}

// Visitor receives enter and exit events from Traverse.
type Visitor interface {
	// Enter is called before the children of n. Returning false skips them
	// (Exit is still called for n).
	Enter(n *Node) bool
	// Exit is called after the children of n.
	Exit(n *Node)
}

// Traverse walks the tree depth-first, reporting enter and exit events.
func Traverse(root *Node, v Visitor) {
	if root == nil {
		return
	}
	if v.Enter(root) {
		for _, child := range Children(root) {
			Traverse(child, v)
		}
	}
	v.Exit(root)
}
