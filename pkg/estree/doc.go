// Package estree provides the syntax-tree data model consumed by the lint
// engine and a schema-tolerant walker over it.
//
// Trees are produced upstream by any ESTree-compatible frontend (acorn,
// espree, typescript-estree) and handed over as JSON. Nodes keep every field
// the frontend emitted, in document order, so rules can inspect node kinds
// this package has never heard of.
//
// # Traversal
//
// Children are resolved in two steps:
//
//  1. If the node kind has an entry in KindFields, those fields are visited in
//     the declared order.
//  2. Otherwise every node-valued field of the node is visited in document
//     order.
//
// The parent back-reference is not a field and is never followed.
//
//	estree.Walk(program, func(n *estree.Node) bool {
//		if n.Type == estree.KindCatchClause {
//			// ...
//		}
//		return true
//	})
package estree
