package usage

import (
	"github.com/leapstack-labs/shapelint/pkg/estree"
)

// Kind is the binding kind of a top-level declaration.
type Kind string

// Declaration kinds.
const (
	KindFunction Kind = "function"
	KindClass    Kind = "class"
	KindVariable Kind = "variable"
	KindImport   Kind = "import"
)

// Declaration is a named top-level binding.
type Declaration struct {
	Name string
	Kind Kind
	// Node is the defining node: the function or class declaration, the
	// variable declarator, or the import specifier.
	Node *estree.Node
}

// Declarations lists the top-level bindings of program in source order,
// looking through export statements. Names may repeat.
func Declarations(program *estree.Node) []Declaration {
	var decls []Declaration
	for _, stmt := range program.Body() {
		if stmt.Is(estree.KindExportNamedDeclaration, estree.KindExportDefaultDeclaration) {
			stmt = stmt.Child("declaration")
		}
		decls = appendDeclarations(decls, stmt)
	}
	return decls
}

// Lookup returns the declarations named name.
func Lookup(decls []Declaration, name string) []Declaration {
	var out []Declaration
	for _, d := range decls {
		if d.Name == name {
			out = append(out, d)
		}
	}
	return out
}

func appendDeclarations(decls []Declaration, stmt *estree.Node) []Declaration {
	switch {
	case stmt.Is(estree.KindFunctionDeclaration, estree.KindTSDeclareFunction):
		if name := stmt.Child("id").Name(); name != "" {
			decls = append(decls, Declaration{Name: name, Kind: KindFunction, Node: stmt})
		}
	case stmt.Is(estree.KindClassDeclaration):
		if name := stmt.Child("id").Name(); name != "" {
			decls = append(decls, Declaration{Name: name, Kind: KindClass, Node: stmt})
		}
	case stmt.Is(estree.KindVariableDeclaration):
		for _, d := range stmt.List("declarations") {
			for _, name := range BindingNames(d.Child("id")) {
				decls = append(decls, Declaration{Name: name, Kind: KindVariable, Node: d})
			}
		}
	case stmt.Is(estree.KindImportDeclaration):
		for _, spec := range stmt.List("specifiers") {
			if name := spec.Child("local").Name(); name != "" {
				decls = append(decls, Declaration{Name: name, Kind: KindImport, Node: spec})
			}
		}
	}
	return decls
}

// BindingNames returns the names bound by a declaration target, descending
// into destructuring patterns.
func BindingNames(target *estree.Node) []string {
	var names []string
	var visit func(n *estree.Node)
	visit = func(n *estree.Node) {
		switch {
		case n.Is(estree.KindIdentifier):
			names = append(names, n.Name())
		case n.Is(estree.KindObjectPattern):
			for _, p := range n.List("properties") {
				if p.Is(estree.KindProperty) {
					visit(p.Child("value"))
				} else {
					visit(p)
				}
			}
		case n.Is(estree.KindArrayPattern):
			for _, el := range n.List("elements") {
				visit(el)
			}
		case n.Is(estree.KindRestElement):
			visit(n.Child("argument"))
		case n.Is(estree.KindAssignmentPattern):
			visit(n.Child("left"))
		}
	}
	visit(target)
	return names
}
