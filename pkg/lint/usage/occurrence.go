package usage

import (
	"github.com/leapstack-labs/shapelint/pkg/estree"
)

// Occurrence classifies one appearance of a name.
type Occurrence int

// Occurrence kinds.
const (
	// NotApplicable marks identifiers that are not name uses at all:
	// property keys, member names and labels.
	NotApplicable Occurrence = iota
	// Reference is a qualifying use of a binding.
	Reference
	// DeclarationSite is the name a declaration introduces, or an import or
	// export specifier name.
	DeclarationSite
	// PatternBinding is a name bound by a parameter, catch clause or
	// destructuring pattern.
	PatternBinding
	// TypeOnly is a name in a type position.
	TypeOnly
)

// String returns the occurrence kind name.
func (o Occurrence) String() string {
	switch o {
	case Reference:
		return "reference"
	case DeclarationSite:
		return "declaration"
	case PatternBinding:
		return "pattern-binding"
	case TypeOnly:
		return "type-only"
	default:
		return "not-applicable"
	}
}

// typeKinds are the kinds whose whole subtree is a type position.
var typeKinds = map[string]bool{
	estree.KindTSTypeAnnotation:              true,
	estree.KindTSTypeReference:               true,
	estree.KindTSTypeQuery:                   true,
	estree.KindTSQualifiedName:               true,
	estree.KindTSTypeLiteral:                 true,
	estree.KindTSTypeParameter:               true,
	estree.KindTSTypeParameterDeclaration:    true,
	estree.KindTSTypeParameterInstantiation:  true,
	estree.KindTSInterfaceDeclaration:        true,
	estree.KindTSInterfaceHeritage:           true,
	estree.KindTSClassImplements:             true,
	estree.KindTSExpressionWithTypeArguments: true,
	estree.KindTSTypeAliasDeclaration:        true,
}

// patternKinds are the destructuring layers between a binding name and the
// construct that introduces it.
var patternKinds = map[string]bool{
	estree.KindObjectPattern:       true,
	estree.KindArrayPattern:        true,
	estree.KindRestElement:         true,
	estree.KindAssignmentPattern:   true,
	estree.KindTSParameterProperty: true,
}

// Classify classifies an identifier using its parent back-reference.
func Classify(id *estree.Node) Occurrence {
	parent := id.Parent()
	return classify(id, parent, keyOf(parent, id))
}

// keyOf returns the field of parent that holds child.
func keyOf(parent, child *estree.Node) string {
	for _, e := range estree.Edges(parent) {
		if e.Node == child {
			return e.Key
		}
	}
	return ""
}

func classify(id, parent *estree.Node, key string) Occurrence {
	if id.Is(estree.KindJSXIdentifier) {
		return classifyJSX(parent, key)
	}
	if !id.Is(estree.KindIdentifier) {
		return NotApplicable
	}
	if inTypePosition(parent) {
		return TypeOnly
	}
	if parent == nil {
		return Reference
	}

	switch parent.Type {
	case estree.KindFunctionDeclaration, estree.KindFunctionExpression, estree.KindArrowFunctionExpression,
		estree.KindTSDeclareFunction, estree.KindTSEmptyBodyFunctionExpression:
		switch key {
		case "id":
			return DeclarationSite
		case "params":
			return PatternBinding
		}
	case estree.KindClassDeclaration, estree.KindClassExpression, estree.KindTSEnumDeclaration,
		estree.KindTSModuleDeclaration:
		if key == "id" {
			return DeclarationSite
		}
	case estree.KindVariableDeclarator:
		if key == "id" {
			return DeclarationSite
		}
	case estree.KindCatchClause:
		if key == "param" {
			return PatternBinding
		}
	case estree.KindImportSpecifier, estree.KindImportDefaultSpecifier, estree.KindImportNamespaceSpecifier,
		estree.KindExportSpecifier:
		return DeclarationSite
	case estree.KindExportAllDeclaration:
		if key == "exported" {
			return DeclarationSite
		}
	case estree.KindMemberExpression:
		if key == "property" && !parent.Bool("computed") {
			return NotApplicable
		}
	case estree.KindProperty:
		if key == "key" && !parent.Bool("computed") {
			return NotApplicable
		}
		if key == "value" && parent.Parent().Is(estree.KindObjectPattern) {
			return patternContext(parent.Parent())
		}
	case estree.KindPropertyDefinition, estree.KindMethodDefinition, "AccessorProperty", "TSPropertySignature",
		"TSMethodSignature", "TSEnumMember", "TSAbstractPropertyDefinition", "TSAbstractMethodDefinition":
		if key == "key" && !parent.Bool("computed") {
			return NotApplicable
		}
	case estree.KindLabeledStatement, estree.KindBreakStatement, estree.KindContinueStatement:
		if key == "label" {
			return NotApplicable
		}
	case "MetaProperty":
		return NotApplicable
	case estree.KindAssignmentPattern:
		if key == "left" {
			return patternContext(parent)
		}
		return Reference
	}

	if patternKinds[parent.Type] {
		return patternContext(parent)
	}
	return Reference
}

// classifyJSX treats element names as references to components; attribute
// names are not name uses.
func classifyJSX(parent *estree.Node, key string) Occurrence {
	switch {
	case parent.Is("JSXOpeningElement", "JSXClosingElement") && key == "name":
		return Reference
	case parent.Is("JSXMemberExpression") && key == "object":
		return Reference
	default:
		return NotApplicable
	}
}

// patternContext climbs from a destructuring layer to the construct that
// introduces its names.
func patternContext(n *estree.Node) Occurrence {
	child := n
	for p := n.Parent(); p != nil; child, p = p, p.Parent() {
		if patternKinds[p.Type] {
			if p.Type == estree.KindAssignmentPattern && keyOf(p, child) != "left" {
				return Reference
			}
			continue
		}
		if p.Is(estree.KindProperty) && p.Parent().Is(estree.KindObjectPattern) {
			continue
		}
		switch {
		case p.Is(estree.KindFunctionDeclaration, estree.KindFunctionExpression, estree.KindArrowFunctionExpression):
			if keyOf(p, child) == "params" {
				return PatternBinding
			}
		case p.Is(estree.KindVariableDeclarator, estree.KindCatchClause):
			return PatternBinding
		}
		// destructuring assignment targets write existing bindings
		return Reference
	}
	return Reference
}

// inTypePosition reports whether n or one of its ancestors is a type node.
func inTypePosition(n *estree.Node) bool {
	for ; n != nil; n = n.Parent() {
		if typeKinds[n.Type] {
			return true
		}
	}
	return false
}
