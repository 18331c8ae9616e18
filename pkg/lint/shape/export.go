package shape

import (
	"github.com/leapstack-labs/shapelint/pkg/estree"
)

// ExportInfo describes one export statement.
type ExportInfo struct {
	IsDefault   bool
	IsTypeOnly  bool
	IsWildcard  bool // export * from "..."
	HasSource   bool // re-exported from another module
	Specifiers  []*estree.Node
	Declaration *estree.Node // inline declaration or default-exported expression
}

// IsLocalReExport reports whether the export only lists names already bound
// in this module: `export { a, b }`.
func (e ExportInfo) IsLocalReExport() bool {
	return !e.IsDefault && !e.IsWildcard && !e.HasSource && e.Declaration == nil && len(e.Specifiers) > 0
}

// IsRemoteReExport reports whether the export forwards another module's
// bindings: `export * from "m"` or `export { a } from "m"`.
func (e ExportInfo) IsRemoteReExport() bool {
	return e.IsWildcard || e.HasSource
}

// ClassifyExport describes n. ok is false when n is not an export statement.
func ClassifyExport(n *estree.Node) (info ExportInfo, ok bool) {
	switch {
	case n.Is(estree.KindExportNamedDeclaration):
		info.Declaration = n.Child("declaration")
		info.Specifiers = n.List("specifiers")
		info.HasSource = n.Child("source") != nil
		info.IsTypeOnly = n.String("exportKind") == "type" ||
			isTypeDeclaration(info.Declaration) ||
			allTypeSpecifiers(info.Specifiers)
	case n.Is(estree.KindExportDefaultDeclaration):
		info.IsDefault = true
		info.Declaration = n.Child("declaration")
		info.IsTypeOnly = isTypeDeclaration(info.Declaration)
	case n.Is(estree.KindExportAllDeclaration):
		info.IsWildcard = true
		info.HasSource = true
		info.IsTypeOnly = n.String("exportKind") == "type"
	case n.Is(estree.KindTSExportAssignment):
		info.IsDefault = true
		info.Declaration = n.Child("expression")
	default:
		return ExportInfo{}, false
	}
	return info, true
}

// isTypeDeclaration reports whether n declares only types.
func isTypeDeclaration(n *estree.Node) bool {
	switch {
	case n.Is(estree.KindTSInterfaceDeclaration, estree.KindTSTypeAliasDeclaration):
		return true
	case n.Is(estree.KindTSDeclareFunction, estree.KindTSModuleDeclaration, estree.KindTSEnumDeclaration,
		estree.KindClassDeclaration, estree.KindVariableDeclaration):
		// ambient declarations carry no runtime value
		return n.Bool("declare")
	}
	return false
}

// allTypeSpecifiers reports whether every specifier is marked `type`.
func allTypeSpecifiers(specs []*estree.Node) bool {
	if len(specs) == 0 {
		return false
	}
	for _, s := range specs {
		if s.String("exportKind") != "type" {
			return false
		}
	}
	return true
}

// IsPrimitiveConstant reports whether decl is `const` with every declarator
// initialized to a primitive literal.
func IsPrimitiveConstant(decl *estree.Node) bool {
	if !decl.Is(estree.KindVariableDeclaration) || decl.String("kind") != "const" {
		return false
	}
	declarators := decl.List("declarations")
	if len(declarators) == 0 {
		return false
	}
	for _, d := range declarators {
		if !IsPrimitiveLiteral(d.Child("init")) {
			return false
		}
	}
	return true
}
