// Package estreetest builds syntax trees by hand for tests.
//
// Every node receives a distinct span: leaves take fresh offsets and
// composite nodes span from their first child to a fresh end offset, so
// parents always enclose their children and no two nodes share a span.
// Subtrees must be built in document order for spans to stay disjoint.
package estreetest

import (
	"github.com/leapstack-labs/shapelint/pkg/estree"
	"github.com/leapstack-labs/shapelint/pkg/token"
)

// Builder allocates spans for hand-built nodes.
type Builder struct {
	pos int
}

// New returns a builder whose offsets start at zero.
func New() *Builder {
	return &Builder{}
}

func (b *Builder) next() int {
	p := b.pos
	b.pos++
	return p
}

func f(name string, v any) estree.Field {
	return estree.Field{Name: name, Value: v}
}

// node builds a composite node spanning its children.
func (b *Builder) node(typ string, fields ...estree.Field) *estree.Node {
	start := -1
	for _, fl := range fields {
		switch v := fl.Value.(type) {
		case *estree.Node:
			if v != nil && (start < 0 || v.Span.Start.Offset < start) {
				start = v.Span.Start.Offset
			}
		case []*estree.Node:
			for _, c := range v {
				if c != nil && (start < 0 || c.Span.Start.Offset < start) {
					start = c.Span.Start.Offset
				}
			}
		}
	}
	if start < 0 {
		start = b.next()
	}
	end := b.next() + 1
	return estree.New(typ, span(start, end), fields...)
}

func (b *Builder) leaf(typ string, fields ...estree.Field) *estree.Node {
	start := b.next()
	return estree.New(typ, span(start, start+1), fields...)
}

func span(start, end int) token.Span {
	return token.Span{
		Start: token.Position{Line: 1, Column: start + 1, Offset: start},
		End:   token.Position{Line: 1, Column: end + 1, Offset: end},
	}
}

// Reposition returns a copy of n covering [start, end). Children are
// re-parented to the copy.
func Reposition(n *estree.Node, start, end int) *estree.Node {
	return estree.New(n.Type, span(start, end), n.Fields()...)
}

// Program wraps top-level statements.
func (b *Builder) Program(stmts ...*estree.Node) *estree.Node {
	return b.node(estree.KindProgram, f("sourceType", "module"), f("body", list(stmts)))
}

// Ident builds an Identifier.
func (b *Builder) Ident(name string) *estree.Node {
	return b.leaf(estree.KindIdentifier, f("name", name))
}

// Idents builds one Identifier per name.
func (b *Builder) Idents(names ...string) []*estree.Node {
	out := make([]*estree.Node, len(names))
	for i, n := range names {
		out[i] = b.Ident(n)
	}
	return out
}

// Num builds a numeric Literal.
func (b *Builder) Num(v float64) *estree.Node {
	return b.leaf(estree.KindLiteral, f("value", v), f("raw", "n"))
}

// Str builds a string Literal.
func (b *Builder) Str(s string) *estree.Node {
	return b.leaf(estree.KindLiteral, f("value", s), f("raw", `"`+s+`"`))
}

// Bool builds a boolean Literal.
func (b *Builder) Bool(v bool) *estree.Node {
	raw := "false"
	if v {
		raw = "true"
	}
	return b.leaf(estree.KindLiteral, f("value", v), f("raw", raw))
}

// Null builds the null Literal.
func (b *Builder) Null() *estree.Node {
	return b.leaf(estree.KindLiteral, f("value", nil), f("raw", "null"))
}

// BigInt builds a bigint Literal.
func (b *Builder) BigInt(digits string) *estree.Node {
	return b.leaf(estree.KindLiteral, f("value", nil), f("raw", digits+"n"), f("bigint", digits))
}

// Regex builds a regular-expression Literal.
func (b *Builder) Regex(pattern string) *estree.Node {
	return b.leaf(estree.KindLiteral, f("value", nil), f("raw", "/"+pattern+"/"),
		f("regex", map[string]any{"pattern": pattern, "flags": ""}))
}

// Template builds a TemplateLiteral from static parts and interleaved expressions.
func (b *Builder) Template(quasis []string, exprs ...*estree.Node) *estree.Node {
	qs := make([]*estree.Node, len(quasis))
	for i, q := range quasis {
		qs[i] = b.leaf(estree.KindTemplateElement,
			f("value", map[string]any{"raw": q, "cooked": q}), f("tail", i == len(quasis)-1))
	}
	return b.node(estree.KindTemplateLiteral, f("quasis", qs), f("expressions", list(exprs)))
}

// Unary builds a prefix UnaryExpression.
func (b *Builder) Unary(op string, arg *estree.Node) *estree.Node {
	return b.node(estree.KindUnaryExpression, f("operator", op), f("prefix", true), f("argument", arg))
}

// Not builds a logical negation.
func (b *Builder) Not(arg *estree.Node) *estree.Node {
	return b.Unary("!", arg)
}

// Binary builds a BinaryExpression.
func (b *Builder) Binary(op string, left, right *estree.Node) *estree.Node {
	return b.node("BinaryExpression", f("operator", op), f("left", left), f("right", right))
}

// Call builds a CallExpression.
func (b *Builder) Call(callee *estree.Node, args ...*estree.Node) *estree.Node {
	return b.node(estree.KindCallExpression, f("callee", callee), f("arguments", list(args)), f("optional", false))
}

// OptionalCall builds callee?.(args) wrapped in a ChainExpression.
func (b *Builder) OptionalCall(callee *estree.Node, args ...*estree.Node) *estree.Node {
	call := b.node(estree.KindCallExpression, f("callee", callee), f("arguments", list(args)), f("optional", true))
	return b.node(estree.KindChainExpression, f("expression", call))
}

// New builds a NewExpression.
func (b *Builder) New(callee *estree.Node, args ...*estree.Node) *estree.Node {
	return b.node(estree.KindNewExpression, f("callee", callee), f("arguments", list(args)))
}

// Await builds an AwaitExpression.
func (b *Builder) Await(arg *estree.Node) *estree.Node {
	return b.node(estree.KindAwaitExpression, f("argument", arg))
}

// Paren builds a ParenthesizedExpression.
func (b *Builder) Paren(expr *estree.Node) *estree.Node {
	return b.node(estree.KindParenthesizedExpression, f("expression", expr))
}

// Member builds a non-computed member access obj.prop.
func (b *Builder) Member(obj *estree.Node, prop string) *estree.Node {
	return b.node(estree.KindMemberExpression, f("object", obj), f("property", b.Ident(prop)),
		f("computed", false), f("optional", false))
}

// Index builds a computed member access obj[prop].
func (b *Builder) Index(obj, prop *estree.Node) *estree.Node {
	return b.node(estree.KindMemberExpression, f("object", obj), f("property", prop),
		f("computed", true), f("optional", false))
}

// Spread builds a SpreadElement.
func (b *Builder) Spread(arg *estree.Node) *estree.Node {
	return b.node(estree.KindSpreadElement, f("argument", arg))
}

// Object builds an ObjectExpression.
func (b *Builder) Object(props ...*estree.Node) *estree.Node {
	return b.node(estree.KindObjectExpression, f("properties", list(props)))
}

// Prop builds a non-computed Property key: value.
func (b *Builder) Prop(key string, value *estree.Node) *estree.Node {
	return b.node(estree.KindProperty, f("key", b.Ident(key)), f("value", value),
		f("kind", "init"), f("computed", false), f("shorthand", false))
}

// Shorthand builds a shorthand Property {name}.
func (b *Builder) Shorthand(name string) *estree.Node {
	return b.node(estree.KindProperty, f("key", b.Ident(name)), f("value", b.Ident(name)),
		f("kind", "init"), f("computed", false), f("shorthand", true))
}

// ExprStmt builds an ExpressionStatement.
func (b *Builder) ExprStmt(expr *estree.Node) *estree.Node {
	return b.node(estree.KindExpressionStatement, f("expression", expr))
}

// Block builds a BlockStatement.
func (b *Builder) Block(stmts ...*estree.Node) *estree.Node {
	return b.node(estree.KindBlockStatement, f("body", list(stmts)))
}

// Return builds a ReturnStatement; arg may be nil.
func (b *Builder) Return(arg *estree.Node) *estree.Node {
	return b.node(estree.KindReturnStatement, f("argument", arg))
}

// Throw builds a ThrowStatement.
func (b *Builder) Throw(arg *estree.Node) *estree.Node {
	return b.node(estree.KindThrowStatement, f("argument", arg))
}

// If builds an IfStatement; alt may be nil.
func (b *Builder) If(test, cons, alt *estree.Node) *estree.Node {
	return b.node(estree.KindIfStatement, f("test", test), f("consequent", cons), f("alternate", alt))
}

// Cond builds `test ? cons : alt`.
func (b *Builder) Cond(test, cons, alt *estree.Node) *estree.Node {
	return b.node(estree.KindConditionalExpression, f("test", test), f("consequent", cons), f("alternate", alt))
}

// Try builds try { block } catch (param) { handler }.
func (b *Builder) Try(block *estree.Node, handler *estree.Node) *estree.Node {
	return b.node(estree.KindTryStatement, f("block", block), f("handler", handler), f("finalizer", nil))
}

// Catch builds a CatchClause; param may be nil.
func (b *Builder) Catch(param, body *estree.Node) *estree.Node {
	return b.node(estree.KindCatchClause, f("param", param), f("body", body))
}

// Label builds a LabeledStatement.
func (b *Builder) Label(name string, body *estree.Node) *estree.Node {
	return b.node(estree.KindLabeledStatement, f("label", b.Ident(name)), f("body", body))
}

// Break builds a BreakStatement targeting label ("" for none).
func (b *Builder) Break(label string) *estree.Node {
	var l *estree.Node
	if label != "" {
		l = b.Ident(label)
	}
	return b.node(estree.KindBreakStatement, f("label", l))
}

// Func builds a FunctionDeclaration with a block body.
func (b *Builder) Func(name string, params []*estree.Node, body ...*estree.Node) *estree.Node {
	return b.function(estree.KindFunctionDeclaration, name, params, b.Block(body...))
}

// FuncExpr builds a FunctionExpression; name may be empty.
func (b *Builder) FuncExpr(name string, params []*estree.Node, body ...*estree.Node) *estree.Node {
	return b.function(estree.KindFunctionExpression, name, params, b.Block(body...))
}

// Arrow builds an ArrowFunctionExpression. body is a BlockStatement or an
// expression.
func (b *Builder) Arrow(params []*estree.Node, body *estree.Node) *estree.Node {
	return b.node(estree.KindArrowFunctionExpression, f("id", nil), f("params", list(params)), f("body", body),
		f("async", false), f("expression", !body.Is(estree.KindBlockStatement)))
}

func (b *Builder) function(kind, name string, params []*estree.Node, body *estree.Node) *estree.Node {
	var id *estree.Node
	if name != "" {
		id = b.Ident(name)
	}
	return b.node(kind, f("id", id), f("params", list(params)), f("body", body),
		f("async", false), f("generator", false))
}

// Rest builds a RestElement binding ...name.
func (b *Builder) Rest(name string) *estree.Node {
	return b.node(estree.KindRestElement, f("argument", b.Ident(name)))
}

// Default builds an AssignmentPattern name = value.
func (b *Builder) Default(name string, value *estree.Node) *estree.Node {
	return b.node(estree.KindAssignmentPattern, f("left", b.Ident(name)), f("right", value))
}

// ObjectPattern builds a destructuring pattern {a, b}.
func (b *Builder) ObjectPattern(names ...string) *estree.Node {
	props := make([]*estree.Node, len(names))
	for i, n := range names {
		props[i] = b.Shorthand(n)
	}
	return b.node(estree.KindObjectPattern, f("properties", props))
}

// Class builds a ClassDeclaration with an empty body.
func (b *Builder) Class(name string) *estree.Node {
	return b.ClassWith(name, nil)
}

// ClassWith builds a ClassDeclaration with an implements list and members.
func (b *Builder) ClassWith(name string, implements []*estree.Node, members ...*estree.Node) *estree.Node {
	var id *estree.Node
	if name != "" {
		id = b.Ident(name)
	}
	body := b.node("ClassBody", f("body", list(members)))
	return b.node(estree.KindClassDeclaration, f("id", id), f("superClass", nil),
		f("implements", list(implements)), f("body", body))
}

// Heritage builds one implements entry of the given kind naming iface.
func (b *Builder) Heritage(kind, iface string) *estree.Node {
	return b.node(kind, f("expression", b.Ident(iface)))
}

// Method builds a MethodDefinition. A key of "constructor" makes a
// constructor.
func (b *Builder) Method(key string, fn *estree.Node) *estree.Node {
	kind := "method"
	if key == "constructor" {
		kind = "constructor"
	}
	return b.node(estree.KindMethodDefinition, f("key", b.Ident(key)), f("value", fn),
		f("kind", kind), f("computed", false), f("static", false))
}

// Decorator builds `@expr`.
func (b *Builder) Decorator(expr *estree.Node) *estree.Node {
	return b.node("Decorator", f("expression", expr))
}

// DecoratedParam builds a parameter Identifier carrying decorators, the way
// typescript-estree emits `@Inject(T) name`.
func (b *Builder) DecoratedParam(name string, decorators ...*estree.Node) *estree.Node {
	return b.node(estree.KindIdentifier, f("decorators", list(decorators)), f("name", name))
}

// Var builds `var name = init`.
func (b *Builder) Var(name string, init *estree.Node) *estree.Node {
	return b.Decl("var", b.Ident(name), init)
}

// Const builds `const name = init`.
func (b *Builder) Const(name string, init *estree.Node) *estree.Node {
	return b.Decl("const", b.Ident(name), init)
}

// Let builds `let name = init`.
func (b *Builder) Let(name string, init *estree.Node) *estree.Node {
	return b.Decl("let", b.Ident(name), init)
}

// Decl builds a single-declarator VariableDeclaration with any id pattern.
func (b *Builder) Decl(kind string, id, init *estree.Node) *estree.Node {
	d := b.node(estree.KindVariableDeclarator, f("id", id), f("init", init))
	return b.node(estree.KindVariableDeclaration, f("declarations", []*estree.Node{d}), f("kind", kind))
}

// ExportNamed builds `export <decl>`.
func (b *Builder) ExportNamed(decl *estree.Node) *estree.Node {
	return b.node(estree.KindExportNamedDeclaration, f("declaration", decl),
		f("specifiers", []*estree.Node{}), f("source", nil), f("exportKind", "value"))
}

// ExportList builds `export { a, b }` over local names.
func (b *Builder) ExportList(names ...string) *estree.Node {
	return b.exportList("value", nil, names)
}

// ExportTypeList builds `export type { A, B }`.
func (b *Builder) ExportTypeList(names ...string) *estree.Node {
	return b.exportList("type", nil, names)
}

// ExportFrom builds `export { a } from "source"`.
func (b *Builder) ExportFrom(source string, names ...string) *estree.Node {
	return b.exportList("value", b.Str(source), names)
}

func (b *Builder) exportList(kind string, source *estree.Node, names []string) *estree.Node {
	specs := make([]*estree.Node, len(names))
	for i, n := range names {
		specs[i] = b.node(estree.KindExportSpecifier, f("local", b.Ident(n)), f("exported", b.Ident(n)),
			f("exportKind", kind))
	}
	return b.node(estree.KindExportNamedDeclaration, f("declaration", nil), f("specifiers", specs),
		f("source", source), f("exportKind", kind))
}

// ExportAll builds `export * from "source"`.
func (b *Builder) ExportAll(source string) *estree.Node {
	return b.node(estree.KindExportAllDeclaration, f("exported", nil), f("source", b.Str(source)),
		f("exportKind", "value"))
}

// ExportDefault builds `export default <decl>`.
func (b *Builder) ExportDefault(decl *estree.Node) *estree.Node {
	return b.node(estree.KindExportDefaultDeclaration, f("declaration", decl), f("exportKind", "value"))
}

// Import builds `import { a, b } from "source"`.
func (b *Builder) Import(source string, names ...string) *estree.Node {
	specs := make([]*estree.Node, len(names))
	for i, n := range names {
		specs[i] = b.node(estree.KindImportSpecifier, f("imported", b.Ident(n)), f("local", b.Ident(n)))
	}
	return b.node(estree.KindImportDeclaration, f("specifiers", specs), f("source", b.Str(source)),
		f("importKind", "value"))
}

// Typed attaches a type annotation `: typeName` to a fresh Identifier.
func (b *Builder) Typed(name, typeName string) *estree.Node {
	ref := b.node(estree.KindTSTypeReference, f("typeName", b.Ident(typeName)))
	ann := b.node(estree.KindTSTypeAnnotation, f("typeAnnotation", ref))
	return b.node(estree.KindIdentifier, f("name", name), f("typeAnnotation", ann))
}

// TypeAlias builds `type name = typeName`.
func (b *Builder) TypeAlias(name, typeName string) *estree.Node {
	ref := b.node(estree.KindTSTypeReference, f("typeName", b.Ident(typeName)))
	return b.node(estree.KindTSTypeAliasDeclaration, f("id", b.Ident(name)), f("typeAnnotation", ref))
}

// Interface builds an empty `interface name {}`.
func (b *Builder) Interface(name string) *estree.Node {
	body := b.node("TSInterfaceBody", f("body", []*estree.Node{}))
	return b.node(estree.KindTSInterfaceDeclaration, f("id", b.Ident(name)), f("body", body))
}

func list(nodes []*estree.Node) []*estree.Node {
	if nodes == nil {
		return []*estree.Node{}
	}
	return nodes
}
