package usage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/shapelint/pkg/estree"
	"github.com/leapstack-labs/shapelint/pkg/estree/estreetest"
	"github.com/leapstack-labs/shapelint/pkg/lint/usage"
	"github.com/leapstack-labs/shapelint/pkg/scope"
	"github.com/leapstack-labs/shapelint/pkg/token"
)

// occurrences returns the classification of every identifier named name,
// in document order.
func occurrences(root *estree.Node, name string) []usage.Occurrence {
	var out []usage.Occurrence
	estree.Walk(root, func(n *estree.Node) bool {
		if n.Name() == name {
			out = append(out, usage.Classify(n))
		}
		return true
	})
	return out
}

func TestClassify(t *testing.T) {
	b := estreetest.New()
	a := func() *estree.Node { return b.Ident("a") }

	tests := []struct {
		name string
		root *estree.Node
		want []usage.Occurrence
	}{
		{
			name: "call argument",
			root: b.Program(b.ExprStmt(b.Call(b.Ident("f"), a()))),
			want: []usage.Occurrence{usage.Reference},
		},
		{
			name: "function name and parameter",
			root: b.Program(b.Func("a", b.Idents("a"))),
			want: []usage.Occurrence{usage.DeclarationSite, usage.PatternBinding},
		},
		{
			name: "class name",
			root: b.Program(b.Class("a")),
			want: []usage.Occurrence{usage.DeclarationSite},
		},
		{
			name: "variable declarator and initializer",
			root: b.Program(b.Const("a", b.Member(a(), "b"))),
			want: []usage.Occurrence{usage.DeclarationSite, usage.Reference},
		},
		{
			name: "member property",
			root: b.Program(b.ExprStmt(b.Member(b.Ident("o"), "a"))),
			want: []usage.Occurrence{usage.NotApplicable},
		},
		{
			name: "computed member property",
			root: b.Program(b.ExprStmt(b.Index(b.Ident("o"), a()))),
			want: []usage.Occurrence{usage.Reference},
		},
		{
			name: "object key and shorthand",
			root: b.Program(b.ExprStmt(b.Object(b.Prop("a", b.Num(1)), b.Shorthand("a")))),
			want: []usage.Occurrence{usage.NotApplicable, usage.NotApplicable, usage.Reference},
		},
		{
			name: "catch parameter",
			root: b.Program(b.Try(b.Block(), b.Catch(a(), b.Block()))),
			want: []usage.Occurrence{usage.PatternBinding},
		},
		{
			name: "import specifier",
			root: b.Program(b.Import("./m", "a")),
			want: []usage.Occurrence{usage.DeclarationSite, usage.DeclarationSite},
		},
		{
			name: "export specifier",
			root: b.Program(b.ExportList("a")),
			want: []usage.Occurrence{usage.DeclarationSite, usage.DeclarationSite},
		},
		{
			name: "label and break",
			root: b.Program(b.Label("a", b.Block(b.Break("a")))),
			want: []usage.Occurrence{usage.NotApplicable, usage.NotApplicable},
		},
		{
			name: "type annotation",
			root: b.Program(b.Func("f", []*estree.Node{b.Typed("x", "a")})),
			want: []usage.Occurrence{usage.TypeOnly},
		},
		{
			name: "implements clause",
			root: b.Program(b.ClassWith("C", []*estree.Node{b.Heritage(estree.KindTSClassImplements, "a")})),
			want: []usage.Occurrence{usage.TypeOnly},
		},
		{
			name: "legacy implements clause",
			root: b.Program(b.ClassWith("C", []*estree.Node{b.Heritage(estree.KindTSExpressionWithTypeArguments, "a")})),
			want: []usage.Occurrence{usage.TypeOnly},
		},
		{
			name: "type alias",
			root: b.Program(b.TypeAlias("T", "a")),
			want: []usage.Occurrence{usage.TypeOnly},
		},
		{
			name: "destructured parameter",
			root: b.Program(b.Func("f", []*estree.Node{b.ObjectPattern("a")})),
			want: []usage.Occurrence{usage.NotApplicable, usage.PatternBinding},
		},
		{
			name: "rest parameter",
			root: b.Program(b.Func("f", []*estree.Node{b.Rest("a")})),
			want: []usage.Occurrence{usage.PatternBinding},
		},
		{
			name: "parameter default value",
			root: b.Program(b.Func("f", []*estree.Node{b.Default("x", a())})),
			want: []usage.Occurrence{usage.Reference},
		},
		{
			name: "destructured declarator",
			root: b.Program(b.Decl("const", b.ObjectPattern("a"), b.Ident("o"))),
			want: []usage.Occurrence{usage.NotApplicable, usage.PatternBinding},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, occurrences(tt.root, "a"))
		})
	}
}

func TestOccurrenceString(t *testing.T) {
	assert.Equal(t, "reference", usage.Reference.String())
	assert.Equal(t, "type-only", usage.TypeOnly.String())
	assert.Equal(t, "not-applicable", usage.NotApplicable.String())
}

func TestScanResolver(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *estreetest.Builder) []*estree.Node
		want  bool
	}{
		{
			name: "only exported",
			build: func(b *estreetest.Builder) []*estree.Node {
				return []*estree.Node{b.Const("a", b.Num(1))}
			},
			want: false,
		},
		{
			name: "used in a call",
			build: func(b *estreetest.Builder) []*estree.Node {
				return []*estree.Node{
					b.Const("a", b.Num(1)),
					b.ExprStmt(b.Call(b.Ident("use"), b.Ident("a"))),
				}
			},
			want: true,
		},
		{
			name: "only non-qualifying occurrences",
			build: func(b *estreetest.Builder) []*estree.Node {
				return []*estree.Node{
					b.Const("a", b.Num(1)),
					b.ExprStmt(b.Member(b.Ident("o"), "a")),
					b.ExprStmt(b.Object(b.Prop("a", b.Num(2)))),
					b.Label("a", b.Block(b.Break("a"))),
					b.Func("g", []*estree.Node{b.Typed("x", "a")}),
					b.Try(b.Block(), b.Catch(b.Ident("a"), b.Block())),
				}
			},
			want: false,
		},
		{
			// An inner binding shadowing the top-level name still counts.
			name: "shadowed inner use",
			build: func(b *estreetest.Builder) []*estree.Node {
				return []*estree.Node{
					b.Const("a", b.Num(1)),
					b.Func("f", b.Idents("a"), b.Return(b.Ident("a"))),
				}
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := estreetest.New()
			stmts := tt.build(b)
			export := b.ExportDefault(b.Ident("a"))
			prog := b.Program(append(stmts, export)...)

			r := usage.New(prog, nil)
			assert.Equal(t, tt.want, r.HasReference("a", export.Span))
		})
	}
}

func TestScanResolver_ExclusionBySpan(t *testing.T) {
	b := estreetest.New()
	decl := b.Const("a", b.Num(1))
	export := b.ExportDefault(b.Ident("a"))
	prog := b.Program(decl, export)

	r := usage.New(prog, nil)
	assert.True(t, r.HasReference("a"))
	assert.False(t, r.HasReference("a", export.Span))

	// A different node with the same byte range excludes the same subtree.
	twin := estreetest.Reposition(b.Ident("x"), export.Span.Start.Offset, export.Span.End.Offset)
	assert.False(t, r.HasReference("a", twin.Span))
}

func TestResolver_Idempotent(t *testing.T) {
	b := estreetest.New()
	decl := b.Const("a", b.Num(1))
	use := b.ExprStmt(b.Call(b.Ident("log"), b.Ident("a")))
	export := b.ExportDefault(b.Ident("a"))
	prog := b.Program(decl, use, export)

	table := scope.NewModule(&scope.Variable{Name: "a", References: []scope.Reference{
		{Span: use.Span},
	}})

	for _, r := range []usage.Resolver{usage.New(prog, nil), usage.New(prog, table)} {
		first := r.HasReference("a", export.Span)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, r.HasReference("a", export.Span))
		}
		assert.True(t, first)
		assert.False(t, r.HasReference("missing", export.Span))
	}
}

func TestTableResolver(t *testing.T) {
	span := func(start, end int) token.Span {
		return token.Span{Start: token.Position{Offset: start}, End: token.Position{Offset: end}}
	}
	export := span(100, 120)

	tests := []struct {
		name string
		refs []scope.Reference
		want bool
	}{
		{name: "no references", want: false},
		{name: "declaration write", refs: []scope.Reference{{Span: span(6, 7), Init: true}}, want: false},
		{name: "type-only", refs: []scope.Reference{{Span: span(30, 31), TypeOnly: true}}, want: false},
		{name: "inside export", refs: []scope.Reference{{Span: span(115, 116)}}, want: false},
		{name: "outside export", refs: []scope.Reference{{Span: span(6, 7), Init: true}, {Span: span(50, 51)}}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := scope.NewModule(&scope.Variable{Name: "a", Kind: scope.KindVariable, References: tt.refs})
			r := usage.New(nil, table)
			assert.Equal(t, tt.want, r.HasReference("a", export))
		})
	}
}

func TestDeclarations(t *testing.T) {
	b := estreetest.New()
	prog := b.Program(
		b.Import("./m", "imp"),
		b.Func("fn", nil),
		b.ExportNamed(b.Class("Cls")),
		b.ExportNamed(b.Const("v", b.Num(1))),
		b.Decl("let", b.ObjectPattern("x", "y"), b.Ident("o")),
		b.ExportDefault(b.Ident("v")),
		b.ExprStmt(b.Call(b.Ident("fn"))),
		b.Const("v", b.Num(2)),
	)

	decls := usage.Declarations(prog)

	type pair struct {
		name string
		kind usage.Kind
	}
	var got []pair
	for _, d := range decls {
		got = append(got, pair{d.Name, d.Kind})
	}
	assert.Equal(t, []pair{
		{"imp", usage.KindImport},
		{"fn", usage.KindFunction},
		{"Cls", usage.KindClass},
		{"v", usage.KindVariable},
		{"x", usage.KindVariable},
		{"y", usage.KindVariable},
		{"v", usage.KindVariable},
	}, got)

	vs := usage.Lookup(decls, "v")
	require.Len(t, vs, 2)
	assert.Equal(t, estree.KindVariableDeclarator, vs[0].Node.Type)
	assert.Empty(t, usage.Lookup(decls, "nope"))
}

func TestBindingNames(t *testing.T) {
	b := estreetest.New()

	assert.Equal(t, []string{"a"}, usage.BindingNames(b.Ident("a")))
	assert.Equal(t, []string{"a", "b"}, usage.BindingNames(b.ObjectPattern("a", "b")))
	assert.Equal(t, []string{"r"}, usage.BindingNames(b.Rest("r")))
	assert.Equal(t, []string{"d"}, usage.BindingNames(b.Default("d", b.Num(1))))
	assert.Nil(t, usage.BindingNames(nil))
}
