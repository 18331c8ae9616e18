package control_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/shapelint/pkg/estree"
	"github.com/leapstack-labs/shapelint/pkg/estree/estreetest"
	"github.com/leapstack-labs/shapelint/pkg/lint"
	_ "github.com/leapstack-labs/shapelint/pkg/lint/rules/control" // register rules
)

func runRule(t *testing.T, file *lint.File, ruleID string) []lint.Diagnostic {
	t.Helper()
	analyzer := lint.NewAnalyzer(lint.NewConfig().Only(ruleID))
	diags := analyzer.AnalyzeFile(file)
	for _, d := range diags {
		require.Equal(t, ruleID, d.RuleID)
	}
	return diags
}

func TestGuardClause(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *estreetest.Builder) *estree.Node
		want  int
	}{
		{
			name: "whole body in plain if",
			build: func(b *estreetest.Builder) *estree.Node {
				return b.Func("f", b.Idents("x"),
					b.If(b.Ident("x"), b.Block(b.ExprStmt(b.Call(b.Ident("doWork")))), nil))
			},
			want: 1,
		},
		{
			name: "negated guard with return",
			build: func(b *estreetest.Builder) *estree.Node {
				return b.Func("f", b.Idents("x"), b.If(b.Not(b.Ident("x")), b.Return(nil), nil))
			},
			want: 0,
		},
		{
			name: "negated test wrapping work",
			build: func(b *estreetest.Builder) *estree.Node {
				return b.Func("f", b.Idents("x"),
					b.If(b.Not(b.Ident("x")), b.Block(b.ExprStmt(b.Call(b.Ident("doWork")))), nil))
			},
			want: 1,
		},
		{
			name: "if with else",
			build: func(b *estreetest.Builder) *estree.Node {
				return b.Func("f", b.Idents("x"),
					b.If(b.Ident("x"), b.Block(b.Return(b.Num(1))), b.Block(b.Return(b.Num(2)))))
			},
			want: 0,
		},
		{
			name: "if followed by more work",
			build: func(b *estreetest.Builder) *estree.Node {
				return b.Func("f", b.Idents("x"),
					b.If(b.Ident("x"), b.Block(b.ExprStmt(b.Call(b.Ident("a")))), nil),
					b.ExprStmt(b.Call(b.Ident("b"))))
			},
			want: 0,
		},
		{
			name: "arrow with block body",
			build: func(b *estreetest.Builder) *estree.Node {
				arrow := b.Arrow(b.Idents("x"), b.Block(b.If(b.Ident("x"), b.Block(b.ExprStmt(b.Call(b.Ident("go")))), nil)))
				return b.Const("f", arrow)
			},
			want: 1,
		},
		{
			name: "arrow with expression body",
			build: func(b *estreetest.Builder) *estree.Node {
				return b.Const("f", b.Arrow(b.Idents("x"), b.Call(b.Ident("g"), b.Ident("x"))))
			},
			want: 0,
		},
		{
			name: "nested functions report independently",
			build: func(b *estreetest.Builder) *estree.Node {
				inner := b.FuncExpr("", nil, b.If(b.Ident("y"), b.Block(b.ExprStmt(b.Call(b.Ident("z")))), nil))
				return b.Func("outer", nil,
					b.If(b.Ident("x"), b.Block(b.ExprStmt(b.Call(b.Ident("run"), inner))), nil))
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := estreetest.New()
			prog := b.Program(tt.build(b))

			diags := runRule(t, &lint.File{Path: "f.js", Program: prog}, "guard-clause")

			assert.Len(t, diags, tt.want)
			for _, d := range diags {
				assert.Equal(t, "preferGuardClause", d.MessageID)
				assert.Equal(t, lint.SeverityWarning, d.Severity)
			}
		})
	}
}

func TestGuardClause_ReportsFunction(t *testing.T) {
	b := estreetest.New()
	fn := b.Func("f", b.Idents("x"), b.If(b.Ident("x"), b.Block(b.Return(b.Ident("x"))), nil))
	prog := b.Program(fn)

	diags := runRule(t, &lint.File{Program: prog}, "guard-clause")

	require.Len(t, diags, 1)
	assert.Equal(t, fn.Span.Start, diags[0].Pos)
	assert.Equal(t, fn.Span.End, diags[0].EndPos)
}

// catchProgram builds `try { f(); } catch (e) <block>` where the catch block
// covers the last brace-delimited region of src.
func catchProgram(b *estreetest.Builder, src string, stmts ...*estree.Node) *estree.Node {
	start, end := strings.LastIndex(src, "{"), strings.LastIndex(src, "}")+1
	block := estreetest.Reposition(b.Block(stmts...), start, end)
	return b.Program(b.Try(b.Block(b.ExprStmt(b.Call(b.Ident("f")))), b.Catch(b.Ident("e"), block)))
}

func TestNonEmptyCatch(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		stmts    func(b *estreetest.Builder) []*estree.Node
		noSource bool
		wantDiag bool
	}{
		{
			name:     "empty block",
			src:      "try { f(); } catch (e) { }",
			wantDiag: true,
		},
		{
			name:     "block comment only",
			src:      "try { f(); } catch (e) { /* ignore */ }",
			wantDiag: true,
		},
		{
			name:     "line comment only",
			src:      "try { f(); } catch (e) {\n  // ignore\n}",
			wantDiag: true,
		},
		{
			name:     "empty block without source",
			src:      "try { f(); } catch (e) { }",
			noSource: true,
			wantDiag: true,
		},
		{
			name: "handles the error",
			src:  "try { f(); } catch (e) { log(e); }",
			stmts: func(b *estreetest.Builder) []*estree.Node {
				return []*estree.Node{b.ExprStmt(b.Call(b.Ident("log"), b.Ident("e")))}
			},
			wantDiag: false,
		},
		{
			name: "comment and statement",
			src:  "try { f(); } catch (e) { /* retry */ retry(); }",
			stmts: func(b *estreetest.Builder) []*estree.Node {
				return []*estree.Node{b.ExprStmt(b.Call(b.Ident("retry")))}
			},
			wantDiag: false,
		},
		{
			name: "statement that looks like a comment opener",
			src:  "try { f(); } catch (e) { log(\"/*\"); }",
			stmts: func(b *estreetest.Builder) []*estree.Node {
				return []*estree.Node{b.ExprStmt(b.Call(b.Ident("log"), b.Str("/*")))}
			},
			wantDiag: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := estreetest.New()
			var stmts []*estree.Node
			if tt.stmts != nil {
				stmts = tt.stmts(b)
			}
			file := &lint.File{Path: "c.js", Source: tt.src, Program: catchProgram(b, tt.src, stmts...)}
			if tt.noSource {
				file.Source = ""
			}

			diags := runRule(t, file, "non-empty-catch")

			if tt.wantDiag {
				require.Len(t, diags, 1)
				assert.Equal(t, "emptyCatch", diags[0].MessageID)
				assert.Equal(t, lint.SeverityError, diags[0].Severity)
			} else {
				assert.Empty(t, diags)
			}
		})
	}
}

func TestNonEmptyCatch_Decoded(t *testing.T) {
	src := "try { f(); } catch (e) { /* ignore */ }"
	data, err := os.ReadFile("testdata/comment_only_catch.estree.json")
	require.NoError(t, err)

	prog, err := estree.DecodeProgram(data, src)
	require.NoError(t, err)

	diags := runRule(t, &lint.File{Path: "c.js", Source: src, Program: prog}, "non-empty-catch")

	require.Len(t, diags, 1)
	assert.Equal(t, 1, diags[0].Pos.Line)
	assert.Equal(t, 14, diags[0].Pos.Column)
}
