package estree_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/shapelint/pkg/estree"
)

const guardSource = "function f(x) { if (x) { return g(x); } }"

func TestDecodeProgram(t *testing.T) {
	data, err := os.ReadFile("testdata/guard.estree.json")
	require.NoError(t, err)

	prog, err := estree.DecodeProgram(data, guardSource)
	require.NoError(t, err)

	assert.Equal(t, estree.KindProgram, prog.Type)
	require.Len(t, prog.Body(), 1)

	fn := prog.Body()[0]
	assert.Equal(t, estree.KindFunctionDeclaration, fn.Type)
	assert.Equal(t, "f", fn.Child("id").Name())
	assert.Same(t, prog, fn.Parent())
	assert.False(t, fn.Bool("async"))

	ifStmt := fn.Child("body").Body()[0]
	assert.Equal(t, estree.KindIfStatement, ifStmt.Type)
	assert.True(t, ifStmt.Has("alternate"))
	assert.Nil(t, ifStmt.Child("alternate"))

	ret := ifStmt.Child("consequent").Body()[0]
	assert.Equal(t, "return g(x);", ret.Span.Text(guardSource))
	assert.Equal(t, 1, ret.Span.Start.Line)
	assert.Equal(t, 26, ret.Span.Start.Column)
}

func TestDecodeLoc(t *testing.T) {
	data := []byte(`{"type":"Program","range":[0,5],
		"loc":{"start":{"line":1,"column":0},"end":{"line":2,"column":1}},
		"body":[]}`)

	prog, err := estree.Decode(data, "")
	require.NoError(t, err)

	assert.Equal(t, 0, prog.Span.Start.Offset)
	assert.Equal(t, 5, prog.Span.End.Offset)
	assert.Equal(t, 1, prog.Span.Start.Column)
	assert.Equal(t, 2, prog.Span.End.Line)
	assert.Equal(t, 2, prog.Span.End.Column)
	assert.Empty(t, prog.Body())
	assert.False(t, prog.Has("loc"))
	assert.False(t, prog.Has("range"))
}

func TestDecodeUTF16Offsets(t *testing.T) {
	src := "a(\"ü\");b"
	data := []byte(`{"type":"Program","range":[0,8],"body":[
		{"type":"ExpressionStatement","range":[7,8],
			"loc":{"start":{"line":1,"column":7},"end":{"line":1,"column":8}},
			"expression":{"type":"Identifier","range":[7,8],"name":"b"}}]}`)

	prog, err := estree.DecodeProgram(data, src)
	require.NoError(t, err)

	stmt := prog.Body()[0]
	assert.Equal(t, "b", stmt.Span.Text(src))
	assert.Equal(t, 8, stmt.Span.Start.Offset)
	assert.Equal(t, 8, stmt.Span.Start.Column)
	assert.Equal(t, src, prog.Span.Text(src))
}

func TestDecodeIgnoresParentLinks(t *testing.T) {
	data := []byte(`{"type":"ExpressionStatement","start":0,"end":1,
		"parent":{"type":"Program","body":[]},
		"expression":{"type":"Identifier","start":0,"end":1,"name":"a"}}`)

	stmt, err := estree.Decode(data, "a")
	require.NoError(t, err)

	assert.Nil(t, stmt.Parent())
	assert.False(t, stmt.Has("parent"))
	assert.Len(t, estree.Children(stmt), 1)
}

func TestDecodeNonNodeData(t *testing.T) {
	data := []byte(`{"type":"Literal","start":0,"end":4,"value":null,"raw":"/a/",
		"regex":{"pattern":"a","flags":""}}`)

	lit, err := estree.Decode(data, "")
	require.NoError(t, err)

	v, ok := lit.Value("regex")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"pattern": "a", "flags": ""}, v)
	assert.Empty(t, estree.Children(lit))
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{name: "invalid json", data: `{"type":`, want: estree.ErrMalformed},
		{name: "not an object", data: `[1,2]`, want: estree.ErrMalformed},
		{name: "object without type", data: `{"body":[]}`, want: estree.ErrMalformed},
		{name: "not a program", data: `{"type":"Identifier","name":"x"}`, want: estree.ErrNotProgram},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := estree.DecodeProgram([]byte(tt.data), "")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
