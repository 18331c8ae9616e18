package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/shapelint/pkg/estree"
	"github.com/leapstack-labs/shapelint/pkg/estree/estreetest"
	"github.com/leapstack-labs/shapelint/pkg/lint/shape"
)

func TestClassifyExport(t *testing.T) {
	b := estreetest.New()

	tests := []struct {
		name        string
		node        *estree.Node
		want        shape.ExportInfo
		localReExp  bool
		remoteReExp bool
	}{
		{
			name: "named declaration",
			node: b.ExportNamed(b.Const("x", b.Num(1))),
		},
		{
			name:       "local list",
			node:       b.ExportList("a", "b"),
			localReExp: true,
		},
		{
			name:       "type list",
			node:       b.ExportTypeList("A"),
			want:       shape.ExportInfo{IsTypeOnly: true},
			localReExp: true,
		},
		{
			name:        "remote list",
			node:        b.ExportFrom("./m", "a"),
			want:        shape.ExportInfo{HasSource: true},
			remoteReExp: true,
		},
		{
			name:        "wildcard",
			node:        b.ExportAll("./m"),
			want:        shape.ExportInfo{IsWildcard: true, HasSource: true},
			remoteReExp: true,
		},
		{
			name: "default",
			node: b.ExportDefault(b.Ident("x")),
			want: shape.ExportInfo{IsDefault: true},
		},
		{
			name: "interface",
			node: b.ExportNamed(b.Interface("I")),
			want: shape.ExportInfo{IsTypeOnly: true},
		},
		{
			name: "type alias",
			node: b.ExportNamed(b.TypeAlias("T", "U")),
			want: shape.ExportInfo{IsTypeOnly: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, ok := shape.ClassifyExport(tt.node)
			require.True(t, ok)
			assert.Equal(t, tt.want.IsDefault, info.IsDefault, "IsDefault")
			assert.Equal(t, tt.want.IsTypeOnly, info.IsTypeOnly, "IsTypeOnly")
			assert.Equal(t, tt.want.IsWildcard, info.IsWildcard, "IsWildcard")
			assert.Equal(t, tt.want.HasSource, info.HasSource, "HasSource")
			assert.Equal(t, tt.localReExp, info.IsLocalReExport(), "IsLocalReExport")
			assert.Equal(t, tt.remoteReExp, info.IsRemoteReExport(), "IsRemoteReExport")
		})
	}

	_, ok := shape.ClassifyExport(b.Const("x", nil))
	assert.False(t, ok)
	assert.True(t, shape.IsExport(b.ExportAll("./m")))
	assert.False(t, shape.IsExport(b.Import("./m", "a")))
}

func TestClassifyExport_Specifiers(t *testing.T) {
	b := estreetest.New()
	decl := b.Func("f", nil)

	info, ok := shape.ClassifyExport(b.ExportDefault(decl))
	require.True(t, ok)
	assert.Same(t, decl, info.Declaration)
	assert.Empty(t, info.Specifiers)

	info, ok = shape.ClassifyExport(b.ExportList("a", "b"))
	require.True(t, ok)
	assert.Nil(t, info.Declaration)
	require.Len(t, info.Specifiers, 2)
	assert.Equal(t, "b", info.Specifiers[1].Child("local").Name())
}

func TestIsPrimitiveConstant(t *testing.T) {
	b := estreetest.New()

	tests := []struct {
		name string
		decl *estree.Node
		want bool
	}{
		{"number const", b.Const("X", b.Num(1)), true},
		{"string const", b.Const("X", b.Str("a")), true},
		{"object const", b.Const("X", b.Object(b.Prop("a", b.Num(1)))), false},
		{"let", b.Let("X", b.Num(1)), false},
		{"uninitialized", b.Decl("const", b.Ident("X"), nil), false},
		{"function", b.Func("f", nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shape.IsPrimitiveConstant(tt.decl))
		})
	}
}
