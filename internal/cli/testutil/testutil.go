// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/shapelint/internal/cli/output"
)

// Program bodies for common fixtures. Each matches the source in the
// corresponding Source constant so offsets resolve to real lines.
const (
	// CleanSource triggers no bundled rule.
	CleanSource  = "const x = 1;"
	CleanProgram = `{"type":"Program","range":[0,12],"sourceType":"module","body":[
		{"type":"VariableDeclaration","kind":"const","range":[0,12],"declarations":[
			{"type":"VariableDeclarator","range":[6,11],
			 "id":{"type":"Identifier","name":"x","range":[6,7]},
			 "init":{"type":"Literal","value":1,"raw":"1","range":[10,11]}}]}]}`

	// VarSource triggers style/no-var.
	VarSource  = "var x = 1;"
	VarProgram = `{"type":"Program","range":[0,10],"sourceType":"module","body":[
		{"type":"VariableDeclaration","kind":"var","range":[0,10],"declarations":[
			{"type":"VariableDeclarator","range":[4,9],
			 "id":{"type":"Identifier","name":"x","range":[4,5]},
			 "init":{"type":"Literal","value":1,"raw":"1","range":[8,9]}}]}]}`

	// EmptyCatchSource triggers non-empty-catch on line 2.
	EmptyCatchSource  = "try { a(); }\ncatch (e) {}"
	EmptyCatchProgram = `{"type":"Program","range":[0,25],"sourceType":"module","body":[
		{"type":"TryStatement","range":[0,25],
		 "block":{"type":"BlockStatement","range":[4,12],"body":[
			{"type":"ExpressionStatement","range":[6,10],"expression":
				{"type":"CallExpression","range":[6,9],"arguments":[],
				 "callee":{"type":"Identifier","name":"a","range":[6,7]}}}]},
		 "handler":{"type":"CatchClause","range":[13,25],
			"param":{"type":"Identifier","name":"e","range":[20,21]},
			"body":{"type":"BlockStatement","range":[23,25],"body":[]}},
		 "finalizer":null}]}`
)

// WriteEnvelope writes an envelope input named name under dir and returns
// its path. The envelope's own path field is name.
func WriteEnvelope(t *testing.T, dir, name, source, program string) string {
	t.Helper()

	doc := map[string]any{
		"path":    name,
		"source":  source,
		"program": jsoniter.RawMessage(program),
	}
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(doc)
	require.NoError(t, err)

	path := filepath.Join(dir, name+".estree.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a new test renderer with the specified mode and TTY state.
// Output is captured in buffers for inspection.
func NewTestRenderer(mode output.Mode, isTTY bool) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, errOut, isTTY, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// NewTestRendererAuto creates a new test renderer with auto mode detection.
// In tests, non-TTY defaults to markdown output.
func NewTestRendererAuto() *TestRenderer {
	return NewTestRenderer(output.ModeAuto, false)
}

// NewTestRendererText creates a new test renderer in text mode without a
// terminal, so output carries no styling.
func NewTestRendererText() *TestRenderer {
	return NewTestRenderer(output.ModeText, false)
}

// NewTestRendererMarkdown creates a new test renderer in markdown mode.
func NewTestRendererMarkdown() *TestRenderer {
	return NewTestRenderer(output.ModeMarkdown, false)
}

// NewTestRendererJSON creates a new test renderer in JSON mode.
func NewTestRendererJSON() *TestRenderer {
	return NewTestRenderer(output.ModeJSON, false)
}

// Output returns the stdout output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ErrorOutput returns the stderr output as a string.
func (tr *TestRenderer) ErrorOutput() string {
	return tr.ErrOut.String()
}

// Reset clears both output buffers.
func (tr *TestRenderer) Reset() {
	tr.Out.Reset()
	tr.ErrOut.Reset()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	assert.False(t, ansiPattern.MatchString(s), "string contains ANSI escape codes: %q", s)
}

// AssertValidMarkdown performs basic markdown validation.
// It checks for unclosed code fences and empty headers.
func AssertValidMarkdown(t *testing.T, md string) {
	t.Helper()

	fenceCount := strings.Count(md, "```")
	assert.Zero(t, fenceCount%2, "unbalanced code fences in markdown: found %d occurrences", fenceCount)

	for i, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") && strings.TrimLeft(trimmed, "# ") == "" {
			t.Errorf("empty header at line %d: %q", i+1, line)
		}
	}
}
