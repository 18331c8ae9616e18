// Package loader discovers syntax-tree files on disk and turns them into
// lint.File values.
//
// Two layouts are accepted. An envelope file carries everything in one JSON
// document:
//
//	{"path": "src/a.ts", "source": "...", "program": {...}, "scope": {...}}
//
// A bare file holds only the ESTree Program; its source is read from the
// same path without the ".estree.json" suffix when that file exists.
//
// Node offsets are read as UTF-16 code units, the unit acorn, espree and
// typescript-estree emit. With source text available they are converted to
// byte offsets; without it they are kept as emitted.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	jsoniter "github.com/json-iterator/go"

	"github.com/leapstack-labs/shapelint/pkg/estree"
	"github.com/leapstack-labs/shapelint/pkg/lint"
	"github.com/leapstack-labs/shapelint/pkg/scope"
	"github.com/leapstack-labs/shapelint/pkg/token"
)

// Suffix is the file name suffix of bare syntax-tree files.
const Suffix = ".estree.json"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNoInputs is returned by Discover when nothing matched.
var ErrNoInputs = errors.New("no input files matched")

// Options controls input discovery.
type Options struct {
	// Include patterns are matched against slash-separated paths relative
	// to the directory being searched.
	Include []string
	// Exclude patterns drop matches; they are checked against the same
	// relative path.
	Exclude []string
}

// Discover returns the syntax-tree files named by paths, sorted and without
// duplicates. A file path is taken as is; a directory is searched with the
// include and exclude patterns.
func Discover(opts Options, paths ...string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", root, err)
		}
		if !info.IsDir() {
			add(root)
			continue
		}
		matches, err := discoverDir(root, opts)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			add(m)
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoInputs, strings.Join(paths, ", "))
	}
	sort.Strings(out)
	return out, nil
}

func discoverDir(root string, opts Options) ([]string, error) {
	include := opts.Include
	if len(include) == 0 {
		include = []string{"**/*" + Suffix}
	}

	fsys := os.DirFS(root)
	var out []string
	for _, pattern := range include {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid include pattern %q", pattern)
		}
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("failed to glob %s in %s: %w", pattern, root, err)
		}
		for _, rel := range matches {
			excluded, err := isExcluded(rel, opts.Exclude)
			if err != nil {
				return nil, err
			}
			if !excluded {
				out = append(out, filepath.Join(root, filepath.FromSlash(rel)))
			}
		}
	}
	return out, nil
}

func isExcluded(rel string, patterns []string) (bool, error) {
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, rel)
		if err != nil {
			return false, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// envelope is the single-document input layout.
type envelope struct {
	Path    string              `json:"path"`
	Source  string              `json:"source"`
	Program jsoniter.RawMessage `json:"program"`
	Scope   jsoniter.RawMessage `json:"scope"`
}

// Load reads one syntax-tree file.
func Load(path string) (*lint.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes data read from path. Errors wrap estree.ErrMalformed,
// estree.ErrNotProgram or scope.ErrMalformed.
func Parse(path string, data []byte) (*lint.File, error) {
	if jsoniter.Get(data, "program").ValueType() == jsoniter.ObjectValue {
		return parseEnvelope(path, data)
	}

	src, err := readSource(path)
	if err != nil {
		return nil, err
	}
	prog, err := estree.DecodeProgram(data, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &lint.File{Path: sourcePath(path), Source: src, Program: prog}, nil
}

func parseEnvelope(path string, data []byte) (*lint.File, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, estree.ErrMalformed, err)
	}
	prog, err := estree.DecodeProgram(env.Program, env.Source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	file := &lint.File{Path: env.Path, Source: env.Source, Program: prog}
	if file.Path == "" {
		file.Path = path
	}
	if len(env.Scope) > 0 && string(env.Scope) != "null" {
		var lines *token.LineIndex
		if env.Source != "" {
			lines = token.NewLineIndex(env.Source)
		}
		table, err := scope.Decode(env.Scope, lines)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		file.Bindings = table
	}
	return file, nil
}

// sourcePath strips Suffix, so diagnostics name the file the tree came from.
func sourcePath(path string) string {
	if trimmed := strings.TrimSuffix(path, Suffix); trimmed != path && trimmed != "" {
		return trimmed
	}
	return path
}

func readSource(path string) (string, error) {
	src := sourcePath(path)
	if src == path {
		return "", nil
	}
	data, err := os.ReadFile(src)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read source %s: %w", src, err)
	}
	return string(data), nil
}
