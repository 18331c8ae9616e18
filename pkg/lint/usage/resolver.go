// Package usage answers whether a top-level binding is referenced elsewhere
// in a file.
//
// Two strategies implement Resolver: a lookup in the host binding table when
// one is available, and a full scan of the tree otherwise. Neither models
// nested scopes: an inner binding that shadows a top-level name counts as a
// use of the top-level binding.
package usage

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/shapelint/pkg/estree"
	"github.com/leapstack-labs/shapelint/pkg/scope"
	"github.com/leapstack-labs/shapelint/pkg/token"
)

// Resolver reports whether a name has a qualifying reference outside the
// excluded spans.
type Resolver interface {
	HasReference(name string, exclude ...token.Span) bool
}

// New returns a resolver for one file. The binding table is preferred when
// non-nil. Results are memoized for the resolver's lifetime, so a resolver
// must not outlive the analysis of its file.
func New(program *estree.Node, table scope.Table) Resolver {
	if table != nil {
		return &tableResolver{table: table, memo: make(map[string]bool)}
	}
	return &scanResolver{program: program, memo: make(map[string]bool)}
}

// memoKey identifies one query: a name plus the excluded byte ranges.
func memoKey(name string, exclude []token.Span) string {
	var sb strings.Builder
	sb.WriteString(name)
	for _, s := range exclude {
		sb.WriteByte('|')
		sb.WriteString(strconv.Itoa(s.Start.Offset))
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(s.End.Offset))
	}
	return sb.String()
}

// tableResolver answers from the host binding table. References recorded as
// declaration-site writes or type-only uses do not qualify, and references
// inside an excluded span are ignored.
type tableResolver struct {
	table scope.Table
	memo  map[string]bool
}

func (r *tableResolver) HasReference(name string, exclude ...token.Span) bool {
	key := memoKey(name, exclude)
	if v, ok := r.memo[key]; ok {
		return v
	}
	v := r.resolve(name, exclude)
	r.memo[key] = v
	return v
}

func (r *tableResolver) resolve(name string, exclude []token.Span) bool {
	for _, v := range r.table.Lookup(name) {
		for _, ref := range v.References {
			if ref.Init || ref.TypeOnly || excluded(ref.Span, exclude) {
				continue
			}
			return true
		}
	}
	return false
}

func excluded(span token.Span, exclude []token.Span) bool {
	for _, x := range exclude {
		if x.Encloses(span) {
			return true
		}
	}
	return false
}

// scanResolver walks the whole program and classifies every occurrence of
// the name. Subtrees whose span is identical to an excluded span are skipped.
type scanResolver struct {
	program *estree.Node
	memo    map[string]bool
}

func (r *scanResolver) HasReference(name string, exclude ...token.Span) bool {
	key := memoKey(name, exclude)
	if v, ok := r.memo[key]; ok {
		return v
	}
	v := r.scan(name, exclude)
	r.memo[key] = v
	return v
}

func (r *scanResolver) scan(name string, exclude []token.Span) bool {
	found := false
	estree.WalkCursor(r.program, func(c estree.Cursor) bool {
		if found {
			return false
		}
		for _, x := range exclude {
			if c.Node.Span.Same(x) {
				return false
			}
		}
		if c.Node.Name() == name && classify(c.Node, c.Parent, c.Key) == Reference {
			found = true
			return false
		}
		return true
	})
	return found
}
