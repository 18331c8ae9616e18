package exports

import (
	"log/slog"

	"github.com/leapstack-labs/shapelint/pkg/estree"
	"github.com/leapstack-labs/shapelint/pkg/lint"
	"github.com/leapstack-labs/shapelint/pkg/lint/shape"
	"github.com/leapstack-labs/shapelint/pkg/lint/usage"
)

func init() {
	lint.Register(ExportOrdering)
}

// OrderingOptions configures ExportOrdering.
type OrderingOptions struct {
	// AllowReExport exempts `export * from` and remote `export { } from`
	// statements from the ordering check.
	AllowReExport bool `mapstructure:"allowReExport"`
}

// ExportOrdering keeps a module's exports after its declarations and rejects
// exports that only add indirection.
var ExportOrdering = lint.RuleDef{
	ID:          "export-ordering",
	Name:        "exports.ordering",
	Group:       "exports",
	Description: "Exports must follow declarations and must not merely re-export local names.",
	Severity:    lint.SeverityWarning,
	Stability:   lint.StabilityStable,
	Create:      createExportOrdering,
	ConfigKeys:  []string{"allowReExport"},
	Messages: map[string]string{
		"localReExport":           "Export the declaration inline instead of re-exporting local names in a list.",
		"aliasExport":             "Do not export an alias of another binding; export the original directly.",
		"indirectDefault":         "Export the declaration as default directly instead of exporting its name.",
		"exportBeforeDeclaration": "Exports must come after all other top-level statements.",
	},

	Rationale: `A module reads best as "declarations, then exports". Export lists that
repeat local names, exports that alias another binding, and default exports of
a name declared elsewhere all make the reader jump around the file to learn
what is actually public. Types, primitive constants and (optionally)
re-exports from other modules are inert and may appear anywhere.`,

	BadExample: `export const config = { retries: 3 };
const client = createClient(config);
const fetcher = client.fetch;
export { client };
export default fetcher;`,

	GoodExample: `const client = createClient({ retries: 3 });
export const MAX_RETRIES = 3;
export default function fetcher(url) {
  log(url);
  return client.fetch(url);
}`,

	Fix: "Move exports below the declarations they expose, or export declarations inline.",
}

func createExportOrdering(ctx *lint.Context) lint.Visitors {
	opts := OrderingOptions{}
	if err := ctx.DecodeOptions(&opts); err != nil {
		ctx.Logger().Warn("ignoring invalid options", slog.Any("error", err))
		opts = OrderingOptions{}
	}

	return lint.Visitors{
		estree.KindProgram: func(program *estree.Node) {
			c := &orderingCheck{ctx: ctx, opts: opts, program: program}
			c.run()
		},
	}
}

// orderingCheck holds the lazily built per-file state of one run.
type orderingCheck struct {
	ctx     *lint.Context
	opts    OrderingOptions
	program *estree.Node

	resolver usage.Resolver
	decls    []usage.Declaration
	declsSet bool
}

func (c *orderingCheck) run() {
	body := c.program.Body()

	lastNonExport := -1
	for i, stmt := range body {
		if !shape.IsExport(stmt) {
			lastNonExport = i
		}
	}

	for i, stmt := range body {
		info, ok := shape.ClassifyExport(stmt)
		if !ok {
			continue
		}
		if id := c.indirection(stmt, info); id != "" {
			c.ctx.Report(stmt, id)
			continue
		}
		if i < lastNonExport && !c.exempt(info) {
			c.ctx.Report(stmt, "exportBeforeDeclaration")
		}
	}
}

// indirection returns the message ID for an export that only re-exposes
// something declared elsewhere, or "".
func (c *orderingCheck) indirection(stmt *estree.Node, info shape.ExportInfo) string {
	switch {
	case info.IsLocalReExport() && !info.IsTypeOnly:
		return "localReExport"
	case isAliasDeclaration(info.Declaration):
		return "aliasExport"
	case info.IsDefault:
		if name := shape.UnwrapParens(info.Declaration); name.Is(estree.KindIdentifier) && !c.usedVariable(name.Name(), stmt) {
			return "indirectDefault"
		}
	}
	return ""
}

// usedVariable reports whether name is a plain top-level variable with a
// qualifying reference outside stmt. Functions, classes, imports and
// undeclared names never qualify.
func (c *orderingCheck) usedVariable(name string, stmt *estree.Node) bool {
	if !c.declsSet {
		c.decls = usage.Declarations(c.program)
		c.declsSet = true
	}
	matches := usage.Lookup(c.decls, name)
	if len(matches) == 0 {
		return false
	}
	for _, d := range matches {
		if d.Kind != usage.KindVariable {
			return false
		}
	}
	if c.resolver == nil {
		c.resolver = usage.New(c.program, c.ctx.File.Bindings)
	}
	return c.resolver.HasReference(name, stmt.Span)
}

func (c *orderingCheck) exempt(info shape.ExportInfo) bool {
	switch {
	case info.IsTypeOnly:
		return true
	case shape.IsPrimitiveConstant(info.Declaration):
		return true
	case c.opts.AllowReExport && info.IsRemoteReExport():
		return true
	default:
		return false
	}
}

// isAliasDeclaration reports whether decl is a variable declaration with an
// initializer that only names another binding.
func isAliasDeclaration(decl *estree.Node) bool {
	if !decl.Is(estree.KindVariableDeclaration) {
		return false
	}
	for _, d := range decl.List("declarations") {
		if init := d.Child("init"); init != nil && shape.IsAlias(init) {
			return true
		}
	}
	return false
}
