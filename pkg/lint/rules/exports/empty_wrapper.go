package exports

import (
	"github.com/leapstack-labs/shapelint/pkg/estree"
	"github.com/leapstack-labs/shapelint/pkg/lint"
	"github.com/leapstack-labs/shapelint/pkg/lint/shape"
)

func init() {
	lint.Register(EmptyWrapper)
}

// EmptyWrapper reports exported functions that only forward their arguments
// to another call.
var EmptyWrapper = lint.RuleDef{
	ID:          "empty-wrapper",
	Name:        "exports.empty_wrapper",
	Group:       "exports",
	Description: "Exported function only forwards its arguments to another call.",
	Severity:    lint.SeverityWarning,
	Stability:   lint.StabilityStable,
	Create:      createEmptyWrapper,
	Messages: map[string]string{
		"emptyWrapper": "This exported function only forwards its arguments; export the wrapped function instead.",
	},

	Rationale: `A function that passes its parameters unchanged to a single call adds a
name and a stack frame but no behavior. Exporting the target directly keeps
the public surface honest about where the work happens.`,

	BadExample: `export default function fetchUser(...args) {
  return api.get(...args);
}`,

	GoodExample: `export { get as fetchUser } from "./api";`,

	Fix: "Export the wrapped function (or re-export it from its module) instead of wrapping it.",
}

func createEmptyWrapper(ctx *lint.Context) lint.Visitors {
	check := func(export *estree.Node) {
		fn := export.Child("declaration")
		if !shape.IsFunction(fn) {
			return
		}
		if shape.IsPassThroughCall(fn) {
			ctx.Report(fn, "emptyWrapper")
		}
	}
	return lint.Visitors{
		estree.KindExportNamedDeclaration:   check,
		estree.KindExportDefaultDeclaration: check,
	}
}
