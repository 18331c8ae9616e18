package style

import (
	"github.com/leapstack-labs/shapelint/pkg/estree"
	"github.com/leapstack-labs/shapelint/pkg/lint"
)

// NoVar reports `var` declarations.
var NoVar = lint.RuleDef{
	ID:          "style/no-var",
	Name:        "style.no_var",
	Group:       "style",
	Description: "Use let or const instead of var.",
	Severity:    lint.SeverityWarning,
	Stability:   lint.StabilityStable,
	Create:      createNoVar,
	Messages: map[string]string{
		"unexpectedVar": "Unexpected var, use let or const instead.",
	},

	Rationale: `var is function scoped and hoisted, so a binding can be read before
its declaration and leaks out of the block it was written in.`,

	BadExample:  `var count = 0;`,
	GoodExample: `let count = 0;`,
	Fix:         "Replace var with const, or let when the binding is reassigned.",
}

func createNoVar(ctx *lint.Context) lint.Visitors {
	return lint.Visitors{
		estree.KindVariableDeclaration: func(n *estree.Node) {
			if n.String("kind") == "var" {
				ctx.Report(n, "unexpectedVar")
			}
		},
	}
}
