package style

import (
	"github.com/leapstack-labs/shapelint/pkg/estree"
	"github.com/leapstack-labs/shapelint/pkg/lint"
)

// NoNestedTernary reports conditional expressions with a conditional operand.
var NoNestedTernary = lint.RuleDef{
	ID:          "style/no-nested-ternary",
	Name:        "style.no_nested_ternary",
	Group:       "style",
	Description: "Disallow nested ternary expressions.",
	Severity:    lint.SeverityWarning,
	Stability:   lint.StabilityExperimental,
	Create:      createNoNestedTernary,
	Messages: map[string]string{
		"noNestedTernary": "Do not nest ternary expressions.",
	},

	BadExample:  `const size = n > 100 ? "large" : n > 10 ? "medium" : "small";`,
	GoodExample: `const size = n > 100 ? "large" : "small";`,
	Fix:         "Use if statements or a lookup instead of nesting conditionals.",
}

func createNoNestedTernary(ctx *lint.Context) lint.Visitors {
	return lint.Visitors{
		estree.KindConditionalExpression: func(n *estree.Node) {
			for _, key := range []string{"test", "consequent", "alternate"} {
				if operand(n.Child(key)).Is(estree.KindConditionalExpression) {
					ctx.Report(n, "noNestedTernary")
					return
				}
			}
		},
	}
}

func operand(n *estree.Node) *estree.Node {
	for n.Is(estree.KindParenthesizedExpression) {
		n = n.Child("expression")
	}
	return n
}
