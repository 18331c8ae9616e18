package control

import (
	"github.com/leapstack-labs/shapelint/pkg/estree"
	"github.com/leapstack-labs/shapelint/pkg/lint"
	"github.com/leapstack-labs/shapelint/pkg/lint/shape"
)

func init() {
	lint.Register(GuardClause)
}

// GuardClause reports functions whose entire body is wrapped in a single if.
var GuardClause = lint.RuleDef{
	ID:          "guard-clause",
	Name:        "control.guard_clause",
	Group:       "control",
	Description: "Function body is wrapped in a single conditional; invert it into a guard clause.",
	Severity:    lint.SeverityWarning,
	Stability:   lint.StabilityStable,
	Create:      createGuardClause,
	Messages: map[string]string{
		"preferGuardClause": "Prefer an early-return guard clause over wrapping the whole function body in a conditional.",
	},

	Rationale: `When the entire body of a function lives inside one if statement, every
line of real work is indented one level deeper than it needs to be and the
reader has to scan to the end to learn that nothing happens otherwise. Exiting
early on the negated condition keeps the main path flat.`,

	BadExample: `function save(user) {
  if (user.isValid) {
    db.write(user);
    audit(user);
  }
}`,

	GoodExample: `function save(user) {
  if (!user.isValid) return;
  db.write(user);
  audit(user);
}`,

	Fix: "Negate the condition, return (or throw) early, and move the body out of the if block.",
}

func createGuardClause(ctx *lint.Context) lint.Visitors {
	check := func(fn *estree.Node) {
		body := shape.FunctionBody(fn)
		if body == nil {
			return
		}
		if shape.IsWrapperConditional(body) {
			ctx.Report(fn, "preferGuardClause")
		}
	}
	return lint.Visitors{
		estree.KindFunctionDeclaration:     check,
		estree.KindFunctionExpression:      check,
		estree.KindArrowFunctionExpression: check,
	}
}
