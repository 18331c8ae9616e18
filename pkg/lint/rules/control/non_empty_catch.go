package control

import (
	"strings"

	"github.com/leapstack-labs/shapelint/pkg/estree"
	"github.com/leapstack-labs/shapelint/pkg/lint"
	"github.com/leapstack-labs/shapelint/pkg/token"
)

func init() {
	lint.Register(NonEmptyCatch)
}

// NonEmptyCatch reports catch clauses that do nothing with the error.
var NonEmptyCatch = lint.RuleDef{
	ID:          "non-empty-catch",
	Name:        "control.non_empty_catch",
	Group:       "control",
	Description: "Catch block is empty or contains only comments.",
	Severity:    lint.SeverityError,
	Stability:   lint.StabilityStable,
	Create:      createNonEmptyCatch,
	Messages: map[string]string{
		"emptyCatch": "Catch blocks must handle the error; an empty or comment-only block silently swallows it.",
	},

	Rationale: `An empty catch block hides failures: the program continues in a state
nobody planned for and the original error is lost. A comment explaining why
the error is ignored does not change that at runtime.`,

	BadExample: `try {
  load();
} catch (e) {
  // ignore
}`,

	GoodExample: `try {
  load();
} catch (e) {
  logger.warn("load failed", e);
}`,

	Fix: "Log, rethrow, or otherwise handle the error inside the catch block.",
}

func createNonEmptyCatch(ctx *lint.Context) lint.Visitors {
	return lint.Visitors{
		estree.KindCatchClause: func(clause *estree.Node) {
			block := clause.Child("body")
			if !block.Is(estree.KindBlockStatement) {
				return
			}
			if len(block.Body()) == 0 || blankBlock(block, ctx.Source()) {
				ctx.Report(clause, "emptyCatch")
			}
		},
	}
}

// blankBlock reports whether the block's source text holds nothing but
// braces, whitespace and comments. It is false when the source is unknown.
func blankBlock(block *estree.Node, src string) bool {
	text := block.Span.Text(src)
	if text == "" {
		return false
	}
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "{")
	text = strings.TrimSuffix(text, "}")
	return strings.TrimSpace(token.StripComments(text)) == ""
}
