// Package style is a small third-party style rule pack. Its rules are
// consumed as they are through lint.Provider; nothing here depends on the
// shapelint rule packages.
package style

import "github.com/leapstack-labs/shapelint/pkg/lint"

// Pack is the style rule pack.
var Pack lint.Provider = pack{}

type pack struct{}

func (pack) Name() string { return "style" }

func (pack) Rules() []lint.RuleDef {
	return []lint.RuleDef{NoVar, NoNestedTernary}
}
