// Package bundled registers the rules of the style pack under their own IDs.
package bundled

import (
	"github.com/leapstack-labs/shapelint/pkg/lint"
	"github.com/leapstack-labs/shapelint/pkg/rulepack/style"
)

func init() {
	lint.RegisterProvider(style.Pack)
}
