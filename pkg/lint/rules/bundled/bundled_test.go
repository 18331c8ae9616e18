package bundled_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/shapelint/pkg/lint"
	_ "github.com/leapstack-labs/shapelint/pkg/lint/rules/bundled" // register rules
	"github.com/leapstack-labs/shapelint/pkg/rulepack/style"
)

func TestBundledRulesUnmodified(t *testing.T) {
	for _, def := range style.Pack.Rules() {
		t.Run(def.ID, func(t *testing.T) {
			rule, ok := lint.GetByID(def.ID)
			require.True(t, ok)

			assert.Equal(t, def.Name, rule.Name())
			assert.Equal(t, def.Group, rule.Group())
			assert.Equal(t, def.Description, rule.Description())
			assert.Equal(t, def.Severity, rule.DefaultSeverity())
			assert.Equal(t, def.Stability, rule.Stability())
		})
	}
	assert.Len(t, lint.GetByGroup("style"), len(style.Pack.Rules()))
}
