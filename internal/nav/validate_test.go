package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltInTablesValidate(t *testing.T) {
	require.NoError(t, Validate())
}

func TestValidateAliasesRejectsCycle(t *testing.T) {
	table := map[string]string{
		"/settings/a": "/settings/b",
		"/settings/b": "/settings/a",
	}
	err := validateAliases(table)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAliasNotClosed)
}

func TestValidateAliasesRejectsChain(t *testing.T) {
	table := map[string]string{
		"/settings/old":   "/settings/older",
		"/settings/older": "/settings/new",
	}
	assert.ErrorIs(t, validateAliases(table), ErrAliasNotClosed)
}

func TestValidateAliasesRejectsTargetParentOfKey(t *testing.T) {
	table := map[string]string{
		"/settings/x":     "/settings/new",
		"/settings/new/y": "/settings/z",
	}
	assert.ErrorIs(t, validateAliases(table), ErrAliasNotClosed)
}

func TestValidateAliasesRejectsMalformed(t *testing.T) {
	table := map[string]string{
		"/settings/x/": "/dashboard",
	}
	assert.ErrorIs(t, validateAliases(table), ErrAliasMalformed)
}

func TestValidateRewritesRejectsNonCanonicalTarget(t *testing.T) {
	err := validateRewrites([]legacyRewrite{{from: "/settings/old", to: "/settings/docker"}})
	assert.ErrorIs(t, err, ErrRewriteNotCanonical)

	err = validateRewrites([]legacyRewrite{{from: "/settings/old", to: "/settings/containers"}})
	assert.ErrorIs(t, err, ErrRewriteNotCanonical)
}

func TestValidateRulesRequiresCatchAll(t *testing.T) {
	assert.ErrorIs(t, validateRules(nil), ErrNoDefaultRule)
	assert.ErrorIs(t, validateRules([]tabRule{{"/settings/agents", TabAgents}}), ErrNoDefaultRule)
	assert.NoError(t, validateRules(tabRules))
}

func TestLegacyLocationsAreSettingsPaths(t *testing.T) {
	locs := LegacyLocations()
	assert.GreaterOrEqual(t, len(locs), 15)
	for _, loc := range locs {
		assert.True(t, IsSettingsPath(loc.Pathname), loc.Pathname)
	}
}
