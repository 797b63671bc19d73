package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathForRoundTrip(t *testing.T) {
	for _, tab := range AllTabs() {
		p := PathFor(tab)
		c, ok := Canonicalize(p)
		require.True(t, ok, tab)
		assert.Equal(t, p, c, "projected path should already be canonical: %s", tab)
		assert.Equal(t, tab, ClassifyTab(c), "round trip for %s", tab)
	}
}

func TestPathForHandMappedTabs(t *testing.T) {
	assert.Equal(t, "/settings/infrastructure", PathFor(TabProxmox))
	assert.Equal(t, "/settings/workloads/docker", PathFor(TabDocker))
	assert.Equal(t, "/settings/billing", PathFor(TabOrganizationBilling))
	assert.Equal(t, "/settings/security-overview", PathFor(TabSecurityOverview))
	assert.Equal(t, "/settings/diagnostics", PathFor(TabDiagnostics))
}

func TestAgentPathRoundTrip(t *testing.T) {
	for _, agent := range AllAgents() {
		p := AgentPath(agent)
		assert.Equal(t, TabProxmox, ClassifyTab(p))
		got, ok := ClassifyAgent(p)
		require.True(t, ok)
		assert.Equal(t, agent, got)
	}
}

func TestTabMetadata(t *testing.T) {
	assert.Len(t, AllTabs(), 26)
	for _, tab := range AllTabs() {
		assert.NotEmpty(t, tab.Label(), tab)
		assert.NotEmpty(t, tab.Group(), tab)
	}
	_, ok := ParseTab("security-overview")
	assert.True(t, ok)
	_, ok = ParseTab("security")
	assert.False(t, ok)
	assert.Equal(t, "Proxmox Backup Server", AgentPBS.Label())
	_, ok = ParseAgent("pmg")
	assert.True(t, ok)
}

func TestParseLocation(t *testing.T) {
	cases := map[string]Location{
		"/settings":                           {Pathname: "/settings"},
		"/settings?tab=billing":               {Pathname: "/settings", Search: "?tab=billing"},
		"/settings/agents#top":                {Pathname: "/settings/agents"},
		"/settings?":                          {Pathname: "/settings"},
		"https://pulse.local:7655/settings/x": {Pathname: "/settings/x"},
		"http://pulse.local?tab=org":          {Pathname: "/", Search: "?tab=org"},
		"  /settings/pbs  ":                   {Pathname: "/settings/pbs"},
		"":                                    {Pathname: "/"},
	}
	for raw, want := range cases {
		assert.Equal(t, want, ParseLocation(raw), raw)
	}
	assert.Equal(t, "/settings?tab=billing", ParseLocation("/settings?tab=billing").String())
}
