package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsenav/settings/internal/nav"
)

const maxEvaluations = 3

func TestLegacyPathsTerminate(t *testing.T) {
	cases := []struct {
		start string
		final string
		tab   nav.Tab
		agent nav.AgentKey
	}{
		{"/settings/agent-hub/pbs", "/settings/infrastructure/pbs", nav.TabProxmox, nav.AgentPBS},
		{"/settings/agent-hub", "/settings/infrastructure", nav.TabProxmox, nav.AgentPVE},
		{"/settings/containers", "/settings/workloads/docker", nav.TabDocker, ""},
		{"/settings/linuxServers", "/settings/agents", nav.TabAgents, ""},
		{"/settings/windowsServers/", "/settings/agents", nav.TabAgents, ""},
		{"/settings/macServers", "/settings/agents", nav.TabAgents, ""},
		{"/settings/docker", "/settings/workloads/docker", nav.TabDocker, ""},
		{"/settings/storage", "/settings/infrastructure/pbs", nav.TabProxmox, nav.AgentPBS},
		{"/settings/pmg", "/settings/infrastructure/pmg", nav.TabProxmox, nav.AgentPMG},
		{"/settings/hosts/docker", "/settings/workloads/docker", nav.TabDocker, ""},
		{"/settings/security/sso", "/settings/security-sso", nav.TabSecuritySSO, ""},
		{"/settings/security", "/settings/security-overview", nav.TabSecurityOverview, ""},
		{"/settings/system/updates", "/settings/system-updates", nav.TabSystemUpdates, ""},
		{"/settings/org", "/settings/organization", nav.TabOrganizationOverview, ""},
		{"/settings/billing-admin", "/settings/organization/billing-admin", nav.TabOrganizationBillingAdmin, ""},
		{"/settings/api/", "/settings/integrations/api", nav.TabAPI, ""},
		{"/settings?tab=billing", "/settings/billing", nav.TabOrganizationBilling, ""},
		{"/settings?tab=containers", "/settings/workloads/docker", nav.TabDocker, ""},
		{"/settings?trial=activated", "/settings/system-pro?trial=activated", nav.TabSystemPro, ""},
	}
	for _, tc := range cases {
		t.Run(tc.start, func(t *testing.T) {
			trace, err := Resolve(nav.ParseLocation(tc.start), 10)
			require.NoError(t, err)
			assert.Equal(t, tc.final, trace.Final.String())
			assert.Equal(t, tc.tab, trace.State.Tab)
			if tc.agent != "" {
				assert.Equal(t, tc.agent, trace.State.Agent)
			}
			assert.LessOrEqual(t, trace.Evaluations, maxEvaluations)

			again, err := Resolve(trace.Final, 10)
			require.NoError(t, err)
			assert.Empty(t, again.Hops, "settled location must be a fixed point")
			assert.Equal(t, trace.State, again.State)
		})
	}
}

func TestEveryKnownLegacyLocationTerminates(t *testing.T) {
	for _, start := range nav.LegacyLocations() {
		trace, err := Resolve(start, 10)
		require.NoError(t, err, start.String())
		assert.LessOrEqual(t, trace.Evaluations, maxEvaluations, start.String())

		again, err := Resolve(trace.Final, 10)
		require.NoError(t, err)
		assert.Empty(t, again.Hops, start.String())
	}
}

func TestProjectedPathsAreFixedPoints(t *testing.T) {
	for _, tab := range nav.AllTabs() {
		trace, err := Resolve(nav.Location{Pathname: nav.PathFor(tab)}, 10)
		require.NoError(t, err)
		assert.Empty(t, trace.Hops, tab)
		assert.Equal(t, tab, trace.State.Tab)
	}
}

func TestResolveRootUsesDefaultTab(t *testing.T) {
	trace, err := Resolve(nav.Location{Pathname: "/settings"}, 10, nav.WithDefaultTab(nav.TabSystemGeneral))
	require.NoError(t, err)
	assert.Empty(t, trace.Hops)
	assert.Equal(t, 1, trace.Evaluations)
	assert.Equal(t, nav.TabSystemGeneral, trace.State.Tab)
}
