package nav

// SettingsRoot is the path every settings location lives under.
const SettingsRoot = "/settings"

// --- Tabs ---

// Tab identifies one top-level settings section. Exactly one is active at a time.
type Tab string

const (
	TabProxmox                  Tab = "proxmox"
	TabDocker                   Tab = "docker"
	TabAgents                   Tab = "agents"
	TabSystemGeneral            Tab = "system-general"
	TabSystemNetwork            Tab = "system-network"
	TabSystemUpdates            Tab = "system-updates"
	TabSystemBackups            Tab = "system-backups"
	TabSystemAI                 Tab = "system-ai"
	TabSystemRelay              Tab = "system-relay"
	TabSystemLogs               Tab = "system-logs"
	TabSystemPro                Tab = "system-pro"
	TabAPI                      Tab = "api"
	TabSecurityOverview         Tab = "security-overview"
	TabSecurityAuth             Tab = "security-auth"
	TabSecuritySSO              Tab = "security-sso"
	TabSecurityRoles            Tab = "security-roles"
	TabSecurityUsers            Tab = "security-users"
	TabSecurityAudit            Tab = "security-audit"
	TabSecurityWebhooks         Tab = "security-webhooks"
	TabDiagnostics              Tab = "diagnostics"
	TabReporting                Tab = "reporting"
	TabOrganizationOverview     Tab = "organization-overview"
	TabOrganizationAccess       Tab = "organization-access"
	TabOrganizationSharing      Tab = "organization-sharing"
	TabOrganizationBilling      Tab = "organization-billing"
	TabOrganizationBillingAdmin Tab = "organization-billing-admin"
)

// Group is the sidebar section a tab is listed under.
type Group string

const (
	GroupInfrastructure Group = "Infrastructure"
	GroupWorkloads      Group = "Workloads"
	GroupAgents         Group = "Agents"
	GroupSystem         Group = "System"
	GroupIntegrations   Group = "Integrations"
	GroupSecurity       Group = "Security"
	GroupOrganization   Group = "Organization"
	GroupSupport        Group = "Support"
)

type tabInfo struct {
	tab   Tab
	label string
	group Group
}

// tabCatalog is in sidebar order.
var tabCatalog = []tabInfo{
	{TabProxmox, "Proxmox", GroupInfrastructure},
	{TabDocker, "Docker", GroupWorkloads},
	{TabAgents, "Unified Agents", GroupAgents},
	{TabSystemGeneral, "General", GroupSystem},
	{TabSystemNetwork, "Network", GroupSystem},
	{TabSystemUpdates, "Updates", GroupSystem},
	{TabSystemBackups, "Backups", GroupSystem},
	{TabSystemAI, "AI Assistant", GroupSystem},
	{TabSystemRelay, "Relay", GroupSystem},
	{TabSystemLogs, "Logs", GroupSystem},
	{TabSystemPro, "Pulse Pro", GroupSystem},
	{TabAPI, "API Tokens", GroupIntegrations},
	{TabSecurityOverview, "Overview", GroupSecurity},
	{TabSecurityAuth, "Authentication", GroupSecurity},
	{TabSecuritySSO, "Single Sign-On", GroupSecurity},
	{TabSecurityRoles, "Roles", GroupSecurity},
	{TabSecurityUsers, "Users", GroupSecurity},
	{TabSecurityAudit, "Audit Log", GroupSecurity},
	{TabSecurityWebhooks, "Audit Webhooks", GroupSecurity},
	{TabOrganizationOverview, "Overview", GroupOrganization},
	{TabOrganizationAccess, "Access", GroupOrganization},
	{TabOrganizationSharing, "Sharing", GroupOrganization},
	{TabOrganizationBilling, "Billing", GroupOrganization},
	{TabOrganizationBillingAdmin, "Billing Admin", GroupOrganization},
	{TabDiagnostics, "Diagnostics", GroupSupport},
	{TabReporting, "Reporting", GroupSupport},
}

var tabIndex = func() map[Tab]int {
	idx := make(map[Tab]int, len(tabCatalog))
	for i, info := range tabCatalog {
		idx[info.tab] = i
	}
	return idx
}()

// AllTabs returns every tab in sidebar order.
func AllTabs() []Tab {
	out := make([]Tab, 0, len(tabCatalog))
	for _, info := range tabCatalog {
		out = append(out, info.tab)
	}
	return out
}

// ParseTab returns the tab whose tag is s.
func ParseTab(s string) (Tab, bool) {
	t := Tab(s)
	return t, t.Valid()
}

// Valid reports whether t is one of the known tabs.
func (t Tab) Valid() bool {
	_, ok := tabIndex[t]
	return ok
}

func (t Tab) String() string { return string(t) }

// Label is the human-readable sidebar title.
func (t Tab) Label() string {
	if i, ok := tabIndex[t]; ok {
		return tabCatalog[i].label
	}
	return string(t)
}

// Group returns the sidebar section of t.
func (t Tab) Group() Group {
	if i, ok := tabIndex[t]; ok {
		return tabCatalog[i].group
	}
	return ""
}

// --- Agents ---

// AgentKey is a Proxmox product selectable inside the proxmox tab.
type AgentKey string

const (
	AgentPVE AgentKey = "pve"
	AgentPBS AgentKey = "pbs"
	AgentPMG AgentKey = "pmg"
)

// DefaultAgent is used whenever the path does not name an agent.
const DefaultAgent = AgentPVE

var agentLabels = map[AgentKey]string{
	AgentPVE: "Proxmox VE",
	AgentPBS: "Proxmox Backup Server",
	AgentPMG: "Proxmox Mail Gateway",
}

// AllAgents returns the agents in selector order.
func AllAgents() []AgentKey {
	return []AgentKey{AgentPVE, AgentPBS, AgentPMG}
}

// ParseAgent returns the agent whose tag is s.
func ParseAgent(s string) (AgentKey, bool) {
	a := AgentKey(s)
	return a, a.Valid()
}

// Valid reports whether a is a known agent.
func (a AgentKey) Valid() bool {
	_, ok := agentLabels[a]
	return ok
}

func (a AgentKey) String() string { return string(a) }

// Label is the product name shown in the agent selector.
func (a AgentKey) Label() string {
	if l, ok := agentLabels[a]; ok {
		return l
	}
	return string(a)
}
