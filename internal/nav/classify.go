package nav

import (
	"maps"
	"net/url"
	"slices"
	"strings"
)

// --- Tab Classifier ---

// tabRule matches when segment appears in the path on a segment boundary.
// An empty segment matches everything.
type tabRule struct {
	segment string
	tab     Tab
}

func (r tabRule) matches(path string) bool {
	if r.segment == "" {
		return true
	}
	return containsSegment(path, r.segment)
}

// tabRules are evaluated in order, first match wins. Nested paths come before
// their parents; the last rule is the catch-all.
var tabRules = []tabRule{
	{"/settings/organization/billing-admin", TabOrganizationBillingAdmin},
	{"/settings/organization/access", TabOrganizationAccess},
	{"/settings/organization/sharing", TabOrganizationSharing},
	{"/settings/billing", TabOrganizationBilling},
	{"/settings/organization", TabOrganizationOverview},
	{"/settings/workloads/docker", TabDocker},
	{"/settings/integrations/api", TabAPI},
	{"/settings/agents", TabAgents},
	{"/settings/security-overview", TabSecurityOverview},
	{"/settings/security-auth", TabSecurityAuth},
	{"/settings/security-sso", TabSecuritySSO},
	{"/settings/security-roles", TabSecurityRoles},
	{"/settings/security-users", TabSecurityUsers},
	{"/settings/security-audit", TabSecurityAudit},
	{"/settings/security-webhooks", TabSecurityWebhooks},
	{"/settings/system-general", TabSystemGeneral},
	{"/settings/system-network", TabSystemNetwork},
	{"/settings/system-updates", TabSystemUpdates},
	{"/settings/system-backups", TabSystemBackups},
	{"/settings/system-ai", TabSystemAI},
	{"/settings/system-relay", TabSystemRelay},
	{"/settings/system-logs", TabSystemLogs},
	{"/settings/system-pro", TabSystemPro},
	{"/settings/diagnostics", TabDiagnostics},
	{"/settings/reporting", TabReporting},
	{"/settings/infrastructure", TabProxmox},
	{"", TabProxmox},
}

// ClassifyTab reduces a canonical path to its tab. It never fails.
func ClassifyTab(path string) Tab {
	for _, r := range tabRules {
		if r.matches(path) {
			return r.tab
		}
	}
	return TabProxmox
}

// --- Agent Classifier ---

var agentRules = []struct {
	segment string
	agent   AgentKey
}{
	{"/pve", AgentPVE},
	{"/pbs", AgentPBS},
	{"/storage", AgentPBS},
	{"/pmg", AgentPMG},
}

// ClassifyAgent picks the agent named by a proxmox path. It returns false when
// the path only names the tab, meaning the caller keeps its default.
func ClassifyAgent(path string) (AgentKey, bool) {
	for _, r := range agentRules {
		if containsSegment(path, r.segment) {
			return r.agent, true
		}
	}
	return "", false
}

// --- Query-Tab Classifier ---

// querySynonyms extend the tab tags accepted by ?tab=.
var querySynonyms = map[string]Tab{
	"pve":            TabProxmox,
	"pbs":            TabProxmox,
	"pmg":            TabProxmox,
	"infrastructure": TabProxmox,
	"agent-hub":      TabProxmox,
	"containers":     TabDocker,
	"workloads":      TabDocker,
	"hosts":          TabAgents,
	"host-agents":    TabAgents,
	"servers":        TabAgents,
	"system":         TabSystemGeneral,
	"general":        TabSystemGeneral,
	"network":        TabSystemNetwork,
	"updates":        TabSystemUpdates,
	"backups":        TabSystemBackups,
	"ai":             TabSystemAI,
	"relay":          TabSystemRelay,
	"logs":           TabSystemLogs,
	"pro":            TabSystemPro,
	"license":        TabSystemPro,
	"security":       TabSecurityOverview,
	"auth":           TabSecurityAuth,
	"authentication": TabSecurityAuth,
	"sso":            TabSecuritySSO,
	"oidc":           TabSecuritySSO,
	"roles":          TabSecurityRoles,
	"users":          TabSecurityUsers,
	"audit":          TabSecurityAudit,
	"webhooks":       TabSecurityWebhooks,
	"diagnostic":     TabDiagnostics,
	"reports":        TabReporting,
	"org":            TabOrganizationOverview,
	"organization":   TabOrganizationOverview,
	"access":         TabOrganizationAccess,
	"sharing":        TabOrganizationSharing,
	"billing":        TabOrganizationBilling,
	"billing-admin":  TabOrganizationBillingAdmin,
}

// deepLinkParams are set by backend redirects that land on the bare root.
var deepLinkParams = []struct {
	param string
	tab   Tab
}{
	{"trial", TabSystemPro},
	{"ai_oauth_success", TabSystemAI},
	{"ai_oauth_error", TabSystemAI},
}

// ClassifyFromQuery resolves the legacy ?tab= deep link. Absent, unknown or
// malformed values return false.
func ClassifyFromQuery(search string) (Tab, bool) {
	values := parseSearch(search)
	if raw := tabParam(values); raw != "" {
		key := strings.ToLower(strings.TrimSpace(raw))
		if tab, ok := querySynonyms[key]; ok {
			return tab, true
		}
		if tab, ok := ParseTab(key); ok {
			return tab, true
		}
	}
	for _, link := range deepLinkParams {
		if values.Has(link.param) {
			return link.tab, true
		}
	}
	return "", false
}

// QueryKeys lists every accepted ?tab= value.
func QueryKeys() []string {
	keys := make([]string, 0, len(querySynonyms)+len(tabCatalog))
	for _, info := range tabCatalog {
		keys = append(keys, string(info.tab))
	}
	keys = append(keys, slices.Sorted(maps.Keys(querySynonyms))...)
	return keys
}

// StripTabParam drops the tab parameter and returns the rest of the query
// with its leading "?", or "" when nothing is left.
func StripTabParam(search string) string {
	values := parseSearch(search)
	found := false
	for k := range values {
		if strings.EqualFold(k, "tab") {
			values.Del(k)
			found = true
		}
	}
	if !found {
		return search
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// parseSearch keeps whatever pairs parse; malformed ones are dropped.
func parseSearch(search string) url.Values {
	values, _ := url.ParseQuery(strings.TrimPrefix(search, "?"))
	if values == nil {
		values = url.Values{}
	}
	return values
}

// tabParam prefers the lowercase key, then any casing in sorted key order.
func tabParam(values url.Values) string {
	if v := values.Get("tab"); v != "" {
		return v
	}
	for _, k := range slices.Sorted(maps.Keys(values)) {
		if strings.EqualFold(k, "tab") && len(values[k]) > 0 {
			return values[k][0]
		}
	}
	return ""
}

func containsSegment(path, segment string) bool {
	return strings.Contains(path+"/", segment+"/")
}
