package nav

import "strings"

// tabPaths hand-maps tabs whose tag is not their URL segment.
var tabPaths = map[Tab]string{
	TabProxmox:                  "/settings/infrastructure",
	TabDocker:                   "/settings/workloads/docker",
	TabAPI:                      "/settings/integrations/api",
	TabOrganizationOverview:     "/settings/organization",
	TabOrganizationAccess:       "/settings/organization/access",
	TabOrganizationSharing:      "/settings/organization/sharing",
	TabOrganizationBilling:      "/settings/billing",
	TabOrganizationBillingAdmin: "/settings/organization/billing-admin",
}

// PathFor returns the canonical path of tab.
func PathFor(tab Tab) string {
	if p, ok := tabPaths[tab]; ok {
		return p
	}
	return SettingsRoot + "/" + string(tab)
}

// AgentPath returns the canonical path of an agent inside the proxmox tab.
func AgentPath(agent AgentKey) string {
	return PathFor(TabProxmox) + "/" + string(agent)
}

// --- Location ---

// Location is the pathname and search string observed from the host router.
type Location struct {
	Pathname string `yaml:"pathname"`
	Search   string `yaml:"search,omitempty"`
}

// ParseLocation splits a URL-ish string into pathname and search. Any
// scheme, host and fragment are dropped.
func ParseLocation(raw string) Location {
	raw = strings.TrimSpace(raw)
	if i := strings.Index(raw, "#"); i >= 0 {
		raw = raw[:i]
	}
	if i := strings.Index(raw, "://"); i >= 0 {
		rest := raw[i+3:]
		if j := strings.IndexAny(rest, "/?"); j >= 0 {
			raw = rest[j:]
		} else {
			raw = "/"
		}
	}
	path, query, hasQuery := strings.Cut(raw, "?")
	loc := Location{Pathname: path}
	if hasQuery && query != "" {
		loc.Search = "?" + query
	}
	if loc.Pathname == "" {
		loc.Pathname = "/"
	}
	return loc
}

func (l Location) String() string {
	return l.Pathname + l.Search
}
