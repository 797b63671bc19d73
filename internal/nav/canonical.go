package nav

import "strings"

// --- Alias Table ---

// aliases maps a deprecated path prefix to its current prefix. It must stay
// closed: no target may itself start with (or be the parent of) a key.
var aliases = map[string]string{
	"/settings/agent-hub":     "/settings/infrastructure",
	"/settings/proxmox":       "/settings/infrastructure",
	"/settings/pve":           "/settings/infrastructure/pve",
	"/settings/pbs":           "/settings/infrastructure/pbs",
	"/settings/pmg":           "/settings/infrastructure/pmg",
	"/settings/storage":       "/settings/infrastructure/pbs",
	"/settings/docker":        "/settings/workloads/docker",
	"/settings/host-agents":   "/settings/agents",
	"/settings/hosts":         "/settings/agents",
	"/settings/system":        "/settings/system-general",
	"/settings/general":       "/settings/system-general",
	"/settings/network":       "/settings/system-network",
	"/settings/updates":       "/settings/system-updates",
	"/settings/backups":       "/settings/system-backups",
	"/settings/ai":            "/settings/system-ai",
	"/settings/relay":         "/settings/system-relay",
	"/settings/logs":          "/settings/system-logs",
	"/settings/pro":           "/settings/system-pro",
	"/settings/license":       "/settings/system-pro",
	"/settings/api":           "/settings/integrations/api",
	"/settings/security":      "/settings/security-overview",
	"/settings/auth":          "/settings/security-auth",
	"/settings/sso":           "/settings/security-sso",
	"/settings/roles":         "/settings/security-roles",
	"/settings/users":         "/settings/security-users",
	"/settings/audit":         "/settings/security-audit",
	"/settings/webhooks":      "/settings/security-webhooks",
	"/settings/org":           "/settings/organization",
	"/settings/billing-admin": "/settings/organization/billing-admin",
	"/settings/reports":       "/settings/reporting",
}

// Normalize strips trailing slashes. A path made only of slashes is left alone.
func Normalize(path string) string {
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" {
		return path
	}
	return trimmed
}

// IsSettingsPath reports whether the normalized path is the settings root or below it.
func IsSettingsPath(path string) bool {
	return hasSegmentPrefix(path, SettingsRoot)
}

// Canonicalize returns the canonical form of path, or false when path is not
// a settings path. At most one alias is applied; the remainder past the
// matched prefix is carried over unchanged.
func Canonicalize(path string) (string, bool) {
	norm := Normalize(path)
	if !IsSettingsPath(norm) {
		return "", false
	}
	if key, target, ok := lookupAlias(aliases, norm); ok {
		return target + norm[len(key):], true
	}
	return norm, true
}

// lookupAlias finds the longest key that is a segment prefix of path.
func lookupAlias(table map[string]string, path string) (string, string, bool) {
	for p := path; p != SettingsRoot && p != ""; p = parentPath(p) {
		if target, ok := table[p]; ok {
			return p, target, true
		}
	}
	return "", "", false
}

// --- Legacy nested rewrites ---

type legacyRewrite struct {
	from string
	to   string
}

// legacyRewrites re-parent sections that are not plain prefix aliases.
// Targets must already be canonical.
var legacyRewrites = []legacyRewrite{
	{"/settings/linuxServers", "/settings/agents"},
	{"/settings/windowsServers", "/settings/agents"},
	{"/settings/macServers", "/settings/agents"},
	{"/settings/containers", "/settings/workloads/docker"},
	{"/settings/infrastructure/docker", "/settings/workloads/docker"},
	{"/settings/agents/docker", "/settings/workloads/docker"},
}

// sectionParents flatten "/settings/<parent>/<child>" into "/settings/<parent>-<child>"
// when the flattened segment names a tab.
var sectionParents = []string{"security", "system"}

// RewriteLegacy maps a normalized deprecated deep path to its replacement.
func RewriteLegacy(path string) (string, bool) {
	for _, rw := range legacyRewrites {
		if hasSegmentPrefix(path, rw.from) {
			return rw.to + path[len(rw.from):], true
		}
	}
	for _, parent := range sectionParents {
		prefix := SettingsRoot + "/" + parent + "/"
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		child, rest, _ := strings.Cut(path[len(prefix):], "/")
		tab := Tab(parent + "-" + child)
		if child == "" || !tab.Valid() {
			continue
		}
		if rest != "" {
			rest = "/" + rest
		}
		return SettingsRoot + "/" + string(tab) + rest, true
	}
	return "", false
}

// --- helpers ---

func hasSegmentPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func parentPath(path string) string {
	i := strings.LastIndex(path, "/")
	if i <= 0 {
		return ""
	}
	return path[:i]
}
