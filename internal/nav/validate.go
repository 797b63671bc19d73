package nav

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	ErrAliasNotClosed      = errors.New("alias table is not closed")
	ErrAliasMalformed      = errors.New("alias entry is malformed")
	ErrRewriteNotCanonical = errors.New("legacy rewrite target is not canonical")
	ErrRoundTrip           = errors.New("canonical path does not classify back")
	ErrNoDefaultRule       = errors.New("tab rules have no catch-all")
)

// Validate checks the built-in tables for configuration defects that would
// cause redirect loops or ambiguous classification.
func Validate() error {
	return errors.Join(
		validateAliases(aliases),
		validateRewrites(legacyRewrites),
		validateRules(tabRules),
		validateRoundTrip(),
	)
}

func validateAliases(table map[string]string) error {
	var errs []error
	for _, key := range slices.Sorted(maps.Keys(table)) {
		target := table[key]
		if Normalize(key) != key || !IsSettingsPath(key) || key == SettingsRoot {
			errs = append(errs, fmt.Errorf("alias key %q: %w", key, ErrAliasMalformed))
		}
		if Normalize(target) != target || !IsSettingsPath(target) {
			errs = append(errs, fmt.Errorf("alias target %q: %w", target, ErrAliasMalformed))
		}
		for other := range table {
			if hasSegmentPrefix(target, other) || hasSegmentPrefix(other, target) {
				errs = append(errs, fmt.Errorf("alias %q -> %q overlaps %q: %w", key, target, other, ErrAliasNotClosed))
			}
		}
	}
	return errors.Join(errs...)
}

func validateRewrites(rewrites []legacyRewrite) error {
	var errs []error
	for _, rw := range rewrites {
		if c, ok := Canonicalize(rw.to); !ok || c != rw.to {
			errs = append(errs, fmt.Errorf("rewrite %q -> %q: %w", rw.from, rw.to, ErrRewriteNotCanonical))
			continue
		}
		if again, ok := RewriteLegacy(rw.to); ok {
			errs = append(errs, fmt.Errorf("rewrite %q -> %q rewrites again to %q: %w", rw.from, rw.to, again, ErrRewriteNotCanonical))
		}
	}
	return errors.Join(errs...)
}

func validateRules(rules []tabRule) error {
	if len(rules) == 0 || rules[len(rules)-1].segment != "" {
		return ErrNoDefaultRule
	}
	return nil
}

func validateRoundTrip() error {
	var errs []error
	for _, tab := range AllTabs() {
		p := PathFor(tab)
		if _, ok := RewriteLegacy(p); ok {
			errs = append(errs, fmt.Errorf("tab %s path %q is a legacy path: %w", tab, p, ErrRoundTrip))
			continue
		}
		c, ok := Canonicalize(p)
		if !ok || c != p {
			errs = append(errs, fmt.Errorf("tab %s path %q canonicalizes to %q: %w", tab, p, c, ErrRoundTrip))
			continue
		}
		if got := ClassifyTab(c); got != tab {
			errs = append(errs, fmt.Errorf("tab %s path %q classifies as %s: %w", tab, p, got, ErrRoundTrip))
		}
	}
	for _, agent := range AllAgents() {
		p := AgentPath(agent)
		if ClassifyTab(p) != TabProxmox {
			errs = append(errs, fmt.Errorf("agent %s path %q leaves the proxmox tab: %w", agent, p, ErrRoundTrip))
			continue
		}
		if got, ok := ClassifyAgent(p); !ok || got != agent {
			errs = append(errs, fmt.Errorf("agent %s path %q classifies as %q: %w", agent, p, got, ErrRoundTrip))
		}
	}
	return errors.Join(errs...)
}

// LegacyLocations returns one location per known legacy entry point: every
// alias key, every nested rewrite, and every ?tab= value on the root.
func LegacyLocations() []Location {
	var out []Location
	for _, key := range slices.Sorted(maps.Keys(aliases)) {
		out = append(out, Location{Pathname: key})
	}
	for _, rw := range legacyRewrites {
		out = append(out, Location{Pathname: rw.from})
	}
	for _, parent := range sectionParents {
		for _, tab := range AllTabs() {
			prefix := parent + "-"
			if len(tab) > len(prefix) && string(tab[:len(prefix)]) == prefix {
				out = append(out, Location{Pathname: SettingsRoot + "/" + parent + "/" + string(tab[len(prefix):])})
			}
		}
	}
	for _, key := range QueryKeys() {
		out = append(out, Location{Pathname: SettingsRoot, Search: "?tab=" + key})
	}
	return out
}
