package nav

import (
	"slices"

	"go.uber.org/zap"
)

// NavigateOptions mirror the host router's navigate options.
type NavigateOptions struct {
	Replace bool
	Scroll  bool
}

// NavigateFunc is the navigation capability provided by the host router. It
// must return immediately; the resulting location is observed later.
type NavigateFunc func(path string, opts NavigateOptions)

// State is the active tab and selected agent.
type State struct {
	Tab   Tab      `yaml:"tab"`
	Agent AgentKey `yaml:"agent"`
}

// Navigator keeps the active tab and agent in sync with the observed location.
// It is not safe for concurrent use; the host drives it from a single loop.
type Navigator struct {
	navigate     NavigateFunc
	defaultTab   Tab
	defaultAgent AgentKey
	logger       *zap.Logger

	state    State
	location Location
	observed bool

	// pending holds paths pushed by the setters that have not been observed yet.
	pending []string
	// corrections holds targets of corrective navigations not observed yet.
	corrections []string
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithDefaultTab sets the tab shown on the bare settings root.
func WithDefaultTab(tab Tab) Option {
	return func(n *Navigator) {
		if tab.Valid() {
			n.defaultTab = tab
		}
	}
}

// WithDefaultAgent sets the agent used when a proxmox path names none.
func WithDefaultAgent(agent AgentKey) Option {
	return func(n *Navigator) {
		if agent.Valid() {
			n.defaultAgent = agent
		}
	}
}

// WithLogger attaches a logger for redirects and state changes.
func WithLogger(logger *zap.Logger) Option {
	return func(n *Navigator) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// NewNavigator creates a navigator and evaluates the initial location.
func NewNavigator(navigate NavigateFunc, initial Location, opts ...Option) *Navigator {
	n := &Navigator{
		navigate:     navigate,
		defaultTab:   TabProxmox,
		defaultAgent: DefaultAgent,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	n.state = State{Tab: n.defaultTab, Agent: n.defaultAgent}
	n.Observe(initial)
	return n
}

// ActiveTab returns the tab currently shown.
func (n *Navigator) ActiveTab() Tab { return n.state.Tab }

// SelectedAgent returns the agent shown inside the proxmox tab.
func (n *Navigator) SelectedAgent() AgentKey { return n.state.Agent }

// State returns a snapshot of the navigation state.
func (n *Navigator) State() State { return n.state }

// Location returns the last observed location.
func (n *Navigator) Location() Location { return n.location }

// DefaultTab returns the tab shown on the bare settings root.
func (n *Navigator) DefaultTab() Tab { return n.defaultTab }

// Observe evaluates a location change. Each call either issues one corrective
// replace navigation or brings the state in line with the location, never both.
func (n *Navigator) Observe(loc Location) {
	if n.observed && loc == n.location {
		return
	}
	n.observed = true
	n.location = loc

	path := Normalize(loc.Pathname)
	if !IsSettingsPath(path) {
		n.logger.Debug("ignoring non-settings location", zap.String("path", loc.Pathname))
		return
	}
	if n.skipSuperseded(path) {
		n.logger.Debug("skipping superseded correction", zap.String("path", path))
		return
	}
	if n.skipStale(path) {
		n.logger.Debug("skipping stale location", zap.String("path", path))
		return
	}

	if path == SettingsRoot {
		tab, ok := ClassifyFromQuery(loc.Search)
		if !ok {
			n.adopt(n.defaultTab, path)
			return
		}
		if target := PathFor(tab); target != path {
			n.redirect("query", loc, target+StripTabParam(loc.Search))
			return
		}
		n.adopt(tab, path)
		return
	}

	if target, ok := RewriteLegacy(path); ok {
		n.redirect("legacy", loc, target+loc.Search)
		return
	}

	canonical, _ := Canonicalize(loc.Pathname)
	if canonical != loc.Pathname {
		n.redirect("alias", loc, canonical+loc.Search)
		return
	}

	n.adopt(ClassifyTab(canonical), canonical)
}

// SetActiveTab shows tab immediately, then moves the URL to its canonical
// path unless the browser is already on it or below it.
func (n *Navigator) SetActiveTab(tab Tab) {
	if !tab.Valid() {
		return
	}
	target := PathFor(tab)
	if current := n.effectivePath(); settledUnder(current, target) && ClassifyTab(current) == tab {
		target = current
	}
	n.setState(n.resolve(tab, target))
	n.push(target)
}

// SelectAgent shows agent inside the proxmox tab immediately, then moves the
// URL to the agent path.
func (n *Navigator) SelectAgent(agent AgentKey) {
	if !agent.Valid() {
		return
	}
	n.setState(State{Tab: TabProxmox, Agent: agent})
	n.push(AgentPath(agent))
}

// settledUnder reports whether path is a canonical fixed point at or below prefix.
func settledUnder(path, prefix string) bool {
	if !hasSegmentPrefix(path, prefix) {
		return false
	}
	if _, legacy := RewriteLegacy(path); legacy {
		return false
	}
	canonical, _ := Canonicalize(path)
	return canonical == path
}

func (n *Navigator) adopt(tab Tab, path string) {
	n.setState(n.resolve(tab, path))
}

// resolve is the state a canonical path shows as tab.
func (n *Navigator) resolve(tab Tab, path string) State {
	next := State{Tab: tab, Agent: n.state.Agent}
	if tab == TabProxmox {
		agent, ok := ClassifyAgent(path)
		if !ok {
			agent = n.defaultAgent
		}
		next.Agent = agent
	}
	return next
}

func (n *Navigator) setState(next State) {
	if next == n.state {
		return
	}
	n.state = next
	n.logger.Debug("navigation state changed",
		zap.String("tab", string(next.Tab)),
		zap.String("agent", string(next.Agent)))
}

func (n *Navigator) redirect(reason string, from Location, to string) {
	n.logger.Debug("corrective navigation",
		zap.String("reason", reason),
		zap.String("from", from.String()),
		zap.String("to", to))
	n.corrections = append(n.corrections, Normalize(ParseLocation(to).Pathname))
	if n.navigate != nil {
		n.navigate(to, NavigateOptions{Replace: true, Scroll: false})
	}
}

func (n *Navigator) push(target string) {
	if target == n.effectivePath() {
		return
	}
	n.pending = append(n.pending, target)
	if n.navigate != nil {
		n.navigate(target, NavigateOptions{Scroll: true})
	}
}

// effectivePath is where the browser will be once pending pushes land.
func (n *Navigator) effectivePath() string {
	if len(n.pending) > 0 {
		return n.pending[len(n.pending)-1]
	}
	return Normalize(n.location.Pathname)
}

// skipSuperseded drops a corrective target that lands while a user push is
// still outstanding. The push decides what is shown, and a further corrective
// replace would land after it and overwrite the user's entry.
func (n *Navigator) skipSuperseded(path string) bool {
	i := slices.Index(n.corrections, path)
	if i < 0 {
		return false
	}
	n.corrections = n.corrections[i+1:]
	return len(n.pending) > 0 && !slices.Contains(n.pending, path)
}

// skipStale drops a location that an older push produced while a newer push
// is still outstanding. Anything else clears the pending list.
func (n *Navigator) skipStale(path string) bool {
	for i, p := range n.pending {
		if p != path {
			continue
		}
		if i == len(n.pending)-1 {
			n.pending = nil
			return false
		}
		n.pending = n.pending[i+1:]
		return true
	}
	n.pending = nil
	return false
}
