package router

import (
	"github.com/pulsenav/settings/internal/nav"
)

// Mount creates a navigator driven by m: it evaluates the current location
// and every location m applies afterwards.
func Mount(m *Memory, opts ...nav.Option) *nav.Navigator {
	n := nav.NewNavigator(m.Navigate, m.Location(), opts...)
	m.Subscribe(n.Observe)
	return n
}

// Trace records how a location settled.
type Trace struct {
	Start       nav.Location   `yaml:"start"`
	Hops        []nav.Location `yaml:"hops,omitempty"`
	Final       nav.Location   `yaml:"final"`
	State       nav.State      `yaml:"state"`
	Evaluations int            `yaml:"evaluations"`
}

// Resolve mounts a fresh navigator at start and lets every corrective
// navigation land. It fails with ErrRedirectLoop after maxHops navigations.
func Resolve(start nav.Location, maxHops int, opts ...nav.Option) (Trace, error) {
	m := New(start)
	trace := Trace{Start: start}
	m.Subscribe(func(loc nav.Location) {
		trace.Hops = append(trace.Hops, loc)
	})
	n := Mount(m, opts...)

	applied, err := m.Settle(maxHops)
	trace.Evaluations = 1 + applied
	trace.Final = m.Location()
	trace.State = n.State()
	return trace, err
}
