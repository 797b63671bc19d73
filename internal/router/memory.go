// Package router provides an in-memory host router that delivers location
// changes asynchronously, the way a browser router does.
package router

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pulsenav/settings/internal/nav"
)

// ErrRedirectLoop is returned by Settle when navigations keep arriving past the bound.
var ErrRedirectLoop = errors.New("redirect loop")

type request struct {
	loc     nav.Location
	replace bool
}

// Memory keeps a history stack and a queue of navigations not yet applied.
type Memory struct {
	history     []nav.Location
	index       int
	queue       []request
	subscribers []func(nav.Location)
	logger      *zap.Logger
}

// Option configures a Memory router.
type Option func(*Memory)

// WithLogger attaches a logger for applied navigations.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Memory) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New creates a router positioned at initial.
func New(initial nav.Location, opts ...Option) *Memory {
	m := &Memory{
		history: []nav.Location{initial},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Navigate queues a navigation. It satisfies nav.NavigateFunc.
func (m *Memory) Navigate(path string, opts nav.NavigateOptions) {
	m.queue = append(m.queue, request{loc: nav.ParseLocation(path), replace: opts.Replace})
}

// Subscribe registers fn to be called with every applied location.
func (m *Memory) Subscribe(fn func(nav.Location)) {
	m.subscribers = append(m.subscribers, fn)
}

// Location returns the current history entry.
func (m *Memory) Location() nav.Location {
	return m.history[m.index]
}

// History returns a copy of the history stack and the current index.
func (m *Memory) History() ([]nav.Location, int) {
	out := make([]nav.Location, len(m.history))
	copy(out, m.history)
	return out, m.index
}

// Pending returns the number of queued navigations.
func (m *Memory) Pending() int {
	return len(m.queue)
}

// Step applies the oldest queued navigation and notifies subscribers.
func (m *Memory) Step() bool {
	if len(m.queue) == 0 {
		return false
	}
	req := m.queue[0]
	m.queue = m.queue[1:]

	switch {
	case req.replace:
		m.history[m.index] = req.loc
	case req.loc == m.history[m.index]:
		// pushing the current entry adds no history
	default:
		m.history = append(m.history[:m.index+1], req.loc)
		m.index++
	}
	m.logger.Debug("location applied",
		zap.String("location", req.loc.String()),
		zap.Bool("replace", req.replace))
	m.notify()
	return true
}

// Settle applies queued navigations, including any queued by subscribers,
// until the queue is empty. It fails after max applications.
func (m *Memory) Settle(max int) (int, error) {
	applied := 0
	for m.Pending() > 0 {
		if applied >= max {
			return applied, fmt.Errorf("settle %s after %d navigations: %w", m.Location(), applied, ErrRedirectLoop)
		}
		m.Step()
		applied++
	}
	return applied, nil
}

// Back moves one entry back in history and notifies subscribers.
func (m *Memory) Back() bool {
	if m.index == 0 {
		return false
	}
	m.index--
	m.notify()
	return true
}

// Forward moves one entry forward in history and notifies subscribers.
func (m *Memory) Forward() bool {
	if m.index >= len(m.history)-1 {
		return false
	}
	m.index++
	m.notify()
	return true
}

func (m *Memory) notify() {
	loc := m.Location()
	for _, fn := range m.subscribers {
		fn(loc)
	}
}
