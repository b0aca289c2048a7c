// Package provider scopes a theme resolver to a region of a component tree
// and hands the resolved theme to the components rendered inside it.
//
// A Scope publishes one immutable Value per update. Consumers either read it
// directly with Value or Consume, or subscribe to be told about new ones.
// Consuming outside any scope yields the light fallback.
package provider

import (
	"crypto/rand"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/alexisbeaulieu97/tinct/internal/logger"
	"github.com/alexisbeaulieu97/tinct/internal/theme"
)

// Value is what a scope exposes to consumers.
type Value struct {
	Theme theme.Theme
	Mode  theme.Mode
	// System is the host preference observed when the value was published.
	System   theme.Appearance
	SetTheme func(theme.Mode)
}

// Option customises a Scope at construction.
type Option func(*options)

type options struct {
	source theme.PreferenceSource
	log    *logger.Logger
}

// WithSource sets the host preference source. Without one the scope behaves
// as on a host with no appearance preference.
func WithSource(src theme.PreferenceSource) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithLogger attaches a logger to the scope and its resolver.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// Scope owns one resolver and the snapshot derived from it.
type Scope struct {
	id       string
	source   theme.PreferenceSource
	log      *logger.Logger
	resolver *theme.Resolver
	snapshot atomic.Pointer[Value]

	mu       sync.Mutex
	subs     map[int]func(Value)
	next     int
	children []*Scope
	closed   bool
}

// Provide creates a root scope with the requested initial mode. The zero
// Mode requests system.
func Provide(initial theme.Mode, opts ...Option) *Scope {
	return newScope(initial, options{}, opts)
}

// Provide creates a nested scope. The child inherits this scope's source and
// logger unless overridden, but keeps its own mode and snapshot. Closing the
// parent closes its children.
func (s *Scope) Provide(initial theme.Mode, opts ...Option) *Scope {
	child := newScope(initial, options{source: s.source, log: s.log}, opts)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		child.Close()
		return child
	}
	s.children = append(s.children, child)
	s.mu.Unlock()

	child.log.WithField("parent", s.id).Debug("nested theme scope created")
	return child
}

func newScope(initial theme.Mode, base options, opts []Option) *Scope {
	for _, opt := range opts {
		opt(&base)
	}

	s := &Scope{
		id:     newID(),
		source: base.source,
		subs:   make(map[int]func(Value)),
	}
	s.log = base.log.WithField("scope", s.id)

	s.resolver = theme.NewResolver(initial, base.source, theme.WithLogger(s.log))
	s.resolver.OnChange(func(theme.State) { s.publish() })

	s.mu.Lock()
	s.snapshot.Store(s.valueFor(s.resolver.State()))
	s.mu.Unlock()

	s.log.WithField("mode", string(s.resolver.Mode())).Debug("theme scope created")
	return s
}

// ID returns the scope's unique identifier.
func (s *Scope) ID() string {
	return s.id
}

// Value returns the snapshot currently published by the scope.
func (s *Scope) Value() Value {
	return *s.snapshot.Load()
}

// State returns the resolver state behind the current snapshot.
func (s *Scope) State() theme.State {
	return s.resolver.State()
}

// SetMode changes the requested mode. It does nothing once the scope is closed.
func (s *Scope) SetMode(mode theme.Mode) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		s.log.Debug("mode change on closed theme scope ignored")
		return
	}
	s.resolver.SetMode(mode)
}

// Subscribe registers fn to receive every snapshot published after this call.
// Subscribers run synchronously, in registration order, in the goroutine that
// caused the update.
func (s *Scope) Subscribe(fn func(Value)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return func() {}
	}

	id := s.next
	s.next++
	s.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Close releases the host watch, drops subscribers and closes nested scopes.
// Calling it more than once is harmless.
func (s *Scope) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.subs = make(map[int]func(Value))
	children := s.children
	s.children = nil
	s.mu.Unlock()

	for _, child := range children {
		child.Close()
	}
	s.resolver.Dispose()
	s.log.Debug("theme scope closed")
}

func (s *Scope) publish() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	next := s.valueFor(s.resolver.State())
	prev := s.snapshot.Load()
	if prev != nil && prev.Mode == next.Mode && prev.System == next.System && prev.Theme == next.Theme {
		s.mu.Unlock()
		return
	}
	s.snapshot.Store(next)

	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(Value), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	s.mu.Unlock()

	value := *next
	for _, fn := range fns {
		fn(value)
	}
}

func (s *Scope) valueFor(st theme.State) *Value {
	return &Value{
		Theme:    st.Theme,
		Mode:     st.Mode,
		System:   st.System,
		SetTheme: s.SetMode,
	}
}

// Consume returns the value published by s. With no scope it returns the
// light fallback and, in development mode, warns once per process.
func Consume(s *Scope) Value {
	if s == nil {
		warnMissingScope()
		return Fallback()
	}
	return s.Value()
}

// Fallback returns a fresh light value whose SetTheme does nothing.
func Fallback() Value {
	return Value{
		Theme:    theme.Light(),
		Mode:     theme.ModeLight,
		System:   theme.AppearanceLight,
		SetTheme: func(theme.Mode) {},
	}
}

func newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}
