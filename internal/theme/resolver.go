package theme

import (
	"sync"

	"github.com/alexisbeaulieu97/tinct/internal/logger"
)

// PreferenceSource reports the host environment's appearance preference.
//
// Preference returns false when the host has no way to express one; the
// resolver then assumes light and never calls Watch. Watch registers fn for
// subsequent changes and returns a function that detaches it.
type PreferenceSource interface {
	Preference() (Appearance, bool)
	Watch(fn func(Appearance)) (cancel func(), err error)
}

// State is a consistent snapshot of a resolver.
type State struct {
	Mode     Mode
	System   Appearance
	Resolved Appearance
	Theme    Theme
}

// Resolver tracks a requested mode and the observed host preference and
// derives the theme in effect from them.
type Resolver struct {
	mu       sync.Mutex
	mode     Mode
	system   Appearance
	watching bool
	cancel   func()
	disposed bool
	onChange func(State)
	log      *logger.Logger
}

// ResolverOption customises a Resolver at construction.
type ResolverOption func(*Resolver)

// WithLogger attaches a logger for diagnostics.
func WithLogger(log *logger.Logger) ResolverOption {
	return func(r *Resolver) {
		r.log = log
	}
}

// NewResolver creates a resolver for mode; the zero Mode means ModeSystem.
// When src supports preference queries the current host preference is read
// immediately and a watch is registered; otherwise the system preference
// stays light.
func NewResolver(mode Mode, src PreferenceSource, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		mode:   orSystem(mode),
		system: AppearanceLight,
	}
	for _, opt := range opts {
		opt(r)
	}

	if src == nil {
		return r
	}

	pref, ok := src.Preference()
	if !ok {
		r.log.Debug("host appearance preference unavailable, assuming light")
		return r
	}
	r.system = normalizeAppearance(pref)

	cancel, err := src.Watch(r.observe)
	if err != nil {
		r.log.Error(err, "watch host appearance preference")
		return r
	}

	r.mu.Lock()
	r.watching = true
	r.cancel = cancel
	r.mu.Unlock()

	// Catch a change that landed between the first read and the watch.
	if pref, ok := src.Preference(); ok {
		r.observe(pref)
	}
	return r
}

// OnChange installs the function called after every change of mode or
// observed host preference. It runs outside the resolver lock.
func (r *Resolver) OnChange(fn func(State)) {
	r.mu.Lock()
	r.onChange = fn
	r.mu.Unlock()
}

// SetMode updates the requested mode; the zero Mode means ModeSystem. The
// host watch is left untouched.
func (r *Resolver) SetMode(mode Mode) {
	mode = orSystem(mode)
	r.mu.Lock()
	if r.mode == mode {
		r.mu.Unlock()
		return
	}
	r.mode = mode
	st := r.stateLocked()
	fn := r.onChange
	r.mu.Unlock()

	r.log.WithField("mode", string(mode)).Debug("theme mode set")
	if fn != nil {
		fn(st)
	}
}

func (r *Resolver) observe(a Appearance) {
	a = normalizeAppearance(a)

	r.mu.Lock()
	if r.disposed || r.system == a {
		r.mu.Unlock()
		return
	}
	r.system = a
	st := r.stateLocked()
	fn := r.onChange
	r.mu.Unlock()

	r.log.WithField("appearance", string(a)).Debug("host appearance changed")
	if fn != nil {
		fn(st)
	}
}

// Dispose detaches the host watch. Calling it more than once is harmless.
func (r *Resolver) Dispose() {
	r.mu.Lock()
	if r.disposed {
		r.mu.Unlock()
		return
	}
	r.disposed = true
	cancel := r.cancel
	r.cancel = nil
	r.watching = false
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Watching reports whether a host watch is currently registered.
func (r *Resolver) Watching() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.watching
}

// State returns a consistent snapshot of the resolver.
func (r *Resolver) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stateLocked()
}

// Mode returns the requested mode.
func (r *Resolver) Mode() Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode
}

// SystemPreference returns the last observed host appearance.
func (r *Resolver) SystemPreference() Appearance {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.system
}

// Resolved returns the appearance in effect.
func (r *Resolver) Resolved() Appearance {
	r.mu.Lock()
	defer r.mu.Unlock()
	return resolve(r.mode, r.system)
}

// Theme returns Dark when the resolved appearance is dark, Light otherwise.
func (r *Resolver) Theme() Theme {
	return ForAppearance(r.Resolved())
}

func (r *Resolver) stateLocked() State {
	resolved := resolve(r.mode, r.system)
	return State{
		Mode:     r.mode,
		System:   r.system,
		Resolved: resolved,
		Theme:    ForAppearance(resolved),
	}
}

func resolve(mode Mode, system Appearance) Appearance {
	switch mode {
	case ModeSystem:
		return system
	case ModeDark:
		return AppearanceDark
	default:
		return AppearanceLight
	}
}

func normalizeAppearance(a Appearance) Appearance {
	if a == AppearanceDark {
		return AppearanceDark
	}
	return AppearanceLight
}

func orSystem(m Mode) Mode {
	if m == "" {
		return ModeSystem
	}
	return m
}
