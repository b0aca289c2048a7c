package appearance

import (
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/tinct/internal/theme"
)

// Manual is an in-process source whose preference is set by the caller.
type Manual struct {
	mu        sync.Mutex
	pref      theme.Appearance
	listeners map[int]func(theme.Appearance)
	next      int
}

// NewManual creates a manual source reporting initial.
func NewManual(initial theme.Appearance) *Manual {
	return &Manual{
		pref:      normalize(initial),
		listeners: make(map[int]func(theme.Appearance)),
	}
}

// Preference returns the current preference. A manual source is always supported.
func (m *Manual) Preference() (theme.Appearance, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pref, true
}

// Watch registers fn for changes made through Set.
func (m *Manual) Watch(fn func(theme.Appearance)) (func(), error) {
	m.mu.Lock()
	id := m.next
	m.next++
	m.listeners[id] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.listeners, id)
			m.mu.Unlock()
		})
	}, nil
}

// Set changes the preference and notifies watchers in registration order.
// Setting the current value notifies nobody.
func (m *Manual) Set(a theme.Appearance) {
	a = normalize(a)

	m.mu.Lock()
	if m.pref == a {
		m.mu.Unlock()
		return
	}
	m.pref = a
	ids := make([]int, 0, len(m.listeners))
	for id := range m.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(theme.Appearance), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, m.listeners[id])
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(a)
	}
}

// Listeners returns the number of registered watchers.
func (m *Manual) Listeners() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.listeners)
}

func normalize(a theme.Appearance) theme.Appearance {
	if a == theme.AppearanceDark {
		return theme.AppearanceDark
	}
	return theme.AppearanceLight
}
