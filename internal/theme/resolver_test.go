package theme

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	mu        sync.Mutex
	pref      Appearance
	supported bool
	watchErr  error
	// onWatch, when set, becomes the preference as a watch is registered
	// without notifying anyone.
	onWatch  Appearance
	watchers map[int]func(Appearance)
	next     int
	cancels  int
}

func newFakeSource(pref Appearance) *fakeSource {
	return &fakeSource{pref: pref, supported: true, watchers: make(map[int]func(Appearance))}
}

func (f *fakeSource) Preference() (Appearance, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pref, f.supported
}

func (f *fakeSource) Watch(fn func(Appearance)) (func(), error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.watchErr != nil {
		return nil, f.watchErr
	}
	if f.onWatch != "" {
		f.pref = f.onWatch
	}
	id := f.next
	f.next++
	f.watchers[id] = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if _, ok := f.watchers[id]; ok {
			delete(f.watchers, id)
			f.cancels++
		}
	}, nil
}

func (f *fakeSource) set(a Appearance) {
	f.mu.Lock()
	f.pref = a
	fns := make([]func(Appearance), 0, len(f.watchers))
	for _, fn := range f.watchers {
		fns = append(fns, fn)
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn(a)
	}
}

func (f *fakeSource) watcherCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.watchers)
}

func TestResolverModeTransitions(t *testing.T) {
	r := NewResolver(ModeLight, nil)
	defer r.Dispose()

	assert.Equal(t, Light(), r.Theme())

	r.SetMode(ModeDark)
	assert.Equal(t, AppearanceDark, r.Resolved())
	assert.Equal(t, Dark(), r.Theme())

	r.SetMode(ModeSystem)
	assert.Equal(t, AppearanceLight, r.Resolved(), "system resolves to light when never observed")

	r.SetMode(ModeLight)
	assert.Equal(t, Light(), r.Theme())
}

func TestResolverDefaultsToSystemPreference(t *testing.T) {
	src := newFakeSource(AppearanceDark)
	r := NewResolver(ModeSystem, src)
	defer r.Dispose()

	assert.True(t, r.Watching())
	assert.Equal(t, AppearanceDark, r.SystemPreference())
	assert.Equal(t, Dark(), r.Theme())
	assert.Equal(t, 1, src.watcherCount())
}

func TestResolverTracksHostChanges(t *testing.T) {
	src := newFakeSource(AppearanceLight)
	r := NewResolver(ModeSystem, src)
	defer r.Dispose()

	var seen []State
	r.OnChange(func(st State) { seen = append(seen, st) })

	src.set(AppearanceDark)
	assert.Equal(t, Dark(), r.Theme())
	require.Len(t, seen, 1)
	assert.Equal(t, State{Mode: ModeSystem, System: AppearanceDark, Resolved: AppearanceDark, Theme: Dark()}, seen[0])

	src.set(AppearanceDark)
	assert.Len(t, seen, 1, "repeated host values do not notify")

	r.SetMode(ModeLight)
	src.set(AppearanceLight)
	src.set(AppearanceDark)
	assert.Equal(t, Light(), r.Theme(), "explicit mode wins over host preference")
	assert.Equal(t, AppearanceDark, r.SystemPreference())

	r.SetMode(ModeSystem)
	assert.Equal(t, Dark(), r.Theme(), "system resolves to the last observed preference")
}

func TestResolverUnsupportedHost(t *testing.T) {
	src := newFakeSource(AppearanceDark)
	src.supported = false

	r := NewResolver(ModeSystem, src)
	defer r.Dispose()

	assert.False(t, r.Watching())
	assert.Equal(t, 0, src.watcherCount())
	assert.Equal(t, Light(), r.Theme())

	r.SetMode(ModeDark)
	r.SetMode(ModeSystem)
	assert.Equal(t, AppearanceLight, r.Resolved())
}

func TestResolverWatchFailureKeepsInitialRead(t *testing.T) {
	src := newFakeSource(AppearanceDark)
	src.watchErr = errors.New("bus unavailable")

	r := NewResolver(ModeSystem, src)
	defer r.Dispose()

	assert.False(t, r.Watching())
	assert.Equal(t, AppearanceDark, r.Resolved())
}

func TestResolverSetModeNotifies(t *testing.T) {
	r := NewResolver(ModeLight, nil)
	defer r.Dispose()

	var seen []Mode
	r.OnChange(func(st State) { seen = append(seen, st.Mode) })

	r.SetMode(ModeDark)
	r.SetMode(ModeDark)
	r.SetMode(ModeSystem)
	assert.Equal(t, []Mode{ModeDark, ModeSystem}, seen)
}

func TestResolverDisposeIsIdempotent(t *testing.T) {
	src := newFakeSource(AppearanceLight)
	r := NewResolver(ModeSystem, src)

	require.NotPanics(t, func() {
		r.Dispose()
		r.Dispose()
	})
	assert.Equal(t, 1, src.cancels, "watch is cancelled exactly once")
	assert.Equal(t, 0, src.watcherCount())
	assert.False(t, r.Watching())
}

func TestResolverIgnoresHostAfterDispose(t *testing.T) {
	src := newFakeSource(AppearanceLight)
	r := NewResolver(ModeSystem, src)

	var captured func(Appearance)
	src.mu.Lock()
	for _, fn := range src.watchers {
		captured = fn
	}
	src.mu.Unlock()
	require.NotNil(t, captured)

	r.Dispose()
	captured(AppearanceDark)
	assert.Equal(t, AppearanceLight, r.SystemPreference())
}

func TestResolverUnknownModeResolvesLight(t *testing.T) {
	r := NewResolver(Mode("sepia"), nil)
	assert.Equal(t, AppearanceLight, r.Resolved())
	assert.Equal(t, Light(), r.Theme())
}

func TestResolverConcurrentAccess(t *testing.T) {
	src := newFakeSource(AppearanceLight)
	r := NewResolver(ModeSystem, src)
	defer r.Dispose()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				src.set(AppearanceDark)
			} else {
				src.set(AppearanceLight)
			}
		}(i)
		go func() {
			defer wg.Done()
			st := r.State()
			assert.Equal(t, ForAppearance(st.Resolved), st.Theme)
		}()
	}
	wg.Wait()
}

func TestResolverZeroModeMeansSystem(t *testing.T) {
	src := newFakeSource(AppearanceDark)
	r := NewResolver(Mode(""), src)
	defer r.Dispose()

	assert.Equal(t, ModeSystem, r.Mode())
	assert.Equal(t, Dark(), r.Theme())

	r.SetMode(ModeLight)
	r.SetMode(Mode(""))
	assert.Equal(t, ModeSystem, r.Mode())
	assert.Equal(t, Dark(), r.Theme())
}

func TestResolverCatchesChangeDuringWatchRegistration(t *testing.T) {
	src := newFakeSource(AppearanceLight)
	src.onWatch = AppearanceDark

	r := NewResolver(ModeSystem, src)
	defer r.Dispose()

	assert.True(t, r.Watching())
	assert.Equal(t, AppearanceDark, r.SystemPreference())
	assert.Equal(t, Dark(), r.Theme())
}
