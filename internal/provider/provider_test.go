package provider

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tinct/internal/appearance"
	"github.com/alexisbeaulieu97/tinct/internal/logger"
	"github.com/alexisbeaulieu97/tinct/internal/theme"
)

func TestProvideDefaultsToSystemPreference(t *testing.T) {
	src := appearance.NewManual(theme.AppearanceDark)
	scope := Provide(theme.ModeSystem, WithSource(src))
	defer scope.Close()

	v := scope.Value()
	assert.Equal(t, theme.ModeSystem, v.Mode)
	assert.Equal(t, theme.Dark(), v.Theme)
	assert.NotEmpty(t, scope.ID())
}

func TestProvideWithoutSourceResolvesLight(t *testing.T) {
	scope := Provide(theme.ModeSystem)
	defer scope.Close()

	assert.Equal(t, theme.Light(), Consume(scope).Theme)
}

func TestSetThemeUpdatesConsumers(t *testing.T) {
	scope := Provide(theme.ModeLight)
	defer scope.Close()

	var seen []Value
	cancel := scope.Subscribe(func(v Value) { seen = append(seen, v) })
	defer cancel()

	scope.Value().SetTheme(theme.ModeDark)

	require.Len(t, seen, 1)
	assert.Equal(t, theme.ModeDark, seen[0].Mode)
	assert.Equal(t, theme.Dark(), seen[0].Theme)
	assert.Equal(t, theme.Dark(), scope.Value().Theme)
}

func TestSubscribersShareOneSnapshot(t *testing.T) {
	src := appearance.NewManual(theme.AppearanceLight)
	scope := Provide(theme.ModeSystem, WithSource(src))
	defer scope.Close()

	var a, b []theme.Theme
	scope.Subscribe(func(v Value) { a = append(a, v.Theme) })
	scope.Subscribe(func(v Value) { b = append(b, v.Theme) })

	src.Set(theme.AppearanceDark)
	src.Set(theme.AppearanceLight)

	assert.Equal(t, []theme.Theme{theme.Dark(), theme.Light()}, a)
	assert.Equal(t, a, b)
}

func TestSubscribeCancel(t *testing.T) {
	scope := Provide(theme.ModeLight)
	defer scope.Close()

	calls := 0
	cancel := scope.Subscribe(func(Value) { calls++ })
	scope.SetMode(theme.ModeDark)
	cancel()
	cancel()
	scope.SetMode(theme.ModeLight)

	assert.Equal(t, 1, calls)
}

func TestRepeatedModeDoesNotNotify(t *testing.T) {
	scope := Provide(theme.ModeDark)
	defer scope.Close()

	calls := 0
	scope.Subscribe(func(Value) { calls++ })
	scope.SetMode(theme.ModeDark)
	assert.Zero(t, calls)
}

func TestNestedScopesAreIndependent(t *testing.T) {
	src := appearance.NewManual(theme.AppearanceLight)
	outer := Provide(theme.ModeLight, WithSource(src))
	defer outer.Close()

	inner := outer.Provide(theme.ModeDark)
	assert.Equal(t, theme.Light(), outer.Value().Theme)
	assert.Equal(t, theme.Dark(), inner.Value().Theme)
	assert.NotEqual(t, outer.ID(), inner.ID())

	inner.SetMode(theme.ModeSystem)
	assert.Equal(t, theme.Light(), inner.Value().Theme)
	assert.Equal(t, theme.ModeLight, outer.Value().Mode)

	src.Set(theme.AppearanceDark)
	assert.Equal(t, theme.Dark(), inner.Value().Theme, "child inherits the parent's source")
	assert.Equal(t, theme.Light(), outer.Value().Theme)
}

func TestCloseIsIdempotentAndReleasesWatch(t *testing.T) {
	src := appearance.NewManual(theme.AppearanceLight)
	outer := Provide(theme.ModeSystem, WithSource(src))
	inner := outer.Provide(theme.ModeSystem)
	require.Equal(t, 2, src.Listeners())

	calls := 0
	inner.Subscribe(func(Value) { calls++ })

	require.NotPanics(t, func() {
		outer.Close()
		outer.Close()
		inner.Close()
	})
	assert.Equal(t, 0, src.Listeners())

	src.Set(theme.AppearanceDark)
	inner.SetMode(theme.ModeDark)
	assert.Zero(t, calls)
	assert.Equal(t, theme.Light(), inner.Value().Theme)

	cancel := outer.Subscribe(func(Value) {})
	require.NotPanics(t, cancel)
}

func TestProvideOnClosedScope(t *testing.T) {
	src := appearance.NewManual(theme.AppearanceLight)
	outer := Provide(theme.ModeLight, WithSource(src))
	outer.Close()

	child := outer.Provide(theme.ModeSystem)
	assert.Equal(t, 0, src.Listeners())
	assert.Equal(t, theme.ModeSystem, child.Value().Mode)
}

func TestConsumeWithoutScopeFallsBack(t *testing.T) {
	resetDiagnostics()
	t.Cleanup(resetDiagnostics)

	first := Consume(nil)

	assert.Equal(t, theme.Light(), first.Theme)
	assert.Equal(t, theme.ModeLight, first.Mode)
	require.NotNil(t, first.SetTheme)
	require.NotPanics(t, func() { first.SetTheme(theme.ModeDark) })
	assert.Equal(t, theme.ModeLight, Consume(nil).Mode, "fallback SetTheme has no effect")

	first.Theme.Colors.Primary = "#000000"
	assert.Equal(t, theme.Light(), Consume(nil).Theme, "each fallback is a fresh copy")
}

func TestMissingScopeWarningInDevelopment(t *testing.T) {
	resetDiagnostics()
	t.Cleanup(resetDiagnostics)

	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	SetDevelopment(true, log)
	Consume(nil)
	Consume(nil)
	ConsumeContext(context.Background())

	assert.Equal(t, 1, strings.Count(buf.String(), "outside of any theme scope"))
}

func TestMissingScopeSilentOutsideDevelopment(t *testing.T) {
	resetDiagnostics()
	t.Cleanup(resetDiagnostics)

	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	SetDevelopment(false, log)
	Consume(nil)
	assert.Empty(t, buf.String())
}

func TestContextCarriesScope(t *testing.T) {
	scope := Provide(theme.ModeDark)
	defer scope.Close()

	ctx := NewContext(context.Background(), scope)
	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, scope, got)
	assert.Equal(t, theme.Dark(), ConsumeContext(ctx).Theme)

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
	_, ok = FromContext(NewContext(context.Background(), nil))
	assert.False(t, ok)
}

func TestConcurrentReadsSeeWholeSnapshots(t *testing.T) {
	src := appearance.NewManual(theme.AppearanceLight)
	scope := Provide(theme.ModeSystem, WithSource(src))
	defer scope.Close()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				src.Set(theme.AppearanceDark)
			} else {
				src.Set(theme.AppearanceLight)
			}
		}(i)
		go func() {
			defer wg.Done()
			v := scope.Value()
			assert.Contains(t, []theme.Theme{theme.Light(), theme.Dark()}, v.Theme)
		}()
	}
	wg.Wait()
}

func TestProvideZeroModeMeansSystem(t *testing.T) {
	src := appearance.NewManual(theme.AppearanceDark)
	scope := Provide(theme.Mode(""), WithSource(src))
	defer scope.Close()

	v := scope.Value()
	assert.Equal(t, theme.ModeSystem, v.Mode)
	assert.Equal(t, theme.Dark(), v.Theme)

	scope.SetMode(theme.ModeLight)
	scope.Value().SetTheme(theme.Mode(""))
	assert.Equal(t, theme.ModeSystem, scope.Value().Mode)
	assert.Equal(t, theme.Dark(), scope.Value().Theme)
}

func TestSnapshotCarriesHostPreference(t *testing.T) {
	src := appearance.NewManual(theme.AppearanceLight)
	scope := Provide(theme.ModeLight, WithSource(src))
	defer scope.Close()

	var seen []Value
	scope.Subscribe(func(v Value) { seen = append(seen, v) })

	src.Set(theme.AppearanceDark)

	v := scope.Value()
	assert.Equal(t, theme.AppearanceDark, v.System)
	assert.Equal(t, theme.Light(), v.Theme)
	require.Len(t, seen, 1)
	assert.Equal(t, theme.AppearanceDark, seen[0].System)
	assert.Equal(t, theme.AppearanceLight, Fallback().System)
}
