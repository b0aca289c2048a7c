package appearance

import (
	"sort"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/alexisbeaulieu97/tinct/internal/logger"
	"github.com/alexisbeaulieu97/tinct/internal/theme"
	apperrors "github.com/alexisbeaulieu97/tinct/pkg/errors"
)

const (
	portalDest      = "org.freedesktop.portal.Desktop"
	portalPath      = dbus.ObjectPath("/org/freedesktop/portal/desktop")
	settingsIface   = "org.freedesktop.portal.Settings"
	settingsRead    = settingsIface + ".Read"
	settingChanged  = "SettingChanged"
	appearanceSpace = "org.freedesktop.appearance"
	colorSchemeKey  = "color-scheme"

	// colorSchemeDark is the portal value for "prefer dark". 0 means no
	// preference and 2 prefers light.
	colorSchemeDark uint32 = 1
)

// Portal reads the color-scheme setting of the freedesktop settings portal
// over the session bus and follows its SettingChanged signal.
type Portal struct {
	conn *dbus.Conn
	obj  dbus.BusObject
	log  *logger.Logger

	mu        sync.Mutex
	listeners map[int]func(theme.Appearance)
	next      int
	signals   chan *dbus.Signal
	done      chan struct{}
	running   bool
}

// NewPortal connects to the session bus and performs one read to confirm the
// portal answers. Errors are *errors.SourceError.
func NewPortal(log *logger.Logger) (*Portal, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, apperrors.NewSourceError("portal", "connect", err)
	}

	p := &Portal{
		conn:      conn,
		obj:       conn.Object(portalDest, portalPath),
		log:       log,
		listeners: make(map[int]func(theme.Appearance)),
	}
	if _, err := p.read(); err != nil {
		return nil, err
	}
	return p, nil
}

// Preference returns the current portal color scheme. A failed read is
// logged and reported as unsupported.
func (p *Portal) Preference() (theme.Appearance, bool) {
	a, err := p.read()
	if err != nil {
		p.log.Debug(err.Error())
		return theme.AppearanceLight, false
	}
	return a, true
}

// Watch registers fn for color-scheme changes. The first watcher subscribes
// to the portal signal; cancelling the last one unsubscribes.
func (p *Portal) Watch(fn func(theme.Appearance)) (func(), error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		if err := p.startLocked(); err != nil {
			return nil, err
		}
	}

	id := p.next
	p.next++
	p.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() { p.remove(id) })
	}, nil
}

// Close unsubscribes from the portal signal. The shared session bus
// connection stays open.
func (p *Portal) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = make(map[int]func(theme.Appearance))
	p.stopLocked()
}

func (p *Portal) read() (theme.Appearance, error) {
	var value dbus.Variant
	call := p.obj.Call(settingsRead, 0, appearanceSpace, colorSchemeKey)
	if call.Err != nil {
		return theme.AppearanceLight, apperrors.NewSourceError("portal", "read", call.Err)
	}
	if err := call.Store(&value); err != nil {
		return theme.AppearanceLight, apperrors.NewSourceError("portal", "decode", err)
	}
	return decodeColorScheme(value), nil
}

func (p *Portal) startLocked() error {
	err := p.conn.AddMatchSignal(
		dbus.WithMatchObjectPath(portalPath),
		dbus.WithMatchInterface(settingsIface),
		dbus.WithMatchMember(settingChanged),
	)
	if err != nil {
		return apperrors.NewSourceError("portal", "watch", err)
	}

	p.signals = make(chan *dbus.Signal, 10)
	p.done = make(chan struct{})
	p.conn.Signal(p.signals)
	p.running = true

	go p.loop(p.signals, p.done)
	return nil
}

func (p *Portal) stopLocked() {
	if !p.running {
		return
	}
	p.running = false
	p.conn.RemoveSignal(p.signals)
	if err := p.conn.RemoveMatchSignal(
		dbus.WithMatchObjectPath(portalPath),
		dbus.WithMatchInterface(settingsIface),
		dbus.WithMatchMember(settingChanged),
	); err != nil {
		p.log.Debug(apperrors.NewSourceError("portal", "unwatch", err).Error())
	}
	close(p.done)
}

func (p *Portal) remove(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.listeners, id)
	if len(p.listeners) == 0 {
		p.stopLocked()
	}
}

func (p *Portal) loop(signals <-chan *dbus.Signal, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case sig, ok := <-signals:
			if !ok {
				return
			}
			a, ok := parseSettingChanged(sig)
			if !ok {
				continue
			}
			p.log.WithField("appearance", string(a)).Debug("portal color scheme changed")
			p.dispatch(a)
		}
	}
}

func (p *Portal) dispatch(a theme.Appearance) {
	p.mu.Lock()
	ids := make([]int, 0, len(p.listeners))
	for id := range p.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(theme.Appearance), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, p.listeners[id])
	}
	p.mu.Unlock()

	for _, fn := range fns {
		fn(a)
	}
}

// parseSettingChanged extracts the color scheme from a SettingChanged signal.
// Signals for other settings report false.
func parseSettingChanged(sig *dbus.Signal) (theme.Appearance, bool) {
	if sig == nil || sig.Name != settingsIface+"."+settingChanged || len(sig.Body) < 3 {
		return theme.AppearanceLight, false
	}
	namespace, _ := sig.Body[0].(string)
	key, _ := sig.Body[1].(string)
	if namespace != appearanceSpace || key != colorSchemeKey {
		return theme.AppearanceLight, false
	}
	value, ok := sig.Body[2].(dbus.Variant)
	if !ok {
		return theme.AppearanceLight, false
	}
	return decodeColorScheme(value), true
}

// decodeColorScheme maps a portal value to an appearance. Read wraps the
// value in a second variant on older portals, so nesting is unwrapped.
func decodeColorScheme(v dbus.Variant) theme.Appearance {
	value := v.Value()
	for {
		inner, ok := value.(dbus.Variant)
		if !ok {
			break
		}
		value = inner.Value()
	}

	switch n := value.(type) {
	case uint32:
		if n == colorSchemeDark {
			return theme.AppearanceDark
		}
	case int32:
		if n == int32(colorSchemeDark) {
			return theme.AppearanceDark
		}
	}
	return theme.AppearanceLight
}
