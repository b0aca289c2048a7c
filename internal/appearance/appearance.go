// Package appearance provides host appearance preference sources for the
// theme resolver: the freedesktop settings portal, the terminal background,
// an in-process manual source, and a source for hosts with no such concept.
package appearance

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alexisbeaulieu97/tinct/internal/logger"
	"github.com/alexisbeaulieu97/tinct/internal/theme"
)

// Kind selects which host source Detect builds.
type Kind string

const (
	KindAuto     Kind = "auto"
	KindPortal   Kind = "portal"
	KindTerminal Kind = "terminal"
	KindNone     Kind = "none"
)

// Kinds lists every kind accepted by ParseKind.
var Kinds = []Kind{KindAuto, KindPortal, KindTerminal, KindNone}

// ErrInvalidKind is returned by ParseKind for unknown source names.
var ErrInvalidKind = errors.New("invalid appearance source")

// ParseKind converts user input into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// Detect builds the source selected by kind. Auto prefers the portal, then
// the terminal, and finally Unsupported. Failures are logged at debug level
// and degrade to Unsupported; Detect never fails.
func Detect(kind Kind, log *logger.Logger) theme.PreferenceSource {
	log = log.WithField("source", string(kind))

	switch kind {
	case KindNone:
		return Unsupported{}
	case KindPortal:
		p, err := NewPortal(log)
		if err != nil {
			log.Debug(err.Error())
			return Unsupported{}
		}
		return p
	case KindTerminal:
		return NewTerminal(os.Stdout)
	}

	p, err := NewPortal(log)
	if err == nil {
		log.Debug("using settings portal")
		return p
	}
	log.Debug(err.Error())

	t := NewTerminal(os.Stdout)
	if _, ok := t.Preference(); ok {
		log.Debug("using terminal background")
		return t
	}

	log.Debug("no appearance source available")
	return Unsupported{}
}

// Unsupported is the source for hosts that cannot express a preference.
type Unsupported struct{}

// Preference always reports that no preference is available.
func (Unsupported) Preference() (theme.Appearance, bool) {
	return theme.AppearanceLight, false
}

// Watch registers nothing.
func (Unsupported) Watch(func(theme.Appearance)) (func(), error) {
	return func() {}, nil
}
