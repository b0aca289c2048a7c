// Package theme derives the concrete light and dark themes from the token set
// and resolves which of them is in effect for a requested mode.
//
// A Theme is a comparable value. Light and Dark return copies of two
// package-level themes built once at startup, so callers may compare them with
// == and can never alter what other callers observe.
//
// A Resolver tracks the requested Mode and the host appearance reported by a
// PreferenceSource:
//
//	r := theme.NewResolver(theme.ModeSystem, appearance.Detect(appearance.KindAuto, log))
//	defer r.Dispose()
//	current := r.Theme()
package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/tinct/internal/tokens"
)

// Mode is the appearance requested by the user.
type Mode string

const (
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
	ModeSystem Mode = "system"
)

// Modes lists every mode in display order.
var Modes = []Mode{ModeLight, ModeDark, ModeSystem}

// ErrInvalidMode is returned by ParseMode for unknown mode names.
var ErrInvalidMode = errors.New("invalid theme mode")

// ParseMode converts user input into a Mode. Matching is case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeLight:
		return ModeLight, nil
	case ModeDark:
		return ModeDark, nil
	case ModeSystem:
		return ModeSystem, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Next returns the mode that follows m in the light -> dark -> system cycle.
func (m Mode) Next() Mode {
	switch m {
	case ModeLight:
		return ModeDark
	case ModeDark:
		return ModeSystem
	default:
		return ModeLight
	}
}

func (m Mode) String() string { return string(m) }

// Appearance is a resolved, concrete appearance.
type Appearance string

const (
	AppearanceLight Appearance = "light"
	AppearanceDark  Appearance = "dark"
)

func (a Appearance) String() string { return string(a) }

// Theme is a fully resolved bundle of colors and shared scales.
type Theme struct {
	Name         Appearance
	Colors       tokens.Colors
	Spacing      tokens.SpacingScale
	Typography   tokens.Typography
	BorderRadius tokens.RadiusScale
}

// IsDark reports whether the theme is the dark variant.
func (t Theme) IsDark() bool {
	return t.Name == AppearanceDark
}
