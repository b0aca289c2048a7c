package appearance

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tinct/internal/theme"
)

// Terminal reads the preference from the terminal background color.
// Terminals do not announce background changes, so Watch never fires.
type Terminal struct {
	isTerminal func() bool
	hasDark    func() bool
}

// NewTerminal creates a source probing out, normally os.Stdout.
func NewTerminal(out *os.File) *Terminal {
	return &Terminal{
		isTerminal: func() bool { return out != nil && term.IsTerminal(int(out.Fd())) },
		hasDark:    lipgloss.HasDarkBackground,
	}
}

// Preference reports the background as dark or light. It is unsupported when
// out is not a terminal.
func (t *Terminal) Preference() (theme.Appearance, bool) {
	if !t.isTerminal() {
		return theme.AppearanceLight, false
	}
	if t.hasDark() {
		return theme.AppearanceDark, true
	}
	return theme.AppearanceLight, true
}

// Watch registers nothing and returns a no-op cancel.
func (t *Terminal) Watch(func(theme.Appearance)) (func(), error) {
	return func() {}, nil
}
