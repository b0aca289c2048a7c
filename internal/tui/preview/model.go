// Package preview is an interactive bubbletea gallery of the themed
// components. It follows mode changes from keys, the host and the settings
// file.
package preview

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tinct/internal/appearance"
	"github.com/alexisbeaulieu97/tinct/internal/provider"
	"github.com/alexisbeaulieu97/tinct/internal/theme"
	"github.com/alexisbeaulieu97/tinct/internal/ui/components"
)

// Option customises a Model.
type Option func(*Model)

// WithManualSource lets the s key flip the preference reported by src.
func WithManualSource(src *appearance.Manual) Option {
	return func(m *Model) {
		m.manual = src
	}
}

// WithSave sets the function the button uses to persist the current mode.
func WithSave(save func(theme.Mode) error) Option {
	return func(m *Model) {
		m.save = save
	}
}

// Model is the preview state.
type Model struct {
	scope    *provider.Scope
	manual   *appearance.Manual
	save     func(theme.Mode) error
	keys     KeyMap
	help     help.Model
	button   *components.Button
	presses  *int
	updates  chan provider.Value
	cancel   func()
	status   string
	width    int
	showHelp bool
	quitting bool
}

// NewModel builds a preview bound to scope. Close releases its subscription.
func NewModel(scope *provider.Scope, opts ...Option) Model {
	presses := new(int)
	m := Model{
		scope:   scope,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		presses: presses,
		updates: make(chan provider.Value, 8),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.button = components.PrimaryButton("Save mode").WithOnPress(func() { *presses++ })

	updates := m.updates
	m.cancel = scope.Subscribe(func(v provider.Value) {
		select {
		case updates <- v:
		default:
		}
	})
	return m
}

// Init waits for the first published snapshot.
func (m Model) Init() tea.Cmd {
	return waitForTheme(m.updates)
}

// Close detaches the model from its scope.
func (m Model) Close() {
	if m.cancel != nil {
		m.cancel()
	}
}

// Presses returns how many times the button has been pressed.
func (m Model) Presses() int {
	return *m.presses
}

// Status returns the last status line.
func (m Model) Status() string {
	return m.status
}

// Quitting reports whether the model asked the program to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

func waitForTheme(updates <-chan provider.Value) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-updates
		if !ok {
			return nil
		}
		return ThemeChangedMsg{Value: v}
	}
}

func saveCmd(save func(theme.Mode) error, mode theme.Mode) tea.Cmd {
	return func() tea.Msg {
		return SavedMsg{Mode: mode, Err: save(mode)}
	}
}
