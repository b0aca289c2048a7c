package preview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tinct/internal/theme"
)

// Update handles bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case ThemeChangedMsg:
		m.status = fmt.Sprintf("theme is now %s (%s)", msg.Value.Theme.Name, msg.Value.Mode)
		return m, waitForTheme(m.updates)

	case ConfigChangedMsg:
		if msg.Config != nil {
			m.scope.SetMode(msg.Config.ThemeMode())
		}
		return m, nil

	case SavedMsg:
		if msg.Err != nil {
			m.status = fmt.Sprintf("save failed: %v", msg.Err)
		} else {
			m.status = fmt.Sprintf("saved mode %s", msg.Mode)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cycle):
		m.scope.SetMode(m.scope.Value().Mode.Next())
		return m, nil

	case key.Matches(msg, m.keys.Press):
		if !m.button.Press() {
			return m, nil
		}
		if m.save == nil {
			m.status = fmt.Sprintf("pressed %d times", *m.presses)
			return m, nil
		}
		return m, saveCmd(m.save, m.scope.Value().Mode)

	case key.Matches(msg, m.keys.Host):
		if m.manual == nil {
			return m, nil
		}
		pref, _ := m.manual.Preference()
		if pref == theme.AppearanceDark {
			m.manual.Set(theme.AppearanceLight)
		} else {
			m.manual.Set(theme.AppearanceDark)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	}

	return m, nil
}
