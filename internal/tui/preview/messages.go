package preview

import (
	"github.com/alexisbeaulieu97/tinct/internal/config"
	"github.com/alexisbeaulieu97/tinct/internal/provider"
	"github.com/alexisbeaulieu97/tinct/internal/theme"
)

// ThemeChangedMsg carries a snapshot published by the scope.
type ThemeChangedMsg struct {
	Value provider.Value
}

// ConfigChangedMsg carries settings reloaded from disk.
type ConfigChangedMsg struct {
	Config *config.Config
}

// SavedMsg reports the outcome of persisting the mode.
type SavedMsg struct {
	Mode theme.Mode
	Err  error
}
