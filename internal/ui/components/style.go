package components

import (
	"slices"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tinct/internal/theme"
)

// StyleFunc derives a style from the theme of the current render pass.
type StyleFunc func(lipgloss.Style, theme.Theme) lipgloss.Style

// BaseComponent holds the caller-supplied appliers every component accepts.
// Appliers run after a component's own attributes, so they take precedence.
type BaseComponent struct {
	appliers []StyleFunc
}

// NewBaseComponent returns a component base with no appliers.
func NewBaseComponent() BaseComponent {
	return BaseComponent{}
}

// ComputeStyle runs the appliers over an empty style.
func (b *BaseComponent) ComputeStyle(th theme.Theme) lipgloss.Style {
	return b.ComputeStyleOver(lipgloss.NewStyle(), th)
}

// ComputeStyleOver runs the appliers over base.
func (b *BaseComponent) ComputeStyleOver(base lipgloss.Style, th theme.Theme) lipgloss.Style {
	for _, fn := range b.appliers {
		base = fn(base, th)
	}
	return base
}

// SetAppliers replaces the appliers.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.appliers = slices.Clone(appliers)
}

// AddAppliers appends to the appliers.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	b.appliers = slices.Concat(b.appliers, appliers)
}
