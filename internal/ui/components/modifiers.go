package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tinct/internal/theme"
	"github.com/alexisbeaulieu97/tinct/internal/tokens"
)

// ColorSlot selects a color from a theme.
type ColorSlot func(theme.Theme) lipgloss.Color

// Predefined color slots for use with Background and Foreground.
var (
	SlotPrimary   ColorSlot = func(t theme.Theme) lipgloss.Color { return t.Colors.Primary }
	SlotSecondary ColorSlot = func(t theme.Theme) lipgloss.Color { return t.Colors.Secondary }
	SlotSuccess   ColorSlot = func(t theme.Theme) lipgloss.Color { return t.Colors.Success }
	SlotWarning   ColorSlot = func(t theme.Theme) lipgloss.Color { return t.Colors.Warning }
	SlotDanger    ColorSlot = func(t theme.Theme) lipgloss.Color { return t.Colors.Danger }
)

// SlotNeutral selects shade w of the neutral ramp.
func SlotNeutral(w tokens.Weight) ColorSlot {
	return func(t theme.Theme) lipgloss.Color { return t.Colors.Neutral.Color(w) }
}

// Background applies a theme color as the background.
//
// Example:
//
//	stack := VStack(children...).WithAppliers(Background(SlotNeutral(tokens.Weight50)))
func Background(slot ColorSlot) StyleFunc {
	return func(base lipgloss.Style, th theme.Theme) lipgloss.Style {
		return base.Background(slot(th))
	}
}

// Foreground applies a theme color as the text color.
func Foreground(slot ColorSlot) StyleFunc {
	return func(base lipgloss.Style, th theme.Theme) lipgloss.Style {
		return base.Foreground(slot(th))
	}
}

// Padding applies theme spacing on every side.
func Padding(key tokens.SpacingKey) StyleFunc {
	return func(base lipgloss.Style, th theme.Theme) lipgloss.Style {
		return base.Padding(th.Spacing.Get(key).Cells())
	}
}

// PaddingX applies theme spacing on the left and right.
func PaddingX(key tokens.SpacingKey) StyleFunc {
	return func(base lipgloss.Style, th theme.Theme) lipgloss.Style {
		value := th.Spacing.Get(key).Cells()
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

// PaddingY applies theme spacing on the top and bottom.
func PaddingY(key tokens.SpacingKey) StyleFunc {
	return func(base lipgloss.Style, th theme.Theme) lipgloss.Style {
		value := th.Spacing.Get(key).Cells()
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

// Margin applies theme spacing outside the border.
func Margin(key tokens.SpacingKey) StyleFunc {
	return func(base lipgloss.Style, th theme.Theme) lipgloss.Style {
		return base.Margin(th.Spacing.Get(key).Cells())
	}
}

// Rounded applies a rounded border when the theme radius for key is non-zero.
func Rounded(key tokens.RadiusKey) StyleFunc {
	return func(base lipgloss.Style, th theme.Theme) lipgloss.Style {
		if th.BorderRadius.Get(key) <= 0 {
			return base
		}
		return base.Border(lipgloss.RoundedBorder())
	}
}

// Typography applies the attributes of a text variant.
func Typography(variant TextVariant) StyleFunc {
	return func(base lipgloss.Style, th theme.Theme) lipgloss.Style {
		return base.Inherit(TextAttributes(th, variant, "").Style())
	}
}
