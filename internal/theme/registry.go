package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tinct/internal/tokens"
)

type brand struct {
	primary   lipgloss.Color
	secondary lipgloss.Color
}

var brands = map[Appearance]brand{
	AppearanceLight: {primary: "#0062CC", secondary: "#4644B6"},
	AppearanceDark:  {primary: "#3395FF", secondary: "#6B6AE0"},
}

// darkNeutral names, for each weight of the dark ramp, the light weight it
// takes its color from. Pairs run front to back across the ramp.
var darkNeutral = [tokens.WeightCount]tokens.Weight{
	tokens.Weight50:  tokens.Weight900,
	tokens.Weight100: tokens.Weight800,
	tokens.Weight200: tokens.Weight700,
	tokens.Weight300: tokens.Weight600,
	tokens.Weight400: tokens.Weight500,
	tokens.Weight500: tokens.Weight400,
	tokens.Weight600: tokens.Weight300,
	tokens.Weight700: tokens.Weight200,
	tokens.Weight800: tokens.Weight100,
	tokens.Weight900: tokens.Weight50,
}

var (
	lightTheme = Build(tokens.Default(), AppearanceLight)
	darkTheme  = Build(tokens.Default(), AppearanceDark)
)

// Light returns the light theme.
func Light() Theme { return lightTheme }

// Dark returns the dark theme.
func Dark() Theme { return darkTheme }

// ForAppearance returns Dark for AppearanceDark and Light otherwise.
func ForAppearance(a Appearance) Theme {
	if a == AppearanceDark {
		return darkTheme
	}
	return lightTheme
}

// Build derives the theme for appearance a from a token set. Spacing,
// typography and radii are carried unchanged; semantic colors pass through;
// primary and secondary are per-appearance; the dark neutral ramp is the
// light ramp remapped through darkNeutral.
func Build(set tokens.Set, a Appearance) Theme {
	if a != AppearanceDark {
		a = AppearanceLight
	}
	b := brands[a]

	colors := tokens.Colors{
		Primary:   b.primary,
		Secondary: b.secondary,
		Success:   set.Colors.Success,
		Warning:   set.Colors.Warning,
		Danger:    set.Colors.Danger,
		Neutral:   set.Colors.Neutral,
	}
	if a == AppearanceDark {
		for w, from := range darkNeutral {
			colors.Neutral[w] = set.Colors.Neutral[from]
		}
	}

	return Theme{
		Name:         a,
		Colors:       colors,
		Spacing:      set.Spacing,
		Typography:   set.Typography,
		BorderRadius: set.BorderRadius,
	}
}
