// Package tokens holds the design primitives every theme is derived from:
// colors, spacing, typography and border radii.
//
// Scales are fixed-size arrays indexed by typed keys, so a Set is a plain
// comparable value. Default returns a copy; nothing in this package can be
// mutated after process start.
package tokens

import "github.com/charmbracelet/lipgloss"

// Pixels is a length in logical pixels.
type Pixels int

// cellPixels is the number of logical pixels represented by one terminal cell.
const cellPixels = 8

// Cells converts a pixel length to terminal cells, rounding up so that any
// non-zero length occupies at least one cell.
func (p Pixels) Cells() int {
	if p <= 0 {
		return 0
	}
	return (int(p) + cellPixels - 1) / cellPixels
}

// Ramp is a ten-shade color scale indexed by Weight.
type Ramp [WeightCount]lipgloss.Color

// Color returns the shade for w, or an empty color when w is out of range.
func (r Ramp) Color(w Weight) lipgloss.Color {
	if !w.valid() {
		return ""
	}
	return r[w]
}

// Colors holds the brand, semantic and neutral colors.
type Colors struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Danger    lipgloss.Color
	Neutral   Ramp
}

// SpacingScale maps spacing keys to pixel lengths.
type SpacingScale [spacingKeyCount]Pixels

// Get returns the spacing for k, or zero when k is out of range.
func (s SpacingScale) Get(k SpacingKey) Pixels {
	if k < 0 || int(k) >= len(s) {
		return 0
	}
	return s[k]
}

// FontSizeScale maps font size keys to pixel sizes.
type FontSizeScale [fontSizeKeyCount]Pixels

// Get returns the font size for k, falling back to md when k is out of range.
func (s FontSizeScale) Get(k FontSizeKey) Pixels {
	if k < 0 || int(k) >= len(s) {
		return s[FontSizeMD]
	}
	return s[k]
}

// FontWeightScale maps weight keys to numeric CSS-style weights.
type FontWeightScale [fontWeightKeyCount]int

// Get returns the weight for k, falling back to normal when k is out of range.
func (s FontWeightScale) Get(k FontWeightKey) int {
	if k < 0 || int(k) >= len(s) {
		return s[FontWeightNormal]
	}
	return s[k]
}

// LineHeightScale maps line height keys to unitless ratios.
type LineHeightScale [lineHeightKeyCount]float64

// Get returns the ratio for k, falling back to normal when k is out of range.
func (s LineHeightScale) Get(k LineHeightKey) float64 {
	if k < 0 || int(k) >= len(s) {
		return s[LineHeightNormal]
	}
	return s[k]
}

// LetterSpacingScale maps tracking keys to em offsets.
type LetterSpacingScale [letterSpacingKeyCount]float64

// Get returns the tracking for k, falling back to normal when k is out of range.
func (s LetterSpacingScale) Get(k LetterSpacingKey) float64 {
	if k < 0 || int(k) >= len(s) {
		return s[LetterSpacingNormal]
	}
	return s[k]
}

// FontFamily lists the available font stacks.
type FontFamily struct {
	Sans string
}

// Typography groups every typographic scale.
type Typography struct {
	FontFamily    FontFamily
	FontSize      FontSizeScale
	FontWeight    FontWeightScale
	LineHeight    LineHeightScale
	LetterSpacing LetterSpacingScale
}

// RadiusScale maps radius keys to pixel radii.
type RadiusScale [radiusKeyCount]Pixels

// Get returns the radius for k, or zero when k is out of range.
func (s RadiusScale) Get(k RadiusKey) Pixels {
	if k < 0 || int(k) >= len(s) {
		return 0
	}
	return s[k]
}

// Set is the complete token record.
type Set struct {
	Colors       Colors
	Spacing      SpacingScale
	Typography   Typography
	BorderRadius RadiusScale
}

var defaultSet = Set{
	Colors: Colors{
		Primary:   lipgloss.Color("#007AFF"),
		Secondary: lipgloss.Color("#5856D6"),
		Success:   lipgloss.Color("#34C759"),
		Warning:   lipgloss.Color("#FF9500"),
		Danger:    lipgloss.Color("#FF3B30"),
		Neutral: Ramp{
			Weight50:  lipgloss.Color("#F9FAFB"),
			Weight100: lipgloss.Color("#F3F4F6"),
			Weight200: lipgloss.Color("#E5E7EB"),
			Weight300: lipgloss.Color("#D1D5DB"),
			Weight400: lipgloss.Color("#9CA3AF"),
			Weight500: lipgloss.Color("#6B7280"),
			Weight600: lipgloss.Color("#4B5563"),
			Weight700: lipgloss.Color("#374151"),
			Weight800: lipgloss.Color("#1F2937"),
			Weight900: lipgloss.Color("#111827"),
		},
	},
	Spacing: SpacingScale{
		SpacingXS:  4,
		SpacingSM:  8,
		SpacingMD:  16,
		SpacingLG:  24,
		SpacingXL:  32,
		Spacing2XL: 48,
	},
	Typography: Typography{
		FontFamily: FontFamily{
			Sans: `-apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif`,
		},
		FontSize: FontSizeScale{
			FontSizeXS:  12,
			FontSizeSM:  14,
			FontSizeMD:  16,
			FontSizeLG:  18,
			FontSizeXL:  20,
			FontSize2XL: 24,
			FontSize3XL: 30,
			FontSize4XL: 36,
		},
		FontWeight: FontWeightScale{
			FontWeightNormal:   400,
			FontWeightMedium:   500,
			FontWeightSemibold: 600,
			FontWeightBold:     700,
		},
		LineHeight: LineHeightScale{
			LineHeightTight:   1.2,
			LineHeightNormal:  1.5,
			LineHeightRelaxed: 1.75,
		},
		LetterSpacing: LetterSpacingScale{
			LetterSpacingTight:  -0.02,
			LetterSpacingNormal: 0,
			LetterSpacingWide:   0.02,
		},
	},
	BorderRadius: RadiusScale{
		RadiusSM:   4,
		RadiusMD:   8,
		RadiusLG:   12,
		RadiusXL:   16,
		RadiusFull: 9999,
	},
}

// Default returns the token set.
func Default() Set {
	return defaultSet
}
