package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tinct/internal/theme"
	"github.com/alexisbeaulieu97/tinct/internal/tokens"
)

// boldWeight is the lowest font weight rendered bold in a terminal.
const boldWeight = 600

// onBrand is the text color drawn on primary and secondary buttons.
const onBrand lipgloss.Color = "#FFFFFF"

// Attributes are the resolved visual properties of one styled element.
// Lengths stay in pixels; Style maps them to terminal cells.
type Attributes struct {
	Background    lipgloss.Color
	Foreground    lipgloss.Color
	PaddingY      tokens.Pixels
	PaddingX      tokens.Pixels
	Radius        tokens.Pixels
	FontSize      tokens.Pixels
	FontWeight    int
	LineHeight    float64
	LetterSpacing float64
	Faint         bool
}

// Bold reports whether the weight renders bold in a terminal.
func (a Attributes) Bold() bool {
	return a.FontWeight >= boldWeight
}

// Style maps the attributes onto a lipgloss style.
func (a Attributes) Style() lipgloss.Style {
	style := lipgloss.NewStyle()
	if a.Background != "" {
		style = style.Background(a.Background)
	}
	if a.Foreground != "" {
		style = style.Foreground(a.Foreground)
	}
	if a.PaddingY > 0 || a.PaddingX > 0 {
		style = style.Padding(a.PaddingY.Cells(), a.PaddingX.Cells())
	}
	if a.Radius > 0 {
		style = style.Border(lipgloss.RoundedBorder())
		if a.Background != "" {
			style = style.BorderForeground(a.Background)
		}
	}
	if a.Bold() {
		style = style.Bold(true)
	}
	if a.Faint {
		style = style.Faint(true)
	}
	return style
}

// Variant selects the brand color of a Box or Button.
type Variant int

const (
	VariantPrimary Variant = iota
	VariantSecondary
)

var variantNames = [...]string{"primary", "secondary"}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// ParseVariant converts a variant name. Unknown names report false.
func ParseVariant(s string) (Variant, bool) {
	for i, name := range variantNames {
		if name == s {
			return Variant(i), true
		}
	}
	return VariantPrimary, false
}

func (v Variant) color(th theme.Theme) lipgloss.Color {
	if v == VariantSecondary {
		return th.Colors.Secondary
	}
	return th.Colors.Primary
}

// BoxParts are the attributes of the three parts of a Box.
type BoxParts struct {
	Container Attributes
	Title     Attributes
	Content   Attributes
}

// BoxAttributes computes the attributes of a Box. Unknown variants render
// as primary.
func BoxAttributes(th theme.Theme, v Variant) BoxParts {
	text := th.Colors.Neutral.Color(tokens.Weight900)
	bg := v.color(th)
	pad := th.Spacing.Get(tokens.SpacingMD)

	return BoxParts{
		Container: Attributes{
			Background: bg,
			Foreground: text,
			PaddingY:   pad,
			PaddingX:   pad,
			Radius:     th.BorderRadius.Get(tokens.RadiusMD),
		},
		Title: Attributes{
			Background: bg,
			Foreground: text,
			FontSize:   th.Typography.FontSize.Get(tokens.FontSizeLG),
			FontWeight: th.Typography.FontWeight.Get(tokens.FontWeightBold),
			LineHeight: th.Typography.LineHeight.Get(tokens.LineHeightNormal),
		},
		Content: Attributes{
			Background: bg,
			Foreground: text,
			FontSize:   th.Typography.FontSize.Get(tokens.FontSizeSM),
			FontWeight: th.Typography.FontWeight.Get(tokens.FontWeightNormal),
			LineHeight: th.Typography.LineHeight.Get(tokens.LineHeightNormal),
		},
	}
}

// ButtonAttributes computes the attributes of a Button. Unknown variants
// render as primary.
func ButtonAttributes(th theme.Theme, v Variant) Attributes {
	return Attributes{
		Background: v.color(th),
		Foreground: onBrand,
		PaddingY:   th.Spacing.Get(tokens.SpacingSM),
		PaddingX:   th.Spacing.Get(tokens.SpacingLG),
		Radius:     th.BorderRadius.Get(tokens.RadiusMD),
		FontSize:   th.Typography.FontSize.Get(tokens.FontSizeMD),
		FontWeight: th.Typography.FontWeight.Get(tokens.FontWeightBold),
		LineHeight: th.Typography.LineHeight.Get(tokens.LineHeightNormal),
	}
}

// TextVariant is one of the ten typographic roles.
type TextVariant int

const (
	TextH1 TextVariant = iota
	TextH2
	TextH3
	TextH4
	TextH5
	TextH6
	TextBody
	TextBodySmall
	TextCaption
	TextLabel
)

const textVariantCount = int(TextLabel) + 1

var textVariantNames = [textVariantCount]string{
	"h1", "h2", "h3", "h4", "h5", "h6", "body", "body-small", "caption", "label",
}

func (v TextVariant) String() string {
	if !v.valid() {
		return fmt.Sprintf("TextVariant(%d)", int(v))
	}
	return textVariantNames[v]
}

func (v TextVariant) valid() bool {
	return v >= 0 && int(v) < textVariantCount
}

// TextVariants lists every text variant in display order.
func TextVariants() []TextVariant {
	out := make([]TextVariant, textVariantCount)
	for i := range out {
		out[i] = TextVariant(i)
	}
	return out
}

// ParseTextVariant converts a variant name. Unknown names report false.
func ParseTextVariant(s string) (TextVariant, bool) {
	for i, name := range textVariantNames {
		if name == s {
			return TextVariant(i), true
		}
	}
	return TextBody, false
}

type textSpec struct {
	size          tokens.FontSizeKey
	weight        tokens.FontWeightKey
	lineHeight    tokens.LineHeightKey
	letterSpacing tokens.LetterSpacingKey
}

var textSpecs = [textVariantCount]textSpec{
	TextH1:        {tokens.FontSize4XL, tokens.FontWeightBold, tokens.LineHeightTight, tokens.LetterSpacingTight},
	TextH2:        {tokens.FontSize3XL, tokens.FontWeightBold, tokens.LineHeightTight, tokens.LetterSpacingTight},
	TextH3:        {tokens.FontSize2XL, tokens.FontWeightSemibold, tokens.LineHeightTight, tokens.LetterSpacingNormal},
	TextH4:        {tokens.FontSizeXL, tokens.FontWeightSemibold, tokens.LineHeightNormal, tokens.LetterSpacingNormal},
	TextH5:        {tokens.FontSizeLG, tokens.FontWeightMedium, tokens.LineHeightNormal, tokens.LetterSpacingNormal},
	TextH6:        {tokens.FontSizeMD, tokens.FontWeightMedium, tokens.LineHeightNormal, tokens.LetterSpacingNormal},
	TextBody:      {tokens.FontSizeMD, tokens.FontWeightNormal, tokens.LineHeightNormal, tokens.LetterSpacingNormal},
	TextBodySmall: {tokens.FontSizeSM, tokens.FontWeightNormal, tokens.LineHeightNormal, tokens.LetterSpacingNormal},
	TextCaption:   {tokens.FontSizeXS, tokens.FontWeightNormal, tokens.LineHeightRelaxed, tokens.LetterSpacingWide},
	TextLabel:     {tokens.FontSizeSM, tokens.FontWeightSemibold, tokens.LineHeightNormal, tokens.LetterSpacingWide},
}

// TextAttributes computes the attributes of a Text. The color is override
// when set, otherwise the strongest neutral shade. Unknown variants render
// as body.
func TextAttributes(th theme.Theme, v TextVariant, override lipgloss.Color) Attributes {
	if !v.valid() {
		v = TextBody
	}
	row := textSpecs[v]

	color := override
	if color == "" {
		color = th.Colors.Neutral.Color(tokens.Weight900)
	}

	return Attributes{
		Foreground:    color,
		FontSize:      th.Typography.FontSize.Get(row.size),
		FontWeight:    th.Typography.FontWeight.Get(row.weight),
		LineHeight:    th.Typography.LineHeight.Get(row.lineHeight),
		LetterSpacing: th.Typography.LetterSpacing.Get(row.letterSpacing),
		Faint:         v == TextCaption,
	}
}
