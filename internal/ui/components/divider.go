package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tinct/internal/tokens"
)

const defaultDividerWidth = 40

// Divider is a rule drawn in the theme's neutral 300 shade, optionally with a
// label set into it.
type Divider struct {
	BaseComponent
	char      string
	label     string
	length    int
	direction Direction
}

// NewDivider creates a horizontal rule.
func NewDivider() *Divider {
	d := &Divider{BaseComponent: NewBaseComponent(), char: "─", direction: DirectionHorizontal}
	d.SetAppliers(Foreground(SlotNeutral(tokens.Weight300)))
	return d
}

// VerticalDivider creates a vertical rule.
func VerticalDivider() *Divider {
	return NewDivider().WithChar("│").WithDirection(DirectionVertical)
}

func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext draws the rule. Without an explicit length a horizontal
// rule spans the context's width.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	n := d.length
	if n <= 0 && d.direction == DirectionHorizontal {
		n = ctx.Constraints.MaxWidth
	}
	if n <= 0 {
		n = defaultDividerWidth
	}

	style := d.ComputeStyle(ctx.Theme())
	if d.direction == DirectionVertical {
		return style.Render(strings.TrimSuffix(strings.Repeat(d.char+"\n", n), "\n"))
	}
	if d.label == "" {
		return style.Render(strings.Repeat(d.char, n))
	}

	label := " " + d.label + " "
	rest := n - lipgloss.Width(label)
	if rest < 2 {
		return style.Render(label)
	}
	left := rest / 2
	return style.Render(strings.Repeat(d.char, left) + label + strings.Repeat(d.char, rest-left))
}

// WithChar sets the rule character. Empty strings are ignored.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithLabel centres label in a horizontal rule.
func (d *Divider) WithLabel(label string) *Divider {
	d.label = label
	return d
}

// WithWidth sets the length of the rule in cells.
func (d *Divider) WithWidth(width int) *Divider {
	d.length = width
	return d
}

func (d *Divider) WithDirection(dir Direction) *Divider {
	d.direction = dir
	return d
}

func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.SetAppliers(appliers...)
	return d
}
