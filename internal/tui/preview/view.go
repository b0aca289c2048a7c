package preview

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/tinct/internal/tokens"
	"github.com/alexisbeaulieu97/tinct/internal/ui"
	"github.com/alexisbeaulieu97/tinct/internal/ui/components"
)

const defaultWidth = 60

// View renders one frame. Every component in the frame reads the same
// captured context.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ctx := components.ContextFor(m.scope)
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	ctx = ctx.WithConstraints(components.WithMaxWidth(width))

	summary := fmt.Sprintf("mode %s · system %s · resolved %s", ctx.Mode(), ctx.Value.System, ctx.Theme().Name)

	boxWidth := (width - 2) / 2
	boxes := components.HStack(
		components.NewBox().WithTitle("Primary").WithContent("Brand surface").WithWidth(boxWidth),
		components.NewBox().WithTitle("Secondary").WithContent("Accent surface").
			WithVariant(components.VariantSecondary).WithWidth(boxWidth),
	).WithGap(tokens.SpacingXS)

	typography := make([]ui.Renderable, 0, len(components.TextVariants()))
	for _, v := range components.TextVariants() {
		typography = append(typography, components.NewText(v.String()).WithVariant(v))
	}

	sections := []ui.Renderable{
		components.Heading(1, "tinct preview"),
		components.Caption(summary),
		components.NewDivider(),
		boxes,
		components.HStack(m.button, components.SecondaryButton("Cancel")).WithGap(tokens.SpacingXS),
		components.NewDivider().WithLabel("Typography"),
		components.VStack(typography...),
	}
	if m.status != "" {
		sections = append(sections, components.Label(m.status))
	}

	var b strings.Builder
	b.WriteString(components.VStack(sections...).WithGap(tokens.SpacingXS).ViewWithContext(ctx))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
