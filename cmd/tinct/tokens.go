package main

import (
	"fmt"
	"io"
	"slices"

	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tinct/internal/tokens"
)

var tokenSections = []string{"colors", "spacing", "typography", "radius"}

func newTokensCmd() *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Print the design token tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			if section != "" && !slices.Contains(tokenSections, section) {
				return fmt.Errorf("unknown section %q: expected one of %v", section, tokenSections)
			}
			return renderTokens(cmd.OutOrStdout(), tokens.Default(), section)
		},
	}

	cmd.Flags().StringVarP(&section, "section", "s", "", "Only print one section (colors, spacing, typography, radius)")

	return cmd
}

func renderTokens(out io.Writer, set tokens.Set, section string) error {
	render := map[string]func(io.Writer, tokens.Set){
		"colors":     renderColorTokens,
		"spacing":    renderSpacingTokens,
		"typography": renderTypographyTokens,
		"radius":     renderRadiusTokens,
	}
	for _, name := range tokenSections {
		if section != "" && section != name {
			continue
		}
		render[name](out, set)
	}
	return nil
}

func newTokenTable(out io.Writer, title string) prettytable.Writer {
	tw := prettytable.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetStyle(prettytable.StyleLight)
	tw.Style().Options.SeparateRows = false
	tw.SetTitle(title)
	// go-pretty wraps the title to the table width.
	tw.Style().Size.WidthMin = text.RuneWidthWithoutEscSequences(title) + 4
	return tw
}

func renderColorTokens(out io.Writer, set tokens.Set) {
	tw := newTokenTable(out, "Colors")
	tw.AppendHeader(prettytable.Row{"TOKEN", "VALUE"})
	tw.AppendRows([]prettytable.Row{
		{"primary", string(set.Colors.Primary)},
		{"secondary", string(set.Colors.Secondary)},
		{"success", string(set.Colors.Success)},
		{"warning", string(set.Colors.Warning)},
		{"danger", string(set.Colors.Danger)},
	})
	tw.AppendSeparator()
	for _, w := range tokens.Weights() {
		tw.AppendRow(prettytable.Row{"neutral." + w.String(), string(set.Colors.Neutral.Color(w))})
	}
	tw.Render()
}

func renderSpacingTokens(out io.Writer, set tokens.Set) {
	tw := newTokenTable(out, "Spacing")
	tw.AppendHeader(prettytable.Row{"TOKEN", "PX", "CELLS"})
	tw.SetColumnConfigs([]prettytable.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	for _, k := range tokens.SpacingKeys() {
		px := set.Spacing.Get(k)
		tw.AppendRow(prettytable.Row{k.String(), int(px), px.Cells()})
	}
	tw.Render()
}

func renderTypographyTokens(out io.Writer, set tokens.Set) {
	typo := set.Typography

	tw := newTokenTable(out, "Typography")
	tw.AppendHeader(prettytable.Row{"TOKEN", "VALUE"})
	tw.SetColumnConfigs([]prettytable.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	tw.AppendRow(prettytable.Row{"fontFamily.sans", typo.FontFamily.Sans})
	tw.AppendSeparator()
	for _, k := range tokens.FontSizeKeys() {
		tw.AppendRow(prettytable.Row{"fontSize." + k.String(), fmt.Sprintf("%dpx", int(typo.FontSize.Get(k)))})
	}
	tw.AppendSeparator()
	for _, k := range tokens.FontWeightKeys() {
		tw.AppendRow(prettytable.Row{"fontWeight." + k.String(), typo.FontWeight.Get(k)})
	}
	tw.AppendSeparator()
	for i, v := range typo.LineHeight {
		tw.AppendRow(prettytable.Row{"lineHeight." + tokens.LineHeightKey(i).String(), v})
	}
	tw.AppendSeparator()
	for i, v := range typo.LetterSpacing {
		tw.AppendRow(prettytable.Row{"letterSpacing." + tokens.LetterSpacingKey(i).String(), fmt.Sprintf("%gem", v)})
	}
	tw.Render()
}

func renderRadiusTokens(out io.Writer, set tokens.Set) {
	tw := newTokenTable(out, "Border radius")
	tw.AppendHeader(prettytable.Row{"TOKEN", "PX"})
	tw.SetColumnConfigs([]prettytable.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	for _, k := range tokens.RadiusKeys() {
		tw.AppendRow(prettytable.Row{k.String(), int(set.BorderRadius.Get(k))})
	}
	tw.Render()
}
