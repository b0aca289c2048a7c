package main

import (
	"fmt"
	"io"

	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tinct/internal/provider"
	"github.com/alexisbeaulieu97/tinct/internal/theme"
	"github.com/alexisbeaulieu97/tinct/internal/tokens"
	"github.com/alexisbeaulieu97/tinct/internal/ui/components"
)

type themeOptions struct {
	mode   string
	system string
	render bool
}

func newThemeCmd(app *AppContext) *cobra.Command {
	opts := &themeOptions{}

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Print the theme resolved for a mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTheme(cmd.OutOrStdout(), app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "Theme mode: light, dark or system (defaults to the configured mode)")
	cmd.Flags().StringVar(&opts.system, "system", "", "Pretend the host prefers light or dark")
	cmd.Flags().BoolVar(&opts.render, "render", false, "Render sample components with the resolved theme")

	return cmd
}

func runTheme(out io.Writer, app *AppContext, opts *themeOptions) error {
	mode, err := app.Mode(opts.mode)
	if err != nil {
		return newCommandError("resolve theme", "parsing --mode", err, "Use one of light, dark or system.")
	}
	src, _, err := app.Source(opts.system)
	if err != nil {
		return newCommandError("resolve theme", "parsing --system", err, "Use light or dark.")
	}
	defer closeSource(src)

	scope := provider.Provide(mode, provider.WithSource(src), provider.WithLogger(app.Log))
	defer scope.Close()

	st := scope.State()
	fmt.Fprintf(out, "mode: %s\nsystem: %s\nresolved: %s\n\n", st.Mode, st.System, st.Resolved)
	renderThemeColors(out, st.Theme)

	if opts.render {
		fmt.Fprintln(out)
		fmt.Fprintln(out, renderSample(components.ContextFor(scope)))
	}
	return nil
}

func renderThemeColors(out io.Writer, th theme.Theme) {
	tw := newTokenTable(out, fmt.Sprintf("Theme %s", th.Name))
	tw.AppendHeader(prettytable.Row{"SLOT", "VALUE"})
	tw.AppendRows([]prettytable.Row{
		{"primary", string(th.Colors.Primary)},
		{"secondary", string(th.Colors.Secondary)},
		{"success", string(th.Colors.Success)},
		{"warning", string(th.Colors.Warning)},
		{"danger", string(th.Colors.Danger)},
	})
	tw.AppendSeparator()
	for _, w := range tokens.Weights() {
		tw.AppendRow(prettytable.Row{"neutral." + w.String(), string(th.Colors.Neutral.Color(w))})
	}
	tw.Render()
}

func renderSample(ctx components.RenderContext) string {
	return components.VStack(
		components.Heading(2, "Sample"),
		components.NewBox().WithTitle("Primary box").WithContent("Body content"),
		components.NewBox().WithTitle("Secondary box").WithContent("Body content").WithVariant(components.VariantSecondary),
		components.HStack(
			components.PrimaryButton("Primary"),
			components.SecondaryButton("Secondary"),
		).WithGap(tokens.SpacingXS),
		components.Caption("caption text"),
	).WithGap(tokens.SpacingXS).ViewWithContext(ctx)
}
