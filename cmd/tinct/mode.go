package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tinct/internal/config"
	"github.com/alexisbeaulieu97/tinct/internal/theme"
)

// promptMode asks for a mode interactively. Tests replace it.
var promptMode = func(current theme.Mode) (theme.Mode, error) {
	selected := current
	options := make([]huh.Option[theme.Mode], 0, len(theme.Modes))
	for _, m := range theme.Modes {
		options = append(options, huh.NewOption(string(m), m))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[theme.Mode]().
				Title("Theme mode").
				Description("system follows the host appearance preference.").
				Options(options...).
				Value(&selected),
		),
	)
	if os.Getenv("ACCESSIBLE") != "" {
		form.WithAccessible(true)
	}
	if err := form.Run(); err != nil {
		return "", err
	}
	return selected, nil
}

// isInteractive reports whether a prompt can be shown. Tests replace it.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func newModeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "mode [light|dark|system]",
		Short:     "Show or persist the theme mode",
		Long:      `Persist the theme mode in the settings file. Without an argument the current mode is printed, or chosen from a prompt when attached to a terminal.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(theme.ModeLight), string(theme.ModeDark), string(theme.ModeSystem)},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMode(cmd.OutOrStdout(), app, args)
		},
	}

	return cmd
}

func runMode(out io.Writer, app *AppContext, args []string) error {
	current := app.Config.ThemeMode()

	var (
		mode theme.Mode
		err  error
	)
	switch {
	case len(args) == 1:
		mode, err = theme.ParseMode(args[0])
		if err != nil {
			return newCommandError("set mode", fmt.Sprintf("parsing %q", args[0]), err, "Use one of light, dark or system.")
		}
	case isInteractive():
		mode, err = promptMode(current)
		if err != nil {
			return fmt.Errorf("mode prompt cancelled: %w", err)
		}
	default:
		fmt.Fprintln(out, current)
		return nil
	}

	if mode == current {
		fmt.Fprintf(out, "mode already %s\n", mode)
		return nil
	}

	cfg := *app.Config
	cfg.Mode = string(mode)
	if err := config.Save(app.ConfigPath, &cfg); err != nil {
		return newCommandError("set mode", app.ConfigPath, err, "Check that the settings directory is writable.")
	}
	app.Config = &cfg

	app.Log.WithField("mode", string(mode)).Info("theme mode saved")
	fmt.Fprintf(out, "✓ mode set to %s (%s)\n", mode, app.ConfigPath)
	return nil
}
