package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tinct/internal/config"
	"github.com/alexisbeaulieu97/tinct/internal/provider"
	"github.com/alexisbeaulieu97/tinct/internal/theme"
	"github.com/alexisbeaulieu97/tinct/internal/tui/preview"
)

type previewOptions struct {
	mode      string
	system    string
	noWatch   bool
	altScreen bool
}

func newPreviewCmd(app *AppContext) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Launch the interactive component preview",
		Long:  `Launch a terminal preview of the themed components. Press t to cycle the mode and ? for help.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runPreview(cmd, app, opts)
			if err != nil {
				app.Log.Error(err, "preview command failed")
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "Initial theme mode (defaults to the configured mode)")
	cmd.Flags().StringVar(&opts.system, "system", "", "Simulate the host preference (light or dark); s flips it")
	cmd.Flags().BoolVar(&opts.noWatch, "no-watch", false, "Do not follow edits to the settings file")
	cmd.Flags().BoolVar(&opts.altScreen, "alt-screen", true, "Run in the alternate screen buffer")

	return cmd
}

func runPreview(cmd *cobra.Command, app *AppContext, opts *previewOptions) error {
	mode, err := app.Mode(opts.mode)
	if err != nil {
		return newCommandError("start preview", "parsing --mode", err, "Use one of light, dark or system.")
	}
	src, manual, err := app.Source(opts.system)
	if err != nil {
		return newCommandError("start preview", "parsing --system", err, "Use light or dark.")
	}
	defer closeSource(src)

	scope := provider.Provide(mode, provider.WithSource(src), provider.WithLogger(app.Log))
	defer scope.Close()

	modelOpts := []preview.Option{preview.WithSave(func(m theme.Mode) error {
		cfg := *app.Config
		cfg.Mode = string(m)
		return config.Save(app.ConfigPath, &cfg)
	})}
	if manual != nil {
		modelOpts = append(modelOpts, preview.WithManualSource(manual))
	}
	model := preview.NewModel(scope, modelOpts...)
	defer model.Close()

	programOpts := []tea.ProgramOption{tea.WithOutput(cmd.OutOrStdout())}
	if opts.altScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	program := tea.NewProgram(model, programOpts...)

	if !opts.noWatch {
		watcher, err := config.NewWatcher(app.ConfigPath, app.Log, func(cfg *config.Config) {
			program.Send(preview.ConfigChangedMsg{Config: cfg})
		})
		if err != nil {
			return fmt.Errorf("failed to watch settings: %w", err)
		}
		if err := watcher.Start(); err != nil {
			return fmt.Errorf("failed to watch settings: %w", err)
		}
		defer func() { _ = watcher.Stop() }()
	}

	app.Log.WithField("mode", string(mode)).Debug("starting preview")
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}
	return nil
}
