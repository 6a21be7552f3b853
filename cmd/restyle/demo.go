package main

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/restyle/internal/tui"
)

func newDemoCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Explore themes, locales and appearance interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, flags)
		},
	}
}

func runDemo(cmd *cobra.Command, flags *rootFlags) error {
	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		return newCommandError("demo", "starting the interactive demo", errors.New("standard output is not a terminal"), "Use 'restyle render' for non-interactive output.")
	}

	app, err := loadAppContext(cmd, flags)
	if err != nil {
		return err
	}

	traits := app.cfg.Traits(detectTraits(out, colorAuto))
	demo, err := tui.NewDemo(app.demoOptions(traits, out))
	if err != nil {
		return newCommandError("demo", "building the demo screen", err, "Check the configured themes.")
	}
	defer demo.Close()

	program := tea.NewProgram(tui.NewModel(demo), tea.WithAltScreen(), tea.WithOutput(out), tea.WithContext(cmd.Context()))
	_, err = program.Run()
	return err
}
