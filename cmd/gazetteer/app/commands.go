package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/gazetteer/cmd/gazetteer/cmd"
)

// Ensure App satisfies the command dependency interface at compile time.
var _ cmd.Application = (*App)(nil)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(cmd.NewCreateCommand(a))
	rootCmd.AddCommand(cmd.NewSearchCommand(a))
	rootCmd.AddCommand(cmd.NewAccessionCommand(a))
	rootCmd.AddCommand(cmd.NewListCommand(a))
	rootCmd.AddCommand(cmd.NewShowCommand(a))
	rootCmd.AddCommand(cmd.NewMergeCommand(a))

	// Persistence commands
	rootCmd.AddCommand(cmd.NewSaveCommand(a))
	rootCmd.AddCommand(cmd.NewLoadCommand(a))
	rootCmd.AddCommand(cmd.NewExportCommand(a))

	// Utility commands
	rootCmd.AddCommand(a.createVersionCommand())
}

// createVersionCommand creates the version command.
func (a *App) createVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(c *cobra.Command, _ []string) {
			c.Printf("gazetteer %s\n", a.version)
			if a.config.Verbose {
				c.Printf("  commit:   %s\n", a.commit)
				c.Printf("  built:    %s\n", a.date)
				c.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
