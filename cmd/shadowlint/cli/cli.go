package cli

import (
	"github.com/spf13/cobra"

	"github.com/shadowsec/shadowlint/cmd/shadowlint/cli/command"
	"github.com/shadowsec/shadowlint/internal"
)

// Application constructs the shadowlint CLI application
func Application() *cobra.Command {
	app := &cobra.Command{
		Use:   "shadowlint",
		Short: "Find URL security rules shadowed by earlier, broader path patterns",
		Long: `Shadowlint analyzes chained URL-pattern rule declarations in Go source and flags
ordering mistakes: a broader ant-style pattern (for example "/admin/**") declared before a
narrower one it also covers (for example "/admin/users") makes the narrower rule unreachable
dead configuration.`,
		Version: internal.ApplicationVersion,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Set up logging based on verbose flag
			verbose, _ := cmd.Flags().GetBool("verbose")
			command.SetupLogging(verbose)
		},
	}

	// Add global flags
	app.PersistentFlags().StringP("config", "c", "", "path to configuration file")
	app.PersistentFlags().StringP("output", "o", "table", "output format (table, json)")
	app.PersistentFlags().StringP("output-file", "f", "", "write JSON output to file (sets output format to json)")
	app.PersistentFlags().BoolP("quiet", "q", false, "suppress all non-essential output")
	app.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	app.PersistentFlags().Bool("no-output", false, "suppress terminal output when writing to file")

	// Add subcommands
	app.AddCommand(
		command.Check(),
		command.Explain(),
		command.Config(),
		command.Version(),
	)

	return app
}
