package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/userdir/internal/config"
	"github.com/rshade/userdir/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the userdir CLI. Run without
// a subcommand it behaves like "userdir list".
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:          "userdir",
		Short:        "Browse a users directory in the terminal",
		Long:         "userdir fetches a users list and lets you search, sort and page through it.",
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd, opts.runsInteractive(cmd))
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default ~/.userdir/config.yaml)")
	addListFlags(cmd, opts)
	cmd.AddCommand(newListCmd(opts), NewVersionCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Browse users interactively
  userdir

  # Print the second page of users sorted by email, Z to A
  userdir list --sort email:desc --page 2 --plain

  # Search and emit JSON
  userdir list --search john --output json

  # Use another users endpoint
  userdir --endpoint http://localhost:8080/users

  # Initialize configuration
  userdir config init`

// loadConfig installs the global configuration. An explicit --config file
// must be valid; the default file falls back to built-in defaults.
func loadConfig(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		config.InitGlobalConfig()
		return nil
	}
	return config.LoadGlobalConfig(path)
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
