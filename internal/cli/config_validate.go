package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/userdir/internal/cache"
	"github.com/rshade/userdir/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Loads the configuration file together with USERDIR_* environment overrides
and checks every value: endpoint URL, page size (5, 10 or 15), cache stale
time, output and logging formats.`,
		Example: `  # Validate current configuration
  userdir config validate

  # Validate a specific file and show the resolved values
  userdir config validate --config ./config.yaml --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate loads the configuration again so the default file is
// validated strictly instead of falling back to defaults.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Endpoint: %s\n", cfg.Source.Endpoint)
	if cfg.Source.Timeout > 0 {
		cmd.Printf("  Request timeout: %s\n", cfg.Source.Timeout)
	} else {
		cmd.Println("  Request timeout: none")
	}
	if cfg.Cache.Enabled {
		cmd.Printf("  Query cache: stale after %s\n", cache.FormatDuration(cfg.Cache.StaleTime.Duration()))
	} else {
		cmd.Println("  Query cache: disabled")
	}
	cmd.Printf("  Page size: %d\n", cfg.View.PageSize)
	cmd.Printf("  Table breakpoint: %d columns\n", cfg.View.Breakpoint)
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)
}
