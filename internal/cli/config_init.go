package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/userdir/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates ~/.userdir/config.yaml (or $USERDIR_HOME/config.yaml) holding the
default configuration, ready to edit.`,
		Example: `  # Create the configuration file
  userdir config init

  # Create configuration, overwriting existing
  userdir config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

func runConfigInit(cmd *cobra.Command, force bool) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		defaultPath, err := config.ConfigPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}

	// Check if config already exists and force isn't set
	if !force {
		if _, statErr := os.Stat(path); statErr == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		} else if !os.IsNotExist(statErr) {
			return fmt.Errorf("cannot access config path %s: %w", path, statErr)
		}
	}

	if saveErr := config.Default().Save(path); saveErr != nil {
		return fmt.Errorf("failed to save configuration: %w", saveErr)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", path)

	return nil
}
