package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/userdir/internal/config"
)

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration after file and environment overrides.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Example: `  userdir config show
  USERDIR_VIEW_PAGE_SIZE=10 userdir config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := yaml.Marshal(config.GetGlobalConfig())
			if err != nil {
				return fmt.Errorf("encoding configuration: %w", err)
			}
			cmd.Print(string(out))
			return nil
		},
	}
}
