package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/userdir/pkg/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Example: `  userdir version
  userdir version --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Info()
			if asJSON {
				out, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding version info: %w", err)
				}
				cmd.Println(string(out))
				return nil
			}

			cmd.Print(info.String())
			if !version.IsRelease(version.GetVersion()) {
				cmd.Println("(development build)")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print build information as JSON")
	return cmd
}
