package cli

import (
	"fmt"

	"github.com/safedep/readfence/internal/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "readfence %s (commit %s)\n", version.Version, version.Commit)
			return nil
		},
	}
}
