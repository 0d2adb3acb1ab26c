package cli

import (
	"fmt"

	"github.com/pablasso/statsview/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "statsview %s (commit %s, built %s)\n",
				version.Version, version.CommitSHA, version.BuildDate)
			return nil
		},
	}
}
