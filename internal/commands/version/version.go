// Package version implements the `torquectl version` command.
package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbs-cloud/torquectl/internal/commands/shared"
)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, commit, date := shared.GetVersion()

			if shared.GetJSON() {
				return shared.EmitJSON(map[string]string{
					"version": v,
					"commit":  commit,
					"date":    date,
				})
			}

			fmt.Printf("torquectl %s (commit %s, built %s)\n", v, commit, date)
			return nil
		},
	}
}
