// Package outputs implements the `torquectl outputs` command group.
package outputs

import (
	"github.com/spf13/cobra"
)

// NewOutputsCommand creates the outputs command group.
func NewOutputsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outputs",
		Short: "Export grain outputs for Torque",
	}

	cmd.AddCommand(NewExportCommand())

	return cmd
}
