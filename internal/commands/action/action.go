// Package action implements the `torquectl action` command group.
package action

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// NewActionCommand creates the action command group.
func NewActionCommand(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "action",
		Short: "Run Torque actions on resources",
		Long: `Run predefined Torque actions on resources within an environment.

Actions are named operations (power-on, restart, snapshot, ...) that Torque
exposes per resource. Running one issues a single API call; Torque owns the
execution from there.`,
	}

	cmd.AddCommand(NewRunCommand(logger))

	return cmd
}
