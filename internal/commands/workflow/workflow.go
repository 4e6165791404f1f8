// Package workflow implements the `torquectl workflow` command group.
package workflow

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// NewWorkflowCommand creates the workflow command group.
func NewWorkflowCommand(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workflow",
		Short: "Run Torque workflows against resources",
		Long: `Instantiate Torque workflows (blueprints) against resources.

A workflow run creates a short-lived environment scoped to the target
resource. torquectl triggers the instantiation and returns the queued
response; Torque owns execution and completion.`,
	}

	cmd.AddCommand(NewRunCommand(logger))

	return cmd
}
