package action

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dbs-cloud/torquectl/internal/commands/shared"
	"github.com/dbs-cloud/torquectl/internal/config"
)

// NewRunCommand creates the action run command.
func NewRunCommand(logger *slog.Logger) *cobra.Command {
	var (
		target shared.TargetFlags
		client shared.ClientFlags
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "run <action-id>",
		Short: "Run an action on a resource",
		Long: `Run a Torque action on a resource within an environment.

Examples:
  # Power on an EC2 instance
  torquectl action run aws-power-on-ec2-tf \
    --space 03-Live --environment tuF7LfdwbCs4 \
    --grain elk-2 --resource aws_instance.elk_2

  # Preview without calling the API
  torquectl action run restart-service --check \
    --space production --environment env_12345 \
    --grain web-server --resource aws_instance.web_1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actionID := args[0]

			cfg, err := config.Load()
			if err != nil {
				return shared.NewConfigError("failed to load config", err)
			}

			tgt, err := target.Resolve(cfg)
			if err != nil {
				return err
			}

			tc, masker, err := shared.NewClient(client, cfg, logger, shared.GetCheck())
			if err != nil {
				return err
			}

			result, err := tc.RunAction(cmd.Context(), tgt, actionID, force)
			if err != nil {
				return shared.NewExecutionError(
					fmt.Sprintf("Failed to execute action '%s' on resource '%s': %s", actionID, tgt.Resource, masker.Mask(err.Error())), nil)
			}

			msg := fmt.Sprintf("Successfully executed action '%s' on resource '%s'", actionID, tgt.Resource)
			return shared.PrintResult("action run", result, masker, msg)
		},
	}

	shared.AddTargetFlags(cmd, &target)
	shared.AddClientFlags(cmd, &client)
	cmd.Flags().BoolVar(&force, "force", false, "force the action even if the resource is busy")

	return cmd
}
