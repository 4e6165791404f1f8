package workflow

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dbs-cloud/torquectl/internal/commands/shared"
	"github.com/dbs-cloud/torquectl/internal/config"
	"github.com/dbs-cloud/torquectl/pkg/torque"
)

// NewRunCommand creates the workflow run command.
func NewRunCommand(logger *slog.Logger) *cobra.Command {
	var (
		target        shared.TargetFlags
		client        shared.ClientFlags
		repository    string
		ownerEmail    string
		executionName string
		inputs        []string
	)

	cmd := &cobra.Command{
		Use:   "run <workflow-name>",
		Short: "Run a workflow against a resource",
		Long: `Instantiate a Torque workflow against a resource within an environment.

When --execution-name is omitted, an instantiation name is generated as
{workflow}__instantiation__{timestamp}.

Examples:
  # Power on a vCenter VM via workflow
  torquectl workflow run vcenter-vm-power-on \
    --space 03-Live --environment Rr0LgPNF2j2C \
    --grain vcenter-win2012-template --resource vsphere_virtual_machine.win-vm \
    --repository ProductionBPs --owner-email admin@example.com \
    --input vm_name=test-vm --input cpu_count=2

  # With a custom execution name
  torquectl workflow run server-maintenance \
    --space production --environment env_12345 \
    --grain web-server --resource aws_instance.web_1 \
    --repository MaintenanceBPs --owner-email devops@example.com \
    --execution-name custom-maintenance-task-001`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workflowName := args[0]

			cfg, err := config.Load()
			if err != nil {
				return shared.NewConfigError("failed to load config", err)
			}

			tgt, err := target.Resolve(cfg)
			if err != nil {
				return err
			}

			if repository == "" {
				repository = cfg.RepositoryName
			}
			if ownerEmail == "" {
				ownerEmail = cfg.OwnerEmail
			}
			var missing []string
			if repository == "" {
				missing = append(missing, "--repository")
			}
			if ownerEmail == "" {
				missing = append(missing, "--owner-email")
			}
			if len(missing) > 0 {
				return shared.NewInvalidInputError(
					fmt.Sprintf("missing required flags: %s", strings.Join(missing, ", ")), nil)
			}

			inputValues, err := parseInputs(inputs)
			if err != nil {
				return err
			}

			tc, masker, err := shared.NewClient(client, cfg, logger, shared.GetCheck())
			if err != nil {
				return err
			}

			result, err := tc.RunWorkflow(cmd.Context(), tgt, torque.WorkflowSpec{
				WorkflowName:   workflowName,
				RepositoryName: repository,
				OwnerEmail:     ownerEmail,
				Inputs:         inputValues,
				ExecutionName:  executionName,
			})
			if err != nil {
				return shared.NewExecutionError(
					fmt.Sprintf("Failed to execute workflow '%s' on resource '%s': %s", workflowName, tgt.Resource, masker.Mask(err.Error())), nil)
			}

			msg := fmt.Sprintf("Successfully executed workflow '%s' on resource '%s'", workflowName, tgt.Resource)
			return shared.PrintResult("workflow run", result, masker, msg)
		},
	}

	shared.AddTargetFlags(cmd, &target)
	shared.AddClientFlags(cmd, &client)
	cmd.Flags().StringVar(&repository, "repository", "", "repository containing the workflow (default from config)")
	cmd.Flags().StringVar(&ownerEmail, "owner-email", "", "email address of the workflow owner (default from config)")
	cmd.Flags().StringVar(&executionName, "execution-name", "", "custom execution name for the workflow run")
	cmd.Flags().StringArrayVar(&inputs, "input", nil, "workflow input as key=value (repeatable)")

	return cmd
}

// parseInputs converts repeated key=value flags into the inputs mapping.
func parseInputs(pairs []string) (map[string]string, error) {
	inputs := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, shared.NewInvalidInputError(
				fmt.Sprintf("invalid --input %q: expected key=value", pair), nil)
		}
		inputs[key] = value
	}
	return inputs, nil
}
