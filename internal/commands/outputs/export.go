package outputs

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dbs-cloud/torquectl/internal/commands/shared"
	"github.com/dbs-cloud/torquectl/pkg/torque"
)

// NewExportCommand creates the outputs export command.
func NewExportCommand() *cobra.Command {
	var (
		setValues []string
		fromFile  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write grain outputs to torque-outputs.json",
		Long: `Collect pipeline output values and write them to torque-outputs.json in
the current working directory. Torque reads this file as the grain outputs
after the pipeline step completes. The file is replaced on each run; nothing
is merged with prior contents.

Examples:
  # Export individual values
  torquectl outputs export --set server_ip=192.168.1.100 --set status=running

  # Export a JSON object produced by an earlier step
  torquectl outputs export --from-file step-results.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputs := map[string]interface{}{}

			if fromFile != "" {
				data, err := os.ReadFile(fromFile)
				if err != nil {
					return shared.NewInvalidInputError(fmt.Sprintf("failed to read %s", fromFile), err)
				}
				if err := json.Unmarshal(data, &outputs); err != nil {
					return shared.NewInvalidInputError(fmt.Sprintf("%s is not a JSON object", fromFile), err)
				}
			}

			for _, pair := range setValues {
				key, value, ok := strings.Cut(pair, "=")
				if !ok || key == "" {
					return shared.NewInvalidInputError(
						fmt.Sprintf("invalid --set %q: expected key=value", pair), nil)
				}
				outputs[key] = value
			}

			if shared.GetCheck() {
				if shared.GetJSON() {
					return shared.EmitJSON(shared.JSONResponse{
						Command: "outputs export",
						Success: true,
						Changed: false,
					})
				}
				fmt.Printf("Would write %d output(s) to %s\n", len(outputs), torque.OutputsFileName)
				return nil
			}

			if err := torque.WriteOutputs(outputs); err != nil {
				return shared.NewExecutionError(
					fmt.Sprintf("failed to write %s", torque.OutputsFileName), err)
			}

			if shared.GetJSON() {
				return shared.EmitJSON(shared.JSONResponse{
					Command: "outputs export",
					Success: true,
					Changed: false,
				})
			}
			fmt.Printf("Wrote %d output(s) to %s\n", len(outputs), torque.OutputsFileName)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&setValues, "set", nil, "output value as key=value (repeatable)")
	cmd.Flags().StringVar(&fromFile, "from-file", "", "read outputs from a JSON object file")

	return cmd
}
