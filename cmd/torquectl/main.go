package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	actioncmd "github.com/dbs-cloud/torquectl/internal/commands/action"
	authcmd "github.com/dbs-cloud/torquectl/internal/commands/auth"
	outputscmd "github.com/dbs-cloud/torquectl/internal/commands/outputs"
	"github.com/dbs-cloud/torquectl/internal/commands/shared"
	versioncmd "github.com/dbs-cloud/torquectl/internal/commands/version"
	workflowcmd "github.com/dbs-cloud/torquectl/internal/commands/workflow"
	intlog "github.com/dbs-cloud/torquectl/internal/log"
)

// Version information (injected via ldflags at build time)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	shared.SetVersion(version, commit, buildDate)

	logger := intlog.New(intlog.FromEnv())
	slog.SetDefault(logger)

	root := newRootCommand(logger)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var exitErr *shared.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(shared.ExitExecutionFailed)
	}
}

func newRootCommand(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "torquectl",
		Short: "Torque pipeline plugins",
		Long: `torquectl lets infrastructure-as-code pipelines talk to the Torque
orchestration platform: run actions on resources, instantiate workflows, and
export grain outputs.

Authentication uses a bearer token resolved from --api-token, the
TORQUE_API_TOKEN environment variable, or the system keychain (see
'torquectl auth').`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	jsonPtr, checkPtr := shared.RegisterFlagPointers()
	root.PersistentFlags().BoolVar(jsonPtr, "json", false, "output results as JSON")
	root.PersistentFlags().BoolVar(checkPtr, "check", false, "dry run: report what would happen without calling the API")

	root.AddCommand(actioncmd.NewActionCommand(logger))
	root.AddCommand(workflowcmd.NewWorkflowCommand(logger))
	root.AddCommand(outputscmd.NewOutputsCommand())
	root.AddCommand(authcmd.NewAuthCommand())
	root.AddCommand(versioncmd.NewVersionCommand())

	return root
}
