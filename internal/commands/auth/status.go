package auth

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbs-cloud/torquectl/internal/commands/shared"
	intlog "github.com/dbs-cloud/torquectl/internal/log"
	"github.com/dbs-cloud/torquectl/internal/secrets"
	"github.com/dbs-cloud/torquectl/pkg/torque"
)

// NewStatusCommand creates the auth status command.
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show where the API token would be resolved from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, token := resolveSource()

			if shared.GetJSON() {
				return shared.EmitJSON(map[string]interface{}{
					"command": "auth status",
					"success": true,
					"source":  source,
					"token":   intlog.SanitizeAPIKey(token),
				})
			}

			if source == "none" {
				fmt.Println("No API token found (flag, TORQUE_API_TOKEN, and keychain are all unset)")
				return nil
			}
			fmt.Printf("Token source: %s\n", source)
			fmt.Printf("Token:        %s\n", intlog.SanitizeAPIKey(token))
			return nil
		},
	}
}

// resolveSource mirrors the client's resolution order minus the flag, which
// only exists on invocation commands.
func resolveSource() (string, string) {
	if tok := os.Getenv(torque.EnvAPIToken); tok != "" {
		return "environment (" + torque.EnvAPIToken + ")", tok
	}
	if tok, err := secrets.NewTokenStore().Get(); err == nil {
		return "keychain", tok
	}
	return "none", ""
}
