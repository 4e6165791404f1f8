// Package auth implements the `torquectl auth` command group for managing
// the stored Torque API token.
package auth

import (
	"github.com/spf13/cobra"
)

// NewAuthCommand creates the auth command group.
func NewAuthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the stored Torque API token",
		Long: `Manage the Torque API token stored in the system keychain.

A stored token is used when neither --api-token nor TORQUE_API_TOKEN is
set. Supported keychains: macOS Keychain, Secret Service (GNOME Keyring,
KWallet), Windows Credential Manager.`,
	}

	cmd.AddCommand(NewLoginCommand())
	cmd.AddCommand(NewLogoutCommand())
	cmd.AddCommand(NewStatusCommand())

	return cmd
}
