package auth

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbs-cloud/torquectl/internal/commands/shared"
	"github.com/dbs-cloud/torquectl/internal/secrets"
)

// NewLogoutCommand creates the auth logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored Torque API token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := secrets.NewTokenStore().Delete()
			if errors.Is(err, secrets.ErrTokenNotFound) {
				fmt.Println("No token stored")
				return nil
			}
			if err != nil {
				return shared.NewConfigError("failed to remove token", err)
			}

			fmt.Println("Token removed from system keychain")
			return nil
		},
	}
}
