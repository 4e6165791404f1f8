package auth

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dbs-cloud/torquectl/internal/commands/shared"
	"github.com/dbs-cloud/torquectl/internal/secrets"
)

// NewLoginCommand creates the auth login command.
func NewLoginCommand() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a Torque API token in the system keychain",
		Long: `Store a Torque API token in the system keychain.

Without --token the token is read from an interactive prompt that never
echoes. Prefer the prompt: a --token value can end up in shell history.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				var err error
				token, err = promptToken()
				if err != nil {
					return err
				}
			}
			token = strings.TrimSpace(token)
			if token == "" {
				return shared.NewInvalidInputError("no token provided", nil)
			}

			store := secrets.NewTokenStore()
			if !store.Available() {
				return shared.NewConfigError("system keychain is unavailable", nil)
			}
			if err := store.Set(token); err != nil {
				return shared.NewConfigError("failed to store token", err)
			}

			fmt.Println("Token stored in system keychain")
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "API token (omit to be prompted)")

	return cmd
}

// promptToken reads a token from the terminal without echoing it.
func promptToken() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", shared.NewInvalidInputError("stdin is not a terminal; use --token", nil)
	}

	fmt.Fprint(os.Stderr, "Torque API token: ")
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return string(raw), nil
}
