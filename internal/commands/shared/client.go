package shared

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dbs-cloud/torquectl/internal/config"
	"github.com/dbs-cloud/torquectl/internal/secrets"
	"github.com/dbs-cloud/torquectl/pkg/torque"
)

// TargetFlags holds the resource-addressing flags shared by the action and
// workflow commands.
type TargetFlags struct {
	Space       string
	Environment string
	Grain       string
	Resource    string
}

// AddTargetFlags registers the target flags on a command.
func AddTargetFlags(cmd *cobra.Command, f *TargetFlags) {
	cmd.Flags().StringVar(&f.Space, "space", "", "Torque space name (default from config or TORQUE_SPACE)")
	cmd.Flags().StringVar(&f.Environment, "environment", "", "environment ID within the space")
	cmd.Flags().StringVar(&f.Grain, "grain", "", "grain full name path")
	cmd.Flags().StringVar(&f.Resource, "resource", "", "resource identifier within the grain")
}

// Resolve fills defaults from config and validates that every target field
// is present. The fields are opaque to the CLI; the remote service is
// authoritative about their format.
func (f *TargetFlags) Resolve(cfg *config.Config) (torque.Target, error) {
	space := f.Space
	if space == "" {
		space = cfg.Space
	}

	var missing []string
	if space == "" {
		missing = append(missing, "--space")
	}
	if f.Environment == "" {
		missing = append(missing, "--environment")
	}
	if f.Grain == "" {
		missing = append(missing, "--grain")
	}
	if f.Resource == "" {
		missing = append(missing, "--resource")
	}
	if len(missing) > 0 {
		return torque.Target{}, NewInvalidInputError(
			fmt.Sprintf("missing required flags: %s", strings.Join(missing, ", ")), nil)
	}

	return torque.Target{
		Space:         space,
		Environment:   f.Environment,
		GrainFullname: f.Grain,
		Resource:      f.Resource,
	}, nil
}

// ClientFlags holds the credential flags shared by all API commands.
type ClientFlags struct {
	APIToken string
	APIURL   string
}

// AddClientFlags registers the credential flags on a command.
func AddClientFlags(cmd *cobra.Command, f *ClientFlags) {
	cmd.Flags().StringVar(&f.APIToken, "api-token", "", "Torque API token (default from TORQUE_API_TOKEN or the keychain)")
	cmd.Flags().StringVar(&f.APIURL, "api-url", "", "base URL for the Torque API")
}

// NewClient resolves credentials and builds the API client. Resolution
// order: explicit flag, TORQUE_API_TOKEN, then the OS keychain entry
// written by `torquectl auth login`. A keychain that is locked or absent
// degrades silently; the token is simply not found there.
//
// The returned masker already knows the resolved token so callers can
// scrub rendered responses.
func NewClient(cf ClientFlags, cfg *config.Config, logger *slog.Logger, dryRun bool) (*torque.Client, *secrets.Masker, error) {
	token := cf.APIToken
	if token == "" {
		token = os.Getenv(torque.EnvAPIToken)
	}
	if token == "" {
		if stored, err := secrets.NewTokenStore().Get(); err == nil {
			token = stored
		}
	}

	apiURL := cf.APIURL
	if apiURL == "" {
		apiURL = cfg.ResolvedAPIURL()
	}

	version, _, _ := GetVersion()
	client, err := torque.NewClient(torque.ClientOptions{
		APIToken:  token,
		APIURL:    apiURL,
		Logger:    logger,
		DryRun:    dryRun,
		UserAgent: "torquectl/" + version,
	})
	if err != nil {
		return nil, nil, NewConfigError(err.Error(), nil)
	}

	masker := secrets.NewMasker()
	masker.AddSecretsFromEnv(environMap())
	masker.AddSecret(token)

	return client, masker, nil
}

// environMap converts os.Environ() to a map for the masker.
func environMap() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}
