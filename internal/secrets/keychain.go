package secrets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// keychainService is the service name used for keychain entries.
	keychainService = "torquectl"

	// TokenKey is the keychain key under which the Torque API token is stored.
	TokenKey = "api_token"
)

var (
	// ErrTokenNotFound is returned when no token is stored in the keychain.
	ErrTokenNotFound = errors.New("token not found in keychain")

	// ErrKeychainUnavailable is returned when the keychain service cannot be used.
	ErrKeychainUnavailable = errors.New("keychain unavailable")
)

// TokenStore persists the Torque API token in the system keychain.
// Supported platforms:
//   - macOS: Keychain Access
//   - Linux: Secret Service API (GNOME Keyring, KWallet)
//   - Windows: Credential Manager
type TokenStore struct {
	available bool
}

// NewTokenStore creates a keychain-backed token store.
// It performs availability detection to check if the keyring service is accessible.
func NewTokenStore() *TokenStore {
	store := &TokenStore{available: true}

	// Probing for a key that never exists detects locked keychains or
	// missing services early.
	_, err := keyring.Get(keychainService, "__torquectl_availability_test__")
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		store.available = false
	}

	return store
}

// Available returns true if the keychain service is accessible.
func (s *TokenStore) Available() bool {
	return s.available
}

// Get retrieves the stored API token.
func (s *TokenStore) Get() (string, error) {
	if !s.available {
		return "", fmt.Errorf("%w: keychain service unavailable", ErrKeychainUnavailable)
	}

	value, err := keyring.Get(keychainService, TokenKey)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrTokenNotFound
		}
		if isKeychainUnavailableError(err) {
			return "", fmt.Errorf("%w: %s", ErrKeychainUnavailable, err.Error())
		}
		return "", fmt.Errorf("keychain error: %w", err)
	}

	return value, nil
}

// Set stores the API token.
func (s *TokenStore) Set(token string) error {
	if !s.available {
		return fmt.Errorf("%w: keychain service unavailable", ErrKeychainUnavailable)
	}

	if err := keyring.Set(keychainService, TokenKey, token); err != nil {
		if isKeychainUnavailableError(err) {
			return fmt.Errorf("%w: %s", ErrKeychainUnavailable, err.Error())
		}
		return fmt.Errorf("keychain error: %w", err)
	}

	return nil
}

// Delete removes the stored API token.
func (s *TokenStore) Delete() error {
	if !s.available {
		return fmt.Errorf("%w: keychain service unavailable", ErrKeychainUnavailable)
	}

	if err := keyring.Delete(keychainService, TokenKey); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrTokenNotFound
		}
		if isKeychainUnavailableError(err) {
			return fmt.Errorf("%w: %s", ErrKeychainUnavailable, err.Error())
		}
		return fmt.Errorf("keychain error: %w", err)
	}

	return nil
}

// isKeychainUnavailableError checks if an error indicates the keychain is locked or inaccessible.
// This includes common error messages from different platforms.
func isKeychainUnavailableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())

	unavailableIndicators := []string{
		"locked",
		"cannot access",
		"permission denied",
		"failed to unlock",
		"user interaction required",
		"secret service",
		"dbus",
		"user canceled",
	}

	for _, indicator := range unavailableIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}

	return false
}
