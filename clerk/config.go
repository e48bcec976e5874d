package clerk

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

const (
	// EnvDevelopment and EnvProduction are the environments the host
	// deploys under. Validation is stricter in production.
	EnvDevelopment = "development"
	EnvProduction  = "production"

	testPublishablePrefix = "pk_test_"
	testSecretPrefix      = "sk_test_"
)

// SecretKey is the Clerk secret key used for backend API calls.
type SecretKey string

// RedactedSecretKey is the redacted string or json for a Clerk secret key.
const RedactedSecretKey = "[REDACTED: clerk secret key]"

// String will redact the secret key.
func (k SecretKey) String() string {
	return RedactedSecretKey
}

// MarshalJSON will redact the secret key.
func (k SecretKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(RedactedSecretKey)
}

// Config represents the host-supplied configuration for the Clerk
// integration.
type Config struct {
	// Enabled gates the whole integration. When false, Register is a no-op
	// and no Clerk code runs.
	Enabled bool

	// PublishableKey is Clerk's public (client-side) key.
	PublishableKey string

	// SecretKey is Clerk's private (server-side) key.
	SecretKey SecretKey

	// Environment is the deployment environment (see EnvDevelopment,
	// EnvProduction).
	Environment string
}

// Validate checks the configuration for startup. All faults are reported
// together. A disabled configuration is always valid, since the vendor is
// never loaded.
func (c *Config) Validate() error {
	const op = "clerk.(Config).Validate"
	if c == nil {
		return fmt.Errorf("%s: config is nil: %w", op, ErrNilParameter)
	}
	if !c.Enabled {
		return nil
	}
	var result *multierror.Error
	if c.PublishableKey == "" {
		result = multierror.Append(result,
			fmt.Errorf("%s: Missing Clerk publishable key: %w", op, ErrInvalidConfiguration))
	}
	if c.SecretKey == "" {
		result = multierror.Append(result,
			fmt.Errorf("%s: Missing Clerk secret key: %w", op, ErrInvalidConfiguration))
	}
	if c.Environment == EnvProduction && c.hasTestModeKeys() {
		result = multierror.Append(result,
			fmt.Errorf("%s: Refusing to start with Clerk test-mode keys in production: %w", op, ErrInvalidConfiguration))
	}
	return result.ErrorOrNil()
}

func (c *Config) hasTestModeKeys() bool {
	return strings.HasPrefix(c.PublishableKey, testPublishablePrefix) ||
		strings.HasPrefix(string(c.SecretKey), testSecretPrefix)
}
