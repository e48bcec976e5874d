package clerk

import (
	"context"
	"fmt"

	"github.com/Saluana/or3-provider-clerk/host"
)

// AdminAdapter reports Clerk configuration health for the operator
// dashboard. It is a pure function of the configuration: no network calls,
// no side effects, always succeeds.
type AdminAdapter struct {
	cfg *Config
}

// NewAdminAdapter creates an AdminAdapter over the configuration.
func NewAdminAdapter(cfg *Config) (*AdminAdapter, error) {
	const op = "clerk.NewAdminAdapter"
	if cfg == nil {
		return nil, fmt.Errorf("%s: missing config: %w", op, ErrNilParameter)
	}
	return &AdminAdapter{cfg: cfg}, nil
}

// ID returns the provider identifier.
func (a *AdminAdapter) ID() string {
	return ProviderID
}

// Kind returns the adapter category shown in the dashboard.
func (a *AdminAdapter) Kind() string {
	return "auth"
}

// GetStatus reports presence of the required Clerk keys. When the provider
// is enabled, each missing key appends an error-level warning with a
// remediation hint.
func (a *AdminAdapter) GetStatus(_ context.Context, sc host.StatusContext) host.StatusResult {
	warnings := []host.StatusWarning{}
	if sc.Enabled {
		if a.cfg.PublishableKey == "" {
			warnings = append(warnings, host.StatusWarning{
				Level:   "error",
				Message: "Clerk publishable key is missing. Users will not be able to log in.",
			})
		}
		if a.cfg.SecretKey == "" {
			warnings = append(warnings, host.StatusWarning{
				Level:   "error",
				Message: "Clerk secret key is missing. SSR token validation will fail.",
			})
		}
	}

	return host.StatusResult{
		Details: map[string]any{
			"publishable_configured": a.cfg.PublishableKey != "",
			"secret_configured":      a.cfg.SecretKey != "",
		},
		Warnings: warnings,
		Actions:  []host.StatusAction{},
	}
}
