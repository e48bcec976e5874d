package clerk

import (
	"fmt"

	"github.com/Saluana/or3-provider-clerk/host"
)

// registrationOrder places Clerk after any built-in host providers.
const registrationOrder = 100

// Register validates the configuration and wires the Clerk auth provider,
// token broker and admin adapter into the host registries. A disabled
// configuration is a no-op; an invalid one is startup-fatal.
// Supported options: WithLogger, WithDevMode, WithMiddleware, WithDirectory,
// WithBaseURL, WithHTTPClient, WithProviderCA
func Register(cfg *Config, opt ...Option) error {
	const op = "clerk.Register"
	if cfg == nil {
		return fmt.Errorf("%s: missing config: %w", op, ErrNilParameter)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !cfg.Enabled {
		return nil
	}

	opts := getRegisterOpts(opt...)
	dir := opts.withDirectory
	if dir == nil {
		var err error
		dir, err = NewBackendDirectory(cfg.SecretKey, opt...)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	provider, err := NewProvider(cfg, dir, opt...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := host.RegisterAuthProvider(host.Registration{
		ID:     ProviderID,
		Order:  registrationOrder,
		Create: func() host.AuthProvider { return provider },
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := host.RegisterTokenBroker(ProviderID, func() host.TokenBroker {
		return NewTokenBroker(opt...)
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	admin, err := NewAdminAdapter(cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := host.RegisterAdminAdapter(admin); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
