package clerk

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/Saluana/or3-provider-clerk/host"
)

// ProviderID is the provider identifier registered with the host.
const ProviderID = "clerk"

// Directory fetches enriched user profiles from the vendor's user store.
// Implementations should wrap transport and decode failures in
// ErrProfileFetch so callers can classify outages.
type Directory interface {
	GetUser(ctx context.Context, userID string) (*User, error)
}

// Provider is the Clerk implementation of host.AuthProvider. It reads the
// auth context populated by Clerk's middleware, validates the expiry claim,
// enriches the session with the user's profile and normalizes the result
// into a host.ProviderSession.
type Provider struct {
	cfg     *Config
	dir     Directory
	mw      Middleware
	logger  hclog.Logger
	devMode bool
}

// NewProvider creates a Provider from the configuration and user directory.
// Supported options: WithLogger, WithDevMode, WithMiddleware
func NewProvider(cfg *Config, dir Directory, opt ...Option) (*Provider, error) {
	const op = "clerk.NewProvider"
	if cfg == nil {
		return nil, fmt.Errorf("%s: missing config: %w", op, ErrNilParameter)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if dir == nil {
		return nil, fmt.Errorf("%s: missing user directory: %w", op, ErrNilParameter)
	}
	opts := getProviderOpts(opt...)
	return &Provider{
		cfg:     cfg,
		dir:     dir,
		mw:      opts.withMiddleware,
		logger:  opts.withLogger,
		devMode: opts.withDevMode,
	}, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return ProviderID
}

// GetSession resolves a normalized session from Clerk's server-side
// context. A nil session with a nil error means the request is
// unauthenticated. Resolution is fresh per call; the caller owns any
// per-request memoization.
func (p *Provider) GetSession(ctx context.Context, req *host.Request) (*host.ProviderSession, error) {
	const op = "clerk.(Provider).GetSession"
	if req == nil {
		return nil, fmt.Errorf("%s: missing request: %w", op, ErrNilParameter)
	}

	authFn, err := p.ensureAuth(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if authFn == nil {
		return nil, nil
	}

	auth, ok := authFn().(*AuthContext)
	if !ok || auth == nil {
		// The accessor exists but returned a shape this adapter does not
		// own. Treat as unauthenticated rather than leaking vendor state.
		p.logger.Warn("unexpected auth accessor shape")
		return nil, nil
	}
	if auth.UserID == "" {
		return nil, nil
	}

	exp, valid := auth.SessionClaims.Exp()
	if !valid || exp <= 0 {
		if p.devMode {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidSessionClaim)
		}
		p.logger.Debug("session rejected", "reason", "invalid expiry claim")
		return nil, nil
	}

	user, err := p.dir.GetUser(ctx, auth.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: fetching user profile: %w", op, err)
	}

	email, found := user.PrimaryEmail()
	if !found {
		return nil, fmt.Errorf("%s: user %q: %w", op, auth.UserID, ErrMissingPrimaryEmail)
	}

	return &host.ProviderSession{
		Provider: ProviderID,
		User: host.User{
			ID:          auth.UserID,
			Email:       email,
			DisplayName: firstNonEmpty(user.FirstName, user.Username, email),
		},
		ExpiresAt: time.Unix(exp, 0),
		Claims:    auth.SessionClaims,
	}, nil
}

// ensureAuth returns the request's auth accessor, bootstrapping it through
// the vendor middleware if an upstream handler has not already done so.
// Idempotent: an existing accessor is returned untouched. A still-absent
// accessor after bootstrap means "no session", except in dev mode where an
// explicit error aids debugging.
func (p *Provider) ensureAuth(ctx context.Context, req *host.Request) (host.AuthFn, error) {
	const op = "clerk.(Provider).ensureAuth"
	if req.Auth != nil {
		return req.Auth, nil
	}
	if p.mw != nil {
		if err := p.mw.Populate(ctx, req); err != nil {
			return nil, fmt.Errorf("%s: bootstrapping auth context: %w", op, err)
		}
		if req.Auth != nil {
			return req.Auth, nil
		}
	}
	if p.devMode {
		return nil, fmt.Errorf("%s: %w", op, ErrMissingAuthContext)
	}
	return nil, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
