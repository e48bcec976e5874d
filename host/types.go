package host

import (
	"context"
	"time"
)

// AuthFn is the auth accessor populated on a Request by the identity
// vendor's middleware. It synchronously returns the current request's
// authentication context; the concrete shape is vendor-owned, so callers
// must guard before narrowing.
type AuthFn func() any

// Request is the per-request context shared between the host's request
// pipeline and the auth adapters. The vendor middleware is the only writer
// of Auth; everything downstream treats the request as read-only. A Request
// is created per inbound request and discarded with it.
type Request struct {
	Auth AuthFn
}

// User is the identity portion of a normalized provider session.
type User struct {
	ID          string
	Email       string
	DisplayName string
}

// ProviderSession is the host's normalized, vendor-independent
// representation of an authenticated user. It is never constructed without
// a non-empty primary email and a strictly positive expiry.
type ProviderSession struct {
	Provider  string
	User      User
	ExpiresAt time.Time
	Claims    map[string]any
}

// TokenRequest identifies the provider and downstream audience template a
// token is minted for.
type TokenRequest struct {
	ProviderID string
	Template   string
}

// AuthProvider resolves a normalized session from a request. A nil session
// with a nil error means the request is simply unauthenticated; errors are
// reserved for malformed integrations, never for "user not logged in".
type AuthProvider interface {
	// Name returns the provider identifier (e.g. "clerk").
	Name() string

	// GetSession resolves the request's session or nil when unauthenticated.
	GetSession(ctx context.Context, req *Request) (*ProviderSession, error)
}

// TokenBroker mints a provider access token for a downstream template. It is
// total over failures: every denial resolves to the zero Token, never to an
// error, so callers can treat all denials identically.
type TokenBroker interface {
	GetProviderToken(ctx context.Context, req *Request, tr TokenRequest) Token
}

// StatusContext carries the admin panel's view of whether the provider is
// enabled for the current deployment.
type StatusContext struct {
	Enabled bool
}

// StatusWarning is a single operator-facing finding.
type StatusWarning struct {
	// Level is one of "info", "warn" or "error".
	Level   string
	Message string
}

// StatusAction is a remediation the admin panel can offer the operator.
type StatusAction struct {
	ID    string
	Label string
}

// StatusResult is the configuration-health report for one provider. It is
// recomputed per admin request and never persisted.
type StatusResult struct {
	Details  map[string]any
	Warnings []StatusWarning
	Actions  []StatusAction
}

// AdminAdapter reports configuration health for the operator dashboard. It
// must be pure: no network calls, no side effects, always succeeds.
type AdminAdapter interface {
	ID() string
	Kind() string
	GetStatus(ctx context.Context, sc StatusContext) StatusResult
}
