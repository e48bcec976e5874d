package clerk

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Saluana/or3-provider-clerk/host"
)

// Claims is the verified session claim set returned by Clerk's middleware.
// Values arrive across the vendor boundary, so numeric claims may be any
// numeric Go type (or json.Number after decoding).
type Claims map[string]any

// Exp returns the "exp" claim as unix seconds. ok is false when the claim
// is absent or not numeric.
func (c Claims) Exp() (int64, bool) {
	v, found := c["exp"]
	if !found {
		return 0, false
	}
	switch exp := v.(type) {
	case int64:
		return exp, true
	case int:
		return int64(exp), true
	case float64:
		return int64(exp), true
	case json.Number:
		n, err := exp.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// TokenMinter is the capability the token broker requires of an auth
// context. The accessor's return value crosses a vendor boundary, so the
// broker checks for this capability explicitly rather than trusting the
// static type.
type TokenMinter interface {
	// GetToken mints a short-lived provider token for the template.
	GetToken(ctx context.Context, template string) (string, error)
}

// AuthContext is the value Clerk's middleware exposes through the request's
// auth accessor. An empty UserID means the request is unauthenticated.
type AuthContext struct {
	UserID        string
	SessionClaims Claims

	// GetTokenFn is the vendor's token minting capability for the current
	// session.
	GetTokenFn func(ctx context.Context, template string) (string, error)
}

// GetToken implements TokenMinter over the vendor capability.
func (a *AuthContext) GetToken(ctx context.Context, template string) (string, error) {
	const op = "clerk.(AuthContext).GetToken"
	if a == nil || a.GetTokenFn == nil {
		return "", fmt.Errorf("%s: no token minting capability: %w", op, ErrInvalidParameter)
	}
	return a.GetTokenFn(ctx, template)
}

// Middleware is the vendor SDK boundary that verifies the request and
// attaches the auth accessor to it. Implementations wrap Clerk's request
// middleware; this package never verifies credentials itself.
type Middleware interface {
	// Populate attaches the auth accessor to req. It must be safe to call
	// on a request that already carries one.
	Populate(ctx context.Context, req *host.Request) error
}
