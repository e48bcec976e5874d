package clerk

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/Saluana/or3-provider-clerk/host"
)

// TokenBroker is the Clerk implementation of host.TokenBroker. It is total
// over failures: every denial resolves to the zero Token plus a structured
// diagnostic log entry, never an error. Distinguishing why a token was
// denied is purely a logging concern; downstream consumers must treat every
// denial identically.
type TokenBroker struct {
	logger hclog.Logger
}

// NewTokenBroker creates a TokenBroker.
// Supported options: WithLogger
func NewTokenBroker(opt ...Option) *TokenBroker {
	opts := getBrokerOpts(opt...)
	return &TokenBroker{logger: opts.withLogger}
}

// GetProviderToken mints a provider token for the request's session and the
// given downstream template. The broker assumes the auth context has been
// established upstream; it performs no bootstrap of its own.
func (b *TokenBroker) GetProviderToken(ctx context.Context, req *host.Request, tr host.TokenRequest) host.Token {
	if req == nil || req.Auth == nil {
		return ""
	}
	auth := req.Auth()
	if auth == nil {
		return ""
	}

	minter, ok := auth.(TokenMinter)
	if !ok {
		// Contract violation between the middleware and this broker, not a
		// user-facing auth failure.
		b.logger.Error("invalid auth context shape",
			"provider_id", tr.ProviderID,
			"template", tr.Template,
		)
		return ""
	}

	token, err := b.mint(ctx, minter, tr.Template)
	if err != nil {
		b.logger.Error("failed to mint provider token",
			"template", tr.Template,
			"provider_id", tr.ProviderID,
			"error", err.Error(),
		)
		return ""
	}
	token = strings.TrimSpace(token)
	if token == "" {
		b.logger.Warn("empty token returned",
			"template", tr.Template,
			"provider_id", tr.ProviderID,
		)
		return ""
	}
	return host.Token(token)
}

// mint isolates the vendor call so a panicking minter degrades to an error
// instead of unwinding through the broker.
func (b *TokenBroker) mint(ctx context.Context, minter TokenMinter, template string) (token string, err error) {
	defer func() {
		if r := recover(); r != nil {
			token = ""
			err = fmt.Errorf("token minter panic: %v", r)
		}
	}()
	return minter.GetToken(ctx, template)
}
