package bridge

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/Saluana/or3-provider-clerk/host"
)

// Status is the client-side auth readiness report. Authenticated is only
// meaningful when Ready is true; a false Ready means the readiness wait
// timed out and nothing is known about the session.
type Status struct {
	Ready         bool
	Authenticated bool
}

// TokenBrokerBridge obtains provider tokens from the vendor's client-side
// session. Like the server-side broker it is total over failures: every
// denial is the zero Token plus a log entry.
type TokenBrokerBridge struct {
	lookup        Lookup
	logger        hclog.Logger
	loadTimeout   time.Duration
	statusTimeout time.Duration
	interval      time.Duration
}

// NewTokenBrokerBridge creates a bridge over the vendor client handle.
// Supported options: WithLogger, WithLoadTimeout, WithStatusTimeout,
// WithPollInterval
func NewTokenBrokerBridge(lookup Lookup, opt ...Option) (*TokenBrokerBridge, error) {
	const op = "bridge.NewTokenBrokerBridge"
	if lookup == nil {
		return nil, fmt.Errorf("%s: missing client lookup: %w", op, ErrNilParameter)
	}
	opts := getBrokerBridgeOpts(opt...)
	return &TokenBrokerBridge{
		lookup:        lookup,
		logger:        opts.withLogger,
		loadTimeout:   opts.withLoadTimeout,
		statusTimeout: opts.withStatusTimeout,
		interval:      opts.withPollInterval,
	}, nil
}

// GetProviderToken waits for the vendor script to load and mints a token
// for the template. It returns the zero Token when the script never loads,
// there is no active session, or minting fails.
func (b *TokenBrokerBridge) GetProviderToken(ctx context.Context, tr host.TokenRequest) host.Token {
	c := awaitClient(ctx, b.lookup, b.loadTimeout, b.interval)
	if c == nil {
		b.logger.Warn("clerk load timeout",
			"template", tr.Template,
			"provider_id", tr.ProviderID,
		)
		return ""
	}
	session := c.Session()
	if session == nil {
		return ""
	}
	token, err := session.GetToken(ctx, tr.Template)
	if err != nil {
		b.logger.Error("failed to get provider token",
			"template", tr.Template,
			"provider_id", tr.ProviderID,
			"error", err.Error(),
		)
		return ""
	}
	return host.Token(strings.TrimSpace(token))
}

// AuthStatus waits up to the status timeout for the vendor script and
// reports whether a session exists.
func (b *TokenBrokerBridge) AuthStatus(ctx context.Context) Status {
	c := awaitClient(ctx, b.lookup, b.statusTimeout, b.interval)
	if c == nil {
		return Status{}
	}
	return Status{
		Ready:         c.Loaded(),
		Authenticated: c.Session() != nil,
	}
}
