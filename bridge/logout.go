package bridge

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
)

// SessionState is the host's local view of the current session. Refresh
// re-reads it from the host; Authenticated reports the refreshed value.
type SessionState interface {
	Refresh(ctx context.Context) error
	Authenticated() bool
}

// CleanupFunc clears local workspace state after a sign-out.
type CleanupFunc func(ctx context.Context) error

// LogoutBridge subscribes to the vendor's session-change notifications and
// runs local cleanup exactly when the vendor reports an unauthenticated
// state.
type LogoutBridge struct {
	lookup   Lookup
	state    SessionState
	cleanup  CleanupFunc
	logger   hclog.Logger
	deadline time.Duration
	interval time.Duration

	mu          sync.Mutex
	unsubscribe func()
}

// NewLogoutBridge creates a bridge over the vendor client handle and the
// host's session state.
// Supported options: WithLogger, WithLoadTimeout, WithPollInterval
func NewLogoutBridge(lookup Lookup, state SessionState, cleanup CleanupFunc, opt ...Option) (*LogoutBridge, error) {
	const op = "bridge.NewLogoutBridge"
	if lookup == nil {
		return nil, fmt.Errorf("%s: missing client lookup: %w", op, ErrNilParameter)
	}
	if state == nil {
		return nil, fmt.Errorf("%s: missing session state: %w", op, ErrNilParameter)
	}
	if cleanup == nil {
		return nil, fmt.Errorf("%s: missing cleanup func: %w", op, ErrNilParameter)
	}
	opts := getLogoutBridgeOpts(opt...)
	return &LogoutBridge{
		lookup:   lookup,
		state:    state,
		cleanup:  cleanup,
		logger:   opts.withLogger,
		deadline: opts.withLoadTimeout,
		interval: opts.withPollInterval,
	}, nil
}

// Activate refreshes the local session state, waits for the vendor script
// to load, and subscribes to its session-change notifications. A client
// that never loads or does not support listeners leaves the bridge
// inactive; that is not an error.
func (b *LogoutBridge) Activate(ctx context.Context) error {
	if err := b.state.Refresh(ctx); err != nil {
		b.logger.Warn("initial session refresh failed", "error", err.Error())
	}

	c := awaitClient(ctx, b.lookup, b.deadline, b.interval)
	if c == nil {
		b.logger.Warn("clerk load timeout, logout bridge inactive")
		return nil
	}

	unsubscribe := c.AddListener(func() {
		b.onNotification(context.Background(), c)
	})
	if unsubscribe == nil {
		return nil
	}

	b.mu.Lock()
	b.unsubscribe = unsubscribe
	b.mu.Unlock()
	return nil
}

// onNotification re-reads local state, then consults the cleanup decision.
func (b *LogoutBridge) onNotification(ctx context.Context, c Client) {
	if err := b.state.Refresh(ctx); err != nil {
		b.logger.Warn("session refresh failed", "error", err.Error())
	}
	if !ShouldRunLogoutCleanup(b.state.Authenticated(), c) {
		return
	}
	if err := b.cleanup(ctx); err != nil {
		b.logger.Error("logout cleanup failed", "error", err.Error())
	}
}

// Close unsubscribes the session-change listener. Safe to call more than
// once and before Activate.
func (b *LogoutBridge) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
}

// ShouldRunLogoutCleanup decides whether a session-change notification
// means the user signed out. Local authenticated state always wins (false
// positive guard). An entirely unavailable client is treated as signed out,
// and so is a loaded client without a session. A client that exists but has
// not finished loading is ambiguous: the next notification will settle it,
// so nothing runs now.
func ShouldRunLogoutCleanup(authenticated bool, c Client) bool {
	if authenticated {
		return false
	}
	if c == nil {
		return true
	}
	if !c.Loaded() {
		return false
	}
	return c.Session() == nil
}
