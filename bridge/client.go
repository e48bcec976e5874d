package bridge

import "context"

// Session is the vendor's active session handle.
type Session interface {
	// GetToken mints a short-lived provider token for the template.
	GetToken(ctx context.Context, template string) (string, error)
}

// Client models the vendor's injected global object. It is externally owned
// and may be absent or not yet loaded at any point.
type Client interface {
	// Loaded reports whether the vendor script has finished initializing.
	Loaded() bool

	// Session returns the active session handle, or nil when signed out.
	Session() Session

	// AddListener subscribes to session-change notifications and returns an
	// unsubscribe func.
	AddListener(func()) (unsubscribe func())
}

// Lookup resolves the vendor client handle at call time. It returns nil
// while the vendor script has not injected the global yet.
type Lookup func() Client
