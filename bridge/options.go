package bridge

import (
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	// DefaultLoadTimeout bounds how long either bridge waits for the
	// vendor script to finish loading.
	DefaultLoadTimeout = 5 * time.Second

	// DefaultStatusTimeout is the shorter bound used by the auth status
	// resolver, which callers block page paint on.
	DefaultStatusTimeout = 2 * time.Second

	// DefaultBrokerPollInterval and DefaultLogoutPollInterval are the
	// fixed poll intervals of the two bridges.
	DefaultBrokerPollInterval = 50 * time.Millisecond
	DefaultLogoutPollInterval = 100 * time.Millisecond
)

// Option defines a common functional options type which can be used in a
// variadic parameter pattern.
type Option func(interface{})

// ApplyOpts takes a pointer to the options struct as a set of default
// options and applies the slice of opts as overrides.
func ApplyOpts(opts interface{}, opt ...Option) {
	for _, o := range opt {
		if o == nil { // ignore any nil Options
			continue
		}
		o(opts)
	}
}

type brokerBridgeOptions struct {
	withLogger        hclog.Logger
	withLoadTimeout   time.Duration
	withStatusTimeout time.Duration
	withPollInterval  time.Duration
}

func brokerBridgeDefaults() brokerBridgeOptions {
	return brokerBridgeOptions{
		withLogger:        hclog.NewNullLogger(),
		withLoadTimeout:   DefaultLoadTimeout,
		withStatusTimeout: DefaultStatusTimeout,
		withPollInterval:  DefaultBrokerPollInterval,
	}
}

func getBrokerBridgeOpts(opt ...Option) brokerBridgeOptions {
	opts := brokerBridgeDefaults()
	ApplyOpts(&opts, opt...)
	return opts
}

type logoutBridgeOptions struct {
	withLogger       hclog.Logger
	withLoadTimeout  time.Duration
	withPollInterval time.Duration
}

func logoutBridgeDefaults() logoutBridgeOptions {
	return logoutBridgeOptions{
		withLogger:       hclog.NewNullLogger(),
		withLoadTimeout:  DefaultLoadTimeout,
		withPollInterval: DefaultLogoutPollInterval,
	}
}

func getLogoutBridgeOpts(opt ...Option) logoutBridgeOptions {
	opts := logoutBridgeDefaults()
	ApplyOpts(&opts, opt...)
	return opts
}

// WithLogger provides an optional logger.
func WithLogger(l hclog.Logger) Option {
	return func(o interface{}) {
		switch v := o.(type) {
		case *brokerBridgeOptions:
			v.withLogger = l
		case *logoutBridgeOptions:
			v.withLogger = l
		}
	}
}

// WithLoadTimeout provides an optional bound on waiting for the vendor
// script to load.
func WithLoadTimeout(d time.Duration) Option {
	return func(o interface{}) {
		switch v := o.(type) {
		case *brokerBridgeOptions:
			v.withLoadTimeout = d
		case *logoutBridgeOptions:
			v.withLoadTimeout = d
		}
	}
}

// WithStatusTimeout provides an optional bound for the auth status
// resolver's readiness wait.
func WithStatusTimeout(d time.Duration) Option {
	return func(o interface{}) {
		if o, ok := o.(*brokerBridgeOptions); ok {
			o.withStatusTimeout = d
		}
	}
}

// WithPollInterval provides an optional fixed poll interval.
func WithPollInterval(d time.Duration) Option {
	return func(o interface{}) {
		switch v := o.(type) {
		case *brokerBridgeOptions:
			v.withPollInterval = d
		case *logoutBridgeOptions:
			v.withPollInterval = d
		}
	}
}
