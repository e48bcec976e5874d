package clerk

import (
	"net/http"

	"github.com/hashicorp/go-hclog"
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

type providerOptions struct {
	withLogger     hclog.Logger
	withDevMode    bool
	withMiddleware Middleware
}

func providerDefaults() providerOptions {
	return providerOptions{
		withLogger: hclog.NewNullLogger(),
	}
}

func getProviderOpts(opt ...Option) providerOptions {
	opts := providerDefaults()
	ApplyOpts(&opts, opt...)
	return opts
}

type brokerOptions struct {
	withLogger hclog.Logger
}

func brokerDefaults() brokerOptions {
	return brokerOptions{
		withLogger: hclog.NewNullLogger(),
	}
}

func getBrokerOpts(opt ...Option) brokerOptions {
	opts := brokerDefaults()
	ApplyOpts(&opts, opt...)
	return opts
}

type directoryOptions struct {
	withLogger     hclog.Logger
	withBaseURL    string
	withHTTPClient *http.Client
	withProviderCA string
}

func directoryDefaults() directoryOptions {
	return directoryOptions{
		withLogger: hclog.NewNullLogger(),
	}
}

func getDirectoryOpts(opt ...Option) directoryOptions {
	opts := directoryDefaults()
	ApplyOpts(&opts, opt...)
	return opts
}

type registerOptions struct {
	withDirectory Directory
}

func getRegisterOpts(opt ...Option) registerOptions {
	opts := registerOptions{}
	ApplyOpts(&opts, opt...)
	return opts
}

// WithLogger provides an optional logger.
func WithLogger(l hclog.Logger) Option {
	return func(o interface{}) {
		switch v := o.(type) {
		case *providerOptions:
			v.withLogger = l
		case *brokerOptions:
			v.withLogger = l
		case *directoryOptions:
			v.withLogger = l
		}
	}
}

// WithDevMode surfaces soft failures (missing auth context, invalid expiry
// claim) as errors to aid debugging. Production resolutions fail soft.
func WithDevMode() Option {
	return func(o interface{}) {
		if o, ok := o.(*providerOptions); ok {
			o.withDevMode = true
		}
	}
}

// WithMiddleware provides the vendor middleware used to bootstrap the auth
// context when an upstream handler has not already done so.
func WithMiddleware(m Middleware) Option {
	return func(o interface{}) {
		if o, ok := o.(*providerOptions); ok {
			o.withMiddleware = m
		}
	}
}

// WithDirectory provides an optional user directory override for Register.
// When omitted, a BackendDirectory against the public Clerk API is used.
func WithDirectory(d Directory) Option {
	return func(o interface{}) {
		if o, ok := o.(*registerOptions); ok {
			o.withDirectory = d
		}
	}
}

// WithBaseURL provides an optional base URL for the backend directory.
func WithBaseURL(u string) Option {
	return func(o interface{}) {
		if o, ok := o.(*directoryOptions); ok {
			o.withBaseURL = u
		}
	}
}

// WithHTTPClient provides an optional http client for the backend
// directory. Bearer authentication is still layered on top of it.
func WithHTTPClient(c *http.Client) Option {
	return func(o interface{}) {
		if o, ok := o.(*directoryOptions); ok {
			o.withHTTPClient = c
		}
	}
}

// WithProviderCA provides an optional CA cert to use when sending requests
// to the vendor backend.
func WithProviderCA(cert string) Option {
	return func(o interface{}) {
		if o, ok := o.(*directoryOptions); ok {
			o.withProviderCA = cert
		}
	}
}
