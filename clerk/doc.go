// Package clerk implements the host's authentication contracts against the
// Clerk identity platform. It adapts the auth context populated by Clerk's
// request middleware into the host's normalized session model, mints
// provider tokens for downstream templates, and reports configuration
// health to the admin panel.
//
// The package shapes and validates Clerk's output; it is not a session
// store, not a token issuer, and not a cryptographic verifier. Signature
// verification is delegated entirely to Clerk's SDK, upstream of the auth
// accessor this package reads.
package clerk
