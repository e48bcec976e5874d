// or3-provider-clerk binds the Clerk identity platform into the OR3 host
// application's authentication system. The host package defines the
// provider-agnostic contracts and registries, the clerk package implements
// them against Clerk's server-side surface, and the bridge package adapts
// Clerk's client-side global object for browser execution contexts.
//
// See README.md
package or3providerclerk
