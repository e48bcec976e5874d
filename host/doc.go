// Package host defines the provider-agnostic authentication contracts of the
// OR3 host application: session resolution, token minting for downstream
// services, admin-panel health reporting, and the process-wide registries
// identity providers plug into.
//
// The host owns these shapes; provider packages (clerk) implement them.
package host
