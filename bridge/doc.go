// Package bridge adapts Clerk's client-side global object for code running
// in a browser execution context. The vendor script injects the global
// asynchronously, so both bridges resolve the handle at call time through a
// Lookup and wait for readiness with a bounded fixed-interval poll; a
// handle that never becomes ready resolves to a failure value at the
// deadline rather than blocking.
package bridge
