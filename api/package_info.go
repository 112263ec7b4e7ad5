// Package api is the typed client SDK for the discussion-board service under
// test. It covers the per-role authentication endpoints, the CRUD and
// paginated-search endpoints of each resource, and the service's error
// contract.
//
// Every operation is a single synchronous request with no retries: the
// harness's job is to observe exactly what the service does on one attempt.
// Authenticated operations take an explicit *Session rather than mutating
// shared client state, so independent actors can coexist on one Client.
package api
