// Package gateway contains the client-side surface of the Boardroom backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Gateway interface) with
//     typed CRUD wrappers per entity, a change-feed subscription per table,
//     and best-effort audit writes.
//  2. Session identity (see Session) decoded from the access token's claims.
//     The claims are read without verification: row visibility and write
//     permission are enforced by the backend, never by this client.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound,
// ErrInvalidInput. No operation is retried; recovery is up to the user
// (token refresh inside the transport's interceptor is the single exception).
//
// Concurrency & Contexts
//
// Implementations must be safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts. A subscription is
// single-owner: the stop function tears the stream down and must be called
// on teardown so a reconnect does not leave duplicate handlers behind.
//
// The gRPC implementation lives in the grpcgateway package.
package gateway
