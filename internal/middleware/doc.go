// Package middleware provides HTTP middleware for the mock backend.
//
// Middlewares wrap http.Handler and compose with Chain; the first middleware
// is the outermost:
//
//	handler := middleware.Chain(router,
//	    middleware.RequestID,
//	    middleware.Logger(logger),
//	    middleware.Recovery(logger),
//	)
//
// # Available Middleware
//
//   - RequestID: sets X-Request-ID (uuid) and stores it in the context
//   - Logger: one structured log line per request
//   - Recovery: turns panics into an RFC 9457 500 response
//   - RateLimit: per-client token buckets, 429 with Retry-After when exhausted
package middleware
