// Package transport provides client-side HTTP middleware for talking to the
// events backend.
//
// Middlewares wrap http.RoundTripper the same way server middleware wraps
// http.Handler:
//
//	client := &http.Client{
//	    Transport: transport.Chain(http.DefaultTransport,
//	        transport.RateLimit(transport.NewLimiter(2)),
//	        transport.RequestID,
//	        transport.Logger(logger),
//	    ),
//	}
//
// NewHTTPClient assembles that chain from Options.
package transport
