package transport

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// RequestIDHeader carries the per-request correlation id
const RequestIDHeader = "X-Request-ID"

// Middleware is a function that wraps an http.RoundTripper
type Middleware func(http.RoundTripper) http.RoundTripper

// RoundTripperFunc adapts a function to http.RoundTripper
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// Chain applies middlewares to a round tripper in order; the first
// middleware sees the request first.
func Chain(rt http.RoundTripper, middlewares ...Middleware) http.RoundTripper {
	if rt == nil {
		rt = http.DefaultTransport
	}
	for i := len(middlewares) - 1; i >= 0; i-- {
		rt = middlewares[i](rt)
	}
	return rt
}

// RequestID stamps each outgoing request with a unique X-Request-ID unless
// the caller already set one
func RequestID(next http.RoundTripper) http.RoundTripper {
	return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
		if r.Header.Get(RequestIDHeader) != "" {
			return next.RoundTrip(r)
		}
		// RoundTrippers must not modify the caller's request
		r = r.Clone(r.Context())
		r.Header.Set(RequestIDHeader, uuid.New().String())
		return next.RoundTrip(r)
	})
}

// Logger logs every request at debug level using structured logging
func Logger(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(r)
			attrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", r.Header.Get(RequestIDHeader)),
			}
			if err != nil {
				logger.Debug("http request failed", append(attrs, slog.String("error", err.Error()))...)
				return nil, err
			}
			logger.Debug("http request", append(attrs, slog.Int("status", resp.StatusCode))...)
			return resp, nil
		})
	}
}

// RateLimit waits on limiter before each request. A nil limiter disables
// pacing.
func RateLimit(limiter *rate.Limiter) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		if limiter == nil {
			return next
		}
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			if err := limiter.Wait(r.Context()); err != nil {
				return nil, fmt.Errorf("rate limit: %w", err)
			}
			return next.RoundTrip(r)
		})
	}
}

// NewLimiter returns a limiter allowing perSecond requests per second, or nil
// when perSecond is not positive
func NewLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(perSecond), 1)
}

// Options configures NewHTTPClient
type Options struct {
	Timeout   time.Duration
	RateLimit float64
	Logger    *slog.Logger
	Base      http.RoundTripper
}

// NewHTTPClient builds the client used to talk to the backend
func NewHTTPClient(opts Options) *http.Client {
	return &http.Client{
		Timeout: opts.Timeout,
		Transport: Chain(opts.Base,
			RateLimit(NewLimiter(opts.RateLimit)),
			RequestID,
			Logger(opts.Logger),
		),
	}
}
