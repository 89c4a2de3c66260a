package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/wgx/internal/shared"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

// RequestIDHeader carries the request ID on both the request and the response.
const RequestIDHeader = "X-Request-ID"

type ctxKey int

const requestIDKey ctxKey = iota

// Recoverer turns a panicking handler into a 500 response.
var Recoverer Middleware = middleware.Recoverer

// RealIP sets the remote address from X-Forwarded-For or X-Real-IP.
var RealIP Middleware = middleware.RealIP

// RequestID returns the ID assigned by [RequestLogger], or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// RequestLogger assigns every request an ID and logs it once the response is written.
//
// An inbound X-Request-ID is kept; otherwise a new one is generated.
func RequestLogger(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = shared.GenerateID()
			}
			w.Header().Set(RequestIDHeader, id)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			started := time.Now()

			next.ServeHTTP(ww, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			logger.Info("request",
				"id", id,
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", ww.BytesWritten(),
				"remote", r.RemoteAddr,
				"elapsed", time.Since(started))
		})
	}
}

// NewLimiter builds the limiter described by cfg, or nil when rate limiting is disabled.
func NewLimiter(cfg shared.ServerConfig) *rate.Limiter {
	if cfg.RateLimit <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(cfg.RateLimit), max(1, cfg.RateBurst))
}

// RateLimit answers 429 once limiter runs out of tokens. A nil limiter disables it.
func RateLimit(limiter *rate.Limiter) Middleware {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				http.Error(w, "Too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Defaults returns the middleware stack used by the web server, outermost first.
func Defaults(cfg shared.ServerConfig, logger *log.Logger) []Middleware {
	return []Middleware{
		RealIP,
		RequestLogger(logger),
		Recoverer,
		RateLimit(NewLimiter(cfg)),
	}
}
