// ABOUTME: Session middleware binding each request to a scenario table
// ABOUTME: Reads the session from cookie or header, creating one when missing or expired

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

const (
	// SessionCookieName is the cookie carrying the session ID for browsers
	SessionCookieName = "vdb_session"
	// SessionHeader carries the session ID for API clients and is echoed on every response
	SessionHeader = "X-Session-ID"
)

type sessionKeyType struct{}

var sessionKey = sessionKeyType{}

// SessionStore resolves a client-supplied session ID to a live one
type SessionStore interface {
	Ensure(sessionID string) (string, bool, error)
}

// SessionOptions controls the session cookie
type SessionOptions struct {
	CookieSecure bool
	TTL          time.Duration
}

// Session returns middleware that attaches a session ID to the request context.
// Unknown, expired, or malformed IDs are replaced by a new session.
func Session(store SessionStore, validate func(string) error, opts SessionOptions) Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			requested := requestedSessionID(r)
			if requested != "" && validate != nil && validate(requested) != nil {
				slog.Debug("Ignoring malformed session ID", "request_id", RequestID(r))
				requested = ""
			}

			id, created, err := store.Ensure(requested)
			if err != nil {
				slog.Error("Failed to establish session", "error", err, "request_id", RequestID(r))
				writeJSONError(w, "Failed to establish session", http.StatusInternalServerError)
				return
			}

			if created {
				slog.Info("Session started", "request_id", RequestID(r), "replaced", requested != "")
			}

			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   int(opts.TTL.Seconds()),
				HttpOnly: true,
				Secure:   opts.CookieSecure,
				SameSite: http.SameSiteLaxMode,
			})
			w.Header().Set(SessionHeader, id)

			next(w, r.WithContext(context.WithValue(r.Context(), sessionKey, id)))
		}
	}
}

// SessionID returns the session bound by the Session middleware, or ""
func SessionID(r *http.Request) string {
	id, _ := r.Context().Value(sessionKey).(string)
	return id
}

// requestedSessionID prefers the explicit header over the cookie
func requestedSessionID(r *http.Request) string {
	if id := r.Header.Get(SessionHeader); id != "" {
		return id
	}
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
