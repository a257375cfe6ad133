package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/example/modernblog/internal/state"
)

const (
	sessionCookie   = "session"
	userTokenCookie = "user_token"
)

type contextKey string

const storeContextKey contextKey = "store"

// withSession resolves the caller's per-session store, bootstrapping a
// fresh one when the cookie is missing or stale. If the session has no
// user but the request carries a valid user token, the token's claims are
// restored into the store as-is.
func (h *Handlers) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string
		if cookie, err := r.Cookie(sessionCookie); err == nil {
			sessionID = cookie.Value
		}

		id, store := h.sessions.GetOrCreate(sessionID)
		if id != sessionID {
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
			})
		}

		if store.GetState().User == nil {
			if token := extractToken(r); token != "" {
				if user, err := h.tokens.Parse(token); err == nil {
					store.Dispatch(state.SetUser{User: user})
				}
			}
		}

		ctx := context.WithValue(r.Context(), storeContextKey, store)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractToken pulls the user token from the cookie or the Authorization
// header.
func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(userTokenCookie); err == nil {
		return cookie.Value
	}
	if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

func storeFrom(r *http.Request) *state.Store {
	return r.Context().Value(storeContextKey).(*state.Store)
}

// requestLogger logs one line per request.
func (h *Handlers) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		h.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
