package httpserver

import (
	"context"
	"net/http"
	"strings"

	"portrussell/internal/server/auth"
)

// Failure reasons returned by the API gate.
const (
	reasonTokenRequired = "token_requis"
	reasonTokenInvalid  = "token_non_valide"
)

// Context key for attaching the verified claims.
type ctxKey string

const claimsKey ctxKey = "authClaims"

// withClaims returns a child context carrying the verified claims.
func withClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext extracts the verified claims attached by the gate, or nil
// when the request did not pass through it.
func ClaimsFromContext(ctx context.Context) *auth.Claims {
	if c, ok := ctx.Value(claimsKey).(*auth.Claims); ok {
		return c
	}
	return nil
}

// extractBearer strips the "Bearer " prefix from an Authorization header
// value. Returns "" when the header does not carry a bearer token.
func extractBearer(header string) string {
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(header[len("Bearer "):])
	}
	return ""
}

// requireAuthAPI is the session gate of the JSON surface. The token is taken
// from the Authorization header, then the X-Access-Token header, then the
// auth cookie. On success the claims land in the request context and a fresh
// token with a renewed expiry is written to the response Authorization
// header; re-issue failure never fails the request.
func (s *Server) requireAuthAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := extractBearer(r.Header.Get("Authorization"))
		if raw == "" {
			raw = r.Header.Get("X-Access-Token")
		}
		if raw == "" {
			if c, err := r.Cookie(s.cfg.CookieName); err == nil {
				raw = c.Value
			}
		}
		if raw == "" {
			writeMessage(w, http.StatusUnauthorized, reasonTokenRequired)
			return
		}

		claims, err := auth.ParseToken(raw, s.jwtSecret)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, reasonTokenInvalid)
			return
		}

		// Sliding refresh: keep the session alive on each authenticated access.
		if fresh, err := auth.GenerateToken(claims.UserID, claims.Email, s.jwtSecret, s.cfg.TokenValidityDuration); err == nil {
			w.Header().Set("Authorization", "Bearer "+fresh)
		}

		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}

// requireAuthPage is the session gate of the server-rendered surface. The
// token comes from the auth cookie only; any failure redirects to the
// landing page.
func (s *Server) requireAuthPage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(s.cfg.CookieName)
		if err != nil || c.Value == "" {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		claims, err := auth.ParseToken(c.Value, s.jwtSecret)
		if err != nil {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}
