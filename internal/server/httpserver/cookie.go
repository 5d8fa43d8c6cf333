package httpserver

import (
	"net/http"
	"time"
)

func (s *Server) setAuthCookie(w http.ResponseWriter, token string) {
	c := &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.cfg.TokenValidityDuration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   s.cfg.Env == "prod",
	}
	http.SetCookie(w, c)
}

func (s *Server) clearAuthCookie(w http.ResponseWriter) {
	c := &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   s.cfg.Env == "prod",
	}
	http.SetCookie(w, c)
}
