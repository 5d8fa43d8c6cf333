package httpserver

import (
	"bytes"
	"embed"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

// render executes the named template into a buffer first, so a template
// failure can still produce a clean 500 instead of a half-written page.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.Error(r.Context(), "template rendering failed", "template", name, "error", err)
		http.Error(w, msgServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
