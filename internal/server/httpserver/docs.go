package httpserver

import (
	_ "embed"
	"net/http"
)

//go:embed openapi.json
var openAPISpec []byte

const docsPage = `<!DOCTYPE html>
<html lang="fr">
<head>
  <meta charset="utf-8">
  <title>API - Port de plaisance Russell</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({url: "/api-docs/openapi.json", dom_id: "#swagger-ui"});
  </script>
</body>
</html>
`

// handleDocsPage serves the interactive API documentation.
func (s *Server) handleDocsPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(docsPage))
}

// handleOpenAPI serves the raw OpenAPI document.
func (s *Server) handleOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(openAPISpec)
}
