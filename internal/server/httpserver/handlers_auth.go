package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"portrussell/internal/common"
)

// User-visible messages. Unknown email and wrong password deliberately share
// one message so accounts cannot be enumerated.
const (
	msgInvalidCredentials = "Email ou mot de passe incorrect"
	msgServerError        = "Erreur serveur"
)

// handleLoginPage processes the landing-page login form.
func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.render(w, r, http.StatusBadRequest, "index.html", indexData{Title: "Accueil", Error: msgInvalidCredentials})
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	token, err := s.users.Login(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			s.render(w, r, http.StatusUnauthorized, "index.html", indexData{Title: "Accueil", Error: msgInvalidCredentials})
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err)
		s.render(w, r, http.StatusInternalServerError, "index.html", indexData{Title: "Accueil", Error: msgServerError})
		return
	}

	s.setAuthCookie(w, token)
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// handleLogoutPage clears the auth cookie and returns to the landing page.
func (s *Server) handleLogoutPage(w http.ResponseWriter, r *http.Request) {
	s.clearAuthCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handleLoginAPI is the JSON login endpoint. The token is returned in the
// body; API clients carry it themselves on subsequent requests.
func (s *Server) handleLoginAPI(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Données invalides")
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeMessage(w, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// handleLogoutAPI acknowledges a logout. Tokens are stateless, so there is
// nothing to revoke server-side.
func (s *Server) handleLogoutAPI(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK, "Déconnexion effectuée")
}
