package httpserver

import (
	"net/http"

	"portrussell/internal/server/models"
)

type indexData struct {
	Title string
	Error string
}

type dashboardData struct {
	Title        string
	Email        string
	Reservations []*models.Reservation
	Error        string
}

type catwaysPageData struct {
	Title   string
	Catways []*models.Catway
	Error   string
}

type reservationsPageData struct {
	Title        string
	Reservations []*models.Reservation
	Error        string
}

type usersPageData struct {
	Title string
	Users []*models.User
	Error string
}

// handleIndex renders the landing page with the login form.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "index.html", indexData{Title: "Accueil"})
}

// handleDashboard shows the signed-in user and the reservations currently on
// the books.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	data := dashboardData{Title: "Tableau de bord"}
	if claims := ClaimsFromContext(r.Context()); claims != nil {
		data.Email = claims.Email
	}

	reservations, err := s.reservations.ListAll(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "listing reservations failed", "error", err)
		data.Error = msgServerError
	} else {
		data.Reservations = reservations
	}

	s.render(w, r, http.StatusOK, "dashboard.html", data)
}

func (s *Server) handleCatwaysPage(w http.ResponseWriter, r *http.Request) {
	data := catwaysPageData{Title: "Catways"}

	catways, err := s.catways.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "listing catways failed", "error", err)
		data.Error = msgServerError
	} else {
		data.Catways = catways
	}

	s.render(w, r, http.StatusOK, "catways.html", data)
}

func (s *Server) handleReservationsPage(w http.ResponseWriter, r *http.Request) {
	data := reservationsPageData{Title: "Réservations"}

	reservations, err := s.reservations.ListAll(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "listing reservations failed", "error", err)
		data.Error = msgServerError
	} else {
		data.Reservations = reservations
	}

	s.render(w, r, http.StatusOK, "reservations.html", data)
}

func (s *Server) handleUsersPage(w http.ResponseWriter, r *http.Request) {
	data := usersPageData{Title: "Utilisateurs"}

	users, err := s.users.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "listing users failed", "error", err)
		data.Error = msgServerError
	} else {
		data.Users = users
	}

	s.render(w, r, http.StatusOK, "users.html", data)
}
