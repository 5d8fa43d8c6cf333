package httpserver

import "github.com/gorilla/mux"

// buildRouter mounts all routes: public pages and login endpoints, gated
// pages, the gated JSON API, and the API documentation.
func (s *Server) buildRouter() *mux.Router {
	r := mux.NewRouter()

	// Public pages and auth endpoints.
	r.HandleFunc("/", s.handleIndex).Methods("GET")
	r.HandleFunc("/login", s.handleLoginPage).Methods("POST")
	r.HandleFunc("/logout", s.handleLogoutPage).Methods("GET")

	// API documentation.
	r.HandleFunc("/api-docs", s.handleDocsPage).Methods("GET")
	r.HandleFunc("/api-docs/openapi.json", s.handleOpenAPI).Methods("GET")

	// Gated pages.
	pages := r.NewRoute().Subrouter()
	pages.Use(s.requireAuthPage)
	pages.HandleFunc("/dashboard", s.handleDashboard).Methods("GET")
	pages.HandleFunc("/catways", s.handleCatwaysPage).Methods("GET")
	pages.HandleFunc("/reservations", s.handleReservationsPage).Methods("GET")
	pages.HandleFunc("/users", s.handleUsersPage).Methods("GET")

	// JSON API.
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/login", s.handleLoginAPI).Methods("POST")
	api.HandleFunc("/logout", s.handleLogoutAPI).Methods("GET")

	priv := api.NewRoute().Subrouter()
	priv.Use(s.requireAuthAPI)

	priv.HandleFunc("/catways", s.handleCatwayList).Methods("GET")
	priv.HandleFunc("/catways", s.handleCatwayCreate).Methods("POST")
	priv.HandleFunc("/catways/{id}", s.handleCatwayGet).Methods("GET")
	priv.HandleFunc("/catways/{id}", s.handleCatwayUpdate).Methods("PUT")
	priv.HandleFunc("/catways/{id}", s.handleCatwayDelete).Methods("DELETE")

	priv.HandleFunc("/catways/{id}/reservations", s.handleReservationList).Methods("GET")
	priv.HandleFunc("/catways/{id}/reservations", s.handleReservationCreate).Methods("POST")
	priv.HandleFunc("/catways/{id}/reservations/{idReservation}", s.handleReservationGet).Methods("GET")
	priv.HandleFunc("/catways/{id}/reservations/{idReservation}", s.handleReservationUpdate).Methods("PUT")
	priv.HandleFunc("/catways/{id}/reservations/{idReservation}", s.handleReservationDelete).Methods("DELETE")

	priv.HandleFunc("/users", s.handleUserList).Methods("GET")
	priv.HandleFunc("/users", s.handleUserCreate).Methods("POST")
	priv.HandleFunc("/users/{email}", s.handleUserGet).Methods("GET")
	priv.HandleFunc("/users/{email}", s.handleUserUpdate).Methods("PUT")
	priv.HandleFunc("/users/{email}", s.handleUserDelete).Methods("DELETE")

	priv.HandleFunc("/users/{email}/photo", s.handleUserPhotoPresign).Methods("POST")
	priv.HandleFunc("/users/{email}/photo", s.handleUserPhotoURL).Methods("GET")

	return r
}
