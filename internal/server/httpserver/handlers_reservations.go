package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"portrussell/internal/server/models"
)

const msgReservationNotFound = "Réservation non trouvée"

func (s *Server) handleReservationList(w http.ResponseWriter, r *http.Request) {
	reservations, err := s.reservations.ListByCatway(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.apiError(w, r, err, msgReservationNotFound)
		return
	}
	writeJSON(w, http.StatusOK, reservations)
}

func (s *Server) handleReservationGet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservation, err := s.reservations.Get(r.Context(), vars["id"], vars["idReservation"])
	if err != nil {
		s.apiError(w, r, err, msgReservationNotFound)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}

func (s *Server) handleReservationCreate(w http.ResponseWriter, r *http.Request) {
	var reservation models.Reservation
	if err := json.NewDecoder(r.Body).Decode(&reservation); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidData)
		return
	}

	// A missing parent catway is reported as such, not as a missing reservation.
	created, err := s.reservations.Create(r.Context(), mux.Vars(r)["id"], &reservation)
	if err != nil {
		s.apiError(w, r, err, msgCatwayNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleReservationUpdate(w http.ResponseWriter, r *http.Request) {
	var reservation models.Reservation
	if err := json.NewDecoder(r.Body).Decode(&reservation); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidData)
		return
	}

	vars := mux.Vars(r)
	updated, err := s.reservations.Update(r.Context(), vars["id"], vars["idReservation"], &reservation)
	if err != nil {
		s.apiError(w, r, err, msgReservationNotFound)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleReservationDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := s.reservations.Delete(r.Context(), vars["id"], vars["idReservation"]); err != nil {
		s.apiError(w, r, err, msgReservationNotFound)
		return
	}
	writeMessage(w, http.StatusOK, "Réservation supprimée avec succès")
}
