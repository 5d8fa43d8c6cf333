package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"portrussell/internal/common"
	"portrussell/internal/server/models"
)

const (
	msgCatwayNotFound = "Catway non trouvé"
	msgInvalidData    = "Données invalides"
)

// apiError maps service errors to API responses. Store failures are logged
// server-side and surface as a generic 500.
func (s *Server) apiError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		writeMessage(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, common.ErrorValidation):
		writeMessage(w, http.StatusBadRequest, msgInvalidData)
	case errors.Is(err, common.ErrorAlreadyExists):
		writeMessage(w, http.StatusBadRequest, "Email déjà utilisé")
	default:
		s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		writeMessage(w, http.StatusInternalServerError, msgServerError)
	}
}

func (s *Server) handleCatwayList(w http.ResponseWriter, r *http.Request) {
	catways, err := s.catways.List(r.Context())
	if err != nil {
		s.apiError(w, r, err, msgCatwayNotFound)
		return
	}
	writeJSON(w, http.StatusOK, catways)
}

func (s *Server) handleCatwayGet(w http.ResponseWriter, r *http.Request) {
	catway, err := s.catways.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.apiError(w, r, err, msgCatwayNotFound)
		return
	}
	writeJSON(w, http.StatusOK, catway)
}

func (s *Server) handleCatwayCreate(w http.ResponseWriter, r *http.Request) {
	var catway models.Catway
	if err := json.NewDecoder(r.Body).Decode(&catway); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidData)
		return
	}

	created, err := s.catways.Create(r.Context(), &catway)
	if err != nil {
		s.apiError(w, r, err, msgCatwayNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleCatwayUpdate(w http.ResponseWriter, r *http.Request) {
	var catway models.Catway
	if err := json.NewDecoder(r.Body).Decode(&catway); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidData)
		return
	}

	updated, err := s.catways.Update(r.Context(), mux.Vars(r)["id"], &catway)
	if err != nil {
		s.apiError(w, r, err, msgCatwayNotFound)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleCatwayDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.catways.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		s.apiError(w, r, err, msgCatwayNotFound)
		return
	}
	writeMessage(w, http.StatusOK, "Catway supprimé avec succès")
}
