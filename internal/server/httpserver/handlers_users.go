package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"portrussell/internal/server/services"
)

const msgUserNotFound = "Utilisateur non trouvé"

type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleUserList(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		s.apiError(w, r, err, msgUserNotFound)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) handleUserGet(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.Get(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		s.apiError(w, r, err, msgUserNotFound)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleUserCreate(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidData)
		return
	}

	user, err := s.users.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		s.apiError(w, r, err, msgUserNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (s *Server) handleUserUpdate(w http.ResponseWriter, r *http.Request) {
	var upd services.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidData)
		return
	}

	user, err := s.users.Update(r.Context(), mux.Vars(r)["email"], upd)
	if err != nil {
		s.apiError(w, r, err, msgUserNotFound)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleUserDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.users.Delete(r.Context(), mux.Vars(r)["email"]); err != nil {
		s.apiError(w, r, err, msgUserNotFound)
		return
	}
	writeMessage(w, http.StatusOK, "Utilisateur supprimé avec succès")
}

type presignPhotoRequest struct {
	Filename string `json:"filename"`
}

// handleUserPhotoPresign returns a presigned PUT URL for the user's new
// profile photo and records the object key on the user record.
func (s *Server) handleUserPhotoPresign(w http.ResponseWriter, r *http.Request) {
	var req presignPhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidData)
		return
	}

	key, url, err := s.photos.PresignUpload(r.Context(), mux.Vars(r)["email"], req.Filename)
	if err != nil {
		s.apiError(w, r, err, msgUserNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"key": key, "url": url})
}

// handleUserPhotoURL returns a presigned GET URL for the stored photo.
func (s *Server) handleUserPhotoURL(w http.ResponseWriter, r *http.Request) {
	url, err := s.photos.PresignDownload(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		s.apiError(w, r, err, "Photo non trouvée")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
