package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareus/pkg/domain/model"
	"github.com/secmon-lab/briareus/pkg/domain/types"
	"github.com/secmon-lab/briareus/pkg/usecase"
)

func (s *Server) putUser(w http.ResponseWriter, r *http.Request) {
	id := types.UserID(chi.URLParam(r, "id"))

	var user model.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(r.Context(), w, goerr.Wrap(usecase.ErrInvalidArgument, "invalid request body", goerr.V("cause", err)))
		return
	}
	user.ID = id

	stored, err := s.uc.User.Put(r.Context(), &user)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, stored)
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	id := types.UserID(chi.URLParam(r, "id"))

	user, err := s.uc.User.Get(r.Context(), id)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, user)
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.uc.User.List(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, users)
}
