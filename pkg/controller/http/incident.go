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

func (s *Server) createIncident(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateIncidentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(r.Context(), w, goerr.Wrap(usecase.ErrInvalidArgument, "invalid request body", goerr.V("cause", err)))
		return
	}

	created, err := s.uc.Incident.Create(r.Context(), &input)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, created)
}

func (s *Server) listIncidents(w http.ResponseWriter, r *http.Request) {
	incidents, err := s.uc.Incident.List(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, incidents)
}

func (s *Server) listActiveIncidents(w http.ResponseWriter, r *http.Request) {
	incidents, err := s.uc.Incident.ListActive(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, incidents)
}

func (s *Server) getIncident(w http.ResponseWriter, r *http.Request) {
	id := types.IncidentID(chi.URLParam(r, "id"))

	view, err := s.uc.Incident.GetView(r.Context(), id)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, view)
}

func (s *Server) updateIncident(w http.ResponseWriter, r *http.Request) {
	id := types.IncidentID(chi.URLParam(r, "id"))

	var patch model.IncidentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(r.Context(), w, goerr.Wrap(usecase.ErrInvalidArgument, "invalid request body", goerr.V("cause", err)))
		return
	}

	updated, err := s.uc.Incident.Update(r.Context(), id, &patch)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, updated)
}

func (s *Server) updateIncidentStatus(w http.ResponseWriter, r *http.Request) {
	id := types.IncidentID(chi.URLParam(r, "id"))

	var body struct {
		Status types.IncidentStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(r.Context(), w, goerr.Wrap(usecase.ErrInvalidArgument, "invalid request body", goerr.V("cause", err)))
		return
	}

	updated, err := s.uc.Incident.UpdateStatus(r.Context(), id, body.Status)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, updated)
}

func (s *Server) deleteIncident(w http.ResponseWriter, r *http.Request) {
	id := types.IncidentID(chi.URLParam(r, "id"))

	if err := s.uc.Incident.Delete(r.Context(), id); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"message": "incident deleted"})
}
