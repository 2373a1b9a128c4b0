package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareus/pkg/domain/model"
	"github.com/secmon-lab/briareus/pkg/domain/model/auth"
	"github.com/secmon-lab/briareus/pkg/domain/types"
	"github.com/secmon-lab/briareus/pkg/usecase"
)

func (s *Server) createTimelineEvent(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.UserFromContext(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	var input usecase.CreateTimelineEventInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(r.Context(), w, goerr.Wrap(usecase.ErrInvalidArgument, "invalid request body", goerr.V("cause", err)))
		return
	}

	created, err := s.uc.Timeline.Create(r.Context(), &input, actor)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, created)
}

func (s *Server) listTimelineEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.uc.Timeline.List(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, events)
}

func (s *Server) listTimelineEventsByIncident(w http.ResponseWriter, r *http.Request) {
	incidentID := types.IncidentID(chi.URLParam(r, "incidentID"))

	events, err := s.uc.Timeline.ListByIncident(r.Context(), incidentID)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, events)
}

func (s *Server) listTimelineEventsByCategory(w http.ResponseWriter, r *http.Request) {
	category := types.EventCategory(chi.URLParam(r, "category"))

	events, err := s.uc.Timeline.ListByCategory(r.Context(), category)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, events)
}

func (s *Server) getTimelineEvent(w http.ResponseWriter, r *http.Request) {
	id := types.EventID(chi.URLParam(r, "id"))

	event, err := s.uc.Timeline.Get(r.Context(), id)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, event)
}

func (s *Server) updateTimelineEvent(w http.ResponseWriter, r *http.Request) {
	id := types.EventID(chi.URLParam(r, "id"))

	var patch model.TimelineEventPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(r.Context(), w, goerr.Wrap(usecase.ErrInvalidArgument, "invalid request body", goerr.V("cause", err)))
		return
	}

	updated, err := s.uc.Timeline.Update(r.Context(), id, &patch)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, updated)
}

func (s *Server) deleteTimelineEvent(w http.ResponseWriter, r *http.Request) {
	id := types.EventID(chi.URLParam(r, "id"))

	if err := s.uc.Timeline.Delete(r.Context(), id); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"message": "timeline event deleted"})
}
