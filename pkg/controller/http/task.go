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

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateTaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(r.Context(), w, goerr.Wrap(usecase.ErrInvalidArgument, "invalid request body", goerr.V("cause", err)))
		return
	}

	created, err := s.uc.Task.Create(r.Context(), &input)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, created)
}

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.uc.Task.List(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, tasks)
}

func (s *Server) listTasksByIncident(w http.ResponseWriter, r *http.Request) {
	incidentID := types.IncidentID(chi.URLParam(r, "incidentID"))

	tasks, err := s.uc.Task.ListByIncident(r.Context(), incidentID)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, tasks)
}

func (s *Server) listTasksByAssignee(w http.ResponseWriter, r *http.Request) {
	userID := types.UserID(chi.URLParam(r, "userID"))

	tasks, err := s.uc.Task.ListByAssignee(r.Context(), userID)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, tasks)
}

func (s *Server) getTask(w http.ResponseWriter, r *http.Request) {
	id := types.TaskID(chi.URLParam(r, "id"))

	task, err := s.uc.Task.Get(r.Context(), id)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, task)
}

func (s *Server) updateTask(w http.ResponseWriter, r *http.Request) {
	id := types.TaskID(chi.URLParam(r, "id"))

	var patch model.TaskPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(r.Context(), w, goerr.Wrap(usecase.ErrInvalidArgument, "invalid request body", goerr.V("cause", err)))
		return
	}

	updated, err := s.uc.Task.Update(r.Context(), id, &patch)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, updated)
}

// addTaskNote appends a note attributed to the acting user from the
// actor header.
func (s *Server) addTaskNote(w http.ResponseWriter, r *http.Request) {
	id := types.TaskID(chi.URLParam(r, "id"))

	actor, err := auth.UserFromContext(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(r.Context(), w, goerr.Wrap(usecase.ErrInvalidArgument, "invalid request body", goerr.V("cause", err)))
		return
	}

	updated, err := s.uc.Task.AddNote(r.Context(), id, body.Text, actor)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, updated)
}

func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request) {
	id := types.TaskID(chi.URLParam(r, "id"))

	if err := s.uc.Task.Delete(r.Context(), id); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"message": "task deleted"})
}
