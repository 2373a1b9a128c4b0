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

func (s *Server) createEvidence(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateEvidenceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(r.Context(), w, goerr.Wrap(usecase.ErrInvalidArgument, "invalid request body", goerr.V("cause", err)))
		return
	}

	// The collector defaults to the acting user when not set explicitly.
	if input.CollectedBy == "" {
		if actor, err := auth.UserFromContext(r.Context()); err == nil {
			input.CollectedBy = actor
		}
	}

	created, err := s.uc.Evidence.Create(r.Context(), &input)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, created)
}

func (s *Server) listEvidence(w http.ResponseWriter, r *http.Request) {
	records, err := s.uc.Evidence.List(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, records)
}

func (s *Server) listEvidenceByIncident(w http.ResponseWriter, r *http.Request) {
	incidentID := types.IncidentID(chi.URLParam(r, "incidentID"))

	records, err := s.uc.Evidence.ListByIncident(r.Context(), incidentID)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, records)
}

func (s *Server) getEvidence(w http.ResponseWriter, r *http.Request) {
	id := types.EvidenceID(chi.URLParam(r, "id"))

	evidence, err := s.uc.Evidence.Get(r.Context(), id)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, evidence)
}

// updateEvidence applies a metadata patch. The request body embeds the
// patch fields plus an optional custodyNotes field that ends up on the
// custody entry recorded for the update.
func (s *Server) updateEvidence(w http.ResponseWriter, r *http.Request) {
	id := types.EvidenceID(chi.URLParam(r, "id"))

	actor, err := auth.UserFromContext(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	var body struct {
		model.EvidencePatch
		CustodyNotes string `json:"custodyNotes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(r.Context(), w, goerr.Wrap(usecase.ErrInvalidArgument, "invalid request body", goerr.V("cause", err)))
		return
	}

	updated, err := s.uc.Evidence.Update(r.Context(), id, &body.EvidencePatch, actor, body.CustodyNotes)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, updated)
}

func (s *Server) addCustodyEntry(w http.ResponseWriter, r *http.Request) {
	id := types.EvidenceID(chi.URLParam(r, "id"))

	actor, err := auth.UserFromContext(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	var body struct {
		Action types.CustodyAction `json:"action"`
		Notes  string              `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(r.Context(), w, goerr.Wrap(usecase.ErrInvalidArgument, "invalid request body", goerr.V("cause", err)))
		return
	}

	updated, err := s.uc.Evidence.AddCustodyEntry(r.Context(), id, actor, body.Action, body.Notes)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, updated)
}

func (s *Server) deleteEvidence(w http.ResponseWriter, r *http.Request) {
	id := types.EvidenceID(chi.URLParam(r, "id"))

	if err := s.uc.Evidence.Delete(r.Context(), id); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"message": "evidence deleted"})
}
