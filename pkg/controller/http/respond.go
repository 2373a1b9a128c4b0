package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/secmon-lab/briareus/pkg/domain/model/auth"
	"github.com/secmon-lab/briareus/pkg/usecase"
	"github.com/secmon-lab/briareus/pkg/utils/errutil"
	"github.com/secmon-lab/briareus/pkg/utils/safe"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	safe.Write(ctx, w, data)
}

// writeError maps use case errors onto HTTP status codes: invalid
// argument to 400, not found to 404, everything else to 500.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	switch {
	case errors.Is(err, usecase.ErrInvalidArgument),
		errors.Is(err, auth.ErrNoActor),
		errors.Is(err, usecase.ErrIncidentHasChildren):
		statusCode = http.StatusBadRequest
	case errors.Is(err, usecase.ErrIncidentNotFound),
		errors.Is(err, usecase.ErrTaskNotFound),
		errors.Is(err, usecase.ErrEvidenceNotFound),
		errors.Is(err, usecase.ErrTimelineEventNotFound),
		errors.Is(err, usecase.ErrUserNotFound):
		statusCode = http.StatusNotFound
	}

	if statusCode >= http.StatusInternalServerError {
		err = errutil.Handle(ctx, err, "request failed")
	}

	data, marshalErr := json.Marshal(errorResponse{Error: err.Error()})
	if marshalErr != nil {
		errutil.HandleHTTP(ctx, w, marshalErr, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	safe.Write(ctx, w, data)
}
