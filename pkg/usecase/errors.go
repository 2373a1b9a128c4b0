package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Not found errors
	ErrIncidentNotFound      = errors.New("incident not found")
	ErrTaskNotFound          = errors.New("task not found")
	ErrEvidenceNotFound      = errors.New("evidence not found")
	ErrTimelineEventNotFound = errors.New("timeline event not found")
	ErrUserNotFound          = errors.New("user not found")

	// Validation errors
	ErrInvalidArgument = errors.New("invalid argument")

	// Deletion errors
	ErrIncidentHasChildren = errors.New("incident still has tasks, evidence or timeline events")
)

// Context keys for error values
const (
	IncidentIDKey = "incident_id"
	TaskIDKey     = "task_id"
	EvidenceIDKey = "evidence_id"
	EventIDKey    = "event_id"
	UserIDKey     = "user_id"
)
