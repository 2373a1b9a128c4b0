package types

import "github.com/google/uuid"

// IncidentID is a UUID-based identifier for Incident
type IncidentID string

// NewIncidentID generates a new UUID v4 IncidentID
func NewIncidentID() IncidentID {
	return IncidentID(uuid.New().String())
}

// String returns the string representation of the incident ID
func (x IncidentID) String() string { return string(x) }

// TaskID is a UUID-based identifier for Task
type TaskID string

// NewTaskID generates a new UUID v4 TaskID
func NewTaskID() TaskID {
	return TaskID(uuid.New().String())
}

// String returns the string representation of the task ID
func (x TaskID) String() string { return string(x) }

// EvidenceID is a UUID-based identifier for Evidence
type EvidenceID string

// NewEvidenceID generates a new UUID v4 EvidenceID
func NewEvidenceID() EvidenceID {
	return EvidenceID(uuid.New().String())
}

// String returns the string representation of the evidence ID
func (x EvidenceID) String() string { return string(x) }

// EventID is a UUID-based identifier for TimelineEvent
type EventID string

// NewEventID generates a new UUID v4 EventID
func NewEventID() EventID {
	return EventID(uuid.New().String())
}

// String returns the string representation of the event ID
func (x EventID) String() string { return string(x) }

// UserID identifies a member of the response team
type UserID string

// String returns the string representation of the user ID
func (x UserID) String() string { return string(x) }
