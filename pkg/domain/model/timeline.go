package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareus/pkg/domain/types"
)

// TimelineEvent is one entry of an incident's reconstructed timeline.
// EventTime is when the thing happened, not when it was recorded; the
// display order of a timeline is always ascending EventTime.
type TimelineEvent struct {
	ID          types.EventID       `json:"id" firestore:"id"`
	IncidentID  types.IncidentID    `json:"incident" firestore:"incident_id"`
	Title       string              `json:"title" firestore:"title"`
	Description string              `json:"description,omitempty" firestore:"description"`
	EventTime   time.Time           `json:"eventTime" firestore:"event_time"`
	Category    types.EventCategory `json:"category" firestore:"category"`
	Severity    types.EventSeverity `json:"severity" firestore:"severity"`
	Source      string              `json:"source,omitempty" firestore:"source"`
	System      string              `json:"system,omitempty" firestore:"system"`
	Actor       string              `json:"actor,omitempty" firestore:"actor"`
	IsConfirmed bool                `json:"isConfirmed" firestore:"is_confirmed"`
	EvidenceIDs []types.EvidenceID  `json:"evidence" firestore:"evidence_ids"`
	AddedBy     types.UserID        `json:"addedBy" firestore:"added_by"`
	Tags        []string            `json:"tags" firestore:"tags"`
	CreatedAt   time.Time           `json:"createdAt" firestore:"created_at"`
	UpdatedAt   time.Time           `json:"updatedAt" firestore:"updated_at"`
}

// TimelineEventPatch is a partial update for a timeline event.
// IsConfirmed is a pointer on purpose: unlike every other field it
// merges on presence, so an explicit false clears a confirmed flag.
type TimelineEventPatch struct {
	Title       string              `json:"title,omitempty"`
	Description string              `json:"description,omitempty"`
	EventTime   *time.Time          `json:"eventTime,omitempty"`
	Category    types.EventCategory `json:"category,omitempty"`
	Source      string              `json:"source,omitempty"`
	Severity    types.EventSeverity `json:"severity,omitempty"`
	EvidenceIDs []types.EvidenceID  `json:"evidence,omitempty"`
	System      string              `json:"system,omitempty"`
	Actor       string              `json:"actor,omitempty"`
	IsConfirmed *bool               `json:"isConfirmed,omitempty"`
	Tags        []string            `json:"tags,omitempty"`
}

// Validate checks enum membership of the provided patch fields
func (p *TimelineEventPatch) Validate() error {
	if p.Category != "" && !p.Category.IsValid() {
		return goerr.New("invalid event category", goerr.V("category", p.Category))
	}
	if p.Severity != "" && !p.Severity.IsValid() {
		return goerr.New("invalid event severity", goerr.V("severity", p.Severity))
	}
	return nil
}

// Apply merges the patch into the event
func (x *TimelineEvent) Apply(p *TimelineEventPatch) {
	if p.Title != "" {
		x.Title = p.Title
	}
	if p.Description != "" {
		x.Description = p.Description
	}
	if p.EventTime != nil {
		x.EventTime = *p.EventTime
	}
	if p.Category != "" {
		x.Category = p.Category
	}
	if p.Source != "" {
		x.Source = p.Source
	}
	if p.Severity != "" {
		x.Severity = p.Severity
	}
	if p.EvidenceIDs != nil {
		x.EvidenceIDs = p.EvidenceIDs
	}
	if p.System != "" {
		x.System = p.System
	}
	if p.Actor != "" {
		x.Actor = p.Actor
	}
	if p.IsConfirmed != nil {
		x.IsConfirmed = *p.IsConfirmed
	}
	if p.Tags != nil {
		x.Tags = p.Tags
	}
}
