package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareus/pkg/domain/interfaces"
	"github.com/secmon-lab/briareus/pkg/domain/model"
	"github.com/secmon-lab/briareus/pkg/domain/types"
)

type TimelineUseCase struct {
	repo interfaces.Repository
}

func NewTimelineUseCase(repo interfaces.Repository) *TimelineUseCase {
	return &TimelineUseCase{repo: repo}
}

// CreateTimelineEventInput carries the caller-provided fields for a new
// timeline event
type CreateTimelineEventInput struct {
	IncidentID  types.IncidentID    `json:"incident"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	EventTime   *time.Time          `json:"eventTime"`
	Category    types.EventCategory `json:"category"`
	Severity    types.EventSeverity `json:"severity"`
	Source      string              `json:"source"`
	System      string              `json:"system"`
	Actor       string              `json:"actor"`
	IsConfirmed bool                `json:"isConfirmed"`
	EvidenceIDs []types.EvidenceID  `json:"evidence"`
	Tags        []string            `json:"tags"`
}

// Create records a timeline event attributed to the acting user
func (uc *TimelineUseCase) Create(ctx context.Context, input *CreateTimelineEventInput, recorder types.UserID) (*model.TimelineEvent, error) {
	if input.IncidentID == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "timeline event incident reference is required")
	}
	if input.Title == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "timeline event title is required")
	}
	if input.EventTime == nil {
		return nil, goerr.Wrap(ErrInvalidArgument, "timeline event time is required")
	}
	if recorder == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "timeline event recorder is required")
	}

	if _, err := uc.repo.Incident().Get(ctx, input.IncidentID); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrIncidentNotFound, "incident not found", goerr.V(IncidentIDKey, input.IncidentID))
		}
		return nil, goerr.Wrap(err, "failed to get incident", goerr.V(IncidentIDKey, input.IncidentID))
	}

	event := &model.TimelineEvent{
		IncidentID:  input.IncidentID,
		Title:       input.Title,
		Description: input.Description,
		EventTime:   input.EventTime.UTC(),
		Category:    input.Category.Normalize(),
		Severity:    input.Severity.Normalize(),
		Source:      input.Source,
		System:      input.System,
		Actor:       input.Actor,
		IsConfirmed: input.IsConfirmed,
		EvidenceIDs: input.EvidenceIDs,
		AddedBy:     recorder,
		Tags:        input.Tags,
	}
	if !event.Category.IsValid() {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid event category", goerr.V("category", input.Category))
	}
	if !event.Severity.IsValid() {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid event severity", goerr.V("severity", input.Severity))
	}

	created, err := uc.repo.Timeline().Create(ctx, event)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create timeline event")
	}

	return created, nil
}

func (uc *TimelineUseCase) Get(ctx context.Context, id types.EventID) (*model.TimelineEvent, error) {
	event, err := uc.repo.Timeline().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrTimelineEventNotFound, "timeline event not found", goerr.V(EventIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get timeline event", goerr.V(EventIDKey, id))
	}
	return event, nil
}

func (uc *TimelineUseCase) List(ctx context.Context) ([]*model.TimelineEvent, error) {
	events, err := uc.repo.Timeline().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list timeline events")
	}
	return events, nil
}

func (uc *TimelineUseCase) ListByIncident(ctx context.Context, incidentID types.IncidentID) ([]*model.TimelineEvent, error) {
	events, err := uc.repo.Timeline().ListByIncident(ctx, incidentID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list timeline events by incident", goerr.V(IncidentIDKey, incidentID))
	}
	return events, nil
}

func (uc *TimelineUseCase) ListByCategory(ctx context.Context, category types.EventCategory) ([]*model.TimelineEvent, error) {
	if !category.IsValid() {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid event category", goerr.V("category", category))
	}

	events, err := uc.repo.Timeline().ListByCategory(ctx, category)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list timeline events by category", goerr.V("category", category))
	}
	return events, nil
}

func (uc *TimelineUseCase) Update(ctx context.Context, id types.EventID, patch *model.TimelineEventPatch) (*model.TimelineEvent, error) {
	if err := patch.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid timeline event patch", goerr.V("cause", err))
	}

	event, err := uc.repo.Timeline().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrTimelineEventNotFound, "timeline event not found", goerr.V(EventIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get timeline event", goerr.V(EventIDKey, id))
	}

	event.Apply(patch)

	updated, err := uc.repo.Timeline().Update(ctx, event)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update timeline event", goerr.V(EventIDKey, id))
	}

	return updated, nil
}

func (uc *TimelineUseCase) Delete(ctx context.Context, id types.EventID) error {
	if _, err := uc.repo.Timeline().Get(ctx, id); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return goerr.Wrap(ErrTimelineEventNotFound, "timeline event not found", goerr.V(EventIDKey, id))
		}
		return goerr.Wrap(err, "failed to get timeline event", goerr.V(EventIDKey, id))
	}

	if err := uc.repo.Timeline().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete timeline event", goerr.V(EventIDKey, id))
	}

	return nil
}
