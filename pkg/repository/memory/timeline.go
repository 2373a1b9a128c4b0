package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareus/pkg/domain/model"
	"github.com/secmon-lab/briareus/pkg/domain/types"
)

type timelineRepository struct {
	mu     sync.RWMutex
	events map[types.EventID]*model.TimelineEvent
}

func newTimelineRepository() *timelineRepository {
	return &timelineRepository{
		events: make(map[types.EventID]*model.TimelineEvent),
	}
}

// copyTimelineEvent creates a deep copy of a timeline event
func copyTimelineEvent(x *model.TimelineEvent) *model.TimelineEvent {
	copied := *x
	copied.EvidenceIDs = append([]types.EvidenceID(nil), x.EvidenceIDs...)
	copied.Tags = append([]string(nil), x.Tags...)
	return &copied
}

// sortEventsByTime orders events by ascending event time, the display
// order of a timeline
func sortEventsByTime(events []*model.TimelineEvent) {
	sort.Slice(events, func(i, j int) bool {
		return events[i].EventTime.Before(events[j].EventTime)
	})
}

func (r *timelineRepository) Create(ctx context.Context, event *model.TimelineEvent) (*model.TimelineEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyTimelineEvent(event)
	if created.ID == "" {
		created.ID = types.NewEventID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.events[created.ID] = created
	return copyTimelineEvent(created), nil
}

func (r *timelineRepository) Get(ctx context.Context, id types.EventID) (*model.TimelineEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	event, exists := r.events[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "timeline event not found", goerr.V("id", id))
	}

	return copyTimelineEvent(event), nil
}

func (r *timelineRepository) List(ctx context.Context) ([]*model.TimelineEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]*model.TimelineEvent, 0, len(r.events))
	for _, event := range r.events {
		events = append(events, copyTimelineEvent(event))
	}

	sortEventsByTime(events)
	return events, nil
}

func (r *timelineRepository) ListByIncident(ctx context.Context, incidentID types.IncidentID) ([]*model.TimelineEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var events []*model.TimelineEvent
	for _, event := range r.events {
		if event.IncidentID == incidentID {
			events = append(events, copyTimelineEvent(event))
		}
	}

	sortEventsByTime(events)
	return events, nil
}

func (r *timelineRepository) ListByCategory(ctx context.Context, category types.EventCategory) ([]*model.TimelineEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var events []*model.TimelineEvent
	for _, event := range r.events {
		if event.Category == category {
			events = append(events, copyTimelineEvent(event))
		}
	}

	sortEventsByTime(events)
	return events, nil
}

func (r *timelineRepository) Update(ctx context.Context, event *model.TimelineEvent) (*model.TimelineEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.events[event.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "timeline event not found", goerr.V("id", event.ID))
	}

	updated := copyTimelineEvent(event)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.events[updated.ID] = updated
	return copyTimelineEvent(updated), nil
}

func (r *timelineRepository) Delete(ctx context.Context, id types.EventID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.events[id]; !exists {
		return goerr.Wrap(ErrNotFound, "timeline event not found", goerr.V("id", id))
	}

	delete(r.events, id)
	return nil
}
