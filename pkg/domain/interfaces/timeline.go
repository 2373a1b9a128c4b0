package interfaces

import (
	"context"

	"github.com/secmon-lab/briareus/pkg/domain/model"
	"github.com/secmon-lab/briareus/pkg/domain/types"
)

// TimelineRepository defines the interface for TimelineEvent data
// access. Listings are ordered by ascending event time, not insertion
// order.
type TimelineRepository interface {
	// Create persists a new timeline event with a generated ID
	Create(ctx context.Context, event *model.TimelineEvent) (*model.TimelineEvent, error)

	// Get retrieves a timeline event by ID
	Get(ctx context.Context, id types.EventID) (*model.TimelineEvent, error)

	// List retrieves all timeline events, ascending event time
	List(ctx context.Context) ([]*model.TimelineEvent, error)

	// ListByIncident retrieves the events of one incident, ascending
	// event time
	ListByIncident(ctx context.Context, incidentID types.IncidentID) ([]*model.TimelineEvent, error)

	// ListByCategory retrieves events of one category, ascending event
	// time
	ListByCategory(ctx context.Context, category types.EventCategory) ([]*model.TimelineEvent, error)

	// Update overwrites an existing event document (last write wins)
	Update(ctx context.Context, event *model.TimelineEvent) (*model.TimelineEvent, error)

	// Delete removes a timeline event by ID
	Delete(ctx context.Context, id types.EventID) error
}
