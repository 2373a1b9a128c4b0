package interfaces

import (
	"context"

	"github.com/secmon-lab/briareus/pkg/domain/model"
	"github.com/secmon-lab/briareus/pkg/domain/types"
)

// IncidentRepository defines the interface for Incident data access
type IncidentRepository interface {
	// Create persists a new incident with a generated ID
	Create(ctx context.Context, incident *model.Incident) (*model.Incident, error)

	// Get retrieves an incident by ID
	Get(ctx context.Context, id types.IncidentID) (*model.Incident, error)

	// List retrieves all incidents, newest created first
	List(ctx context.Context) ([]*model.Incident, error)

	// ListActive retrieves incidents whose status is not closed, newest
	// created first
	ListActive(ctx context.Context) ([]*model.Incident, error)

	// Update overwrites an existing incident document (last write wins)
	Update(ctx context.Context, incident *model.Incident) (*model.Incident, error)

	// Delete removes an incident by ID
	Delete(ctx context.Context, id types.IncidentID) error
}
