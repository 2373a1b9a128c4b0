package interfaces

import (
	"context"

	"github.com/secmon-lab/briareus/pkg/domain/model"
	"github.com/secmon-lab/briareus/pkg/domain/types"
)

// EvidenceRepository defines the interface for Evidence data access.
// The chain of custody is stored inside the evidence document; the
// store must support arbitrary-length nested lists per document.
type EvidenceRepository interface {
	// Create persists new evidence with a generated ID
	Create(ctx context.Context, evidence *model.Evidence) (*model.Evidence, error)

	// Get retrieves evidence by ID
	Get(ctx context.Context, id types.EvidenceID) (*model.Evidence, error)

	// List retrieves all evidence records
	List(ctx context.Context) ([]*model.Evidence, error)

	// ListByIncident retrieves the evidence of one incident, newest
	// collection first
	ListByIncident(ctx context.Context, incidentID types.IncidentID) ([]*model.Evidence, error)

	// Update overwrites an existing evidence document (last write wins)
	Update(ctx context.Context, evidence *model.Evidence) (*model.Evidence, error)

	// Delete removes evidence by ID
	Delete(ctx context.Context, id types.EvidenceID) error
}
