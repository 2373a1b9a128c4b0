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

type evidenceRepository struct {
	mu       sync.RWMutex
	evidence map[types.EvidenceID]*model.Evidence
}

func newEvidenceRepository() *evidenceRepository {
	return &evidenceRepository{
		evidence: make(map[types.EvidenceID]*model.Evidence),
	}
}

// copyEvidence creates a deep copy of an evidence record including its
// chain of custody
func copyEvidence(x *model.Evidence) *model.Evidence {
	copied := *x
	copied.Tags = append([]string(nil), x.Tags...)
	copied.ChainOfCustody = append([]model.CustodyEntry(nil), x.ChainOfCustody...)
	if x.Metadata != nil {
		copied.Metadata = make(map[string]string, len(x.Metadata))
		for k, v := range x.Metadata {
			copied.Metadata[k] = v
		}
	}
	return &copied
}

func (r *evidenceRepository) Create(ctx context.Context, evidence *model.Evidence) (*model.Evidence, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyEvidence(evidence)
	if created.ID == "" {
		created.ID = types.NewEvidenceID()
	}
	if created.CollectionDate.IsZero() {
		created.CollectionDate = now
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.evidence[created.ID] = created
	return copyEvidence(created), nil
}

func (r *evidenceRepository) Get(ctx context.Context, id types.EvidenceID) (*model.Evidence, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	evidence, exists := r.evidence[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "evidence not found", goerr.V("id", id))
	}

	return copyEvidence(evidence), nil
}

func (r *evidenceRepository) List(ctx context.Context) ([]*model.Evidence, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*model.Evidence, 0, len(r.evidence))
	for _, evidence := range r.evidence {
		records = append(records, copyEvidence(evidence))
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CollectionDate.After(records[j].CollectionDate)
	})

	return records, nil
}

func (r *evidenceRepository) ListByIncident(ctx context.Context, incidentID types.IncidentID) ([]*model.Evidence, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []*model.Evidence
	for _, evidence := range r.evidence {
		if evidence.IncidentID == incidentID {
			records = append(records, copyEvidence(evidence))
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CollectionDate.After(records[j].CollectionDate)
	})

	return records, nil
}

func (r *evidenceRepository) Update(ctx context.Context, evidence *model.Evidence) (*model.Evidence, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.evidence[evidence.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "evidence not found", goerr.V("id", evidence.ID))
	}

	updated := copyEvidence(evidence)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.evidence[updated.ID] = updated
	return copyEvidence(updated), nil
}

func (r *evidenceRepository) Delete(ctx context.Context, id types.EvidenceID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.evidence[id]; !exists {
		return goerr.Wrap(ErrNotFound, "evidence not found", goerr.V("id", id))
	}

	delete(r.evidence, id)
	return nil
}
