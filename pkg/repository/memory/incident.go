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

type incidentRepository struct {
	mu        sync.RWMutex
	incidents map[types.IncidentID]*model.Incident
}

func newIncidentRepository() *incidentRepository {
	return &incidentRepository{
		incidents: make(map[types.IncidentID]*model.Incident),
	}
}

func copyTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	copied := *t
	return &copied
}

// copyIncident creates a deep copy of an incident
func copyIncident(x *model.Incident) *model.Incident {
	copied := *x
	copied.AffectedSystems = append([]string(nil), x.AffectedSystems...)
	copied.Team = append([]types.UserID(nil), x.Team...)
	copied.Tags = append([]string(nil), x.Tags...)
	copied.StartDate = copyTimePtr(x.StartDate)
	copied.EndDate = copyTimePtr(x.EndDate)
	copied.NotificationStatus.Authorities.Date = copyTimePtr(x.NotificationStatus.Authorities.Date)
	copied.NotificationStatus.DataSubjects.Date = copyTimePtr(x.NotificationStatus.DataSubjects.Date)
	return &copied
}

func (r *incidentRepository) Create(ctx context.Context, incident *model.Incident) (*model.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyIncident(incident)
	if created.ID == "" {
		created.ID = types.NewIncidentID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.incidents[created.ID] = created
	return copyIncident(created), nil
}

func (r *incidentRepository) Get(ctx context.Context, id types.IncidentID) (*model.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	incident, exists := r.incidents[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "incident not found", goerr.V("id", id))
	}

	return copyIncident(incident), nil
}

func (r *incidentRepository) List(ctx context.Context) ([]*model.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	incidents := make([]*model.Incident, 0, len(r.incidents))
	for _, incident := range r.incidents {
		incidents = append(incidents, copyIncident(incident))
	}

	sort.Slice(incidents, func(i, j int) bool {
		return incidents[i].CreatedAt.After(incidents[j].CreatedAt)
	})

	return incidents, nil
}

func (r *incidentRepository) ListActive(ctx context.Context) ([]*model.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	incidents := make([]*model.Incident, 0, len(r.incidents))
	for _, incident := range r.incidents {
		if incident.Status == types.IncidentStatusClosed {
			continue
		}
		incidents = append(incidents, copyIncident(incident))
	}

	sort.Slice(incidents, func(i, j int) bool {
		return incidents[i].CreatedAt.After(incidents[j].CreatedAt)
	})

	return incidents, nil
}

func (r *incidentRepository) Update(ctx context.Context, incident *model.Incident) (*model.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.incidents[incident.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "incident not found", goerr.V("id", incident.ID))
	}

	updated := copyIncident(incident)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.incidents[updated.ID] = updated
	return copyIncident(updated), nil
}

func (r *incidentRepository) Delete(ctx context.Context, id types.IncidentID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.incidents[id]; !exists {
		return goerr.Wrap(ErrNotFound, "incident not found", goerr.V("id", id))
	}

	delete(r.incidents, id)
	return nil
}
