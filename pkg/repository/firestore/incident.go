package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareus/pkg/domain/model"
	"github.com/secmon-lab/briareus/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type incidentRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newIncidentRepository(client *firestore.Client) *incidentRepository {
	return &incidentRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *incidentRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_incidents"
	}
	return "incidents"
}

func (r *incidentRepository) Create(ctx context.Context, incident *model.Incident) (*model.Incident, error) {
	now := time.Now().UTC()
	created := *incident
	if created.ID == "" {
		created.ID = types.NewIncidentID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, &created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create incident", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *incidentRepository) Get(ctx context.Context, id types.IncidentID) (*model.Incident, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "incident not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get incident", goerr.V("id", id))
	}

	var incident model.Incident
	if err := docSnap.DataTo(&incident); err != nil {
		return nil, goerr.Wrap(err, "failed to decode incident", goerr.V("id", id))
	}

	return &incident, nil
}

func (r *incidentRepository) iterate(iter *firestore.DocumentIterator) ([]*model.Incident, error) {
	defer iter.Stop()

	var incidents []*model.Incident
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate incidents")
		}

		var incident model.Incident
		if err := docSnap.DataTo(&incident); err != nil {
			return nil, goerr.Wrap(err, "failed to decode incident", goerr.V("doc_id", docSnap.Ref.ID))
		}

		incidents = append(incidents, &incident)
	}

	return incidents, nil
}

func (r *incidentRepository) List(ctx context.Context) ([]*model.Incident, error) {
	iter := r.client.Collection(r.collection()).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	return r.iterate(iter)
}

func (r *incidentRepository) ListActive(ctx context.Context) ([]*model.Incident, error) {
	// Newest first regardless of status; the status filter is backed
	// by a composite index (see migrate).
	iter := r.client.Collection(r.collection()).
		Where("status", "!=", types.IncidentStatusClosed.String()).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	return r.iterate(iter)
}

func (r *incidentRepository) Update(ctx context.Context, incident *model.Incident) (*model.Incident, error) {
	docRef := r.client.Collection(r.collection()).Doc(incident.ID.String())

	// Check if document exists
	_, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "incident not found", goerr.V("id", incident.ID))
		}
		return nil, goerr.Wrap(err, "failed to check incident existence", goerr.V("id", incident.ID))
	}

	updated := *incident
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, &updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update incident", goerr.V("id", incident.ID))
	}

	return &updated, nil
}

func (r *incidentRepository) Delete(ctx context.Context, id types.IncidentID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	_, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "incident not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to check incident existence", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete incident", goerr.V("id", id))
	}

	return nil
}
