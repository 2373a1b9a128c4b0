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

type evidenceRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newEvidenceRepository(client *firestore.Client) *evidenceRepository {
	return &evidenceRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *evidenceRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_evidence"
	}
	return "evidence"
}

func (r *evidenceRepository) Create(ctx context.Context, evidence *model.Evidence) (*model.Evidence, error) {
	now := time.Now().UTC()
	created := *evidence
	if created.ID == "" {
		created.ID = types.NewEvidenceID()
	}
	if created.CollectionDate.IsZero() {
		created.CollectionDate = now
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, &created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create evidence", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *evidenceRepository) Get(ctx context.Context, id types.EvidenceID) (*model.Evidence, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "evidence not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get evidence", goerr.V("id", id))
	}

	var evidence model.Evidence
	if err := docSnap.DataTo(&evidence); err != nil {
		return nil, goerr.Wrap(err, "failed to decode evidence", goerr.V("id", id))
	}

	return &evidence, nil
}

func (r *evidenceRepository) iterate(iter *firestore.DocumentIterator) ([]*model.Evidence, error) {
	defer iter.Stop()

	var records []*model.Evidence
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate evidence")
		}

		var evidence model.Evidence
		if err := docSnap.DataTo(&evidence); err != nil {
			return nil, goerr.Wrap(err, "failed to decode evidence", goerr.V("doc_id", docSnap.Ref.ID))
		}

		records = append(records, &evidence)
	}

	return records, nil
}

func (r *evidenceRepository) List(ctx context.Context) ([]*model.Evidence, error) {
	iter := r.client.Collection(r.collection()).
		OrderBy("collection_date", firestore.Desc).
		Documents(ctx)
	return r.iterate(iter)
}

func (r *evidenceRepository) ListByIncident(ctx context.Context, incidentID types.IncidentID) ([]*model.Evidence, error) {
	iter := r.client.Collection(r.collection()).
		Where("incident_id", "==", incidentID.String()).
		OrderBy("collection_date", firestore.Desc).
		Documents(ctx)
	return r.iterate(iter)
}

func (r *evidenceRepository) Update(ctx context.Context, evidence *model.Evidence) (*model.Evidence, error) {
	docRef := r.client.Collection(r.collection()).Doc(evidence.ID.String())

	_, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "evidence not found", goerr.V("id", evidence.ID))
		}
		return nil, goerr.Wrap(err, "failed to check evidence existence", goerr.V("id", evidence.ID))
	}

	updated := *evidence
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, &updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update evidence", goerr.V("id", evidence.ID))
	}

	return &updated, nil
}

func (r *evidenceRepository) Delete(ctx context.Context, id types.EvidenceID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	_, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "evidence not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to check evidence existence", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete evidence", goerr.V("id", id))
	}

	return nil
}
