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

type timelineRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newTimelineRepository(client *firestore.Client) *timelineRepository {
	return &timelineRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *timelineRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_timeline_events"
	}
	return "timeline_events"
}

func (r *timelineRepository) Create(ctx context.Context, event *model.TimelineEvent) (*model.TimelineEvent, error) {
	now := time.Now().UTC()
	created := *event
	if created.ID == "" {
		created.ID = types.NewEventID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, &created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create timeline event", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *timelineRepository) Get(ctx context.Context, id types.EventID) (*model.TimelineEvent, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "timeline event not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get timeline event", goerr.V("id", id))
	}

	var event model.TimelineEvent
	if err := docSnap.DataTo(&event); err != nil {
		return nil, goerr.Wrap(err, "failed to decode timeline event", goerr.V("id", id))
	}

	return &event, nil
}

func (r *timelineRepository) iterate(iter *firestore.DocumentIterator) ([]*model.TimelineEvent, error) {
	defer iter.Stop()

	var events []*model.TimelineEvent
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate timeline events")
		}

		var event model.TimelineEvent
		if err := docSnap.DataTo(&event); err != nil {
			return nil, goerr.Wrap(err, "failed to decode timeline event", goerr.V("doc_id", docSnap.Ref.ID))
		}

		events = append(events, &event)
	}

	return events, nil
}

func (r *timelineRepository) List(ctx context.Context) ([]*model.TimelineEvent, error) {
	iter := r.client.Collection(r.collection()).
		OrderBy("event_time", firestore.Asc).
		Documents(ctx)
	return r.iterate(iter)
}

func (r *timelineRepository) ListByIncident(ctx context.Context, incidentID types.IncidentID) ([]*model.TimelineEvent, error) {
	iter := r.client.Collection(r.collection()).
		Where("incident_id", "==", incidentID.String()).
		OrderBy("event_time", firestore.Asc).
		Documents(ctx)
	return r.iterate(iter)
}

func (r *timelineRepository) ListByCategory(ctx context.Context, category types.EventCategory) ([]*model.TimelineEvent, error) {
	iter := r.client.Collection(r.collection()).
		Where("category", "==", category.String()).
		OrderBy("event_time", firestore.Asc).
		Documents(ctx)
	return r.iterate(iter)
}

func (r *timelineRepository) Update(ctx context.Context, event *model.TimelineEvent) (*model.TimelineEvent, error) {
	docRef := r.client.Collection(r.collection()).Doc(event.ID.String())

	_, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "timeline event not found", goerr.V("id", event.ID))
		}
		return nil, goerr.Wrap(err, "failed to check timeline event existence", goerr.V("id", event.ID))
	}

	updated := *event
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, &updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update timeline event", goerr.V("id", event.ID))
	}

	return &updated, nil
}

func (r *timelineRepository) Delete(ctx context.Context, id types.EventID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	_, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "timeline event not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to check timeline event existence", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete timeline event", goerr.V("id", id))
	}

	return nil
}
