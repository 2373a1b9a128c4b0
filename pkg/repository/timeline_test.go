package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/briareus/pkg/domain/interfaces"
	"github.com/secmon-lab/briareus/pkg/domain/model"
	"github.com/secmon-lab/briareus/pkg/domain/types"
	"github.com/secmon-lab/briareus/pkg/repository/memory"
)

func runTimelineRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns ID and timestamps", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Timeline().Create(ctx, &model.TimelineEvent{
			IncidentID:  types.NewIncidentID(),
			Title:       "Initial alert received",
			Description: "EDR flagged suspicious process",
			EventTime:   time.Now().UTC(),
			Category:    types.EventCategoryDetection,
			Severity:    types.EventSeverityMedium,
			AddedBy:     "U1",
		})
		gt.NoError(t, err).Required()

		gt.Value(t, created.ID).NotEqual(types.EventID(""))
		gt.Bool(t, created.CreatedAt.IsZero()).False()
	})

	t.Run("ListByIncident orders by event time ascending", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		incidentID := types.NewIncidentID()
		base := time.Now().UTC().Truncate(time.Second)

		// Insert out of chronological order.
		for _, offset := range []time.Duration{2 * time.Hour, 0, time.Hour} {
			_, err := repo.Timeline().Create(ctx, &model.TimelineEvent{
				IncidentID:  incidentID,
				Title:       "event",
				Description: "d",
				EventTime:   base.Add(offset),
				AddedBy:     "U1",
			})
			gt.NoError(t, err).Required()
		}

		events, err := repo.Timeline().ListByIncident(ctx, incidentID)
		gt.NoError(t, err).Required()
		gt.Array(t, events).Length(3)

		for i := 1; i < len(events); i++ {
			gt.Bool(t, events[i].EventTime.Before(events[i-1].EventTime)).False()
		}
	})

	t.Run("ListByCategory filters other categories", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		mine, err := repo.Timeline().Create(ctx, &model.TimelineEvent{
			IncidentID:  types.NewIncidentID(),
			Title:       "containment step",
			Description: "d",
			EventTime:   time.Now().UTC(),
			Category:    types.EventCategoryResponse,
			AddedBy:     "U1",
		})
		gt.NoError(t, err).Required()
		_, err = repo.Timeline().Create(ctx, &model.TimelineEvent{
			IncidentID:  types.NewIncidentID(),
			Title:       "detection step",
			Description: "d",
			EventTime:   time.Now().UTC(),
			Category:    types.EventCategoryDetection,
			AddedBy:     "U1",
		})
		gt.NoError(t, err).Required()

		events, err := repo.Timeline().ListByCategory(ctx, types.EventCategoryResponse)
		gt.NoError(t, err).Required()

		var ids []types.EventID
		for _, event := range events {
			gt.Value(t, event.Category).Equal(types.EventCategoryResponse)
			ids = append(ids, event.ID)
		}
		gt.Array(t, ids).Has(mine.ID)
	})

	t.Run("Update round-trips confirmation flag", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Timeline().Create(ctx, &model.TimelineEvent{
			IncidentID:  types.NewIncidentID(),
			Title:       "lateral movement suspected",
			Description: "d",
			EventTime:   time.Now().UTC(),
			IsConfirmed: false,
			AddedBy:     "U1",
		})
		gt.NoError(t, err).Required()

		created.IsConfirmed = true
		created.EvidenceIDs = []types.EvidenceID{types.NewEvidenceID()}
		updated, err := repo.Timeline().Update(ctx, created)
		gt.NoError(t, err).Required()

		got, err := repo.Timeline().Get(ctx, updated.ID)
		gt.NoError(t, err).Required()
		gt.Bool(t, got.IsConfirmed).True()
		gt.Array(t, got.EvidenceIDs).Length(1)
	})

	t.Run("Delete removes event", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Timeline().Create(ctx, &model.TimelineEvent{
			IncidentID:  types.NewIncidentID(),
			Title:       "t",
			Description: "d",
			EventTime:   time.Now().UTC(),
			AddedBy:     "U1",
		})
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Timeline().Delete(ctx, created.ID))
		_, err = repo.Timeline().Get(ctx, created.ID)
		gt.Error(t, err)
	})
}

func TestTimelineRepository_Memory(t *testing.T) {
	runTimelineRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestTimelineRepository_Firestore(t *testing.T) {
	runTimelineRepositoryTest(t, newFirestoreRepo)
}
