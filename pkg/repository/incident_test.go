package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/briareus/pkg/domain/interfaces"
	"github.com/secmon-lab/briareus/pkg/domain/model"
	"github.com/secmon-lab/briareus/pkg/domain/types"
	"github.com/secmon-lab/briareus/pkg/repository/firestore"
	"github.com/secmon-lab/briareus/pkg/repository/memory"
)

func newFirestoreRepo(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("FIRESTORE_PROJECT_ID not set")
	}

	// Per-run prefix keeps test documents out of the real collections
	prefix := fmt.Sprintf("test_%d", time.Now().UnixNano())
	repo, err := firestore.New(context.Background(), projectID, os.Getenv("FIRESTORE_DATABASE_ID"),
		firestore.WithCollectionPrefix(prefix))
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})
	return repo
}

func runIncidentRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns ID and timestamps", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Incident().Create(ctx, &model.Incident{
			Title:        "Ransomware Attack",
			Description:  "Endpoints encrypting files",
			Status:       types.IncidentStatusNew,
			Severity:     types.SeverityCritical,
			Priority:     types.PriorityUrgent,
			IncidentType: types.IncidentTypeRansomware,
			Team:         []types.UserID{"U1", "U2"},
		})
		gt.NoError(t, err).Required()

		gt.Value(t, created.ID).NotEqual(types.IncidentID(""))
		gt.Value(t, created.Title).Equal("Ransomware Attack")
		gt.Array(t, created.Team).Length(2)
		gt.Bool(t, created.CreatedAt.IsZero()).False()
		gt.Bool(t, created.UpdatedAt.IsZero()).False()
	})

	t.Run("Get round-trips all fields", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Incident().Create(ctx, &model.Incident{
			Title:        "Data Breach",
			Description:  "Customer records exfiltrated",
			Status:       types.IncidentStatusInvestigating,
			Severity:     types.SeverityHigh,
			Priority:     types.PriorityHigh,
			IncidentType: types.IncidentTypeDataBreach,
			Coordinator:  "U9",
			AffectedSystems: []string{
				"crm-db", "api-gateway",
			},
			ImpactAssessment: model.ImpactAssessment{
				Financial:  "estimated 500k",
				DataImpact: "PII of ~10k customers",
			},
			NotificationStatus: model.NotificationStatus{
				Authorities: model.NotificationEntry{Required: true},
			},
			Tags: []string{"pii", "regulatory"},
		})
		gt.NoError(t, err).Required()

		got, err := repo.Incident().Get(ctx, created.ID)
		gt.NoError(t, err).Required()

		gt.Value(t, got.Title).Equal(created.Title)
		gt.Value(t, got.Description).Equal(created.Description)
		gt.Value(t, got.Status).Equal(types.IncidentStatusInvestigating)
		gt.Value(t, got.Coordinator).Equal(types.UserID("U9"))
		gt.Array(t, got.AffectedSystems).Length(2)
		gt.Value(t, got.ImpactAssessment.DataImpact).Equal("PII of ~10k customers")
		gt.Bool(t, got.NotificationStatus.Authorities.Required).True()
		gt.Array(t, got.Tags).Length(2)
	})

	t.Run("Get returns error for non-existent incident", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Incident().Get(ctx, types.NewIncidentID())
		gt.Error(t, err)
	})

	t.Run("ListActive excludes closed incidents", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		open, err := repo.Incident().Create(ctx, &model.Incident{
			Title:       "Open Incident",
			Description: "still running",
			Status:      types.IncidentStatusContainment,
		})
		gt.NoError(t, err).Required()

		closed, err := repo.Incident().Create(ctx, &model.Incident{
			Title:       "Closed Incident",
			Description: "wrapped up",
			Status:      types.IncidentStatusClosed,
		})
		gt.NoError(t, err).Required()

		active, err := repo.Incident().ListActive(ctx)
		gt.NoError(t, err).Required()

		var ids []types.IncidentID
		for _, incident := range active {
			ids = append(ids, incident.ID)
		}
		gt.Array(t, ids).Has(open.ID)
		gt.Array(t, ids).NotHas(closed.ID)
	})

	t.Run("ListActive orders newest created first", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		statuses := []types.IncidentStatus{
			types.IncidentStatusRecovery,
			types.IncidentStatusNew,
			types.IncidentStatusContainment,
		}
		for i, status := range statuses {
			_, err := repo.Incident().Create(ctx, &model.Incident{
				Title:       fmt.Sprintf("Incident %d", i),
				Description: "ordering check",
				Status:      status,
			})
			gt.NoError(t, err).Required()
		}

		active, err := repo.Incident().ListActive(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, active).Length(3).Required()

		// Mixed statuses must not regroup the result; creation order
		// alone decides.
		for i := 1; i < len(active); i++ {
			gt.Bool(t, active[i].CreatedAt.After(active[i-1].CreatedAt)).False()
		}
		gt.Value(t, active[0].Title).Equal("Incident 2")
		gt.Value(t, active[2].Title).Equal("Incident 0")
	})

	t.Run("Update overwrites document and bumps UpdatedAt", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Incident().Create(ctx, &model.Incident{
			Title:       "Malware Infection",
			Description: "single workstation",
			Status:      types.IncidentStatusNew,
		})
		gt.NoError(t, err).Required()

		created.Severity = types.SeverityHigh
		created.Status = types.IncidentStatusInvestigating

		updated, err := repo.Incident().Update(ctx, created)
		gt.NoError(t, err).Required()

		gt.Value(t, updated.Severity).Equal(types.SeverityHigh)
		gt.Bool(t, updated.CreatedAt.Equal(created.CreatedAt)).True()
		gt.Bool(t, updated.UpdatedAt.Before(created.UpdatedAt)).False()
	})

	t.Run("Update returns error for non-existent incident", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Incident().Update(ctx, &model.Incident{
			ID:    types.NewIncidentID(),
			Title: "ghost",
		})
		gt.Error(t, err)
	})

	t.Run("Delete removes incident", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Incident().Create(ctx, &model.Incident{
			Title:       "Short lived",
			Description: "to be deleted",
		})
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Incident().Delete(ctx, created.ID))

		_, err = repo.Incident().Get(ctx, created.ID)
		gt.Error(t, err)

		gt.Error(t, repo.Incident().Delete(ctx, created.ID))
	})
}

func TestIncidentRepository_Memory(t *testing.T) {
	runIncidentRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestIncidentRepository_Firestore(t *testing.T) {
	runIncidentRepositoryTest(t, newFirestoreRepo)
}
