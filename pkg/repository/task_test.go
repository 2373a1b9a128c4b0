package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/briareus/pkg/domain/interfaces"
	"github.com/secmon-lab/briareus/pkg/domain/model"
	"github.com/secmon-lab/briareus/pkg/domain/types"
	"github.com/secmon-lab/briareus/pkg/repository/memory"
)

func runTaskRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns ID and timestamps", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		incidentID := types.NewIncidentID()
		created, err := repo.Task().Create(ctx, &model.Task{
			IncidentID:  incidentID,
			Title:       "Isolate affected hosts",
			Description: "Pull network cables, keep power on",
			Status:      types.TaskStatusPending,
			Priority:    types.TaskPriorityHigh,
			Assignee:    "U1",
		})
		gt.NoError(t, err).Required()

		gt.Value(t, created.ID).NotEqual(types.TaskID(""))
		gt.Value(t, created.IncidentID).Equal(incidentID)
		gt.Bool(t, created.CreatedAt.IsZero()).False()
	})

	t.Run("Get round-trips notes and dependencies", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		blocker := types.NewTaskID()
		created, err := repo.Task().Create(ctx, &model.Task{
			IncidentID:  types.NewIncidentID(),
			Title:       "Collect memory dumps",
			Description: "All hosts in scope",
			Dependencies: []model.TaskDependency{
				{TaskID: blocker, Relation: types.DependencyBlockedBy},
			},
			Notes: []model.TaskNote{
				{Text: "waiting on access", Author: "U2"},
			},
		})
		gt.NoError(t, err).Required()

		got, err := repo.Task().Get(ctx, created.ID)
		gt.NoError(t, err).Required()

		gt.Array(t, got.Dependencies).Length(1)
		gt.Value(t, got.Dependencies[0].TaskID).Equal(blocker)
		gt.Array(t, got.Notes).Length(1)
		gt.Value(t, got.Notes[0].Text).Equal("waiting on access")
	})

	t.Run("Get returns error for non-existent task", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Task().Get(ctx, types.NewTaskID())
		gt.Error(t, err)
	})

	t.Run("ListByIncident filters other incidents", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		target := types.NewIncidentID()
		other := types.NewIncidentID()

		mine, err := repo.Task().Create(ctx, &model.Task{
			IncidentID: target, Title: "mine", Description: "d",
		})
		gt.NoError(t, err).Required()
		_, err = repo.Task().Create(ctx, &model.Task{
			IncidentID: other, Title: "not mine", Description: "d",
		})
		gt.NoError(t, err).Required()

		tasks, err := repo.Task().ListByIncident(ctx, target)
		gt.NoError(t, err).Required()

		var ids []types.TaskID
		for _, task := range tasks {
			gt.Value(t, task.IncidentID).Equal(target)
			ids = append(ids, task.ID)
		}
		gt.Array(t, ids).Has(mine.ID)
	})

	t.Run("ListByAssignee filters other users", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		assignee := types.UserID(uuid.New().String())
		mine, err := repo.Task().Create(ctx, &model.Task{
			IncidentID: types.NewIncidentID(), Title: "assigned", Description: "d",
			Assignee: assignee,
		})
		gt.NoError(t, err).Required()
		_, err = repo.Task().Create(ctx, &model.Task{
			IncidentID: types.NewIncidentID(), Title: "unassigned", Description: "d",
		})
		gt.NoError(t, err).Required()

		tasks, err := repo.Task().ListByAssignee(ctx, assignee)
		gt.NoError(t, err).Required()

		var ids []types.TaskID
		for _, task := range tasks {
			gt.Value(t, task.Assignee).Equal(assignee)
			ids = append(ids, task.ID)
		}
		gt.Array(t, ids).Has(mine.ID)
	})

	t.Run("Update preserves CreatedAt", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Task().Create(ctx, &model.Task{
			IncidentID: types.NewIncidentID(), Title: "t", Description: "d",
		})
		gt.NoError(t, err).Required()

		created.Status = types.TaskStatusInProgress
		updated, err := repo.Task().Update(ctx, created)
		gt.NoError(t, err).Required()

		gt.Value(t, updated.Status).Equal(types.TaskStatusInProgress)
		gt.Bool(t, updated.CreatedAt.Equal(created.CreatedAt)).True()
	})

	t.Run("Delete removes task", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Task().Create(ctx, &model.Task{
			IncidentID: types.NewIncidentID(), Title: "t", Description: "d",
		})
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Task().Delete(ctx, created.ID))
		_, err = repo.Task().Get(ctx, created.ID)
		gt.Error(t, err)
	})
}

func TestTaskRepository_Memory(t *testing.T) {
	runTaskRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestTaskRepository_Firestore(t *testing.T) {
	runTaskRepositoryTest(t, newFirestoreRepo)
}
