package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/briareus/pkg/domain/model"
	"github.com/secmon-lab/briareus/pkg/domain/types"
	"github.com/secmon-lab/briareus/pkg/repository/memory"
	"github.com/secmon-lab/briareus/pkg/usecase"
)

func setupIncident(t *testing.T) (*usecase.UseCases, types.IncidentID) {
	t.Helper()
	uc := usecase.New(memory.New())

	incident, err := uc.Incident.Create(context.Background(), &usecase.CreateIncidentInput{
		Title:       "Parent incident",
		Description: "for child records",
	})
	gt.NoError(t, err).Required()

	return uc, incident.ID
}

func TestTaskUseCase_Create(t *testing.T) {
	t.Run("create with valid fields", func(t *testing.T) {
		uc, incidentID := setupIncident(t)
		ctx := context.Background()

		due := time.Now().UTC().Add(48 * time.Hour)
		created, err := uc.Task.Create(ctx, &usecase.CreateTaskInput{
			IncidentID:  incidentID,
			Title:       "Reset compromised accounts",
			Description: "All accounts listed in the IOC sheet",
			Assignee:    "U1",
			Priority:    types.TaskPriorityCritical,
			DueDate:     &due,
			Phase:       types.TaskPhaseContainment,
		})
		gt.NoError(t, err).Required()

		gt.Value(t, created.Status).Equal(types.TaskStatusPending)
		gt.Value(t, created.Priority).Equal(types.TaskPriorityCritical)
		gt.Value(t, created.DueDate).NotNil()
	})

	t.Run("missing incident reference is rejected", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		_, err := uc.Task.Create(ctx, &usecase.CreateTaskInput{
			Title:       "t",
			Description: "d",
		})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidArgument)).True()
	})

	t.Run("unknown incident is rejected", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		_, err := uc.Task.Create(ctx, &usecase.CreateTaskInput{
			IncidentID:  types.NewIncidentID(),
			Title:       "t",
			Description: "d",
		})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrIncidentNotFound)).True()
	})
}

func TestTaskUseCase_Update(t *testing.T) {
	t.Run("completing stamps completed date exactly once", func(t *testing.T) {
		uc, incidentID := setupIncident(t)
		ctx := context.Background()

		created, err := uc.Task.Create(ctx, &usecase.CreateTaskInput{
			IncidentID:  incidentID,
			Title:       "t",
			Description: "d",
		})
		gt.NoError(t, err).Required()

		completed, err := uc.Task.Update(ctx, created.ID, &model.TaskPatch{
			Status: types.TaskStatusCompleted,
		})
		gt.NoError(t, err).Required()
		gt.Value(t, completed.CompletedDate).NotNil()

		first := *completed.CompletedDate

		// A second completed patch carrying other changes leaves the
		// original stamp alone.
		again, err := uc.Task.Update(ctx, created.ID, &model.TaskPatch{
			Status: types.TaskStatusCompleted,
			Title:  "renamed",
		})
		gt.NoError(t, err).Required()
		gt.Value(t, again.Title).Equal("renamed")
		gt.Bool(t, again.CompletedDate.Equal(first)).True()
	})

	t.Run("dependencies replace the whole list", func(t *testing.T) {
		uc, incidentID := setupIncident(t)
		ctx := context.Background()

		dep1 := types.NewTaskID()
		dep2 := types.NewTaskID()

		created, err := uc.Task.Create(ctx, &usecase.CreateTaskInput{
			IncidentID:  incidentID,
			Title:       "t",
			Description: "d",
			Dependencies: []model.TaskDependency{
				{TaskID: dep1, Relation: types.DependencyBlockedBy},
			},
		})
		gt.NoError(t, err).Required()

		updated, err := uc.Task.Update(ctx, created.ID, &model.TaskPatch{
			Dependencies: []model.TaskDependency{
				{TaskID: dep2, Relation: types.DependencyBlocks},
			},
		})
		gt.NoError(t, err).Required()

		gt.Array(t, updated.Dependencies).Length(1)
		gt.Value(t, updated.Dependencies[0].TaskID).Equal(dep2)
	})

	t.Run("invalid patch status is rejected", func(t *testing.T) {
		uc, incidentID := setupIncident(t)
		ctx := context.Background()

		created, err := uc.Task.Create(ctx, &usecase.CreateTaskInput{
			IncidentID:  incidentID,
			Title:       "t",
			Description: "d",
		})
		gt.NoError(t, err).Required()

		_, err = uc.Task.Update(ctx, created.ID, &model.TaskPatch{Status: "done-ish"})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidArgument)).True()
	})
}

func TestTaskUseCase_AddNote(t *testing.T) {
	t.Run("notes append in order", func(t *testing.T) {
		uc, incidentID := setupIncident(t)
		ctx := context.Background()

		created, err := uc.Task.Create(ctx, &usecase.CreateTaskInput{
			IncidentID:  incidentID,
			Title:       "t",
			Description: "d",
		})
		gt.NoError(t, err).Required()

		_, err = uc.Task.AddNote(ctx, created.ID, "first observation", "U1")
		gt.NoError(t, err).Required()
		noted, err := uc.Task.AddNote(ctx, created.ID, "second observation", "U2")
		gt.NoError(t, err).Required()

		gt.Array(t, noted.Notes).Length(2)
		gt.Value(t, noted.Notes[0].Text).Equal("first observation")
		gt.Value(t, noted.Notes[1].Author).Equal(types.UserID("U2"))
	})

	t.Run("empty note text is rejected", func(t *testing.T) {
		uc, incidentID := setupIncident(t)
		ctx := context.Background()

		created, err := uc.Task.Create(ctx, &usecase.CreateTaskInput{
			IncidentID:  incidentID,
			Title:       "t",
			Description: "d",
		})
		gt.NoError(t, err).Required()

		_, err = uc.Task.AddNote(ctx, created.ID, "", "U1")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidArgument)).True()
	})

	t.Run("unknown task returns not found", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		_, err := uc.Task.AddNote(ctx, types.NewTaskID(), "text", "U1")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrTaskNotFound)).True()
	})
}
