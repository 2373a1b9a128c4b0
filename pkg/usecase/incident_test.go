package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/briareus/pkg/domain/model"
	"github.com/secmon-lab/briareus/pkg/domain/types"
	"github.com/secmon-lab/briareus/pkg/repository/memory"
	"github.com/secmon-lab/briareus/pkg/usecase"
)

func TestIncidentUseCase_Create(t *testing.T) {
	t.Run("create with valid fields", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		created, err := uc.Incident.Create(ctx, &usecase.CreateIncidentInput{
			Title:        "Phishing campaign",
			Description:  "Credential harvesting mails to finance",
			Severity:     types.SeverityHigh,
			IncidentType: types.IncidentTypePhishing,
			Coordinator:  "U1",
			Team:         []types.UserID{"U1", "U2"},
		})
		gt.NoError(t, err).Required()

		gt.Value(t, created.ID).NotEqual(types.IncidentID(""))
		gt.Value(t, created.Severity).Equal(types.SeverityHigh)
		gt.Bool(t, created.DetectionDate.IsZero()).False()
	})

	t.Run("defaults fill empty enum fields", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		created, err := uc.Incident.Create(ctx, &usecase.CreateIncidentInput{
			Title:       "Untriaged report",
			Description: "Came in through the abuse mailbox",
		})
		gt.NoError(t, err).Required()

		gt.Value(t, created.Status).Equal(types.IncidentStatusNew)
		gt.Value(t, created.Severity).Equal(types.SeverityMedium)
		gt.Value(t, created.Priority).Equal(types.PriorityMedium)
		gt.Value(t, created.IncidentType).Equal(types.IncidentTypeOther)
	})

	t.Run("missing title is rejected", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		_, err := uc.Incident.Create(ctx, &usecase.CreateIncidentInput{
			Description: "no title",
		})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidArgument)).True()
	})

	t.Run("unknown severity is rejected", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		_, err := uc.Incident.Create(ctx, &usecase.CreateIncidentInput{
			Title:       "t",
			Description: "d",
			Severity:    "catastrophic",
		})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidArgument)).True()
	})
}

func TestIncidentUseCase_Update(t *testing.T) {
	t.Run("patch merges only provided fields", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		created, err := uc.Incident.Create(ctx, &usecase.CreateIncidentInput{
			Title:       "Original title",
			Description: "Original description",
			Severity:    types.SeverityLow,
			Tags:        []string{"keep-me"},
		})
		gt.NoError(t, err).Required()

		updated, err := uc.Incident.Update(ctx, created.ID, &model.IncidentPatch{
			Severity: types.SeverityCritical,
		})
		gt.NoError(t, err).Required()

		gt.Value(t, updated.Severity).Equal(types.SeverityCritical)
		gt.Value(t, updated.Title).Equal("Original title")
		gt.Value(t, updated.Description).Equal("Original description")
		gt.Array(t, updated.Tags).Equal([]string{"keep-me"})
	})

	t.Run("status in a general patch does not set end date", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		created, err := uc.Incident.Create(ctx, &usecase.CreateIncidentInput{
			Title:       "t",
			Description: "d",
		})
		gt.NoError(t, err).Required()

		updated, err := uc.Incident.Update(ctx, created.ID, &model.IncidentPatch{
			Status: types.IncidentStatusClosed,
		})
		gt.NoError(t, err).Required()

		gt.Value(t, updated.Status).Equal(types.IncidentStatusClosed)
		gt.Value(t, updated.EndDate).Nil()
	})

	t.Run("unknown incident returns not found", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		_, err := uc.Incident.Update(ctx, types.NewIncidentID(), &model.IncidentPatch{Title: "x"})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrIncidentNotFound)).True()
	})
}

func TestIncidentUseCase_UpdateStatus(t *testing.T) {
	t.Run("closing sets end date exactly once", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		created, err := uc.Incident.Create(ctx, &usecase.CreateIncidentInput{
			Title:       "t",
			Description: "d",
		})
		gt.NoError(t, err).Required()

		closed, err := uc.Incident.UpdateStatus(ctx, created.ID, types.IncidentStatusClosed)
		gt.NoError(t, err).Required()
		gt.Value(t, closed.EndDate).NotNil()

		firstEnd := *closed.EndDate

		reopened, err := uc.Incident.UpdateStatus(ctx, created.ID, types.IncidentStatusRecovery)
		gt.NoError(t, err).Required()
		gt.Value(t, reopened.Status).Equal(types.IncidentStatusRecovery)

		reclosed, err := uc.Incident.UpdateStatus(ctx, created.ID, types.IncidentStatusClosed)
		gt.NoError(t, err).Required()
		gt.Value(t, reclosed.EndDate).NotNil()
		gt.Bool(t, reclosed.EndDate.Equal(firstEnd)).True()
	})

	t.Run("any transition is allowed", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		created, err := uc.Incident.Create(ctx, &usecase.CreateIncidentInput{
			Title:       "t",
			Description: "d",
		})
		gt.NoError(t, err).Required()

		// new -> recovery skips every intermediate stage.
		updated, err := uc.Incident.UpdateStatus(ctx, created.ID, types.IncidentStatusRecovery)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Status).Equal(types.IncidentStatusRecovery)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		created, err := uc.Incident.Create(ctx, &usecase.CreateIncidentInput{
			Title:       "t",
			Description: "d",
		})
		gt.NoError(t, err).Required()

		_, err = uc.Incident.UpdateStatus(ctx, created.ID, "resolved-ish")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidArgument)).True()
	})
}

func TestIncidentUseCase_Delete(t *testing.T) {
	setup := func(t *testing.T, opts ...usecase.Option) (*usecase.UseCases, types.IncidentID) {
		t.Helper()
		uc := usecase.New(memory.New(), opts...)
		ctx := context.Background()

		incident, err := uc.Incident.Create(ctx, &usecase.CreateIncidentInput{
			Title:       "t",
			Description: "d",
		})
		gt.NoError(t, err).Required()

		_, err = uc.Task.Create(ctx, &usecase.CreateTaskInput{
			IncidentID:  incident.ID,
			Title:       "task",
			Description: "d",
		})
		gt.NoError(t, err).Required()

		return uc, incident.ID
	}

	t.Run("orphan policy leaves children behind", func(t *testing.T) {
		uc, id := setup(t)
		ctx := context.Background()

		gt.NoError(t, uc.Incident.Delete(ctx, id))

		tasks, err := uc.Task.ListByIncident(ctx, id)
		gt.NoError(t, err).Required()
		gt.Array(t, tasks).Length(1)
	})

	t.Run("cascade policy deletes children", func(t *testing.T) {
		uc, id := setup(t, usecase.WithDeletePolicy(types.DeletePolicyCascade))
		ctx := context.Background()

		gt.NoError(t, uc.Incident.Delete(ctx, id))

		tasks, err := uc.Task.ListByIncident(ctx, id)
		gt.NoError(t, err).Required()
		gt.Array(t, tasks).Length(0)
	})

	t.Run("reject policy refuses while children exist", func(t *testing.T) {
		uc, id := setup(t, usecase.WithDeletePolicy(types.DeletePolicyReject))
		ctx := context.Background()

		err := uc.Incident.Delete(ctx, id)
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrIncidentHasChildren)).True()

		// The incident is untouched.
		_, err = uc.Incident.Get(ctx, id)
		gt.NoError(t, err)
	})

	t.Run("unknown incident returns not found", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		err := uc.Incident.Delete(ctx, types.NewIncidentID())
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrIncidentNotFound)).True()
	})
}

func TestIncidentUseCase_GetView(t *testing.T) {
	t.Run("resolves coordinator and team summaries", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		_, err := uc.User.Put(ctx, &model.User{ID: "U1", Name: "Alice", Email: "alice@example.com"})
		gt.NoError(t, err).Required()
		_, err = uc.User.Put(ctx, &model.User{ID: "U2", Name: "Bob", Email: "bob@example.com"})
		gt.NoError(t, err).Required()

		incident, err := uc.Incident.Create(ctx, &usecase.CreateIncidentInput{
			Title:       "t",
			Description: "d",
			Coordinator: "U1",
			Team:        []types.UserID{"U1", "U2", "U-gone"},
		})
		gt.NoError(t, err).Required()

		view, err := uc.Incident.GetView(ctx, incident.ID)
		gt.NoError(t, err).Required()

		gt.Value(t, view.CoordinatorUser).NotNil()
		gt.Value(t, view.CoordinatorUser.Name).Equal("Alice")
		gt.Array(t, view.TeamUsers).Length(3)
		gt.Value(t, view.TeamUsers[1].Name).Equal("Bob")
		// Stale references resolve to nil instead of failing the read.
		gt.Value(t, view.TeamUsers[2]).Nil()
	})
}
