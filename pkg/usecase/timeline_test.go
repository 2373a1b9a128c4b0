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

func TestTimelineUseCase_Create(t *testing.T) {
	t.Run("create with valid fields", func(t *testing.T) {
		uc, incidentID := setupIncident(t)
		ctx := context.Background()

		eventTime := time.Now().UTC().Add(-2 * time.Hour)
		created, err := uc.Timeline.Create(ctx, &usecase.CreateTimelineEventInput{
			IncidentID:  incidentID,
			Title:       "First beacon observed",
			Description: "C2 callback in proxy logs",
			EventTime:   &eventTime,
			Category:    types.EventCategoryAttack,
			Severity:    types.EventSeverityHigh,
			System:      "proxy-01",
		}, "U1")
		gt.NoError(t, err).Required()

		gt.Value(t, created.AddedBy).Equal(types.UserID("U1"))
		gt.Bool(t, created.EventTime.Equal(eventTime)).True()
		gt.Bool(t, created.IsConfirmed).False()
	})

	t.Run("defaults fill category and severity", func(t *testing.T) {
		uc, incidentID := setupIncident(t)
		ctx := context.Background()

		eventTime := time.Now().UTC()
		created, err := uc.Timeline.Create(ctx, &usecase.CreateTimelineEventInput{
			IncidentID: incidentID,
			Title:      "t",
			EventTime:  &eventTime,
		}, "U1")
		gt.NoError(t, err).Required()

		gt.Value(t, created.Category).Equal(types.EventCategoryOther)
		gt.Value(t, created.Severity).Equal(types.EventSeverityInfo)
	})

	t.Run("missing event time is rejected", func(t *testing.T) {
		uc, incidentID := setupIncident(t)
		ctx := context.Background()

		_, err := uc.Timeline.Create(ctx, &usecase.CreateTimelineEventInput{
			IncidentID: incidentID,
			Title:      "t",
		}, "U1")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidArgument)).True()
	})

	t.Run("missing recorder is rejected", func(t *testing.T) {
		uc, incidentID := setupIncident(t)
		ctx := context.Background()

		eventTime := time.Now().UTC()
		_, err := uc.Timeline.Create(ctx, &usecase.CreateTimelineEventInput{
			IncidentID: incidentID,
			Title:      "t",
			EventTime:  &eventTime,
		}, "")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidArgument)).True()
	})
}

func TestTimelineUseCase_Update(t *testing.T) {
	createEvent := func(t *testing.T) (*usecase.UseCases, types.EventID) {
		t.Helper()
		uc, incidentID := setupIncident(t)

		eventTime := time.Now().UTC()
		created, err := uc.Timeline.Create(context.Background(), &usecase.CreateTimelineEventInput{
			IncidentID:  incidentID,
			Title:       "suspicious login",
			EventTime:   &eventTime,
			IsConfirmed: true,
		}, "U1")
		gt.NoError(t, err).Required()

		return uc, created.ID
	}

	t.Run("explicit false clears the confirmed flag", func(t *testing.T) {
		uc, id := createEvent(t)
		ctx := context.Background()

		unconfirmed := false
		updated, err := uc.Timeline.Update(ctx, id, &model.TimelineEventPatch{
			IsConfirmed: &unconfirmed,
		})
		gt.NoError(t, err).Required()

		gt.Bool(t, updated.IsConfirmed).False()
	})

	t.Run("absent confirmed flag is preserved", func(t *testing.T) {
		uc, id := createEvent(t)
		ctx := context.Background()

		updated, err := uc.Timeline.Update(ctx, id, &model.TimelineEventPatch{
			Title: "confirmed suspicious login",
		})
		gt.NoError(t, err).Required()

		gt.Value(t, updated.Title).Equal("confirmed suspicious login")
		gt.Bool(t, updated.IsConfirmed).True()
	})

	t.Run("event time can be moved", func(t *testing.T) {
		uc, id := createEvent(t)
		ctx := context.Background()

		moved := time.Now().UTC().Add(-24 * time.Hour)
		updated, err := uc.Timeline.Update(ctx, id, &model.TimelineEventPatch{
			EventTime: &moved,
		})
		gt.NoError(t, err).Required()

		gt.Bool(t, updated.EventTime.Equal(moved)).True()
	})
}

func TestTimelineUseCase_ListByCategory(t *testing.T) {
	t.Run("unknown category is rejected", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		_, err := uc.Timeline.ListByCategory(ctx, "forensics")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidArgument)).True()
	})
}
