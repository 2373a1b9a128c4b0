package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareus/pkg/domain/interfaces"
	"github.com/secmon-lab/briareus/pkg/domain/model"
	"github.com/secmon-lab/briareus/pkg/domain/types"
	"golang.org/x/sync/errgroup"
)

type IncidentUseCase struct {
	repo         interfaces.Repository
	deletePolicy types.DeletePolicy
}

func NewIncidentUseCase(repo interfaces.Repository, deletePolicy types.DeletePolicy) *IncidentUseCase {
	if !deletePolicy.IsValid() {
		deletePolicy = types.DeletePolicyOrphan
	}
	return &IncidentUseCase{
		repo:         repo,
		deletePolicy: deletePolicy,
	}
}

// CreateIncidentInput carries the caller-provided fields for a new
// incident. Enum fields left empty fall back to their defaults.
type CreateIncidentInput struct {
	Title              string                    `json:"title"`
	Description        string                    `json:"description"`
	AffectedSystems    []string                  `json:"affectedSystems"`
	Status             types.IncidentStatus      `json:"status"`
	Severity           types.Severity            `json:"severity"`
	Priority           types.Priority            `json:"priority"`
	IncidentType       types.IncidentType        `json:"incidentType"`
	DetectionDate      *time.Time                `json:"detectionDate"`
	StartDate          *time.Time                `json:"startDate"`
	Coordinator        types.UserID              `json:"coordinator"`
	Team               []types.UserID            `json:"team"`
	ImpactAssessment   *model.ImpactAssessment   `json:"impactAssessment"`
	NotificationStatus *model.NotificationStatus `json:"notificationStatus"`
	Tags               []string                  `json:"tags"`
}

func (uc *IncidentUseCase) Create(ctx context.Context, input *CreateIncidentInput) (*model.Incident, error) {
	if input.Title == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "incident title is required")
	}
	if input.Description == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "incident description is required")
	}

	incident := &model.Incident{
		Title:           input.Title,
		Description:     input.Description,
		AffectedSystems: input.AffectedSystems,
		Status:          input.Status.Normalize(),
		Severity:        input.Severity.Normalize(),
		Priority:        input.Priority.Normalize(),
		IncidentType:    input.IncidentType.Normalize(),
		Coordinator:     input.Coordinator,
		Team:            input.Team,
		Tags:            input.Tags,
	}
	if !incident.Status.IsValid() {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid incident status", goerr.V("status", input.Status))
	}
	if !incident.Severity.IsValid() {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid severity", goerr.V("severity", input.Severity))
	}
	if !incident.Priority.IsValid() {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid priority", goerr.V("priority", input.Priority))
	}
	if !incident.IncidentType.IsValid() {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid incident type", goerr.V("incident_type", input.IncidentType))
	}

	if input.DetectionDate != nil {
		incident.DetectionDate = *input.DetectionDate
	} else {
		incident.DetectionDate = time.Now().UTC()
	}
	incident.StartDate = input.StartDate
	if input.ImpactAssessment != nil {
		incident.ImpactAssessment = *input.ImpactAssessment
	}
	if input.NotificationStatus != nil {
		incident.NotificationStatus = *input.NotificationStatus
	}

	created, err := uc.repo.Incident().Create(ctx, incident)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create incident")
	}

	return created, nil
}

func (uc *IncidentUseCase) Get(ctx context.Context, id types.IncidentID) (*model.Incident, error) {
	incident, err := uc.repo.Incident().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrIncidentNotFound, "incident not found", goerr.V(IncidentIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get incident", goerr.V(IncidentIDKey, id))
	}
	return incident, nil
}

func (uc *IncidentUseCase) List(ctx context.Context) ([]*model.Incident, error) {
	incidents, err := uc.repo.Incident().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list incidents")
	}
	return incidents, nil
}

func (uc *IncidentUseCase) ListActive(ctx context.Context) ([]*model.Incident, error) {
	incidents, err := uc.repo.Incident().ListActive(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list active incidents")
	}
	return incidents, nil
}

// Update applies a partial update. A status carried in the patch merges
// like any other field and does not set EndDate; closing an incident
// with an end date is what UpdateStatus is for.
func (uc *IncidentUseCase) Update(ctx context.Context, id types.IncidentID, patch *model.IncidentPatch) (*model.Incident, error) {
	if err := patch.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid incident patch", goerr.V("cause", err))
	}

	incident, err := uc.repo.Incident().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrIncidentNotFound, "incident not found", goerr.V(IncidentIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get incident", goerr.V(IncidentIDKey, id))
	}

	incident.Apply(patch)

	updated, err := uc.repo.Incident().Update(ctx, incident)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update incident", goerr.V(IncidentIDKey, id))
	}

	return updated, nil
}

// UpdateStatus changes only the status. Any transition is allowed;
// closing records EndDate the first time and leaves it alone after.
func (uc *IncidentUseCase) UpdateStatus(ctx context.Context, id types.IncidentID, status types.IncidentStatus) (*model.Incident, error) {
	if status == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "status is required")
	}
	if !status.IsValid() {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid incident status", goerr.V("status", status))
	}

	incident, err := uc.repo.Incident().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrIncidentNotFound, "incident not found", goerr.V(IncidentIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get incident", goerr.V(IncidentIDKey, id))
	}

	incident.SetStatus(status, time.Now().UTC())

	updated, err := uc.repo.Incident().Update(ctx, incident)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update incident status", goerr.V(IncidentIDKey, id))
	}

	return updated, nil
}

func (uc *IncidentUseCase) Delete(ctx context.Context, id types.IncidentID) error {
	if _, err := uc.repo.Incident().Get(ctx, id); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return goerr.Wrap(ErrIncidentNotFound, "incident not found", goerr.V(IncidentIDKey, id))
		}
		return goerr.Wrap(err, "failed to get incident", goerr.V(IncidentIDKey, id))
	}

	if uc.deletePolicy != types.DeletePolicyOrphan {
		if err := uc.applyDeletePolicy(ctx, id); err != nil {
			return err
		}
	}

	if err := uc.repo.Incident().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete incident", goerr.V(IncidentIDKey, id))
	}

	return nil
}

func (uc *IncidentUseCase) applyDeletePolicy(ctx context.Context, id types.IncidentID) error {
	tasks, err := uc.repo.Task().ListByIncident(ctx, id)
	if err != nil {
		return goerr.Wrap(err, "failed to list tasks of incident", goerr.V(IncidentIDKey, id))
	}
	records, err := uc.repo.Evidence().ListByIncident(ctx, id)
	if err != nil {
		return goerr.Wrap(err, "failed to list evidence of incident", goerr.V(IncidentIDKey, id))
	}
	events, err := uc.repo.Timeline().ListByIncident(ctx, id)
	if err != nil {
		return goerr.Wrap(err, "failed to list timeline events of incident", goerr.V(IncidentIDKey, id))
	}

	total := len(tasks) + len(records) + len(events)
	if total == 0 {
		return nil
	}

	if uc.deletePolicy == types.DeletePolicyReject {
		return goerr.Wrap(ErrIncidentHasChildren, "incident deletion rejected",
			goerr.V(IncidentIDKey, id),
			goerr.V("tasks", len(tasks)),
			goerr.V("evidence", len(records)),
			goerr.V("timeline_events", len(events)))
	}

	for _, task := range tasks {
		if err := uc.repo.Task().Delete(ctx, task.ID); err != nil {
			return goerr.Wrap(err, "failed to cascade task deletion", goerr.V(TaskIDKey, task.ID))
		}
	}
	for _, evidence := range records {
		if err := uc.repo.Evidence().Delete(ctx, evidence.ID); err != nil {
			return goerr.Wrap(err, "failed to cascade evidence deletion", goerr.V(EvidenceIDKey, evidence.ID))
		}
	}
	for _, event := range events {
		if err := uc.repo.Timeline().Delete(ctx, event.ID); err != nil {
			return goerr.Wrap(err, "failed to cascade timeline event deletion", goerr.V(EventIDKey, event.ID))
		}
	}

	return nil
}

// IncidentView is an incident with coordinator and team references
// expanded to user summaries. Unresolvable references are left nil so a
// stale user ID never breaks incident reads.
type IncidentView struct {
	*model.Incident
	CoordinatorUser *model.UserSummary   `json:"coordinatorUser,omitempty"`
	TeamUsers       []*model.UserSummary `json:"teamUsers,omitempty"`
}

// GetView loads an incident and resolves its user references
// concurrently.
func (uc *IncidentUseCase) GetView(ctx context.Context, id types.IncidentID) (*IncidentView, error) {
	incident, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &IncidentView{Incident: incident}

	var eg errgroup.Group
	if incident.Coordinator != "" {
		eg.Go(func() error {
			if user, err := uc.repo.User().Get(ctx, incident.Coordinator); err == nil {
				view.CoordinatorUser = user.Summary()
			}
			return nil
		})
	}
	if len(incident.Team) > 0 {
		view.TeamUsers = make([]*model.UserSummary, len(incident.Team))
		for i, memberID := range incident.Team {
			eg.Go(func() error {
				if user, err := uc.repo.User().Get(ctx, memberID); err == nil {
					view.TeamUsers[i] = user.Summary()
				}
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "failed to resolve user references", goerr.V(IncidentIDKey, id))
	}

	return view, nil
}
