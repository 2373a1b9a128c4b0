package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareus/pkg/domain/interfaces"
	"github.com/secmon-lab/briareus/pkg/domain/model"
	"github.com/secmon-lab/briareus/pkg/domain/types"
)

type EvidenceUseCase struct {
	repo interfaces.Repository
}

func NewEvidenceUseCase(repo interfaces.Repository) *EvidenceUseCase {
	return &EvidenceUseCase{repo: repo}
}

// CreateEvidenceInput carries the caller-provided fields for a new
// evidence record
type CreateEvidenceInput struct {
	IncidentID     types.IncidentID   `json:"incident"`
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	Type           types.EvidenceType `json:"type"`
	CollectedBy    types.UserID       `json:"collectedBy"`
	CollectionDate *time.Time         `json:"collectionDate"`
	Location       string             `json:"location"`
	FilePath       string             `json:"filePath"`
	Hash           string             `json:"hash"`
	Size           int64              `json:"size"`
	Tags           []string           `json:"tags"`
	Metadata       map[string]string  `json:"metadata"`
}

// Create stores a new evidence record and seeds its chain of custody
// with a collected entry attributed to the collector. Every record
// therefore has at least one custody entry from birth.
func (uc *EvidenceUseCase) Create(ctx context.Context, input *CreateEvidenceInput) (*model.Evidence, error) {
	if input.IncidentID == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "evidence incident reference is required")
	}
	if input.Name == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "evidence name is required")
	}
	if input.CollectedBy == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "evidence collector is required")
	}

	if _, err := uc.repo.Incident().Get(ctx, input.IncidentID); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrIncidentNotFound, "incident not found", goerr.V(IncidentIDKey, input.IncidentID))
		}
		return nil, goerr.Wrap(err, "failed to get incident", goerr.V(IncidentIDKey, input.IncidentID))
	}

	now := time.Now().UTC()
	evidence := &model.Evidence{
		IncidentID:  input.IncidentID,
		Name:        input.Name,
		Description: input.Description,
		Type:        input.Type.Normalize(),
		CollectedBy: input.CollectedBy,
		Location:    input.Location,
		FilePath:    input.FilePath,
		Hash:        input.Hash,
		Size:        input.Size,
		Tags:        input.Tags,
		Metadata:    input.Metadata,
	}
	if !evidence.Type.IsValid() {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid evidence type", goerr.V("type", input.Type))
	}
	if input.CollectionDate != nil {
		evidence.CollectionDate = *input.CollectionDate
	} else {
		evidence.CollectionDate = now
	}

	evidence.AddCustodyEntry(input.CollectedBy, types.CustodyActionCollected, model.InitialCustodyNotes, evidence.CollectionDate)

	created, err := uc.repo.Evidence().Create(ctx, evidence)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create evidence")
	}

	return created, nil
}

func (uc *EvidenceUseCase) Get(ctx context.Context, id types.EvidenceID) (*model.Evidence, error) {
	evidence, err := uc.repo.Evidence().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrEvidenceNotFound, "evidence not found", goerr.V(EvidenceIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get evidence", goerr.V(EvidenceIDKey, id))
	}
	return evidence, nil
}

func (uc *EvidenceUseCase) List(ctx context.Context) ([]*model.Evidence, error) {
	records, err := uc.repo.Evidence().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list evidence")
	}
	return records, nil
}

func (uc *EvidenceUseCase) ListByIncident(ctx context.Context, incidentID types.IncidentID) ([]*model.Evidence, error) {
	records, err := uc.repo.Evidence().ListByIncident(ctx, incidentID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list evidence by incident", goerr.V(IncidentIDKey, incidentID))
	}
	return records, nil
}

// Update applies a metadata patch. Every update appends a modified
// custody entry attributed to the editor, even when the patch changes
// nothing, so the chain records every write that touched the record.
func (uc *EvidenceUseCase) Update(ctx context.Context, id types.EvidenceID, patch *model.EvidencePatch, editor types.UserID, custodyNotes string) (*model.Evidence, error) {
	if editor == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "editor is required for evidence update")
	}
	if err := patch.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid evidence patch", goerr.V("cause", err))
	}

	evidence, err := uc.repo.Evidence().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrEvidenceNotFound, "evidence not found", goerr.V(EvidenceIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get evidence", goerr.V(EvidenceIDKey, id))
	}

	evidence.Apply(patch, editor, custodyNotes, time.Now().UTC())

	updated, err := uc.repo.Evidence().Update(ctx, evidence)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update evidence", goerr.V(EvidenceIDKey, id))
	}

	return updated, nil
}

// AddCustodyEntry appends an explicit custody entry for accessed,
// transferred, analyzed and similar actions.
func (uc *EvidenceUseCase) AddCustodyEntry(ctx context.Context, id types.EvidenceID, user types.UserID, action types.CustodyAction, notes string) (*model.Evidence, error) {
	if user == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "custody user is required")
	}
	if !action.IsValid() {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid custody action", goerr.V("action", action))
	}

	evidence, err := uc.repo.Evidence().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrEvidenceNotFound, "evidence not found", goerr.V(EvidenceIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get evidence", goerr.V(EvidenceIDKey, id))
	}

	evidence.AddCustodyEntry(user, action, notes, time.Now().UTC())

	updated, err := uc.repo.Evidence().Update(ctx, evidence)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to append custody entry", goerr.V(EvidenceIDKey, id))
	}

	return updated, nil
}

func (uc *EvidenceUseCase) Delete(ctx context.Context, id types.EvidenceID) error {
	if _, err := uc.repo.Evidence().Get(ctx, id); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return goerr.Wrap(ErrEvidenceNotFound, "evidence not found", goerr.V(EvidenceIDKey, id))
		}
		return goerr.Wrap(err, "failed to get evidence", goerr.V(EvidenceIDKey, id))
	}

	if err := uc.repo.Evidence().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete evidence", goerr.V(EvidenceIDKey, id))
	}

	return nil
}
