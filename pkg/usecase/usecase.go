package usecase

import (
	"github.com/secmon-lab/briareus/pkg/domain/interfaces"
	"github.com/secmon-lab/briareus/pkg/domain/types"
)

type UseCases struct {
	repo         interfaces.Repository
	deletePolicy types.DeletePolicy

	Incident *IncidentUseCase
	Task     *TaskUseCase
	Evidence *EvidenceUseCase
	Timeline *TimelineUseCase
	User     *UserUseCase
}

type Option func(*UseCases)

// WithDeletePolicy overrides the default orphan policy for incident
// deletion.
func WithDeletePolicy(policy types.DeletePolicy) Option {
	return func(uc *UseCases) {
		uc.deletePolicy = policy
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:         repo,
		deletePolicy: types.DeletePolicyOrphan,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Incident = NewIncidentUseCase(repo, uc.deletePolicy)
	uc.Task = NewTaskUseCase(repo)
	uc.Evidence = NewEvidenceUseCase(repo)
	uc.Timeline = NewTimelineUseCase(repo)
	uc.User = NewUserUseCase(repo)

	return uc
}
