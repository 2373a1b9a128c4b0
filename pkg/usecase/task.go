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

type TaskUseCase struct {
	repo interfaces.Repository
}

func NewTaskUseCase(repo interfaces.Repository) *TaskUseCase {
	return &TaskUseCase{repo: repo}
}

// CreateTaskInput carries the caller-provided fields for a new task
type CreateTaskInput struct {
	IncidentID   types.IncidentID       `json:"incident"`
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	Assignee     types.UserID           `json:"assignedTo"`
	Status       types.TaskStatus       `json:"status"`
	Priority     types.TaskPriority     `json:"priority"`
	DueDate      *time.Time             `json:"dueDate"`
	Phase        types.TaskPhase        `json:"phase"`
	Dependencies []model.TaskDependency `json:"dependencies"`
}

func (uc *TaskUseCase) Create(ctx context.Context, input *CreateTaskInput) (*model.Task, error) {
	if input.IncidentID == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "task incident reference is required")
	}
	if input.Title == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "task title is required")
	}
	if input.Description == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "task description is required")
	}

	if _, err := uc.repo.Incident().Get(ctx, input.IncidentID); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrIncidentNotFound, "incident not found", goerr.V(IncidentIDKey, input.IncidentID))
		}
		return nil, goerr.Wrap(err, "failed to get incident", goerr.V(IncidentIDKey, input.IncidentID))
	}

	task := &model.Task{
		IncidentID:   input.IncidentID,
		Title:        input.Title,
		Description:  input.Description,
		Assignee:     input.Assignee,
		Status:       input.Status.Normalize(),
		Priority:     input.Priority.Normalize(),
		DueDate:      input.DueDate,
		Phase:        input.Phase,
		Dependencies: input.Dependencies,
	}
	if !task.Status.IsValid() {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid task status", goerr.V("status", input.Status))
	}
	if !task.Priority.IsValid() {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid task priority", goerr.V("priority", input.Priority))
	}
	if task.Phase != "" && !task.Phase.IsValid() {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid task phase", goerr.V("phase", input.Phase))
	}
	for _, dep := range task.Dependencies {
		if dep.TaskID == "" {
			return nil, goerr.Wrap(ErrInvalidArgument, "dependency task reference is required")
		}
		if !dep.Relation.IsValid() {
			return nil, goerr.Wrap(ErrInvalidArgument, "invalid dependency relation", goerr.V("relation", dep.Relation))
		}
	}

	created, err := uc.repo.Task().Create(ctx, task)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create task")
	}

	return created, nil
}

func (uc *TaskUseCase) Get(ctx context.Context, id types.TaskID) (*model.Task, error) {
	task, err := uc.repo.Task().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrTaskNotFound, "task not found", goerr.V(TaskIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get task", goerr.V(TaskIDKey, id))
	}
	return task, nil
}

func (uc *TaskUseCase) List(ctx context.Context) ([]*model.Task, error) {
	tasks, err := uc.repo.Task().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list tasks")
	}
	return tasks, nil
}

func (uc *TaskUseCase) ListByIncident(ctx context.Context, incidentID types.IncidentID) ([]*model.Task, error) {
	tasks, err := uc.repo.Task().ListByIncident(ctx, incidentID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list tasks by incident", goerr.V(IncidentIDKey, incidentID))
	}
	return tasks, nil
}

func (uc *TaskUseCase) ListByAssignee(ctx context.Context, assignee types.UserID) ([]*model.Task, error) {
	tasks, err := uc.repo.Task().ListByAssignee(ctx, assignee)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list tasks by assignee", goerr.V(UserIDKey, assignee))
	}
	return tasks, nil
}

// Update applies a partial update. A patch that carries
// status=completed stamps CompletedDate the first time; the stamp is
// never overwritten by later patches.
func (uc *TaskUseCase) Update(ctx context.Context, id types.TaskID, patch *model.TaskPatch) (*model.Task, error) {
	if err := patch.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidArgument, "invalid task patch", goerr.V("cause", err))
	}

	task, err := uc.repo.Task().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrTaskNotFound, "task not found", goerr.V(TaskIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get task", goerr.V(TaskIDKey, id))
	}

	task.Apply(patch, time.Now().UTC())

	updated, err := uc.repo.Task().Update(ctx, task)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update task", goerr.V(TaskIDKey, id))
	}

	return updated, nil
}

// AddNote appends a note attributed to the acting user
func (uc *TaskUseCase) AddNote(ctx context.Context, id types.TaskID, text string, author types.UserID) (*model.Task, error) {
	if text == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "note text is required")
	}
	if author == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "note author is required")
	}

	task, err := uc.repo.Task().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrTaskNotFound, "task not found", goerr.V(TaskIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get task", goerr.V(TaskIDKey, id))
	}

	task.AddNote(text, author, time.Now().UTC())

	updated, err := uc.repo.Task().Update(ctx, task)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to add task note", goerr.V(TaskIDKey, id))
	}

	return updated, nil
}

func (uc *TaskUseCase) Delete(ctx context.Context, id types.TaskID) error {
	if _, err := uc.repo.Task().Get(ctx, id); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return goerr.Wrap(ErrTaskNotFound, "task not found", goerr.V(TaskIDKey, id))
		}
		return goerr.Wrap(err, "failed to get task", goerr.V(TaskIDKey, id))
	}

	if err := uc.repo.Task().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete task", goerr.V(TaskIDKey, id))
	}

	return nil
}
