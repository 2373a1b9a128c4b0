package interfaces

import (
	"context"

	"github.com/secmon-lab/briareus/pkg/domain/model"
	"github.com/secmon-lab/briareus/pkg/domain/types"
)

// TaskRepository defines the interface for Task data access
type TaskRepository interface {
	// Create persists a new task with a generated ID
	Create(ctx context.Context, task *model.Task) (*model.Task, error)

	// Get retrieves a task by ID
	Get(ctx context.Context, id types.TaskID) (*model.Task, error)

	// List retrieves all tasks, newest created first
	List(ctx context.Context) ([]*model.Task, error)

	// ListByIncident retrieves the tasks of one incident, newest created
	// first
	ListByIncident(ctx context.Context, incidentID types.IncidentID) ([]*model.Task, error)

	// ListByAssignee retrieves the tasks assigned to one user, newest
	// created first
	ListByAssignee(ctx context.Context, assignee types.UserID) ([]*model.Task, error)

	// Update overwrites an existing task document (last write wins)
	Update(ctx context.Context, task *model.Task) (*model.Task, error)

	// Delete removes a task by ID
	Delete(ctx context.Context, id types.TaskID) error
}
