package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareus/pkg/domain/types"
)

// TaskNote is one entry of a task's append-only note list
type TaskNote struct {
	Text      string       `json:"text" firestore:"text"`
	Author    types.UserID `json:"author" firestore:"author"`
	CreatedAt time.Time    `json:"createdAt" firestore:"created_at"`
}

// TaskDependency links a task to another task of the same incident
type TaskDependency struct {
	TaskID   types.TaskID             `json:"task" firestore:"task_id"`
	Relation types.DependencyRelation `json:"relation" firestore:"relation"`
}

// Task is a unit of response work scoped under one incident
type Task struct {
	ID            types.TaskID       `json:"id" firestore:"id"`
	IncidentID    types.IncidentID   `json:"incident" firestore:"incident_id"`
	Title         string             `json:"title" firestore:"title"`
	Description   string             `json:"description" firestore:"description"`
	Assignee      types.UserID       `json:"assignedTo,omitempty" firestore:"assignee"`
	Status        types.TaskStatus   `json:"status" firestore:"status"`
	Priority      types.TaskPriority `json:"priority" firestore:"priority"`
	DueDate       *time.Time         `json:"dueDate,omitempty" firestore:"due_date"`
	CompletedDate *time.Time         `json:"completedDate,omitempty" firestore:"completed_date"`
	Phase         types.TaskPhase    `json:"phase,omitempty" firestore:"phase"`
	Notes         []TaskNote         `json:"notes" firestore:"notes"`
	Dependencies  []TaskDependency   `json:"dependencies" firestore:"dependencies"`
	CreatedAt     time.Time          `json:"createdAt" firestore:"created_at"`
	UpdatedAt     time.Time          `json:"updatedAt" firestore:"updated_at"`
}

// TaskPatch is a partial update for a task. Dependencies replace the
// whole list when provided; notes are only ever appended via AddNote.
type TaskPatch struct {
	Title        string             `json:"title,omitempty"`
	Description  string             `json:"description,omitempty"`
	Assignee     types.UserID       `json:"assignedTo,omitempty"`
	Status       types.TaskStatus   `json:"status,omitempty"`
	Priority     types.TaskPriority `json:"priority,omitempty"`
	DueDate      *time.Time         `json:"dueDate,omitempty"`
	Phase        types.TaskPhase    `json:"phase,omitempty"`
	Dependencies []TaskDependency   `json:"dependencies,omitempty"`
}

// Validate checks enum membership of the provided patch fields
func (p *TaskPatch) Validate() error {
	if p.Status != "" && !p.Status.IsValid() {
		return goerr.New("invalid task status", goerr.V("status", p.Status))
	}
	if p.Priority != "" && !p.Priority.IsValid() {
		return goerr.New("invalid task priority", goerr.V("priority", p.Priority))
	}
	if p.Phase != "" && !p.Phase.IsValid() {
		return goerr.New("invalid task phase", goerr.V("phase", p.Phase))
	}
	for _, dep := range p.Dependencies {
		if dep.TaskID == "" {
			return goerr.New("dependency task reference is required")
		}
		if !dep.Relation.IsValid() {
			return goerr.New("invalid dependency relation", goerr.V("relation", dep.Relation))
		}
	}
	return nil
}

// Apply merges the patch into the task. CompletedDate is set the first
// time a patch carries status=completed; the check runs against the raw
// patch value so it fires even though the status merge happens in the
// same call. Later completed patches leave the original date alone.
func (x *Task) Apply(p *TaskPatch, now time.Time) {
	if p.Title != "" {
		x.Title = p.Title
	}
	if p.Description != "" {
		x.Description = p.Description
	}
	if p.Assignee != "" {
		x.Assignee = p.Assignee
	}
	if p.Status != "" {
		x.Status = p.Status
	}
	if p.Priority != "" {
		x.Priority = p.Priority
	}
	if p.DueDate != nil {
		x.DueDate = p.DueDate
	}
	if p.Phase != "" {
		x.Phase = p.Phase
	}
	if p.Dependencies != nil {
		x.Dependencies = p.Dependencies
	}

	if p.Status == types.TaskStatusCompleted && x.CompletedDate == nil {
		t := now
		x.CompletedDate = &t
	}
}

// AddNote appends a note. Existing notes are never edited or removed.
func (x *Task) AddNote(text string, author types.UserID, now time.Time) {
	x.Notes = append(x.Notes, TaskNote{
		Text:      text,
		Author:    author,
		CreatedAt: now,
	})
}
