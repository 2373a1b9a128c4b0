package types

import "fmt"

// TaskStatus represents the progress of a response task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusBlocked    TaskStatus = "blocked"
)

// AllTaskStatuses returns all valid task statuses
func AllTaskStatuses() []TaskStatus {
	return []TaskStatus{
		TaskStatusPending,
		TaskStatusInProgress,
		TaskStatusCompleted,
		TaskStatusBlocked,
	}
}

// IsValid checks if the task status is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusBlocked:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as TaskStatusPending
func (s TaskStatus) Normalize() TaskStatus {
	if s == "" {
		return TaskStatusPending
	}
	return s
}

// String returns the string representation of the task status
func (s TaskStatus) String() string {
	return string(s)
}

// ParseTaskStatus parses a string into a TaskStatus
func ParseTaskStatus(s string) (TaskStatus, error) {
	status := TaskStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid task status: %s", s)
	}
	return status, nil
}

// TaskPriority ranks tasks within an incident
type TaskPriority string

const (
	TaskPriorityCritical TaskPriority = "critical"
	TaskPriorityHigh     TaskPriority = "high"
	TaskPriorityMedium   TaskPriority = "medium"
	TaskPriorityLow      TaskPriority = "low"
)

// AllTaskPriorities returns all valid task priorities
func AllTaskPriorities() []TaskPriority {
	return []TaskPriority{TaskPriorityCritical, TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow}
}

// IsValid checks if the task priority is valid
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityCritical, TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow:
		return true
	default:
		return false
	}
}

// Normalize returns the priority, treating empty as TaskPriorityMedium
func (p TaskPriority) Normalize() TaskPriority {
	if p == "" {
		return TaskPriorityMedium
	}
	return p
}

// String returns the string representation of the task priority
func (p TaskPriority) String() string {
	return string(p)
}

// TaskPhase ties a task to a stage of the response process
type TaskPhase string

const (
	TaskPhaseContainment  TaskPhase = "containment"
	TaskPhaseEradication  TaskPhase = "eradication"
	TaskPhaseRecovery     TaskPhase = "recovery"
	TaskPhasePostIncident TaskPhase = "post-incident"
)

// AllTaskPhases returns all valid task phases
func AllTaskPhases() []TaskPhase {
	return []TaskPhase{TaskPhaseContainment, TaskPhaseEradication, TaskPhaseRecovery, TaskPhasePostIncident}
}

// IsValid checks if the task phase is valid
func (p TaskPhase) IsValid() bool {
	switch p {
	case TaskPhaseContainment, TaskPhaseEradication, TaskPhaseRecovery, TaskPhasePostIncident:
		return true
	default:
		return false
	}
}

// String returns the string representation of the task phase
func (p TaskPhase) String() string {
	return string(p)
}

// DependencyRelation describes how two tasks depend on each other
type DependencyRelation string

const (
	DependencyBlocks    DependencyRelation = "blocks"
	DependencyBlockedBy DependencyRelation = "blocked-by"
)

// AllDependencyRelations returns all valid dependency relations
func AllDependencyRelations() []DependencyRelation {
	return []DependencyRelation{DependencyBlocks, DependencyBlockedBy}
}

// IsValid checks if the dependency relation is valid
func (r DependencyRelation) IsValid() bool {
	switch r {
	case DependencyBlocks, DependencyBlockedBy:
		return true
	default:
		return false
	}
}

// String returns the string representation of the dependency relation
func (r DependencyRelation) String() string {
	return string(r)
}
