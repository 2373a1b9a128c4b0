package memory

import (
	"github.com/secmon-lab/briareus/pkg/domain/interfaces"
)

// Memory is an in-memory document store for development and tests
type Memory struct {
	incident *incidentRepository
	task     *taskRepository
	evidence *evidenceRepository
	timeline *timelineRepository
	user     *userRepository
}

var _ interfaces.Repository = &Memory{}

// New creates an empty in-memory repository
func New() *Memory {
	return &Memory{
		incident: newIncidentRepository(),
		task:     newTaskRepository(),
		evidence: newEvidenceRepository(),
		timeline: newTimelineRepository(),
		user:     newUserRepository(),
	}
}

func (m *Memory) Incident() interfaces.IncidentRepository {
	return m.incident
}

func (m *Memory) Task() interfaces.TaskRepository {
	return m.task
}

func (m *Memory) Evidence() interfaces.EvidenceRepository {
	return m.evidence
}

func (m *Memory) Timeline() interfaces.TimelineRepository {
	return m.timeline
}

func (m *Memory) User() interfaces.UserRepository {
	return m.user
}

// Close is a no-op for the in-memory backend
func (m *Memory) Close() error {
	return nil
}
