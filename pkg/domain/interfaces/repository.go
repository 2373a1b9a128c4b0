package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Incident() IncidentRepository
	Task() TaskRepository
	Evidence() EvidenceRepository
	Timeline() TimelineRepository
	User() UserRepository

	// Close releases the underlying store connection
	Close() error
}
