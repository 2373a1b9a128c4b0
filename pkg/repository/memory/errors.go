package memory

import "github.com/secmon-lab/briareus/pkg/domain/interfaces"

// ErrNotFound is returned when a document does not exist
var ErrNotFound = interfaces.ErrNotFound
