package interfaces

import (
	"context"

	"github.com/secmon-lab/briareus/pkg/domain/model"
	"github.com/secmon-lab/briareus/pkg/domain/types"
)

// UserRepository defines the interface for the user summary collection
// used for reference expansion
type UserRepository interface {
	// Put creates or replaces a user summary
	Put(ctx context.Context, user *model.User) (*model.User, error)

	// Get retrieves a user by ID
	Get(ctx context.Context, id types.UserID) (*model.User, error)

	// List retrieves all users
	List(ctx context.Context) ([]*model.User, error)
}
