package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareus/pkg/domain/interfaces"
	"github.com/secmon-lab/briareus/pkg/domain/model"
	"github.com/secmon-lab/briareus/pkg/domain/types"
)

type UserUseCase struct {
	repo interfaces.Repository
}

func NewUserUseCase(repo interfaces.Repository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Put registers or refreshes a user record synced from the identity
// system.
func (uc *UserUseCase) Put(ctx context.Context, user *model.User) (*model.User, error) {
	if user.ID == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "user ID is required")
	}
	if user.Name == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "user name is required")
	}

	stored, err := uc.repo.User().Put(ctx, user)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to store user", goerr.V(UserIDKey, user.ID))
	}

	return stored, nil
}

func (uc *UserUseCase) Get(ctx context.Context, id types.UserID) (*model.User, error) {
	user, err := uc.repo.User().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrUserNotFound, "user not found", goerr.V(UserIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get user", goerr.V(UserIDKey, id))
	}
	return user, nil
}

func (uc *UserUseCase) List(ctx context.Context) ([]*model.User, error) {
	users, err := uc.repo.User().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list users")
	}
	return users, nil
}
