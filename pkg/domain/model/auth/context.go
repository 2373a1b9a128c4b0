package auth

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareus/pkg/domain/types"
)

type ctxUserKey struct{}

// ErrNoActor indicates that a request reached an operation needing an
// acting user without one in the context
var ErrNoActor = goerr.New("no acting user in context")

// ContextWithUser stores the acting user ID in the context
func ContextWithUser(ctx context.Context, userID types.UserID) context.Context {
	return context.WithValue(ctx, ctxUserKey{}, userID)
}

// UserFromContext extracts the acting user ID from the context
func UserFromContext(ctx context.Context) (types.UserID, error) {
	userID, ok := ctx.Value(ctxUserKey{}).(types.UserID)
	if !ok || userID == "" {
		return "", ErrNoActor
	}
	return userID, nil
}
