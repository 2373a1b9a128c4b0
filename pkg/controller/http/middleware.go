package http

import (
	"net/http"

	"github.com/secmon-lab/briareus/pkg/domain/model/auth"
	"github.com/secmon-lab/briareus/pkg/domain/types"
)

// ActorHeader carries the acting user for attribution. Authentication
// itself happens upstream at the identity-aware proxy; this service
// only needs to know who the request acts as.
const ActorHeader = "X-Actor-ID"

// actorMiddleware stores the acting user from the request header in the
// context. Operations that require attribution reject requests where
// the header is missing.
func actorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if actor := r.Header.Get(ActorHeader); actor != "" {
			ctx := auth.ContextWithUser(r.Context(), types.UserID(actor))
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}
		next.ServeHTTP(w, r)
	})
}
