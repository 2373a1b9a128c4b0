package model

import (
	"time"

	"github.com/secmon-lab/briareus/pkg/domain/types"
)

// User is a member of the response team. User accounts are managed by
// an external identity system; this collection only keeps the summary
// fields needed to resolve references for display.
type User struct {
	ID        types.UserID `json:"id" firestore:"id"`
	Name      string       `json:"name" firestore:"name"`
	Email     string       `json:"email" firestore:"email"`
	Role      string       `json:"role,omitempty" firestore:"role"`
	CreatedAt time.Time    `json:"createdAt" firestore:"created_at"`
	UpdatedAt time.Time    `json:"updatedAt" firestore:"updated_at"`
}

// UserSummary is the reference-expanded form embedded in API responses
type UserSummary struct {
	ID    types.UserID `json:"id"`
	Name  string       `json:"name"`
	Email string       `json:"email"`
}

// Summary returns the reference-expansion view of the user
func (x *User) Summary() *UserSummary {
	return &UserSummary{ID: x.ID, Name: x.Name, Email: x.Email}
}
