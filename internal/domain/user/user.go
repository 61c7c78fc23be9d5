package user

import (
	"context"

	"github.com/google/uuid"
)

// PublicUser is the minimal account projection joined onto profiles for
// public listings.
type PublicUser struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar,omitempty"`
}

type Repository interface {
	FindPublicByID(ctx context.Context, id uuid.UUID) (*PublicUser, error)
	FindPublicByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]PublicUser, error)
	// Delete removes the account row. Part of the profile cascade only.
	Delete(ctx context.Context, id uuid.UUID) error
}
