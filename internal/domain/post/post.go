package post

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the content-store collaborator. The profile service only
// ever asks it to cascade-delete everything an owner authored.
type Repository interface {
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}
