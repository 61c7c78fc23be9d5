package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/huytran/devconnect/internal/domain/post"
	"github.com/huytran/devconnect/pkg/apperror"
)

type postgresPostRepo struct {
	db *pgxpool.Pool
}

func NewPostgresPostRepo(db *pgxpool.Pool) post.Repository {
	return &postgresPostRepo{db: db}
}

func (r *postgresPostRepo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM posts WHERE owner_id = $1`, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete posts by owner", err)
	}
	return nil
}
