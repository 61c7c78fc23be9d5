package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/huytran/devconnect/internal/domain/user"
	"github.com/huytran/devconnect/pkg/apperror"
)

var psqlUser = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type postgresUserRepo struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepo(db *pgxpool.Pool) user.Repository {
	return &postgresUserRepo{db: db}
}

func (r *postgresUserRepo) FindPublicByID(ctx context.Context, id uuid.UUID) (*user.PublicUser, error) {
	query := `SELECT id, name, COALESCE(avatar, '') FROM users WHERE id = $1`

	u := &user.PublicUser{}
	err := r.db.QueryRow(ctx, query, id).Scan(&u.ID, &u.Name, &u.Avatar)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("user", id.String())
		}
		return nil, apperror.NewInternal("failed to query user", err)
	}

	return u, nil
}

func (r *postgresUserRepo) FindPublicByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]user.PublicUser, error) {
	builder := psqlUser.Select("id", "name", "COALESCE(avatar, '')").
		From("users").
		Where(sq.Eq{"id": ids})

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list users query", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query users", err)
	}
	defer rows.Close()

	users := make(map[uuid.UUID]user.PublicUser, len(ids))
	for rows.Next() {
		var u user.PublicUser
		if err := rows.Scan(&u.ID, &u.Name, &u.Avatar); err != nil {
			return nil, apperror.NewInternal("failed to scan user row", err)
		}
		users[u.ID] = u
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("failed to iterate user rows", err)
	}

	return users, nil
}

func (r *postgresUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete user", err)
	}
	return nil
}
