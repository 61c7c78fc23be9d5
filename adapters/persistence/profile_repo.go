package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/huytran/devconnect/internal/domain/profile"
	"github.com/huytran/devconnect/pkg/apperror"
	"github.com/huytran/devconnect/pkg/logger"
)

// Profiles are stored one row per owner; skills, social links and both
// sub-collections live in JSONB columns, so every write replaces the whole
// document (last-write-wins under concurrent edits for the same owner).
type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, log logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: log}
}

var psqlProfile = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const profileColumns = `
	owner_id, company, website, location, bio, status, github_username, image,
	skills, social, experience, education, updated_at
`

func (r *postgresProfileRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE owner_id = $1`

	row := r.db.QueryRow(ctx, query, ownerID)
	p, err := r.scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", ownerID.String())
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}

	return p, nil
}

func (r *postgresProfileRepo) ListAll(ctx context.Context) ([]*profile.Profile, error) {
	builder := psqlProfile.Select(profileColumns).
		From("profiles").
		OrderBy("updated_at DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list profiles query", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to list profiles", err)
	}
	defer rows.Close()

	var profiles []*profile.Profile
	for rows.Next() {
		p, err := r.scanProfile(rows)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan profile row", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("failed to iterate profile rows", err)
	}

	return profiles, nil
}

func (r *postgresProfileRepo) Upsert(ctx context.Context, p *profile.Profile) error {
	skills, err := json.Marshal(p.Skills)
	if err != nil {
		return apperror.NewInternal("failed to marshal skills", err)
	}
	social, err := json.Marshal(p.Social)
	if err != nil {
		return apperror.NewInternal("failed to marshal social", err)
	}
	experience, err := json.Marshal(p.Experience)
	if err != nil {
		return apperror.NewInternal("failed to marshal experience", err)
	}
	education, err := json.Marshal(p.Education)
	if err != nil {
		return apperror.NewInternal("failed to marshal education", err)
	}

	query := `
		INSERT INTO profiles (owner_id, company, website, location, bio, status,
			github_username, image, skills, social, experience, education, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (owner_id) DO UPDATE SET
			company = EXCLUDED.company,
			website = EXCLUDED.website,
			location = EXCLUDED.location,
			bio = EXCLUDED.bio,
			status = EXCLUDED.status,
			github_username = EXCLUDED.github_username,
			image = EXCLUDED.image,
			skills = EXCLUDED.skills,
			social = EXCLUDED.social,
			experience = EXCLUDED.experience,
			education = EXCLUDED.education,
			updated_at = EXCLUDED.updated_at
	`
	_, err = r.db.Exec(ctx, query,
		p.OwnerID, p.Company, p.Website, p.Location, p.Bio, p.Status,
		p.GithubUsername, p.Image, skills, social, experience, education, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to upsert profile", err)
	}
	return nil
}

func (r *postgresProfileRepo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE owner_id = $1`, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete profile", err)
	}
	return nil
}

func (r *postgresProfileRepo) scanProfile(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{}
	var skillsBytes, socialBytes, experienceBytes, educationBytes []byte

	err := row.Scan(
		&p.OwnerID,
		&p.Company,
		&p.Website,
		&p.Location,
		&p.Bio,
		&p.Status,
		&p.GithubUsername,
		&p.Image,
		&skillsBytes,
		&socialBytes,
		&experienceBytes,
		&educationBytes,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(skillsBytes, &p.Skills); err != nil {
		r.logger.Warn("failed to unmarshal skills", zap.String("owner_id", p.OwnerID.String()), zap.Error(err))
		p.Skills = []string{}
	}
	if err := json.Unmarshal(socialBytes, &p.Social); err != nil {
		r.logger.Warn("failed to unmarshal social", zap.String("owner_id", p.OwnerID.String()), zap.Error(err))
		p.Social = profile.Social{}
	}
	if err := json.Unmarshal(experienceBytes, &p.Experience); err != nil {
		r.logger.Warn("failed to unmarshal experience", zap.String("owner_id", p.OwnerID.String()), zap.Error(err))
		p.Experience = []profile.Experience{}
	}
	if err := json.Unmarshal(educationBytes, &p.Education); err != nil {
		r.logger.Warn("failed to unmarshal education", zap.String("owner_id", p.OwnerID.String()), zap.Error(err))
		p.Education = []profile.Education{}
	}

	return p, nil
}
