package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/huytran/devconnect/internal/domain/profile"
	"github.com/huytran/devconnect/pkg/apperror"
)

type AddEducationInput struct {
	OwnerID      uuid.UUID
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

// ExecuteAddEducation prepends a new education entry. Requires an existing
// profile, same as ExecuteAddExperience.
func (uc *ProfileUseCase) ExecuteAddEducation(ctx context.Context, input AddEducationInput) (*SubCollectionOutput, error) {
	entry := profile.Education{
		School:       input.School,
		Degree:       input.Degree,
		FieldOfStudy: input.FieldOfStudy,
		From:         input.From,
		To:           input.To,
		Current:      input.Current,
		Description:  input.Description,
	}
	if err := entry.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("education validation failed", err)
	}

	p, err := uc.profileRepo.GetByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	p.AddEducation(entry)
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("persist education failed: %w", err)
	}

	return &SubCollectionOutput{Profile: p}, nil
}

type RemoveEducationInput struct {
	OwnerID uuid.UUID
	EntryID uuid.UUID
}

func (uc *ProfileUseCase) ExecuteRemoveEducation(ctx context.Context, input RemoveEducationInput) (*SubCollectionOutput, error) {
	p, err := uc.profileRepo.GetByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	p.RemoveEducation(input.EntryID)
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("persist education removal failed: %w", err)
	}

	return &SubCollectionOutput{Profile: p}, nil
}
