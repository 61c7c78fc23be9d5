package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/huytran/devconnect/internal/domain/profile"
	"github.com/huytran/devconnect/pkg/apperror"
)

type AddExperienceInput struct {
	OwnerID     uuid.UUID
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

type SubCollectionOutput struct {
	Profile *profile.Profile
}

// ExecuteAddExperience prepends a new experience entry to the owner's
// profile. Unlike upsert this never creates the profile: a missing profile
// is a not-found error.
func (uc *ProfileUseCase) ExecuteAddExperience(ctx context.Context, input AddExperienceInput) (*SubCollectionOutput, error) {
	entry := profile.Experience{
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		From:        input.From,
		To:          input.To,
		Current:     input.Current,
		Description: input.Description,
	}
	if err := entry.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("experience validation failed", err)
	}

	p, err := uc.profileRepo.GetByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	p.AddExperience(entry)
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("persist experience failed: %w", err)
	}

	return &SubCollectionOutput{Profile: p}, nil
}

type RemoveExperienceInput struct {
	OwnerID uuid.UUID
	EntryID uuid.UUID
}

// ExecuteRemoveExperience removes the entry with the given id. An unmatched
// id is a silent no-op; the profile is persisted and returned either way.
func (uc *ProfileUseCase) ExecuteRemoveExperience(ctx context.Context, input RemoveExperienceInput) (*SubCollectionOutput, error) {
	p, err := uc.profileRepo.GetByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	p.RemoveExperience(input.EntryID)
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("persist experience removal failed: %w", err)
	}

	return &SubCollectionOutput{Profile: p}, nil
}
