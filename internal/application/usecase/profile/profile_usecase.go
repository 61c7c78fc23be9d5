package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/huytran/devconnect/adapters/event"
	"github.com/huytran/devconnect/internal/domain/post"
	"github.com/huytran/devconnect/internal/domain/profile"
	"github.com/huytran/devconnect/internal/domain/user"
	"github.com/huytran/devconnect/pkg/apperror"
	"github.com/huytran/devconnect/pkg/logger"
)

// EventPublisher is satisfied by the kafka producer client. Publications are
// best-effort and happen off the request path.
type EventPublisher interface {
	PublishProfileEvent(ctx context.Context, payload event.ProfileEventPayload) error
}

// ProfileUseCase owns the profile document lifecycle: upsert semantics,
// sub-collection edits and the delete cascade. Every mutation is a
// load-edit-persist sequence over the whole document; concurrent edits for
// the same owner resolve last-write-wins at the document level.
type ProfileUseCase struct {
	profileRepo profile.Repository
	userRepo    user.Repository
	postRepo    post.Repository
	events      EventPublisher
	logger      logger.Logger
}

func NewProfileUseCase(
	pRepo profile.Repository,
	uRepo user.Repository,
	postRepo post.Repository,
	events EventPublisher,
	log logger.Logger,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: pRepo,
		userRepo:    uRepo,
		postRepo:    postRepo,
		events:      events,
		logger:      log,
	}
}

type GetProfileInput struct {
	OwnerID uuid.UUID
}

type GetProfileOutput struct {
	Profile *profile.Profile
	User    *user.PublicUser
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.GetByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	u, err := uc.userRepo.FindPublicByID(ctx, input.OwnerID)
	if err != nil {
		// The profile is still useful without the account projection.
		uc.logger.Warn("cannot load public account fields", zap.String("owner_id", input.OwnerID.String()))
		u = nil
	}

	return &GetProfileOutput{Profile: p, User: u}, nil
}

// UpsertProfileInput carries the writable scalar fields. Empty strings mean
// "not provided": they are never written over previously stored values.
type UpsertProfileInput struct {
	OwnerID        uuid.UUID
	Company        string
	Website        string
	Location       string
	Bio            string
	Status         string
	GithubUsername string
	Image          string
	Skills         string
	Youtube        string
	Twitter        string
	Facebook       string
	Linkedin       string
	Instagram      string
}

type UpsertProfileOutput struct {
	Profile *profile.Profile
}

// ExecuteUpsertProfile creates the owner's profile when absent and merges
// the provided fields on top of it when present. Omitted fields keep their
// stored values; a partial update never clears anything.
func (uc *ProfileUseCase) ExecuteUpsertProfile(ctx context.Context, input UpsertProfileInput) (*UpsertProfileOutput, error) {
	p, err := uc.profileRepo.GetByOwner(ctx, input.OwnerID)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			return nil, fmt.Errorf("load profile for upsert failed: %w", err)
		}
		p = &profile.Profile{OwnerID: input.OwnerID}
	}

	applyFields(p, input)
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("upsert profile failed: %w", err)
	}

	uc.publishEvent(event.ProfileEventTypeUpserted, input.OwnerID)

	return &UpsertProfileOutput{Profile: p}, nil
}

func applyFields(p *profile.Profile, input UpsertProfileInput) {
	if input.Company != "" {
		p.Company = input.Company
	}
	if input.Website != "" {
		p.Website = input.Website
	}
	if input.Location != "" {
		p.Location = input.Location
	}
	if input.Bio != "" {
		p.Bio = input.Bio
	}
	if input.Status != "" {
		p.Status = input.Status
	}
	if input.GithubUsername != "" {
		p.GithubUsername = input.GithubUsername
	}
	if input.Image != "" {
		p.Image = input.Image
	}
	if input.Skills != "" {
		p.Skills = profile.ParseSkills(input.Skills)
	}
	if input.Youtube != "" {
		p.Social.Youtube = input.Youtube
	}
	if input.Twitter != "" {
		p.Social.Twitter = input.Twitter
	}
	if input.Facebook != "" {
		p.Social.Facebook = input.Facebook
	}
	if input.Linkedin != "" {
		p.Social.Linkedin = input.Linkedin
	}
	if input.Instagram != "" {
		p.Social.Instagram = input.Instagram
	}
}

type ListProfilesOutput struct {
	Profiles []ProfileWithUser
}

type ProfileWithUser struct {
	Profile *profile.Profile
	User    *user.PublicUser
}

// ExecuteListProfiles returns every stored profile joined with the owning
// account's public fields. Read-only; owners without a resolvable account
// still appear, just without the join.
func (uc *ProfileUseCase) ExecuteListProfiles(ctx context.Context) (*ListProfilesOutput, error) {
	profiles, err := uc.profileRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles failed: %w", err)
	}

	ids := make([]uuid.UUID, len(profiles))
	for i, p := range profiles {
		ids[i] = p.OwnerID
	}

	users, err := uc.userRepo.FindPublicByIDs(ctx, ids)
	if err != nil {
		uc.logger.Warn("cannot load public account fields for listing")
		users = nil
	}

	out := make([]ProfileWithUser, len(profiles))
	for i, p := range profiles {
		out[i] = ProfileWithUser{Profile: p}
		if u, ok := users[p.OwnerID]; ok {
			u := u
			out[i].User = &u
		}
	}

	return &ListProfilesOutput{Profiles: out}, nil
}

type GetProfileByUserInput struct {
	UserID uuid.UUID
}

func (uc *ProfileUseCase) ExecuteGetProfileByUser(ctx context.Context, input GetProfileByUserInput) (*GetProfileOutput, error) {
	return uc.ExecuteGetProfile(ctx, GetProfileInput{OwnerID: input.UserID})
}

func (uc *ProfileUseCase) publishEvent(eventType string, ownerID uuid.UUID) {
	if uc.events == nil {
		return
	}
	go func() {
		err := uc.events.PublishProfileEvent(context.Background(), event.ProfileEventPayload{
			EventType: eventType,
			OwnerID:   ownerID,
		})
		if err != nil {
			uc.logger.Warn("publish profile event failed",
				zap.String("event_type", eventType),
				zap.String("owner_id", ownerID.String()),
				zap.Error(err),
			)
		}
	}()
}
