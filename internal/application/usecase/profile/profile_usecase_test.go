package profile

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huytran/devconnect/adapters/event"
	domain "github.com/huytran/devconnect/internal/domain/profile"
	"github.com/huytran/devconnect/internal/domain/user"
	"github.com/huytran/devconnect/pkg/apperror"
	"github.com/huytran/devconnect/pkg/logger"
)

type fakeProfileRepo struct {
	mu    sync.Mutex
	store map[uuid.UUID]domain.Profile
	calls *[]string
}

func newFakeProfileRepo(calls *[]string) *fakeProfileRepo {
	return &fakeProfileRepo{store: make(map[uuid.UUID]domain.Profile), calls: calls}
}

func cloneProfile(p domain.Profile) domain.Profile {
	p.Skills = append([]string(nil), p.Skills...)
	p.Experience = append([]domain.Experience(nil), p.Experience...)
	p.Education = append([]domain.Education(nil), p.Education...)
	return p
}

func (r *fakeProfileRepo) GetByOwner(_ context.Context, ownerID uuid.UUID) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.store[ownerID]
	if !ok {
		return nil, apperror.NewNotFound("profile", ownerID.String())
	}
	p = cloneProfile(p)
	return &p, nil
}

func (r *fakeProfileRepo) ListAll(_ context.Context) ([]*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Profile, 0, len(r.store))
	for _, p := range r.store {
		p := cloneProfile(p)
		out = append(out, &p)
	}
	return out, nil
}

func (r *fakeProfileRepo) Upsert(_ context.Context, p *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[p.OwnerID] = cloneProfile(*p)
	return nil
}

func (r *fakeProfileRepo) DeleteByOwner(_ context.Context, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.store, ownerID)
	if r.calls != nil {
		*r.calls = append(*r.calls, "profile")
	}
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]user.PublicUser
	calls *[]string
}

func (r *fakeUserRepo) FindPublicByID(_ context.Context, id uuid.UUID) (*user.PublicUser, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperror.NewNotFound("user", id.String())
	}
	return &u, nil
}

func (r *fakeUserRepo) FindPublicByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]user.PublicUser, error) {
	out := make(map[uuid.UUID]user.PublicUser)
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	if r.calls != nil {
		*r.calls = append(*r.calls, "user")
	}
	return nil
}

type fakePostRepo struct {
	calls *[]string
}

func (r *fakePostRepo) DeleteByOwner(_ context.Context, _ uuid.UUID) error {
	if r.calls != nil {
		*r.calls = append(*r.calls, "posts")
	}
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []event.ProfileEventPayload
}

func (p *fakePublisher) PublishProfileEvent(_ context.Context, payload event.ProfileEventPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, payload)
	return nil
}

func newUseCase(t *testing.T) (*ProfileUseCase, *fakeProfileRepo, *fakeUserRepo, *[]string) {
	t.Helper()
	calls := &[]string{}
	profileRepo := newFakeProfileRepo(calls)
	userRepo := &fakeUserRepo{users: make(map[uuid.UUID]user.PublicUser), calls: calls}
	postRepo := &fakePostRepo{calls: calls}
	uc := NewProfileUseCase(profileRepo, userRepo, postRepo, &fakePublisher{}, logger.NewZapLogger("development"))
	return uc, profileRepo, userRepo, calls
}

func TestUpsertProfile_CreatesWithProvidedFieldsOnly(t *testing.T) {
	uc, _, _, _ := newUseCase(t)
	ownerID := uuid.New()

	out, err := uc.ExecuteUpsertProfile(context.Background(), UpsertProfileInput{
		OwnerID: ownerID,
		Status:  "Developer",
		Skills:  "node, react , css",
	})
	require.NoError(t, err)

	p := out.Profile
	assert.Equal(t, ownerID, p.OwnerID)
	assert.Equal(t, "Developer", p.Status)
	assert.Equal(t, []string{"node", "react", "css"}, p.Skills)
	assert.Empty(t, p.Company)
	assert.Empty(t, p.Bio)
	assert.Empty(t, p.Social.Twitter)
	assert.Empty(t, p.Experience)
}

func TestUpsertProfile_MergesPartialUpdates(t *testing.T) {
	uc, _, _, _ := newUseCase(t)
	ownerID := uuid.New()
	ctx := context.Background()

	_, err := uc.ExecuteUpsertProfile(ctx, UpsertProfileInput{
		OwnerID: ownerID,
		Status:  "Developer",
		Skills:  "go",
		Company: "Acme",
		Youtube: "https://youtube.com/acme",
	})
	require.NoError(t, err)

	out, err := uc.ExecuteUpsertProfile(ctx, UpsertProfileInput{
		OwnerID:  ownerID,
		Status:   "Senior Developer",
		Location: "Hanoi",
	})
	require.NoError(t, err)

	p := out.Profile
	assert.Equal(t, "Senior Developer", p.Status)
	assert.Equal(t, "Hanoi", p.Location)
	// omitted fields keep their first-call values
	assert.Equal(t, "Acme", p.Company)
	assert.Equal(t, []string{"go"}, p.Skills)
	assert.Equal(t, "https://youtube.com/acme", p.Social.Youtube)
}

func TestGetProfile_NotFoundWhenAbsent(t *testing.T) {
	uc, _, _, _ := newUseCase(t)

	_, err := uc.ExecuteGetProfile(context.Background(), GetProfileInput{OwnerID: uuid.New()})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestAddExperience_RequiresExistingProfile(t *testing.T) {
	uc, _, _, _ := newUseCase(t)

	_, err := uc.ExecuteAddExperience(context.Background(), AddExperienceInput{
		OwnerID: uuid.New(),
		Title:   "Developer",
		Company: "Acme",
		From:    time.Now(),
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestAddExperience_OrdersNewestFirst(t *testing.T) {
	uc, _, _, _ := newUseCase(t)
	ownerID := uuid.New()
	ctx := context.Background()

	_, err := uc.ExecuteUpsertProfile(ctx, UpsertProfileInput{OwnerID: ownerID, Status: "Dev", Skills: "go"})
	require.NoError(t, err)

	out, err := uc.ExecuteAddExperience(ctx, AddExperienceInput{
		OwnerID: ownerID, Title: "Junior", Company: "Acme", From: time.Now().AddDate(-2, 0, 0),
	})
	require.NoError(t, err)
	require.Len(t, out.Profile.Experience, 1)

	out, err = uc.ExecuteAddExperience(ctx, AddExperienceInput{
		OwnerID: ownerID, Title: "Senior", Company: "Acme", From: time.Now(),
	})
	require.NoError(t, err)
	require.Len(t, out.Profile.Experience, 2)
	assert.Equal(t, "Senior", out.Profile.Experience[0].Title)
	assert.Equal(t, "Junior", out.Profile.Experience[1].Title)
}

func TestAddExperience_ValidationError(t *testing.T) {
	uc, _, _, _ := newUseCase(t)

	_, err := uc.ExecuteAddExperience(context.Background(), AddExperienceInput{
		OwnerID: uuid.New(),
		Title:   "Developer",
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestRemoveExperience_MatchedAndUnmatched(t *testing.T) {
	uc, _, _, _ := newUseCase(t)
	ownerID := uuid.New()
	ctx := context.Background()

	_, err := uc.ExecuteUpsertProfile(ctx, UpsertProfileInput{OwnerID: ownerID, Status: "Dev", Skills: "go"})
	require.NoError(t, err)

	for _, title := range []string{"A", "B", "C"} {
		_, err = uc.ExecuteAddExperience(ctx, AddExperienceInput{OwnerID: ownerID, Title: title, Company: "X", From: time.Now()})
		require.NoError(t, err)
	}

	out, err := uc.ExecuteGetProfile(ctx, GetProfileInput{OwnerID: ownerID})
	require.NoError(t, err)
	middle := out.Profile.Experience[1]

	removed, err := uc.ExecuteRemoveExperience(ctx, RemoveExperienceInput{OwnerID: ownerID, EntryID: middle.ID})
	require.NoError(t, err)
	require.Len(t, removed.Profile.Experience, 2)
	assert.Equal(t, "C", removed.Profile.Experience[0].Title)
	assert.Equal(t, "A", removed.Profile.Experience[1].Title)

	// unmatched id: silent no-op, list unchanged
	unchanged, err := uc.ExecuteRemoveExperience(ctx, RemoveExperienceInput{OwnerID: ownerID, EntryID: uuid.New()})
	require.NoError(t, err)
	assert.Len(t, unchanged.Profile.Experience, 2)
}

func TestAddEducation_RequiresExistingProfile(t *testing.T) {
	uc, _, _, _ := newUseCase(t)

	_, err := uc.ExecuteAddEducation(context.Background(), AddEducationInput{
		OwnerID: uuid.New(),
		School:  "MIT", Degree: "BSc", FieldOfStudy: "CS", From: time.Now(),
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDeleteProfile_CascadeOrderAndRemoval(t *testing.T) {
	uc, _, userRepo, calls := newUseCase(t)
	ownerID := uuid.New()
	ctx := context.Background()
	userRepo.users[ownerID] = user.PublicUser{ID: ownerID, Name: "Huy"}

	_, err := uc.ExecuteUpsertProfile(ctx, UpsertProfileInput{OwnerID: ownerID, Status: "Dev", Skills: "go"})
	require.NoError(t, err)

	err = uc.ExecuteDeleteProfile(ctx, DeleteProfileInput{OwnerID: ownerID})
	require.NoError(t, err)

	assert.Equal(t, []string{"posts", "user", "profile"}, *calls)

	_, err = uc.ExecuteGetProfile(ctx, GetProfileInput{OwnerID: ownerID})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestListProfiles_JoinsPublicAccountFields(t *testing.T) {
	uc, _, userRepo, _ := newUseCase(t)
	ctx := context.Background()

	withUser := uuid.New()
	withoutUser := uuid.New()
	userRepo.users[withUser] = user.PublicUser{ID: withUser, Name: "Huy", Avatar: "https://img/huy"}

	for _, id := range []uuid.UUID{withUser, withoutUser} {
		_, err := uc.ExecuteUpsertProfile(ctx, UpsertProfileInput{OwnerID: id, Status: "Dev", Skills: "go"})
		require.NoError(t, err)
	}

	out, err := uc.ExecuteListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, out.Profiles, 2)

	byOwner := make(map[uuid.UUID]ProfileWithUser)
	for _, pw := range out.Profiles {
		byOwner[pw.Profile.OwnerID] = pw
	}
	require.NotNil(t, byOwner[withUser].User)
	assert.Equal(t, "Huy", byOwner[withUser].User.Name)
	assert.Nil(t, byOwner[withoutUser].User)
}
