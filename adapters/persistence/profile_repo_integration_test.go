package persistence

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/huytran/devconnect/internal/domain/post"
	"github.com/huytran/devconnect/internal/domain/profile"
	"github.com/huytran/devconnect/internal/domain/user"
	"github.com/huytran/devconnect/pkg/apperror"
	"github.com/huytran/devconnect/pkg/logger"
)

type ProfileRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	profileRepo profile.Repository
	userRepo    user.Repository
	postRepo    post.Repository
}

func (s *ProfileRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	s.dbPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to connect pool: %s", err)
	}

	testLogger := logger.NewZapLogger("development")
	s.profileRepo = NewPostgresProfileRepo(s.dbPool, testLogger)
	s.userRepo = NewPostgresUserRepo(s.dbPool)
	s.postRepo = NewPostgresPostRepo(s.dbPool)
}

func (s *ProfileRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		s.pgContainer.Terminate(context.Background())
	}
}

func TestProfileRepoIntegration(t *testing.T) {
	if os.Getenv("INTEGRATION_TESTS") == "" {
		t.Skip("Skipping integration tests. Set INTEGRATION_TESTS=1 to run.")
	}
	suite.Run(t, new(ProfileRepoIntegrationTestSuite))
}

func (s *ProfileRepoIntegrationTestSuite) seedUser(name string) uuid.UUID {
	id := uuid.New()
	_, err := s.dbPool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, avatar) VALUES ($1, $2, $3, $4)`,
		id, id.String()+"@example.com", name, "https://img/"+name,
	)
	s.Require().NoError(err)
	return id
}

func (s *ProfileRepoIntegrationTestSuite) Test_UpsertAndGetRoundTrip() {
	ctx := context.Background()
	ownerID := s.seedUser("roundtrip")

	to := time.Now().UTC().Truncate(time.Second)
	p := &profile.Profile{
		OwnerID:        ownerID,
		Company:        "Acme",
		Status:         "Developer",
		GithubUsername: "octocat",
		Skills:         []string{"go", "react"},
		Social:         profile.Social{Twitter: "https://twitter.com/acme"},
		UpdatedAt:      time.Now().UTC(),
	}
	p.AddExperience(profile.Experience{
		Title: "Dev", Company: "Acme", From: to.AddDate(-1, 0, 0), To: &to,
	})
	p.AddEducation(profile.Education{
		School: "HUST", Degree: "BSc", FieldOfStudy: "CS", From: to.AddDate(-5, 0, 0), Current: true,
	})

	s.Require().NoError(s.profileRepo.Upsert(ctx, p))

	got, err := s.profileRepo.GetByOwner(ctx, ownerID)
	s.Require().NoError(err)
	s.Equal("Acme", got.Company)
	s.Equal("Developer", got.Status)
	s.Equal([]string{"go", "react"}, got.Skills)
	s.Equal("https://twitter.com/acme", got.Social.Twitter)
	s.Require().Len(got.Experience, 1)
	s.Equal(p.Experience[0].ID, got.Experience[0].ID)
	s.Require().NotNil(got.Experience[0].To)
	s.Require().Len(got.Education, 1)
	s.True(got.Education[0].Current)
}

func (s *ProfileRepoIntegrationTestSuite) Test_GetByOwner_MissingIsNotFound() {
	_, err := s.profileRepo.GetByOwner(context.Background(), uuid.New())
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *ProfileRepoIntegrationTestSuite) Test_UpsertReplacesDocument() {
	ctx := context.Background()
	ownerID := s.seedUser("replace")

	p := &profile.Profile{OwnerID: ownerID, Status: "Dev", Skills: []string{"go"}, UpdatedAt: time.Now().UTC()}
	s.Require().NoError(s.profileRepo.Upsert(ctx, p))

	p.Status = "Senior Dev"
	p.Skills = []string{"go", "rust"}
	s.Require().NoError(s.profileRepo.Upsert(ctx, p))

	got, err := s.profileRepo.GetByOwner(ctx, ownerID)
	s.Require().NoError(err)
	s.Equal("Senior Dev", got.Status)
	s.Equal([]string{"go", "rust"}, got.Skills)
}

func (s *ProfileRepoIntegrationTestSuite) Test_DeleteByOwner() {
	ctx := context.Background()
	ownerID := s.seedUser("delete")

	p := &profile.Profile{OwnerID: ownerID, Status: "Dev", UpdatedAt: time.Now().UTC()}
	s.Require().NoError(s.profileRepo.Upsert(ctx, p))

	s.Require().NoError(s.profileRepo.DeleteByOwner(ctx, ownerID))

	_, err := s.profileRepo.GetByOwner(ctx, ownerID)
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *ProfileRepoIntegrationTestSuite) Test_ListAll_IncludesStoredProfiles() {
	ctx := context.Background()
	ownerID := s.seedUser("listall")

	p := &profile.Profile{OwnerID: ownerID, Status: "Dev", Skills: []string{"go"}, UpdatedAt: time.Now().UTC()}
	s.Require().NoError(s.profileRepo.Upsert(ctx, p))

	profiles, err := s.profileRepo.ListAll(ctx)
	s.Require().NoError(err)

	found := false
	for _, got := range profiles {
		if got.OwnerID == ownerID {
			found = true
			s.Equal("Dev", got.Status)
			s.Equal([]string{"go"}, got.Skills)
		}
	}
	s.True(found, "stored profile missing from listing")
}

// Full delete cascade in the order the use case runs it, for an owner who
// actually has a profile and posts. The account delete must not trip over
// the profile's foreign key.
func (s *ProfileRepoIntegrationTestSuite) Test_DeleteCascade_OwnerWithProfileAndPosts() {
	ctx := context.Background()
	ownerID := s.seedUser("cascade")

	p := &profile.Profile{OwnerID: ownerID, Status: "Dev", Skills: []string{"go"}, UpdatedAt: time.Now().UTC()}
	s.Require().NoError(s.profileRepo.Upsert(ctx, p))

	_, err := s.dbPool.Exec(ctx,
		`INSERT INTO posts (id, owner_id, text) VALUES ($1, $2, $3)`,
		uuid.New(), ownerID, "hello world",
	)
	s.Require().NoError(err)

	s.Require().NoError(s.postRepo.DeleteByOwner(ctx, ownerID))
	s.Require().NoError(s.userRepo.Delete(ctx, ownerID))
	s.Require().NoError(s.profileRepo.DeleteByOwner(ctx, ownerID))

	_, err = s.profileRepo.GetByOwner(ctx, ownerID)
	s.ErrorIs(err, apperror.ErrNotFound)

	_, err = s.userRepo.FindPublicByID(ctx, ownerID)
	s.ErrorIs(err, apperror.ErrNotFound)

	var postCount int
	s.Require().NoError(s.dbPool.QueryRow(ctx,
		`SELECT COUNT(*) FROM posts WHERE owner_id = $1`, ownerID).Scan(&postCount))
	s.Zero(postCount)
}

func (s *ProfileRepoIntegrationTestSuite) Test_UserRepo_PublicProjectionAndDelete() {
	ctx := context.Background()
	ownerID := s.seedUser("public")

	u, err := s.userRepo.FindPublicByID(ctx, ownerID)
	s.Require().NoError(err)
	s.Equal("public", u.Name)
	s.NotEmpty(u.Avatar)

	users, err := s.userRepo.FindPublicByIDs(ctx, []uuid.UUID{ownerID, uuid.New()})
	s.Require().NoError(err)
	s.Len(users, 1)

	s.Require().NoError(s.userRepo.Delete(ctx, ownerID))
	_, err = s.userRepo.FindPublicByID(ctx, ownerID)
	s.ErrorIs(err, apperror.ErrNotFound)
}
