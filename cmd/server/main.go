package main

import (
	"log"

	"github.com/huytran/devconnect/adapters/event"
	"github.com/huytran/devconnect/adapters/github"
	httpAdapter "github.com/huytran/devconnect/adapters/http"
	"github.com/huytran/devconnect/adapters/media_storage"
	"github.com/huytran/devconnect/adapters/persistence"
	githubUC "github.com/huytran/devconnect/internal/application/usecase/github"
	mediaUC "github.com/huytran/devconnect/internal/application/usecase/media"
	profileUC "github.com/huytran/devconnect/internal/application/usecase/profile"
	"github.com/huytran/devconnect/internal/config"
	"github.com/huytran/devconnect/pkg/auth"
	"github.com/huytran/devconnect/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting devconnect API server...")

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	postRepo := persistence.NewPostgresPostRepo(dbPool)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("failed to initialize uploader", err)
	}
	repoLister := github.NewClient(cfg, appLogger)

	// Use Cases
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, userRepo, postRepo, kafkaClient, appLogger)
	githubUseCase := githubUC.NewGithubUseCase(repoLister, redisClient, appLogger)
	uploadImageUseCase := mediaUC.NewUploadImageUseCase(uploader)

	// HTTP
	router := httpAdapter.NewRouter(httpAdapter.RouterDeps{
		ProfileHandler: httpAdapter.NewProfileHandler(profileUseCase, appLogger),
		GithubHandler:  httpAdapter.NewGithubHandler(githubUseCase, appLogger),
		MediaHandler:   httpAdapter.NewMediaHandler(uploadImageUseCase, appLogger),
		AuthMiddleware: httpAdapter.AuthMiddleware(jwtSvc),
		Logger:         appLogger,
	})

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
