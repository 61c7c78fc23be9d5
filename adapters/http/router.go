package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huytran/devconnect/pkg/logger"
)

type RouterDeps struct {
	ProfileHandler *ProfileHandler
	GithubHandler  *GithubHandler
	MediaHandler   *MediaHandler
	AuthMiddleware gin.HandlerFunc
	Logger         logger.Logger
}

// NewRouter builds the full route table. Mutations sit behind the auth
// middleware; directory reads and the github listing stay public.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ErrorMiddleware(deps.Logger))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "UP"})
		})

		profiles := api.Group("/profile")
		{
			profiles.GET("", deps.ProfileHandler.ListProfiles)
			profiles.GET("/user/:user_id", deps.ProfileHandler.GetProfileByUser)
			profiles.GET("/github/:username", deps.GithubHandler.ListRepos)

			private := profiles.Group("")
			private.Use(deps.AuthMiddleware)
			{
				private.GET("/me", deps.ProfileHandler.GetMyProfile)
				private.POST("", deps.ProfileHandler.UpsertProfile)
				private.DELETE("", deps.ProfileHandler.DeleteProfile)

				private.PUT("/experience", deps.ProfileHandler.AddExperience)
				private.DELETE("/experience/:exp_id", deps.ProfileHandler.RemoveExperience)
				private.PUT("/education", deps.ProfileHandler.AddEducation)
				private.DELETE("/education/:edu_id", deps.ProfileHandler.RemoveEducation)
			}
		}

		if deps.MediaHandler != nil {
			upload := api.Group("/upload")
			upload.Use(deps.AuthMiddleware)
			upload.POST("", deps.MediaHandler.UploadImage)
		}
	}

	return router
}
