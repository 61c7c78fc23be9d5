package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	githubUC "github.com/huytran/devconnect/internal/application/usecase/github"
	"github.com/huytran/devconnect/pkg/logger"
)

type GithubHandler struct {
	githubUseCase *githubUC.GithubUseCase
	logger        logger.Logger
}

func NewGithubHandler(uc *githubUC.GithubUseCase, log logger.Logger) *GithubHandler {
	return &GithubHandler{githubUseCase: uc, logger: log}
}

// ListRepos relays the provider's listing body unchanged. Any provider
// failure surfaces as 404.
func (h *GithubHandler) ListRepos(c *gin.Context) {
	output, err := h.githubUseCase.ExecuteListRepos(c.Request.Context(), githubUC.ListReposInput{
		Username: c.Param("username"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.Data(http.StatusOK, "application/json", output.Body)
}
