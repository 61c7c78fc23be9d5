package github

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/huytran/devconnect/internal/application/service"
	"github.com/huytran/devconnect/internal/config"
	"github.com/huytran/devconnect/pkg/apperror"
	"github.com/huytran/devconnect/pkg/logger"
)

const listingPageSize = "5"

type client struct {
	rest         *resty.Client
	clientID     string
	clientSecret string
	logger       logger.Logger
}

// NewClient builds the GitHub listing client. Credentials and the request
// timeout come from injected config, never from ambient state.
func NewClient(cfg config.Config, log logger.Logger) service.RepoLister {
	rest := resty.New().
		SetBaseURL(cfg.GitHub.BaseURL).
		SetTimeout(cfg.GitHub.Timeout).
		SetHeader("User-Agent", "devconnect-api")

	return &client{
		rest:         rest,
		clientID:     cfg.GitHub.ClientID,
		clientSecret: cfg.GitHub.ClientSecret,
		logger:       log,
	}
}

// ListRepos fetches the first page of a user's public repositories, oldest
// first. Every transport failure, timeout or non-200 status collapses into
// a single not-found error so callers never see raw provider detail; a 200
// body is relayed unchanged.
func (c *client) ListRepos(ctx context.Context, username string) (json.RawMessage, error) {
	req := c.rest.R().
		SetContext(ctx).
		SetPathParam("username", username).
		SetQueryParam("per_page", listingPageSize).
		SetQueryParam("sort", "created:asc")

	if c.clientID != "" {
		req.SetQueryParam("client_id", c.clientID)
		req.SetQueryParam("client_secret", c.clientSecret)
	}

	resp, err := req.Get("/users/{username}/repos")
	if err != nil {
		c.logger.Warn("github listing request failed", zap.String("username", username), zap.Error(err))
		return nil, apperror.NewNotFound("github profile", username)
	}

	if resp.StatusCode() != http.StatusOK {
		c.logger.Warn("github listing returned non-success status",
			zap.String("username", username),
			zap.Int("status", resp.StatusCode()),
		)
		return nil, apperror.NewNotFound("github profile", username)
	}

	return json.RawMessage(resp.Body()), nil
}
