package github

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/huytran/devconnect/internal/application/service"
	"github.com/huytran/devconnect/pkg/logger"
)

// Successful listings are cached briefly to stay under GitHub's
// unauthenticated rate limits. Failures are never cached.
const repoCacheTTL = 10 * time.Minute

type GithubUseCase struct {
	lister service.RepoLister
	cache  *redis.Client
	logger logger.Logger
}

// NewGithubUseCase wires the listing proxy. cache may be nil, which
// disables caching entirely.
func NewGithubUseCase(lister service.RepoLister, cache *redis.Client, log logger.Logger) *GithubUseCase {
	return &GithubUseCase{lister: lister, cache: cache, logger: log}
}

type ListReposInput struct {
	Username string
}

type ListReposOutput struct {
	Body json.RawMessage
}

func (uc *GithubUseCase) ExecuteListRepos(ctx context.Context, input ListReposInput) (*ListReposOutput, error) {
	key := "github:repos:" + input.Username

	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, key).Bytes()
		if err == nil {
			return &ListReposOutput{Body: cached}, nil
		}
		if err != redis.Nil {
			uc.logger.Warn("github listing cache read failed", zap.String("username", input.Username), zap.Error(err))
		}
	}

	body, err := uc.lister.ListRepos(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, []byte(body), repoCacheTTL).Err(); err != nil {
			uc.logger.Warn("github listing cache write failed", zap.String("username", input.Username), zap.Error(err))
		}
	}

	return &ListReposOutput{Body: body}, nil
}
