package service

import (
	"context"
	"encoding/json"
)

// RepoLister fetches a user's public repository listing from the external
// provider. Implementations translate any transport failure or non-success
// status into a not-found error; the body is relayed unchanged on success.
type RepoLister interface {
	ListRepos(ctx context.Context, username string) (json.RawMessage, error)
}
