package service

import (
	"context"
	"fmt"
	"time"

	"portfolio/internal/cache"
	"portfolio/internal/integration"
)

const repoCacheTTL = 15 * time.Minute

// RepoLister is implemented by integration.RepoClient.
type RepoLister interface {
	ListRepos(ctx context.Context, username string) ([]integration.Repo, error)
}

// RepoService lists the portfolio owner's public repositories, caching the
// upstream listing to stay inside the API rate limit.
type RepoService interface {
	ListRepos(ctx context.Context) ([]integration.Repo, error)
}

type repoService struct {
	client   RepoLister
	cache    *cache.Client
	username string
}

// NewRepoService creates a new repository-listing service.
func NewRepoService(client RepoLister, cacheClient *cache.Client, username string) RepoService {
	return &repoService{
		client:   client,
		cache:    cacheClient,
		username: username,
	}
}

func (s *repoService) ListRepos(ctx context.Context) ([]integration.Repo, error) {
	key := "repos:" + s.username

	var cached []integration.Repo
	if hit, _ := s.cache.GetJSON(ctx, key, &cached); hit {
		return cached, nil
	}

	repos, err := s.client.ListRepos(ctx, s.username)
	if err != nil {
		return nil, fmt.Errorf("list repos: %w", err)
	}

	_ = s.cache.SetJSON(ctx, key, repos, repoCacheTTL)
	return repos, nil
}
