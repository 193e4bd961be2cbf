package service

import (
	"context"

	gh "commitkings/internal/adapters/github"
	ratingsdomain "commitkings/internal/services/api/ratings/domain"
)

// Fetcher is the slice of the GitHub client the deck needs
type Fetcher interface {
	UserByLogin(ctx context.Context, login string) (gh.User, error)
	RepoByFullName(ctx context.Context, owner, name string) (gh.Repo, error)
	SearchRepos(ctx context.Context, query string, page, perPage int) (gh.SearchRepoResult, error)
	SearchUsers(ctx context.Context, query string, page, perPage int) (gh.SearchUserResult, error)
}

// RatingsPort is the slice of the ratings service the deck submits through
type RatingsPort interface {
	Submit(ctx context.Context, in ratingsdomain.SubmitInput) (ratingsdomain.Rating, error)
}
