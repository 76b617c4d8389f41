package service

import (
	"context"
	"fmt"
	"strings"

	"gradebench-backend/internal/config"
	apperrors "gradebench-backend/internal/errors"
	"gradebench-backend/internal/logger"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// GitHubIdentity is the subset of a Git platform account the backend keeps
type GitHubIdentity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
}

// GitHubService verifies Git platform usernames before they are linked to
// students.
type GitHubService struct {
	client *github.Client
	log    *logger.Logger
}

// NewGitHubService creates a GitHub service from configuration. It returns
// nil when no token is configured; callers treat a nil service as "linking
// without verification".
func NewGitHubService(cfg *config.Config) (*GitHubService, error) {
	if cfg.GitHubToken == "" {
		return nil, nil
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.GitHubToken})
	httpClient := oauth2.NewClient(context.Background(), ts)
	client := github.NewClient(httpClient)

	if cfg.GitHubBaseURL != "" {
		baseURL := strings.TrimSuffix(cfg.GitHubBaseURL, "/") + "/"
		var err error
		client, err = client.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid github base url: %w", err)
		}
	}

	return &GitHubService{
		client: client,
		log:    logger.New().WithField("component", "github"),
	}, nil
}

// LookupUser resolves a username to its account record
func (s *GitHubService) LookupUser(ctx context.Context, username string) (*GitHubIdentity, error) {
	user, resp, err := s.client.Users.Get(ctx, username)
	if err != nil {
		if resp != nil && resp.StatusCode == 404 {
			return nil, apperrors.NewNotFoundError("github user")
		}
		return nil, fmt.Errorf("github lookup: %w", err)
	}
	return &GitHubIdentity{
		ID:       user.GetID(),
		Username: user.GetLogin(),
		Name:     user.GetName(),
		Email:    user.GetEmail(),
	}, nil
}
