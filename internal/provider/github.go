package provider

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"cd-console-backend/internal/logger"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// GitHubWebhookClient registers and removes repository webhooks through the
// GitHub API using the caller's provider token.
type GitHubWebhookClient struct {
	// BaseURL is the public address webhook deliveries are sent to; the
	// application id is appended as the final path segment and doubles as
	// the correlation key on deregistration.
	baseURL string
	log     *logger.Logger
}

// NewGitHubWebhookClient creates a new GitHub webhook client
func NewGitHubWebhookClient(baseURL string) *GitHubWebhookClient {
	return &GitHubWebhookClient{
		baseURL: baseURL,
		log:     logger.New().WithField("component", "github-webhook"),
	}
}

// newClient builds a token-authenticated GitHub API client
func (c *GitHubWebhookClient) newClient(ctx context.Context, token string) *github.Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	return github.NewClient(tc)
}

// hookURL builds the delivery URL for one application
func (c *GitHubWebhookClient) hookURL(appID string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse webhook base URL: %w", err)
	}
	u.Path = path.Join(u.Path, "webhook", appID)
	return u.String(), nil
}

// RegisterHook creates a webhook on the remote repository. This is the
// gating side effect of application creation: if it fails, no application
// record may be persisted.
func (c *GitHubWebhookClient) RegisterHook(ctx context.Context, in RegisterHookInput) error {
	deliveryURL, err := c.hookURL(in.AppID)
	if err != nil {
		return err
	}

	hook := &github.Hook{
		Name:   github.String("web"),
		Active: github.Bool(true),
		Events: []string{"push", "pull_request"},
		Config: map[string]interface{}{
			"url":          deliveryURL,
			"secret":       in.Secret,
			"content_type": "json",
		},
	}

	client := c.newClient(ctx, in.Token)
	created, _, err := client.Repositories.CreateHook(ctx, in.Owner, in.Repo, hook)
	if err != nil {
		return fmt.Errorf("create hook for %s/%s: %w", in.Owner, in.Repo, err)
	}

	c.log.WithFields(map[string]interface{}{
		"owner":   in.Owner,
		"repo":    in.Repo,
		"hook_id": created.GetID(),
		"app_id":  in.AppID,
	}).Debug("registered repository webhook")

	return nil
}

// DeregisterHook removes the webhook registered for an application. The hook
// is correlated by the application id carried in its delivery URL; an
// already-missing hook is a no-op, since local state is authoritative by the
// time this runs.
func (c *GitHubWebhookClient) DeregisterHook(ctx context.Context, in DeregisterHookInput) error {
	client := c.newClient(ctx, in.Token)

	hooks, _, err := client.Repositories.ListHooks(ctx, in.Owner, in.RepoName, &github.ListOptions{PerPage: 100})
	if err != nil {
		return fmt.Errorf("list hooks for %s/%s: %w", in.Owner, in.RepoName, err)
	}

	for _, hook := range hooks {
		hookURL, _ := hook.Config["url"].(string)
		if hookURL == "" || !strings.HasSuffix(hookURL, "/webhook/"+in.AppID) {
			continue
		}
		if _, err := client.Repositories.DeleteHook(ctx, in.Owner, in.RepoName, hook.GetID()); err != nil {
			return fmt.Errorf("delete hook %d for %s/%s: %w", hook.GetID(), in.Owner, in.RepoName, err)
		}
		c.log.WithFields(map[string]interface{}{
			"owner":   in.Owner,
			"repo":    in.RepoName,
			"hook_id": hook.GetID(),
			"app_id":  in.AppID,
		}).Debug("removed repository webhook")
		return nil
	}

	c.log.WithFields(map[string]interface{}{
		"owner":  in.Owner,
		"repo":   in.RepoName,
		"app_id": in.AppID,
	}).Warn("no webhook found for application, nothing to remove")
	return nil
}
