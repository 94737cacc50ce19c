package provider

import (
	"context"

	"cd-console-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/provider_mocks.go -package=mocks

// RegisterHookInput carries everything needed to register a remote webhook
// on a hosted repository.
type RegisterHookInput struct {
	Owner    string
	Repo     string
	Token    string
	Secret   string
	AppID    string
	Provider models.Provider
}

// DeregisterHookInput carries everything needed to remove the remote webhook
// previously registered for an application.
type DeregisterHookInput struct {
	Owner    string
	RepoName string
	Token    string
	AppID    string
	Provider models.Provider
}

// WebhookClientInterface is the contract the lifecycle service uses to drive
// the hosting platform. Provider errors are surfaced unchanged.
type WebhookClientInterface interface {
	RegisterHook(ctx context.Context, in RegisterHookInput) error
	DeregisterHook(ctx context.Context, in DeregisterHookInput) error
}
