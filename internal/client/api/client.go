// Package api is the transport layer of the client: a thin gateway over the
// ForCreators HTTP JSON API. It holds no mutable state and normalizes every
// failure into *Error so callers deal with exactly one error shape.
package api

import (
	"context"

	"github.com/forcreators/forcreators-cli/internal/client/models"
)

// Client is the remote API surface consumed by the orchestration layer.
// Implementations must be safe for concurrent unrelated calls.
type Client interface {
	Signup(ctx context.Context, req models.SignupRequest) (string, error)
	Login(ctx context.Context, req models.LoginRequest) (string, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
	GetMediaKit(ctx context.Context, userID string) (*models.MediaKit, error)
	GetProfileTips(ctx context.Context, userID string) (*models.ProfileTips, error)
	SendContact(ctx context.Context, req models.ContactRequest) error
	Close() error
}
