package contracts

import (
	"context"
	"jondonfit-service/internal/app/models"
)

type SessionService interface {
	// CreateSession stores a session in redis and returns the signed JWT
	// that wraps the session ID.
	CreateSession(ctx context.Context, user *models.User) (string, error)
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
	GetSessionData(ctx context.Context, sessionID string) (string, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
