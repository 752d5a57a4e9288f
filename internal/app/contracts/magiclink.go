package contracts

import (
	"context"
	"jondonfit-service/internal/app/models"
)

type MagicLinkUsecase interface {
	// Issue invalidates every unused link for the email, then mints and
	// persists a fresh one.
	Issue(ctx context.Context, email, mode, name string) (*models.MagicLink, error)
	// Redeem atomically consumes an unused, unexpired link. A miss is
	// reported as a single invalid-or-expired error: it does not reveal
	// whether the token never existed, expired, or was already used.
	Redeem(ctx context.Context, token string) (*models.MagicLink, error)
}

type MagicLinkRepository interface {
	EnsureIndexes(ctx context.Context) error
	InvalidateAllForEmail(ctx context.Context, email string) (int64, error)
	Insert(ctx context.Context, link *models.MagicLink) (*models.MagicLink, error)
	// FindAndConsumeByToken must be a single conditional update on the
	// store: match token AND used=false AND expiresAt>now, set used=true.
	// Two racing calls for the same token must yield at most one document.
	FindAndConsumeByToken(ctx context.Context, token string) (*models.MagicLink, error)
	FindActiveByEmail(ctx context.Context, email string) (*models.MagicLink, error)
}
