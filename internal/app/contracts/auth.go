package contracts

import (
	"context"
	"jondonfit-service/internal/pkg/dto/requests"
	"jondonfit-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	SendMagicLink(ctx context.Context, request *requests.SendMagicLink) error
	VerifyMagicLink(ctx context.Context, request *requests.VerifyMagicLink) (*responses.VerifyMagicLink, error)
	LogoutUser(ctx context.Context, sessionData string) error
}
