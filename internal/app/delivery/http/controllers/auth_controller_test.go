package controllers

import (
	"context"
	"testing"

	"jondonfit-service/internal/pkg/dto/requests"
	"jondonfit-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubAuthUsecase struct{}

func (s *stubAuthUsecase) SendMagicLink(ctx context.Context, request *requests.SendMagicLink) error {
	return nil
}

func (s *stubAuthUsecase) VerifyMagicLink(ctx context.Context, request *requests.VerifyMagicLink) (*responses.VerifyMagicLink, error) {
	return nil, nil
}

func (s *stubAuthUsecase) LogoutUser(ctx context.Context, sessionData string) error {
	return nil
}

// Each construction must bind the usecase it was given. Router tests
// build the controller repeatedly with fresh doubles, so a cached
// instance would leak the first test's double into later ones.
func TestNewAuthController(t *testing.T) {
	logger := zap.NewNop()
	firstUsecase := &stubAuthUsecase{}
	secondUsecase := &stubAuthUsecase{}

	first := NewAuthController(logger, firstUsecase)
	second := NewAuthController(logger, secondUsecase)

	assert.NotSame(t, first, second)
	assert.Same(t, firstUsecase, first.AuthUsecase)
	assert.Same(t, secondUsecase, second.AuthUsecase)
}
