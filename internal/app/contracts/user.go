package contracts

import (
	"context"
	"jondonfit-service/internal/app/models"
	"jondonfit-service/internal/pkg/dto/requests"
	"jondonfit-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	GetUserProfileBySession(ctx context.Context, sessionData string) (*responses.UserProfile, error)
	UpdateUserProfileBySession(ctx context.Context, request *requests.UpdateProfile) (*responses.UserProfile, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, userModel *models.User) error
}
