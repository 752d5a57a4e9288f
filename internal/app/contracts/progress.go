package contracts

import (
	"context"
	"jondonfit-service/internal/app/models"
	"jondonfit-service/internal/pkg/dto/requests"
	"jondonfit-service/internal/pkg/dto/responses"
)

type ProgressUsecase interface {
	CreateWeightEntry(ctx context.Context, request *requests.CreateWeightEntry) (*responses.WeightEntry, error)
	ListWeightEntries(ctx context.Context, request *requests.ListWeightEntries) ([]responses.WeightEntry, *responses.Pagination, error)
	GetWeighInReminder(ctx context.Context, request *requests.GetWeighInReminder) (*responses.WeighInReminder, error)
}

type WeightEntryRepository interface {
	EnsureIndexes(ctx context.Context) error
	Insert(ctx context.Context, entry *models.WeightEntry) (*models.WeightEntry, error)
	FindByUserID(ctx context.Context, userID string, skip, limit int64) ([]models.WeightEntry, error)
	CountByUserID(ctx context.Context, userID string) (int64, error)
	FindLatestByUserID(ctx context.Context, userID string) (*models.WeightEntry, error)
}
