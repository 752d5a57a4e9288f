package contracts

import (
	"context"
	"jondonfit-service/internal/app/models"
	"jondonfit-service/internal/pkg/dto/responses"
)

type ProgramUsecase interface {
	ListPrograms(ctx context.Context) ([]responses.ProgramSummary, error)
	FindProgramByID(ctx context.Context, programID string) (*responses.Program, error)
}

type ProgramRepository interface {
	EnsureIndexes(ctx context.Context) error
	FindAll(ctx context.Context) ([]models.Program, error)
	FindByProgramID(ctx context.Context, programID string) (*models.Program, error)
	UpsertByProgramID(ctx context.Context, program *models.Program) error
}
