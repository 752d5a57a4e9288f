package contracts

import (
	"context"
	"jondonfit-service/internal/app/models"
	"jondonfit-service/internal/pkg/dto/requests"
	"jondonfit-service/internal/pkg/dto/responses"
	"mime/multipart"
)

type ExerciseVideoUsecase interface {
	ListExerciseVideos(ctx context.Context) ([]responses.ExerciseVideo, error)
	// LookupExerciseVideo is case-insensitive and falls back to the
	// configured placeholder assets when the exercise has no video yet.
	LookupExerciseVideo(ctx context.Context, exerciseName string) (*responses.ExerciseVideo, error)
	UploadExerciseVideo(ctx context.Context, request *requests.UploadExerciseVideo, file multipart.File, fileHeader *multipart.FileHeader) (*responses.ExerciseVideo, error)
}

type ExerciseVideoRepository interface {
	EnsureIndexes(ctx context.Context) error
	FindAll(ctx context.Context) ([]models.ExerciseVideo, error)
	UpsertByExerciseName(ctx context.Context, video *models.ExerciseVideo) error
}
