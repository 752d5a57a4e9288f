package videos

import (
	"context"
	"testing"

	"jondonfit-service/internal/app/config"
	"jondonfit-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockExerciseVideoRepository struct {
	mock.Mock
}

func (m *MockExerciseVideoRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockExerciseVideoRepository) FindAll(ctx context.Context) ([]models.ExerciseVideo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ExerciseVideo), args.Error(1)
}

func (m *MockExerciseVideoRepository) UpsertByExerciseName(ctx context.Context, video *models.ExerciseVideo) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func placeholderConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			PlaceholderVideoURL:     "https://cdn.test/placeholder.mp4",
			PlaceholderThumbnailURL: "https://cdn.test/placeholder.jpg",
		},
	}
}

func TestExerciseVideoUsecase_LookupExerciseVideo(t *testing.T) {
	ctx := context.Background()

	catalog := []models.ExerciseVideo{
		{ExerciseName: "barbell squat", VideoURL: "https://cdn.test/squat.mp4", ThumbnailURL: "https://cdn.test/squat.jpg"},
		{ExerciseName: "deadlift", VideoURL: "https://cdn.test/deadlift.mp4"},
	}

	t.Run("matches case-insensitively", func(t *testing.T) {
		repo := new(MockExerciseVideoRepository)
		repo.On("FindAll", mock.Anything).Return(catalog, nil).Once()
		uc := NewExerciseVideoUsecase(repo, nil, placeholderConfig(), zap.NewNop())

		video, err := uc.LookupExerciseVideo(ctx, "Barbell Squat")
		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.test/squat.mp4", video.VideoURL)
	})

	t.Run("falls back to the placeholder for unknown exercises", func(t *testing.T) {
		repo := new(MockExerciseVideoRepository)
		repo.On("FindAll", mock.Anything).Return(catalog, nil).Once()
		uc := NewExerciseVideoUsecase(repo, nil, placeholderConfig(), zap.NewNop())

		video, err := uc.LookupExerciseVideo(ctx, "cable crossover")
		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.test/placeholder.mp4", video.VideoURL)
		assert.Equal(t, "https://cdn.test/placeholder.jpg", video.ThumbnailURL)
	})

	t.Run("serves repeated lookups from the cache", func(t *testing.T) {
		repo := new(MockExerciseVideoRepository)
		repo.On("FindAll", mock.Anything).Return(catalog, nil).Once()
		uc := NewExerciseVideoUsecase(repo, nil, placeholderConfig(), zap.NewNop())

		for i := 0; i < 5; i++ {
			_, err := uc.LookupExerciseVideo(ctx, "deadlift")
			assert.NoError(t, err)
		}
		repo.AssertNumberOfCalls(t, "FindAll", 1)
	})
}

func TestExerciseVideoUsecase_ListExerciseVideos(t *testing.T) {
	ctx := context.Background()

	repo := new(MockExerciseVideoRepository)
	repo.On("FindAll", mock.Anything).Return([]models.ExerciseVideo{
		{ExerciseName: "deadlift", VideoURL: "https://cdn.test/deadlift.mp4"},
	}, nil).Once()
	uc := NewExerciseVideoUsecase(repo, nil, placeholderConfig(), zap.NewNop())

	videos, err := uc.ListExerciseVideos(ctx)
	assert.NoError(t, err)
	assert.Len(t, videos, 1)
	assert.Equal(t, "deadlift", videos[0].ExerciseName)
}
