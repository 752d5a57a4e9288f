package videos

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"jondonfit-service/internal/app/config"
	"jondonfit-service/internal/app/contracts"
	"jondonfit-service/internal/app/models"
	"jondonfit-service/internal/pkg/constvars"
	"jondonfit-service/internal/pkg/dto/requests"
	"jondonfit-service/internal/pkg/dto/responses"
	"jondonfit-service/internal/pkg/exceptions"
	"jondonfit-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const presignedURLExpiry = 7 * 24 * time.Hour

type exerciseVideoUsecase struct {
	ExerciseVideoRepository contracts.ExerciseVideoRepository
	MinioStorage            contracts.Storage
	InternalConfig          *config.InternalConfig
	Log                     *zap.Logger

	// cache keeps the whole catalog in memory keyed by lower-cased
	// exercise name. The catalog is small and changes only on upload.
	mu     sync.RWMutex
	cache  map[string]models.ExerciseVideo
	loaded bool
}

func NewExerciseVideoUsecase(
	exerciseVideoRepository contracts.ExerciseVideoRepository,
	minioStorage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ExerciseVideoUsecase {
	return &exerciseVideoUsecase{
		ExerciseVideoRepository: exerciseVideoRepository,
		MinioStorage:            minioStorage,
		InternalConfig:          internalConfig,
		Log:                     logger,
		cache:                   make(map[string]models.ExerciseVideo),
	}
}

func (uc *exerciseVideoUsecase) ListExerciseVideos(ctx context.Context) ([]responses.ExerciseVideo, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("exerciseVideoUsecase.ListExerciseVideos called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	videos, err := uc.loadCache(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.ExerciseVideo, 0, len(videos))
	for _, video := range videos {
		result = append(result, responses.ExerciseVideo{
			ExerciseName: video.ExerciseName,
			VideoURL:     video.VideoURL,
			ThumbnailURL: video.ThumbnailURL,
		})
	}
	return result, nil
}

func (uc *exerciseVideoUsecase) LookupExerciseVideo(ctx context.Context, exerciseName string) (*responses.ExerciseVideo, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("exerciseVideoUsecase.LookupExerciseVideo called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingExerciseKey, exerciseName),
	)

	if _, err := uc.loadCache(ctx); err != nil {
		return nil, err
	}

	key := strings.ToLower(strings.TrimSpace(exerciseName))
	uc.mu.RLock()
	video, found := uc.cache[key]
	uc.mu.RUnlock()

	if !found {
		// Unknown exercises render the placeholder clip instead of a
		// broken player.
		return &responses.ExerciseVideo{
			ExerciseName: exerciseName,
			VideoURL:     uc.InternalConfig.App.PlaceholderVideoURL,
			ThumbnailURL: uc.InternalConfig.App.PlaceholderThumbnailURL,
		}, nil
	}

	return &responses.ExerciseVideo{
		ExerciseName: video.ExerciseName,
		VideoURL:     video.VideoURL,
		ThumbnailURL: video.ThumbnailURL,
	}, nil
}

func (uc *exerciseVideoUsecase) UploadExerciseVideo(ctx context.Context, request *requests.UploadExerciseVideo, file multipart.File, fileHeader *multipart.FileHeader) (*responses.ExerciseVideo, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("exerciseVideoUsecase.UploadExerciseVideo called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingExerciseKey, request.ExerciseName),
	)

	maxSize := uc.InternalConfig.App.ExerciseVideoMaxUploadSizeInMB * 1024 * 1024
	if fileHeader.Size > maxSize {
		return nil, exceptions.ErrExerciseVideoTooLarge(nil)
	}

	exerciseName := strings.ToLower(strings.TrimSpace(request.ExerciseName))
	objectName := utils.GenerateObjectName("exercise", exerciseName, filepath.Ext(fileHeader.Filename))

	objectName, err := uc.MinioStorage.UploadFile(ctx, file, fileHeader, objectName)
	if err != nil {
		uc.Log.Error("exerciseVideoUsecase.UploadExerciseVideo failed to store object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	videoURL, err := uc.MinioStorage.GetObjectUrlWithExpiryTime(ctx, objectName, presignedURLExpiry)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	video := &models.ExerciseVideo{
		ExerciseName: exerciseName,
		VideoURL:     videoURL,
		ThumbnailURL: request.ThumbnailURL,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	err = uc.ExerciseVideoRepository.UpsertByExerciseName(ctx, video)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.cache[exerciseName] = *video
	uc.mu.Unlock()

	uc.Log.Info("exerciseVideoUsecase.UploadExerciseVideo succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingExerciseKey, exerciseName),
	)
	return &responses.ExerciseVideo{
		ExerciseName: video.ExerciseName,
		VideoURL:     video.VideoURL,
		ThumbnailURL: video.ThumbnailURL,
	}, nil
}

func (uc *exerciseVideoUsecase) loadCache(ctx context.Context) ([]models.ExerciseVideo, error) {
	uc.mu.RLock()
	if uc.loaded {
		videos := make([]models.ExerciseVideo, 0, len(uc.cache))
		for _, video := range uc.cache {
			videos = append(videos, video)
		}
		uc.mu.RUnlock()
		return videos, nil
	}
	uc.mu.RUnlock()

	videos, err := uc.ExerciseVideoRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.cache = make(map[string]models.ExerciseVideo, len(videos))
	for _, video := range videos {
		uc.cache[strings.ToLower(video.ExerciseName)] = video
	}
	uc.loaded = true
	uc.mu.Unlock()

	return videos, nil
}
