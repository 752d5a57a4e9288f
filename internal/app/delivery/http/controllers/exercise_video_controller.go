package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"jondonfit-service/internal/app/config"
	"jondonfit-service/internal/app/contracts"
	"jondonfit-service/internal/pkg/constvars"
	"jondonfit-service/internal/pkg/dto/requests"
	"jondonfit-service/internal/pkg/exceptions"
	"jondonfit-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ExerciseVideoController struct {
	Log                  *zap.Logger
	ExerciseVideoUsecase contracts.ExerciseVideoUsecase
	InternalConfig       *config.InternalConfig
}

var (
	exerciseVideoControllerInstance *ExerciseVideoController
	onceExerciseVideoController     sync.Once
)

func NewExerciseVideoController(logger *zap.Logger, exerciseVideoUsecase contracts.ExerciseVideoUsecase, internalConfig *config.InternalConfig) *ExerciseVideoController {
	onceExerciseVideoController.Do(func() {
		exerciseVideoControllerInstance = &ExerciseVideoController{
			Log:                  logger,
			ExerciseVideoUsecase: exerciseVideoUsecase,
			InternalConfig:       internalConfig,
		}
	})
	return exerciseVideoControllerInstance
}

func (ctrl *ExerciseVideoController) ListExerciseVideos(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ExerciseVideoController.ListExerciseVideos requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ExerciseVideoController.ListExerciseVideos called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	// An optional exercise query narrows the response to one lookup.
	if exerciseName := r.URL.Query().Get("exercise"); exerciseName != "" {
		result, err := ctrl.ExerciseVideoUsecase.LookupExerciseVideo(ctx, exerciseName)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ExerciseVideoListSuccess, result)
		return
	}

	result, err := ctrl.ExerciseVideoUsecase.ListExerciseVideos(ctx)
	if err != nil {
		ctrl.Log.Error("ExerciseVideoController.ListExerciseVideos error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ExerciseVideoListSuccess, result)
}

func (ctrl *ExerciseVideoController) UploadExerciseVideo(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ExerciseVideoController.UploadExerciseVideo requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ExerciseVideoController.UploadExerciseVideo called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	maxMemory := ctrl.InternalConfig.App.ExerciseVideoMaxUploadSizeInMB * 1024 * 1024
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		ctrl.Log.Error("ExerciseVideoController.UploadExerciseVideo error parsing multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	reqPayload := &requests.UploadExerciseVideo{
		ExerciseName: r.FormValue("exercise_name"),
		ThumbnailURL: r.FormValue("thumbnail_url"),
	}
	utils.SanitizeUploadExerciseVideoRequest(reqPayload)

	if err := utils.ValidateStruct(reqPayload); err != nil {
		ctrl.Log.Error("ExerciseVideoController.UploadExerciseVideo validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	file, fileHeader, err := r.FormFile("video")
	if err != nil {
		ctrl.Log.Error("ExerciseVideoController.UploadExerciseVideo error reading video file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}
	reqPayload.SessionData = sessionData

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	result, err := ctrl.ExerciseVideoUsecase.UploadExerciseVideo(ctx, reqPayload, file, fileHeader)
	if err != nil {
		ctrl.Log.Error("ExerciseVideoController.UploadExerciseVideo error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ExerciseVideoUploadSuccess, result)
}
