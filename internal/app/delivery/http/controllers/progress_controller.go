package controllers

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"jondonfit-service/internal/app/contracts"
	"jondonfit-service/internal/pkg/constvars"
	"jondonfit-service/internal/pkg/dto/requests"
	"jondonfit-service/internal/pkg/exceptions"
	"jondonfit-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ProgressController struct {
	Log             *zap.Logger
	ProgressUsecase contracts.ProgressUsecase
}

var (
	progressControllerInstance *ProgressController
	onceProgressController     sync.Once
)

func NewProgressController(logger *zap.Logger, progressUsecase contracts.ProgressUsecase) *ProgressController {
	onceProgressController.Do(func() {
		progressControllerInstance = &ProgressController{
			Log:             logger,
			ProgressUsecase: progressUsecase,
		}
	})
	return progressControllerInstance
}

func (ctrl *ProgressController) CreateWeightEntry(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ProgressController.CreateWeightEntry requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ProgressController.CreateWeightEntry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	reqPayload := new(requests.CreateWeightEntry)
	if err := json.NewDecoder(r.Body).Decode(&reqPayload); err != nil {
		ctrl.Log.Error("ProgressController.CreateWeightEntry error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(reqPayload); err != nil {
		ctrl.Log.Error("ProgressController.CreateWeightEntry validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}
	reqPayload.SessionData = sessionData

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ProgressUsecase.CreateWeightEntry(ctx, reqPayload)
	if err != nil {
		ctrl.Log.Error("ProgressController.CreateWeightEntry error from usecase",
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

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.WeightEntryCreatedSuccess, result)
}

func (ctrl *ProgressController) ListWeightEntries(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ProgressController.ListWeightEntries requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ProgressController.ListWeightEntries called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	reqPayload := &requests.ListWeightEntries{
		Page:        page,
		PageSize:    pageSize,
		BaseURL:     r.URL.Path,
		SessionData: sessionData,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, pagination, err := ctrl.ProgressUsecase.ListWeightEntries(ctx, reqPayload)
	if err != nil {
		ctrl.Log.Error("ProgressController.ListWeightEntries error from usecase",
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

	utils.BuildSuccessPaginationResponse(w, constvars.StatusOK, constvars.WeightEntryListSuccess, result, pagination)
}

func (ctrl *ProgressController) GetWeighInReminder(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ProgressController.GetWeighInReminder requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ProgressController.GetWeighInReminder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ProgressUsecase.GetWeighInReminder(ctx, &requests.GetWeighInReminder{SessionData: sessionData})
	if err != nil {
		ctrl.Log.Error("ProgressController.GetWeighInReminder error from usecase",
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

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReminderGetSuccess, result)
}
