package controllers

import (
	"context"
	"net/http"
	"regexp"
	"sync"
	"time"

	"jondonfit-service/internal/app/contracts"
	"jondonfit-service/internal/pkg/constvars"
	"jondonfit-service/internal/pkg/exceptions"
	"jondonfit-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProgramController struct {
	Log            *zap.Logger
	ProgramUsecase contracts.ProgramUsecase
}

var (
	programControllerInstance *ProgramController
	onceProgramController     sync.Once
	programIDPattern          = regexp.MustCompile(constvars.RegexProgramID)
)

func NewProgramController(logger *zap.Logger, programUsecase contracts.ProgramUsecase) *ProgramController {
	onceProgramController.Do(func() {
		programControllerInstance = &ProgramController{
			Log:            logger,
			ProgramUsecase: programUsecase,
		}
	})
	return programControllerInstance
}

func (ctrl *ProgramController) ListPrograms(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ProgramController.ListPrograms requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ProgramController.ListPrograms called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ProgramUsecase.ListPrograms(ctx)
	if err != nil {
		ctrl.Log.Error("ProgramController.ListPrograms error from usecase",
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

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProgramListSuccess, result)
}

func (ctrl *ProgramController) GetProgramByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ProgramController.GetProgramByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ProgramController.GetProgramByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	programID := chi.URLParam(r, "programID")
	if !programIDPattern.MatchString(programID) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, "programID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ProgramUsecase.FindProgramByID(ctx, programID)
	if err != nil {
		ctrl.Log.Error("ProgramController.GetProgramByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProgramIDKey, programID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProgramGetSuccess, result)
}
