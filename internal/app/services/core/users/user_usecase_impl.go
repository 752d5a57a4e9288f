package users

import (
	"context"
	"time"

	"jondonfit-service/internal/app/contracts"
	"jondonfit-service/internal/pkg/constvars"
	"jondonfit-service/internal/pkg/dto/requests"
	"jondonfit-service/internal/pkg/dto/responses"
	"jondonfit-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository    contracts.UserRepository
	ProgramRepository contracts.ProgramRepository
	SessionService    contracts.SessionService
	Log               *zap.Logger
}

func NewUserUsecase(
	userRepository contracts.UserRepository,
	programRepository contracts.ProgramRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.UserUsecase {
	return &userUsecase{
		UserRepository:    userRepository,
		ProgramRepository: programRepository,
		SessionService:    sessionService,
		Log:               logger,
	}
}

func (uc *userUsecase) GetUserProfileBySession(ctx context.Context, sessionData string) (*responses.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.GetUserProfileBySession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	return &responses.UserProfile{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		ProgramID: user.ProgramID,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (uc *userUsecase) UpdateUserProfileBySession(ctx context.Context, request *requests.UpdateProfile) (*responses.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UpdateUserProfileBySession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	if request.Name != "" {
		user.Name = request.Name
	}
	if request.ProgramID != "" {
		// Enrolling only in programs that exist in the catalog.
		program, err := uc.ProgramRepository.FindByProgramID(ctx, request.ProgramID)
		if err != nil {
			return nil, err
		}
		if program == nil {
			return nil, exceptions.ErrProgramNotFound(nil)
		}
		user.ProgramID = request.ProgramID
	}
	user.UpdatedAt = time.Now()

	err = uc.UserRepository.UpdateUser(ctx, user)
	if err != nil {
		uc.Log.Error("userUsecase.UpdateUserProfileBySession failed to update user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.ID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("userUsecase.UpdateUserProfileBySession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return &responses.UserProfile{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		ProgramID: user.ProgramID,
		CreatedAt: user.CreatedAt,
	}, nil
}
