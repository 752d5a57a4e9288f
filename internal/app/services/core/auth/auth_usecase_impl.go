package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"jondonfit-service/internal/app/contracts"
	"jondonfit-service/internal/app/models"
	"jondonfit-service/internal/pkg/constvars"
	"jondonfit-service/internal/pkg/dto/requests"
	"jondonfit-service/internal/pkg/dto/responses"
	"jondonfit-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type authUsecase struct {
	MagicLinkUsecase contracts.MagicLinkUsecase
	UserRepository   contracts.UserRepository
	SessionService   contracts.SessionService
	MailerService    contracts.MailerService
	Log              *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	magicLinkUsecase contracts.MagicLinkUsecase,
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	mailerService contracts.MailerService,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			MagicLinkUsecase: magicLinkUsecase,
			UserRepository:   userRepository,
			SessionService:   sessionService,
			MailerService:    mailerService,
			Log:              logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) SendMagicLink(ctx context.Context, request *requests.SendMagicLink) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.SendMagicLink called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
		zap.String(constvars.LoggingModeKey, request.Mode),
	)

	if request.Mode == constvars.MagicLinkModeRegister {
		if request.Name == "" {
			return exceptions.ErrInputValidation(errors.New("name is required when mode is register"))
		}

		existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
		if err != nil {
			uc.Log.Error("authUsecase.SendMagicLink failed to check existing user",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return err
		}
		if existingUser != nil {
			// Reject before a token is minted so the failed registration
			// leaves no redeemable link behind.
			uc.Log.Info("authUsecase.SendMagicLink rejected registration for existing account",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEmailKey, request.Email),
			)
			return exceptions.ErrEmailAlreadyRegistered(nil)
		}
	}

	link, err := uc.MagicLinkUsecase.Issue(ctx, request.Email, request.Mode, request.Name)
	if err != nil {
		return err
	}

	// Delivery is synchronous on purpose: the caller must learn when the
	// email could not be sent. The link stays redeemable regardless, so a
	// retried send only supersedes it.
	err = uc.MailerService.SendVerificationEmail(ctx, request.Email, link.Token, link.Mode, link.Name)
	if err != nil {
		uc.Log.Error("authUsecase.SendMagicLink failed to deliver verification email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, request.Email),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.SendMagicLink succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)
	return nil
}

func (uc *authUsecase) VerifyMagicLink(ctx context.Context, request *requests.VerifyMagicLink) (*responses.VerifyMagicLink, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.VerifyMagicLink called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	link, err := uc.MagicLinkUsecase.Redeem(ctx, request.Token)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByEmail(ctx, link.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		now := time.Now()
		user = &models.User{
			Email: link.Email,
			Name:  link.Name,
			TimeModel: models.TimeModel{
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
		userID, err := uc.UserRepository.CreateUser(ctx, user)
		if err != nil {
			uc.Log.Error("authUsecase.VerifyMagicLink failed to provision user",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEmailKey, link.Email),
				zap.Error(err),
			)
			return nil, err
		}
		user.ID = userID
		uc.Log.Info("authUsecase.VerifyMagicLink provisioned new user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
		)
	}

	sessionToken, err := uc.SessionService.CreateSession(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.VerifyMagicLink succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return &responses.VerifyMagicLink{
		Token: sessionToken,
		User: &responses.UserProfile{
			UserID:    user.ID,
			Email:     user.Email,
			Name:      user.Name,
			ProgramID: user.ProgramID,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

func (uc *authUsecase) LogoutUser(ctx context.Context, sessionData string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LogoutUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	err = uc.SessionService.DeleteSession(ctx, session.SessionID)
	if err != nil {
		uc.Log.Error("authUsecase.LogoutUser failed to delete session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.LogoutUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)
	return nil
}
