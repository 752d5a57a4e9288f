package magiclinks

import (
	"context"
	"time"

	"jondonfit-service/internal/app/contracts"
	"jondonfit-service/internal/app/models"
	"jondonfit-service/internal/pkg/constvars"
	"jondonfit-service/internal/pkg/exceptions"
	"jondonfit-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type magicLinkUsecase struct {
	MagicLinkRepository contracts.MagicLinkRepository
	Log                 *zap.Logger
}

func NewMagicLinkUsecase(
	magicLinkRepository contracts.MagicLinkRepository,
	logger *zap.Logger,
) contracts.MagicLinkUsecase {
	return &magicLinkUsecase{
		MagicLinkRepository: magicLinkRepository,
		Log:                 logger,
	}
}

func (uc *magicLinkUsecase) Issue(ctx context.Context, email, mode, name string) (*models.MagicLink, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("magicLinkUsecase.Issue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
		zap.String(constvars.LoggingModeKey, mode),
	)

	invalidated, err := uc.MagicLinkRepository.InvalidateAllForEmail(ctx, email)
	if err != nil {
		uc.Log.Error("magicLinkUsecase.Issue failed to invalidate previous links",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if invalidated > 0 {
		uc.Log.Info("magicLinkUsecase.Issue invalidated previous links",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64("invalidated_count", invalidated),
		)
	}

	token, err := utils.GenerateMagicLinkToken()
	if err != nil {
		uc.Log.Error("magicLinkUsecase.Issue failed to generate token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMagicLinkTokenGenerate(err)
	}

	now := time.Now()
	link := &models.MagicLink{
		Email:     email,
		Token:     token,
		Mode:      mode,
		Name:      name,
		ExpiresAt: now.Add(constvars.MagicLinkExpiryTime),
		Used:      false,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	link, err = uc.MagicLinkRepository.Insert(ctx, link)
	if err != nil {
		uc.Log.Error("magicLinkUsecase.Issue failed to persist link",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("magicLinkUsecase.Issue succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)
	return link, nil
}

func (uc *magicLinkUsecase) Redeem(ctx context.Context, token string) (*models.MagicLink, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("magicLinkUsecase.Redeem called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	link, err := uc.MagicLinkRepository.FindAndConsumeByToken(ctx, token)
	if err != nil {
		uc.Log.Error("magicLinkUsecase.Redeem failed to consume link",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if link == nil {
		// Never distinguish unknown, expired, and already-used tokens.
		uc.Log.Info("magicLinkUsecase.Redeem rejected token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrMagicLinkInvalidOrExpired(nil)
	}

	uc.Log.Info("magicLinkUsecase.Redeem succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, link.Email),
		zap.String(constvars.LoggingModeKey, link.Mode),
	)
	return link, nil
}
