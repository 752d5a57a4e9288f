package session

import (
	"context"
	"time"

	"jondonfit-service/internal/app/config"
	"jondonfit-service/internal/app/contracts"
	"jondonfit-service/internal/app/models"
	"jondonfit-service/internal/pkg/exceptions"
	"jondonfit-service/internal/pkg/utils"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewSessionService(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}

func (svc *sessionService) CreateSession(ctx context.Context, user *models.User) (string, error) {
	sessionID := utils.GenerateSessionID()
	expiry := time.Duration(svc.InternalConfig.App.SessionExpiredTimeInHours) * time.Hour

	session := &models.Session{
		SessionID: sessionID,
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: time.Now().Add(expiry),
	}

	err := svc.RedisRepository.Set(ctx, sessionID, session, expiry)
	if err != nil {
		return "", err
	}

	tokenString, err := utils.GenerateSessionJWT(sessionID, svc.InternalConfig.JWT.Secret, svc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return tokenString, nil
}

func (svc *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	err := json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (svc *sessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if sessionData == "" {
		return "", exceptions.ErrInvalidSession(nil)
	}
	return sessionData, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, sessionID)
}
