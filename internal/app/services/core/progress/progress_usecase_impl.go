package progress

import (
	"context"
	"time"

	"jondonfit-service/internal/app/contracts"
	"jondonfit-service/internal/app/models"
	"jondonfit-service/internal/pkg/constvars"
	"jondonfit-service/internal/pkg/dto/requests"
	"jondonfit-service/internal/pkg/dto/responses"
	"jondonfit-service/internal/pkg/exceptions"
	"jondonfit-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type progressUsecase struct {
	WeightEntryRepository contracts.WeightEntryRepository
	SessionService        contracts.SessionService
	Log                   *zap.Logger
}

func NewProgressUsecase(
	weightEntryRepository contracts.WeightEntryRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.ProgressUsecase {
	return &progressUsecase{
		WeightEntryRepository: weightEntryRepository,
		SessionService:        sessionService,
		Log:                   logger,
	}
}

func (uc *progressUsecase) CreateWeightEntry(ctx context.Context, request *requests.CreateWeightEntry) (*responses.WeightEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("progressUsecase.CreateWeightEntry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	entryDate := time.Now().Truncate(24 * time.Hour)
	if request.EntryDate != "" {
		entryDate, err = time.Parse("2006-01-02", request.EntryDate)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
	}

	now := time.Now()
	entry := &models.WeightEntry{
		UserID:    session.UserID,
		WeightKg:  request.WeightKg,
		EntryDate: entryDate,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	entry, err = uc.WeightEntryRepository.Insert(ctx, entry)
	if err != nil {
		uc.Log.Error("progressUsecase.CreateWeightEntry failed to insert entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, session.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("progressUsecase.CreateWeightEntry succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)
	return &responses.WeightEntry{
		EntryID:   entry.ID,
		UserID:    entry.UserID,
		WeightKg:  entry.WeightKg,
		EntryDate: entry.EntryDate,
	}, nil
}

func (uc *progressUsecase) ListWeightEntries(ctx context.Context, request *requests.ListWeightEntries) ([]responses.WeightEntry, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("progressUsecase.ListWeightEntries called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, nil, err
	}

	page := request.Page
	if page < 1 {
		page = 1
	}
	pageSize := request.PageSize
	if pageSize < 1 {
		pageSize = constvars.AppDefaultPageSize
	}

	total, err := uc.WeightEntryRepository.CountByUserID(ctx, session.UserID)
	if err != nil {
		return nil, nil, err
	}

	skip := int64(page-1) * int64(pageSize)
	entries, err := uc.WeightEntryRepository.FindByUserID(ctx, session.UserID, skip, int64(pageSize))
	if err != nil {
		return nil, nil, err
	}

	result := make([]responses.WeightEntry, 0, len(entries))
	for _, entry := range entries {
		result = append(result, responses.WeightEntry{
			EntryID:   entry.ID,
			UserID:    entry.UserID,
			WeightKg:  entry.WeightKg,
			EntryDate: entry.EntryDate,
		})
	}
	pagination := utils.BuildPaginationResponse(int(total), page, pageSize, request.BaseURL)
	return result, pagination, nil
}

func (uc *progressUsecase) GetWeighInReminder(ctx context.Context, request *requests.GetWeighInReminder) (*responses.WeighInReminder, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("progressUsecase.GetWeighInReminder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	latest, err := uc.WeightEntryRepository.FindLatestByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	return BuildWeighInReminder(latest, time.Now()), nil
}

// BuildWeighInReminder grades how overdue a weigh-in is. A user with no
// entries at all is treated as mandatory so onboarding prompts fire.
func BuildWeighInReminder(latest *models.WeightEntry, now time.Time) *responses.WeighInReminder {
	if latest == nil {
		return &responses.WeighInReminder{
			Level:              constvars.ReminderLevelMandatory,
			DaysSinceLastEntry: -1,
		}
	}

	days := int(now.Sub(latest.EntryDate).Hours() / 24)
	level := constvars.ReminderLevelNone
	switch {
	case days >= constvars.ReminderThresholdMandatory:
		level = constvars.ReminderLevelMandatory
	case days >= constvars.ReminderThresholdStrong:
		level = constvars.ReminderLevelStrong
	case days >= constvars.ReminderThresholdReminder:
		level = constvars.ReminderLevelReminder
	case days >= constvars.ReminderThresholdGentle:
		level = constvars.ReminderLevelGentle
	}

	entryDate := latest.EntryDate
	return &responses.WeighInReminder{
		Level:              level,
		DaysSinceLastEntry: days,
		LastEntryDate:      &entryDate,
	}
}
