package progress

import (
	"context"
	"fmt"
	"time"

	"jondonfit-service/internal/app/contracts"
	"jondonfit-service/internal/pkg/constvars"
	"jondonfit-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

// WeighInSweeper walks every user on an interval and queues reminder
// email for anyone overdue on their weigh-in. A redis lock keeps
// multiple service replicas from mailing the same user twice.
type WeighInSweeper struct {
	UserRepository        contracts.UserRepository
	WeightEntryRepository contracts.WeightEntryRepository
	MailQueueService      contracts.MailQueueService
	LockerService         contracts.LockerService
	Log                   *zap.Logger
}

func NewWeighInSweeper(
	userRepository contracts.UserRepository,
	weightEntryRepository contracts.WeightEntryRepository,
	mailQueueService contracts.MailQueueService,
	lockerService contracts.LockerService,
	logger *zap.Logger,
) *WeighInSweeper {
	return &WeighInSweeper{
		UserRepository:        userRepository,
		WeightEntryRepository: weightEntryRepository,
		MailQueueService:      mailQueueService,
		LockerService:         lockerService,
		Log:                   logger,
	}
}

// Start runs the sweep on the given interval until the returned stop
// function is called.
func (s *WeighInSweeper) Start(interval time.Duration) func() {
	ctx, cancel := context.WithCancel(context.Background())
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.RunSweep(ctx); err != nil {
					s.Log.Error("WeighInSweeper sweep failed", zap.Error(err))
				}
			}
		}
	}()

	return cancel
}

const (
	sweepLockTTL          = 10 * time.Minute
	sweepLockRefreshEvery = 500
)

func (s *WeighInSweeper) RunSweep(ctx context.Context) error {
	acquired, lockValue, err := s.LockerService.TryLock(ctx, constvars.RedisWeighInSweepLockKey, sweepLockTTL)
	if err != nil {
		return err
	}
	if !acquired {
		s.Log.Info("WeighInSweeper sweep skipped, another replica holds the lock")
		return nil
	}
	defer func() {
		// Release on a fresh context: the sweep context is cancelled on
		// shutdown, and a lock left behind blocks every replica until
		// the TTL runs out.
		unlockCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.LockerService.Unlock(unlockCtx, constvars.RedisWeighInSweepLockKey, lockValue); err != nil {
			s.Log.Error("WeighInSweeper failed to release lock", zap.Error(err))
		}
	}()

	users, err := s.UserRepository.FindAll(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	var queued int
	for i, user := range users {
		// Large user sets can outlive the initial lock TTL.
		if i > 0 && i%sweepLockRefreshEvery == 0 {
			if err := s.LockerService.Refresh(ctx, constvars.RedisWeighInSweepLockKey, lockValue, sweepLockTTL); err != nil {
				s.Log.Error("WeighInSweeper failed to refresh lock", zap.Error(err))
				return err
			}
		}

		latest, err := s.WeightEntryRepository.FindLatestByUserID(ctx, user.ID)
		if err != nil {
			s.Log.Error("WeighInSweeper failed to load latest entry",
				zap.String(constvars.LoggingUserIDKey, user.ID),
				zap.Error(err),
			)
			continue
		}

		reminder := BuildWeighInReminder(latest, now)
		if reminder.Level == constvars.ReminderLevelNone || reminder.DaysSinceLastEntry < 0 {
			continue
		}

		payload := &requests.EmailPayload{
			To:      user.Email,
			Subject: constvars.EmailWeighInReminderSubject,
			Body:    fmt.Sprintf(constvars.EmailBodyWeighInReminder, user.Name, reminder.DaysSinceLastEntry),
		}
		if err := s.MailQueueService.Publish(ctx, payload); err != nil {
			s.Log.Error("WeighInSweeper failed to queue reminder",
				zap.String(constvars.LoggingUserIDKey, user.ID),
				zap.Error(err),
			)
			continue
		}
		queued++
	}

	s.Log.Info("WeighInSweeper sweep completed",
		zap.Int("users_total", len(users)),
		zap.Int("reminders_queued", queued),
	)
	return nil
}
