package progress

import (
	"context"
	"testing"
	"time"

	"jondonfit-service/internal/app/models"
	"jondonfit-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	args := m.Called(ctx, userModel)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, userModel *models.User) error {
	args := m.Called(ctx, userModel)
	return args.Error(0)
}

type MockWeightEntryRepository struct {
	mock.Mock
}

func (m *MockWeightEntryRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWeightEntryRepository) Insert(ctx context.Context, entry *models.WeightEntry) (*models.WeightEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WeightEntry), args.Error(1)
}

func (m *MockWeightEntryRepository) FindByUserID(ctx context.Context, userID string, skip, limit int64) ([]models.WeightEntry, error) {
	args := m.Called(ctx, userID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WeightEntry), args.Error(1)
}

func (m *MockWeightEntryRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWeightEntryRepository) FindLatestByUserID(ctx context.Context, userID string) (*models.WeightEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WeightEntry), args.Error(1)
}

type MockMailQueueService struct {
	mock.Mock
}

func (m *MockMailQueueService) Publish(ctx context.Context, request *requests.EmailPayload) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

func (m *MockLockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	args := m.Called(ctx, key, lockValue, expiration)
	return args.Error(0)
}

func TestWeighInSweeper_RunSweep(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("queues reminders only for overdue users", func(t *testing.T) {
		users := new(MockUserRepository)
		entries := new(MockWeightEntryRepository)
		queue := new(MockMailQueueService)
		locker := new(MockLockerService)

		locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lv", nil)
		locker.On("Unlock", mock.Anything, mock.Anything, "lv").Return(nil)

		users.On("FindAll", mock.Anything).Return([]models.User{
			{ID: "fresh", Email: "fresh@example.com", Name: "Fresh"},
			{ID: "overdue", Email: "overdue@example.com", Name: "Overdue"},
		}, nil)

		entries.On("FindLatestByUserID", mock.Anything, "fresh").
			Return(&models.WeightEntry{UserID: "fresh", EntryDate: now.AddDate(0, 0, -1)}, nil)
		entries.On("FindLatestByUserID", mock.Anything, "overdue").
			Return(&models.WeightEntry{UserID: "overdue", EntryDate: now.AddDate(0, 0, -8)}, nil)

		queue.On("Publish", mock.Anything, mock.MatchedBy(func(p *requests.EmailPayload) bool {
			return p.To == "overdue@example.com"
		})).Return(nil).Once()

		sweeper := NewWeighInSweeper(users, entries, queue, locker, zap.NewNop())
		err := sweeper.RunSweep(ctx)

		assert.NoError(t, err)
		queue.AssertExpectations(t)
		locker.AssertExpectations(t)
	})

	t.Run("skips the sweep when another replica holds the lock", func(t *testing.T) {
		users := new(MockUserRepository)
		queue := new(MockMailQueueService)
		locker := new(MockLockerService)

		locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(false, "", nil)

		sweeper := NewWeighInSweeper(users, new(MockWeightEntryRepository), queue, locker, zap.NewNop())
		err := sweeper.RunSweep(ctx)

		assert.NoError(t, err)
		users.AssertNotCalled(t, "FindAll", mock.Anything)
		queue.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("releases the lock even when the sweep context is cancelled", func(t *testing.T) {
		users := new(MockUserRepository)
		entries := new(MockWeightEntryRepository)
		queue := new(MockMailQueueService)
		locker := new(MockLockerService)

		cancelledCtx, cancel := context.WithCancel(context.Background())

		locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lv", nil)
		locker.On("Unlock", mock.MatchedBy(func(ctx context.Context) bool {
			return ctx.Err() == nil
		}), mock.Anything, "lv").Return(nil).Once()
		users.On("FindAll", mock.Anything).Run(func(args mock.Arguments) {
			cancel()
		}).Return(nil, context.Canceled)

		sweeper := NewWeighInSweeper(users, entries, queue, locker, zap.NewNop())
		err := sweeper.RunSweep(cancelledCtx)

		assert.Error(t, err)
		locker.AssertExpectations(t)
	})

	t.Run("does not mail users who never weighed in", func(t *testing.T) {
		users := new(MockUserRepository)
		entries := new(MockWeightEntryRepository)
		queue := new(MockMailQueueService)
		locker := new(MockLockerService)

		locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lv", nil)
		locker.On("Unlock", mock.Anything, mock.Anything, "lv").Return(nil)

		users.On("FindAll", mock.Anything).Return([]models.User{
			{ID: "new", Email: "new@example.com", Name: "New"},
		}, nil)
		entries.On("FindLatestByUserID", mock.Anything, "new").Return(nil, nil)

		sweeper := NewWeighInSweeper(users, entries, queue, locker, zap.NewNop())
		err := sweeper.RunSweep(ctx)

		assert.NoError(t, err)
		queue.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}
