package magiclinks

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"jondonfit-service/internal/app/models"
	"jondonfit-service/internal/pkg/constvars"
	"jondonfit-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockMagicLinkRepository struct {
	mock.Mock
}

func (m *MockMagicLinkRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMagicLinkRepository) InvalidateAllForEmail(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMagicLinkRepository) Insert(ctx context.Context, link *models.MagicLink) (*models.MagicLink, error) {
	args := m.Called(ctx, link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MagicLink), args.Error(1)
}

func (m *MockMagicLinkRepository) FindAndConsumeByToken(ctx context.Context, token string) (*models.MagicLink, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MagicLink), args.Error(1)
}

func (m *MockMagicLinkRepository) FindActiveByEmail(ctx context.Context, email string) (*models.MagicLink, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MagicLink), args.Error(1)
}

// memoryMagicLinkRepository mimics the conditional-update semantics of the
// mongo repository so redemption races can be exercised in-process.
type memoryMagicLinkRepository struct {
	mu    sync.Mutex
	links []*models.MagicLink
}

func (r *memoryMagicLinkRepository) EnsureIndexes(ctx context.Context) error { return nil }

func (r *memoryMagicLinkRepository) InvalidateAllForEmail(ctx context.Context, email string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, link := range r.links {
		if link.Email == email && !link.Used {
			link.Used = true
			n++
		}
	}
	return n, nil
}

func (r *memoryMagicLinkRepository) Insert(ctx context.Context, link *models.MagicLink) (*models.MagicLink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.links = append(r.links, link)
	return link, nil
}

func (r *memoryMagicLinkRepository) FindAndConsumeByToken(ctx context.Context, token string) (*models.MagicLink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for _, link := range r.links {
		if link.Token == token && !link.Used && link.ExpiresAt.After(now) {
			link.Used = true
			copied := *link
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memoryMagicLinkRepository) FindActiveByEmail(ctx context.Context, email string) (*models.MagicLink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for _, link := range r.links {
		if link.Email == email && !link.Used && link.ExpiresAt.After(now) {
			copied := *link
			return &copied, nil
		}
	}
	return nil, nil
}

func TestMagicLinkUsecase_Issue(t *testing.T) {
	ctx := context.Background()
	tokenPattern := regexp.MustCompile(constvars.RegexMagicLinkToken)

	t.Run("mints a fresh hex token with a fifteen minute expiry", func(t *testing.T) {
		repo := &memoryMagicLinkRepository{}
		uc := NewMagicLinkUsecase(repo, zap.NewNop())

		before := time.Now()
		link, err := uc.Issue(ctx, "a@example.com", constvars.MagicLinkModeRegister, "Ann")
		after := time.Now()

		assert.NoError(t, err)
		assert.Regexp(t, tokenPattern, link.Token)
		assert.Equal(t, "a@example.com", link.Email)
		assert.Equal(t, "Ann", link.Name)
		assert.False(t, link.Used)
		assert.False(t, link.ExpiresAt.Before(before.Add(constvars.MagicLinkExpiryTime)))
		assert.False(t, link.ExpiresAt.After(after.Add(constvars.MagicLinkExpiryTime)))
	})

	t.Run("invalidates every previous unused link for the email", func(t *testing.T) {
		repo := &memoryMagicLinkRepository{}
		uc := NewMagicLinkUsecase(repo, zap.NewNop())

		first, err := uc.Issue(ctx, "a@example.com", constvars.MagicLinkModeLogin, "")
		assert.NoError(t, err)
		second, err := uc.Issue(ctx, "a@example.com", constvars.MagicLinkModeLogin, "")
		assert.NoError(t, err)
		assert.NotEqual(t, first.Token, second.Token)

		active, err := repo.FindActiveByEmail(ctx, "a@example.com")
		assert.NoError(t, err)
		assert.Equal(t, second.Token, active.Token)

		consumed, err := repo.FindAndConsumeByToken(ctx, first.Token)
		assert.NoError(t, err)
		assert.Nil(t, consumed, "superseded token must no longer redeem")
	})

	t.Run("leaves other emails untouched", func(t *testing.T) {
		repo := &memoryMagicLinkRepository{}
		uc := NewMagicLinkUsecase(repo, zap.NewNop())

		other, err := uc.Issue(ctx, "b@example.com", constvars.MagicLinkModeLogin, "")
		assert.NoError(t, err)
		_, err = uc.Issue(ctx, "a@example.com", constvars.MagicLinkModeLogin, "")
		assert.NoError(t, err)

		active, err := repo.FindActiveByEmail(ctx, "b@example.com")
		assert.NoError(t, err)
		assert.Equal(t, other.Token, active.Token)
	})

	t.Run("successive tokens never collide", func(t *testing.T) {
		repo := &memoryMagicLinkRepository{}
		uc := NewMagicLinkUsecase(repo, zap.NewNop())

		seen := make(map[string]bool)
		for i := 0; i < 50; i++ {
			link, err := uc.Issue(ctx, "a@example.com", constvars.MagicLinkModeLogin, "")
			assert.NoError(t, err)
			assert.False(t, seen[link.Token])
			seen[link.Token] = true
		}
	})

	t.Run("propagates repository failure", func(t *testing.T) {
		mockRepo := new(MockMagicLinkRepository)
		mockRepo.On("InvalidateAllForEmail", mock.Anything, "a@example.com").
			Return(int64(0), exceptions.ErrMongoDBUpdateDocument(assert.AnError))

		uc := NewMagicLinkUsecase(mockRepo, zap.NewNop())
		link, err := uc.Issue(ctx, "a@example.com", constvars.MagicLinkModeLogin, "")

		assert.Error(t, err)
		assert.Nil(t, link)
		mockRepo.AssertExpectations(t)
	})
}

func TestMagicLinkUsecase_Redeem(t *testing.T) {
	ctx := context.Background()

	t.Run("consumes a valid link exactly once", func(t *testing.T) {
		repo := &memoryMagicLinkRepository{}
		uc := NewMagicLinkUsecase(repo, zap.NewNop())

		issued, err := uc.Issue(ctx, "a@example.com", constvars.MagicLinkModeRegister, "Ann")
		assert.NoError(t, err)

		redeemed, err := uc.Redeem(ctx, issued.Token)
		assert.NoError(t, err)
		assert.Equal(t, "a@example.com", redeemed.Email)
		assert.Equal(t, constvars.MagicLinkModeRegister, redeemed.Mode)
		assert.Equal(t, "Ann", redeemed.Name)
		assert.True(t, redeemed.Used)

		_, err = uc.Redeem(ctx, issued.Token)
		assertInvalidOrExpired(t, err)
	})

	t.Run("rejects an unknown token", func(t *testing.T) {
		repo := &memoryMagicLinkRepository{}
		uc := NewMagicLinkUsecase(repo, zap.NewNop())

		_, err := uc.Redeem(ctx, "deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef")
		assertInvalidOrExpired(t, err)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		repo := &memoryMagicLinkRepository{}
		uc := NewMagicLinkUsecase(repo, zap.NewNop())

		issued, err := uc.Issue(ctx, "a@example.com", constvars.MagicLinkModeLogin, "")
		assert.NoError(t, err)

		repo.mu.Lock()
		repo.links[0].ExpiresAt = time.Now().Add(-time.Minute)
		repo.mu.Unlock()

		_, err = uc.Redeem(ctx, issued.Token)
		assertInvalidOrExpired(t, err)
	})

	t.Run("concurrent redemptions yield exactly one winner", func(t *testing.T) {
		repo := &memoryMagicLinkRepository{}
		uc := NewMagicLinkUsecase(repo, zap.NewNop())

		issued, err := uc.Issue(ctx, "a@example.com", constvars.MagicLinkModeLogin, "")
		assert.NoError(t, err)

		const racers = 32
		var wg sync.WaitGroup
		results := make(chan error, racers)
		for i := 0; i < racers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := uc.Redeem(ctx, issued.Token)
				results <- err
			}()
		}
		wg.Wait()
		close(results)

		var winners, losers int
		for err := range results {
			if err == nil {
				winners++
			} else {
				losers++
			}
		}
		assert.Equal(t, 1, winners)
		assert.Equal(t, racers-1, losers)
	})
}

func assertInvalidOrExpired(t *testing.T, err error) {
	t.Helper()
	assert.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	assert.Equal(t, constvars.ErrClientMagicLinkInvalidOrExpired, customErr.ClientMessage)
}
