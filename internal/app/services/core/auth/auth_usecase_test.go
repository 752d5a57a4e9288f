package auth

import (
	"context"
	"testing"
	"time"

	"jondonfit-service/internal/app/models"
	"jondonfit-service/internal/pkg/constvars"
	"jondonfit-service/internal/pkg/dto/requests"
	"jondonfit-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockMagicLinkUsecase struct {
	mock.Mock
}

func (m *MockMagicLinkUsecase) Issue(ctx context.Context, email, mode, name string) (*models.MagicLink, error) {
	args := m.Called(ctx, email, mode, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MagicLink), args.Error(1)
}

func (m *MockMagicLinkUsecase) Redeem(ctx context.Context, token string) (*models.MagicLink, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MagicLink), args.Error(1)
}

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

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockMailerService struct {
	mock.Mock
}

func (m *MockMailerService) SendVerificationEmail(ctx context.Context, to, token, mode, name string) error {
	args := m.Called(ctx, to, token, mode, name)
	return args.Error(0)
}

func (m *MockMailerService) SendEmail(request *requests.EmailPayload) error {
	args := m.Called(request)
	return args.Error(0)
}

func (m *MockMailerService) ValidateEmail(email string) bool {
	args := m.Called(email)
	return args.Bool(0)
}

func newTestAuthUsecase(
	magicLinks *MockMagicLinkUsecase,
	users *MockUserRepository,
	sessions *MockSessionService,
	mailer *MockMailerService,
) *authUsecase {
	return &authUsecase{
		MagicLinkUsecase: magicLinks,
		UserRepository:   users,
		SessionService:   sessions,
		MailerService:    mailer,
		Log:              zap.NewNop(),
	}
}

func issuedLink(email, mode, name string) *models.MagicLink {
	return &models.MagicLink{
		Email:     email,
		Token:     "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef",
		Mode:      mode,
		Name:      name,
		ExpiresAt: time.Now().Add(constvars.MagicLinkExpiryTime),
	}
}

func TestAuthUsecase_SendMagicLink(t *testing.T) {
	ctx := context.Background()

	t.Run("register for a new email issues and mails a link", func(t *testing.T) {
		magicLinks := new(MockMagicLinkUsecase)
		users := new(MockUserRepository)
		mailer := new(MockMailerService)
		uc := newTestAuthUsecase(magicLinks, users, new(MockSessionService), mailer)

		link := issuedLink("a@example.com", constvars.MagicLinkModeRegister, "Ann")
		users.On("FindByEmail", mock.Anything, "a@example.com").Return(nil, nil)
		magicLinks.On("Issue", mock.Anything, "a@example.com", constvars.MagicLinkModeRegister, "Ann").Return(link, nil)
		mailer.On("SendVerificationEmail", mock.Anything, "a@example.com", link.Token, link.Mode, "Ann").Return(nil)

		err := uc.SendMagicLink(ctx, &requests.SendMagicLink{
			Email: "a@example.com",
			Name:  "Ann",
			Mode:  constvars.MagicLinkModeRegister,
		})

		assert.NoError(t, err)
		magicLinks.AssertExpectations(t)
		mailer.AssertExpectations(t)
	})

	t.Run("register without a name is rejected", func(t *testing.T) {
		magicLinks := new(MockMagicLinkUsecase)
		uc := newTestAuthUsecase(magicLinks, new(MockUserRepository), new(MockSessionService), new(MockMailerService))

		err := uc.SendMagicLink(ctx, &requests.SendMagicLink{
			Email: "a@example.com",
			Mode:  constvars.MagicLinkModeRegister,
		})

		assert.Error(t, err)
		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		magicLinks.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("register for an existing email fails before any token exists", func(t *testing.T) {
		magicLinks := new(MockMagicLinkUsecase)
		users := new(MockUserRepository)
		uc := newTestAuthUsecase(magicLinks, users, new(MockSessionService), new(MockMailerService))

		users.On("FindByEmail", mock.Anything, "a@example.com").Return(&models.User{ID: "u1", Email: "a@example.com"}, nil)

		err := uc.SendMagicLink(ctx, &requests.SendMagicLink{
			Email: "a@example.com",
			Name:  "Ann",
			Mode:  constvars.MagicLinkModeRegister,
		})

		assert.Error(t, err)
		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientEmailAlreadyRegistered, customErr.ClientMessage)
		magicLinks.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("login never checks whether the account exists", func(t *testing.T) {
		magicLinks := new(MockMagicLinkUsecase)
		users := new(MockUserRepository)
		mailer := new(MockMailerService)
		uc := newTestAuthUsecase(magicLinks, users, new(MockSessionService), mailer)

		link := issuedLink("ghost@example.com", constvars.MagicLinkModeLogin, "")
		magicLinks.On("Issue", mock.Anything, "ghost@example.com", constvars.MagicLinkModeLogin, "").Return(link, nil)
		mailer.On("SendVerificationEmail", mock.Anything, "ghost@example.com", link.Token, link.Mode, "").Return(nil)

		err := uc.SendMagicLink(ctx, &requests.SendMagicLink{
			Email: "ghost@example.com",
			Mode:  constvars.MagicLinkModeLogin,
		})

		assert.NoError(t, err)
		users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("delivery failure propagates after issuing", func(t *testing.T) {
		magicLinks := new(MockMagicLinkUsecase)
		mailer := new(MockMailerService)
		uc := newTestAuthUsecase(magicLinks, new(MockUserRepository), new(MockSessionService), mailer)

		link := issuedLink("a@example.com", constvars.MagicLinkModeLogin, "")
		magicLinks.On("Issue", mock.Anything, "a@example.com", constvars.MagicLinkModeLogin, "").Return(link, nil)
		mailer.On("SendVerificationEmail", mock.Anything, "a@example.com", link.Token, link.Mode, "").
			Return(exceptions.ErrSMTPSendEmail(assert.AnError, "smtp.test"))

		err := uc.SendMagicLink(ctx, &requests.SendMagicLink{
			Email: "a@example.com",
			Mode:  constvars.MagicLinkModeLogin,
		})

		assert.Error(t, err)
		mailer.AssertExpectations(t)
	})
}

func TestAuthUsecase_VerifyMagicLink(t *testing.T) {
	ctx := context.Background()

	t.Run("redeems and provisions a new user on register", func(t *testing.T) {
		magicLinks := new(MockMagicLinkUsecase)
		users := new(MockUserRepository)
		sessions := new(MockSessionService)
		uc := newTestAuthUsecase(magicLinks, users, sessions, new(MockMailerService))

		link := issuedLink("a@example.com", constvars.MagicLinkModeRegister, "Ann")
		magicLinks.On("Redeem", mock.Anything, link.Token).Return(link, nil)
		users.On("FindByEmail", mock.Anything, "a@example.com").Return(nil, nil)
		users.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).Return("u1", nil)
		sessions.On("CreateSession", mock.Anything, mock.AnythingOfType("*models.User")).Return("jwt-token", nil)

		result, err := uc.VerifyMagicLink(ctx, &requests.VerifyMagicLink{Token: link.Token})

		assert.NoError(t, err)
		assert.Equal(t, "jwt-token", result.Token)
		assert.Equal(t, "u1", result.User.UserID)
		assert.Equal(t, "a@example.com", result.User.Email)
		assert.Equal(t, "Ann", result.User.Name)
		users.AssertExpectations(t)
	})

	t.Run("reuses the existing account on login", func(t *testing.T) {
		magicLinks := new(MockMagicLinkUsecase)
		users := new(MockUserRepository)
		sessions := new(MockSessionService)
		uc := newTestAuthUsecase(magicLinks, users, sessions, new(MockMailerService))

		link := issuedLink("a@example.com", constvars.MagicLinkModeLogin, "")
		existing := &models.User{ID: "u1", Email: "a@example.com", Name: "Ann", ProgramID: "strength-12wk"}
		magicLinks.On("Redeem", mock.Anything, link.Token).Return(link, nil)
		users.On("FindByEmail", mock.Anything, "a@example.com").Return(existing, nil)
		sessions.On("CreateSession", mock.Anything, existing).Return("jwt-token", nil)

		result, err := uc.VerifyMagicLink(ctx, &requests.VerifyMagicLink{Token: link.Token})

		assert.NoError(t, err)
		assert.Equal(t, "strength-12wk", result.User.ProgramID)
		users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("invalid token stops before any user lookup", func(t *testing.T) {
		magicLinks := new(MockMagicLinkUsecase)
		users := new(MockUserRepository)
		uc := newTestAuthUsecase(magicLinks, users, new(MockSessionService), new(MockMailerService))

		magicLinks.On("Redeem", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrMagicLinkInvalidOrExpired(nil))

		result, err := uc.VerifyMagicLink(ctx, &requests.VerifyMagicLink{Token: "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"})

		assert.Error(t, err)
		assert.Nil(t, result)
		users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})
}

func TestAuthUsecase_LogoutUser(t *testing.T) {
	ctx := context.Background()

	sessions := new(MockSessionService)
	uc := newTestAuthUsecase(new(MockMagicLinkUsecase), new(MockUserRepository), sessions, new(MockMailerService))

	sessions.On("ParseSessionData", mock.Anything, "session-data").
		Return(&models.Session{SessionID: "s1", UserID: "u1"}, nil)
	sessions.On("DeleteSession", mock.Anything, "s1").Return(nil)

	err := uc.LogoutUser(ctx, "session-data")

	assert.NoError(t, err)
	sessions.AssertExpectations(t)
}
