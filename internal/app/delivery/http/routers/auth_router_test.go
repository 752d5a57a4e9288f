package routers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"jondonfit-service/internal/app/config"
	"jondonfit-service/internal/app/delivery/http/controllers"
	"jondonfit-service/internal/app/delivery/http/middlewares"
	"jondonfit-service/internal/pkg/dto/requests"
	"jondonfit-service/internal/pkg/dto/responses"
	"jondonfit-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) SendMagicLink(ctx context.Context, request *requests.SendMagicLink) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockAuthUsecase) VerifyMagicLink(ctx context.Context, request *requests.VerifyMagicLink) (*responses.VerifyMagicLink, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.VerifyMagicLink), args.Error(1)
}

func (m *MockAuthUsecase) LogoutUser(ctx context.Context, sessionData string) error {
	args := m.Called(ctx, sessionData)
	return args.Error(0)
}

func newAuthTestRouter(mockAuthUsecase *MockAuthUsecase) *chi.Mux {
	logger := zap.NewNop()
	middlewareInstance := middlewares.NewMiddlewares(logger, nil, &config.InternalConfig{})

	authController := controllers.NewAuthController(logger, mockAuthUsecase)

	router := chi.NewRouter()
	router.Use(middlewareInstance.RequestIDMiddleware)
	attachAuthRoutes(router, middlewareInstance, authController)
	return router
}

func TestAuthRouter_SendLinkEndpoint(t *testing.T) {
	mockAuthUsecase := new(MockAuthUsecase)
	router := newAuthTestRouter(mockAuthUsecase)

	t.Run("valid login request returns 200", func(t *testing.T) {
		mockAuthUsecase.On("SendMagicLink", mock.Anything, mock.AnythingOfType("*requests.SendMagicLink")).Return(nil).Once()

		jsonBody, _ := json.Marshal(requests.SendMagicLink{
			Email: "a@example.com",
			Mode:  "login",
		})

		req := httptest.NewRequest("POST", "/send-link", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("malformed email returns 400 without reaching the usecase", func(t *testing.T) {
		jsonBody, _ := json.Marshal(requests.SendMagicLink{
			Email: "not-an-email",
			Mode:  "login",
		})

		req := httptest.NewRequest("POST", "/send-link", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown mode returns 400", func(t *testing.T) {
		jsonBody, _ := json.Marshal(requests.SendMagicLink{
			Email: "a@example.com",
			Mode:  "signup",
		})

		req := httptest.NewRequest("POST", "/send-link", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("existing email on register returns 409", func(t *testing.T) {
		mockAuthUsecase.On("SendMagicLink", mock.Anything, mock.AnythingOfType("*requests.SendMagicLink")).
			Return(exceptions.ErrEmailAlreadyRegistered(nil)).Once()

		jsonBody, _ := json.Marshal(requests.SendMagicLink{
			Email: "a@example.com",
			Name:  "Ann",
			Mode:  "register",
		})

		req := httptest.NewRequest("POST", "/send-link", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestAuthRouter_VerifyEndpoint(t *testing.T) {
	mockAuthUsecase := new(MockAuthUsecase)
	router := newAuthTestRouter(mockAuthUsecase)

	t.Run("short token returns 400 without reaching the usecase", func(t *testing.T) {
		jsonBody, _ := json.Marshal(requests.VerifyMagicLink{Token: "abc123"})

		req := httptest.NewRequest("POST", "/verify", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockAuthUsecase.AssertNotCalled(t, "VerifyMagicLink", mock.Anything, mock.Anything)
	})

	t.Run("unredeemable token returns 401", func(t *testing.T) {
		mockAuthUsecase.On("VerifyMagicLink", mock.Anything, mock.AnythingOfType("*requests.VerifyMagicLink")).
			Return(nil, exceptions.ErrMagicLinkInvalidOrExpired(nil)).Once()

		jsonBody, _ := json.Marshal(requests.VerifyMagicLink{
			Token: "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef",
		})

		req := httptest.NewRequest("POST", "/verify", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid token returns the session token and profile", func(t *testing.T) {
		mockAuthUsecase.On("VerifyMagicLink", mock.Anything, mock.AnythingOfType("*requests.VerifyMagicLink")).
			Return(&responses.VerifyMagicLink{
				Token: "jwt-token",
				User:  &responses.UserProfile{UserID: "u1", Email: "a@example.com"},
			}, nil).Once()

		jsonBody, _ := json.Marshal(requests.VerifyMagicLink{
			Token: "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		})

		req := httptest.NewRequest("POST", "/verify", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var body responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.True(t, body.Success)
	})
}

func TestAuthRouter_LogoutRequiresToken(t *testing.T) {
	mockAuthUsecase := new(MockAuthUsecase)
	router := newAuthTestRouter(mockAuthUsecase)

	req := httptest.NewRequest("POST", "/logout", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	mockAuthUsecase.AssertNotCalled(t, "LogoutUser", mock.Anything, mock.Anything)
}
