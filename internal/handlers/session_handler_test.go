package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yzx9/aim-server/internal/auth"
	"github.com/yzx9/aim-server/internal/handlers"
	"github.com/yzx9/aim-server/internal/middleware"
	"github.com/yzx9/aim-server/internal/mocks"
	"github.com/yzx9/aim-server/internal/models"
	"github.com/yzx9/aim-server/internal/services"
)

// testSession выпускает настоящую сессию: обработчику Refresh нужна
// сессия с прикрепленной конфигурацией токенов.
func testSession(t *testing.T) *auth.Session {
	t.Helper()
	cfg := auth.NewConfig([]byte("test-secret"), 5*time.Minute, 30*24*time.Hour)
	session, err := auth.NewSession(&models.User{ID: 42, Name: "alice"}, cfg)
	require.NoError(t, err)
	return session
}

func TestSessionHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(mockAuthService *mocks.AuthService)
		expectedStatus int
	}{
		{
			name: "Успешная регистрация",
			body: `{"name": "alice", "password": "password123"}`,
			mockSetup: func(mockAuthService *mocks.AuthService) {
				mockAuthService.EXPECT().
					Register(context.Background(), "alice", "password123").
					Return(&models.User{ID: 42, Name: "alice"}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Пустое имя пользователя",
			body:           `{"name": "", "password": "password123"}`,
			mockSetup:      func(_ *mocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Пустой пароль",
			body:           `{"name": "alice", "password": ""}`,
			mockSetup:      func(_ *mocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Некорректный JSON",
			body:           `{"name": "alice"`,
			mockSetup:      func(_ *mocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Внутренняя ошибка сервиса",
			body: `{"name": "alice", "password": "password123"}`,
			mockSetup: func(mockAuthService *mocks.AuthService) {
				mockAuthService.EXPECT().
					Register(context.Background(), "alice", "password123").
					Return(nil, services.ErrInternal).Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuthService := mocks.NewAuthService(t)
			tt.mockSetup(mockAuthService)

			handler := handlers.NewSessionHandler(mockAuthService)
			req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			handler.Register(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusCreated {
				var user models.User
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
				assert.Equal(t, int64(42), user.ID)
				assert.Equal(t, "alice", user.Name)
			}
		})
	}
}

func TestSessionHandler_Create(t *testing.T) {
	session := testSession(t)

	tests := []struct {
		name           string
		body           string
		mockSetup      func(mockAuthService *mocks.AuthService)
		expectedStatus int
	}{
		{
			name: "Успешный вход",
			body: `{"user_id": 42, "password": "hunter2"}`,
			mockSetup: func(mockAuthService *mocks.AuthService) {
				mockAuthService.EXPECT().
					LoginByPassword(context.Background(), int64(42), "hunter2").
					Return(session, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Неверные учетные данные",
			body: `{"user_id": 42, "password": "wrong"}`,
			mockSetup: func(mockAuthService *mocks.AuthService) {
				mockAuthService.EXPECT().
					LoginByPassword(context.Background(), int64(42), "wrong").
					Return(nil, services.ErrInvalidCredentials).Once()
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Нулевой идентификатор пользователя",
			body:           `{"user_id": 0, "password": "hunter2"}`,
			mockSetup:      func(_ *mocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Внутренняя ошибка",
			body: `{"user_id": 42, "password": "hunter2"}`,
			mockSetup: func(mockAuthService *mocks.AuthService) {
				mockAuthService.EXPECT().
					LoginByPassword(context.Background(), int64(42), "hunter2").
					Return(nil, services.ErrInternal).Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuthService := mocks.NewAuthService(t)
			tt.mockSetup(mockAuthService)

			handler := handlers.NewSessionHandler(mockAuthService)
			req := httptest.NewRequest(http.MethodPost, "/api/session", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			handler.Create(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp models.TokenResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, session.AccessToken, resp.AccessToken)
				assert.Equal(t, session.RefreshToken, resp.RefreshToken)
				assert.Equal(t, session.AccessPayload.ExpireAt, resp.ExpireAt)
			}
		})
	}
}

func TestSessionHandler_Get(t *testing.T) {
	mockAuthService := mocks.NewAuthService(t)
	handler := handlers.NewSessionHandler(mockAuthService)

	t.Run("Сессия из контекста", func(t *testing.T) {
		session := testSession(t)
		req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
		req = req.WithContext(context.WithValue(req.Context(), middleware.SessionKey, session))
		rr := httptest.NewRecorder()
		handler.Get(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp models.IdentityResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, session.AccessPayload.SessionID, resp.SessionID)
		assert.Equal(t, int64(42), resp.UserID)
		assert.Equal(t, "alice", resp.Username)
		assert.Equal(t, session.AccessPayload.ExpireAt, resp.ExpireAt)
	})

	t.Run("Сессия отсутствует в контексте", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
		rr := httptest.NewRecorder()
		handler.Get(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestSessionHandler_Refresh(t *testing.T) {
	t.Run("Новая сессия по refresh-токену", func(t *testing.T) {
		session := testSession(t)
		mockAuthService := mocks.NewAuthService(t)
		mockAuthService.EXPECT().
			RefreshAccessToken(context.Background(), "refresh-token").
			Return(session, nil).Once()

		handler := handlers.NewSessionHandler(mockAuthService)
		req := httptest.NewRequest(http.MethodPut, "/api/session",
			strings.NewReader(`{"refresh_token": "refresh-token"}`))
		rr := httptest.NewRecorder()
		handler.Refresh(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp models.TokenResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, session.AccessToken, resp.AccessToken)
	})

	t.Run("Недействительный refresh-токен", func(t *testing.T) {
		mockAuthService := mocks.NewAuthService(t)
		mockAuthService.EXPECT().
			RefreshAccessToken(context.Background(), "expired").
			Return(nil, services.ErrInvalidToken).Once()

		handler := handlers.NewSessionHandler(mockAuthService)
		req := httptest.NewRequest(http.MethodPut, "/api/session",
			strings.NewReader(`{"refresh_token": "expired"}`))
		rr := httptest.NewRecorder()
		handler.Refresh(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Продление по access-токену: срок далек, токен не меняется", func(t *testing.T) {
		// Осталось больше 20% от refresh-TTL, продление не требуется
		cfg := auth.NewConfig([]byte("test-secret"), time.Hour, time.Hour)
		session, err := auth.NewSession(&models.User{ID: 42, Name: "alice"}, cfg)
		require.NoError(t, err)
		issued := session.AccessToken
		mockAuthService := mocks.NewAuthService(t)
		mockAuthService.EXPECT().
			LoginByAccessToken(issued).
			Return(session, nil).Once()

		handler := handlers.NewSessionHandler(mockAuthService)
		req := httptest.NewRequest(http.MethodPut, "/api/session", nil)
		req.Header.Set("Authorization", "Bearer "+issued)
		rr := httptest.NewRecorder()
		handler.Refresh(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp models.TokenResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, issued, resp.AccessToken)
	})

	t.Run("Продление по access-токену: срок близок, токен заменяется", func(t *testing.T) {
		cfg := auth.NewConfig([]byte("test-secret"), time.Hour, time.Hour)
		session, err := auth.NewSession(&models.User{ID: 42, Name: "alice"}, cfg)
		require.NoError(t, err)
		issued := session.AccessToken
		issuedExpireAt := session.AccessPayload.ExpireAt

		// Сдвигаем часы к концу срока: осталось меньше 20% от refresh-TTL
		cfg.Now = func() time.Time { return time.Now().Add(55 * time.Minute) }

		mockAuthService := mocks.NewAuthService(t)
		mockAuthService.EXPECT().
			LoginByAccessToken(issued).
			Return(session, nil).Once()

		handler := handlers.NewSessionHandler(mockAuthService)
		req := httptest.NewRequest(http.MethodPut, "/api/session", nil)
		req.Header.Set("Authorization", "Bearer "+issued)
		rr := httptest.NewRecorder()
		handler.Refresh(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp models.TokenResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.NotEqual(t, issued, resp.AccessToken)
		assert.Greater(t, resp.ExpireAt, issuedExpireAt)
	})

	t.Run("Ни refresh-токена, ни заголовка", func(t *testing.T) {
		mockAuthService := mocks.NewAuthService(t)
		handler := handlers.NewSessionHandler(mockAuthService)
		req := httptest.NewRequest(http.MethodPut, "/api/session", nil)
		rr := httptest.NewRecorder()
		handler.Refresh(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestSessionHandler_Delete(t *testing.T) {
	t.Run("Успешный выход", func(t *testing.T) {
		mockAuthService := mocks.NewAuthService(t)
		mockAuthService.EXPECT().Logout("valid-token").Return(nil).Once()

		handler := handlers.NewSessionHandler(mockAuthService)
		req := httptest.NewRequest(http.MethodDelete, "/api/session", nil)
		req.Header.Set("Authorization", "Bearer valid-token")
		rr := httptest.NewRecorder()
		handler.Delete(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("Невалидный токен", func(t *testing.T) {
		mockAuthService := mocks.NewAuthService(t)
		mockAuthService.EXPECT().Logout("bad-token").Return(services.ErrInvalidToken).Once()

		handler := handlers.NewSessionHandler(mockAuthService)
		req := httptest.NewRequest(http.MethodDelete, "/api/session", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		rr := httptest.NewRecorder()
		handler.Delete(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Без заголовка Authorization", func(t *testing.T) {
		mockAuthService := mocks.NewAuthService(t)
		handler := handlers.NewSessionHandler(mockAuthService)
		req := httptest.NewRequest(http.MethodDelete, "/api/session", nil)
		rr := httptest.NewRecorder()
		handler.Delete(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
