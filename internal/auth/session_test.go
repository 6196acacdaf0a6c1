package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yzx9/aim-server/internal/auth"
	"github.com/yzx9/aim-server/internal/models"
)

// stubUserFinder - простая заглушка коллаборатора поиска пользователя.
type stubUserFinder struct {
	user *models.User
	err  error
}

func (s *stubUserFinder) Find(_ context.Context, _ int64) (*models.User, error) {
	return s.user, s.err
}

func testUser() *models.User {
	return &models.User{
		ID:           42,
		Name:         "alice",
		PasswordType: models.PasswordTypeArgon2id,
		PasswordHash: "$argon2id$...",
	}
}

func TestNewSession(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cfg := auth.NewConfig([]byte("test-secret-key"), 5*time.Minute, 30*24*time.Hour)
	cfg.Now = func() time.Time { return now }

	session, err := auth.NewSession(testUser(), cfg)
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)

	assert.Equal(t, session.ID, session.AccessPayload.SessionID)
	assert.Equal(t, int64(42), session.AccessPayload.UserID)
	assert.Equal(t, "alice", session.AccessPayload.Username)
	assert.Equal(t, now.Unix()+int64((5*time.Minute).Seconds()), session.AccessPayload.ExpireAt)
}

// Refresh-токен живет весь refresh-TTL, а не короткий access-TTL.
// Отдельный тест фиксирует это решение.
func TestNewSession_RefreshTokenUsesRefreshTTL(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	accessTTL := 5 * time.Minute
	refreshTTL := 30 * 24 * time.Hour
	cfg := auth.NewConfig([]byte("test-secret-key"), accessTTL, refreshTTL)
	cfg.Now = func() time.Time { return now }

	session, err := auth.NewSession(testUser(), cfg)
	require.NoError(t, err)

	refreshPayload, err := auth.DecodeRefreshToken(session.RefreshToken, cfg)
	require.NoError(t, err)

	// ID сессии общий для обеих нагрузок - он связывает пару токенов.
	assert.Equal(t, session.ID, refreshPayload.SessionID)
	assert.Equal(t, int64(42), refreshPayload.UserID)

	assert.Equal(t, now.Unix()+int64(refreshTTL.Seconds()), refreshPayload.ExpireAt,
		"срок refresh-токена отсчитывается от refresh-TTL")
	assert.Equal(t, now.Unix()+int64(accessTTL.Seconds()), session.AccessPayload.ExpireAt,
		"срок access-токена отсчитывается от access-TTL")
}

func TestSessionFromAccessToken(t *testing.T) {
	cfg := auth.NewConfig([]byte("test-secret-key"), 5*time.Minute, 30*24*time.Hour)

	original, err := auth.NewSession(testUser(), cfg)
	require.NoError(t, err)

	restored, err := auth.SessionFromAccessToken(original.AccessToken, cfg)
	require.NoError(t, err)

	assert.Equal(t, original.ID, restored.ID)
	assert.Equal(t, original.AccessPayload, restored.AccessPayload)
	// Сессия восстановлена из access-токена - refresh-токена у нее нет.
	assert.Empty(t, restored.RefreshToken)
}

func TestSessionFromAccessToken_Invalid(t *testing.T) {
	cfg := auth.NewConfig([]byte("test-secret-key"), 5*time.Minute, 30*24*time.Hour)

	// Токен с expire_at = 0 всегда невалиден.
	zeroExpToken, err := auth.EncodeAccessToken(auth.AccessTokenPayload{
		SessionID: "session-1",
		UserID:    42,
		Username:  "alice",
		ExpireAt:  0,
	}, cfg)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "Токен с expire_at = 0", token: zeroExpToken},
		{name: "Мусорная строка", token: "garbage"},
		{name: "Пустая строка", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, fromErr := auth.SessionFromAccessToken(tt.token, cfg)
			require.ErrorIs(t, fromErr, auth.ErrInvalidToken)
		})
	}
}

func TestSessionFromRefreshToken(t *testing.T) {
	ctx := context.Background()
	cfg := auth.NewConfig([]byte("test-secret-key"), 5*time.Minute, 30*24*time.Hour)
	user := testUser()

	original, err := auth.NewSession(user, cfg)
	require.NoError(t, err)

	finder := &stubUserFinder{user: user}
	redeemed, err := auth.SessionFromRefreshToken(ctx, original.RefreshToken, cfg, finder)
	require.NoError(t, err)

	// Выпускается совершенно новая сессия.
	assert.NotEqual(t, original.ID, redeemed.ID)
	assert.NotEmpty(t, redeemed.AccessToken)
	assert.Equal(t, user.ID, redeemed.AccessPayload.UserID)
	assert.Equal(t, user.Name, redeemed.AccessPayload.Username)
	// Предъявленный refresh-токен переиспользуется без ротации.
	assert.Equal(t, original.RefreshToken, redeemed.RefreshToken)
}

func TestSessionFromRefreshToken_Invalid(t *testing.T) {
	ctx := context.Background()
	cfg := auth.NewConfig([]byte("test-secret-key"), 5*time.Minute, 30*24*time.Hour)

	original, err := auth.NewSession(testUser(), cfg)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		finder auth.UserFinder
	}{
		{
			name:   "Пользователь исчез из хранилища",
			token:  original.RefreshToken,
			finder: &stubUserFinder{user: nil},
		},
		{
			name:   "Ошибка хранилища",
			token:  original.RefreshToken,
			finder: &stubUserFinder{err: errors.New("db error")},
		},
		{
			name:   "Мусорный токен",
			token:  "garbage",
			finder: &stubUserFinder{user: testUser()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, fromErr := auth.SessionFromRefreshToken(ctx, tt.token, cfg, tt.finder)
			require.ErrorIs(t, fromErr, auth.ErrInvalidToken)
		})
	}
}

func TestTryRefreshAccessToken(t *testing.T) {
	accessTTL := 5 * time.Minute
	refreshTTL := 30 * time.Minute // Порог обновления: 0.2 * 30м = 6м

	tests := []struct {
		name            string
		remaining       time.Duration // Сколько осталось жить access-токену
		expectedRefresh bool
	}{
		{name: "Осталось много - не обновляем", remaining: 10 * time.Minute, expectedRefresh: false},
		{name: "Ровно на пороге - не обновляем", remaining: 6 * time.Minute, expectedRefresh: false},
		{name: "Ниже порога - обновляем", remaining: 2 * time.Minute, expectedRefresh: true},
		{name: "Токен почти истек - обновляем", remaining: 10 * time.Second, expectedRefresh: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
			cfg := auth.NewConfig([]byte("test-secret-key"), accessTTL, refreshTTL)
			cfg.Now = func() time.Time { return issued }

			session, err := auth.NewSession(testUser(), cfg)
			require.NoError(t, err)

			oldToken := session.AccessToken
			oldPayload := session.AccessPayload

			// Сдвигаем часы так, чтобы до истечения оставалось tt.remaining.
			cfg.Now = func() time.Time { return issued.Add(accessTTL - tt.remaining) }

			refreshed, err := session.TryRefreshAccessToken()
			require.NoError(t, err)
			assert.Equal(t, tt.expectedRefresh, refreshed)

			if tt.expectedRefresh {
				assert.NotEqual(t, oldToken, session.AccessToken, "выпущен новый токен")
				assert.Equal(t, oldPayload.SessionID, session.AccessPayload.SessionID,
					"ID сессии сохраняется при обновлении")
				assert.Greater(t, session.AccessPayload.ExpireAt, oldPayload.ExpireAt)
			} else {
				assert.Equal(t, oldToken, session.AccessToken, "сессия не изменяется")
				assert.Equal(t, oldPayload, session.AccessPayload)
			}
		})
	}
}
