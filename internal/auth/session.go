package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/yzx9/aim-server/internal/models"
)

// refreshThreshold - доля оставшегося времени жизни (от refresh-TTL),
// ниже которой access-токен обновляется. Знаменатель - именно refresh-TTL:
// частота обновления access-токена привязана к бюджету долгоживущей сессии.
const refreshThreshold = 0.2

// UserFinder - коллаборатор для поиска пользователя при погашении
// refresh-токена. Отсутствие пользователя выражается значением nil
// либо ошибкой - оба случая приводят к отказу в валидации токена.
type UserFinder interface {
	Find(ctx context.Context, id int64) (*models.User, error)
}

// Session - аутентифицированная личность в памяти процесса.
// Не персистится: сессия живет в пределах одного цикла запрос-ответ,
// серверного хранилища сессий нет, поэтому logout ничего не очищает.
type Session struct {
	// ID сессии. Общий для access- и refresh-нагрузки - связывает их.
	ID string
	// AccessToken - подписанный access-токен.
	AccessToken string
	// AccessPayload - расшифрованная нагрузка access-токена.
	AccessPayload AccessTokenPayload
	// RefreshToken - подписанный refresh-токен. Пустая строка, если сессия
	// восстановлена из предъявленного access-токена.
	RefreshToken string

	cfg *Config
}

// NewSession создает новую сессию для пользователя: свежий ID сессии,
// access-токен со сроком now+AccessTokenTTL и refresh-токен со сроком
// now+RefreshTokenTTL.
func NewSession(user *models.User, cfg *Config) (*Session, error) {
	id := uuid.NewString()

	accessToken, accessPayload, err := newAccessToken(cfg, id, user.ID, user.Name)
	if err != nil {
		return nil, err
	}

	refreshPayload := RefreshTokenPayload{
		SessionID: id,
		UserID:    user.ID,
		ExpireAt:  cfg.now().Unix() + int64(cfg.RefreshTokenTTL.Seconds()),
	}
	refreshToken, err := EncodeRefreshToken(refreshPayload, cfg)
	if err != nil {
		return nil, err
	}

	return &Session{
		ID:            id,
		AccessToken:   accessToken,
		AccessPayload: accessPayload,
		RefreshToken:  refreshToken,
		cfg:           cfg,
	}, nil
}

// SessionFromAccessToken восстанавливает сессию из предъявленного
// access-токена. Refresh-токен к такой сессии не прикрепляется.
func SessionFromAccessToken(token string, cfg *Config) (*Session, error) {
	payload, err := DecodeAccessToken(token, cfg)
	if err != nil {
		return nil, err
	}

	return &Session{
		ID:            payload.SessionID,
		AccessToken:   token,
		AccessPayload: payload,
		cfg:           cfg,
	}, nil
}

// SessionFromRefreshToken гасит refresh-токен: перечитывает пользователя
// через коллаборатор, выпускает новый ID сессии и свежий access-токен.
// Предъявленный refresh-токен переиспользуется без изменений -
// ротация refresh-токенов не выполняется.
func SessionFromRefreshToken(ctx context.Context, token string, cfg *Config, users UserFinder) (*Session, error) {
	payload, err := DecodeRefreshToken(token, cfg)
	if err != nil {
		return nil, err
	}

	user, err := users.Find(ctx, payload.UserID)
	if err != nil || user == nil {
		// Пользователь исчез из хранилища - токен больше не действителен,
		// даже если подпись и срок в порядке.
		return nil, ErrInvalidToken
	}

	id := uuid.NewString()
	accessToken, accessPayload, err := newAccessToken(cfg, id, user.ID, user.Name)
	if err != nil {
		return nil, err
	}

	return &Session{
		ID:            id,
		AccessToken:   accessToken,
		AccessPayload: accessPayload,
		RefreshToken:  token,
		cfg:           cfg,
	}, nil
}

// TryRefreshAccessToken обновляет access-токен, если он скоро истечет.
// Порог: осталось меньше 20% от refresh-TTL. Возвращает true, если токен
// был заменен (ID сессии сохраняется), и false, если обновление не
// требовалось - в этом случае сессия не изменяется.
func (s *Session) TryRefreshAccessToken() (bool, error) {
	remaining := s.AccessPayload.ExpireAt - s.cfg.now().Unix()
	if float64(remaining) >= refreshThreshold*s.cfg.RefreshTokenTTL.Seconds() {
		return false, nil
	}

	accessToken, accessPayload, err := newAccessToken(
		s.cfg, s.ID, s.AccessPayload.UserID, s.AccessPayload.Username)
	if err != nil {
		return false, err
	}

	s.AccessToken = accessToken
	s.AccessPayload = accessPayload
	return true, nil
}

// newAccessToken выпускает access-токен со сроком now+AccessTokenTTL.
func newAccessToken(cfg *Config, sessionID string, userID int64, username string) (string, AccessTokenPayload, error) {
	payload := AccessTokenPayload{
		SessionID: sessionID,
		UserID:    userID,
		Username:  username,
		ExpireAt:  cfg.now().Unix() + int64(cfg.AccessTokenTTL.Seconds()),
	}

	token, err := EncodeAccessToken(payload, cfg)
	if err != nil {
		return "", AccessTokenPayload{}, err
	}

	return token, payload, nil
}
