package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken - токен не прошел проверку.
// Неверная подпись, поврежденная структура и истекший срок действия
// намеренно сведены в один исход: вызывающая сторона не должна уметь
// отличать истекший токен от подделанного.
var ErrInvalidToken = errors.New("невалидный токен")

// Ключи claims в подписанном токене.
const (
	claimSessionID = "sid"
	claimUserID    = "uid"
	claimUsername  = "uname"
	claimExpireAt  = "exp"
)

// AccessTokenPayload - полезная нагрузка короткоживущего access-токена.
// Username денормализовано на момент выдачи и не перечитывается из
// хранилища при каждой проверке. Значение неизменяемо после выдачи:
// обновленный токен - это новая нагрузка, а не мутация старой.
type AccessTokenPayload struct {
	SessionID string
	UserID    int64
	Username  string
	ExpireAt  int64 // Unix, секунды
}

// RefreshTokenPayload - полезная нагрузка долгоживущего refresh-токена.
// Имени пользователя нет: для выпуска нового access-токена пользователь
// перечитывается из хранилища.
type RefreshTokenPayload struct {
	SessionID string
	UserID    int64
	ExpireAt  int64 // Unix, секунды
}

// EncodeAccessToken подписывает access-токен с данной нагрузкой.
func EncodeAccessToken(payload AccessTokenPayload, cfg *Config) (string, error) {
	claims := jwt.MapClaims{
		claimSessionID: payload.SessionID,
		claimUserID:    payload.UserID,
		claimUsername:  payload.Username,
		claimExpireAt:  payload.ExpireAt,
	}
	return encodeToken(claims, cfg.JWTSecret)
}

// DecodeAccessToken проверяет подпись и срок действия access-токена
// и возвращает его нагрузку. Любая причина отказа - ErrInvalidToken.
func DecodeAccessToken(token string, cfg *Config) (AccessTokenPayload, error) {
	claims, err := decodeToken(token, cfg)
	if err != nil {
		return AccessTokenPayload{}, err
	}

	sessionID, okSID := claimString(claims, claimSessionID)
	userID, okUID := claimInt64(claims, claimUserID)
	username, okName := claimString(claims, claimUsername)
	expireAt, okExp := claimInt64(claims, claimExpireAt)
	if !okSID || !okUID || !okName || !okExp {
		// Отсутствие обязательного claim - отказ, а не значение по умолчанию.
		return AccessTokenPayload{}, ErrInvalidToken
	}

	return AccessTokenPayload{
		SessionID: sessionID,
		UserID:    userID,
		Username:  username,
		ExpireAt:  expireAt,
	}, nil
}

// EncodeRefreshToken подписывает refresh-токен с данной нагрузкой.
func EncodeRefreshToken(payload RefreshTokenPayload, cfg *Config) (string, error) {
	claims := jwt.MapClaims{
		claimSessionID: payload.SessionID,
		claimUserID:    payload.UserID,
		claimExpireAt:  payload.ExpireAt,
	}
	return encodeToken(claims, cfg.JWTSecret)
}

// DecodeRefreshToken проверяет подпись и срок действия refresh-токена
// и возвращает его нагрузку.
func DecodeRefreshToken(token string, cfg *Config) (RefreshTokenPayload, error) {
	claims, err := decodeToken(token, cfg)
	if err != nil {
		return RefreshTokenPayload{}, err
	}

	sessionID, okSID := claimString(claims, claimSessionID)
	userID, okUID := claimInt64(claims, claimUserID)
	expireAt, okExp := claimInt64(claims, claimExpireAt)
	if !okSID || !okUID || !okExp {
		return RefreshTokenPayload{}, ErrInvalidToken
	}

	return RefreshTokenPayload{
		SessionID: sessionID,
		UserID:    userID,
		ExpireAt:  expireAt,
	}, nil
}

// encodeToken подписывает claims методом HS256.
func encodeToken(claims jwt.MapClaims, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}
	return signed, nil
}

// decodeToken разбирает и валидирует подписанный токен.
// Срок действия проверяется самим кодеком через claim "exp":
// библиотека jwt отклоняет истекшие токены при разборе.
// Claim "exp" обязателен: jwt трактует нулевой "exp" как отсутствующий
// и без WithExpirationRequired пропустил бы такой токен как вечный.
// Текущее время берется из cfg.now, чтобы проверка срока действия
// использовала тот же источник времени, что и выдача токенов.
func decodeToken(tokenString string, cfg *Config) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Убеждаемся, что метод подписи - HMAC (HS256)
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return cfg.JWTSecret, nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(cfg.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// claimString извлекает строковый claim.
func claimString(claims jwt.MapClaims, key string) (string, bool) {
	value, ok := claims[key].(string)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// claimInt64 извлекает числовой claim.
// После разбора JSON числа приходят как float64.
func claimInt64(claims jwt.MapClaims, key string) (int64, bool) {
	switch value := claims[key].(type) {
	case float64:
		return int64(value), true
	case int64:
		return value, true
	default:
		return 0, false
	}
}
