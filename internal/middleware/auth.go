// Package middleware содержит HTTP middleware для проверки аутентификации.
package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/yzx9/aim-server/internal/auth"
)

// Тип для ключа контекста.
type contextKey string

// Ключи для хранения данных аутентификации в контексте.
const (
	PayloadKey contextKey = "accessPayload"
	SessionKey contextKey = "session"
)

// Identity определяет, в каком виде аутентифицированный запрос
// получает данные о пользователе.
type Identity int

const (
	// IdentityNone - аутентификация не требуется.
	IdentityNone Identity = iota
	// IdentityPayload - в контекст кладется расшифрованная нагрузка access-токена.
	IdentityPayload
	// IdentitySession - в контекст кладется восстановленная сессия целиком.
	IdentitySession
)

// SessionDirectory - минимальный срез AuthService, нужный middleware.
type SessionDirectory interface {
	LoginByAccessToken(accessToken string) (*auth.Session, error)
}

// Authenticator возвращает middleware, которое проверяет заголовок
// Authorization и кладет в контекст данные согласно identity.
// Для IdentityNone запрос пропускается без проверки.
func Authenticator(directory SessionDirectory, identity Identity) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if identity == IdentityNone {
				next.ServeHTTP(w, r)
				return
			}

			accessToken, ok := BearerToken(r)
			if !ok {
				log.Println("[AuthMiddleware] Заголовок Authorization отсутствует или имеет неверный формат")
				http.Error(w, "Требуется аутентификация", http.StatusUnauthorized)
				return
			}

			session, err := directory.LoginByAccessToken(accessToken)
			if err != nil {
				log.Printf("[AuthMiddleware] Невалидный access-токен: %v", err)
				http.Error(w, "Невалидный токен", http.StatusUnauthorized)
				return
			}

			var ctx context.Context
			switch identity {
			case IdentitySession:
				ctx = context.WithValue(r.Context(), SessionKey, session)
			default:
				ctx = context.WithValue(r.Context(), PayloadKey, session.AccessPayload)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken извлекает токен из заголовка Authorization вида "Bearer <token>".
func BearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	headerParts := strings.Split(authHeader, " ")
	if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
		return "", false
	}
	return headerParts[1], true
}

// GetPayloadFromContext извлекает нагрузку access-токена из контекста запроса.
func GetPayloadFromContext(ctx context.Context) (auth.AccessTokenPayload, bool) {
	payload, ok := ctx.Value(PayloadKey).(auth.AccessTokenPayload)
	return payload, ok
}

// GetSessionFromContext извлекает сессию из контекста запроса.
func GetSessionFromContext(ctx context.Context) (*auth.Session, bool) {
	session, ok := ctx.Value(SessionKey).(*auth.Session)
	return session, ok
}
