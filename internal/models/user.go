package models

import "time"

// PasswordType описывает поколение схемы хеширования пароля пользователя.
// Хранится в БД вместе с хешем и определяет, как его проверять.
type PasswordType string

const (
	// PasswordTypeNone - пароль никогда не устанавливался, вход невозможен.
	PasswordTypeNone PasswordType = "none"
	// PasswordTypeMD5 - устаревшая схема (несолёный MD5-дайджест).
	// Новые хеши в этой схеме не выдаются, только проверяются для миграции.
	PasswordTypeMD5 PasswordType = "md5"
	// PasswordTypeArgon2id - актуальная схема (Argon2id с солью).
	PasswordTypeArgon2id PasswordType = "argon2id"
)

// User представляет пользователя системы.
// Тэги `db` используются для маппинга с полями БД с помощью sqlx.
// Тэги `json` используются для (де)сериализации JSON.
// Инвариант: PasswordType и PasswordHash всегда обновляются вместе,
// по отдельности их менять нельзя.
type User struct {
	ID           int64        `db:"id" json:"id"`
	Name         string       `db:"name" json:"name"`
	PasswordType PasswordType `db:"password_type" json:"-"` // Не отправляем в JSON
	PasswordHash string       `db:"password_hash" json:"-"` // Не отправляем хеш пароля в JSON
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at" json:"updated_at"`
}

// RegisterRequest представляет тело запроса на регистрацию.
type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest представляет тело запроса на вход по паролю.
type LoginRequest struct {
	UserID   int64  `json:"user_id"`
	Password string `json:"password"`
}

// RefreshRequest представляет тело запроса на обновление access-токена.
// Если refresh-токен не передан, используется bearer-токен из заголовка.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenResponse представляет тело ответа с выданными токенами.
// ExpireAt - абсолютное время истечения access-токена (Unix, секунды).
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	ExpireAt     int64  `json:"expire_at"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// IdentityResponse представляет тело ответа с текущей личностью.
type IdentityResponse struct {
	SessionID string `json:"session_id"`
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	ExpireAt  int64  `json:"expire_at"`
}
