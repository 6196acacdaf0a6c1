// Package auth реализует ядро аутентификации: политику хеширования паролей,
// кодек подписанных токенов и сессии с access/refresh-токенами.
package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Значения по умолчанию для времени жизни токенов.
const (
	DefaultAccessTokenTTL  = 5 * time.Minute
	DefaultRefreshTokenTTL = 30 * 24 * time.Hour
)

// ErrEmptySecret - файл с секретом пуст или содержит только пробелы.
var ErrEmptySecret = errors.New("секрет подписи токенов пуст")

// Config содержит настройки ядра аутентификации.
// Создается один раз при старте в cmd/server и передается явно во все
// компоненты - никаких глобальных переменных уровня пакета.
type Config struct {
	// JWTSecret - симметричный ключ подписи токенов (HS256).
	JWTSecret []byte
	// AccessTokenTTL - время жизни access-токена.
	AccessTokenTTL time.Duration
	// RefreshTokenTTL - время жизни refresh-токена.
	RefreshTokenTTL time.Duration
	// Now - источник текущего времени. Подменяется в тестах.
	// Если nil, используется time.Now.
	Now func() time.Time
}

// NewConfig создает конфигурацию ядра аутентификации.
// Нулевые TTL заменяются значениями по умолчанию.
func NewConfig(jwtSecret []byte, accessTTL, refreshTTL time.Duration) *Config {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTokenTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTokenTTL
	}
	return &Config{
		JWTSecret:       jwtSecret,
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: refreshTTL,
	}
}

// LoadSecretFromFile читает симметричный ключ подписи из файла.
// Ключ загружается один раз при старте процесса, ротация не поддерживается.
func LoadSecretFromFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла секрета '%s': %w", path, err)
	}

	secret := strings.TrimSpace(string(data))
	if secret == "" {
		return nil, ErrEmptySecret
	}

	return []byte(secret), nil
}

// now возвращает текущее время с учетом подмены в тестах.
func (c *Config) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
