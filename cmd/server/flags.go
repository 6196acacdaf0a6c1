package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	// Порт по умолчанию для HTTPS (непривилегированный).
	defaultServerPort = "8443"

	// Переменные окружения.
	envServerPort      = "SERVER_PORT"
	envTLSCertFile     = "TLS_CERT_FILE"
	envTLSKeyFile      = "TLS_KEY_FILE"
	envDatabaseDSN     = "DATABASE_DSN"
	envJWTSecretFile   = "JWT_SECRET_FILE" //nolint:gosec // Имя переменной окружения, не секрет
	envAccessTokenTTL  = "ACCESS_TOKEN_TTL"
	envRefreshTokenTTL = "REFRESH_TOKEN_TTL"
	envMachineID       = "MACHINE_ID"

	// Переменные окружения для MinIO.
	envMinioEndpoint     = "MINIO_ENDPOINT"
	envMinioUser         = "MINIO_USER"
	envMinioPassword     = "MINIO_PASSWORD"
	envMinioBucket       = "MINIO_BUCKET"
	defaultMinioEndpoint = "localhost:9000"
	defaultMinioUser     = "minioadmin"
	defaultMinioPassword = "minioadmin"
	defaultMinioBucket   = "aim-attachments"
)

// config хранит конфигурацию сервера.
type config struct {
	Port            string
	CertFile        string
	KeyFile         string
	DatabaseDSN     string
	JWTSecretFile   string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	MachineID       int64
	MinioEndpoint   string
	MinioUser       string
	MinioPassword   string
	MinioBucket     string
}

// parseFlags разбирает флаги и переменные окружения, возвращает config или ошибку.
// Флаг имеет приоритет над переменной окружения.
func parseFlags() (*config, error) {
	cfg := &config{}

	// Определяем флаги
	flag.StringVar(&cfg.Port, "port", "",
		fmt.Sprintf("Порт для запуска HTTPS-сервера (env: %s, default: %s)", envServerPort, defaultServerPort))
	flag.StringVar(&cfg.CertFile, "cert-file", "",
		fmt.Sprintf("Путь к файлу TLS-сертификата (env: %s)", envTLSCertFile))
	flag.StringVar(&cfg.KeyFile, "key-file", "",
		fmt.Sprintf("Путь к файлу TLS-ключа (env: %s)", envTLSKeyFile))
	flag.StringVar(&cfg.DatabaseDSN, "database-dsn", "",
		fmt.Sprintf("Строка подключения к базе данных (env: %s)", envDatabaseDSN))
	flag.StringVar(&cfg.JWTSecretFile, "jwt-secret-file", "",
		fmt.Sprintf("Путь к файлу с секретом для подписи токенов (env: %s)", envJWTSecretFile))
	flag.DurationVar(&cfg.AccessTokenTTL, "access-token-ttl", 0,
		fmt.Sprintf("Время жизни access-токена (env: %s)", envAccessTokenTTL))
	flag.DurationVar(&cfg.RefreshTokenTTL, "refresh-token-ttl", 0,
		fmt.Sprintf("Время жизни refresh-токена (env: %s)", envRefreshTokenTTL))
	flag.Int64Var(&cfg.MachineID, "machine-id", -1,
		fmt.Sprintf("Идентификатор узла для генерации ID, 0-1023 (env: %s)", envMachineID))
	flag.StringVar(&cfg.MinioEndpoint, "minio-endpoint", "",
		fmt.Sprintf("Адрес MinIO (env: %s, default: %s)", envMinioEndpoint, defaultMinioEndpoint))
	flag.StringVar(&cfg.MinioUser, "minio-user", "",
		fmt.Sprintf("Логин MinIO (env: %s)", envMinioUser))
	flag.StringVar(&cfg.MinioPassword, "minio-password", "",
		fmt.Sprintf("Пароль MinIO (env: %s)", envMinioPassword))
	flag.StringVar(&cfg.MinioBucket, "minio-bucket", "",
		fmt.Sprintf("Бакет MinIO для вложений (env: %s, default: %s)", envMinioBucket, defaultMinioBucket))

	// Парсим флаги
	flag.Parse()

	// Применяем переменные окружения, если флаги не заданы
	applyEnvString(&cfg.Port, envServerPort, defaultServerPort)
	applyEnvString(&cfg.CertFile, envTLSCertFile, "")
	applyEnvString(&cfg.KeyFile, envTLSKeyFile, "")
	applyEnvString(&cfg.DatabaseDSN, envDatabaseDSN, "")
	applyEnvString(&cfg.JWTSecretFile, envJWTSecretFile, "")
	applyEnvString(&cfg.MinioEndpoint, envMinioEndpoint, defaultMinioEndpoint)
	applyEnvString(&cfg.MinioUser, envMinioUser, defaultMinioUser)
	applyEnvString(&cfg.MinioPassword, envMinioPassword, defaultMinioPassword)
	applyEnvString(&cfg.MinioBucket, envMinioBucket, defaultMinioBucket)

	if cfg.AccessTokenTTL == 0 {
		if value, ok := os.LookupEnv(envAccessTokenTTL); ok {
			ttl, err := time.ParseDuration(value)
			if err != nil {
				return nil, fmt.Errorf("неверное значение %s: %w", envAccessTokenTTL, err)
			}
			cfg.AccessTokenTTL = ttl
		}
	}
	if cfg.RefreshTokenTTL == 0 {
		if value, ok := os.LookupEnv(envRefreshTokenTTL); ok {
			ttl, err := time.ParseDuration(value)
			if err != nil {
				return nil, fmt.Errorf("неверное значение %s: %w", envRefreshTokenTTL, err)
			}
			cfg.RefreshTokenTTL = ttl
		}
	}
	if cfg.MachineID < 0 {
		if value, ok := os.LookupEnv(envMachineID); ok {
			id, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("неверное значение %s: %w", envMachineID, err)
			}
			cfg.MachineID = id
		} else {
			cfg.MachineID = 0
		}
	}

	// Проверяем обязательные параметры
	if cfg.CertFile == "" {
		return nil, errors.New("не указан путь к файлу сертификата (--cert-file или " + envTLSCertFile + ")")
	}
	if cfg.KeyFile == "" {
		return nil, errors.New("не указан путь к файлу ключа (--key-file или " + envTLSKeyFile + ")")
	}
	if cfg.DatabaseDSN == "" {
		return nil, errors.New("не указана строка подключения к БД (--database-dsn или " + envDatabaseDSN + ")")
	}
	if cfg.JWTSecretFile == "" {
		return nil, errors.New("не указан путь к файлу с секретом (--jwt-secret-file или " + envJWTSecretFile + ")")
	}

	return cfg, nil
}

// applyEnvString подставляет значение переменной окружения или значение
// по умолчанию, если флаг не был задан.
func applyEnvString(target *string, envName, fallback string) {
	if *target != "" {
		return
	}
	if value, ok := os.LookupEnv(envName); ok {
		*target = value
		return
	}
	*target = fallback
}
