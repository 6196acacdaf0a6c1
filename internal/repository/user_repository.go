package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/yzx9/aim-server/internal/models"
)

// Коды ошибок PostgreSQL.
const (
	pgUniqueViolationCode = "23505"
)

// UserRepository определяет методы для работы с данными пользователей в хранилище.
type UserRepository interface {
	// Find находит пользователя по ID. Возвращает ErrUserNotFound, если его нет.
	Find(ctx context.Context, id int64) (*models.User, error)
	// Create создает нового пользователя с заранее сгенерированным ID.
	Create(ctx context.Context, user *models.User) error
	// Save сохраняет пользователя целиком (идемпотентный upsert по ID).
	Save(ctx context.Context, user *models.User) error
	// UpdatePassword обновляет тип и хеш пароля одним запросом.
	// Поля всегда меняются вместе - по отдельности их обновлять нельзя.
	UpdatePassword(ctx context.Context, id int64, passwordType models.PasswordType, passwordHash string) error
}

// postgresUserRepository реализует UserRepository для PostgreSQL.
type postgresUserRepository struct {
	db *sqlx.DB
}

// NewPostgresUserRepository создает новый экземпляр репозитория пользователей для PostgreSQL.
func NewPostgresUserRepository(db *sqlx.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

// Find находит пользователя по его ID.
func (r *postgresUserRepository) Find(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT id, name, password_type, password_hash, created_at, updated_at FROM users WHERE id=$1`
	var user models.User

	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[Repo] Пользователь с ID %d не найден", id)
			return nil, ErrUserNotFound
		}
		log.Printf("[Repo] Ошибка при поиске пользователя %d: %v", id, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение пользователя: %w", err)
	}

	return &user, nil
}

// Create создает нового пользователя в базе данных.
func (r *postgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (id, name, password_type, password_hash) VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query, user.ID, user.Name, user.PasswordType, user.PasswordHash)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			log.Printf("[Repo] Ошибка создания пользователя: ID %d уже существует", user.ID)
			return ErrUserExists
		}
		log.Printf("[Repo] Непредвиденная ошибка при создании пользователя %d: %v", user.ID, err)
		return fmt.Errorf("ошибка выполнения запроса на создание пользователя: %w", err)
	}

	log.Printf("[Repo] Пользователь '%s' успешно создан с ID %d", user.Name, user.ID)
	return nil
}

// Save сохраняет пользователя целиком: вставка или обновление по ID.
func (r *postgresUserRepository) Save(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (id, name, password_type, password_hash)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (id) DO UPDATE
	          SET name = EXCLUDED.name,
	              password_type = EXCLUDED.password_type,
	              password_hash = EXCLUDED.password_hash,
	              updated_at = now()`

	_, err := r.db.ExecContext(ctx, query, user.ID, user.Name, user.PasswordType, user.PasswordHash)
	if err != nil {
		log.Printf("[Repo] Ошибка сохранения пользователя %d: %v", user.ID, err)
		return fmt.Errorf("ошибка выполнения запроса на сохранение пользователя: %w", err)
	}

	return nil
}

// UpdatePassword обновляет тип и хеш пароля пользователя одним запросом,
// чтобы запись никогда не оказалась с рассогласованными полями.
func (r *postgresUserRepository) UpdatePassword(
	ctx context.Context,
	id int64,
	passwordType models.PasswordType,
	passwordHash string,
) error {
	query := `UPDATE users SET password_type = $2, password_hash = $3, updated_at = now() WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, passwordType, passwordHash)
	if err != nil {
		log.Printf("[Repo] Ошибка обновления пароля пользователя %d: %v", id, err)
		return fmt.Errorf("ошибка выполнения запроса на обновление пароля: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка получения количества обновленных строк: %w", err)
	}
	if rows == 0 {
		log.Printf("[Repo] Обновление пароля: пользователь %d не найден", id)
		return ErrUserNotFound
	}

	return nil
}

// Кастомные ошибки репозитория пользователей.
var (
	ErrUserNotFound = errors.New("пользователь не найден")
	ErrUserExists   = errors.New("пользователь с таким ID уже существует")
)
