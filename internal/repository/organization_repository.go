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

// OrganizationRepository определяет методы для работы с организациями в хранилище.
type OrganizationRepository interface {
	Create(ctx context.Context, organization *models.Organization) error
	Find(ctx context.Context, id int64) (*models.Organization, error)
	List(ctx context.Context) ([]models.Organization, error)
}

// postgresOrganizationRepository реализует OrganizationRepository для PostgreSQL.
type postgresOrganizationRepository struct {
	db *sqlx.DB
}

// NewPostgresOrganizationRepository создает новый экземпляр репозитория организаций.
func NewPostgresOrganizationRepository(db *sqlx.DB) OrganizationRepository {
	return &postgresOrganizationRepository{db: db}
}

// Create создает новую организацию.
func (r *postgresOrganizationRepository) Create(ctx context.Context, organization *models.Organization) error {
	query := `INSERT INTO organizations (id, name) VALUES ($1, $2)`

	_, err := r.db.ExecContext(ctx, query, organization.ID, organization.Name)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			return ErrOrganizationExists
		}
		log.Printf("[Repo] Ошибка создания организации %d: %v", organization.ID, err)
		return fmt.Errorf("ошибка выполнения запроса на создание организации: %w", err)
	}

	log.Printf("[Repo] Организация '%s' создана с ID %d", organization.Name, organization.ID)
	return nil
}

// Find находит организацию по ID.
func (r *postgresOrganizationRepository) Find(ctx context.Context, id int64) (*models.Organization, error) {
	query := `SELECT id, name, created_at, updated_at FROM organizations WHERE id=$1`
	var organization models.Organization

	err := r.db.GetContext(ctx, &organization, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrganizationNotFound
		}
		log.Printf("[Repo] Ошибка при поиске организации %d: %v", id, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение организации: %w", err)
	}

	return &organization, nil
}

// List возвращает все организации.
func (r *postgresOrganizationRepository) List(ctx context.Context) ([]models.Organization, error) {
	query := `SELECT id, name, created_at, updated_at FROM organizations ORDER BY id`
	organizations := make([]models.Organization, 0)

	if err := r.db.SelectContext(ctx, &organizations, query); err != nil {
		log.Printf("[Repo] Ошибка при получении списка организаций: %v", err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение списка организаций: %w", err)
	}

	return organizations, nil
}

// Кастомные ошибки репозитория организаций.
var (
	ErrOrganizationNotFound = errors.New("организация не найдена")
	ErrOrganizationExists   = errors.New("организация с таким ID уже существует")
)
