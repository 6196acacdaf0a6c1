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

// ProjectRepository определяет методы для работы с проектами
// и их пользовательскими полями в хранилище.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	Find(ctx context.Context, id int64) (*models.Project, error)
	ListByOrganization(ctx context.Context, organizationID int64) ([]models.Project, error)

	CreateField(ctx context.Context, field *models.Field) error
	ListFieldsByProject(ctx context.Context, projectID int64) ([]models.Field, error)
	DeleteField(ctx context.Context, id int64) error
}

// postgresProjectRepository реализует ProjectRepository для PostgreSQL.
type postgresProjectRepository struct {
	db *sqlx.DB
}

// NewPostgresProjectRepository создает новый экземпляр репозитория проектов.
func NewPostgresProjectRepository(db *sqlx.DB) ProjectRepository {
	return &postgresProjectRepository{db: db}
}

// Create создает новый проект.
func (r *postgresProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := `INSERT INTO projects (id, organization_id, name) VALUES ($1, $2, $3)`

	_, err := r.db.ExecContext(ctx, query, project.ID, project.OrganizationID, project.Name)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			return ErrProjectExists
		}
		log.Printf("[Repo] Ошибка создания проекта %d: %v", project.ID, err)
		return fmt.Errorf("ошибка выполнения запроса на создание проекта: %w", err)
	}

	log.Printf("[Repo] Проект '%s' создан с ID %d в организации %d",
		project.Name, project.ID, project.OrganizationID)
	return nil
}

// Find находит проект по ID.
func (r *postgresProjectRepository) Find(ctx context.Context, id int64) (*models.Project, error) {
	query := `SELECT id, organization_id, name, created_at, updated_at FROM projects WHERE id=$1`
	var project models.Project

	err := r.db.GetContext(ctx, &project, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		log.Printf("[Repo] Ошибка при поиске проекта %d: %v", id, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение проекта: %w", err)
	}

	return &project, nil
}

// ListByOrganization возвращает проекты организации.
func (r *postgresProjectRepository) ListByOrganization(
	ctx context.Context,
	organizationID int64,
) ([]models.Project, error) {
	query := `SELECT id, organization_id, name, created_at, updated_at
	          FROM projects WHERE organization_id=$1 ORDER BY id`
	projects := make([]models.Project, 0)

	if err := r.db.SelectContext(ctx, &projects, query, organizationID); err != nil {
		log.Printf("[Repo] Ошибка при получении проектов организации %d: %v", organizationID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение списка проектов: %w", err)
	}

	return projects, nil
}

// CreateField добавляет пользовательское поле проекта.
func (r *postgresProjectRepository) CreateField(ctx context.Context, field *models.Field) error {
	query := `INSERT INTO project_fields
	          (id, project_id, name, kind, default_value_int, default_value_float, default_value_string)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		field.ID, field.ProjectID, field.Name, field.Kind,
		field.DefaultValueInt, field.DefaultValueFloat, field.DefaultValueString)
	if err != nil {
		log.Printf("[Repo] Ошибка создания поля %d проекта %d: %v", field.ID, field.ProjectID, err)
		return fmt.Errorf("ошибка выполнения запроса на создание поля проекта: %w", err)
	}

	log.Printf("[Repo] Поле '%s' (%s) создано с ID %d в проекте %d",
		field.Name, field.Kind, field.ID, field.ProjectID)
	return nil
}

// ListFieldsByProject возвращает все поля проекта.
func (r *postgresProjectRepository) ListFieldsByProject(
	ctx context.Context,
	projectID int64,
) ([]models.Field, error) {
	query := `SELECT id, project_id, name, kind, default_value_int, default_value_float, default_value_string
	          FROM project_fields WHERE project_id=$1 ORDER BY id`
	fields := make([]models.Field, 0)

	if err := r.db.SelectContext(ctx, &fields, query, projectID); err != nil {
		log.Printf("[Repo] Ошибка при получении полей проекта %d: %v", projectID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение полей проекта: %w", err)
	}

	return fields, nil
}

// DeleteField удаляет поле проекта по ID.
func (r *postgresProjectRepository) DeleteField(ctx context.Context, id int64) error {
	query := `DELETE FROM project_fields WHERE id=$1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Printf("[Repo] Ошибка удаления поля %d: %v", id, err)
		return fmt.Errorf("ошибка выполнения запроса на удаление поля проекта: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка получения количества удаленных строк: %w", err)
	}
	if rows == 0 {
		return ErrFieldNotFound
	}

	return nil
}

// Кастомные ошибки репозитория проектов.
var (
	ErrProjectNotFound = errors.New("проект не найден")
	ErrProjectExists   = errors.New("проект с таким ID уже существует")
	ErrFieldNotFound   = errors.New("поле проекта не найдено")
)
