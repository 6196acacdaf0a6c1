package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"github.com/yzx9/aim-server/internal/models"
)

// ItemRepository определяет методы для работы с элементами проектов.
type ItemRepository interface {
	// Create создает элемент вместе со значениями полей в одной транзакции.
	Create(ctx context.Context, item *models.Item) error
	// Find находит элемент вместе со значениями полей.
	Find(ctx context.Context, id int64) (*models.Item, error)
	// ListByProject возвращает страницу элементов проекта.
	ListByProject(ctx context.Context, projectID int64, offset, limit int) ([]models.Item, error)
	// Delete удаляет элемент и его значения.
	Delete(ctx context.Context, id int64) error
}

// postgresItemRepository реализует ItemRepository для PostgreSQL.
type postgresItemRepository struct {
	db *sqlx.DB
}

// NewPostgresItemRepository создает новый экземпляр репозитория элементов.
func NewPostgresItemRepository(db *sqlx.DB) ItemRepository {
	return &postgresItemRepository{db: db}
}

// Create создает элемент и его значения в одной транзакции:
// либо сохраняется все, либо ничего.
func (r *postgresItemRepository) Create(ctx context.Context, item *models.Item) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка открытия транзакции: %w", err)
	}
	// Откат безопасен и после успешного коммита.
	defer func() { _ = tx.Rollback() }()

	itemQuery := `INSERT INTO project_items (id, project_id) VALUES ($1, $2)`
	if _, err = tx.ExecContext(ctx, itemQuery, item.ID, item.ProjectID); err != nil {
		log.Printf("[Repo] Ошибка создания элемента %d: %v", item.ID, err)
		return fmt.Errorf("ошибка выполнения запроса на создание элемента: %w", err)
	}

	valueQuery := `INSERT INTO project_item_values (item_id, field_id, kind, value_int, value_float, value_string)
	               VALUES ($1, $2, $3, $4, $5, $6)`
	for _, value := range item.Values {
		if _, err = tx.ExecContext(ctx, valueQuery,
			item.ID, value.FieldID, value.Kind,
			value.ValueInt, value.ValueFloat, value.ValueString); err != nil {
			log.Printf("[Repo] Ошибка сохранения значения поля %d элемента %d: %v", value.FieldID, item.ID, err)
			return fmt.Errorf("ошибка выполнения запроса на сохранение значения поля: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}

	log.Printf("[Repo] Элемент %d создан в проекте %d со значениями %d полей",
		item.ID, item.ProjectID, len(item.Values))
	return nil
}

// Find находит элемент по ID вместе со значениями полей.
func (r *postgresItemRepository) Find(ctx context.Context, id int64) (*models.Item, error) {
	itemQuery := `SELECT id, project_id, created_at, updated_at FROM project_items WHERE id=$1`
	var item models.Item

	err := r.db.GetContext(ctx, &item, itemQuery, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		log.Printf("[Repo] Ошибка при поиске элемента %d: %v", id, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение элемента: %w", err)
	}

	valuesQuery := `SELECT item_id, field_id, kind, value_int, value_float, value_string
	                FROM project_item_values WHERE item_id=$1 ORDER BY field_id`
	values := make([]models.ItemValue, 0)
	if err = r.db.SelectContext(ctx, &values, valuesQuery, id); err != nil {
		log.Printf("[Repo] Ошибка при получении значений элемента %d: %v", id, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение значений элемента: %w", err)
	}
	item.Values = values

	return &item, nil
}

// ListByProject возвращает страницу элементов проекта вместе со значениями.
func (r *postgresItemRepository) ListByProject(
	ctx context.Context,
	projectID int64,
	offset, limit int,
) ([]models.Item, error) {
	itemsQuery := `SELECT id, project_id, created_at, updated_at
	               FROM project_items WHERE project_id=$1 ORDER BY id OFFSET $2 LIMIT $3`
	items := make([]models.Item, 0)

	if err := r.db.SelectContext(ctx, &items, itemsQuery, projectID, offset, limit); err != nil {
		log.Printf("[Repo] Ошибка при получении элементов проекта %d: %v", projectID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение списка элементов: %w", err)
	}

	for i := range items {
		valuesQuery := `SELECT item_id, field_id, kind, value_int, value_float, value_string
		                FROM project_item_values WHERE item_id=$1 ORDER BY field_id`
		values := make([]models.ItemValue, 0)
		if err := r.db.SelectContext(ctx, &values, valuesQuery, items[i].ID); err != nil {
			log.Printf("[Repo] Ошибка при получении значений элемента %d: %v", items[i].ID, err)
			return nil, fmt.Errorf("ошибка выполнения запроса на получение значений элемента: %w", err)
		}
		items[i].Values = values
	}

	return items, nil
}

// Delete удаляет элемент и его значения в одной транзакции.
func (r *postgresItemRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка открытия транзакции: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, `DELETE FROM project_item_values WHERE item_id=$1`, id); err != nil {
		log.Printf("[Repo] Ошибка удаления значений элемента %d: %v", id, err)
		return fmt.Errorf("ошибка выполнения запроса на удаление значений элемента: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM project_items WHERE id=$1`, id)
	if err != nil {
		log.Printf("[Repo] Ошибка удаления элемента %d: %v", id, err)
		return fmt.Errorf("ошибка выполнения запроса на удаление элемента: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка получения количества удаленных строк: %w", err)
	}
	if rows == 0 {
		return ErrItemNotFound
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}

	return nil
}

// Кастомные ошибки репозитория элементов.
var (
	ErrItemNotFound = errors.New("элемент не найден")
)
