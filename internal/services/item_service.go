package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path"

	"github.com/yzx9/aim-server/internal/idgen"
	"github.com/yzx9/aim-server/internal/models"
	"github.com/yzx9/aim-server/internal/repository"
	"github.com/yzx9/aim-server/internal/storage"
)

// Кастомные ошибки сервиса элементов.
var (
	ErrItemNotFound       = errors.New("элемент не найден")
	ErrUnknownField       = errors.New("значение ссылается на несуществующее поле проекта")
	ErrAttachmentNotFound = errors.New("вложение не найдено")
)

// Границы пагинации списка элементов.
const (
	defaultItemPageSize = 50
	maxItemPageSize     = 500
)

// ItemService определяет интерфейс для работы с элементами проекта
// и их вложениями.
type ItemService interface {
	Create(ctx context.Context, projectID int64, req models.CreateItemRequest) (*models.Item, error)
	Get(ctx context.Context, id int64) (*models.Item, error)
	List(ctx context.Context, projectID int64, offset, limit int) ([]models.Item, error)
	Delete(ctx context.Context, id int64) error

	UploadAttachment(ctx context.Context, itemID int64, filename string, reader io.Reader, size int64, contentType string) error
	DownloadAttachment(ctx context.Context, itemID int64, filename string) (io.ReadCloser, error)
	ListAttachments(ctx context.Context, itemID int64) ([]string, error)
}

// Убедимся, что itemService удовлетворяет интерфейсу.
var _ ItemService = (*itemService)(nil)

type itemService struct {
	itemRepo    repository.ItemRepository
	projectRepo repository.ProjectRepository
	fileStorage storage.FileStorage
	idGen       idgen.Generator
}

// NewItemService создает новый экземпляр сервиса элементов.
func NewItemService(
	itemRepo repository.ItemRepository,
	projectRepo repository.ProjectRepository,
	fileStorage storage.FileStorage,
	idGen idgen.Generator,
) ItemService {
	return &itemService{
		itemRepo:    itemRepo,
		projectRepo: projectRepo,
		fileStorage: fileStorage,
		idGen:       idGen,
	}
}

// Create создает элемент проекта. Каждое переданное значение должно
// ссылаться на существующее поле проекта и соответствовать его типу.
// Поля без переданного значения получают значение по умолчанию, если оно есть.
func (s *itemService) Create(ctx context.Context, projectID int64, req models.CreateItemRequest) (*models.Item, error) {
	if _, err := s.projectRepo.Find(ctx, projectID); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, ErrProjectNotFound
		}
		log.Printf("[ItemService] Ошибка репозитория при поиске проекта %d: %v", projectID, err)
		return nil, ErrInternal
	}

	fields, err := s.projectRepo.ListFieldsByProject(ctx, projectID)
	if err != nil {
		log.Printf("[ItemService] Ошибка репозитория при получении полей проекта %d: %v", projectID, err)
		return nil, ErrInternal
	}
	fieldsByID := make(map[int64]models.Field, len(fields))
	for _, field := range fields {
		fieldsByID[field.ID] = field
	}

	id, err := s.idGen.Generate()
	if err != nil {
		log.Printf("[ItemService] Ошибка генерации идентификатора элемента: %v", err)
		return nil, ErrInternal
	}

	item := &models.Item{ID: id, ProjectID: projectID}
	provided := make(map[int64]bool, len(req.Values))
	for _, input := range req.Values {
		field, ok := fieldsByID[input.FieldID]
		if !ok {
			return nil, fmt.Errorf("%w: field_id=%d", ErrUnknownField, input.FieldID)
		}
		valueInt, valueFloat, valueString, err := coerceFieldValue(field.Kind, input.Value)
		if err != nil {
			return nil, err
		}
		item.Values = append(item.Values, models.ItemValue{
			ItemID:      id,
			FieldID:     field.ID,
			Kind:        field.Kind,
			ValueInt:    valueInt,
			ValueFloat:  valueFloat,
			ValueString: valueString,
		})
		provided[field.ID] = true
	}

	// Поля, не упомянутые в запросе, заполняются значениями по умолчанию.
	for _, field := range fields {
		if provided[field.ID] || !fieldHasDefault(field) {
			continue
		}
		item.Values = append(item.Values, models.ItemValue{
			ItemID:      id,
			FieldID:     field.ID,
			Kind:        field.Kind,
			ValueInt:    field.DefaultValueInt,
			ValueFloat:  field.DefaultValueFloat,
			ValueString: field.DefaultValueString,
		})
	}

	if err = s.itemRepo.Create(ctx, item); err != nil {
		log.Printf("[ItemService] Ошибка репозитория при создании элемента в проекте %d: %v", projectID, err)
		return nil, ErrInternal
	}

	log.Printf("[ItemService] Элемент %d создан в проекте %d (%d значений)", id, projectID, len(item.Values))
	return item, nil
}

// Get возвращает элемент вместе со значениями полей.
func (s *itemService) Get(ctx context.Context, id int64) (*models.Item, error) {
	item, err := s.itemRepo.Find(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		log.Printf("[ItemService] Ошибка репозитория при поиске элемента %d: %v", id, err)
		return nil, ErrInternal
	}
	return item, nil
}

// List возвращает страницу элементов проекта.
func (s *itemService) List(ctx context.Context, projectID int64, offset, limit int) ([]models.Item, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultItemPageSize
	}
	if limit > maxItemPageSize {
		limit = maxItemPageSize
	}

	items, err := s.itemRepo.ListByProject(ctx, projectID, offset, limit)
	if err != nil {
		log.Printf("[ItemService] Ошибка репозитория при получении элементов проекта %d: %v", projectID, err)
		return nil, ErrInternal
	}
	return items, nil
}

// Delete удаляет элемент вместе со значениями и вложениями.
func (s *itemService) Delete(ctx context.Context, id int64) error {
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return ErrItemNotFound
		}
		log.Printf("[ItemService] Ошибка репозитория при удалении элемента %d: %v", id, err)
		return ErrInternal
	}

	// Вложения чистим по возможности: запись уже удалена,
	// осиротевшие объекты не должны ронять запрос.
	keys, err := s.fileStorage.ListFiles(ctx, attachmentPrefix(id))
	if err != nil {
		log.Printf("[ItemService] Не удалось получить вложения элемента %d: %v", id, err)
		return nil
	}
	for _, key := range keys {
		if err = s.fileStorage.DeleteFile(ctx, key); err != nil {
			log.Printf("[ItemService] Не удалось удалить вложение '%s': %v", key, err)
		}
	}

	log.Printf("[ItemService] Элемент %d удален", id)
	return nil
}

// UploadAttachment загружает вложение элемента в объектное хранилище.
func (s *itemService) UploadAttachment(
	ctx context.Context,
	itemID int64,
	filename string,
	reader io.Reader,
	size int64,
	contentType string,
) error {
	if _, err := s.Get(ctx, itemID); err != nil {
		return err
	}

	key := attachmentKey(itemID, filename)
	if err := s.fileStorage.UploadFile(ctx, key, reader, size, contentType); err != nil {
		log.Printf("[ItemService] Ошибка загрузки вложения '%s': %v", key, err)
		return ErrInternal
	}

	log.Printf("[ItemService] Вложение '%s' загружено для элемента %d", filename, itemID)
	return nil
}

// DownloadAttachment возвращает содержимое вложения элемента.
// Возвращенный io.ReadCloser нужно закрыть после использования.
func (s *itemService) DownloadAttachment(ctx context.Context, itemID int64, filename string) (io.ReadCloser, error) {
	if _, err := s.Get(ctx, itemID); err != nil {
		return nil, err
	}

	reader, err := s.fileStorage.DownloadFile(ctx, attachmentKey(itemID, filename))
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, ErrAttachmentNotFound
		}
		log.Printf("[ItemService] Ошибка скачивания вложения '%s' элемента %d: %v", filename, itemID, err)
		return nil, ErrInternal
	}
	return reader, nil
}

// ListAttachments возвращает имена файлов вложений элемента.
func (s *itemService) ListAttachments(ctx context.Context, itemID int64) ([]string, error) {
	if _, err := s.Get(ctx, itemID); err != nil {
		return nil, err
	}

	keys, err := s.fileStorage.ListFiles(ctx, attachmentPrefix(itemID))
	if err != nil {
		log.Printf("[ItemService] Ошибка листинга вложений элемента %d: %v", itemID, err)
		return nil, ErrInternal
	}

	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, path.Base(key))
	}
	return names, nil
}

func fieldHasDefault(field models.Field) bool {
	return field.DefaultValueInt != nil || field.DefaultValueFloat != nil || field.DefaultValueString != nil
}

func attachmentPrefix(itemID int64) string {
	return fmt.Sprintf("items/%d/", itemID)
}

func attachmentKey(itemID int64, filename string) string {
	// Только базовое имя файла: ключ не должен выходить за префикс элемента.
	return attachmentPrefix(itemID) + path.Base(filename)
}
