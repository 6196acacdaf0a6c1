package services_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yzx9/aim-server/internal/mocks"
	"github.com/yzx9/aim-server/internal/models"
	"github.com/yzx9/aim-server/internal/repository"
	"github.com/yzx9/aim-server/internal/services"
	"github.com/yzx9/aim-server/internal/storage"
)

func stringPtr(v string) *string { return &v }

func newItemServiceForTest(t *testing.T) (
	services.ItemService,
	*mocks.ItemRepository,
	*mocks.ProjectRepository,
	*mocks.FileStorage,
) {
	t.Helper()
	mockItemRepo := mocks.NewItemRepository(t)
	mockProjectRepo := mocks.NewProjectRepository(t)
	mockFileStorage := mocks.NewFileStorage(t)
	itemService := services.NewItemService(mockItemRepo, mockProjectRepo, mockFileStorage, &stubIDGen{})
	return itemService, mockItemRepo, mockProjectRepo, mockFileStorage
}

func TestItemService_Create(t *testing.T) {
	ctx := context.Background()
	project := &models.Project{ID: 5, OrganizationID: 10, Name: "Backlog"}
	fields := []models.Field{
		{ID: 100, ProjectID: 5, Name: "estimate", Kind: models.FieldKindNumber},
		{ID: 101, ProjectID: 5, Name: "status", Kind: models.FieldKindEnum, DefaultValueString: stringPtr("open")},
	}

	t.Run("Создание со значением и подстановкой значения по умолчанию", func(t *testing.T) {
		itemService, mockItemRepo, mockProjectRepo, _ := newItemServiceForTest(t)
		mockProjectRepo.EXPECT().Find(ctx, int64(5)).Return(project, nil).Once()
		mockProjectRepo.EXPECT().ListFieldsByProject(ctx, int64(5)).Return(fields, nil).Once()

		var created *models.Item
		mockItemRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*models.Item")).
			Run(func(_ context.Context, item *models.Item) { created = item }).
			Return(nil).Once()

		item, err := itemService.Create(ctx, 5, models.CreateItemRequest{
			Values: []models.ItemValueInput{{FieldID: 100, Value: float64(8)}},
		})

		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, created, item)
		require.Len(t, item.Values, 2)

		// Переданное значение
		assert.Equal(t, int64(100), item.Values[0].FieldID)
		require.NotNil(t, item.Values[0].ValueFloat)
		assert.InDelta(t, 8.0, *item.Values[0].ValueFloat, 0.0001)

		// Значение по умолчанию для непереданного поля
		assert.Equal(t, int64(101), item.Values[1].FieldID)
		require.NotNil(t, item.Values[1].ValueString)
		assert.Equal(t, "open", *item.Values[1].ValueString)
	})

	t.Run("Переданное значение перекрывает значение по умолчанию", func(t *testing.T) {
		itemService, mockItemRepo, mockProjectRepo, _ := newItemServiceForTest(t)
		mockProjectRepo.EXPECT().Find(ctx, int64(5)).Return(project, nil).Once()
		mockProjectRepo.EXPECT().ListFieldsByProject(ctx, int64(5)).Return(fields, nil).Once()
		mockItemRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*models.Item")).
			Return(nil).Once()

		item, err := itemService.Create(ctx, 5, models.CreateItemRequest{
			Values: []models.ItemValueInput{{FieldID: 101, Value: "closed"}},
		})

		require.NoError(t, err)
		require.Len(t, item.Values, 1)
		assert.Equal(t, "closed", *item.Values[0].ValueString)
	})

	t.Run("Значение ссылается на чужое поле", func(t *testing.T) {
		itemService, _, mockProjectRepo, _ := newItemServiceForTest(t)
		mockProjectRepo.EXPECT().Find(ctx, int64(5)).Return(project, nil).Once()
		mockProjectRepo.EXPECT().ListFieldsByProject(ctx, int64(5)).Return(fields, nil).Once()

		item, err := itemService.Create(ctx, 5, models.CreateItemRequest{
			Values: []models.ItemValueInput{{FieldID: 999, Value: "whatever"}},
		})

		require.ErrorIs(t, err, services.ErrUnknownField)
		assert.Nil(t, item)
	})

	t.Run("Значение не соответствует типу поля", func(t *testing.T) {
		itemService, _, mockProjectRepo, _ := newItemServiceForTest(t)
		mockProjectRepo.EXPECT().Find(ctx, int64(5)).Return(project, nil).Once()
		mockProjectRepo.EXPECT().ListFieldsByProject(ctx, int64(5)).Return(fields, nil).Once()

		item, err := itemService.Create(ctx, 5, models.CreateItemRequest{
			Values: []models.ItemValueInput{{FieldID: 100, Value: "eight"}},
		})

		require.ErrorIs(t, err, services.ErrInvalidValue)
		assert.Nil(t, item)
	})

	t.Run("Проект не существует", func(t *testing.T) {
		itemService, _, mockProjectRepo, _ := newItemServiceForTest(t)
		mockProjectRepo.EXPECT().Find(ctx, int64(5)).
			Return(nil, repository.ErrProjectNotFound).Once()

		item, err := itemService.Create(ctx, 5, models.CreateItemRequest{})

		require.ErrorIs(t, err, services.ErrProjectNotFound)
		assert.Nil(t, item)
	})
}

func TestItemService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Границы пагинации нормализуются", func(t *testing.T) {
		itemService, mockItemRepo, _, _ := newItemServiceForTest(t)
		// Отрицательное смещение и нулевой лимит заменяются значениями по умолчанию
		mockItemRepo.EXPECT().ListByProject(ctx, int64(5), 0, 50).
			Return([]models.Item{}, nil).Once()

		_, err := itemService.List(ctx, 5, -10, 0)
		require.NoError(t, err)
	})

	t.Run("Лимит ограничен сверху", func(t *testing.T) {
		itemService, mockItemRepo, _, _ := newItemServiceForTest(t)
		mockItemRepo.EXPECT().ListByProject(ctx, int64(5), 20, 500).
			Return([]models.Item{}, nil).Once()

		_, err := itemService.List(ctx, 5, 20, 100500)
		require.NoError(t, err)
	})
}

func TestItemService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Удаление вместе с вложениями", func(t *testing.T) {
		itemService, mockItemRepo, _, mockFileStorage := newItemServiceForTest(t)
		mockItemRepo.EXPECT().Delete(ctx, int64(77)).Return(nil).Once()
		mockFileStorage.EXPECT().ListFiles(ctx, "items/77/").
			Return([]string{"items/77/report.pdf", "items/77/photo.png"}, nil).Once()
		mockFileStorage.EXPECT().DeleteFile(ctx, "items/77/report.pdf").Return(nil).Once()
		mockFileStorage.EXPECT().DeleteFile(ctx, "items/77/photo.png").Return(nil).Once()

		require.NoError(t, itemService.Delete(ctx, 77))
	})

	t.Run("Ошибка очистки вложений не роняет удаление", func(t *testing.T) {
		itemService, mockItemRepo, _, mockFileStorage := newItemServiceForTest(t)
		mockItemRepo.EXPECT().Delete(ctx, int64(77)).Return(nil).Once()
		mockFileStorage.EXPECT().ListFiles(ctx, "items/77/").
			Return(nil, errors.New("storage unavailable")).Once()

		require.NoError(t, itemService.Delete(ctx, 77))
	})

	t.Run("Элемент не найден", func(t *testing.T) {
		itemService, mockItemRepo, _, _ := newItemServiceForTest(t)
		mockItemRepo.EXPECT().Delete(ctx, int64(77)).Return(repository.ErrItemNotFound).Once()

		require.ErrorIs(t, itemService.Delete(ctx, 77), services.ErrItemNotFound)
	})
}

func TestItemService_Attachments(t *testing.T) {
	ctx := context.Background()
	item := &models.Item{ID: 77, ProjectID: 5}

	t.Run("Загрузка вложения", func(t *testing.T) {
		itemService, mockItemRepo, _, mockFileStorage := newItemServiceForTest(t)
		mockItemRepo.EXPECT().Find(ctx, int64(77)).Return(item, nil).Once()
		mockFileStorage.EXPECT().
			UploadFile(ctx, "items/77/report.pdf", mock.Anything, int64(1024), "application/pdf").
			Return(nil).Once()

		err := itemService.UploadAttachment(ctx, 77, "report.pdf", strings.NewReader("data"), 1024, "application/pdf")
		require.NoError(t, err)
	})

	t.Run("Имя файла обрезается до базового", func(t *testing.T) {
		itemService, mockItemRepo, _, mockFileStorage := newItemServiceForTest(t)
		mockItemRepo.EXPECT().Find(ctx, int64(77)).Return(item, nil).Once()
		// Попытка выйти за префикс элемента поглощается path.Base
		mockFileStorage.EXPECT().
			UploadFile(ctx, "items/77/passwd", mock.Anything, int64(10), "text/plain").
			Return(nil).Once()

		err := itemService.UploadAttachment(ctx, 77, "../../etc/passwd", strings.NewReader("data"), 10, "text/plain")
		require.NoError(t, err)
	})

	t.Run("Скачивание вложения", func(t *testing.T) {
		itemService, mockItemRepo, _, mockFileStorage := newItemServiceForTest(t)
		mockItemRepo.EXPECT().Find(ctx, int64(77)).Return(item, nil).Once()
		mockFileStorage.EXPECT().DownloadFile(ctx, "items/77/report.pdf").
			Return(io.NopCloser(strings.NewReader("file content")), nil).Once()

		reader, err := itemService.DownloadAttachment(ctx, 77, "report.pdf")
		require.NoError(t, err)
		defer reader.Close()

		content, err := io.ReadAll(reader)
		require.NoError(t, err)
		assert.Equal(t, "file content", string(content))
	})

	t.Run("Вложение не найдено", func(t *testing.T) {
		itemService, mockItemRepo, _, mockFileStorage := newItemServiceForTest(t)
		mockItemRepo.EXPECT().Find(ctx, int64(77)).Return(item, nil).Once()
		mockFileStorage.EXPECT().DownloadFile(ctx, "items/77/missing.pdf").
			Return(nil, storage.ErrObjectNotFound).Once()

		reader, err := itemService.DownloadAttachment(ctx, 77, "missing.pdf")
		require.ErrorIs(t, err, services.ErrAttachmentNotFound)
		assert.Nil(t, reader)
	})

	t.Run("Список вложений как имена файлов", func(t *testing.T) {
		itemService, mockItemRepo, _, mockFileStorage := newItemServiceForTest(t)
		mockItemRepo.EXPECT().Find(ctx, int64(77)).Return(item, nil).Once()
		mockFileStorage.EXPECT().ListFiles(ctx, "items/77/").
			Return([]string{"items/77/report.pdf", "items/77/photo.png"}, nil).Once()

		names, err := itemService.ListAttachments(ctx, 77)
		require.NoError(t, err)
		assert.Equal(t, []string{"report.pdf", "photo.png"}, names)
	})

	t.Run("Элемент не найден", func(t *testing.T) {
		itemService, mockItemRepo, _, _ := newItemServiceForTest(t)
		mockItemRepo.EXPECT().Find(ctx, int64(77)).
			Return(nil, repository.ErrItemNotFound).Once()

		err := itemService.UploadAttachment(ctx, 77, "report.pdf", strings.NewReader("data"), 4, "application/pdf")
		require.ErrorIs(t, err, services.ErrItemNotFound)
	})
}
