package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/yzx9/aim-server/internal/models"
	"github.com/yzx9/aim-server/internal/services"
)

// ItemHandler обрабатывает HTTP-запросы, связанные с элементами проектов
// и их вложениями.
type ItemHandler struct {
	itemService services.ItemService
}

// NewItemHandler создает новый экземпляр ItemHandler.
func NewItemHandler(is services.ItemService) *ItemHandler {
	return &ItemHandler{itemService: is}
}

// Create обрабатывает POST запрос на создание элемента проекта.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Неверный идентификатор проекта", http.StatusBadRequest)
		return
	}

	var req models.CreateItemRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ItemHandler:Create] Ошибка декодирования запроса: %v", err)
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	item, err := h.itemService.Create(r.Context(), projectID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProjectNotFound):
			http.Error(w, "Проект не найден", http.StatusNotFound)
		case errors.Is(err, services.ErrUnknownField), errors.Is(err, services.ErrInvalidValue):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Printf("[ItemHandler:Create] Внутренняя ошибка при создании элемента в проекте %d: %v", projectID, err)
			http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// Get обрабатывает GET запрос на получение элемента по ID.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Неверный идентификатор элемента", http.StatusBadRequest)
		return
	}

	item, err := h.itemService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			http.Error(w, "Элемент не найден", http.StatusNotFound)
			return
		}
		log.Printf("[ItemHandler:Get] Внутренняя ошибка при получении элемента %d: %v", id, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// List обрабатывает GET запрос на получение страницы элементов проекта.
// Параметры пагинации - offset и limit в строке запроса.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Неверный идентификатор проекта", http.StatusBadRequest)
		return
	}

	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	items, err := h.itemService.List(r.Context(), projectID, offset, limit)
	if err != nil {
		log.Printf("[ItemHandler:List] Внутренняя ошибка для проекта %d: %v", projectID, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// Delete обрабатывает DELETE запрос на удаление элемента.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Неверный идентификатор элемента", http.StatusBadRequest)
		return
	}

	if err = h.itemService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			http.Error(w, "Элемент не найден", http.StatusNotFound)
			return
		}
		log.Printf("[ItemHandler:Delete] Внутренняя ошибка при удалении элемента %d: %v", id, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadAttachment обрабатывает POST запрос на загрузку вложения элемента.
// Тело запроса - содержимое файла, имя передается параметром filename.
func (h *ItemHandler) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Неверный идентификатор элемента", http.StatusBadRequest)
		return
	}

	filename := r.URL.Query().Get("filename")
	if filename == "" {
		http.Error(w, "Требуется параметр filename", http.StatusBadRequest)
		return
	}

	size, err := strconv.ParseInt(r.Header.Get("Content-Length"), 10, 64)
	if err != nil || size <= 0 {
		http.Error(w, "Неверный или отсутствующий заголовок Content-Length", http.StatusBadRequest)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	err = h.itemService.UploadAttachment(r.Context(), itemID, filename, r.Body, size, contentType)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			http.Error(w, "Элемент не найден", http.StatusNotFound)
			return
		}
		log.Printf("[ItemHandler:UploadAttachment] Внутренняя ошибка для элемента %d: %v", itemID, err)
		http.Error(w, "Внутренняя ошибка сервера при загрузке файла", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// DownloadAttachment обрабатывает GET запрос на скачивание вложения элемента.
func (h *ItemHandler) DownloadAttachment(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Неверный идентификатор элемента", http.StatusBadRequest)
		return
	}

	filename := chi.URLParam(r, "filename")
	if filename == "" {
		http.Error(w, "Требуется имя файла", http.StatusBadRequest)
		return
	}

	reader, err := h.itemService.DownloadAttachment(r.Context(), itemID, filename)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			http.Error(w, "Элемент не найден", http.StatusNotFound)
		case errors.Is(err, services.ErrAttachmentNotFound):
			http.Error(w, "Вложение не найдено", http.StatusNotFound)
		default:
			log.Printf("[ItemHandler:DownloadAttachment] Внутренняя ошибка для элемента %d: %v", itemID, err)
			http.Error(w, "Внутренняя ошибка сервера при скачивании файла", http.StatusInternalServerError)
		}
		return
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			log.Printf("[ItemHandler:DownloadAttachment] Ошибка закрытия reader: %v", closeErr)
		}
	}()

	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err = io.Copy(w, reader); err != nil {
		log.Printf("[ItemHandler:DownloadAttachment] Ошибка копирования данных в ответ: %v", err)
	}
}

// ListAttachments обрабатывает GET запрос на получение списка вложений элемента.
func (h *ItemHandler) ListAttachments(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Неверный идентификатор элемента", http.StatusBadRequest)
		return
	}

	names, err := h.itemService.ListAttachments(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			http.Error(w, "Элемент не найден", http.StatusNotFound)
			return
		}
		log.Printf("[ItemHandler:ListAttachments] Внутренняя ошибка для элемента %d: %v", itemID, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, names)
}
