package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/yzx9/aim-server/internal/models"
	"github.com/yzx9/aim-server/internal/services"
)

// ProjectHandler обрабатывает HTTP-запросы, связанные с проектами
// и их пользовательскими полями.
type ProjectHandler struct {
	projectService services.ProjectService
}

// NewProjectHandler создает новый экземпляр ProjectHandler.
func NewProjectHandler(ps services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

// Create обрабатывает POST запрос на создание проекта в организации.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	organizationID, err := pathID(r, "orgID")
	if err != nil {
		http.Error(w, "Неверный идентификатор организации", http.StatusBadRequest)
		return
	}

	var req models.CreateProjectRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ProjectHandler:Create] Ошибка декодирования запроса: %v", err)
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	project, err := h.projectService.Create(r.Context(), organizationID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyName):
			http.Error(w, "Имя проекта не может быть пустым", http.StatusBadRequest)
		case errors.Is(err, services.ErrOrganizationNotFound):
			http.Error(w, "Организация не найдена", http.StatusNotFound)
		default:
			log.Printf("[ProjectHandler:Create] Внутренняя ошибка при создании проекта: %v", err)
			http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, project)
}

// Get обрабатывает GET запрос на получение проекта по ID.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Неверный идентификатор проекта", http.StatusBadRequest)
		return
	}

	project, err := h.projectService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			http.Error(w, "Проект не найден", http.StatusNotFound)
			return
		}
		log.Printf("[ProjectHandler:Get] Внутренняя ошибка при получении проекта %d: %v", id, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, project)
}

// ListByOrganization обрабатывает GET запрос на получение проектов организации.
func (h *ProjectHandler) ListByOrganization(w http.ResponseWriter, r *http.Request) {
	organizationID, err := pathID(r, "orgID")
	if err != nil {
		http.Error(w, "Неверный идентификатор организации", http.StatusBadRequest)
		return
	}

	projects, err := h.projectService.ListByOrganization(r.Context(), organizationID)
	if err != nil {
		log.Printf("[ProjectHandler:ListByOrganization] Внутренняя ошибка для организации %d: %v", organizationID, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

// AddField обрабатывает POST запрос на добавление поля проекта.
func (h *ProjectHandler) AddField(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Неверный идентификатор проекта", http.StatusBadRequest)
		return
	}

	var req models.CreateFieldRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ProjectHandler:AddField] Ошибка декодирования запроса: %v", err)
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	field, err := h.projectService.AddField(r.Context(), projectID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyName),
			errors.Is(err, services.ErrInvalidFieldKind),
			errors.Is(err, services.ErrInvalidValue):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, services.ErrProjectNotFound):
			http.Error(w, "Проект не найден", http.StatusNotFound)
		default:
			log.Printf("[ProjectHandler:AddField] Внутренняя ошибка для проекта %d: %v", projectID, err)
			http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, field)
}

// ListFields обрабатывает GET запрос на получение полей проекта.
func (h *ProjectHandler) ListFields(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Неверный идентификатор проекта", http.StatusBadRequest)
		return
	}

	fields, err := h.projectService.ListFields(r.Context(), projectID)
	if err != nil {
		log.Printf("[ProjectHandler:ListFields] Внутренняя ошибка для проекта %d: %v", projectID, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, fields)
}

// RemoveField обрабатывает DELETE запрос на удаление поля проекта.
func (h *ProjectHandler) RemoveField(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Неверный идентификатор проекта", http.StatusBadRequest)
		return
	}
	fieldID, err := pathID(r, "fieldID")
	if err != nil {
		http.Error(w, "Неверный идентификатор поля", http.StatusBadRequest)
		return
	}

	if err = h.projectService.RemoveField(r.Context(), projectID, fieldID); err != nil {
		switch {
		case errors.Is(err, services.ErrFieldNotFound):
			http.Error(w, "Поле не найдено", http.StatusNotFound)
		case errors.Is(err, services.ErrProjectNotFound):
			http.Error(w, "Проект не найден", http.StatusNotFound)
		default:
			log.Printf("[ProjectHandler:RemoveField] Внутренняя ошибка при удалении поля %d: %v", fieldID, err)
			http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
