package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/yzx9/aim-server/internal/models"
	"github.com/yzx9/aim-server/internal/services"
)

// OrganizationHandler обрабатывает HTTP-запросы, связанные с организациями.
type OrganizationHandler struct {
	orgService services.OrganizationService
}

// NewOrganizationHandler создает новый экземпляр OrganizationHandler.
func NewOrganizationHandler(os services.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: os}
}

// Create обрабатывает POST запрос на создание организации.
func (h *OrganizationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[OrgHandler:Create] Ошибка декодирования запроса: %v", err)
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	organization, err := h.orgService.Create(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, services.ErrEmptyName) {
			http.Error(w, "Имя организации не может быть пустым", http.StatusBadRequest)
			return
		}
		log.Printf("[OrgHandler:Create] Внутренняя ошибка при создании организации: %v", err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, organization)
}

// Get обрабатывает GET запрос на получение организации по ID.
func (h *OrganizationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Неверный идентификатор организации", http.StatusBadRequest)
		return
	}

	organization, err := h.orgService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrOrganizationNotFound) {
			http.Error(w, "Организация не найдена", http.StatusNotFound)
			return
		}
		log.Printf("[OrgHandler:Get] Внутренняя ошибка при получении организации %d: %v", id, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, organization)
}

// List обрабатывает GET запрос на получение списка организаций.
func (h *OrganizationHandler) List(w http.ResponseWriter, r *http.Request) {
	organizations, err := h.orgService.List(r.Context())
	if err != nil {
		log.Printf("[OrgHandler:List] Внутренняя ошибка при получении списка организаций: %v", err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, organizations)
}

// pathID извлекает из URL числовой параметр с заданным именем.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
