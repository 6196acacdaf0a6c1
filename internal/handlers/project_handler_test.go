package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yzx9/aim-server/internal/handlers"
	"github.com/yzx9/aim-server/internal/mocks"
	"github.com/yzx9/aim-server/internal/models"
	"github.com/yzx9/aim-server/internal/services"
)

func TestProjectHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		orgID          string
		body           string
		mockSetup      func(mockProjectService *mocks.ProjectService)
		expectedStatus int
	}{
		{
			name:  "Успешное создание",
			orgID: "10",
			body:  `{"name": "Backlog"}`,
			mockSetup: func(mockProjectService *mocks.ProjectService) {
				mockProjectService.EXPECT().Create(mock.Anything, int64(10), "Backlog").
					Return(&models.Project{ID: 5, OrganizationID: 10, Name: "Backlog"}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:  "Организация не найдена",
			orgID: "10",
			body:  `{"name": "Backlog"}`,
			mockSetup: func(mockProjectService *mocks.ProjectService) {
				mockProjectService.EXPECT().Create(mock.Anything, int64(10), "Backlog").
					Return(nil, services.ErrOrganizationNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:  "Пустое имя",
			orgID: "10",
			body:  `{"name": ""}`,
			mockSetup: func(mockProjectService *mocks.ProjectService) {
				mockProjectService.EXPECT().Create(mock.Anything, int64(10), "").
					Return(nil, services.ErrEmptyName).Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Нечисловой идентификатор организации",
			orgID:          "abc",
			body:           `{"name": "Backlog"}`,
			mockSetup:      func(_ *mocks.ProjectService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProjectService := mocks.NewProjectService(t)
			tt.mockSetup(mockProjectService)

			handler := handlers.NewProjectHandler(mockProjectService)
			req := httptest.NewRequest(http.MethodPost, "/api/organizations/"+tt.orgID+"/projects", strings.NewReader(tt.body))
			req = withURLParams(req, map[string]string{"orgID": tt.orgID})
			rr := httptest.NewRecorder()
			handler.Create(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestProjectHandler_AddField(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(mockProjectService *mocks.ProjectService)
		expectedStatus int
	}{
		{
			name: "Успешное добавление поля",
			body: `{"name": "estimate", "kind": "number", "default_value": 3.5}`,
			mockSetup: func(mockProjectService *mocks.ProjectService) {
				mockProjectService.EXPECT().
					AddField(mock.Anything, int64(5), models.CreateFieldRequest{
						Name: "estimate", Kind: models.FieldKindNumber, DefaultValue: float64(3.5),
					}).
					Return(&models.Field{ID: 100, ProjectID: 5, Name: "estimate", Kind: models.FieldKindNumber}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Неизвестный тип поля",
			body: `{"name": "estimate", "kind": "decimal"}`,
			mockSetup: func(mockProjectService *mocks.ProjectService) {
				mockProjectService.EXPECT().
					AddField(mock.Anything, int64(5), models.CreateFieldRequest{Name: "estimate", Kind: "decimal"}).
					Return(nil, services.ErrInvalidFieldKind).Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Значение по умолчанию не того типа",
			body: `{"name": "estimate", "kind": "number", "default_value": "many"}`,
			mockSetup: func(mockProjectService *mocks.ProjectService) {
				mockProjectService.EXPECT().
					AddField(mock.Anything, int64(5), models.CreateFieldRequest{
						Name: "estimate", Kind: models.FieldKindNumber, DefaultValue: "many",
					}).
					Return(nil, services.ErrInvalidValue).Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Проект не найден",
			body: `{"name": "estimate", "kind": "number"}`,
			mockSetup: func(mockProjectService *mocks.ProjectService) {
				mockProjectService.EXPECT().
					AddField(mock.Anything, int64(5), models.CreateFieldRequest{Name: "estimate", Kind: models.FieldKindNumber}).
					Return(nil, services.ErrProjectNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProjectService := mocks.NewProjectService(t)
			tt.mockSetup(mockProjectService)

			handler := handlers.NewProjectHandler(mockProjectService)
			req := httptest.NewRequest(http.MethodPost, "/api/projects/5/fields", strings.NewReader(tt.body))
			req = withURLParams(req, map[string]string{"id": "5"})
			rr := httptest.NewRecorder()
			handler.AddField(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestProjectHandler_ListFields(t *testing.T) {
	mockProjectService := mocks.NewProjectService(t)
	mockProjectService.EXPECT().ListFields(mock.Anything, int64(5)).
		Return([]models.Field{
			{ID: 100, ProjectID: 5, Name: "estimate", Kind: models.FieldKindNumber},
			{ID: 101, ProjectID: 5, Name: "status", Kind: models.FieldKindEnum},
		}, nil).Once()

	handler := handlers.NewProjectHandler(mockProjectService)
	req := httptest.NewRequest(http.MethodGet, "/api/projects/5/fields", nil)
	req = withURLParams(req, map[string]string{"id": "5"})
	rr := httptest.NewRecorder()
	handler.ListFields(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var fields []models.Field
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &fields))
	assert.Len(t, fields, 2)
}

func TestProjectHandler_RemoveField(t *testing.T) {
	tests := []struct {
		name           string
		fieldID        string
		mockSetup      func(mockProjectService *mocks.ProjectService)
		expectedStatus int
	}{
		{
			name:    "Успешное удаление",
			fieldID: "100",
			mockSetup: func(mockProjectService *mocks.ProjectService) {
				mockProjectService.EXPECT().RemoveField(mock.Anything, int64(5), int64(100)).
					Return(nil).Once()
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:    "Поле не найдено",
			fieldID: "100",
			mockSetup: func(mockProjectService *mocks.ProjectService) {
				mockProjectService.EXPECT().RemoveField(mock.Anything, int64(5), int64(100)).
					Return(services.ErrFieldNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Нечисловой идентификатор поля",
			fieldID:        "abc",
			mockSetup:      func(_ *mocks.ProjectService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProjectService := mocks.NewProjectService(t)
			tt.mockSetup(mockProjectService)

			handler := handlers.NewProjectHandler(mockProjectService)
			req := httptest.NewRequest(http.MethodDelete, "/api/projects/5/fields/"+tt.fieldID, nil)
			req = withURLParams(req, map[string]string{"id": "5", "fieldID": tt.fieldID})
			rr := httptest.NewRecorder()
			handler.RemoveField(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}
