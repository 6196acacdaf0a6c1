package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yzx9/aim-server/internal/mocks"
	"github.com/yzx9/aim-server/internal/models"
	"github.com/yzx9/aim-server/internal/repository"
	"github.com/yzx9/aim-server/internal/services"
)

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		projectName string
		mockSetup   func(mockProjectRepo *mocks.ProjectRepository, mockOrgRepo *mocks.OrganizationRepository)
		expectedErr error
	}{
		{
			name:        "Успешное создание",
			projectName: "Backlog",
			mockSetup: func(mockProjectRepo *mocks.ProjectRepository, mockOrgRepo *mocks.OrganizationRepository) {
				mockOrgRepo.EXPECT().Find(ctx, int64(10)).
					Return(&models.Organization{ID: 10, Name: "Acme"}, nil).Once()
				mockProjectRepo.EXPECT().
					Create(ctx, mock.AnythingOfType("*models.Project")).
					Return(nil).Once()
			},
		},
		{
			name:        "Пустое имя",
			projectName: "",
			mockSetup:   func(_ *mocks.ProjectRepository, _ *mocks.OrganizationRepository) {},
			expectedErr: services.ErrEmptyName,
		},
		{
			name:        "Организация не существует",
			projectName: "Backlog",
			mockSetup: func(_ *mocks.ProjectRepository, mockOrgRepo *mocks.OrganizationRepository) {
				mockOrgRepo.EXPECT().Find(ctx, int64(10)).
					Return(nil, repository.ErrOrganizationNotFound).Once()
			},
			expectedErr: services.ErrOrganizationNotFound,
		},
		{
			name:        "Ошибка репозитория",
			projectName: "Backlog",
			mockSetup: func(mockProjectRepo *mocks.ProjectRepository, mockOrgRepo *mocks.OrganizationRepository) {
				mockOrgRepo.EXPECT().Find(ctx, int64(10)).
					Return(&models.Organization{ID: 10, Name: "Acme"}, nil).Once()
				mockProjectRepo.EXPECT().
					Create(ctx, mock.AnythingOfType("*models.Project")).
					Return(errors.New("some db error")).Once()
			},
			expectedErr: services.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProjectRepo := mocks.NewProjectRepository(t)
			mockOrgRepo := mocks.NewOrganizationRepository(t)
			tt.mockSetup(mockProjectRepo, mockOrgRepo)

			projectService := services.NewProjectService(mockProjectRepo, mockOrgRepo, &stubIDGen{})
			project, err := projectService.Create(ctx, 10, tt.projectName)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, project)
			} else {
				require.NoError(t, err)
				require.NotNil(t, project)
				assert.NotZero(t, project.ID)
				assert.Equal(t, int64(10), project.OrganizationID)
				assert.Equal(t, tt.projectName, project.Name)
			}
		})
	}
}

func TestProjectService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Проект не найден", func(t *testing.T) {
		mockProjectRepo := mocks.NewProjectRepository(t)
		mockProjectRepo.EXPECT().Find(ctx, int64(5)).
			Return(nil, repository.ErrProjectNotFound).Once()

		projectService := services.NewProjectService(mockProjectRepo, mocks.NewOrganizationRepository(t), &stubIDGen{})
		project, err := projectService.Get(ctx, 5)

		require.ErrorIs(t, err, services.ErrProjectNotFound)
		assert.Nil(t, project)
	})
}

func TestProjectService_AddField(t *testing.T) {
	ctx := context.Background()
	project := &models.Project{ID: 5, OrganizationID: 10, Name: "Backlog"}

	tests := []struct {
		name        string
		req         models.CreateFieldRequest
		mockSetup   func(mockProjectRepo *mocks.ProjectRepository)
		check       func(t *testing.T, field *models.Field)
		expectedErr error
	}{
		{
			name: "Числовое поле со значением по умолчанию",
			req:  models.CreateFieldRequest{Name: "estimate", Kind: models.FieldKindNumber, DefaultValue: float64(3.5)},
			mockSetup: func(mockProjectRepo *mocks.ProjectRepository) {
				mockProjectRepo.EXPECT().Find(ctx, int64(5)).Return(project, nil).Once()
				mockProjectRepo.EXPECT().
					CreateField(ctx, mock.AnythingOfType("*models.Field")).
					Return(nil).Once()
			},
			check: func(t *testing.T, field *models.Field) {
				require.NotNil(t, field.DefaultValueFloat)
				assert.InDelta(t, 3.5, *field.DefaultValueFloat, 0.0001)
				assert.Nil(t, field.DefaultValueInt)
				assert.Nil(t, field.DefaultValueString)
			},
		},
		{
			name: "Поле даты: значение как Unix-секунды",
			req:  models.CreateFieldRequest{Name: "due", Kind: models.FieldKindDatetime, DefaultValue: float64(1700000000)},
			mockSetup: func(mockProjectRepo *mocks.ProjectRepository) {
				mockProjectRepo.EXPECT().Find(ctx, int64(5)).Return(project, nil).Once()
				mockProjectRepo.EXPECT().
					CreateField(ctx, mock.AnythingOfType("*models.Field")).
					Return(nil).Once()
			},
			check: func(t *testing.T, field *models.Field) {
				require.NotNil(t, field.DefaultValueInt)
				assert.Equal(t, int64(1700000000), *field.DefaultValueInt)
			},
		},
		{
			name: "Enum-поле со строковым значением",
			req:  models.CreateFieldRequest{Name: "status", Kind: models.FieldKindEnum, DefaultValue: "open"},
			mockSetup: func(mockProjectRepo *mocks.ProjectRepository) {
				mockProjectRepo.EXPECT().Find(ctx, int64(5)).Return(project, nil).Once()
				mockProjectRepo.EXPECT().
					CreateField(ctx, mock.AnythingOfType("*models.Field")).
					Return(nil).Once()
			},
			check: func(t *testing.T, field *models.Field) {
				require.NotNil(t, field.DefaultValueString)
				assert.Equal(t, "open", *field.DefaultValueString)
			},
		},
		{
			name: "Поле без значения по умолчанию",
			req:  models.CreateFieldRequest{Name: "title", Kind: models.FieldKindString},
			mockSetup: func(mockProjectRepo *mocks.ProjectRepository) {
				mockProjectRepo.EXPECT().Find(ctx, int64(5)).Return(project, nil).Once()
				mockProjectRepo.EXPECT().
					CreateField(ctx, mock.AnythingOfType("*models.Field")).
					Return(nil).Once()
			},
			check: func(t *testing.T, field *models.Field) {
				assert.Nil(t, field.DefaultValueInt)
				assert.Nil(t, field.DefaultValueFloat)
				assert.Nil(t, field.DefaultValueString)
			},
		},
		{
			name:        "Пустое имя поля",
			req:         models.CreateFieldRequest{Name: "", Kind: models.FieldKindString},
			mockSetup:   func(_ *mocks.ProjectRepository) {},
			expectedErr: services.ErrEmptyName,
		},
		{
			name:        "Неизвестный тип поля",
			req:         models.CreateFieldRequest{Name: "estimate", Kind: "decimal"},
			mockSetup:   func(_ *mocks.ProjectRepository) {},
			expectedErr: services.ErrInvalidFieldKind,
		},
		{
			name: "Значение по умолчанию не соответствует типу",
			req:  models.CreateFieldRequest{Name: "estimate", Kind: models.FieldKindNumber, DefaultValue: "many"},
			mockSetup: func(mockProjectRepo *mocks.ProjectRepository) {
				mockProjectRepo.EXPECT().Find(ctx, int64(5)).Return(project, nil).Once()
			},
			expectedErr: services.ErrInvalidValue,
		},
		{
			name: "Проект не найден",
			req:  models.CreateFieldRequest{Name: "estimate", Kind: models.FieldKindNumber},
			mockSetup: func(mockProjectRepo *mocks.ProjectRepository) {
				mockProjectRepo.EXPECT().Find(ctx, int64(5)).
					Return(nil, repository.ErrProjectNotFound).Once()
			},
			expectedErr: services.ErrProjectNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProjectRepo := mocks.NewProjectRepository(t)
			tt.mockSetup(mockProjectRepo)

			projectService := services.NewProjectService(mockProjectRepo, mocks.NewOrganizationRepository(t), &stubIDGen{})
			field, err := projectService.AddField(ctx, 5, tt.req)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, field)
			} else {
				require.NoError(t, err)
				require.NotNil(t, field)
				assert.Equal(t, int64(5), field.ProjectID)
				assert.Equal(t, tt.req.Kind, field.Kind)
				tt.check(t, field)
			}
		})
	}
}

func TestProjectService_RemoveField(t *testing.T) {
	ctx := context.Background()
	fields := []models.Field{
		{ID: 100, ProjectID: 5, Name: "estimate", Kind: models.FieldKindNumber},
		{ID: 101, ProjectID: 5, Name: "status", Kind: models.FieldKindEnum},
	}

	t.Run("Успешное удаление", func(t *testing.T) {
		mockProjectRepo := mocks.NewProjectRepository(t)
		mockProjectRepo.EXPECT().ListFieldsByProject(ctx, int64(5)).Return(fields, nil).Once()
		mockProjectRepo.EXPECT().DeleteField(ctx, int64(100)).Return(nil).Once()

		projectService := services.NewProjectService(mockProjectRepo, mocks.NewOrganizationRepository(t), &stubIDGen{})
		require.NoError(t, projectService.RemoveField(ctx, 5, 100))
	})

	t.Run("Поле принадлежит другому проекту", func(t *testing.T) {
		mockProjectRepo := mocks.NewProjectRepository(t)
		mockProjectRepo.EXPECT().ListFieldsByProject(ctx, int64(5)).Return(fields, nil).Once()

		projectService := services.NewProjectService(mockProjectRepo, mocks.NewOrganizationRepository(t), &stubIDGen{})
		require.ErrorIs(t, projectService.RemoveField(ctx, 5, 999), services.ErrFieldNotFound)
	})
}
