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

func TestOrganizationService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		orgName     string
		mockSetup   func(mockOrgRepo *mocks.OrganizationRepository)
		expectedErr error
	}{
		{
			name:    "Успешное создание",
			orgName: "Acme",
			mockSetup: func(mockOrgRepo *mocks.OrganizationRepository) {
				mockOrgRepo.EXPECT().
					Create(ctx, mock.AnythingOfType("*models.Organization")).
					Return(nil).Once()
			},
		},
		{
			name:        "Пустое имя",
			orgName:     "",
			mockSetup:   func(_ *mocks.OrganizationRepository) {},
			expectedErr: services.ErrEmptyName,
		},
		{
			name:    "Ошибка репозитория",
			orgName: "Acme",
			mockSetup: func(mockOrgRepo *mocks.OrganizationRepository) {
				mockOrgRepo.EXPECT().
					Create(ctx, mock.AnythingOfType("*models.Organization")).
					Return(errors.New("some db error")).Once()
			},
			expectedErr: services.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrgRepo := mocks.NewOrganizationRepository(t)
			tt.mockSetup(mockOrgRepo)

			orgService := services.NewOrganizationService(mockOrgRepo, &stubIDGen{})
			organization, err := orgService.Create(ctx, tt.orgName)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, organization)
			} else {
				require.NoError(t, err)
				require.NotNil(t, organization)
				assert.NotZero(t, organization.ID)
				assert.Equal(t, tt.orgName, organization.Name)
			}
		})
	}
}

func TestOrganizationService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Организация найдена", func(t *testing.T) {
		mockOrgRepo := mocks.NewOrganizationRepository(t)
		mockOrgRepo.EXPECT().Find(ctx, int64(10)).
			Return(&models.Organization{ID: 10, Name: "Acme"}, nil).Once()

		orgService := services.NewOrganizationService(mockOrgRepo, &stubIDGen{})
		organization, err := orgService.Get(ctx, 10)

		require.NoError(t, err)
		assert.Equal(t, "Acme", organization.Name)
	})

	t.Run("Организация не найдена", func(t *testing.T) {
		mockOrgRepo := mocks.NewOrganizationRepository(t)
		mockOrgRepo.EXPECT().Find(ctx, int64(10)).
			Return(nil, repository.ErrOrganizationNotFound).Once()

		orgService := services.NewOrganizationService(mockOrgRepo, &stubIDGen{})
		organization, err := orgService.Get(ctx, 10)

		require.ErrorIs(t, err, services.ErrOrganizationNotFound)
		assert.Nil(t, organization)
	})
}

func TestOrganizationService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Список организаций", func(t *testing.T) {
		expected := []models.Organization{{ID: 1, Name: "Acme"}, {ID: 2, Name: "Globex"}}
		mockOrgRepo := mocks.NewOrganizationRepository(t)
		mockOrgRepo.EXPECT().List(ctx).Return(expected, nil).Once()

		orgService := services.NewOrganizationService(mockOrgRepo, &stubIDGen{})
		organizations, err := orgService.List(ctx)

		require.NoError(t, err)
		assert.Equal(t, expected, organizations)
	})

	t.Run("Ошибка репозитория", func(t *testing.T) {
		mockOrgRepo := mocks.NewOrganizationRepository(t)
		mockOrgRepo.EXPECT().List(ctx).Return(nil, errors.New("some db error")).Once()

		orgService := services.NewOrganizationService(mockOrgRepo, &stubIDGen{})
		organizations, err := orgService.List(ctx)

		require.ErrorIs(t, err, services.ErrInternal)
		assert.Nil(t, organizations)
	})
}
