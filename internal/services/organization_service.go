package services

import (
	"context"
	"errors"
	"log"

	"github.com/yzx9/aim-server/internal/idgen"
	"github.com/yzx9/aim-server/internal/models"
	"github.com/yzx9/aim-server/internal/repository"
)

// Кастомные ошибки сервиса организаций.
var (
	ErrOrganizationNotFound = errors.New("организация не найдена")
	ErrEmptyName            = errors.New("имя не может быть пустым")
)

// OrganizationService определяет интерфейс для работы с организациями.
type OrganizationService interface {
	Create(ctx context.Context, name string) (*models.Organization, error)
	Get(ctx context.Context, id int64) (*models.Organization, error)
	List(ctx context.Context) ([]models.Organization, error)
}

// Убедимся, что organizationService удовлетворяет интерфейсу.
var _ OrganizationService = (*organizationService)(nil)

type organizationService struct {
	orgRepo repository.OrganizationRepository
	idGen   idgen.Generator
}

// NewOrganizationService создает новый экземпляр сервиса организаций.
func NewOrganizationService(orgRepo repository.OrganizationRepository, idGen idgen.Generator) OrganizationService {
	return &organizationService{orgRepo: orgRepo, idGen: idGen}
}

// Create создает новую организацию.
func (s *organizationService) Create(ctx context.Context, name string) (*models.Organization, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	id, err := s.idGen.Generate()
	if err != nil {
		log.Printf("[OrgService] Ошибка генерации идентификатора организации: %v", err)
		return nil, ErrInternal
	}

	organization := &models.Organization{ID: id, Name: name}
	if err = s.orgRepo.Create(ctx, organization); err != nil {
		log.Printf("[OrgService] Ошибка репозитория при создании организации '%s': %v", name, err)
		return nil, ErrInternal
	}

	log.Printf("[OrgService] Организация '%s' (id=%d) создана", name, id)
	return organization, nil
}

// Get возвращает организацию по ID.
func (s *organizationService) Get(ctx context.Context, id int64) (*models.Organization, error) {
	organization, err := s.orgRepo.Find(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrganizationNotFound) {
			return nil, ErrOrganizationNotFound
		}
		log.Printf("[OrgService] Ошибка репозитория при поиске организации %d: %v", id, err)
		return nil, ErrInternal
	}
	return organization, nil
}

// List возвращает все организации.
func (s *organizationService) List(ctx context.Context) ([]models.Organization, error) {
	organizations, err := s.orgRepo.List(ctx)
	if err != nil {
		log.Printf("[OrgService] Ошибка репозитория при получении списка организаций: %v", err)
		return nil, ErrInternal
	}
	return organizations, nil
}
