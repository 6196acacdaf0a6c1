package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/yzx9/aim-server/internal/idgen"
	"github.com/yzx9/aim-server/internal/models"
	"github.com/yzx9/aim-server/internal/repository"
)

// Кастомные ошибки сервиса проектов.
var (
	ErrProjectNotFound  = errors.New("проект не найден")
	ErrFieldNotFound    = errors.New("поле не найдено")
	ErrInvalidFieldKind = errors.New("неизвестный тип поля")
	ErrInvalidValue     = errors.New("значение не соответствует типу поля")
)

// ProjectService определяет интерфейс для работы с проектами
// и их пользовательскими полями.
type ProjectService interface {
	Create(ctx context.Context, organizationID int64, name string) (*models.Project, error)
	Get(ctx context.Context, id int64) (*models.Project, error)
	ListByOrganization(ctx context.Context, organizationID int64) ([]models.Project, error)

	AddField(ctx context.Context, projectID int64, req models.CreateFieldRequest) (*models.Field, error)
	ListFields(ctx context.Context, projectID int64) ([]models.Field, error)
	RemoveField(ctx context.Context, projectID, fieldID int64) error
}

// Убедимся, что projectService удовлетворяет интерфейсу.
var _ ProjectService = (*projectService)(nil)

type projectService struct {
	projectRepo repository.ProjectRepository
	orgRepo     repository.OrganizationRepository
	idGen       idgen.Generator
}

// NewProjectService создает новый экземпляр сервиса проектов.
func NewProjectService(
	projectRepo repository.ProjectRepository,
	orgRepo repository.OrganizationRepository,
	idGen idgen.Generator,
) ProjectService {
	return &projectService{projectRepo: projectRepo, orgRepo: orgRepo, idGen: idGen}
}

// Create создает новый проект внутри организации.
func (s *projectService) Create(ctx context.Context, organizationID int64, name string) (*models.Project, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	// Проект нельзя создать в несуществующей организации.
	if _, err := s.orgRepo.Find(ctx, organizationID); err != nil {
		if errors.Is(err, repository.ErrOrganizationNotFound) {
			return nil, ErrOrganizationNotFound
		}
		log.Printf("[ProjectService] Ошибка репозитория при поиске организации %d: %v", organizationID, err)
		return nil, ErrInternal
	}

	id, err := s.idGen.Generate()
	if err != nil {
		log.Printf("[ProjectService] Ошибка генерации идентификатора проекта: %v", err)
		return nil, ErrInternal
	}

	project := &models.Project{ID: id, OrganizationID: organizationID, Name: name}
	if err = s.projectRepo.Create(ctx, project); err != nil {
		log.Printf("[ProjectService] Ошибка репозитория при создании проекта '%s': %v", name, err)
		return nil, ErrInternal
	}

	log.Printf("[ProjectService] Проект '%s' (id=%d) создан в организации %d", name, id, organizationID)
	return project, nil
}

// Get возвращает проект по ID.
func (s *projectService) Get(ctx context.Context, id int64) (*models.Project, error) {
	project, err := s.projectRepo.Find(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, ErrProjectNotFound
		}
		log.Printf("[ProjectService] Ошибка репозитория при поиске проекта %d: %v", id, err)
		return nil, ErrInternal
	}
	return project, nil
}

// ListByOrganization возвращает проекты организации.
func (s *projectService) ListByOrganization(ctx context.Context, organizationID int64) ([]models.Project, error) {
	projects, err := s.projectRepo.ListByOrganization(ctx, organizationID)
	if err != nil {
		log.Printf("[ProjectService] Ошибка репозитория при получении проектов организации %d: %v", organizationID, err)
		return nil, ErrInternal
	}
	return projects, nil
}

// AddField добавляет проекту пользовательское поле. Значение по умолчанию
// проверяется на соответствие типу поля и раскладывается в колонку этого типа.
func (s *projectService) AddField(
	ctx context.Context,
	projectID int64,
	req models.CreateFieldRequest,
) (*models.Field, error) {
	if req.Name == "" {
		return nil, ErrEmptyName
	}
	if !req.Kind.Valid() {
		return nil, fmt.Errorf("%w: '%s'", ErrInvalidFieldKind, req.Kind)
	}

	if _, err := s.Get(ctx, projectID); err != nil {
		return nil, err
	}

	id, err := s.idGen.Generate()
	if err != nil {
		log.Printf("[ProjectService] Ошибка генерации идентификатора поля: %v", err)
		return nil, ErrInternal
	}

	field := &models.Field{
		ID:        id,
		ProjectID: projectID,
		Name:      req.Name,
		Kind:      req.Kind,
	}
	if req.DefaultValue != nil {
		valueInt, valueFloat, valueString, err := coerceFieldValue(req.Kind, req.DefaultValue)
		if err != nil {
			return nil, err
		}
		field.DefaultValueInt = valueInt
		field.DefaultValueFloat = valueFloat
		field.DefaultValueString = valueString
	}

	if err = s.projectRepo.CreateField(ctx, field); err != nil {
		log.Printf("[ProjectService] Ошибка репозитория при создании поля '%s': %v", req.Name, err)
		return nil, ErrInternal
	}

	log.Printf("[ProjectService] Поле '%s' (id=%d, kind=%s) добавлено проекту %d", req.Name, id, req.Kind, projectID)
	return field, nil
}

// ListFields возвращает пользовательские поля проекта.
func (s *projectService) ListFields(ctx context.Context, projectID int64) ([]models.Field, error) {
	fields, err := s.projectRepo.ListFieldsByProject(ctx, projectID)
	if err != nil {
		log.Printf("[ProjectService] Ошибка репозитория при получении полей проекта %d: %v", projectID, err)
		return nil, ErrInternal
	}
	return fields, nil
}

// RemoveField удаляет поле проекта. Поле должно принадлежать проекту.
func (s *projectService) RemoveField(ctx context.Context, projectID, fieldID int64) error {
	fields, err := s.ListFields(ctx, projectID)
	if err != nil {
		return err
	}

	found := false
	for _, field := range fields {
		if field.ID == fieldID {
			found = true
			break
		}
	}
	if !found {
		return ErrFieldNotFound
	}

	if err = s.projectRepo.DeleteField(ctx, fieldID); err != nil {
		if errors.Is(err, repository.ErrFieldNotFound) {
			return ErrFieldNotFound
		}
		log.Printf("[ProjectService] Ошибка репозитория при удалении поля %d: %v", fieldID, err)
		return ErrInternal
	}

	log.Printf("[ProjectService] Поле %d удалено из проекта %d", fieldID, projectID)
	return nil
}

// coerceFieldValue приводит произвольное JSON-значение к колонке,
// соответствующей типу поля. JSON-числа приходят как float64.
func coerceFieldValue(kind models.FieldKind, value any) (*int64, *float64, *string, error) {
	switch kind {
	case models.FieldKindNumber:
		switch v := value.(type) {
		case float64:
			return nil, &v, nil, nil
		case int64:
			f := float64(v)
			return nil, &f, nil, nil
		}
	case models.FieldKindDatetime:
		// Метка времени в секундах Unix.
		switch v := value.(type) {
		case float64:
			i := int64(v)
			return &i, nil, nil, nil
		case int64:
			return &v, nil, nil, nil
		}
	case models.FieldKindEnum, models.FieldKindString:
		if v, ok := value.(string); ok {
			return nil, nil, &v, nil
		}
	}
	return nil, nil, nil, fmt.Errorf("%w: тип поля '%s', значение %v", ErrInvalidValue, kind, value)
}
