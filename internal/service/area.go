package service

//go:generate mockgen -source=area.go -destination=mocks/mock_area.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/flood_control_system/internal/models"
	"github.com/shenikar/flood_control_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// AreaRepository определяет контракт для работы с бд районов
type AreaRepository interface {
	Create(ctx context.Context, area *models.Area) error
	GetByID(ctx context.Context, id int64) (*models.Area, error)
	Update(ctx context.Context, area *models.Area) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Area, error)
	ListOptions(ctx context.Context) ([]models.AreaOption, error)
	GetOptionsFromCache(ctx context.Context) ([]models.AreaOption, error)
	SetOptionsCache(ctx context.Context, options []models.AreaOption) error
	InvalidateOptionsCache(ctx context.Context) error
}

// AreaService определяет контракт контроллера районов
type AreaService interface {
	AddArea(ctx context.Context, form AreaForm) (*models.Area, error)
	UpdateArea(ctx context.Context, id int64, form AreaForm) (*models.Area, error)
	DeleteArea(ctx context.Context, id int64) error
	ListAreas(ctx context.Context) ([]*models.Area, error)
	GetArea(ctx context.Context, id int64) (*models.Area, error)
	ListAreaOptions(ctx context.Context) ([]models.AreaOption, error)
}

// AreaForm - значения полей формы района в том виде, в каком их ввел пользователь
type AreaForm struct {
	Name               string `json:"name" validate:"required,max=200"`
	Province           string `json:"province" validate:"required,max=150"`
	RiskLevel          string `json:"risk_level" validate:"omitempty,oneof=High Medium Low"`
	PopulationAffected string `json:"population_affected"`
}

type areaService struct {
	repo      AreaRepository
	logger    *logrus.Logger
	validate  *validator.Validate
	publisher webhook.EventPublisher
}

func NewAreaService(repo AreaRepository, logger *logrus.Logger, publisher webhook.EventPublisher) AreaService {
	return &areaService{
		repo:      repo,
		logger:    logger,
		validate:  newValidator(),
		publisher: publisher,
	}
}

// toModel проверяет форму и приводит значения к типам модели
func (s *areaService) toModel(form AreaForm) (*models.Area, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Province = strings.TrimSpace(form.Province)
	form.RiskLevel = strings.TrimSpace(form.RiskLevel)
	if err := validateForm(s.validate, form); err != nil {
		return nil, err
	}

	population, err := parseCount("population_affected", form.PopulationAffected)
	if err != nil {
		return nil, err
	}

	risk := models.RiskLevel(form.RiskLevel)
	if risk == "" {
		risk = models.RiskMedium
	}

	return &models.Area{
		Name:               form.Name,
		Province:           form.Province,
		RiskLevel:          risk,
		PopulationAffected: population,
	}, nil
}

// AddArea создает район
func (s *areaService) AddArea(ctx context.Context, form AreaForm) (*models.Area, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "area",
		"method":  "AddArea",
		"name":    form.Name,
	})
	log.Info("Attempting to create a new area")

	area, err := s.toModel(form)
	if err != nil {
		log.WithError(err).Warn("Area form rejected")
		return nil, err
	}

	if err := s.repo.Create(ctx, area); err != nil {
		log.WithError(err).Error("Failed to create area in repository")
		return nil, fmt.Errorf("service: could not create area: %w", err)
	}

	s.afterMutation(ctx, log, webhook.ActionCreated, area.ID)
	log.WithField("area_id", area.ID).Info("Area created successfully")

	return s.reload(ctx, log, area), nil
}

// UpdateArea перезаписывает поля района значениями формы
func (s *areaService) UpdateArea(ctx context.Context, id int64, form AreaForm) (*models.Area, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "area",
		"method":  "UpdateArea",
		"area_id": id,
	})
	log.Info("Attempting to update an area")

	area, err := s.toModel(form)
	if err != nil {
		log.WithError(err).Warn("Area form rejected")
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent area")
		return nil, fmt.Errorf("service: area with id %d not found for update: %w", id, err)
	}

	existing.Name = area.Name
	existing.Province = area.Province
	existing.RiskLevel = area.RiskLevel
	existing.PopulationAffected = area.PopulationAffected

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update area in repository")
		return nil, fmt.Errorf("service: could not update area: %w", err)
	}

	s.afterMutation(ctx, log, webhook.ActionUpdated, id)
	log.Info("Area updated successfully")
	return existing, nil
}

// DeleteArea удаляет район. Если на район ссылаются проекты или инциденты,
// возвращается models.ErrAreaReferenced и ничего не меняется.
func (s *areaService) DeleteArea(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "area",
		"method":  "DeleteArea",
		"area_id": id,
	})
	log.Info("Attempting to delete area")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete area in repository")
		return fmt.Errorf("service: could not delete area: %w", err)
	}

	s.afterMutation(ctx, log, webhook.ActionDeleted, id)
	log.Info("Area deleted successfully")
	return nil
}

// ListAreas возвращает все районы по возрастанию ID
func (s *areaService) ListAreas(ctx context.Context) ([]*models.Area, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "area",
		"method":  "ListAreas",
	})

	areas, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list areas from repository")
		return nil, fmt.Errorf("service: could not list areas: %w", err)
	}

	log.WithField("count", len(areas)).Debug("Areas listed successfully")
	return areas, nil
}

// GetArea возвращает район для заполнения формы
func (s *areaService) GetArea(ctx context.Context, id int64) (*models.Area, error) {
	area, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "area",
			"method":  "GetArea",
			"area_id": id,
		}).WithError(err).Warn("Failed to get area in repository")
		return nil, fmt.Errorf("service: could not get area: %w", err)
	}
	return area, nil
}

// ListAreaOptions возвращает варианты выбора района для форм проектов и инцидентов, сначала из кеша
func (s *areaService) ListAreaOptions(ctx context.Context) ([]models.AreaOption, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "area",
		"method":  "ListAreaOptions",
	})

	cached, err := s.repo.GetOptionsFromCache(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read area options from cache")
	} else if cached != nil {
		return cached, nil
	}

	options, err := s.repo.ListOptions(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list area options from repository")
		return nil, fmt.Errorf("service: could not list area options: %w", err)
	}

	if err := s.repo.SetOptionsCache(ctx, options); err != nil {
		log.WithError(err).Warn("Failed to cache area options")
	}
	return options, nil
}

// afterMutation сбрасывает кеш вариантов выбора и оповещает клиентов
func (s *areaService) afterMutation(ctx context.Context, log *logrus.Entry, action webhook.Action, id int64) {
	if err := s.repo.InvalidateOptionsCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate area options cache")
	}
	notifyChange(ctx, s.publisher, log, webhook.EntityArea, action, id)
	notifyChange(ctx, s.publisher, log, webhook.EntityAreaOptions, webhook.ActionInvalidated, 0)
}

// reload перечитывает созданную запись, чтобы вернуть created_at из бд
func (s *areaService) reload(ctx context.Context, log *logrus.Entry, area *models.Area) *models.Area {
	stored, err := s.repo.GetByID(ctx, area.ID)
	if err != nil {
		log.WithError(err).Warn("Failed to reload created area")
		return area
	}
	return stored
}
