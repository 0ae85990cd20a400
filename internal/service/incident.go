package service

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/flood_control_system/internal/models"
	"github.com/shenikar/flood_control_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id int64) (*models.Incident, error)
	Update(ctx context.Context, incident *models.Incident) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Incident, error)
}

// IncidentService определяет контракт контроллера инцидентов
type IncidentService interface {
	AddIncident(ctx context.Context, form IncidentForm) (*models.Incident, error)
	UpdateIncident(ctx context.Context, id int64, form IncidentForm) (*models.Incident, error)
	DeleteIncident(ctx context.Context, id int64) error
	ListIncidents(ctx context.Context) ([]*models.Incident, error)
	GetIncident(ctx context.Context, id int64) (*models.Incident, error)
}

// IncidentForm - значения полей формы инцидента. Пустые числовые поля сохраняются как 0.
type IncidentForm struct {
	AreaID         string `json:"area_id" validate:"required"`
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
	FloodLevel     string `json:"flood_level"`
	DamageEstimate string `json:"damage_estimate"`
	Casualties     string `json:"casualties"`
	Notes          string `json:"notes"`
}

type incidentService struct {
	repo      IncidentRepository
	logger    *logrus.Logger
	validate  *validator.Validate
	publisher webhook.EventPublisher
}

func NewIncidentService(repo IncidentRepository, logger *logrus.Logger, publisher webhook.EventPublisher) IncidentService {
	return &incidentService{
		repo:      repo,
		logger:    logger,
		validate:  newValidator(),
		publisher: publisher,
	}
}

func (s *incidentService) toModel(form IncidentForm) (*models.Incident, error) {
	form.AreaID = strings.TrimSpace(form.AreaID)
	form.Date = strings.TrimSpace(form.Date)
	if err := validateForm(s.validate, form); err != nil {
		return nil, err
	}

	areaID, err := parseAreaID(form.AreaID)
	if err != nil {
		return nil, err
	}
	date, err := time.Parse(dateLayout, form.Date)
	if err != nil {
		return nil, &ValidationError{Field: "date", Message: "must be a date in YYYY-MM-DD format"}
	}
	level, err := parseAmount("flood_level", form.FloodLevel, maxFloodLevel)
	if err != nil {
		return nil, err
	}
	damage, err := parseAmount("damage_estimate", form.DamageEstimate, maxDamageEstimate)
	if err != nil {
		return nil, err
	}
	casualties, err := parseCount("casualties", form.Casualties)
	if err != nil {
		return nil, err
	}

	return &models.Incident{
		AreaID:         areaID,
		Date:           date,
		FloodLevel:     level,
		DamageEstimate: damage,
		Casualties:     casualties,
		Notes:          form.Notes,
	}, nil
}

// AddIncident создает инцидент
func (s *incidentService) AddIncident(ctx context.Context, form IncidentForm) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "AddIncident",
		"area_id": form.AreaID,
	})
	log.Info("Attempting to create a new incident")

	incident, err := s.toModel(form)
	if err != nil {
		log.WithError(err).Warn("Incident form rejected")
		return nil, err
	}

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}

	notifyChange(ctx, s.publisher, log, webhook.EntityIncident, webhook.ActionCreated, incident.ID)
	log.WithField("incident_id", incident.ID).Info("Incident created successfully")

	stored, err := s.repo.GetByID(ctx, incident.ID)
	if err != nil {
		log.WithError(err).Warn("Failed to reload created incident")
		return incident, nil
	}
	return stored, nil
}

// UpdateIncident перезаписывает поля инцидента значениями формы
func (s *incidentService) UpdateIncident(ctx context.Context, id int64, form IncidentForm) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": id,
	})
	log.Info("Attempting to update an incident")

	incident, err := s.toModel(form)
	if err != nil {
		log.WithError(err).Warn("Incident form rejected")
		return nil, err
	}
	incident.ID = id

	if err := s.repo.Update(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to update incident in repository")
		return nil, fmt.Errorf("service: could not update incident: %w", err)
	}

	notifyChange(ctx, s.publisher, log, webhook.EntityIncident, webhook.ActionUpdated, id)
	log.Info("Incident updated successfully")

	stored, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to reload updated incident")
		return incident, nil
	}
	return stored, nil
}

// DeleteIncident удаляет инцидент
func (s *incidentService) DeleteIncident(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": id,
	})
	log.Info("Attempting to delete incident")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete incident in repository")
		return fmt.Errorf("service: could not delete incident: %w", err)
	}

	notifyChange(ctx, s.publisher, log, webhook.EntityIncident, webhook.ActionDeleted, id)
	log.Info("Incident deleted successfully")
	return nil
}

// ListIncidents возвращает инциденты с названием района по возрастанию ID
func (s *incidentService) ListIncidents(ctx context.Context) ([]*models.Incident, error) {
	incidents, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "incident",
			"method":  "ListIncidents",
		}).WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}
	return incidents, nil
}

func (s *incidentService) GetIncident(ctx context.Context, id int64) (*models.Incident, error) {
	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	return incident, nil
}
