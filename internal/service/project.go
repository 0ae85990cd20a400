package service

//go:generate mockgen -source=project.go -destination=mocks/mock_project.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/flood_control_system/internal/models"
	"github.com/shenikar/flood_control_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// ProjectRepository определяет контракт для работы с бд проектов
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Project, error)
}

// ProjectService определяет контракт контроллера проектов
type ProjectService interface {
	AddProject(ctx context.Context, form ProjectForm) (*models.Project, error)
	UpdateProject(ctx context.Context, id int64, form ProjectForm) (*models.Project, error)
	DeleteProject(ctx context.Context, id int64) error
	ListProjects(ctx context.Context) ([]*models.Project, error)
	GetProject(ctx context.Context, id int64) (*models.Project, error)
}

// ProjectForm - значения полей формы проекта. AreaID берется из AreaOption.ID.
type ProjectForm struct {
	ProjectName string `json:"project_name" validate:"required,max=255"`
	AreaID      string `json:"area_id" validate:"required"`
	StartDate   string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Status      string `json:"status" validate:"omitempty,oneof=Ongoing Delayed Completed"`
	Remarks     string `json:"remarks"`
}

type projectService struct {
	repo      ProjectRepository
	logger    *logrus.Logger
	validate  *validator.Validate
	publisher webhook.EventPublisher
}

func NewProjectService(repo ProjectRepository, logger *logrus.Logger, publisher webhook.EventPublisher) ProjectService {
	return &projectService{
		repo:      repo,
		logger:    logger,
		validate:  newValidator(),
		publisher: publisher,
	}
}

func (s *projectService) toModel(form ProjectForm) (*models.Project, error) {
	form.ProjectName = strings.TrimSpace(form.ProjectName)
	form.AreaID = strings.TrimSpace(form.AreaID)
	form.StartDate = strings.TrimSpace(form.StartDate)
	form.EndDate = strings.TrimSpace(form.EndDate)
	form.Status = strings.TrimSpace(form.Status)
	if err := validateForm(s.validate, form); err != nil {
		return nil, err
	}

	areaID, err := parseAreaID(form.AreaID)
	if err != nil {
		return nil, err
	}
	start, err := parseOptionalDate("start_date", form.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalDate("end_date", form.EndDate)
	if err != nil {
		return nil, err
	}

	status := models.ProjectStatus(form.Status)
	if status == "" {
		status = models.StatusOngoing
	}

	return &models.Project{
		ProjectName: form.ProjectName,
		AreaID:      areaID,
		StartDate:   start,
		EndDate:     end,
		Status:      status,
		Remarks:     form.Remarks,
	}, nil
}

// AddProject создает проект
func (s *projectService) AddProject(ctx context.Context, form ProjectForm) (*models.Project, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "project",
		"method":  "AddProject",
		"name":    form.ProjectName,
	})
	log.Info("Attempting to create a new project")

	project, err := s.toModel(form)
	if err != nil {
		log.WithError(err).Warn("Project form rejected")
		return nil, err
	}

	if err := s.repo.Create(ctx, project); err != nil {
		log.WithError(err).Error("Failed to create project in repository")
		return nil, fmt.Errorf("service: could not create project: %w", err)
	}

	notifyChange(ctx, s.publisher, log, webhook.EntityProject, webhook.ActionCreated, project.ID)
	log.WithField("project_id", project.ID).Info("Project created successfully")

	stored, err := s.repo.GetByID(ctx, project.ID)
	if err != nil {
		log.WithError(err).Warn("Failed to reload created project")
		return project, nil
	}
	return stored, nil
}

// UpdateProject перезаписывает поля проекта значениями формы
func (s *projectService) UpdateProject(ctx context.Context, id int64, form ProjectForm) (*models.Project, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "project",
		"method":     "UpdateProject",
		"project_id": id,
	})
	log.Info("Attempting to update a project")

	project, err := s.toModel(form)
	if err != nil {
		log.WithError(err).Warn("Project form rejected")
		return nil, err
	}
	project.ID = id

	if err := s.repo.Update(ctx, project); err != nil {
		log.WithError(err).Error("Failed to update project in repository")
		return nil, fmt.Errorf("service: could not update project: %w", err)
	}

	notifyChange(ctx, s.publisher, log, webhook.EntityProject, webhook.ActionUpdated, id)
	log.Info("Project updated successfully")

	stored, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to reload updated project")
		return project, nil
	}
	return stored, nil
}

// DeleteProject удаляет проект; ограничений ссылочной целостности у проекта нет
func (s *projectService) DeleteProject(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "project",
		"method":     "DeleteProject",
		"project_id": id,
	})
	log.Info("Attempting to delete project")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete project in repository")
		return fmt.Errorf("service: could not delete project: %w", err)
	}

	notifyChange(ctx, s.publisher, log, webhook.EntityProject, webhook.ActionDeleted, id)
	log.Info("Project deleted successfully")
	return nil
}

// ListProjects возвращает проекты с названием района, новые первыми
func (s *projectService) ListProjects(ctx context.Context) ([]*models.Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "project",
			"method":  "ListProjects",
		}).WithError(err).Error("Failed to list projects from repository")
		return nil, fmt.Errorf("service: could not list projects: %w", err)
	}
	return projects, nil
}

func (s *projectService) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get project: %w", err)
	}
	return project, nil
}
