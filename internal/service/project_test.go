package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/flood_control_system/internal/models"
	"github.com/shenikar/flood_control_system/internal/service"
	"github.com/shenikar/flood_control_system/internal/service/mocks"
	"github.com/shenikar/flood_control_system/internal/webhook"
	webhook_mocks "github.com/shenikar/flood_control_system/internal/webhook/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestProjectService(t *testing.T) (service.ProjectService, *mocks.MockProjectRepository, *webhook_mocks.MockEventPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockProjectRepository(ctrl)
	publisherMock := webhook_mocks.NewMockEventPublisher(ctrl)

	return service.NewProjectService(repoMock, newTestLogger(), publisherMock), repoMock, publisherMock
}

func TestAddProject_Success(t *testing.T) {
	svc, repoMock, publisherMock := newTestProjectService(t)
	ctx := context.Background()
	form := service.ProjectForm{
		ProjectName: "Pumping Station",
		AreaID:      "1",
		StartDate:   "2025-02-01",
		EndDate:     "2025-09-30",
		Status:      "Delayed",
		Remarks:     "Awaiting permits",
	}
	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	stored := &models.Project{ID: 4, ProjectName: "Pumping Station", AreaID: 1, AreaName: "Manila", StartDate: &start, Status: models.StatusDelayed}

	gomock.InOrder(
		repoMock.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, project *models.Project) error {
				assert.Equal(t, int64(1), project.AreaID)
				require.NotNil(t, project.StartDate)
				assert.True(t, start.Equal(*project.StartDate))
				require.NotNil(t, project.EndDate)
				assert.Equal(t, "2025-09-30", service.FormatDate(project.EndDate))
				assert.Equal(t, models.StatusDelayed, project.Status)
				project.ID = 4
				return nil
			}),
		expectEvent(t, publisherMock, webhook.EntityProject, webhook.ActionCreated, 4),
		repoMock.EXPECT().GetByID(ctx, int64(4)).Return(stored, nil),
	)

	project, err := svc.AddProject(ctx, form)

	require.NoError(t, err)
	assert.Equal(t, "Manila", project.AreaName)
}

func TestAddProject_DefaultsAndOptionalDates(t *testing.T) {
	svc, repoMock, publisherMock := newTestProjectService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, project *models.Project) error {
			assert.Equal(t, models.StatusOngoing, project.Status)
			assert.Nil(t, project.StartDate)
			assert.Nil(t, project.EndDate)
			project.ID = 5
			return nil
		})
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down"))
	repoMock.EXPECT().GetByID(ctx, int64(5)).Return(&models.Project{ID: 5, Status: models.StatusOngoing}, nil)

	project, err := svc.AddProject(ctx, service.ProjectForm{ProjectName: "Seawall", AreaID: "3"})

	// Ошибка публикации не отменяет уже сохраненный проект
	require.NoError(t, err)
	assert.Equal(t, int64(5), project.ID)
}

func TestAddProject_ValidationError(t *testing.T) {
	tests := []struct {
		name  string
		form  service.ProjectForm
		field string
	}{
		{"no name", service.ProjectForm{AreaID: "1"}, "project_name"},
		{"no area", service.ProjectForm{ProjectName: "Levee"}, "area_id"},
		{"area not a number", service.ProjectForm{ProjectName: "Levee", AreaID: "Manila"}, "area_id"},
		{"bad start date", service.ProjectForm{ProjectName: "Levee", AreaID: "1", StartDate: "01/02/2025"}, "start_date"},
		{"bad status", service.ProjectForm{ProjectName: "Levee", AreaID: "1", Status: "Cancelled"}, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repoMock, publisherMock := newTestProjectService(t)

			repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

			_, err := svc.AddProject(context.Background(), tt.form)

			var validationErr *service.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestAddProject_UnknownArea(t *testing.T) {
	svc, repoMock, publisherMock := newTestProjectService(t)
	ctx := context.Background()

	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(models.ErrUnknownArea)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.AddProject(ctx, service.ProjectForm{ProjectName: "Levee", AreaID: "42"})

	assert.ErrorIs(t, err, models.ErrUnknownArea)
}

func TestUpdateProject_Success(t *testing.T) {
	svc, repoMock, publisherMock := newTestProjectService(t)
	ctx := context.Background()
	updated := &models.Project{ID: 2, ProjectName: "Flood Gate Construction", AreaID: 2, Status: models.StatusCompleted}

	repoMock.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, project *models.Project) error {
			assert.Equal(t, int64(2), project.ID)
			assert.Equal(t, models.StatusCompleted, project.Status)
			return nil
		})
	expectEvent(t, publisherMock, webhook.EntityProject, webhook.ActionUpdated, 2)
	repoMock.EXPECT().GetByID(ctx, int64(2)).Return(updated, nil)

	project, err := svc.UpdateProject(ctx, 2, service.ProjectForm{
		ProjectName: "Flood Gate Construction",
		AreaID:      "2",
		Status:      "Completed",
	})

	require.NoError(t, err)
	assert.Equal(t, updated, project)
}

func TestUpdateProject_NotFound(t *testing.T) {
	svc, repoMock, publisherMock := newTestProjectService(t)
	ctx := context.Background()

	repoMock.EXPECT().Update(ctx, gomock.Any()).Return(models.ErrNotFound)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateProject(ctx, 77, service.ProjectForm{ProjectName: "Ghost", AreaID: "1"})

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteProject(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, repoMock, publisherMock := newTestProjectService(t)
		ctx := context.Background()

		repoMock.EXPECT().Delete(ctx, int64(3)).Return(nil)
		expectEvent(t, publisherMock, webhook.EntityProject, webhook.ActionDeleted, 3)

		require.NoError(t, svc.DeleteProject(ctx, 3))
	})

	t.Run("not found", func(t *testing.T) {
		svc, repoMock, publisherMock := newTestProjectService(t)
		ctx := context.Background()

		repoMock.EXPECT().Delete(ctx, int64(30)).Return(models.ErrNotFound)
		publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

		assert.ErrorIs(t, svc.DeleteProject(ctx, 30), models.ErrNotFound)
	})
}

func TestListProjects_Error(t *testing.T) {
	svc, repoMock, _ := newTestProjectService(t)
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	repoMock.EXPECT().List(ctx).Return(nil, dbErr)

	projects, err := svc.ListProjects(ctx)
	assert.Nil(t, projects)
	assert.ErrorIs(t, err, dbErr)
}
