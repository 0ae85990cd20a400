package service_test

import (
	"context"
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

// newTestIncidentService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (service.IncidentService, *mocks.MockIncidentRepository, *webhook_mocks.MockEventPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	publisherMock := webhook_mocks.NewMockEventPublisher(ctrl)

	return service.NewIncidentService(repoMock, newTestLogger(), publisherMock), repoMock, publisherMock
}

func TestAddIncident_Success(t *testing.T) {
	// Подготовка
	svc, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	form := service.IncidentForm{
		AreaID:         "1",
		Date:           "2025-04-12",
		FloodLevel:     "3.5",
		DamageEstimate: "5000000",
		Casualties:     "5",
		Notes:          "Severe flooding, poor drainage",
	}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, incident *models.Incident) error {
			assert.Equal(t, int64(1), incident.AreaID)
			assert.True(t, time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC).Equal(incident.Date))
			assert.Equal(t, 3.5, incident.FloodLevel)
			assert.Equal(t, 5000000.0, incident.DamageEstimate)
			assert.Equal(t, int64(5), incident.Casualties)
			incident.ID = 4
			return nil
		})
	expectEvent(t, publisherMock, webhook.EntityIncident, webhook.ActionCreated, 4)
	repoMock.EXPECT().GetByID(ctx, int64(4)).Return(&models.Incident{ID: 4, AreaName: "Manila"}, nil)

	// Действие
	incident, err := svc.AddIncident(ctx, form)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Manila", incident.AreaName)
}

func TestAddIncident_BlankNumericsAreZero(t *testing.T) {
	svc, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, incident *models.Incident) error {
			assert.Zero(t, incident.FloodLevel)
			assert.Zero(t, incident.DamageEstimate)
			assert.Zero(t, incident.Casualties)
			incident.ID = 8
			return nil
		})
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil)
	repoMock.EXPECT().GetByID(ctx, int64(8)).Return(&models.Incident{ID: 8}, nil)

	_, err := svc.AddIncident(ctx, service.IncidentForm{
		AreaID:         "2",
		Date:           "2025-06-01",
		FloodLevel:     "",
		DamageEstimate: " ",
	})
	require.NoError(t, err)
}

func TestAddIncident_ValidationError(t *testing.T) {
	tests := []struct {
		name  string
		form  service.IncidentForm
		field string
	}{
		{"no area", service.IncidentForm{Date: "2025-04-12"}, "area_id"},
		{"no date", service.IncidentForm{AreaID: "1"}, "date"},
		{"bad date", service.IncidentForm{AreaID: "1", Date: "12 April"}, "date"},
		{"bad level", service.IncidentForm{AreaID: "1", Date: "2025-04-12", FloodLevel: "high"}, "flood_level"},
		{"bad damage", service.IncidentForm{AreaID: "1", Date: "2025-04-12", DamageEstimate: "5M"}, "damage_estimate"},
		{"fractional casualties", service.IncidentForm{AreaID: "1", Date: "2025-04-12", Casualties: "1.5"}, "casualties"},
		{"nan level", service.IncidentForm{AreaID: "1", Date: "2025-04-12", FloodLevel: "NaN"}, "flood_level"},
		{"infinite level", service.IncidentForm{AreaID: "1", Date: "2025-04-12", FloodLevel: "Inf"}, "flood_level"},
		{"level above column", service.IncidentForm{AreaID: "1", Date: "2025-04-12", FloodLevel: "12345"}, "flood_level"},
		{"damage above column", service.IncidentForm{AreaID: "1", Date: "2025-04-12", DamageEstimate: "1e308"}, "damage_estimate"},
		{"casualties above column", service.IncidentForm{AreaID: "1", Date: "2025-04-12", Casualties: "99999999999"}, "casualties"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repoMock, publisherMock := newTestIncidentService(t)

			repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

			_, err := svc.AddIncident(context.Background(), tt.form)

			var validationErr *service.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestUpdateIncident_Success(t *testing.T) {
	svc, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, incident *models.Incident) error {
			assert.Equal(t, int64(2), incident.ID)
			assert.Equal(t, int64(2), incident.Casualties)
			return nil
		})
	expectEvent(t, publisherMock, webhook.EntityIncident, webhook.ActionUpdated, 2)
	repoMock.EXPECT().GetByID(ctx, int64(2)).Return(&models.Incident{ID: 2, Casualties: 2}, nil)

	incident, err := svc.UpdateIncident(ctx, 2, service.IncidentForm{AreaID: "2", Date: "2025-03-20", Casualties: "2"})

	require.NoError(t, err)
	assert.Equal(t, int64(2), incident.Casualties)
}

func TestUpdateIncident_NotFound(t *testing.T) {
	svc, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().Update(ctx, gomock.Any()).Return(models.ErrNotFound)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateIncident(ctx, 100, service.IncidentForm{AreaID: "1", Date: "2025-01-01"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteIncident_Success(t *testing.T) {
	svc, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().Delete(ctx, int64(3)).Return(nil)
	expectEvent(t, publisherMock, webhook.EntityIncident, webhook.ActionDeleted, 3)

	require.NoError(t, svc.DeleteIncident(ctx, 3))
}

func TestGetIncident_NotFound(t *testing.T) {
	svc, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByID(ctx, int64(9)).Return(nil, models.ErrNotFound)

	incident, err := svc.GetIncident(ctx, 9)
	assert.Nil(t, incident)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListIncidents_Success(t *testing.T) {
	svc, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	expected := []*models.Incident{{ID: 1}, {ID: 2}, {ID: 3}}

	repoMock.EXPECT().List(ctx).Return(expected, nil)

	incidents, err := svc.ListIncidents(ctx)
	require.NoError(t, err)
	assert.Len(t, incidents, 3)
}
