package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shenikar/flood_control_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRepository_TopDamageAreas(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReportRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY a.id, a.name")).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"name", "total_damage"}).
			AddRow("Manila", 5000000.0).
			AddRow("Cebu City", 2000000.0))

	rows, err := repo.TopDamageAreas(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, []models.AreaDamage{
		{AreaName: "Manila", TotalDamage: 5000000},
		{AreaName: "Cebu City", TotalDamage: 2000000},
	}, rows)
}

func TestReportRepository_RecentIncidents(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReportRepository(db)
	date := time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY i.date DESC")).
		WithArgs(20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "date", "flood_level", "damage_estimate"}).
			AddRow(3, "Davao City", date, 1.2, 1000000.0))

	rows, err := repo.RecentIncidents(context.Background(), 20)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.RecentIncident{ID: 3, AreaName: "Davao City", Date: date, FloodLevel: 1.2, DamageEstimate: 1000000}, rows[0])
}

func TestReportRepository_ProjectsByStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReportRepository(db)
	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	// Статус передается параметром, а не подставляется в текст запроса
	mock.ExpectQuery(regexp.QuoteMeta("WHERE p.status = ?")).
		WithArgs("Delayed").
		WillReturnRows(sqlmock.NewRows(projectRowColumns).
			AddRow(2, "Flood Gate Construction", 2, "Cebu City", start, end, "Delayed", "Controversial contractor", time.Now()))

	projects, err := repo.ProjectsByStatus(context.Background(), models.StatusDelayed)

	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Flood Gate Construction", projects[0].ProjectName)
	assert.Equal(t, models.StatusDelayed, projects[0].Status)
}

func TestReportRepository_ProjectStatusCounts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReportRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT status, COUNT(*) FROM projects GROUP BY status")).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("Ongoing", 2).
			AddRow("Delayed", 1))

	counts, err := repo.ProjectStatusCounts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.StatusCount{
		{Status: models.StatusOngoing, Count: 2},
		{Status: models.StatusDelayed, Count: 1},
	}, counts)
}

func TestReportRepository_Counts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReportRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("(SELECT COUNT(*) FROM areas WHERE created_at <= ?)")).
		WithArgs("High", "2025-01-01", "2025-01-01", "2025-01-01", "High", "2025-01-01").
		WillReturnRows(sqlmock.NewRows([]string{"a", "p", "i", "h", "ac", "pc", "ic", "hc"}).
			AddRow(5, 3, 3, 2, 0, 0, 0, 0))

	counts, err := repo.Counts(context.Background(), "2025-01-01")

	require.NoError(t, err)
	assert.Equal(t, &models.DashboardCounts{
		TotalAreas:     5,
		TotalProjects:  3,
		TotalIncidents: 3,
		HighRiskAreas:  2,
	}, counts)
}

func TestReportRepository_AverageFloodLevels(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReportRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("AVG(i.flood_level)")).
		WillReturnRows(sqlmock.NewRows([]string{"name", "avg"}).
			AddRow("Manila", 3.5).
			AddRow("Cebu City", nil))

	levels, err := repo.AverageFloodLevels(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.AreaFloodLevel{
		{AreaName: "Manila", FloodLevel: 3.5},
		{AreaName: "Cebu City", FloodLevel: 0},
	}, levels)
}
