package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/shenikar/flood_control_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var projectRowColumns = []string{"id", "project_name", "area_id", "name", "start_date", "end_date", "status", "remarks", "created_at"}

func TestProjectRepository_Create_UnknownArea(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO projects")).
		WithArgs("Levee", int64(42), sqlmock.AnyArg(), sqlmock.AnyArg(), "Ongoing", "").
		WillReturnError(&mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row: a foreign key constraint fails"})

	err := repo.Create(context.Background(), &models.Project{ProjectName: "Levee", AreaID: 42, Status: models.StatusOngoing})

	assert.ErrorIs(t, err, models.ErrUnknownArea)
}

func TestProjectRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	project := &models.Project{ProjectName: "Drainage Improvement", AreaID: 1, StartDate: &start, Status: models.StatusOngoing}

	mock.ExpectExec("INSERT INTO projects").
		WithArgs("Drainage Improvement", int64(1), start, nil, "Ongoing", "").
		WillReturnResult(sqlmock.NewResult(4, 1))

	require.NoError(t, repo.Create(context.Background(), project))
	assert.Equal(t, int64(4), project.ID)
}

func TestProjectRepository_List_NullDates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)
	now := time.Now().UTC()
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY p.created_at DESC")).
		WillReturnRows(sqlmock.NewRows(projectRowColumns).
			AddRow(3, "River Dredging", 3, "Davao City", start, nil, "Ongoing", "Insufficient manpower", now).
			AddRow(1, "Drainage Improvement", 1, "Manila", nil, nil, "Ongoing", "", now))

	projects, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, projects, 2)
	require.NotNil(t, projects[0].StartDate)
	assert.True(t, start.Equal(*projects[0].StartDate))
	assert.Nil(t, projects[0].EndDate)
	assert.Equal(t, "Davao City", projects[0].AreaName)
	assert.Nil(t, projects[1].StartDate)
}

func TestProjectRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM projects WHERE id = ?")).
		WithArgs(int64(77)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := repo.Update(context.Background(), &models.Project{ID: 77, ProjectName: "Ghost", AreaID: 1})

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestProjectRepository_Update_Unchanged(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM projects WHERE id = ?")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	// Для UPDATE без изменений MySQL сообщает 0 затронутых строк
	mock.ExpectExec(regexp.QuoteMeta("UPDATE projects SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.Project{ID: 2, ProjectName: "Flood Gate Construction", AreaID: 2, Status: models.StatusDelayed})

	assert.NoError(t, err)
}

func TestProjectRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM projects WHERE id = ?")).
		WithArgs(int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 12), models.ErrNotFound)
}
