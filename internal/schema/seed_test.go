package schema

import (
	"bytes"
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSeeder(t *testing.T) (*Seeder, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewSeeder(db, logger), mock
}

func expectCount(mock sqlmock.Sqlmock, table string, count int) {
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM " + table)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(count))
}

func allAreaIDs() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name"}).
		AddRow(1, "Manila").
		AddRow(2, "Cebu City").
		AddRow(3, "Davao City").
		AddRow(4, "Quezon City").
		AddRow(5, "Iloilo City")
}

func TestSeed_EmptyDatabase(t *testing.T) {
	seeder, mock := newTestSeeder(t)

	expectCount(mock, "areas", 0)
	for _, a := range sampleAreas {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO areas")).
			WithArgs(a.name, a.province, a.riskLevel, a.population).
			WillReturnResult(sqlmock.NewResult(1, 1))
	}

	expectCount(mock, "projects", 0)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM areas")).WillReturnRows(allAreaIDs())
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO projects")).
		WithArgs("Drainage Improvement", int64(1), "2025-01-01", "2025-06-30", "Ongoing", "Delayed funding").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO projects")).
		WithArgs("Flood Gate Construction", int64(2), "2025-02-01", "2025-07-15", "Delayed", "Controversial contractor").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO projects")).
		WithArgs("River Dredging", int64(3), "2025-03-01", "2025-08-30", "Ongoing", "Insufficient manpower").
		WillReturnResult(sqlmock.NewResult(3, 1))

	expectCount(mock, "incidents", 0)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM areas")).WillReturnRows(allAreaIDs())
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO incidents")).
		WithArgs(int64(1), "2025-04-12", 3.50, 5000000.0, int64(5), "Severe flooding, poor drainage").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO incidents")).
		WithArgs(int64(2), "2025-03-20", 2.00, 2000000.0, int64(1), "Medium flooding, ignored warnings").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO incidents")).
		WithArgs(int64(3), "2025-05-05", 1.20, 1000000.0, int64(0), "Minimal flooding, timely evacuation").
		WillReturnResult(sqlmock.NewResult(3, 1))

	require.NoError(t, seeder.Seed(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeed_PopulatedDatabaseIsLeftAlone(t *testing.T) {
	seeder, mock := newTestSeeder(t)

	expectCount(mock, "areas", 7)
	expectCount(mock, "projects", 2)
	expectCount(mock, "incidents", 1)

	require.NoError(t, seeder.Seed(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeed_PerTable(t *testing.T) {
	seeder, mock := newTestSeeder(t)

	// Районы уже есть, но без Cebu City и Davao City: их примеры пропускаются
	expectCount(mock, "areas", 1)
	expectCount(mock, "projects", 0)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM areas")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(10, "Manila"))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO projects")).
		WithArgs("Drainage Improvement", int64(10), "2025-01-01", "2025-06-30", "Ongoing", "Delayed funding").
		WillReturnResult(sqlmock.NewResult(1, 1))
	expectCount(mock, "incidents", 3)

	require.NoError(t, seeder.Seed(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeed_CountError(t *testing.T) {
	seeder, mock := newTestSeeder(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM areas")).
		WillReturnError(assert.AnError)

	err := seeder.Seed(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
