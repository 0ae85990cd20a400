package schema

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
)

type sampleArea struct {
	name       string
	province   string
	riskLevel  string
	population int64
}

type sampleProject struct {
	name      string
	areaName  string
	startDate string
	endDate   string
	status    string
	remarks   string
}

type sampleIncident struct {
	areaName   string
	date       string
	floodLevel float64
	damage     float64
	casualties int64
	notes      string
}

var sampleAreas = []sampleArea{
	{"Manila", "Metro Manila", "High", 1500000},
	{"Cebu City", "Cebu", "Medium", 900000},
	{"Davao City", "Davao del Sur", "Low", 700000},
	{"Quezon City", "Metro Manila", "High", 2000000},
	{"Iloilo City", "Iloilo", "Medium", 800000},
}

var sampleProjects = []sampleProject{
	{"Drainage Improvement", "Manila", "2025-01-01", "2025-06-30", "Ongoing", "Delayed funding"},
	{"Flood Gate Construction", "Cebu City", "2025-02-01", "2025-07-15", "Delayed", "Controversial contractor"},
	{"River Dredging", "Davao City", "2025-03-01", "2025-08-30", "Ongoing", "Insufficient manpower"},
}

var sampleIncidents = []sampleIncident{
	{"Manila", "2025-04-12", 3.50, 5000000, 5, "Severe flooding, poor drainage"},
	{"Cebu City", "2025-03-20", 2.00, 2000000, 1, "Medium flooding, ignored warnings"},
	{"Davao City", "2025-05-05", 1.20, 1000000, 0, "Minimal flooding, timely evacuation"},
}

// Seeder заполняет пустые таблицы примерами. Каждая таблица проверяется отдельно,
// поэтому повторный запуск ничего не дублирует.
type Seeder struct {
	db     *sql.DB
	logger *logrus.Logger
}

func NewSeeder(db *sql.DB, logger *logrus.Logger) *Seeder {
	return &Seeder{db: db, logger: logger}
}

// Seed заполняет таблицы в порядке зависимостей: районы, затем проекты и инциденты
func (s *Seeder) Seed(ctx context.Context) error {
	if err := s.seedAreas(ctx); err != nil {
		return err
	}
	if err := s.seedProjects(ctx); err != nil {
		return err
	}
	return s.seedIncidents(ctx)
}

func (s *Seeder) isEmpty(ctx context.Context, table string) (bool, error) {
	var count int64
	// Имя таблицы берется только из констант этого файла
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return count == 0, nil
}

// areaIDsByName сопоставляет названия районов с их ID для примеров проектов и инцидентов
func (s *Seeder) areaIDsByName(ctx context.Context) (map[string]int64, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM areas")
	if err != nil {
		return nil, fmt.Errorf("failed to load area ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]int64)
	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan area id: %w", err)
		}
		ids[name] = id
	}
	return ids, rows.Err()
}

func (s *Seeder) seedAreas(ctx context.Context) error {
	empty, err := s.isEmpty(ctx, "areas")
	if err != nil || !empty {
		return err
	}
	for _, a := range sampleAreas {
		_, err := s.db.ExecContext(ctx,
			"INSERT INTO areas (name, province, risk_level, population_affected) VALUES (?, ?, ?, ?)",
			a.name, a.province, a.riskLevel, a.population,
		)
		if err != nil {
			return fmt.Errorf("failed to seed area %s: %w", a.name, err)
		}
	}
	s.logger.WithField("count", len(sampleAreas)).Info("Seeded sample areas")
	return nil
}

func (s *Seeder) seedProjects(ctx context.Context) error {
	empty, err := s.isEmpty(ctx, "projects")
	if err != nil || !empty {
		return err
	}
	ids, err := s.areaIDsByName(ctx)
	if err != nil {
		return err
	}
	seeded := 0
	for _, p := range sampleProjects {
		areaID, ok := ids[p.areaName]
		if !ok {
			s.logger.WithField("area", p.areaName).Warn("Skipping sample project for missing area")
			continue
		}
		_, err := s.db.ExecContext(ctx,
			"INSERT INTO projects (project_name, area_id, start_date, end_date, status, remarks) VALUES (?, ?, ?, ?, ?, ?)",
			p.name, areaID, p.startDate, p.endDate, p.status, p.remarks,
		)
		if err != nil {
			return fmt.Errorf("failed to seed project %s: %w", p.name, err)
		}
		seeded++
	}
	s.logger.WithField("count", seeded).Info("Seeded sample projects")
	return nil
}

func (s *Seeder) seedIncidents(ctx context.Context) error {
	empty, err := s.isEmpty(ctx, "incidents")
	if err != nil || !empty {
		return err
	}
	ids, err := s.areaIDsByName(ctx)
	if err != nil {
		return err
	}
	seeded := 0
	for _, i := range sampleIncidents {
		areaID, ok := ids[i.areaName]
		if !ok {
			s.logger.WithField("area", i.areaName).Warn("Skipping sample incident for missing area")
			continue
		}
		_, err := s.db.ExecContext(ctx,
			"INSERT INTO incidents (area_id, date, flood_level, damage_estimate, casualties, notes) VALUES (?, ?, ?, ?, ?, ?)",
			areaID, i.date, i.floodLevel, i.damage, i.casualties, i.notes,
		)
		if err != nil {
			return fmt.Errorf("failed to seed incident for %s: %w", i.areaName, err)
		}
		seeded++
	}
	s.logger.WithField("count", seeded).Info("Seeded sample incidents")
	return nil
}
