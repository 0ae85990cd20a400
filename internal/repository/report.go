package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shenikar/flood_control_system/internal/models"
	"github.com/shenikar/flood_control_system/internal/service"
)

// ReportRepository выполняет фиксированные агрегирующие запросы для отчетов и дашборда
type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

var (
	_ service.ReportRepository    = (*ReportRepository)(nil)
	_ service.DashboardRepository = (*ReportRepository)(nil)
)

// TopDamageAreas возвращает районы с наибольшим суммарным ущербом
func (r *ReportRepository) TopDamageAreas(ctx context.Context, limit int) ([]models.AreaDamage, error) {
	query := `
		SELECT a.name, SUM(i.damage_estimate) AS total_damage
		FROM areas a
		JOIN incidents i ON a.id = i.area_id
		GROUP BY a.id, a.name
		ORDER BY total_damage DESC
		LIMIT ?;
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top damage areas: %w", err)
	}
	defer rows.Close()

	result := make([]models.AreaDamage, 0)
	for rows.Next() {
		var (
			row   models.AreaDamage
			total sql.NullFloat64
		)
		if err := rows.Scan(&row.AreaName, &total); err != nil {
			return nil, fmt.Errorf("failed to scan top damage row: %w", err)
		}
		row.TotalDamage = total.Float64
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error top damage iteration: %w", err)
	}
	return result, nil
}

// RecentIncidents возвращает последние инциденты по дате
func (r *ReportRepository) RecentIncidents(ctx context.Context, limit int) ([]models.RecentIncident, error) {
	query := `
		SELECT i.id, a.name, i.date, COALESCE(i.flood_level, 0), COALESCE(i.damage_estimate, 0)
		FROM incidents i
		JOIN areas a ON i.area_id = a.id
		ORDER BY i.date DESC
		LIMIT ?;
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent incidents: %w", err)
	}
	defer rows.Close()

	result := make([]models.RecentIncident, 0)
	for rows.Next() {
		var row models.RecentIncident
		if err := rows.Scan(&row.ID, &row.AreaName, &row.Date, &row.FloodLevel, &row.DamageEstimate); err != nil {
			return nil, fmt.Errorf("failed to scan recent incident row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error recent incidents iteration: %w", err)
	}
	return result, nil
}

// ProjectsByStatus возвращает проекты с указанным статусом в порядке даты начала
func (r *ReportRepository) ProjectsByStatus(ctx context.Context, status models.ProjectStatus) ([]*models.Project, error) {
	query := `SELECT ` + projectColumns + `
		FROM projects p
		JOIN areas a ON p.area_id = a.id
		WHERE p.status = ?
		ORDER BY p.start_date;
	`
	rows, err := r.db.QueryContext(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to query projects by status: %w", err)
	}
	defer rows.Close()

	projects := make([]*models.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error projects by status iteration: %w", err)
	}
	return projects, nil
}

// ProjectStatusCounts возвращает количество проектов по статусам
func (r *ReportRepository) ProjectStatusCounts(ctx context.Context) ([]models.StatusCount, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM projects GROUP BY status;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query project status counts: %w", err)
	}
	defer rows.Close()

	result := make([]models.StatusCount, 0)
	for rows.Next() {
		var (
			status sql.NullString
			row    models.StatusCount
		)
		if err := rows.Scan(&status, &row.Count); err != nil {
			return nil, fmt.Errorf("failed to scan status count row: %w", err)
		}
		row.Status = models.ProjectStatus(status.String)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error status counts iteration: %w", err)
	}
	return result, nil
}

// Counts возвращает показатели дашборда одним запросом; дата отсечки передается параметром
func (r *ReportRepository) Counts(ctx context.Context, cutoff string) (*models.DashboardCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM areas),
			(SELECT COUNT(*) FROM projects),
			(SELECT COUNT(*) FROM incidents),
			(SELECT COUNT(*) FROM areas WHERE risk_level = ?),
			(SELECT COUNT(*) FROM areas WHERE created_at <= ?),
			(SELECT COUNT(*) FROM projects WHERE created_at <= ?),
			(SELECT COUNT(*) FROM incidents WHERE created_at <= ?),
			(SELECT COUNT(*) FROM areas WHERE risk_level = ? AND created_at <= ?);
	`
	counts := &models.DashboardCounts{}
	err := r.db.QueryRowContext(ctx, query,
		string(models.RiskHigh),
		cutoff,
		cutoff,
		cutoff,
		string(models.RiskHigh),
		cutoff,
	).Scan(
		&counts.TotalAreas,
		&counts.TotalProjects,
		&counts.TotalIncidents,
		&counts.HighRiskAreas,
		&counts.AreasAtCutoff,
		&counts.ProjectsAtCutoff,
		&counts.IncidentsAtCutoff,
		&counts.HighRiskAtCutoff,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query dashboard counts: %w", err)
	}
	return counts, nil
}

// AverageFloodLevels возвращает средний уровень воды по районам
func (r *ReportRepository) AverageFloodLevels(ctx context.Context) ([]models.AreaFloodLevel, error) {
	query := `
		SELECT a.name, AVG(i.flood_level)
		FROM incidents i
		JOIN areas a ON i.area_id = a.id
		GROUP BY a.name;
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query average flood levels: %w", err)
	}
	defer rows.Close()

	result := make([]models.AreaFloodLevel, 0)
	for rows.Next() {
		var (
			row   models.AreaFloodLevel
			level sql.NullFloat64
		)
		if err := rows.Scan(&row.AreaName, &level); err != nil {
			return nil, fmt.Errorf("failed to scan flood level row: %w", err)
		}
		row.FloodLevel = level.Float64
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error flood level iteration: %w", err)
	}
	return result, nil
}
