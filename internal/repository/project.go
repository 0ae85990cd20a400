package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/flood_control_system/internal/models"
	"github.com/shenikar/flood_control_system/internal/service"
)

const projectColumns = `
	p.id,
	p.project_name,
	p.area_id,
	a.name,
	p.start_date,
	p.end_date,
	COALESCE(p.status, 'Ongoing'),
	COALESCE(p.remarks, ''),
	p.created_at`

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) service.ProjectRepository {
	return &ProjectRepository{db: db}
}

// nullDate переводит необязательную дату в значение для привязки параметра
func nullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func datePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*models.Project, error) {
	project := &models.Project{}
	var start, end sql.NullTime
	err := row.Scan(
		&project.ID,
		&project.ProjectName,
		&project.AreaID,
		&project.AreaName,
		&start,
		&end,
		&project.Status,
		&project.Remarks,
		&project.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	project.StartDate = datePtr(start)
	project.EndDate = datePtr(end)
	return project, nil
}

// Create создает новую запись о проекте в бд
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (project_name, area_id, start_date, end_date, status, remarks)
		VALUES (?, ?, ?, ?, ?, ?);
	`
	res, err := r.db.ExecContext(ctx, query,
		project.ProjectName,
		project.AreaID,
		nullDate(project.StartDate),
		nullDate(project.EndDate),
		string(project.Status),
		project.Remarks,
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", translateConstraintError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read created project id: %w", err)
	}
	project.ID = id
	return nil
}

// GetByID возвращает проект с названием района
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	query := `SELECT ` + projectColumns + `
		FROM projects p
		JOIN areas a ON p.area_id = a.id
		WHERE p.id = ?;
	`
	project, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("project with id %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get project by id: %w", err)
	}
	return project, nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	if err := r.ensureExists(ctx, project.ID); err != nil {
		return err
	}
	query := `
		UPDATE projects SET
			project_name = ?,
			area_id = ?,
			start_date = ?,
			end_date = ?,
			status = ?,
			remarks = ?
		WHERE id = ?;
	`
	_, err := r.db.ExecContext(ctx, query,
		project.ProjectName,
		project.AreaID,
		nullDate(project.StartDate),
		nullDate(project.EndDate),
		string(project.Status),
		project.Remarks,
		project.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", translateConstraintError(err))
	}
	return nil
}

// Delete удаляет проект по ID
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("project with id %d not found for delete: %w", id, models.ErrNotFound)
	}
	return nil
}

// List возвращает проекты, новые первыми
func (r *ProjectRepository) List(ctx context.Context) ([]*models.Project, error) {
	query := `SELECT ` + projectColumns + `
		FROM projects p
		JOIN areas a ON p.area_id = a.id
		ORDER BY p.created_at DESC;
	`
	return r.query(ctx, query)
}

func (r *ProjectRepository) query(ctx context.Context, query string, args ...any) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
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
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return projects, nil
}

// ensureExists нужен потому, что MySQL возвращает 0 затронутых строк и для UPDATE без изменений
func (r *ProjectRepository) ensureExists(ctx context.Context, id int64) error {
	var found int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM projects WHERE id = ?;`, id).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("project with id %d not found for update: %w", id, models.ErrNotFound)
		}
		return fmt.Errorf("failed to check project existence: %w", err)
	}
	return nil
}
