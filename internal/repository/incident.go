package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shenikar/flood_control_system/internal/models"
	"github.com/shenikar/flood_control_system/internal/service"
)

const incidentColumns = `
	i.id,
	i.area_id,
	a.name,
	i.date,
	COALESCE(i.flood_level, 0),
	COALESCE(i.damage_estimate, 0),
	COALESCE(i.casualties, 0),
	COALESCE(i.notes, ''),
	i.created_at`

type IncidentRepository struct {
	db *sql.DB
}

func NewIncidentRepository(db *sql.DB) service.IncidentRepository {
	return &IncidentRepository{db: db}
}

func scanIncident(row rowScanner) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.AreaID,
		&incident.AreaName,
		&incident.Date,
		&incident.FloodLevel,
		&incident.DamageEstimate,
		&incident.Casualties,
		&incident.Notes,
		&incident.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return incident, nil
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (area_id, date, flood_level, damage_estimate, casualties, notes)
		VALUES (?, ?, ?, ?, ?, ?);
	`
	res, err := r.db.ExecContext(ctx, query,
		incident.AreaID,
		incident.Date,
		incident.FloodLevel,
		incident.DamageEstimate,
		incident.Casualties,
		incident.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", translateConstraintError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read created incident id: %w", err)
	}
	incident.ID = id
	return nil
}

// GetByID возвращает инцидент по его ID
func (r *IncidentRepository) GetByID(ctx context.Context, id int64) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + `
		FROM incidents i
		JOIN areas a ON i.area_id = a.id
		WHERE i.id = ?;
	`
	incident, err := scanIncident(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

func (r *IncidentRepository) Update(ctx context.Context, incident *models.Incident) error {
	var found int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM incidents WHERE id = ?;`, incident.ID).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("incident with id %d not found for update: %w", incident.ID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to check incident existence: %w", err)
	}

	query := `
		UPDATE incidents SET
			area_id = ?,
			date = ?,
			flood_level = ?,
			damage_estimate = ?,
			casualties = ?,
			notes = ?
		WHERE id = ?;
	`
	_, err = r.db.ExecContext(ctx, query,
		incident.AreaID,
		incident.Date,
		incident.FloodLevel,
		incident.DamageEstimate,
		incident.Casualties,
		incident.Notes,
		incident.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update incident: %w", translateConstraintError(err))
	}
	return nil
}

// Delete удаляет инцидент по ID
func (r *IncidentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM incidents WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete incident: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("incident with id %d not found for delete: %w", id, models.ErrNotFound)
	}
	return nil
}

// List возвращает инциденты с названием района по возрастанию ID
func (r *IncidentRepository) List(ctx context.Context) ([]*models.Incident, error) {
	query := `SELECT ` + incidentColumns + `
		FROM incidents i
		JOIN areas a ON i.area_id = a.id
		ORDER BY i.id ASC;
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}
