package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/flood_control_system/internal/models"
	"github.com/shenikar/flood_control_system/internal/service"
)

const areaOptionsCacheKey = "areas:options"

type AreaRepository struct {
	db          *sql.DB
	redisClient *redis.Client
	cacheTTL    time.Duration
}

// NewAreaRepository создает репозиторий районов. redisClient может быть nil, тогда кеш вариантов выбора отключен.
func NewAreaRepository(db *sql.DB, redisClient *redis.Client, cacheTTL time.Duration) service.AreaRepository {
	return &AreaRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create создает новую запись о районе в бд
func (r *AreaRepository) Create(ctx context.Context, area *models.Area) error {
	query := `
		INSERT INTO areas (name, province, risk_level, population_affected)
		VALUES (?, ?, ?, ?);
	`
	res, err := r.db.ExecContext(ctx, query,
		area.Name,
		area.Province,
		string(area.RiskLevel),
		area.PopulationAffected,
	)
	if err != nil {
		return fmt.Errorf("failed to create area: %w", translateConstraintError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read created area id: %w", err)
	}
	area.ID = id
	return nil
}

// GetByID возвращает район по его ID
func (r *AreaRepository) GetByID(ctx context.Context, id int64) (*models.Area, error) {
	area := &models.Area{}
	query := `
		SELECT
			id,
			name,
			province,
			risk_level,
			COALESCE(population_affected, 0),
			created_at
		FROM areas
		WHERE id = ?;
	`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&area.ID,
		&area.Name,
		&area.Province,
		&area.RiskLevel,
		&area.PopulationAffected,
		&area.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("area with id %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get area by id: %w", err)
	}
	return area, nil
}

func (r *AreaRepository) Update(ctx context.Context, area *models.Area) error {
	query := `
		UPDATE areas SET
			name = ?,
			province = ?,
			risk_level = ?,
			population_affected = ?
		WHERE id = ?;
	`
	_, err := r.db.ExecContext(ctx, query,
		area.Name,
		area.Province,
		string(area.RiskLevel),
		area.PopulationAffected,
		area.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update area: %w", translateConstraintError(err))
	}
	// MySQL не считает строку затронутой, если значения не изменились, поэтому существование проверяет сервис
	return nil
}

// Delete удаляет район. Внешние ключи с ON DELETE RESTRICT блокируют удаление района, на который есть ссылки.
func (r *AreaRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM areas WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete area: %w", translateConstraintError(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("area with id %d not found for delete: %w", id, models.ErrNotFound)
	}
	return nil
}

// List возвращает все районы по возрастанию ID
func (r *AreaRepository) List(ctx context.Context) ([]*models.Area, error) {
	query := `
		SELECT
			id,
			name,
			province,
			risk_level,
			COALESCE(population_affected, 0),
			created_at
		FROM areas
		ORDER BY id ASC;
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list areas: %w", err)
	}
	defer rows.Close()

	areas := make([]*models.Area, 0)
	for rows.Next() {
		area := &models.Area{}
		err := rows.Scan(
			&area.ID,
			&area.Name,
			&area.Province,
			&area.RiskLevel,
			&area.PopulationAffected,
			&area.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan area row: %w", err)
		}
		areas = append(areas, area)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return areas, nil
}

// ListOptions возвращает варианты выбора района вида "Manila (ID:1)"
func (r *AreaRepository) ListOptions(ctx context.Context) ([]models.AreaOption, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM areas ORDER BY id ASC;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list area options: %w", err)
	}
	defer rows.Close()

	options := make([]models.AreaOption, 0)
	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan area option row: %w", err)
		}
		options = append(options, models.NewAreaOption(id, name))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error area options iteration: %w", err)
	}
	return options, nil
}

// GetOptionsFromCache пытается получить варианты выбора района из Redis; промах дает nil, nil
func (r *AreaRepository) GetOptionsFromCache(ctx context.Context) ([]models.AreaOption, error) {
	if r.redisClient == nil {
		return nil, nil
	}
	val, err := r.redisClient.Get(ctx, areaOptionsCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get area options from cache: %w", err)
	}

	options := make([]models.AreaOption, 0)
	if err := json.Unmarshal(val, &options); err != nil {
		return nil, fmt.Errorf("failed to unmarshal area options from cache: %w", err)
	}
	return options, nil
}

// SetOptionsCache сохраняет варианты выбора района в Redis
func (r *AreaRepository) SetOptionsCache(ctx context.Context, options []models.AreaOption) error {
	if r.redisClient == nil {
		return nil
	}
	val, err := json.Marshal(options)
	if err != nil {
		return fmt.Errorf("failed to marshal area options for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, areaOptionsCacheKey, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set area options in cache: %w", err)
	}
	return nil
}

// InvalidateOptionsCache удаляет варианты выбора района из кеша
func (r *AreaRepository) InvalidateOptionsCache(ctx context.Context) error {
	if r.redisClient == nil {
		return nil
	}
	if err := r.redisClient.Del(ctx, areaOptionsCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate area options cache: %w", err)
	}
	return nil
}
