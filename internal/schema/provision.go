package schema

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shenikar/flood_control_system/internal/config"
	"github.com/shenikar/flood_control_system/pkg/mysql"
	"github.com/sirupsen/logrus"
)

// Provision готовит базу данных при старте: создает ее при отсутствии, применяет миграции,
// открывает пул и заполняет пустые таблицы примерами. Любая ошибка здесь фатальна для запуска.
func Provision(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*sql.DB, error) {
	if err := mysql.EnsureDatabase(ctx, cfg.DatabaseURL); err != nil {
		return nil, fmt.Errorf("could not ensure database: %w", err)
	}

	if err := Migrate(cfg, log); err != nil {
		return nil, err
	}

	db, err := mysql.NewMySQLDB(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not connect to MySQL: %w", err)
	}

	if cfg.SeedSampleData {
		if err := NewSeeder(db, log).Seed(ctx); err != nil {
			db.Close()
			return nil, err
		}
	}

	return db, nil
}
