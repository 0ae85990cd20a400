package schema

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/shenikar/flood_control_system/internal/config"
	"github.com/shenikar/flood_control_system/pkg/mysql"
	"github.com/sirupsen/logrus"
)

// Migrate применяет миграции из MIGRATIONS_PATH. Повторный запуск без новых миграций не считается ошибкой.
func Migrate(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL, err := mysql.MigrationURL(cfg.DatabaseURL)
	if err != nil {
		return err
	}

	m, err := migrate.New(
		"file://"+cfg.MigrationsPath,
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}
