package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/shenikar/flood_control_system/internal/config"
)

var databaseNamePattern = regexp.MustCompile(`^[A-Za-z0-9_$]+$`)

// ParseDSN разбирает DATABASE_URL и включает parseTime, без которого DATE не сканируется в time.Time
func ParseDSN(dsn string) (*mysql.Config, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("ошибка при разборе DSN mysql: %w", err)
	}
	cfg.ParseTime = true
	if cfg.Loc == nil {
		cfg.Loc = time.UTC
	}
	return cfg, nil
}

// EnsureDatabase создает базу данных из DSN, если она еще не существует
func EnsureDatabase(ctx context.Context, dsn string) error {
	cfg, err := ParseDSN(dsn)
	if err != nil {
		return err
	}
	name := cfg.DBName
	if name == "" {
		return fmt.Errorf("DATABASE_URL must name a database")
	}
	if !databaseNamePattern.MatchString(name) {
		return fmt.Errorf("invalid database name %q", name)
	}

	// Имя базы нельзя передать параметром, поэтому подключаемся без схемы и экранируем имя
	serverCfg := cfg.Clone()
	serverCfg.DBName = ""
	db, err := sql.Open("mysql", serverCfg.FormatDSN())
	if err != nil {
		return fmt.Errorf("не удалось открыть соединение с mysql: %w", err)
	}
	defer db.Close()

	query := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s` CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci", name)
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("не удалось создать базу данных %s: %w", name, err)
	}
	return nil
}

// NewMySQLDB открывает *sql.DB без простаивающих соединений: каждый запрос берет соединение и закрывает его после себя
func NewMySQLDB(ctx context.Context, appCfg *config.Config) (*sql.DB, error) {
	cfg, err := ParseDSN(appCfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании коннектора mysql: %w", err)
	}
	db := sql.OpenDB(connector)
	db.SetMaxIdleConns(0)
	if appCfg.DBMaxOpenConns > 0 {
		db.SetMaxOpenConns(appCfg.DBMaxOpenConns)
	}

	// Проверяем соединение с базой данных
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось выполнить ping к mysql: %w", err)
	}

	return db, nil
}

// MigrationURL возвращает URL для golang-migrate с включенными multiStatements
func MigrationURL(dsn string) (string, error) {
	cfg, err := ParseDSN(dsn)
	if err != nil {
		return "", err
	}
	cfg.MultiStatements = true
	return "mysql://" + cfg.FormatDSN(), nil
}
