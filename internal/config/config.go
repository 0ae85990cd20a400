package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL     string `env:"DATABASE_URL"`
	DBMaxOpenConns  int    `env:"DB_MAX_OPEN_CONNS" envDefault:"4"`
	MigrationsPath  string `env:"MIGRATIONS_PATH" envDefault:"migrations"`
	SeedSampleData  bool   `env:"SEED_SAMPLE_DATA" envDefault:"true"`
	HTTPPort        string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string `env:"LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration

	// Redis Config
	RedisAddr      string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass      string        `env:"REDIS_PASSWORD"`
	RedisDB        int           `env:"REDIS_DB" envDefault:"0"`
	AreaOptionsTTL time.Duration `env:"AREA_OPTIONS_TTL" envDefault:"5m"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Dashboard Config
	DashboardRefreshInterval time.Duration `env:"DASHBOARD_REFRESH_INTERVAL" envDefault:"5s"`
	DashboardCutoffDate      time.Time     `env:"DASHBOARD_CUTOFF_DATE" envDefault:"2025-01-01"`

	// CORS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS"`
}

const dateLayout = "2006-01-02"

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cutoff, err := time.Parse(dateLayout, getEnv("DASHBOARD_CUTOFF_DATE", "2025-01-01"))
	if err != nil {
		return nil, fmt.Errorf("DASHBOARD_CUTOFF_DATE must be YYYY-MM-DD: %w", err)
	}

	cfg := &Config{
		DatabaseURL:              os.Getenv("DATABASE_URL"),
		DBMaxOpenConns:           getEnvAsInt("DB_MAX_OPEN_CONNS", 4),
		MigrationsPath:           getEnv("MIGRATIONS_PATH", "migrations"),
		SeedSampleData:           getEnvAsBool("SEED_SAMPLE_DATA", true),
		HTTPPort:                 getEnv("HTTP_PORT", "8080"),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
		LogFormat:                getEnv("LOG_FORMAT", "json"),
		ShutdownTimeout:          getEnvAsDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		RedisAddr:                getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:                os.Getenv("REDIS_PASSWORD"),
		RedisDB:                  getEnvAsInt("REDIS_DB", 0),
		AreaOptionsTTL:           getEnvAsDuration("AREA_OPTIONS_TTL", 5*time.Minute),
		WebhookURL:               os.Getenv("WEBHOOK_URL"),
		WebhookSecret:            os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:           getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:        getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:         getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		DashboardRefreshInterval: getEnvAsDuration("DASHBOARD_REFRESH_INTERVAL", 5*time.Second),
		DashboardCutoffDate:      cutoff,
	}

	// Разрешенные источники для CORS
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.DashboardRefreshInterval <= 0 {
		return nil, fmt.Errorf("DASHBOARD_REFRESH_INTERVAL must be positive")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
