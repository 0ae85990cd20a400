package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/flood_control_system/internal/config"
	"github.com/shenikar/flood_control_system/internal/dashboard"
	v1 "github.com/shenikar/flood_control_system/internal/handler/http/v1"
	"github.com/shenikar/flood_control_system/internal/repository"
	"github.com/shenikar/flood_control_system/internal/schema"
	"github.com/shenikar/flood_control_system/internal/service"
	"github.com/shenikar/flood_control_system/internal/webhook"
	"github.com/shenikar/flood_control_system/pkg/logger"
	redisclient "github.com/shenikar/flood_control_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/flood_control_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Flood Control Monitoring API
// @version 1.0
// @description Areas, flood control projects, flood incidents, reports and dashboard.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// База, миграции и примеры данных
	db, err := schema.Provision(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to provision database: %v", err)
	}
	defer db.Close()
	log.Info("Successfully connected to MySQL")

	// Redis необязателен: без него нет кэша вариантов районов и уведомлений
	var (
		redisClient *redis.Client
		publisher   webhook.EventPublisher
	)
	redisClient, err = redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.WithError(err).Warn("Redis is unavailable, running without cache and change notifications")
		redisClient = nil
	} else {
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		publisher = webhook.NewEventPublisher(redisClient, cfg)
		webhook.NewWorker(redisClient, log, cfg).Start(ctx)
	}

	// Инициализация репозиториев
	areaRepo := repository.NewAreaRepository(db, redisClient, cfg.AreaOptionsTTL)
	projectRepo := repository.NewProjectRepository(db)
	incidentRepo := repository.NewIncidentRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Инициализация сервисов
	services := v1.Services{
		Areas:     service.NewAreaService(areaRepo, log, publisher),
		Projects:  service.NewProjectService(projectRepo, log, publisher),
		Incidents: service.NewIncidentService(incidentRepo, log, publisher),
		Reports:   service.NewReportService(reportRepo, log),
	}
	dashboardService := service.NewDashboardService(reportRepo, log, cfg.DashboardCutoffDate)

	refresher := dashboard.NewRefresher(dashboardService, log, cfg.DashboardRefreshInterval)
	refresher.Start(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(services, refresher, log)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(v1.RequestIDMiddleware())
	router.Use(cors.New(corsConfig(cfg)))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	cancel()
	<-refresher.Done()

	log.Info("Server gracefully stopped")
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	corsCfg.AddAllowHeaders("X-Request-ID")
	corsCfg.AddExposeHeaders("X-Request-ID", "Content-Disposition")
	return corsCfg
}
