package service

//go:generate mockgen -source=report.go -destination=mocks/mock_report.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/shenikar/flood_control_system/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	topDamageAreasLimit  = 10
	recentIncidentsLimit = 20
)

// ReportRepository определяет фиксированные агрегирующие запросы для отчетов
type ReportRepository interface {
	TopDamageAreas(ctx context.Context, limit int) ([]models.AreaDamage, error)
	RecentIncidents(ctx context.Context, limit int) ([]models.RecentIncident, error)
	ProjectsByStatus(ctx context.Context, status models.ProjectStatus) ([]*models.Project, error)
	ProjectStatusCounts(ctx context.Context) ([]models.StatusCount, error)
}

// ReportService выполняет один из фиксированных отчетов
type ReportService interface {
	ListReports() []models.ReportKind
	RunReport(ctx context.Context, kind models.ReportKind) (*models.Report, error)
}

type reportService struct {
	repo   ReportRepository
	logger *logrus.Logger
}

func NewReportService(repo ReportRepository, logger *logrus.Logger) ReportService {
	return &reportService{
		repo:   repo,
		logger: logger,
	}
}

func (s *reportService) ListReports() []models.ReportKind {
	return models.ReportKinds()
}

// RunReport строит отчет заново при каждом вызове: таблица и график полностью заменяют предыдущие
func (s *reportService) RunReport(ctx context.Context, kind models.ReportKind) (*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "RunReport",
		"report":  kind,
	})

	if !kind.Valid() {
		log.Warn("Unknown report requested")
		return nil, fmt.Errorf("service: %w: %q", models.ErrUnknownReport, kind)
	}

	report := &models.Report{
		Kind:  kind,
		Title: kind.Title(),
		Rows:  [][]any{},
	}

	var err error
	switch kind {
	case models.ReportTopDamageAreas:
		err = s.topDamageAreas(ctx, report)
	case models.ReportRecentIncidents:
		err = s.recentIncidents(ctx, report)
	case models.ReportDelayedProjects:
		err = s.delayedProjects(ctx, report)
	case models.ReportProjectStatusDistribution:
		err = s.statusDistribution(ctx, report)
	}
	if err != nil {
		log.WithError(err).Error("Failed to run report")
		return nil, fmt.Errorf("service: could not run report %s: %w", kind, err)
	}

	log.WithField("rows", len(report.Rows)).Info("Report completed")
	return report, nil
}

func (s *reportService) topDamageAreas(ctx context.Context, report *models.Report) error {
	rows, err := s.repo.TopDamageAreas(ctx, topDamageAreasLimit)
	if err != nil {
		return err
	}
	report.Headers = []string{"Area", "Total Damage (PHP)"}
	report.Rows = lo.Map(rows, func(r models.AreaDamage, _ int) []any {
		return []any{r.AreaName, r.TotalDamage}
	})
	if len(rows) > 0 {
		report.Chart = &models.ChartSpec{
			Type:   models.ChartBar,
			Title:  "Top Damage by Area",
			YLabel: "Damage (PHP)",
			Points: lo.Map(rows, func(r models.AreaDamage, _ int) models.ChartPoint {
				return models.ChartPoint{Label: r.AreaName, Value: r.TotalDamage}
			}),
		}
	}
	return nil
}

func (s *reportService) recentIncidents(ctx context.Context, report *models.Report) error {
	rows, err := s.repo.RecentIncidents(ctx, recentIncidentsLimit)
	if err != nil {
		return err
	}
	report.Headers = []string{"ID", "Area", "Date", "Level(m)", "Damage"}
	report.Rows = lo.Map(rows, func(r models.RecentIncident, _ int) []any {
		return []any{r.ID, r.AreaName, FormatDate(&r.Date), r.FloodLevel, r.DamageEstimate}
	})
	return nil
}

func (s *reportService) delayedProjects(ctx context.Context, report *models.Report) error {
	projects, err := s.repo.ProjectsByStatus(ctx, models.StatusDelayed)
	if err != nil {
		return err
	}
	report.Headers = []string{"ID", "Project", "Area", "Start", "End", "Status"}
	report.Rows = lo.Map(projects, func(p *models.Project, _ int) []any {
		return []any{p.ID, p.ProjectName, p.AreaName, FormatDate(p.StartDate), FormatDate(p.EndDate), string(p.Status)}
	})
	return nil
}

func (s *reportService) statusDistribution(ctx context.Context, report *models.Report) error {
	counts, err := s.repo.ProjectStatusCounts(ctx)
	if err != nil {
		return err
	}
	report.Headers = []string{"Status", "Count"}
	report.Rows = lo.Map(counts, func(c models.StatusCount, _ int) []any {
		return []any{string(c.Status), c.Count}
	})
	if len(counts) > 0 {
		report.Chart = &models.ChartSpec{
			Type:   models.ChartPie,
			Title:  "Projects by Status",
			Points: lo.Map(counts, func(c models.StatusCount, _ int) models.ChartPoint {
				return models.ChartPoint{Label: string(c.Status), Value: float64(c.Count)}
			}),
		}
	}
	return nil
}
