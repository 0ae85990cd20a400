package service

//go:generate mockgen -source=dashboard.go -destination=mocks/mock_dashboard.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shenikar/flood_control_system/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	colorPositive = "#4CAF50"
	colorNegative = "#F44336"
	colorNeutral  = "#9E9E9E"
)

// DashboardRepository определяет запросы для сводки на дашборде
type DashboardRepository interface {
	Counts(ctx context.Context, cutoff string) (*models.DashboardCounts, error)
	AverageFloodLevels(ctx context.Context) ([]models.AreaFloodLevel, error)
}

// DashboardService собирает карточки показателей и график среднего уровня воды
type DashboardService interface {
	BuildDashboard(ctx context.Context) (*models.Dashboard, error)
}

type dashboardService struct {
	repo   DashboardRepository
	logger *logrus.Logger
	cutoff time.Time
}

func NewDashboardService(repo DashboardRepository, logger *logrus.Logger, cutoff time.Time) DashboardService {
	return &dashboardService{
		repo:   repo,
		logger: logger,
		cutoff: cutoff,
	}
}

func (s *dashboardService) BuildDashboard(ctx context.Context) (*models.Dashboard, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "BuildDashboard",
	})

	cutoff := s.cutoff.Format(dateLayout)
	counts, err := s.repo.Counts(ctx, cutoff)
	if err != nil {
		log.WithError(err).Error("Failed to load dashboard counts")
		return nil, fmt.Errorf("service: could not load dashboard counts: %w", err)
	}

	levels, err := s.repo.AverageFloodLevels(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load average flood levels")
		return nil, fmt.Errorf("service: could not load average flood levels: %w", err)
	}

	dashboard := &models.Dashboard{
		Cards: []models.DashboardCard{
			newCard("Total Areas", counts.TotalAreas, counts.AreasAtCutoff, true, cutoff),
			newCard("Total Projects", counts.TotalProjects, counts.ProjectsAtCutoff, true, cutoff),
			newCard("Total Incidents", counts.TotalIncidents, counts.IncidentsAtCutoff, false, cutoff),
			newCard("High Risk Areas", counts.HighRiskAreas, counts.HighRiskAtCutoff, false, cutoff),
		},
		CutoffDate:  cutoff,
		GeneratedAt: time.Now().UTC(),
	}

	if len(levels) > 0 {
		chart := &models.ChartSpec{
			Type:   models.ChartBar,
			Title:  "Average Flood Level per Area",
			YLabel: "Flood Level (meters)",
			Points: make([]models.ChartPoint, 0, len(levels)),
		}
		for _, l := range levels {
			chart.Points = append(chart.Points, models.ChartPoint{Label: l.AreaName, Value: l.FloodLevel})
		}
		dashboard.Chart = chart
	}

	return dashboard, nil
}

// newCard сравнивает текущее значение со значением на дату отсечки.
// positiveIsGood задает, считается ли рост хорошим (районы, проекты) или плохим (инциденты, высокий риск).
func newCard(label string, current, atCutoff int64, positiveIsGood bool, cutoff string) models.DashboardCard {
	card := models.DashboardCard{
		Label:   label,
		Value:   current,
		Display: humanize.Comma(current),
		Change:  current - atCutoff,
	}

	switch {
	case card.Change > 0:
		card.Summary = fmt.Sprintf("+%d since %s", card.Change, cutoff)
		card.Tone = toneFor(positiveIsGood)
	case card.Change < 0:
		card.Summary = fmt.Sprintf("%d since %s", card.Change, cutoff)
		card.Tone = toneFor(!positiveIsGood)
	default:
		card.Summary = "No change"
		card.Tone = models.ToneNeutral
	}

	switch card.Tone {
	case models.TonePositive:
		card.Color = colorPositive
	case models.ToneNegative:
		card.Color = colorNegative
	default:
		card.Color = colorNeutral
	}
	return card
}

func toneFor(good bool) models.Tone {
	if good {
		return models.TonePositive
	}
	return models.ToneNegative
}
