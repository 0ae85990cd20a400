package models

import "time"

// DashboardCounts - текущие значения показателей и их значения на дату отсечки
type DashboardCounts struct {
	TotalAreas        int64
	TotalProjects     int64
	TotalIncidents    int64
	HighRiskAreas     int64
	AreasAtCutoff     int64
	ProjectsAtCutoff  int64
	IncidentsAtCutoff int64
	HighRiskAtCutoff  int64
}

type Tone string

const (
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
	ToneNeutral  Tone = "neutral"
)

// DashboardCard - карточка показателя на дашборде
type DashboardCard struct {
	Label   string `json:"label"`
	Value   int64  `json:"value"`
	Display string `json:"display"`
	Change  int64  `json:"change"`
	Summary string `json:"summary"`
	Tone    Tone   `json:"tone"`
	Color   string `json:"color"`
}

type Dashboard struct {
	Cards       []DashboardCard `json:"cards"`
	Chart       *ChartSpec      `json:"chart,omitempty"`
	CutoffDate  string          `json:"cutoff_date"`
	GeneratedAt time.Time       `json:"generated_at"`
}
