package models

import "time"

// ReportKind - один из фиксированных отчетов
type ReportKind string

const (
	ReportTopDamageAreas            ReportKind = "top-damage-areas"
	ReportRecentIncidents           ReportKind = "recent-incidents"
	ReportDelayedProjects           ReportKind = "delayed-projects"
	ReportProjectStatusDistribution ReportKind = "project-status-distribution"
)

var reportTitles = map[ReportKind]string{
	ReportTopDamageAreas:            "Top Damage Areas",
	ReportRecentIncidents:           "Recent Incidents",
	ReportDelayedProjects:           "Delayed Projects",
	ReportProjectStatusDistribution: "Project Status Distribution",
}

// ReportKinds возвращает все отчеты в порядке отображения
func ReportKinds() []ReportKind {
	return []ReportKind{
		ReportTopDamageAreas,
		ReportRecentIncidents,
		ReportDelayedProjects,
		ReportProjectStatusDistribution,
	}
}

// Title возвращает человекочитаемое название отчета
func (k ReportKind) Title() string {
	return reportTitles[k]
}

func (k ReportKind) Valid() bool {
	_, ok := reportTitles[k]
	return ok
}

type ChartType string

const (
	ChartBar ChartType = "bar"
	ChartPie ChartType = "pie"
)

// ChartPoint - пара (подпись, значение) для отрисовки графика
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartSpec описывает график, который рисует слой представления
type ChartSpec struct {
	Type   ChartType    `json:"type"`
	Title  string       `json:"title"`
	YLabel string       `json:"y_label,omitempty"`
	Points []ChartPoint `json:"points"`
}

// Report - результат выполнения отчета: таблица и необязательный график
type Report struct {
	Kind    ReportKind `json:"kind"`
	Title   string     `json:"title"`
	Headers []string   `json:"headers"`
	Rows    [][]any    `json:"rows"`
	Chart   *ChartSpec `json:"chart,omitempty"`
}

// AreaDamage - строка отчета "Top Damage Areas"
type AreaDamage struct {
	AreaName    string
	TotalDamage float64
}

// RecentIncident - строка отчета "Recent Incidents"
type RecentIncident struct {
	ID             int64
	AreaName       string
	Date           time.Time
	FloodLevel     float64
	DamageEstimate float64
}

// StatusCount - строка отчета "Project Status Distribution"
type StatusCount struct {
	Status ProjectStatus
	Count  int64
}

// AreaFloodLevel - средний уровень воды по району для графика на дашборде
type AreaFloodLevel struct {
	AreaName   string
	FloodLevel float64
}
