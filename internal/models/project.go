package models

import "time"

// ProjectStatus - статус проекта по защите от наводнений
type ProjectStatus string

const (
	StatusOngoing   ProjectStatus = "Ongoing"
	StatusDelayed   ProjectStatus = "Delayed"
	StatusCompleted ProjectStatus = "Completed"
)

// ProjectStatuses возвращает допустимые статусы в порядке отображения
func ProjectStatuses() []ProjectStatus {
	return []ProjectStatus{StatusOngoing, StatusDelayed, StatusCompleted}
}

type Project struct {
	ID          int64         `json:"id"`
	ProjectName string        `json:"project_name"`
	AreaID      int64         `json:"area_id"`
	AreaName    string        `json:"area_name"`
	StartDate   *time.Time    `json:"start_date"`
	EndDate     *time.Time    `json:"end_date"`
	Status      ProjectStatus `json:"status"`
	Remarks     string        `json:"remarks"`
	CreatedAt   time.Time     `json:"created_at"`
}
