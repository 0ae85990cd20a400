package models

import (
	"fmt"
	"time"
)

// RiskLevel - уровень паводкового риска района
type RiskLevel string

const (
	RiskHigh   RiskLevel = "High"
	RiskMedium RiskLevel = "Medium"
	RiskLow    RiskLevel = "Low"
)

// RiskLevels возвращает допустимые значения в порядке отображения
func RiskLevels() []RiskLevel {
	return []RiskLevel{RiskHigh, RiskMedium, RiskLow}
}

// Area - географический район, для которого отслеживается риск наводнений
type Area struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Province           string    `json:"province"`
	RiskLevel          RiskLevel `json:"risk_level"`
	PopulationAffected int64     `json:"population_affected"`
	CreatedAt          time.Time `json:"created_at"`
}

// AreaOption - пункт выпадающего списка районов для форм проектов и инцидентов.
// Клиент отправляет обратно ID, подпись никогда не разбирается.
type AreaOption struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// NewAreaOption строит подпись вида "Manila (ID:1)"
func NewAreaOption(id int64, name string) AreaOption {
	return AreaOption{ID: id, Label: fmt.Sprintf("%s (ID:%d)", name, id)}
}
