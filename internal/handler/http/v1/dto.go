package v1

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shenikar/flood_control_system/internal/models"
)

// FormValue - значение поля формы. Принимает строку или число JSON; пустое значение числового поля означает 0.
type FormValue string

func (v *FormValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("form value must be a string or a number")
	}
	*v = FormValue(n.String())
	return nil
}

// AreaRequest DTO для создания и обновления района
// @Description DTO для создания и обновления района
type AreaRequest struct {
	Name               FormValue `json:"name" swaggertype:"string"`
	Province           FormValue `json:"province" swaggertype:"string"`
	RiskLevel          FormValue `json:"risk_level" swaggertype:"string" enums:"High,Medium,Low"`
	PopulationAffected FormValue `json:"population_affected" swaggertype:"string"`
}

// ProjectRequest DTO для создания и обновления проекта
// @Description DTO для создания и обновления проекта
type ProjectRequest struct {
	ProjectName FormValue `json:"project_name" swaggertype:"string"`
	AreaID      FormValue `json:"area_id" swaggertype:"string"`
	StartDate   FormValue `json:"start_date" swaggertype:"string" example:"2025-01-01"`
	EndDate     FormValue `json:"end_date" swaggertype:"string" example:"2025-06-30"`
	Status      FormValue `json:"status" swaggertype:"string" enums:"Ongoing,Delayed,Completed"`
	Remarks     FormValue `json:"remarks" swaggertype:"string"`
}

// IncidentRequest DTO для создания и обновления инцидента
// @Description DTO для создания и обновления инцидента
type IncidentRequest struct {
	AreaID         FormValue `json:"area_id" swaggertype:"string"`
	Date           FormValue `json:"date" swaggertype:"string" example:"2025-04-12"`
	FloodLevel     FormValue `json:"flood_level" swaggertype:"string"`
	DamageEstimate FormValue `json:"damage_estimate" swaggertype:"string"`
	Casualties     FormValue `json:"casualties" swaggertype:"string"`
	Notes          FormValue `json:"notes" swaggertype:"string"`
}

// AreaResponse DTO для ответа с информацией о районе
// @Description DTO для ответа с информацией о районе
type AreaResponse struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Province           string    `json:"province"`
	RiskLevel          string    `json:"risk_level"`
	PopulationAffected int64     `json:"population_affected"`
	CreatedAt          time.Time `json:"created_at"`
}

// ProjectResponse DTO для ответа с информацией о проекте
// @Description DTO для ответа с информацией о проекте
type ProjectResponse struct {
	ID          int64     `json:"id"`
	ProjectName string    `json:"project_name"`
	AreaID      int64     `json:"area_id"`
	AreaName    string    `json:"area_name"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Status      string    `json:"status"`
	Remarks     string    `json:"remarks"`
	CreatedAt   time.Time `json:"created_at"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID             int64     `json:"id"`
	AreaID         int64     `json:"area_id"`
	AreaName       string    `json:"area_name"`
	Date           string    `json:"date"`
	FloodLevel     float64   `json:"flood_level"`
	DamageEstimate float64   `json:"damage_estimate"`
	Casualties     int64     `json:"casualties"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
}

// ReportKindResponse описывает доступный отчет
type ReportKindResponse struct {
	Kind  models.ReportKind `json:"kind"`
	Title string            `json:"title"`
}

// ErrorResponse - тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}
