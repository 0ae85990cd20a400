package v1

import (
	"github.com/samber/lo"
	"github.com/shenikar/flood_control_system/internal/models"
	"github.com/shenikar/flood_control_system/internal/service"
)

// AreaRequestToForm преобразует DTO в форму контроллера районов
func AreaRequestToForm(req AreaRequest) service.AreaForm {
	return service.AreaForm{
		Name:               string(req.Name),
		Province:           string(req.Province),
		RiskLevel:          string(req.RiskLevel),
		PopulationAffected: string(req.PopulationAffected),
	}
}

func ProjectRequestToForm(req ProjectRequest) service.ProjectForm {
	return service.ProjectForm{
		ProjectName: string(req.ProjectName),
		AreaID:      string(req.AreaID),
		StartDate:   string(req.StartDate),
		EndDate:     string(req.EndDate),
		Status:      string(req.Status),
		Remarks:     string(req.Remarks),
	}
}

func IncidentRequestToForm(req IncidentRequest) service.IncidentForm {
	return service.IncidentForm{
		AreaID:         string(req.AreaID),
		Date:           string(req.Date),
		FloodLevel:     string(req.FloodLevel),
		DamageEstimate: string(req.DamageEstimate),
		Casualties:     string(req.Casualties),
		Notes:          string(req.Notes),
	}
}

// ModelToAreaResponse преобразует доменную модель в DTO для ответа
func ModelToAreaResponse(model *models.Area) *AreaResponse {
	return &AreaResponse{
		ID:                 model.ID,
		Name:               model.Name,
		Province:           model.Province,
		RiskLevel:          string(model.RiskLevel),
		PopulationAffected: model.PopulationAffected,
		CreatedAt:          model.CreatedAt,
	}
}

func ModelToProjectResponse(model *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:          model.ID,
		ProjectName: model.ProjectName,
		AreaID:      model.AreaID,
		AreaName:    model.AreaName,
		StartDate:   service.FormatDate(model.StartDate),
		EndDate:     service.FormatDate(model.EndDate),
		Status:      string(model.Status),
		Remarks:     model.Remarks,
		CreatedAt:   model.CreatedAt,
	}
}

func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:             model.ID,
		AreaID:         model.AreaID,
		AreaName:       model.AreaName,
		Date:           service.FormatDate(&model.Date),
		FloodLevel:     model.FloodLevel,
		DamageEstimate: model.DamageEstimate,
		Casualties:     model.Casualties,
		Notes:          model.Notes,
		CreatedAt:      model.CreatedAt,
	}
}

// ModelsToAreaResponses преобразует слайс моделей в слайс DTO
func ModelsToAreaResponses(areas []*models.Area) []*AreaResponse {
	return lo.Map(areas, func(a *models.Area, _ int) *AreaResponse { return ModelToAreaResponse(a) })
}

func ModelsToProjectResponses(projects []*models.Project) []*ProjectResponse {
	return lo.Map(projects, func(p *models.Project, _ int) *ProjectResponse { return ModelToProjectResponse(p) })
}

func ModelsToIncidentResponses(incidents []*models.Incident) []*IncidentResponse {
	return lo.Map(incidents, func(i *models.Incident, _ int) *IncidentResponse { return ModelToIncidentResponse(i) })
}

func ReportKindsToResponses(kinds []models.ReportKind) []ReportKindResponse {
	return lo.Map(kinds, func(k models.ReportKind, _ int) ReportKindResponse {
		return ReportKindResponse{Kind: k, Title: k.Title()}
	})
}
