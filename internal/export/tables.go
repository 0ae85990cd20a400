package export

import (
	"github.com/samber/lo"
	"github.com/shenikar/flood_control_system/internal/models"
	"github.com/shenikar/flood_control_system/internal/service"
)

// AreasTable строит таблицу районов с теми же колонками, что и список на экране
func AreasTable(areas []*models.Area) Table {
	return Table{
		Headers: []string{"id", "name", "province", "risk", "population"},
		Rows: lo.Map(areas, func(a *models.Area, _ int) []any {
			return []any{a.ID, a.Name, a.Province, string(a.RiskLevel), a.PopulationAffected}
		}),
	}
}

func ProjectsTable(projects []*models.Project) Table {
	return Table{
		Headers: []string{"id", "name", "area", "start", "end", "status", "remarks"},
		Rows: lo.Map(projects, func(p *models.Project, _ int) []any {
			return []any{p.ID, p.ProjectName, p.AreaName, service.FormatDate(p.StartDate), service.FormatDate(p.EndDate), string(p.Status), p.Remarks}
		}),
	}
}

func IncidentsTable(incidents []*models.Incident) Table {
	return Table{
		Headers: []string{"id", "area", "date", "level", "damage", "casualties", "notes"},
		Rows: lo.Map(incidents, func(i *models.Incident, _ int) []any {
			return []any{i.ID, i.AreaName, service.FormatDate(&i.Date), i.FloodLevel, i.DamageEstimate, i.Casualties, i.Notes}
		}),
	}
}

// ReportTable берет заголовки и строки отчета как есть
func ReportTable(report *models.Report) Table {
	return Table{Headers: report.Headers, Rows: report.Rows}
}
