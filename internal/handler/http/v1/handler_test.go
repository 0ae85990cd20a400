package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/flood_control_system/internal/models"
	"github.com/shenikar/flood_control_system/internal/service"
	"github.com/shenikar/flood_control_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	areas     *mocks.MockAreaService
	projects  *mocks.MockProjectService
	incidents *mocks.MockIncidentService
	reports   *mocks.MockReportService
	dashboard *mocks.MockDashboardService
}

// newTestHandler создает Handler с мокированными сервисами и роутер Gin для тестов
func newTestHandler(t *testing.T) (*testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &testMocks{
		areas:     mocks.NewMockAreaService(ctrl),
		projects:  mocks.NewMockProjectService(ctrl),
		incidents: mocks.NewMockIncidentService(ctrl),
		reports:   mocks.NewMockReportService(ctrl),
		dashboard: mocks.NewMockDashboardService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	handler := NewHandler(Services{
		Areas:     m.areas,
		Projects:  m.projects,
		Incidents: m.incidents,
		Reports:   m.reports,
	}, dashboardFunc(m.dashboard.BuildDashboard), logger)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return m, router
}

// dashboardFunc отдает дашборд напрямую из сервиса, без фонового обновления
type dashboardFunc func(ctx context.Context) (*models.Dashboard, error)

func (f dashboardFunc) Current(ctx context.Context) (*models.Dashboard, error) {
	return f(ctx)
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateArea_Success(t *testing.T) {
	m, router := newTestHandler(t)
	created := &models.Area{
		ID:                 6,
		Name:               "Marikina",
		Province:           "Metro Manila",
		RiskLevel:          models.RiskHigh,
		PopulationAffected: 450000,
		CreatedAt:          time.Now().UTC(),
	}

	m.areas.EXPECT().
		AddArea(gomock.Any(), service.AreaForm{
			Name:               "Marikina",
			Province:           "Metro Manila",
			RiskLevel:          "High",
			PopulationAffected: "450000",
		}).
		Return(created, nil).
		Times(1)

	// Числовые поля принимаются и числом, и строкой
	body := `{"name":"Marikina","province":"Metro Manila","risk_level":"High","population_affected":450000}`
	w := makeRequest(router, http.MethodPost, "/api/v1/areas", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp AreaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(6), resp.ID)
	assert.Equal(t, "High", resp.RiskLevel)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestCreateArea_InvalidJSON(t *testing.T) {
	m, router := newTestHandler(t)

	m.areas.EXPECT().AddArea(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, http.MethodPost, "/api/v1/areas", bytes.NewBufferString(`{"name": "test"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateArea_ValidationError(t *testing.T) {
	m, router := newTestHandler(t)

	m.areas.EXPECT().
		AddArea(gomock.Any(), gomock.Any()).
		Return(nil, &service.ValidationError{Field: "province", Message: "is required"})

	w := makeRequest(router, http.MethodPost, "/api/v1/areas", bytes.NewBufferString(`{"name":"Talisay"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "province is required", resp.Error)
	assert.Equal(t, "province", resp.Field)
}

func TestCreateArea_Duplicate(t *testing.T) {
	m, router := newTestHandler(t)

	m.areas.EXPECT().
		AddArea(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: could not create area: %w", errors.Join(models.ErrDuplicateArea, errors.New("Error 1062"))))

	w := makeRequest(router, http.MethodPost, "/api/v1/areas", bytes.NewBufferString(`{"name":"Manila","province":"Metro Manila"}`))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListAreas_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.areas.EXPECT().ListAreas(gomock.Any()).Return([]*models.Area{
		{ID: 1, Name: "Manila", Province: "Metro Manila", RiskLevel: models.RiskHigh},
		{ID: 2, Name: "Cebu City", Province: "Cebu", RiskLevel: models.RiskMedium},
	}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/areas", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []AreaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestListAreaOptions(t *testing.T) {
	m, router := newTestHandler(t)

	m.areas.EXPECT().ListAreaOptions(gomock.Any()).Return([]models.AreaOption{
		models.NewAreaOption(1, "Manila"),
	}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/areas/options", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"label":"Manila (ID:1)"}]`, w.Body.String())
}

func TestGetArea_InvalidID(t *testing.T) {
	m, router := newTestHandler(t)

	m.areas.EXPECT().GetArea(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/areas/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid id")
}

func TestGetArea_NotFound(t *testing.T) {
	m, router := newTestHandler(t)

	m.areas.EXPECT().
		GetArea(gomock.Any(), int64(404)).
		Return(nil, fmt.Errorf("service: could not get area: %w", models.ErrNotFound))

	w := makeRequest(router, http.MethodGet, "/api/v1/areas/404", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateArea_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.areas.EXPECT().
		UpdateArea(gomock.Any(), int64(2), service.AreaForm{Name: "Cebu City", Province: "Cebu", RiskLevel: "High"}).
		Return(&models.Area{ID: 2, Name: "Cebu City", Province: "Cebu", RiskLevel: models.RiskHigh}, nil)

	w := makeRequest(router, http.MethodPut, "/api/v1/areas/2", bytes.NewBufferString(`{"name":"Cebu City","province":"Cebu","risk_level":"High"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"risk_level":"High"`)
}

func TestDeleteArea_Referenced(t *testing.T) {
	m, router := newTestHandler(t)

	m.areas.EXPECT().
		DeleteArea(gomock.Any(), int64(1)).
		Return(fmt.Errorf("service: could not delete area: %w", models.ErrAreaReferenced))

	w := makeRequest(router, http.MethodDelete, "/api/v1/areas/1", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, models.ErrAreaReferenced.Error(), decodeError(t, w).Error)
}

func TestDeleteArea_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.areas.EXPECT().DeleteArea(gomock.Any(), int64(5)).Return(nil)

	w := makeRequest(router, http.MethodDelete, "/api/v1/areas/5", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestExportAreas_CSV(t *testing.T) {
	m, router := newTestHandler(t)

	m.areas.EXPECT().ListAreas(gomock.Any()).Return([]*models.Area{
		{ID: 1, Name: "Manila", Province: "Metro Manila", RiskLevel: models.RiskHigh, PopulationAffected: 1500000},
	}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/areas/export", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="areas.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "id,name,province,risk,population\n1,Manila,Metro Manila,High,1500000\n", w.Body.String())
}

func TestCreateProject_UnknownArea(t *testing.T) {
	m, router := newTestHandler(t)

	m.projects.EXPECT().
		AddProject(gomock.Any(), service.ProjectForm{ProjectName: "Levee", AreaID: "42"}).
		Return(nil, fmt.Errorf("service: could not create project: %w", models.ErrUnknownArea))

	w := makeRequest(router, http.MethodPost, "/api/v1/projects", bytes.NewBufferString(`{"project_name":"Levee","area_id":42}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "area_id", decodeError(t, w).Field)
}

func TestListProjects_Dates(t *testing.T) {
	m, router := newTestHandler(t)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	m.projects.EXPECT().ListProjects(gomock.Any()).Return([]*models.Project{
		{ID: 1, ProjectName: "Drainage Improvement", AreaID: 1, AreaName: "Manila", StartDate: &start, Status: models.StatusOngoing},
	}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/projects", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []ProjectResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "2025-01-01", resp[0].StartDate)
	assert.Empty(t, resp[0].EndDate)
}

func TestUpdateProject_NotFound(t *testing.T) {
	m, router := newTestHandler(t)

	m.projects.EXPECT().
		UpdateProject(gomock.Any(), int64(77), gomock.Any()).
		Return(nil, models.ErrNotFound)

	w := makeRequest(router, http.MethodPut, "/api/v1/projects/77", bytes.NewBufferString(`{"project_name":"Ghost","area_id":"1"}`))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateIncident_Success(t *testing.T) {
	m, router := newTestHandler(t)
	date := time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)

	m.incidents.EXPECT().
		AddIncident(gomock.Any(), service.IncidentForm{
			AreaID:         "1",
			Date:           "2025-04-12",
			FloodLevel:     "3.5",
			DamageEstimate: "",
			Casualties:     "5",
		}).
		Return(&models.Incident{ID: 4, AreaID: 1, AreaName: "Manila", Date: date, FloodLevel: 3.5, Casualties: 5}, nil)

	body := `{"area_id":"1","date":"2025-04-12","flood_level":3.5,"damage_estimate":"","casualties":5}`
	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2025-04-12", resp.Date)
	assert.Equal(t, "Manila", resp.AreaName)
}

func TestCreateIncident_BooleanFieldRejected(t *testing.T) {
	m, router := newTestHandler(t)

	m.incidents.EXPECT().AddIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", bytes.NewBufferString(`{"area_id":1,"date":"2025-04-12","casualties":true}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteIncident_ServiceError(t *testing.T) {
	m, router := newTestHandler(t)

	m.incidents.EXPECT().
		DeleteIncident(gomock.Any(), int64(3)).
		Return(errors.New("connection reset"))

	w := makeRequest(router, http.MethodDelete, "/api/v1/incidents/3", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decodeError(t, w).Error)
}

func TestListReports(t *testing.T) {
	m, router := newTestHandler(t)

	m.reports.EXPECT().ListReports().Return(models.ReportKinds())

	w := makeRequest(router, http.MethodGet, "/api/v1/reports", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []ReportKindResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 4)
	assert.Equal(t, "Top Damage Areas", resp[0].Title)
}

func TestRunReport_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.reports.EXPECT().
		RunReport(gomock.Any(), models.ReportProjectStatusDistribution).
		Return(&models.Report{
			Kind:    models.ReportProjectStatusDistribution,
			Title:   "Project Status Distribution",
			Headers: []string{"Status", "Count"},
			Rows:    [][]any{{"Ongoing", int64(2)}},
			Chart: &models.ChartSpec{
				Type:   models.ChartPie,
				Title:  "Projects by Status",
				Points: []models.ChartPoint{{Label: "Ongoing", Value: 2}},
			},
		}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/reports/project-status-distribution", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rows":[["Ongoing",2]]`)
	assert.Contains(t, w.Body.String(), `"type":"pie"`)
}

func TestRunReport_Unknown(t *testing.T) {
	m, router := newTestHandler(t)

	m.reports.EXPECT().
		RunReport(gomock.Any(), models.ReportKind("weekly")).
		Return(nil, fmt.Errorf("service: %w: %q", models.ErrUnknownReport, "weekly"))

	w := makeRequest(router, http.MethodGet, "/api/v1/reports/weekly", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportReport_CSV(t *testing.T) {
	m, router := newTestHandler(t)

	m.reports.EXPECT().
		RunReport(gomock.Any(), models.ReportTopDamageAreas).
		Return(&models.Report{
			Headers: []string{"Area", "Total Damage (PHP)"},
			Rows:    [][]any{{"Manila", 5000000.0}},
		}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/reports/top-damage-areas/export", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="top-damage-areas.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "Area,Total Damage (PHP)\nManila,5000000\n", w.Body.String())
}

func TestGetDashboard(t *testing.T) {
	m, router := newTestHandler(t)

	m.dashboard.EXPECT().BuildDashboard(gomock.Any()).Return(&models.Dashboard{
		Cards: []models.DashboardCard{
			{Label: "Total Areas", Value: 5, Display: "5", Summary: "+5 since 2025-01-01", Tone: models.TonePositive, Color: "#4CAF50"},
		},
		CutoffDate: "2025-01-01",
	}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/dashboard", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"summary":"+5 since 2025-01-01"`)
}

func TestHealthCheck(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRequestIDMiddleware_KeepsValidID(t *testing.T) {
	_, router := newTestHandler(t)
	id := "3f1c1c1e-8d7a-4c4b-9a57-0d9a3f6f2b11"

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil, map[string]string{"X-Request-ID": id})
	assert.Equal(t, id, w.Header().Get("X-Request-ID"))

	w = makeRequest(router, http.MethodGet, "/api/v1/system/health", nil, map[string]string{"X-Request-ID": "not-a-uuid"})
	assert.NotEqual(t, "not-a-uuid", w.Header().Get("X-Request-ID"))
}
