package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/config"
	"gearguard/pkg/customvalidator"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"
)

type RouterTestSuite struct {
	suite.Suite
	Echo  *echo.Echo
	Store *repositories.MemoryStore
}

func (s *RouterTestSuite) SetupTest() {
	cfg := &config.Config{
		JWT: config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  time.Hour,
			RefreshTokenTTL: time.Hour * 24,
		},
		Assistant: config.AssistantConfig{Model: "test", Rate: 100, Burst: 100},
		Lifecycle: config.LifecycleConfig{SLAOffsetDays: 2, HealthCacheTTL: time.Minute},
	}

	e := echo.New()
	v := validator.New()
	s.Require().NoError(customvalidator.RegisterCustomValidations(v))
	e.Validator = utils.NewValidator(v)

	store := repositories.NewMemoryStore()
	store.AddTeam(&entities.Team{ID: "t1", Name: "Mechanics", Members: []string{"tech-a"}})
	store.AddTechnician(&entities.Technician{ID: "tech-a", Name: "Alvarez", Workload: 0})
	s.Require().NoError(store.CreateEquipment(context.Background(), &entities.Equipment{
		ID: "eq-1", Name: "CNC Mill", MaintenanceTeamID: "t1", DefaultTechnicianID: "tech-a",
	}))

	logger := zap.NewNop()
	InitRouter(e, Deps{
		Config:         cfg,
		Logger:         logger,
		JWTService:     service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL),
		RequestRepo:    store,
		EquipmentRepo:  store,
		TeamRepo:       store,
		TechnicianRepo: store,
		UserRepo:       store,
		CacheRepo:      repositories.NewMemoryCacheRepository(),
	})

	s.Echo = e
	s.Store = store
}

func (s *RouterTestSuite) doJSON(method, path string, payload interface{}, token string) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		s.Require().NoError(json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) decodeBody(rec *httptest.ResponseRecorder) map[string]interface{} {
	var envelope struct {
		Status  bool                   `json:"status"`
		Body    map[string]interface{} `json:"body"`
		Message string                 `json:"message"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Body
}

func (s *RouterTestSuite) TestCorrectiveRequestLifecycle() {
	rec := s.doJSON(http.MethodPost, "/api/requests/corrective", map[string]interface{}{
		"subject":      "Spindle vibrates",
		"equipment_id": "eq-1",
		"created_by":   "R. Douglas",
		"priority":     "High",
	}, "")
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	body := s.decodeBody(rec)
	id, _ := body["id"].(string)
	s.Require().NotEmpty(id)
	s.Equal("t1", body["team_id"])
	s.Equal("tech-a", body["technician_id"])
	s.Equal("new", body["status"])

	rec = s.doJSON(http.MethodPatch, "/api/requests/"+id+"/status", map[string]interface{}{
		"status": "in_progress",
	}, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal("in_progress", s.decodeBody(rec)["status"])

	rec = s.doJSON(http.MethodPatch, "/api/requests/"+id+"/status", map[string]interface{}{
		"status":     "repaired",
		"root_cause": "Worn bearing",
		"duration":   3.5,
	}, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	body = s.decodeBody(rec)
	s.Equal("repaired", body["status"])
	s.Equal("Worn bearing", body["root_cause"])

	// Terminal states reject further movement.
	rec = s.doJSON(http.MethodPatch, "/api/requests/"+id+"/status", map[string]interface{}{
		"status": "in_progress",
	}, "")
	s.Equal(http.StatusConflict, rec.Code, rec.Body.String())
}

func (s *RouterTestSuite) TestInvalidPriorityRejected() {
	rec := s.doJSON(http.MethodPost, "/api/requests/corrective", map[string]interface{}{
		"subject":      "Broken",
		"equipment_id": "eq-1",
		"created_by":   "X",
		"priority":     "Urgent",
	}, "")
	s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
}

func (s *RouterTestSuite) TestCreateEquipmentValidatesReferences() {
	base := map[string]interface{}{
		"name":                  "Lathe",
		"serial_number":         "LTH-100",
		"location":              "Hall C",
		"department":            "Production",
		"assigned_employee":     "B. Smith",
		"maintenance_team_id":   "t1",
		"default_technician_id": "tech-a",
		"maintenance_frequency": 30,
	}

	payload := func(overrides map[string]interface{}) map[string]interface{} {
		m := map[string]interface{}{}
		for k, v := range base {
			m[k] = v
		}
		for k, v := range overrides {
			m[k] = v
		}
		return m
	}

	rec := s.doJSON(http.MethodPost, "/api/equipment", payload(map[string]interface{}{
		"default_technician_id": "",
	}), "")
	s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())

	rec = s.doJSON(http.MethodPost, "/api/equipment", payload(map[string]interface{}{
		"default_technician_id": "tech-missing",
	}), "")
	s.Equal(http.StatusNotFound, rec.Code, rec.Body.String())

	rec = s.doJSON(http.MethodPost, "/api/equipment", payload(map[string]interface{}{
		"maintenance_team_id": "t-missing",
	}), "")
	s.Equal(http.StatusNotFound, rec.Code, rec.Body.String())

	rec = s.doJSON(http.MethodPost, "/api/equipment", payload(nil), "")
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	s.Equal("tech-a", s.decodeBody(rec)["default_technician_id"])
}

func (s *RouterTestSuite) TestBoardContainsAllColumns() {
	rec := s.doJSON(http.MethodGet, "/api/requests/board", nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	body := s.decodeBody(rec)
	for _, column := range []string{"new", "in_progress", "repaired", "scrap"} {
		_, ok := body[column]
		s.True(ok, "column %s missing", column)
	}
}

func (s *RouterTestSuite) TestCalendarShape() {
	rec := s.doJSON(http.MethodGet, "/api/calendar?year=2024&month=3", nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	body := s.decodeBody(rec)
	cells, ok := body["cells"].([]interface{})
	s.Require().True(ok)
	s.Equal(42, len(cells))
	s.Zero(len(cells) % 7)
}

func (s *RouterTestSuite) TestCalendarRejectsBadMonth() {
	rec := s.doJSON(http.MethodGet, "/api/calendar?year=2024&month=13", nil, "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestHealthScoreEndpoint() {
	cases := []struct {
		bf, od int
		want   string
	}{
		{0, 0, "Good"},
		{2, 0, "Warning"},
		{4, 0, "Critical"},
		{0, 3, "Critical"},
	}
	for _, tc := range cases {
		rec := s.doJSON(http.MethodPost, "/api/assistant/health-score", map[string]interface{}{
			"breakdown_frequency": tc.bf,
			"overdue_tasks":       tc.od,
		}, "")
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
		s.Equal(tc.want, s.decodeBody(rec)["health_score"], fmt.Sprintf("bf=%d od=%d", tc.bf, tc.od))
	}
}

func (s *RouterTestSuite) TestSupportUnavailableWithoutClient() {
	rec := s.doJSON(http.MethodPost, "/api/assistant/support", map[string]interface{}{
		"query": "How do I add equipment?",
	}, "")
	s.Equal(http.StatusServiceUnavailable, rec.Code, rec.Body.String())
}

func (s *RouterTestSuite) TestEquipmentHealthEndpoint() {
	rec := s.doJSON(http.MethodGet, "/api/equipment/eq-1/health", nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("Good", s.decodeBody(rec)["health_score"])
}

func (s *RouterTestSuite) TestDashboardEndpoint() {
	rec := s.doJSON(http.MethodGet, "/api/dashboard", nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	body := s.decodeBody(rec)
	s.EqualValues(1, body["teams"])
	s.EqualValues(1, body["equipment"])
}

func (s *RouterTestSuite) TestAuthSignupLoginProfile() {
	rec := s.doJSON(http.MethodPost, "/api/auth/signup", map[string]interface{}{
		"name":     "Jordan",
		"email":    "jordan@example.com",
		"password": "supersecret1",
		"role":     "Manager",
	}, "")
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	s.NotEmpty(s.decodeBody(rec)["access_token"])

	// Duplicate email is rejected.
	rec = s.doJSON(http.MethodPost, "/api/auth/signup", map[string]interface{}{
		"name":     "Jordan",
		"email":    "jordan@example.com",
		"password": "supersecret1",
	}, "")
	s.Equal(http.StatusConflict, rec.Code)

	rec = s.doJSON(http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "jordan@example.com",
		"password": "supersecret1",
	}, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	token, _ := s.decodeBody(rec)["access_token"].(string)
	s.Require().NotEmpty(token)

	rec = s.doJSON(http.MethodGet, "/api/auth/me", nil, token)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal("jordan@example.com", s.decodeBody(rec)["email"])

	rec = s.doJSON(http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "jordan@example.com",
		"password": "wrongpassword",
	}, "")
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = s.doJSON(http.MethodGet, "/api/auth/me", nil, "")
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *RouterTestSuite) TestReportJSON() {
	s.Require().NoError(s.Store.CreateRequest(context.Background(), &entities.MaintenanceRequest{
		ID: "req-r1", Subject: "Report row", EquipmentID: "eq-1", TeamID: "t1",
		TechnicianID: "tech-a", Type: entities.TypeCorrective,
		Status: entities.StatusRepaired, Priority: entities.PriorityHigh,
		ScheduledDate: time.Now().UTC(),
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	s.Require().Equal(http.StatusOK, rec.Code)

	var envelope struct {
		Body []map[string]interface{} `json:"body"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
	s.Require().Len(envelope.Body, 1)
	s.Equal("CNC Mill", envelope.Body[0]["EquipmentName"])
}

func (s *RouterTestSuite) TestReportXLSXContentType() {
	req := httptest.NewRequest(http.MethodGet, "/api/report?format=xlsx", nil)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentType), "spreadsheetml")
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
