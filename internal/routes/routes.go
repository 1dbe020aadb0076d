package routes

import (
	"github.com/labstack/echo/v4"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"gearguard/internal/controllers"
	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/pkg/config"
	"gearguard/pkg/middleware"
	"gearguard/pkg/service"
)

// Deps carries everything the router needs that main wires up: the chosen
// storage backend behind the repository interfaces, the cache, and the
// optional model client.
type Deps struct {
	Config *config.Config
	Logger *zap.Logger

	JWTService service.JWTService

	RequestRepo    repositories.RequestRepositoryInterface
	EquipmentRepo  repositories.EquipmentRepositoryInterface
	TeamRepo       repositories.TeamRepositoryInterface
	TechnicianRepo repositories.TechnicianRepositoryInterface
	UserRepo       repositories.UserRepositoryInterface
	CacheRepo      repositories.CacheRepositoryInterface

	// OpenAIClient is nil when no API key is configured; the rule-based
	// scorer then serves alone.
	OpenAIClient *openai.Client
}

func InitRouter(e *echo.Echo, deps Deps) {
	logger := deps.Logger
	cfg := deps.Config
	logger.Info("registering routes")

	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(deps.JWTService, logger)

	var scorer services.HealthScorer = services.NewRuleBasedScorer()
	if deps.OpenAIClient != nil {
		scorer = services.NewLLMHealthScorer(deps.OpenAIClient, cfg.Assistant.Model, cfg.Assistant.Timeout, scorer, logger)
	}
	supportService := services.NewSupportService(deps.OpenAIClient, cfg.Assistant.Model, cfg.Assistant.Timeout, logger)

	requestService := services.NewRequestService(
		deps.RequestRepo, deps.EquipmentRepo, deps.TeamRepo, deps.TechnicianRepo,
		cfg.Lifecycle.SLAOffsetDays, logger,
	)
	equipmentService := services.NewEquipmentService(
		deps.EquipmentRepo, deps.RequestRepo, deps.TeamRepo, deps.TechnicianRepo,
		deps.CacheRepo, scorer, requestService, cfg.Lifecycle.HealthCacheTTL, logger,
	)
	dashboardService := services.NewDashboardService(
		deps.RequestRepo, deps.EquipmentRepo, deps.TeamRepo, equipmentService, logger,
	)
	reportService := services.NewReportService(
		deps.RequestRepo, deps.EquipmentRepo, deps.TeamRepo, deps.TechnicianRepo,
		cfg.Lifecycle.SLAOffsetDays, logger,
	)
	authService := services.NewAuthService(deps.UserRepo, deps.JWTService, logger)

	teamCtrl := controllers.NewTeamController(deps.TeamRepo, deps.TechnicianRepo, logger)
	api.GET("/teams", teamCtrl.GetTeams)
	api.GET("/technicians", teamCtrl.GetTechnicians)

	runRequestRouter(api, requestService, logger, authMW)
	runEquipmentRouter(api, equipmentService, logger)
	runCalendarRouter(api, requestService, logger)
	runDashboardRouter(api, dashboardService, logger)
	runReportRouter(api, reportService, logger)
	runAuthRouter(api, authService, logger, authMW)
	runAssistantRouter(api, scorer, supportService, logger,
		rate.Limit(cfg.Assistant.Rate), cfg.Assistant.Burst)

	logger.Info("routes registered")
}
