package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"gearguard/internal/controllers"
	"gearguard/internal/services"
	"gearguard/pkg/middleware"
)

// Assistant routes sit behind a per-IP limiter so a chat loop cannot
// exhaust the model quota.
func runAssistantRouter(
	api *echo.Group,
	scorer services.HealthScorer,
	supportService services.SupportServiceInterface,
	logger *zap.Logger,
	limit rate.Limit,
	burst int,
) {
	assistantCtrl := controllers.NewAssistantController(scorer, supportService, logger)

	group := api.Group("/assistant", middleware.RateLimiter(limit, burst))
	group.POST("/health-score", assistantCtrl.ScoreHealth)
	group.POST("/support", assistantCtrl.Support)
}
