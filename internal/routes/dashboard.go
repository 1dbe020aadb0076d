package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/services"
)

func runDashboardRouter(
	api *echo.Group,
	dashboardService services.DashboardServiceInterface,
	logger *zap.Logger,
) {
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)

	api.GET("/dashboard", dashboardCtrl.GetDashboardStats)
}
