package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/services"
)

func runReportRouter(
	api *echo.Group,
	reportService services.ReportServiceInterface,
	logger *zap.Logger,
) {
	reportCtrl := controllers.NewReportController(reportService, logger)

	api.GET("/report", reportCtrl.GetReport)
}
